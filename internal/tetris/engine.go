package tetris

const (
	spawnX = 4
	spawnY = 1

	// ticks between a lock and the next spawn
	spawnDelay = 10
	// ticks a held horizontal move waits before repeating
	moveRepeatDelay = 15
	hardDropLimit   = 20
	softDropStep    = 3
)

// Input is the player input for one tick.
//
// A negative DX moves the piece right (towards column 9) and a positive DX
// moves it left. Rotate > 0 turns clockwise, Rotate < 0 counter clockwise.
type Input struct {
	DX       int
	Rotate   int
	SoftDrop bool
	HardDrop bool
}

// TickResult tells the caller what happened during a tick
type TickResult struct {
	// Spawned is set when a new piece entered the well this tick
	Spawned bool
	// Locked is set when the falling piece was written into the board
	Locked bool
	// Cleared is the number of rows removed by the lock
	Cleared int
	// Dead is set once a spawned piece had no room to move
	Dead bool
}

// Engine owns the falling piece, the piece queue and all per-tick timers.
// The board and the score state belong to the caller and are passed in on
// every tick.
type Engine struct {
	rng        Randomizer
	mino       Mino
	queue      Queue
	exists     bool
	existDelay int
	tickDelay  int
	moveDelay  int
	dead       bool
}

// NewEngine creates an engine with no piece in the well. The first tick
// spawns the first piece.
func NewEngine(rng Randomizer) (*Engine, error) {
	queue, err := NewQueue(rng)
	if err != nil {
		return nil, err
	}
	return &Engine{
		rng:       rng,
		queue:     queue,
		moveDelay: moveRepeatDelay,
	}, nil
}

// Tick advances the engine by one frame
func (engine *Engine) Tick(board *Board, session *Session, input Input) (TickResult, error) {
	if engine.dead {
		return TickResult{Dead: true}, nil
	}

	if !engine.exists {
		if engine.existDelay > 0 {
			engine.existDelay--
			return TickResult{}, nil
		}
		if err := engine.spawn(); err != nil {
			return TickResult{}, err
		}
		if !engine.canMove(board, 0, 1) &&
			!engine.canMove(board, -1, 0) &&
			!engine.canMove(board, 1, 0) {
			engine.dead = true
		}
		return TickResult{Spawned: true, Dead: engine.dead}, nil
	}

	if input.HardDrop {
		for i := 0; i < hardDropLimit; i++ {
			if !engine.tryMove(board, 0, 1) {
				break
			}
		}
		engine.tickDelay = 0
	}

	if engine.tickDelay <= 0 {
		if !engine.tryMove(board, 0, 1) {
			cleared := engine.lock(board, session)
			// the locked piece stays put but the repeat delay still counts
			engine.countMoveDelay(input.DX)
			return TickResult{Locked: true, Cleared: cleared}, nil
		}
		engine.tickDelay = GravityDelay(session.Level)
	} else if input.SoftDrop {
		engine.tickDelay -= softDropStep
	} else {
		engine.tickDelay--
	}

	engine.moveHorizontal(board, input.DX)

	if input.Rotate != 0 {
		engine.tryRotate(board, input.Rotate)
	}

	return TickResult{}, nil
}

// spawn takes the next type from the queue and places it at the top
func (engine *Engine) spawn() error {
	if err := engine.queue.Advance(engine.rng); err != nil {
		return err
	}
	mino, err := NewMino(engine.queue.Current(), spawnX, spawnY)
	if err != nil {
		return err
	}
	engine.mino = mino
	engine.exists = true
	return nil
}

// moveHorizontal applies dx, throttled by the repeat delay. Releasing the
// horizontal input clears the delay so the next press moves at once.
func (engine *Engine) moveHorizontal(board *Board, dx int) {
	if engine.countMoveDelay(dx) || dx == 0 {
		return
	}
	step := -1
	if dx < 0 {
		step = 1
	}
	if engine.tryMove(board, step, 0) {
		engine.moveDelay = moveRepeatDelay
	}
}

// countMoveDelay runs one tick of the repeat delay and reports whether it
// was still pending
func (engine *Engine) countMoveDelay(dx int) bool {
	if engine.moveDelay <= 0 {
		return false
	}
	engine.moveDelay--
	if dx == 0 {
		engine.moveDelay = 0
	}
	return true
}

// lock writes the mino into the board and scores the cleared rows
func (engine *Engine) lock(board *Board, session *Session) int {
	engine.mino.SetOnBoard(board)
	engine.exists = false
	engine.existDelay = spawnDelay
	cleared := board.ClearFullRows()
	session.AddDeleteLines(cleared)
	return cleared
}

func (engine *Engine) canMove(board *Board, dx int, dy int) bool {
	return engine.mino.CloneMove(dx, dy).ValidLocation(board)
}

func (engine *Engine) tryMove(board *Board, dx int, dy int) bool {
	mino := engine.mino.CloneMove(dx, dy)
	if !mino.ValidLocation(board) {
		return false
	}
	engine.mino = mino
	return true
}

func (engine *Engine) tryRotate(board *Board, dir int) bool {
	mino := engine.mino.CloneRotate(dir)
	if !mino.ValidLocation(board) {
		return false
	}
	engine.mino = mino
	return true
}

// Piece returns the falling piece, the bool is false between pieces
func (engine *Engine) Piece() (Mino, bool) {
	return engine.mino, engine.exists
}

// Queue returns the current and next piece types
func (engine *Engine) Queue() Queue {
	return engine.queue
}

// Dead reports whether the game is over
func (engine *Engine) Dead() bool {
	return engine.dead
}
