package tetris

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

// newTestEngine returns an engine whose pieces come from values. The first
// two values fill the queue and the first spawn shifts it, so the first piece
// is values[1].
func newTestEngine(c *qt.C, values ...int) *Engine {
	engine, err := NewEngine(&scriptedRandomizer{values: values})
	c.Assert(err, qt.IsNil)
	return engine
}

func tick(c *qt.C, engine *Engine, board *Board, session *Session, input Input) TickResult {
	result, err := engine.Tick(board, session, input)
	c.Assert(err, qt.IsNil)
	return result
}

func piece(c *qt.C, engine *Engine) Mino {
	mino, ok := engine.Piece()
	c.Assert(ok, qt.IsTrue)
	return mino
}

func TestEngineFirstTickSpawns(t *testing.T) {
	c := qt.New(t)
	engine := newTestEngine(c, 0, 1, 2)
	board := NewBoard()
	var session Session

	_, ok := engine.Piece()
	c.Assert(ok, qt.IsFalse)

	result := tick(c, engine, board, &session, Input{})
	c.Assert(result, qt.Equals, TickResult{Spawned: true})

	mino := piece(c, engine)
	c.Assert(mino.Type, qt.Equals, PieceJ)
	c.Assert(mino.Center, qt.Equals, Point{X: 4, Y: 1})
	c.Assert(engine.Queue(), qt.Equals, Queue{PieceJ, PieceI})
}

func TestEngineSpawnTickIgnoresInput(t *testing.T) {
	c := qt.New(t)
	engine := newTestEngine(c, 3)
	board := NewBoard()
	var session Session

	tick(c, engine, board, &session, Input{DX: 1, Rotate: 1, HardDrop: true})
	c.Assert(piece(c, engine).Center, qt.Equals, Point{X: 4, Y: 1})
	c.Assert(board.Rows(), qt.Equals, NewBoard().Rows())
}

func TestEngineGravity(t *testing.T) {
	c := qt.New(t)
	engine := newTestEngine(c, 3)
	board := NewBoard()
	var session Session

	tick(c, engine, board, &session, Input{})
	// tickDelay starts at 0, so the first tick after the spawn drops at once
	tick(c, engine, board, &session, Input{})
	c.Assert(piece(c, engine).Center.Y, qt.Equals, 2)

	for i := 0; i < GravityDelay(0); i++ {
		tick(c, engine, board, &session, Input{})
	}
	c.Assert(piece(c, engine).Center.Y, qt.Equals, 2)
	tick(c, engine, board, &session, Input{})
	c.Assert(piece(c, engine).Center.Y, qt.Equals, 3)
}

func TestEngineSoftDrop(t *testing.T) {
	c := qt.New(t)
	engine := newTestEngine(c, 3)
	board := NewBoard()
	var session Session

	tick(c, engine, board, &session, Input{})
	tick(c, engine, board, &session, Input{})
	c.Assert(piece(c, engine).Center.Y, qt.Equals, 2)

	// 53 ticks of delay run out after 18 soft drop ticks
	for i := 0; i < 18; i++ {
		tick(c, engine, board, &session, Input{SoftDrop: true})
	}
	c.Assert(piece(c, engine).Center.Y, qt.Equals, 2)
	tick(c, engine, board, &session, Input{SoftDrop: true})
	c.Assert(piece(c, engine).Center.Y, qt.Equals, 3)
}

func TestEngineHardDropLocks(t *testing.T) {
	c := qt.New(t)
	engine := newTestEngine(c, 3)
	board := NewBoard()
	var session Session

	tick(c, engine, board, &session, Input{})
	result := tick(c, engine, board, &session, Input{HardDrop: true})
	c.Assert(result, qt.Equals, TickResult{Locked: true})

	_, ok := engine.Piece()
	c.Assert(ok, qt.IsFalse)

	filled := 0
	for _, row := range board.Rows() {
		for _, cell := range row {
			if cell != CellEmpty {
				c.Assert(cell, qt.Equals, PieceO.Cell())
				filled++
			}
		}
	}
	c.Assert(filled, qt.Equals, 4)
	c.Assert(board.At(4, 16), qt.Equals, PieceO.Cell())
	c.Assert(board.At(5, 17), qt.Equals, PieceO.Cell())
}

func TestEngineSpawnDelayAfterLock(t *testing.T) {
	c := qt.New(t)
	engine := newTestEngine(c, 3)
	board := NewBoard()
	var session Session

	tick(c, engine, board, &session, Input{})
	tick(c, engine, board, &session, Input{HardDrop: true})

	for i := 0; i < spawnDelay; i++ {
		result := tick(c, engine, board, &session, Input{})
		c.Assert(result, qt.Equals, TickResult{})
	}
	result := tick(c, engine, board, &session, Input{})
	c.Assert(result.Spawned, qt.IsTrue)
	c.Assert(result.Dead, qt.IsFalse)
}

func TestEngineLockClearsRows(t *testing.T) {
	c := qt.New(t)
	engine := newTestEngine(c, 3)
	board := NewBoard()
	for _, y := range []int{16, 17} {
		for x := 0; x < BoardWidth; x++ {
			if x != 4 && x != 5 {
				board.Set(x, y, PieceL.Cell())
			}
		}
	}
	board.Set(0, 15, PieceJ.Cell())
	session := Session{Level: 1, Lines: 10}

	tick(c, engine, board, &session, Input{})
	result := tick(c, engine, board, &session, Input{HardDrop: true})
	c.Assert(result, qt.Equals, TickResult{Locked: true, Cleared: 2})
	c.Assert(session, qt.Equals, Session{Level: 1, Score: 200, Lines: 12})

	// the block above the cleared rows falls two rows
	c.Assert(board.At(0, 17), qt.Equals, PieceJ.Cell())
	c.Assert(board.At(0, 15), qt.Equals, CellEmpty)
}

func TestEngineFourLineClearAtLevelTwo(t *testing.T) {
	c := qt.New(t)
	engine := newTestEngine(c, int(PieceI))
	board := NewBoard()
	for y := BoardHeight - 4; y < BoardHeight; y++ {
		for x := 0; x < BoardWidth; x++ {
			if x != 4 {
				board.Set(x, y, PieceZ.Cell())
			}
		}
	}
	session := Session{Level: 2, Lines: 20}

	tick(c, engine, board, &session, Input{})
	// drop one row, then stand the I up in column 4
	tick(c, engine, board, &session, Input{Rotate: 1})
	for _, cell := range piece(c, engine).Cells() {
		c.Assert(cell.X, qt.Equals, 4)
	}

	result := tick(c, engine, board, &session, Input{HardDrop: true})
	c.Assert(result, qt.Equals, TickResult{Locked: true, Cleared: 4})
	c.Assert(session, qt.Equals, Session{Level: 2, Score: 3600, Lines: 24})
	c.Assert(board.Rows(), qt.Equals, NewBoard().Rows())
}

func TestEngineHorizontalRepeatDelay(t *testing.T) {
	c := qt.New(t)
	engine := newTestEngine(c, 3)
	board := NewBoard()
	var session Session

	tick(c, engine, board, &session, Input{})

	// dx < 0 moves right; the first move waits out the initial delay
	for i := 0; i < moveRepeatDelay; i++ {
		tick(c, engine, board, &session, Input{DX: -1})
		c.Assert(piece(c, engine).Center.X, qt.Equals, 4)
	}
	tick(c, engine, board, &session, Input{DX: -1})
	c.Assert(piece(c, engine).Center.X, qt.Equals, 5)

	for i := 0; i < moveRepeatDelay; i++ {
		tick(c, engine, board, &session, Input{DX: -1})
		c.Assert(piece(c, engine).Center.X, qt.Equals, 5)
	}
	tick(c, engine, board, &session, Input{DX: -1})
	c.Assert(piece(c, engine).Center.X, qt.Equals, 6)
}

func TestEngineReleaseResetsMoveDelay(t *testing.T) {
	c := qt.New(t)
	engine := newTestEngine(c, 3)
	board := NewBoard()
	var session Session

	tick(c, engine, board, &session, Input{})
	tick(c, engine, board, &session, Input{})

	// dx > 0 moves left
	tick(c, engine, board, &session, Input{DX: 1})
	c.Assert(piece(c, engine).Center.X, qt.Equals, 3)
	tick(c, engine, board, &session, Input{DX: 1})
	c.Assert(piece(c, engine).Center.X, qt.Equals, 3)
	tick(c, engine, board, &session, Input{})
	tick(c, engine, board, &session, Input{DX: 1})
	c.Assert(piece(c, engine).Center.X, qt.Equals, 2)
}

func TestEngineReleaseOnLockTick(t *testing.T) {
	c := qt.New(t)
	engine := newTestEngine(c, 3)
	board := NewBoard()
	var session Session

	tick(c, engine, board, &session, Input{})
	c.Assert(engine.moveDelay, qt.Equals, moveRepeatDelay)
	result := tick(c, engine, board, &session, Input{HardDrop: true})
	c.Assert(result.Locked, qt.IsTrue)
	c.Assert(engine.moveDelay, qt.Equals, 0)

	for i := 0; i <= spawnDelay; i++ {
		tick(c, engine, board, &session, Input{})
	}
	c.Assert(piece(c, engine).Center.X, qt.Equals, 4)

	// the next piece moves on the first press
	tick(c, engine, board, &session, Input{DX: 1})
	c.Assert(piece(c, engine).Center.X, qt.Equals, 3)
}

func TestEngineHeldMoveOnLockTick(t *testing.T) {
	c := qt.New(t)
	engine := newTestEngine(c, 3)
	board := NewBoard()
	var session Session

	tick(c, engine, board, &session, Input{})
	tick(c, engine, board, &session, Input{DX: 1, HardDrop: true})
	c.Assert(engine.moveDelay, qt.Equals, moveRepeatDelay-1)

	// the locked cells did not move
	c.Assert(board.At(4, 17), qt.Equals, PieceO.Cell())
	c.Assert(board.At(3, 17), qt.Equals, CellEmpty)
}

func TestEngineWallRejectsMove(t *testing.T) {
	c := qt.New(t)
	engine := newTestEngine(c, 3)
	board := NewBoard()
	var session Session

	tick(c, engine, board, &session, Input{})
	for i := 0; i < 10; i++ {
		tick(c, engine, board, &session, Input{})
		tick(c, engine, board, &session, Input{DX: 1})
	}
	c.Assert(piece(c, engine).Center.X, qt.Equals, 0)

	for i := 0; i < 20; i++ {
		tick(c, engine, board, &session, Input{})
		tick(c, engine, board, &session, Input{DX: -1})
	}
	// O covers x and x+1
	c.Assert(piece(c, engine).Center.X, qt.Equals, BoardWidth-2)
}

func TestEngineRotate(t *testing.T) {
	c := qt.New(t)
	engine := newTestEngine(c, 6)
	board := NewBoard()
	var session Session

	tick(c, engine, board, &session, Input{})
	spawned := piece(c, engine)

	tick(c, engine, board, &session, Input{Rotate: 1})
	mino := piece(c, engine)
	c.Assert(mino.Offsets, qt.Equals, [3]Offset{{0, 1}, {0, -1}, {1, 0}})

	tick(c, engine, board, &session, Input{Rotate: -1})
	c.Assert(piece(c, engine).Offsets, qt.Equals, spawned.Offsets)
}

func TestEngineRotateBlocked(t *testing.T) {
	c := qt.New(t)
	engine := newTestEngine(c, 2)
	board := NewBoard()
	board.Set(4, 0, PieceL.Cell())
	var session Session

	tick(c, engine, board, &session, Input{})
	spawned := piece(c, engine)

	// turning the I at row 2 needs rows 0 to 3 of its column
	tick(c, engine, board, &session, Input{Rotate: 1})
	mino := piece(c, engine)
	c.Assert(mino.Center, qt.Equals, Point{X: 4, Y: 2})
	c.Assert(mino.Offsets, qt.Equals, spawned.Offsets)
}

func TestEngineDeadWhenSpawnBlocked(t *testing.T) {
	c := qt.New(t)
	engine := newTestEngine(c, 3)
	board := NewBoard()
	for y := 2; y < BoardHeight; y++ {
		for x := 0; x < BoardWidth; x++ {
			board.Set(x, y, PieceZ.Cell())
		}
	}
	var session Session

	result := tick(c, engine, board, &session, Input{})
	c.Assert(result, qt.Equals, TickResult{Spawned: true, Dead: true})
	c.Assert(engine.Dead(), qt.IsTrue)

	result = tick(c, engine, board, &session, Input{HardDrop: true})
	c.Assert(result, qt.Equals, TickResult{Dead: true})
}

func TestEngineSpawnEscapeDoesNotMove(t *testing.T) {
	c := qt.New(t)
	engine := newTestEngine(c, 3)
	board := NewBoard()
	// only a move to the right is possible
	board.Set(4, 3, PieceZ.Cell())
	board.Set(3, 1, PieceZ.Cell())
	var session Session

	result := tick(c, engine, board, &session, Input{})
	c.Assert(result, qt.Equals, TickResult{Spawned: true})
	c.Assert(piece(c, engine).Center, qt.Equals, Point{X: 4, Y: 1})
}

func TestEngineInvalidPieceType(t *testing.T) {
	c := qt.New(t)

	_, err := NewEngine(&scriptedRandomizer{values: []int{8}})
	c.Assert(err, qt.ErrorIs, ErrInvalidPieceType)

	engine := newTestEngine(c, 1, 1, 9)
	_, err = engine.Tick(NewBoard(), &Session{}, Input{})
	c.Assert(err, qt.ErrorIs, ErrInvalidPieceType)
}
