package tetris

// Snapshot is a read-only copy of everything a renderer needs after a tick
type Snapshot struct {
	Rows    [BoardHeight][BoardWidth]Cell
	Piece   Mino
	Falling bool
	Queue   Queue
	Session Session
	Dead    bool
}

// Snapshot captures the engine, board and session state
func (engine *Engine) Snapshot(board *Board, session Session) Snapshot {
	return Snapshot{
		Rows:    board.Rows(),
		Piece:   engine.mino,
		Falling: engine.exists,
		Queue:   engine.queue,
		Session: session,
		Dead:    engine.dead,
	}
}

// CellAt returns what is shown at x, y: the falling piece if it covers the
// location, the board otherwise
func (snapshot Snapshot) CellAt(x int, y int) Cell {
	if snapshot.Falling {
		for _, cell := range snapshot.Piece.Cells() {
			if cell.X == x && cell.Y == y {
				return snapshot.Piece.Type.Cell()
			}
		}
	}
	return snapshot.Rows[y][x]
}
