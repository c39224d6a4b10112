package tetris

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestSnapshot(t *testing.T) {
	c := qt.New(t)
	engine := newTestEngine(c, 5, 6, 4)
	board := NewBoard()
	board.Set(0, 17, PieceL.Cell())
	session := Session{Score: 40, Lines: 1}

	snapshot := engine.Snapshot(board, session)
	c.Assert(snapshot.Falling, qt.IsFalse)
	c.Assert(snapshot.CellAt(4, 1), qt.Equals, CellEmpty)

	tick(c, engine, board, &session, Input{})
	snapshot = engine.Snapshot(board, session)
	c.Assert(snapshot.Falling, qt.IsTrue)
	c.Assert(snapshot.Queue, qt.Equals, Queue{PieceT, PieceO})
	c.Assert(snapshot.Session, qt.Equals, session)
	c.Assert(snapshot.CellAt(4, 1), qt.Equals, PieceT.Cell())
	c.Assert(snapshot.CellAt(4, 2), qt.Equals, PieceT.Cell())
	c.Assert(snapshot.CellAt(0, 17), qt.Equals, PieceL.Cell())
	c.Assert(snapshot.CellAt(9, 17), qt.Equals, CellEmpty)

	// the snapshot is a copy
	board.Set(9, 17, PieceI.Cell())
	c.Assert(snapshot.CellAt(9, 17), qt.Equals, CellEmpty)
}
