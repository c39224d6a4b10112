package tetris

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestMinoCells(t *testing.T) {
	c := qt.New(t)
	mino, err := NewMino(PieceT, 4, 1)
	c.Assert(err, qt.IsNil)
	c.Assert(mino.Cells(), qt.Equals, [4]Point{{4, 1}, {3, 1}, {5, 1}, {4, 2}})
}

func TestNewMinoInvalidType(t *testing.T) {
	c := qt.New(t)
	_, err := NewMino(NumPieceTypes, 4, 1)
	c.Assert(err, qt.ErrorIs, ErrInvalidPieceType)
}

func TestMinoRotateFourTimes(t *testing.T) {
	c := qt.New(t)
	for piece := PieceType(0); piece < NumPieceTypes; piece++ {
		mino, err := NewMino(piece, 4, 4)
		c.Assert(err, qt.IsNil)

		clockwise := mino
		counter := mino
		for i := 0; i < 4; i++ {
			clockwise = clockwise.CloneRotate(1)
			counter = counter.CloneRotate(-1)
		}
		c.Assert(clockwise, qt.Equals, mino, qt.Commentf("piece %v", piece))
		c.Assert(counter, qt.Equals, mino, qt.Commentf("piece %v", piece))
	}
}

func TestMinoCloneDoesNotModify(t *testing.T) {
	c := qt.New(t)
	mino, err := NewMino(PieceL, 4, 1)
	c.Assert(err, qt.IsNil)
	moved := mino.CloneMove(1, 2)
	rotated := mino.CloneRotate(1)

	c.Assert(mino.Center, qt.Equals, Point{4, 1})
	c.Assert(moved.Center, qt.Equals, Point{5, 3})
	c.Assert(rotated.Offsets, qt.Not(qt.Equals), mino.Offsets)
	c.Assert(mino.Offsets, qt.Equals, shapes[PieceL])
}

func TestMinoValidLocation(t *testing.T) {
	c := qt.New(t)
	board := NewBoard()

	mino, err := NewMino(PieceI, 4, 1)
	c.Assert(err, qt.IsNil)
	c.Assert(mino.ValidLocation(board), qt.IsTrue)

	// I spans x-1 .. x+2
	c.Assert(mino.CloneMove(-3, 0).ValidLocation(board), qt.IsTrue)
	c.Assert(mino.CloneMove(-4, 0).ValidLocation(board), qt.IsFalse)
	c.Assert(mino.CloneMove(3, 0).ValidLocation(board), qt.IsTrue)
	c.Assert(mino.CloneMove(4, 0).ValidLocation(board), qt.IsFalse)
	c.Assert(mino.CloneMove(0, 17).ValidLocation(board), qt.IsFalse)
	c.Assert(mino.CloneMove(0, -2).ValidLocation(board), qt.IsFalse)

	board.Set(6, 1, 1)
	c.Assert(mino.ValidLocation(board), qt.IsFalse)
}

func TestMinoSetOnBoard(t *testing.T) {
	c := qt.New(t)
	board := NewBoard()
	mino, err := NewMino(PieceO, 4, 16)
	c.Assert(err, qt.IsNil)
	mino.SetOnBoard(board)

	count := 0
	for _, row := range board.Rows() {
		for _, cell := range row {
			if cell != CellEmpty {
				c.Assert(cell, qt.Equals, PieceO.Cell())
				count++
			}
		}
	}
	c.Assert(count, qt.Equals, 4)
	c.Assert(board.At(5, 17), qt.Equals, PieceO.Cell())
}
