package tetris

import (
	"errors"
	"fmt"
)

// PieceType is the type of a piece, 0 through 6
type PieceType uint8

const (
	PieceL PieceType = iota
	PieceJ
	PieceI
	PieceO
	PieceZ
	PieceS
	PieceT

	// NumPieceTypes is the number of distinct piece types
	NumPieceTypes = 7
)

// ErrInvalidPieceType is returned when a piece type outside 0..6 reaches the
// shape table. It means the engine state is corrupt.
var ErrInvalidPieceType = errors.New("invalid piece type")

// Offset is a block position relative to the center of a piece
type Offset struct {
	X int
	Y int
}

// shapes holds the three non-center blocks of every piece at spawn
var shapes = [NumPieceTypes][3]Offset{
	PieceL: {{-1, 0}, {-1, 1}, {1, 0}},
	PieceJ: {{-1, 0}, {1, 1}, {1, 0}},
	PieceI: {{-1, 0}, {2, 0}, {1, 0}},
	PieceO: {{0, 1}, {1, 1}, {1, 0}},
	PieceZ: {{-1, 0}, {0, 1}, {1, 1}},
	PieceS: {{1, 0}, {0, 1}, {-1, 1}},
	PieceT: {{-1, 0}, {1, 0}, {0, 1}},
}

var pieceNames = [NumPieceTypes]string{"L", "J", "I", "O", "Z", "S", "T"}

// Valid reports whether the type is one of the seven pieces
func (t PieceType) Valid() bool {
	return t < NumPieceTypes
}

// Cell returns the board value a locked block of this type is stored as
func (t PieceType) Cell() Cell {
	return Cell(t) + 1
}

func (t PieceType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("PieceType(%d)", uint8(t))
	}
	return pieceNames[t]
}

// Shape returns the spawn offsets of the piece type
func Shape(t PieceType) ([3]Offset, error) {
	if !t.Valid() {
		return [3]Offset{}, fmt.Errorf("shape for %v: %w", t, ErrInvalidPieceType)
	}
	return shapes[t], nil
}

// Rotate turns an offset a quarter turn around the center. Positive dir is
// clockwise (x, y) -> (y, -x), negative is counter clockwise (x, y) -> (-y, x).
// A zero dir returns the offset unchanged.
func (o Offset) Rotate(dir int) Offset {
	switch {
	case dir > 0:
		return Offset{X: o.Y, Y: -o.X}
	case dir < 0:
		return Offset{X: -o.Y, Y: o.X}
	}
	return o
}
