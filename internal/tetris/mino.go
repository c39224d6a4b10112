package tetris

// Mino is the falling piece: a center block and three blocks placed relative
// to it. The center is the rotation pivot.
type Mino struct {
	Center  Point
	Offsets [3]Offset
	Type    PieceType
}

// NewMino creates a mino of the given type with its center at x, y
func NewMino(t PieceType, x int, y int) (Mino, error) {
	offsets, err := Shape(t)
	if err != nil {
		return Mino{}, err
	}
	return Mino{
		Center:  Point{X: x, Y: y},
		Offsets: offsets,
		Type:    t,
	}, nil
}

// Cells returns the absolute board locations of all four blocks, center first
func (mino Mino) Cells() [4]Point {
	cells := [4]Point{mino.Center}
	for i, offset := range mino.Offsets {
		cells[i+1] = Point{X: mino.Center.X + offset.X, Y: mino.Center.Y + offset.Y}
	}
	return cells
}

// CloneMove creates a copy of the mino moved by dx, dy
func (mino Mino) CloneMove(dx int, dy int) Mino {
	mino.Center.X += dx
	mino.Center.Y += dy
	return mino
}

// CloneRotate creates a copy of the mino turned a quarter in direction dir
func (mino Mino) CloneRotate(dir int) Mino {
	for i := range mino.Offsets {
		mino.Offsets[i] = mino.Offsets[i].Rotate(dir)
	}
	return mino
}

// ValidLocation checks if every block of the mino is inside the well and on
// an empty cell
func (mino Mino) ValidLocation(board *Board) bool {
	for _, cell := range mino.Cells() {
		if board.Blocked(cell.X, cell.Y) {
			return false
		}
	}
	return true
}

// SetOnBoard attaches mino to the board
func (mino Mino) SetOnBoard(board *Board) {
	for _, cell := range mino.Cells() {
		board.Set(cell.X, cell.Y, mino.Type.Cell())
	}
}
