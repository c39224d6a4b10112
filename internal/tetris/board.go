package tetris

const (
	// BoardWidth is the number of columns in the well
	BoardWidth = 10
	// BoardHeight is the number of rows in the well
	BoardHeight = 18
)

// Cell is the content of one board location. 0 is empty, otherwise it holds
// the piece type that locked there plus one.
type Cell uint8

// CellEmpty is an unoccupied cell
const CellEmpty Cell = 0

// Point is a board location, x is the column and y is the row counted from the top
type Point struct {
	X int
	Y int
}

// Board is the playfield, a fixed 10x18 grid stored row-major
type Board struct {
	cells [BoardWidth * BoardHeight]Cell
}

// NewBoard creates a new empty board
func NewBoard() *Board {
	return &Board{}
}

// Clear empties every cell
func (board *Board) Clear() {
	board.cells = [BoardWidth * BoardHeight]Cell{}
}

// InBounds reports whether x, y is inside the well
func InBounds(x int, y int) bool {
	return x >= 0 && x < BoardWidth && y >= 0 && y < BoardHeight
}

// At returns the cell at x, y. It panics when x, y is outside the well.
func (board *Board) At(x int, y int) Cell {
	return board.cells[index(x, y)]
}

// Set sets the cell at x, y. It panics when x, y is outside the well.
func (board *Board) Set(x int, y int, cell Cell) {
	board.cells[index(x, y)] = cell
}

// Blocked checks if a block can not be placed at x, y, either because it is
// outside the well or because the cell is already taken
func (board *Board) Blocked(x int, y int) bool {
	if !InBounds(x, y) {
		return true
	}
	return board.cells[y*BoardWidth+x] != CellEmpty
}

// Row returns a copy of row y
func (board *Board) Row(y int) [BoardWidth]Cell {
	var row [BoardWidth]Cell
	copy(row[:], board.cells[y*BoardWidth:(y+1)*BoardWidth])
	return row
}

// Rows returns a copy of the whole grid, indexed [y][x]
func (board *Board) Rows() [BoardHeight][BoardWidth]Cell {
	var rows [BoardHeight][BoardWidth]Cell
	for y := 0; y < BoardHeight; y++ {
		rows[y] = board.Row(y)
	}
	return rows
}

// ClearFullRows removes every full row, shifting the rows above it down, and
// returns how many rows were removed. Rows are handled top to bottom and each
// one is compacted as soon as it is found.
func (board *Board) ClearFullRows() int {
	cleared := 0
	for y := 0; y < BoardHeight; y++ {
		if board.isFullRow(y) {
			board.deleteRow(y)
			cleared++
		}
	}
	return cleared
}

// isFullRow checks if row is full
func (board *Board) isFullRow(y int) bool {
	for x := 0; x < BoardWidth; x++ {
		if board.cells[y*BoardWidth+x] == CellEmpty {
			return false
		}
	}
	return true
}

// deleteRow deletes the row
func (board *Board) deleteRow(row int) {
	for x := 0; x < BoardWidth; x++ {
		board.cells[row*BoardWidth+x] = CellEmpty
	}
	for y := row; y > 0; y-- {
		copy(board.cells[y*BoardWidth:(y+1)*BoardWidth], board.cells[(y-1)*BoardWidth:y*BoardWidth])
	}
	for x := 0; x < BoardWidth; x++ {
		board.cells[x] = CellEmpty
	}
}

func index(x int, y int) int {
	if !InBounds(x, y) {
		panic("tetris: board location out of bounds")
	}
	return y*BoardWidth + x
}
