package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidBoard is returned when a board or engine is configured with
// unusable dimensions.
var ErrInvalidBoard = errors.New("engine: invalid board dimensions")

// Cell is the content of one board cell. Zero is empty; any other value is
// the identifier of the piece type that locked there (see PieceType.Cell).
type Cell uint8

// Empty is the value of an unoccupied cell.
const Empty Cell = 0

// Piece returns the piece type that produced a non-empty cell.
func (c Cell) Piece() (PieceType, bool) {
	if c == Empty || c > Cell(PieceCount) {
		return 0, false
	}
	return PieceType(c - 1), true
}

// Board is a fixed-size grid of locked cells. Only locked blocks are stored
// here; the active piece is never written until it locks.
type Board struct {
	width  int
	height int
	rows   [][]Cell // rows[y][x], y = 0 is the bottom row
}

// NewBoard creates an empty board. Both dimensions must be positive.
func NewBoard(width, height int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidBoard, width, height)
	}
	b := &Board{width: width, height: height}
	b.rows = make([][]Cell, height)
	for y := range b.rows {
		b.rows[y] = make([]Cell, width)
	}
	return b, nil
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// InBounds reports whether (x, y) lies on the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// IsValid reports whether a piece cell may occupy (x, y): the position must
// be on the board and not already occupied. Every movement, rotation, spawn
// and ghost check goes through this method.
func (b *Board) IsValid(x, y int) bool {
	if !b.InBounds(x, y) {
		return false
	}
	return b.rows[y][x] == Empty
}

// Fits reports whether every cell is valid.
func (b *Board) Fits(cells [4]Point) bool {
	for _, c := range cells {
		if !b.IsValid(c.X, c.Y) {
			return false
		}
	}
	return true
}

// At returns the cell at (x, y), or Empty when out of bounds.
func (b *Board) At(x, y int) Cell {
	if !b.InBounds(x, y) {
		return Empty
	}
	return b.rows[y][x]
}

// Set writes a cell. Out-of-bounds coordinates are ignored.
func (b *Board) Set(x, y int, c Cell) {
	if !b.InBounds(x, y) {
		return
	}
	b.rows[y][x] = c
}

// Lock writes the piece cells into the board. Cells outside the board are
// dropped.
func (b *Board) Lock(cells [4]Point, c Cell) {
	for _, p := range cells {
		b.Set(p.X, p.Y, c)
	}
}

// Row returns a copy of row y.
func (b *Board) Row(y int) []Cell {
	row := make([]Cell, b.width)
	if y >= 0 && y < b.height {
		copy(row, b.rows[y])
	}
	return row
}

// Rows returns a deep copy of the grid, bottom row first.
func (b *Board) Rows() [][]Cell {
	out := make([][]Cell, b.height)
	for y := range b.rows {
		out[y] = b.Row(y)
	}
	return out
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	return &Board{width: b.width, height: b.height, rows: b.Rows()}
}

// Clear empties every cell.
func (b *Board) Clear() {
	for y := range b.rows {
		clear(b.rows[y])
	}
}

// Occupied returns the number of non-empty cells.
func (b *Board) Occupied() int {
	n := 0
	for _, row := range b.rows {
		for _, c := range row {
			if c != Empty {
				n++
			}
		}
	}
	return n
}
