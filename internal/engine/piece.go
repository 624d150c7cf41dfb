// Package engine implements the deterministic falling-block game state:
// board, active piece, SRS rotation with wall kicks, gravity and locking,
// line clearing, scoring, hold and game over.
//
// The package has no dependency on any terminal, audio or storage layer.
// Callers drive it one tick at a time and read Snapshot values back.
//
// Grid coordinates grow right (x) and up (y); row 0 is the bottom row.
package engine

import "fmt"

// PieceType identifies one of the seven tetrominoes.
type PieceType uint8

const (
	PieceI PieceType = iota
	PieceJ
	PieceL
	PieceO
	PieceS
	PieceT
	PieceZ
)

// PieceCount is the number of distinct piece types.
const PieceCount = 7

// AllPieces lists every piece type in table order.
var AllPieces = [PieceCount]PieceType{PieceI, PieceJ, PieceL, PieceO, PieceS, PieceT, PieceZ}

// String returns the single-letter name of the piece.
func (p PieceType) String() string {
	if int(p) < len(pieceNames) {
		return pieceNames[p]
	}
	return fmt.Sprintf("PieceType(%d)", uint8(p))
}

var pieceNames = [PieceCount]string{"I", "J", "L", "O", "S", "T", "Z"}

// Valid reports whether p is one of the seven piece types.
func (p PieceType) Valid() bool {
	return p < PieceCount
}

// Cell returns the board identifier written when a piece of this type locks.
func (p PieceType) Cell() Cell {
	return Cell(p) + 1
}

// Point is an integer grid coordinate or offset.
type Point struct {
	X, Y int
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Rotation is an SRS rotation state: 0 (spawn), 1 (R), 2 (180), 3 (L).
type Rotation uint8

// Rotation states.
const (
	RotationSpawn Rotation = iota
	RotationRight
	RotationTwo
	RotationLeft
)

// Direction is a rotation direction.
type Direction int

const (
	Clockwise Direction = iota
	CounterClockwise
)

// Apply returns the rotation state reached by turning r once in direction d.
func (r Rotation) Apply(d Direction) Rotation {
	if d == CounterClockwise {
		return (r + 3) % 4
	}
	return (r + 1) % 4
}

// shapes holds the four cell offsets of every piece in every rotation state,
// relative to the piece pivot. O is identical in all four states.
var shapes = [PieceCount][4][4]Point{
	PieceI: {
		{{-1, 0}, {0, 0}, {1, 0}, {2, 0}},
		{{1, 1}, {1, 0}, {1, -1}, {1, -2}},
		{{-1, -1}, {0, -1}, {1, -1}, {2, -1}},
		{{0, 1}, {0, 0}, {0, -1}, {0, -2}},
	},
	PieceJ: {
		{{-1, 1}, {-1, 0}, {0, 0}, {1, 0}},
		{{1, 1}, {0, 1}, {0, 0}, {0, -1}},
		{{-1, 0}, {0, 0}, {1, 0}, {1, -1}},
		{{0, 1}, {0, 0}, {0, -1}, {-1, -1}},
	},
	PieceL: {
		{{-1, 0}, {0, 0}, {1, 0}, {1, 1}},
		{{0, 1}, {0, 0}, {0, -1}, {1, -1}},
		{{-1, -1}, {-1, 0}, {0, 0}, {1, 0}},
		{{-1, 1}, {0, 1}, {0, 0}, {0, -1}},
	},
	PieceO: {
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	},
	PieceS: {
		{{-1, 0}, {0, 0}, {0, 1}, {1, 1}},
		{{0, 1}, {0, 0}, {1, 0}, {1, -1}},
		{{-1, -1}, {0, -1}, {0, 0}, {1, 0}},
		{{-1, 1}, {-1, 0}, {0, 0}, {0, -1}},
	},
	PieceT: {
		{{-1, 0}, {0, 0}, {1, 0}, {0, 1}},
		{{0, 1}, {0, 0}, {0, -1}, {1, 0}},
		{{-1, 0}, {0, 0}, {1, 0}, {0, -1}},
		{{0, 1}, {0, 0}, {0, -1}, {-1, 0}},
	},
	PieceZ: {
		{{-1, 1}, {0, 1}, {0, 0}, {1, 0}},
		{{1, 1}, {1, 0}, {0, 0}, {0, -1}},
		{{-1, 0}, {0, 0}, {0, -1}, {1, -1}},
		{{0, 1}, {0, 0}, {-1, 0}, {-1, -1}},
	},
}

// Shape returns the pivot-relative cell offsets of piece t in rotation r.
func Shape(t PieceType, r Rotation) [4]Point {
	return shapes[t][r%4]
}

// CellsAt returns the absolute cells of piece t in rotation r around pivot.
func CellsAt(t PieceType, r Rotation, pivot Point) [4]Point {
	offsets := Shape(t, r)
	var cells [4]Point
	for i, o := range offsets {
		cells[i] = pivot.Add(o)
	}
	return cells
}
