package engine

import "time"

// Snapshot is a read-only copy of everything a renderer needs after a tick.
type Snapshot struct {
	Width      int
	Height     int
	HiddenRows int

	// Board holds every row including the hidden buffer, bottom row first.
	Board [][]Cell

	Active      ActivePiece
	HasActive   bool
	ActiveCells [4]Point
	GhostCells  [4]Point

	Next PieceType
	Hold HoldSlot

	Score    int
	Lines    int
	Level    int
	Interval time.Duration
	Mode     Mode
}

// Snapshot copies out the current state.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Width:      e.cfg.Width,
		Height:     e.cfg.Height,
		HiddenRows: e.cfg.HiddenRows,
		Board:      e.board.Rows(),
		Active:     e.active,
		HasActive:  e.hasActive,
		Next:       e.next,
		Hold:       e.hold,
		Score:      e.score.Score,
		Lines:      e.score.Lines,
		Level:      e.score.Level,
		Interval:   e.gravity.interval,
		Mode:       e.mode,
	}
	if e.hasActive {
		s.ActiveCells = e.active.Cells()
		s.GhostCells, _ = e.Ghost()
	}
	return s
}

// CellAt returns the locked cell at (x, y), or Empty when out of range.
func (s Snapshot) CellAt(x, y int) Cell {
	if y < 0 || y >= len(s.Board) || x < 0 || x >= s.Width {
		return Empty
	}
	return s.Board[y][x]
}

// IsActive reports whether (x, y) is one of the falling piece's cells.
func (s Snapshot) IsActive(x, y int) bool {
	return s.HasActive && containsPoint(s.ActiveCells, Point{X: x, Y: y})
}

// IsGhost reports whether (x, y) is one of the ghost projection's cells.
func (s Snapshot) IsGhost(x, y int) bool {
	return s.HasActive && containsPoint(s.GhostCells, Point{X: x, Y: y})
}

func containsPoint(cells [4]Point, p Point) bool {
	for _, c := range cells {
		if c == p {
			return true
		}
	}
	return false
}
