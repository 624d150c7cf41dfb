package engine

// ActivePiece is the falling piece: a type, a pivot and a rotation state.
// Its four cells are derived, never stored.
type ActivePiece struct {
	Type     PieceType
	Pivot    Point
	Rotation Rotation
}

// Cells returns the four board cells the piece occupies.
func (p ActivePiece) Cells() [4]Point {
	return CellsAt(p.Type, p.Rotation, p.Pivot)
}

// SpawnPivot returns the pivot every piece spawns at: the middle column,
// two rows below the top of the visible field.
func (e *Engine) SpawnPivot() Point {
	return Point{X: e.cfg.Width / 2, Y: e.cfg.Height - 2}
}

// Spawn places a piece of type t at the spawn pivot in rotation 0. If any of
// its cells is invalid the engine enters GameOver and no piece is created.
// Spawn is a no-op while a piece is active or the game is over.
func (e *Engine) Spawn(t PieceType) bool {
	if e.mode != ModePlaying || e.hasActive || !t.Valid() {
		return false
	}
	p := ActivePiece{Type: t, Pivot: e.SpawnPivot(), Rotation: RotationSpawn}
	if !e.board.Fits(p.Cells()) {
		e.gameOver()
		return false
	}
	e.active = p
	e.hasActive = true
	return true
}

// spawnNext consumes the lookahead piece, refills it and spawns.
func (e *Engine) spawnNext() bool {
	t := e.next
	e.next = e.rng.Next()
	return e.Spawn(t)
}

func (e *Engine) spawnIfDue() {
	if e.mode == ModePlaying && !e.hasActive {
		e.spawnNext()
	}
}

// Active returns the falling piece, if any.
func (e *Engine) Active() (ActivePiece, bool) {
	return e.active, e.hasActive
}

// Move shifts the active piece by (dx, dy). Either all four cells move or
// none do.
func (e *Engine) Move(dx, dy int) bool {
	if !e.move(dx, dy) {
		return false
	}
	e.emit(Event{Kind: EventMoved, Piece: e.active.Type})
	return true
}

func (e *Engine) move(dx, dy int) bool {
	if e.mode != ModePlaying || !e.hasActive {
		return false
	}
	pivot := e.active.Pivot.Add(Point{X: dx, Y: dy})
	if !e.board.Fits(CellsAt(e.active.Type, e.active.Rotation, pivot)) {
		return false
	}
	e.active.Pivot = pivot
	return true
}

// Rotate turns the active piece once in direction dir. Kick offsets are
// tried in table order and the first one whose cells are all valid is
// committed. When none fits the piece is left untouched.
func (e *Engine) Rotate(dir Direction) bool {
	if e.mode != ModePlaying || !e.hasActive {
		return false
	}
	from := e.active.Rotation
	to := from.Apply(dir)
	for _, kick := range Kicks(e.active.Type, from, to) {
		pivot := e.active.Pivot.Add(kick)
		if e.board.Fits(CellsAt(e.active.Type, to, pivot)) {
			e.active.Pivot = pivot
			e.active.Rotation = to
			e.emit(Event{Kind: EventRotated, Piece: e.active.Type})
			return true
		}
	}
	return false
}

// SoftDrop moves the active piece down one row. A blocked soft drop does
// nothing; only gravity and hard drop lock.
func (e *Engine) SoftDrop() bool {
	return e.Move(0, -1)
}

// HardDrop moves the active piece down until it is blocked and locks it.
func (e *Engine) HardDrop() bool {
	if e.mode != ModePlaying || !e.hasActive {
		return false
	}
	moved := false
	for e.move(0, -1) {
		moved = true
	}
	if moved {
		e.emit(Event{Kind: EventMoved, Piece: e.active.Type})
	}
	// The last attempt was blocked.
	e.Lock()
	return true
}

// GravityStep performs one gravity row. A blocked downward move locks the
// piece in place.
func (e *Engine) GravityStep() bool {
	if e.mode != ModePlaying || !e.hasActive {
		return false
	}
	if e.move(0, -1) {
		return true
	}
	return e.Lock()
}

// Ghost returns the cells the active piece would occupy after dropping as far
// as possible. It never changes engine state.
func (e *Engine) Ghost() ([4]Point, bool) {
	if !e.hasActive {
		return [4]Point{}, false
	}
	p := e.active
	for e.board.Fits(CellsAt(p.Type, p.Rotation, p.Pivot.Add(Point{Y: -1}))) {
		p.Pivot.Y--
	}
	return p.Cells(), true
}
