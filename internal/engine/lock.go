package engine

// Lock writes the active piece into the board, restores the hold ability and
// runs the line clear pass. The piece slot is left empty so the next spawn
// is due.
func (e *Engine) Lock() bool {
	if e.mode != ModePlaying || !e.hasActive {
		return false
	}
	p := e.active
	e.board.Lock(p.Cells(), p.Type.Cell())
	e.hasActive = false
	e.active = ActivePiece{}
	e.hold.CanHold = true
	e.emit(Event{Kind: EventLocked, Piece: p.Type})

	e.clearLines()
	return true
}

func (e *Engine) clearLines() {
	k := e.board.ClearFullRows()
	if k == 0 {
		return
	}
	leveled := e.score.apply(k)
	e.emit(Event{Kind: EventLinesCleared, Lines: k})
	if leveled {
		e.gravity.interval = e.cfg.Gravity.Interval(e.score.Level)
		e.emit(Event{Kind: EventLevelUp, Level: e.score.Level})
	}
}

func (e *Engine) gameOver() {
	e.mode = ModeGameOver
	e.hasActive = false
	e.active = ActivePiece{}
	e.emit(Event{Kind: EventGameOver})
}
