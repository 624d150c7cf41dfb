package engine

// HoldSlot stores at most one piece type set aside by the player.
// CanHold is cleared by a hold and restored only by a lock.
type HoldSlot struct {
	Piece   PieceType
	Held    bool
	CanHold bool
}

func newHoldSlot() HoldSlot {
	return HoldSlot{CanHold: true}
}

// Hold sets the active piece aside without locking it. With an empty slot
// the next piece comes from the queue on the following spawn; otherwise the
// held type spawns immediately and the two are swapped.
func (e *Engine) Hold() bool {
	if e.mode != ModePlaying || !e.hasActive || !e.hold.CanHold {
		return false
	}
	current := e.active.Type
	e.hasActive = false
	e.active = ActivePiece{}
	e.hold.CanHold = false
	e.emit(Event{Kind: EventHeld, Piece: current})

	if !e.hold.Held {
		e.hold.Piece = current
		e.hold.Held = true
		return true
	}
	swap := e.hold.Piece
	e.hold.Piece = current
	e.Spawn(swap)
	return true
}

// HoldSlot returns the current hold state.
func (e *Engine) HoldSlot() HoldSlot {
	return e.hold
}
