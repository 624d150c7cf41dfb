package engine

// EventKind identifies a one-shot notification emitted by the engine.
type EventKind uint8

const (
	EventMoved EventKind = iota + 1
	EventRotated
	EventHeld
	EventLocked
	EventLinesCleared
	EventLevelUp
	EventGameOver
	EventRestarted
)

var eventNames = map[EventKind]string{
	EventMoved:        "moved",
	EventRotated:      "rotated",
	EventHeld:         "held",
	EventLocked:       "locked",
	EventLinesCleared: "lines_cleared",
	EventLevelUp:      "level_up",
	EventGameOver:     "game_over",
	EventRestarted:    "restarted",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is a notification for audio and other observers. Only the fields
// relevant to Kind are set: Piece for moves, rotations, holds and locks,
// Lines for line clears, Level for level ups.
type Event struct {
	Kind  EventKind
	Piece PieceType
	Lines int
	Level int
}

func (e *Engine) emit(ev Event) {
	e.events = append(e.events, ev)
}

// DrainEvents returns the events emitted since the last drain and clears
// the buffer. Tick drains automatically.
func (e *Engine) DrainEvents() []Event {
	if len(e.events) == 0 {
		return nil
	}
	out := e.events
	e.events = nil
	return out
}
