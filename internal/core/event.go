package core

// EventKind is a gameplay notification the platform may react to,
// typically by playing a sound.
type EventKind int

const (
	EventMove EventKind = iota + 1
	EventRotate
	EventHold
	EventLock
	EventLineClear
	EventLevelUp
	EventGameOver
	EventRestart
)

func (k EventKind) String() string {
	switch k {
	case EventMove:
		return "move"
	case EventRotate:
		return "rotate"
	case EventHold:
		return "hold"
	case EventLock:
		return "lock"
	case EventLineClear:
		return "line_clear"
	case EventLevelUp:
		return "level_up"
	case EventGameOver:
		return "game_over"
	case EventRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Event is a single notification. Value carries the line count for
// EventLineClear and the new level for EventLevelUp.
type Event struct {
	Kind  EventKind
	Value int
}
