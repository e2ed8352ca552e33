package engine

// Invalidation is a set of flags naming which parts of the state changed
// since presentation last validated them.
type Invalidation uint8

const (
	InvalidGrid Invalidation = 1 << iota // court contents or current piece
	InvalidNext                          // next piece
	InvalidScore                         // score or visual score
	InvalidRows                          // row count or level
	InvalidState                         // playing/paused/over

	InvalidAll = InvalidGrid | InvalidNext | InvalidScore | InvalidRows | InvalidState
)

// Has reports whether all flags in f are set.
func (i Invalidation) Has(f Invalidation) bool {
	return i&f == f
}

// EventType identifies an engine notification.
type EventType int

const (
	EventReset EventType = iota
	EventStarted
	EventPaused
	EventResumed
	EventLocked
	EventLinesCleared
	EventLevelUp
	EventBonus
	EventGameOver
)

// String returns a human-readable event name.
func (e EventType) String() string {
	switch e {
	case EventReset:
		return "reset"
	case EventStarted:
		return "started"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventLocked:
		return "locked"
	case EventLinesCleared:
		return "lines_cleared"
	case EventLevelUp:
		return "level_up"
	case EventBonus:
		return "bonus"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is delivered to listeners synchronously from inside the engine call
// that caused it. Lines is set for EventLinesCleared, Level for EventLevelUp.
type Event struct {
	Type  EventType
	Score int
	Rows  int
	Lines int
	Level int
}

// Listener receives engine events. Listeners must not call back into the
// engine's mutating methods.
type Listener func(Event)
