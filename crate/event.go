package crate

import "fmt"

// EventKind identifies a session transition.
type EventKind int

const (
	EventPlaced EventKind = iota
	EventRejected
	EventRotated
	EventGameOver
	EventReset
)

func (k EventKind) String() string {
	switch k {
	case EventPlaced:
		return "placed"
	case EventRejected:
		return "rejected"
	case EventRotated:
		return "rotated"
	case EventGameOver:
		return "game over"
	case EventReset:
		return "reset"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event records a transition applied to a session. Result is set for
// EventPlaced and EventGameOver, Cell for EventPlaced and EventRejected.
type Event struct {
	Kind   EventKind
	Cell   Cell
	Result PlaceResult
}

func (e Event) String() string {
	switch e.Kind {
	case EventPlaced:
		return fmt.Sprintf("placed %s at %s z=%d", e.Result.Piece.ID, e.Cell, e.Result.Z)
	case EventRejected:
		return fmt.Sprintf("rejected at %s", e.Cell)
	default:
		return e.Kind.String()
	}
}
