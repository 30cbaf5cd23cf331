package loop

import "github.com/plus3/isopack/crate"

// Commands buffers input for the session. Systems queue commands while the
// frame runs and the scheduler applies them in queue order once every system
// has executed, so all systems in a frame see the same session state.
type Commands struct {
	ops    []command
	defers []func()
}

func newCommands() *Commands {
	return &Commands{}
}

type opKind int

const (
	opMoveCursor opKind = iota
	opClearCursor
	opPlace
	opRotate
	opReset
)

type command struct {
	kind opKind
	cell crate.Cell
}

// MoveCursor queues a cursor update to cell.
func (c *Commands) MoveCursor(cell crate.Cell) {
	c.ops = append(c.ops, command{kind: opMoveCursor, cell: cell})
}

// ClearCursor queues removal of the cursor, e.g. when the pointer leaves the
// canvas.
func (c *Commands) ClearCursor() {
	c.ops = append(c.ops, command{kind: opClearCursor})
}

// Place queues a placement at whatever the cursor is when the command runs.
func (c *Commands) Place() {
	c.ops = append(c.ops, command{kind: opPlace})
}

// PlaceAt queues a cursor move followed by a placement. Used for taps, which
// have no hover phase.
func (c *Commands) PlaceAt(cell crate.Cell) {
	c.MoveCursor(cell)
	c.Place()
}

func (c *Commands) Rotate() {
	c.ops = append(c.ops, command{kind: opRotate})
}

func (c *Commands) Reset() {
	c.ops = append(c.ops, command{kind: opReset})
}

// Defer queues a function to run after all session commands of the frame.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len is the number of queued session commands.
func (c *Commands) Len() int {
	return len(c.ops)
}

// Flush applies every queued command to session in order, runs deferred
// functions and resets the buffer. It returns the transitions that actually
// happened. Commands the session ignores (anything but Reset after game over,
// Place without a cursor) produce no event.
func (c *Commands) Flush(session *crate.Session) []crate.Event {
	var events []crate.Event

	for _, cmd := range c.ops {
		switch cmd.kind {
		case opMoveCursor:
			session.SetCursor(cmd.cell)
		case opClearCursor:
			session.ClearCursor()
		case opPlace:
			events = appendPlace(events, session)
		case opRotate:
			if session.Rotate() {
				events = append(events, crate.Event{Kind: crate.EventRotated})
			}
		case opReset:
			session.Reset()
			events = append(events, crate.Event{Kind: crate.EventReset})
		}
	}

	for _, fn := range c.defers {
		fn()
	}

	c.ops = c.ops[:0]
	c.defers = c.defers[:0]
	return events
}

func appendPlace(events []crate.Event, session *crate.Session) []crate.Event {
	cell, hasCursor := session.Cursor()
	if session.State() != crate.Playing || !hasCursor {
		return events
	}

	res, ok := session.Place()
	if !ok {
		return append(events, crate.Event{Kind: crate.EventRejected, Cell: cell})
	}

	events = append(events, crate.Event{Kind: crate.EventPlaced, Cell: cell, Result: res})
	if res.GameOver {
		events = append(events, crate.Event{Kind: crate.EventGameOver, Cell: cell, Result: res})
	}
	return events
}
