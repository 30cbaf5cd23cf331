package loop

import "github.com/plus3/isopack/crate"

type UpdateFrame struct {
	DeltaTime float64
	Commands  *Commands
	Session   *crate.Session

	// Events holds the transitions applied when the previous frame's
	// commands were flushed.
	Events []crate.Event
}

func newUpdateFrame(dt float64, session *crate.Session, events []crate.Event) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  newCommands(),
		Session:   session,
		Events:    events,
	}
}
