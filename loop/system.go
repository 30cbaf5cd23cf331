package loop

// System is a behavior run once per frame. Systems may keep their own state
// between frames. They read the session through the frame and change it only
// by queueing commands.
type System interface {
	Execute(frame *UpdateFrame)
}

// Named systems report their own name in scheduler stats instead of their
// type name.
type Named interface {
	Name() string
}

// SystemFunc adapts a plain function to a System.
type SystemFunc func(frame *UpdateFrame)

func (f SystemFunc) Execute(frame *UpdateFrame) {
	f(frame)
}
