package termui

import (
	"github.com/plus3/isopack/crate"
	"github.com/plus3/isopack/loop"
)

type keyPress struct {
	action Action
	step   crate.Cell
}

// KeyInput turns buffered key presses into session commands. The terminal
// cursor never leaves the floor, and it is re-sent every frame so it is
// restored after a reset.
type KeyInput struct {
	size    int
	cursor  crate.Cell
	pending []keyPress
}

func NewKeyInput(size int, start crate.Cell) *KeyInput {
	return &KeyInput{size: size, cursor: start}
}

func (k *KeyInput) Name() string { return "termui.input" }

// Push buffers a key press for the next frame.
func (k *KeyInput) Push(action Action, step crate.Cell) {
	if action == ActionNone {
		return
	}
	k.pending = append(k.pending, keyPress{action: action, step: step})
}

func (k *KeyInput) Cursor() crate.Cell {
	return k.cursor
}

func (k *KeyInput) Execute(frame *loop.UpdateFrame) {
	frame.Commands.MoveCursor(k.cursor)

	for _, p := range k.pending {
		switch p.action {
		case ActionMove:
			k.cursor.X = min(k.size-1, max(0, k.cursor.X+p.step.X))
			k.cursor.Y = min(k.size-1, max(0, k.cursor.Y+p.step.Y))
			frame.Commands.MoveCursor(k.cursor)
		case ActionPlace:
			frame.Commands.Place()
		case ActionRotate:
			frame.Commands.Rotate()
		case ActionReset:
			frame.Commands.Reset()
			frame.Commands.MoveCursor(k.cursor)
		}
	}
	k.pending = k.pending[:0]
}
