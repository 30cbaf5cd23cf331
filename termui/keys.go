package termui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/plus3/isopack/crate"
)

// Action is a player request decoded from a key press.
type Action int

const (
	ActionNone Action = iota
	ActionMove
	ActionPlace
	ActionRotate
	ActionReset
	ActionQuit
)

// Key decodes a key press. For ActionMove the returned cell is the cursor
// step.
func Key(ev *tcell.EventKey) (Action, crate.Cell) {
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionMove, crate.Cell{Y: -1}
	case tcell.KeyDown:
		return ActionMove, crate.Cell{Y: 1}
	case tcell.KeyLeft:
		return ActionMove, crate.Cell{X: -1}
	case tcell.KeyRight:
		return ActionMove, crate.Cell{X: 1}
	case tcell.KeyEnter:
		return ActionPlace, crate.Cell{}
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit, crate.Cell{}
	case tcell.KeyRune:
	default:
		return ActionNone, crate.Cell{}
	}

	switch ev.Rune() {
	case 'k':
		return ActionMove, crate.Cell{Y: -1}
	case 'j':
		return ActionMove, crate.Cell{Y: 1}
	case 'h':
		return ActionMove, crate.Cell{X: -1}
	case 'l':
		return ActionMove, crate.Cell{X: 1}
	case 'r', ' ':
		return ActionRotate, crate.Cell{}
	case 'n':
		return ActionReset, crate.Cell{}
	case 'q':
		return ActionQuit, crate.Cell{}
	}
	return ActionNone, crate.Cell{}
}
