// Package debugui provides Dear ImGui panels for a running packing session.
// Panels render from the frame's command buffer, after the frame's commands
// have been applied, so they always show the state the player will see.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/isopack/loop"
)

// ImguiItem holds a Dear ImGui render function called once per frame.
type ImguiItem struct {
	Render func(frame *loop.UpdateFrame)
}

// ImguiInputState tracks whether Dear ImGui is consuming mouse or keyboard
// input. Input systems should leave the session alone while it does.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem updates the input state and defers every item's render
// function to the end of the frame.
type ImguiSystem struct {
	Items      []*ImguiItem
	InputState *ImguiInputState
}

func (i *ImguiSystem) Name() string { return "imgui" }

func (i *ImguiSystem) Execute(frame *loop.UpdateFrame) {
	if i.InputState != nil {
		io := imgui.CurrentIO()
		i.InputState.WantCaptureMouse = io.WantCaptureMouse()
		i.InputState.WantCaptureKeyboard = io.WantCaptureKeyboard()
	}

	for _, item := range i.Items {
		frame.Commands.Defer(func() { item.Render(frame) })
	}
}
