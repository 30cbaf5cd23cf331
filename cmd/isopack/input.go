package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/isopack/crate"
	"github.com/plus3/isopack/debugui"
	"github.com/plus3/isopack/loop"
	"github.com/plus3/isopack/render"
)

// InputSystem translates mouse, touch and keyboard input into session
// commands. Touches aim TouchOffset pixels above the finger and place on
// release. While a finger is down or lifting the mouse is ignored, so an
// emulated pointer cannot move the cursor away from the lifted touch point.
type InputSystem struct {
	game    *Game
	capture *debugui.ImguiInputState

	lastCursor crate.Point
	touches    []ebiten.TouchID
	released   []ebiten.TouchID

	Quit bool
}

func (s *InputSystem) Name() string { return "input" }

func (s *InputSystem) Execute(frame *loop.UpdateFrame) {
	s.touches = ebiten.AppendTouchIDs(s.touches[:0])
	s.released = inpututil.AppendJustReleasedTouchIDs(s.released[:0])

	if s.capture == nil || !s.capture.WantCaptureMouse {
		if s.touching() {
			s.lastCursor = pointer()
		} else {
			s.mouse(frame)
		}
		s.touch(frame)
	}
	if s.capture == nil || !s.capture.WantCaptureKeyboard {
		s.keyboard(frame)
	}
}

func (s *InputSystem) mouse(frame *loop.UpdateFrame) {
	p := pointer()
	snap := s.game.snapshot()

	if p != s.lastCursor {
		s.lastCursor = p
		frame.Commands.MoveCursor(s.game.cellAt(p))
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if action, ok := s.game.hud.HitTest(snap, s.game.viewport, p); ok {
			s.button(frame, action)
			return
		}
		frame.Commands.PlaceAt(s.game.cellAt(p))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		frame.Commands.Rotate()
	}
}

func (s *InputSystem) touch(frame *loop.UpdateFrame) {
	snap := s.game.snapshot()

	for _, id := range s.touches {
		x, y := ebiten.TouchPosition(id)
		frame.Commands.MoveCursor(s.game.cellAt(lifted(x, y)))
	}

	for _, id := range s.released {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		raw := crate.Point{X: float64(x), Y: float64(y)}
		if action, ok := s.game.hud.HitTest(snap, s.game.viewport, raw); ok {
			s.button(frame, action)
			continue
		}
		frame.Commands.PlaceAt(s.game.cellAt(lifted(x, y)))
	}
}

func (s *InputSystem) touching() bool {
	return len(s.touches) > 0 || len(s.released) > 0
}

func (s *InputSystem) keyboard(frame *loop.UpdateFrame) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		frame.Commands.Rotate()
	case inpututil.IsKeyJustPressed(ebiten.KeyBackspace), inpututil.IsKeyJustPressed(ebiten.KeyN):
		frame.Commands.Reset()
	case inpututil.IsKeyJustPressed(ebiten.KeyQ), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		s.Quit = true
	}
}

func (s *InputSystem) button(frame *loop.UpdateFrame, action render.Action) {
	switch action {
	case render.ActionRotate:
		frame.Commands.Rotate()
	case render.ActionReset:
		frame.Commands.Reset()
	}
}

func pointer() crate.Point {
	x, y := ebiten.CursorPosition()
	return crate.Point{X: float64(x), Y: float64(y)}
}

func lifted(x, y int) crate.Point {
	return crate.Point{X: float64(x), Y: float64(y - crate.TouchOffset)}
}
