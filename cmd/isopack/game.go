package main

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/isopack/crate"
	"github.com/plus3/isopack/debugui"
	debugui_ebiten "github.com/plus3/isopack/debugui/ebiten"
	"github.com/plus3/isopack/loop"
	"github.com/plus3/isopack/render"
)

// Game implements ebiten.Game. Update runs one scheduler frame; Draw renders
// a snapshot of the session and never changes it.
type Game struct {
	logger    *slog.Logger
	scheduler *loop.Scheduler
	scene     *render.Scene
	hud       *render.HUD
	canvas    *ebitenCanvas
	viewport  crate.Viewport
	input     *InputSystem
	timer     *debugui.FrameTimer

	// nil unless the debug overlay is enabled
	imgui *debugui_ebiten.ImguiBackend
}

func (g *Game) snapshot() crate.Snapshot {
	return g.scheduler.Session().Snapshot()
}

func (g *Game) cellAt(p crate.Point) crate.Cell {
	return g.viewport.CellAt(g.scene.Projection(), p)
}

func (g *Game) Update() error {
	if g.input.Quit {
		g.logger.Info("quit requested", "score", g.scheduler.Session().Score())
		return ebiten.Termination
	}

	dt := g.timer.DeltaTime()
	if g.imgui != nil {
		g.imgui.Frame(func() { g.scheduler.Once(dt) })
	} else {
		g.scheduler.Once(dt)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.snapshot()
	g.canvas.dst = screen
	g.scene.Draw(g.canvas, snap, g.viewport)
	g.hud.Draw(g.canvas, snap, g.viewport)

	if g.imgui != nil {
		g.imgui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.viewport.Width != float64(outsideWidth) || g.viewport.Height != float64(outsideHeight) {
		g.viewport = crate.NewViewport(float64(outsideWidth), float64(outsideHeight))
		g.logger.Debug("viewport resized", "width", outsideWidth, "height", outsideHeight, "zoom", g.viewport.Zoom)
	}
	if g.imgui != nil {
		g.imgui.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
