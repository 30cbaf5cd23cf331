package ebiten_test

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/isopack/crate"
	"github.com/plus3/isopack/debugui"
	debugui_ebiten "github.com/plus3/isopack/debugui/ebiten"
	"github.com/plus3/isopack/loop"
)

// Game implements ebiten.Game with the debug panels drawn on top.
type Game struct {
	scheduler    *loop.Scheduler
	imguiBackend *debugui_ebiten.ImguiBackend
	timer        *debugui.FrameTimer
}

func (g *Game) Update() error {
	// panels render inside the scheduler's end-of-frame flush
	g.imguiBackend.Frame(func() {
		g.scheduler.Once(g.timer.DeltaTime())
	})
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw the container here
	// ...

	g.imguiBackend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.imguiBackend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	imguiBackend := debugui_ebiten.NewImguiBackend("isopack debug", 1280, 720)

	factory := crate.MustFactory(crate.DefaultCatalog(), nil, nil)
	session, err := crate.NewSession(crate.DefaultConfig(), factory)
	if err != nil {
		panic(err)
	}

	scheduler := loop.NewScheduler(session)
	ui := debugui.Install(scheduler)

	scheduler.Register(loop.SystemFunc(func(frame *loop.UpdateFrame) {
		if ui.Input.WantCaptureMouse {
			return
		}
		// Translate pointer input into frame.Commands here
	}))

	game := &Game{
		scheduler:    scheduler,
		imguiBackend: imguiBackend,
		timer:        debugui.NewFrameTimer(),
	}

	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
