// Package termui is a terminal frontend for a packing session. It shows the
// container from above as a height map and drives the session from the
// keyboard.
package termui

import (
	"context"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/isopack/crate"
	"github.com/plus3/isopack/loop"
)

// App owns the screen and feeds key presses into a scheduler.
type App struct {
	screen    tcell.Screen
	scheduler *loop.Scheduler
	logger    *slog.Logger
	input     *KeyInput
	quit      bool
}

// NewApp registers the keyboard input system on scheduler. The screen must
// already be initialized.
func NewApp(screen tcell.Screen, scheduler *loop.Scheduler, logger *slog.Logger) *App {
	cfg := scheduler.Session().Config()
	a := &App{
		screen:    screen,
		scheduler: scheduler,
		logger:    logger,
		input:     NewKeyInput(cfg.GridSize, crate.Cell{X: cfg.GridSize / 2, Y: cfg.GridSize / 2}),
	}
	scheduler.Register(a.input)
	return a
}

// Handle processes one terminal event and reports whether the app should
// keep running.
func (a *App) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		action, step := Key(ev)
		if action == ActionQuit {
			a.quit = true
			return false
		}
		a.input.Push(action, step)
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

// Step advances the session one frame and redraws.
func (a *App) Step(dt float64) {
	a.scheduler.Once(dt)
	Draw(a.screen, a.scheduler.Session().Snapshot())
}

// Run polls the terminal and steps at interval until the player quits or
// ctx is done.
func (a *App) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	a.logger.Info("terminal frontend started", "grid", a.scheduler.Session().Config().GridSize)
	last := time.Now()
	a.Step(0)

	for !a.quit {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			if !a.Handle(ev) {
				a.logger.Info("quit requested", "score", a.scheduler.Session().Score())
				return
			}
		case now := <-ticker.C:
			a.Step(now.Sub(last).Seconds())
			last = now
		}
	}
}
