// Command isopack-term plays the packing game in a terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/isopack/audio"
	"github.com/plus3/isopack/crate"
	"github.com/plus3/isopack/loop"
	"github.com/plus3/isopack/termui"
)

var (
	gridSize  = flag.Int("grid", 6, "Container floor size in cells")
	maxHeight = flag.Int("height", 8, "Container height in cells")
	seed      = flag.Uint64("seed", 0, "Piece sequence seed (0 for random)")
	mute      = flag.Bool("mute", false, "Disable sound")
	volume    = flag.Float64("volume", 0.6, "Master volume between 0 and 1")
	logFile   = flag.String("log", "", "Write logs to this file (the terminal is busy)")
	logLevel  = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	fps       = flag.Int("fps", 30, "Redraw rate")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	logger, closeLog, err := newLogger(*logFile, *logLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := crate.DefaultConfig()
	cfg.GridSize = *gridSize
	cfg.MaxHeight = *maxHeight

	var rng *rand.Rand
	if *seed != 0 {
		rng = rand.New(rand.NewPCG(*seed, *seed))
	}
	factory, err := crate.NewFactory(crate.DefaultCatalog(), rng, nil)
	if err != nil {
		return err
	}
	session, err := crate.NewSession(cfg, factory)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	sound := audio.NewManager(*volume)
	if *mute {
		sound.SetMuted(true)
	} else if err := sound.Init(); err != nil {
		logger.Warn("audio unavailable, continuing muted", "error", err)
	}
	defer sound.Close()

	scheduler := loop.NewScheduler(session)
	app := termui.NewApp(screen, scheduler, logger)
	scheduler.Register(&audio.CueSystem{Player: sound, Logger: logger})
	scheduler.Register(&loop.LogSystem{Logger: logger})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app.Run(ctx, time.Second/time.Duration(max(1, *fps)))
	return nil
}

func newLogger(path, level string) (*slog.Logger, func(), error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return nil, nil, fmt.Errorf("log level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: l}

	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, opts)), func() { f.Close() }, nil
}
