// Command isopack is the windowed packing game.
package main

import (
	"flag"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/isopack/audio"
	"github.com/plus3/isopack/crate"
	"github.com/plus3/isopack/debugui"
	debugui_ebiten "github.com/plus3/isopack/debugui/ebiten"
	"github.com/plus3/isopack/loop"
	"github.com/plus3/isopack/render"
)

const (
	ScreenWidth  = 1024
	ScreenHeight = 768
)

var (
	gridSize   = flag.Int("grid", 6, "Container floor size in cells")
	maxHeight  = flag.Int("height", 8, "Container height in cells")
	tileWidth  = flag.Int("tile-width", 64, "Tile width in pixels")
	tileHeight = flag.Int("tile-height", 32, "Tile height in pixels")
	seed       = flag.Uint64("seed", 0, "Piece sequence seed (0 for random)")
	mute       = flag.Bool("mute", false, "Disable sound")
	volume     = flag.Float64("volume", 0.6, "Master volume between 0 and 1")
	debug      = flag.Bool("debug", false, "Show the ImGui debug overlay")
	logLevel   = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
)

func main() {
	flag.Parse()

	logger := newLogger(*logLevel)

	cfg := crate.Config{
		GridSize:   *gridSize,
		MaxHeight:  *maxHeight,
		TileWidth:  *tileWidth,
		TileHeight: *tileHeight,
	}
	session, err := newSession(cfg, *seed)
	if err != nil {
		logger.Error("failed to start session", "error", err)
		os.Exit(1)
	}
	logger.Info("session started", "grid", cfg.GridSize, "height", cfg.MaxHeight, "volume", cfg.Volume())

	sound := audio.NewManager(*volume)
	if *mute {
		sound.SetMuted(true)
	} else if err := sound.Init(); err != nil {
		logger.Warn("audio unavailable, continuing muted", "error", err)
	}
	defer sound.Close()

	theme := render.DefaultTheme()
	scene := render.NewScene(cfg, theme)
	game := &Game{
		logger:   logger,
		scene:    scene,
		hud:      render.NewHUD(theme, scene),
		canvas:   &ebitenCanvas{},
		viewport: crate.NewViewport(ScreenWidth, ScreenHeight),
		timer:    debugui.NewFrameTimer(),
	}

	scheduler := loop.NewScheduler(session)
	game.scheduler = scheduler
	game.input = &InputSystem{game: game}
	scheduler.Register(game.input)
	scheduler.Register(&audio.CueSystem{Player: sound, Logger: logger})
	scheduler.Register(&loop.LogSystem{Logger: logger})

	if *debug {
		game.imgui = debugui_ebiten.NewImguiBackend("isopack", ScreenWidth, ScreenHeight)
		ui := debugui.Install(scheduler)
		game.input.capture = &ui.Input
	} else {
		ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
		ebiten.SetWindowTitle("isopack")
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		sound.Close()
		logger.Error("game exited with error", "error", err)
		os.Exit(1)
	}
}

func newSession(cfg crate.Config, seed uint64) (*crate.Session, error) {
	var rng *rand.Rand
	if seed != 0 {
		rng = rand.New(rand.NewPCG(seed, seed))
	}
	factory, err := crate.NewFactory(crate.DefaultCatalog(), rng, nil)
	if err != nil {
		return nil, err
	}
	return crate.NewSession(cfg, factory)
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}
