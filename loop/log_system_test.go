package loop_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/plus3/isopack/crate"
	"github.com/plus3/isopack/loop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLogger(buf *bytes.Buffer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	}))
}

func TestLogSystem(t *testing.T) {
	var buf bytes.Buffer
	scheduler := loop.NewScheduler(newSession(t))
	scheduler.Register(&placeSystem{cells: []crate.Cell{{X: 2, Y: 3}, {X: -1, Y: 0}}})
	scheduler.Register(&loop.LogSystem{Logger: newLogger(&buf, slog.LevelDebug)})

	for range 3 {
		scheduler.Once(1.0 / 60)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `level=DEBUG msg="piece placed" piece=p-1 cell=(2,3) z=0 blocks=1`, lines[0])
	assert.Equal(t, `level=DEBUG msg="placement rejected" cell=(-1,0)`, lines[1])
}

func TestLogSystemInfoLevel(t *testing.T) {
	var buf bytes.Buffer
	scheduler := loop.NewScheduler(newSession(t))
	scheduler.Register(&placeSystem{cells: []crate.Cell{{X: 0, Y: 0}}})
	scheduler.Register(loop.SystemFunc(func(frame *loop.UpdateFrame) {
		if len(frame.Events) > 0 {
			frame.Commands.Reset()
		}
	}))
	scheduler.Register(&loop.LogSystem{Logger: newLogger(&buf, slog.LevelInfo)})

	for range 3 {
		scheduler.Once(1.0 / 60)
	}

	assert.Equal(t, "level=INFO msg=\"session reset\"\n", buf.String())
}

func TestLogSystemGameOverScore(t *testing.T) {
	catalog := crate.Catalog{
		Templates: [][]crate.Vec3{{{X: 0, Y: 0, Z: 0}}},
		Palette:   []crate.Color{"#FF6600"},
	}
	cfg := crate.Config{GridSize: 1, MaxHeight: 1, TileWidth: 64, TileHeight: 32}
	session, err := crate.NewSession(cfg, crate.MustFactory(catalog, nil, crate.SequentialIDs("p")))
	require.NoError(t, err)

	var buf bytes.Buffer
	scheduler := loop.NewScheduler(session)
	scheduler.Register(&placeSystem{cells: []crate.Cell{{X: 0, Y: 0}}})
	frames := 0
	scheduler.Register(loop.SystemFunc(func(frame *loop.UpdateFrame) {
		frames++
		if frames == 1 {
			// flushed together with the filling placement
			frame.Commands.Reset()
		}
	}))
	scheduler.Register(&loop.LogSystem{Logger: newLogger(&buf, slog.LevelInfo)})

	scheduler.Once(1.0 / 60)
	scheduler.Once(1.0 / 60)

	require.Zero(t, session.Score(), "the reset is already applied when the events are logged")
	assert.Equal(t, "level=INFO msg=\"container full\" score=1 efficiency=100\n"+
		"level=INFO msg=\"session reset\"\n", buf.String())
}
