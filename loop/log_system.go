package loop

import (
	"log/slog"

	"github.com/plus3/isopack/crate"
)

// LogSystem writes the previous frame's events to a structured logger.
// Placements and rejections are debug level; game over and resets are info.
type LogSystem struct {
	Logger *slog.Logger
}

func (s *LogSystem) Name() string { return "log" }

func (s *LogSystem) Execute(frame *UpdateFrame) {
	for _, ev := range frame.Events {
		switch ev.Kind {
		case crate.EventPlaced:
			s.Logger.Debug("piece placed",
				"piece", ev.Result.Piece.ID,
				"cell", ev.Cell.String(),
				"z", ev.Result.Z,
				"blocks", len(ev.Result.Blocks))
		case crate.EventRejected:
			s.Logger.Debug("placement rejected", "cell", ev.Cell.String())
		case crate.EventRotated:
			s.Logger.Debug("piece rotated")
		case crate.EventGameOver:
			s.Logger.Info("container full",
				"score", ev.Result.Score,
				"efficiency", ev.Result.Efficiency)
		case crate.EventReset:
			s.Logger.Info("session reset")
		}
	}
}
