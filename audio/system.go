package audio

import (
	"log/slog"

	"github.com/plus3/isopack/loop"
)

// CueSystem plays the cues for the events of the previous frame.
type CueSystem struct {
	Player Player
	Logger *slog.Logger
}

func (s *CueSystem) Name() string { return "audio" }

func (s *CueSystem) Execute(frame *loop.UpdateFrame) {
	for _, cue := range Cues(frame.Events) {
		if !s.Player.Play(cue) && s.Logger != nil {
			s.Logger.Debug("cue not played", "cue", cue)
		}
	}
}
