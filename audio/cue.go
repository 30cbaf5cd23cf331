// Package audio synthesizes the sound cues of a packing session with beep.
// Cues are generated on the fly; there are no sample files.
package audio

import (
	"fmt"

	"github.com/plus3/isopack/crate"
)

// Cue identifies a sound effect.
type Cue int

const (
	CueNone Cue = iota
	CuePlace
	CueReject
	CueRotate
	CueGameOver
	CueReset
)

func (c Cue) String() string {
	switch c {
	case CueNone:
		return "none"
	case CuePlace:
		return "place"
	case CueReject:
		return "reject"
	case CueRotate:
		return "rotate"
	case CueGameOver:
		return "game over"
	case CueReset:
		return "reset"
	default:
		return fmt.Sprintf("Cue(%d)", int(c))
	}
}

// CueFor maps a session event to its cue.
func CueFor(kind crate.EventKind) Cue {
	switch kind {
	case crate.EventPlaced:
		return CuePlace
	case crate.EventRejected:
		return CueReject
	case crate.EventRotated:
		return CueRotate
	case crate.EventGameOver:
		return CueGameOver
	case crate.EventReset:
		return CueReset
	default:
		return CueNone
	}
}

// Cues returns the cues for one frame's events in order. The placement that
// fills the container is announced by the game over fanfare alone.
func Cues(events []crate.Event) []Cue {
	over := false
	for _, e := range events {
		if e.Kind == crate.EventGameOver {
			over = true
		}
	}

	var out []Cue
	for _, e := range events {
		cue := CueFor(e.Kind)
		if cue == CueNone || (over && cue == CuePlace) {
			continue
		}
		out = append(out, cue)
	}
	return out
}
