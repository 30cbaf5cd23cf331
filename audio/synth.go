package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType selects an oscillator shape.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

const (
	placeDuration        = 400 * time.Millisecond
	placeAttack          = 5 * time.Millisecond
	placeRelease         = 360 * time.Millisecond
	placeOvertoneRelease = 150 * time.Millisecond

	rejectDuration = 120 * time.Millisecond
	rejectAttack   = 5 * time.Millisecond
	rejectRelease  = 40 * time.Millisecond

	rotateDuration = 60 * time.Millisecond
	rotateAttack   = 2 * time.Millisecond
	rotateRelease  = 30 * time.Millisecond

	fanfareNote    = 140 * time.Millisecond
	fanfareLast    = 500 * time.Millisecond
	fanfareAttack  = 5 * time.Millisecond
	fanfareRelease = 60 * time.Millisecond

	resetDuration = 250 * time.Millisecond
	resetAttack   = 120 * time.Millisecond
	resetRelease  = 120 * time.Millisecond
)

// C major arpeggio, C5 to C6.
var fanfare = []float64{523.25, 659.25, 783.99, 1046.50}

type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator returns a streamer producing duration worth of a raw wave.
// WaveNoise ignores freq.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	release      int
	releaseStart int
	total        int
}

// NewEnvelope shapes s with a linear attack and a linear release. The
// release ends at duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:     s,
		attack:       att,
		release:      rel,
		releaseStart: max(att, total-rel),
		total:        total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.position >= e.releaseStart && e.release > 0 {
			vol = min(vol, float64(e.total-e.position)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly by vol. Zero or less is silent, since the
// effect works in log2 space.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func tone(freq float64, d, attack, release time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, attack, release, rate)
}

// Streamer returns a fresh streamer for cue at the given master volume, or
// nil for CueNone.
func Streamer(cue Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch cue {
	case CuePlace:
		// a low bell: fundamental plus a quickly fading octave
		s = beep.Mix(
			newVolume(tone(440, placeDuration, placeAttack, placeRelease, WaveSine, rate), 0.7),
			newVolume(tone(880, placeDuration, placeAttack, placeOvertoneRelease, WaveSine, rate), 0.3),
		)
	case CueReject:
		s = newVolume(tone(110, rejectDuration, rejectAttack, rejectRelease, WaveSaw, rate), 0.6)
	case CueRotate:
		s = newVolume(tone(1320, rotateDuration, rotateAttack, rotateRelease, WaveSquare, rate), 0.25)
	case CueGameOver:
		notes := make([]beep.Streamer, len(fanfare))
		for i, f := range fanfare {
			d := fanfareNote
			if i == len(fanfare)-1 {
				d = fanfareLast
			}
			notes[i] = tone(f, d, fanfareAttack, fanfareRelease, WaveSquare, rate)
		}
		s = newVolume(beep.Seq(notes...), 0.4)
	case CueReset:
		s = newVolume(tone(0, resetDuration, resetAttack, resetRelease, WaveNoise, rate), 0.3)
	default:
		return nil
	}
	return newVolume(s, volume)
}
