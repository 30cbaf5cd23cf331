package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to the end and returns every sample.
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("streamer never drained")
	return nil
}

func TestOscillatorSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, rate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)
	if !ok {
		t.Error("Expected stream to return ok=true")
	}
	if n != 100 {
		t.Errorf("Expected to stream 100 samples, got %d", n)
	}
	for i := 0; i < n; i++ {
		if samples[i][0] < -1 || samples[i][0] > 1 {
			t.Errorf("Sample %d out of range: %f", i, samples[i][0])
		}
		if samples[i][0] != samples[i][1] {
			t.Errorf("Sample %d is not mono: %v", i, samples[i])
		}
	}
	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

func TestOscillatorDuration(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		got := len(drain(t, NewOscillator(220, 50*time.Millisecond, wave, rate)))
		if want := rate.N(50 * time.Millisecond); got != want {
			t.Errorf("wave %d: expected %d samples, got %d", wave, want, got)
		}
	}
}

func TestOscillatorSquare(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(10, time.Second, WaveSquare, rate)

	samples := make([][2]float64, 100)
	osc.Stream(samples)

	// 10Hz at 1kHz: 50 samples high then 50 low
	for i, s := range samples {
		want := 1.0
		if i >= 50 {
			want = -1
		}
		if s[0] != want {
			t.Fatalf("sample %d: expected %v, got %v", i, want, s[0])
		}
	}
}

func TestEnvelope(t *testing.T) {
	rate := beep.SampleRate(1000)
	d := 100 * time.Millisecond
	env := NewEnvelope(NewOscillator(1, d, WaveSquare, rate), d, 10*time.Millisecond, 20*time.Millisecond, rate)

	out := drain(t, env)
	if len(out) != 100 {
		t.Fatalf("expected 100 samples, got %d", len(out))
	}

	want := map[int]float64{0: 0, 5: 0.5, 10: 1, 50: 1, 80: 1, 90: 0.5, 99: 0.05}
	for i, w := range want {
		if math.Abs(out[i][0]-w) > 1e-9 {
			t.Errorf("sample %d: expected %v, got %v", i, w, out[i][0])
		}
	}
}

func TestNewVolumeSilent(t *testing.T) {
	rate := beep.SampleRate(1000)
	s := newVolume(NewOscillator(1, 10*time.Millisecond, WaveSquare, rate), 0)

	for i, v := range drain(t, s) {
		if v[0] != 0 || v[1] != 0 {
			t.Fatalf("sample %d should be silent, got %v", i, v)
		}
	}
}

func TestStreamerCues(t *testing.T) {
	rate := beep.SampleRate(44100)

	for _, cue := range []Cue{CuePlace, CueReject, CueRotate, CueGameOver, CueReset} {
		t.Run(cue.String(), func(t *testing.T) {
			out := drain(t, Streamer(cue, rate, 1))
			if len(out) == 0 {
				t.Fatal("cue produced no samples")
			}

			peak := 0.0
			for _, s := range out {
				peak = max(peak, math.Abs(s[0]))
			}
			if peak == 0 || peak > 1 {
				t.Errorf("peak amplitude %v outside (0, 1]", peak)
			}
		})
	}

	if Streamer(CueNone, rate, 1) != nil {
		t.Error("CueNone should have no streamer")
	}
}

func TestGameOverFanfareLength(t *testing.T) {
	rate := beep.SampleRate(44100)

	got := len(drain(t, Streamer(CueGameOver, rate, 0.5)))

	want := 3*rate.N(fanfareNote) + rate.N(fanfareLast)
	if got != want {
		t.Errorf("expected %d samples, got %d", want, got)
	}
}
