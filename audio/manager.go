package audio

import (
	"fmt"
	"maps"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const SampleRate = beep.SampleRate(48000)

// Player plays cues.
type Player interface {
	Play(cue Cue) bool
}

// Manager owns the speaker and mixes cues into it. A Manager that was never
// initialized, or whose initialization failed, stays silent.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	initialized bool
	played      map[Cue]int
}

// NewManager returns a manager with a master volume in [0, 1].
func NewManager(volume float64) *Manager {
	return &Manager{
		mixer:  &beep.Mixer{},
		volume: min(1, max(0, volume)),
		played: make(map[Cue]int),
	}
}

// Init opens the audio device and starts the mixer.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Play starts cue and reports whether it is audible.
func (m *Manager) Play(cue Cue) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized || m.muted {
		return false
	}
	s := Streamer(cue, SampleRate, m.volume)
	if s == nil {
		return false
	}

	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
	m.played[cue]++
	return true
}

func (m *Manager) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
}

func (m *Manager) Muted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.muted
}

// Played returns how many times each cue was started.
func (m *Manager) Played() map[Cue]int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return maps.Clone(m.played)
}

// Close silences the mixer and releases the device.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	m.initialized = false
}
