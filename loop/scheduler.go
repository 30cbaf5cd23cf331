// Package loop drives a game session frame by frame. A Scheduler runs
// registered systems in order, then applies the commands they queued to the
// session and hands the resulting events to the next frame.
package loop

import (
	"context"
	"maps"
	"reflect"
	"time"

	"github.com/plus3/isopack/crate"
)

// SchedulerStats is a point-in-time copy of the scheduler's counters.
type SchedulerStats struct {
	SystemCount     int
	Frames          int64
	TotalExecutions int64
	Events          map[crate.EventKind]int64
	Systems         []SystemStats
}

// SystemStats holds the timings of one registered system. MinDuration and
// AvgDuration are zero until the system has run.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

func (st *SystemStats) record(d time.Duration) {
	if st.ExecutionCount == 0 || d < st.MinDuration {
		st.MinDuration = d
	}
	st.MaxDuration = max(st.MaxDuration, d)
	st.ExecutionCount++
	st.LastDuration = d
	st.TotalDuration += d
	st.AvgDuration = st.TotalDuration / time.Duration(st.ExecutionCount)
}

type registered struct {
	system System
	stats  SystemStats
}

// Scheduler runs systems against one session.
type Scheduler struct {
	session *crate.Session
	systems []*registered
	pending []crate.Event
	frames  int64
	events  map[crate.EventKind]int64
}

func NewScheduler(session *crate.Session) *Scheduler {
	return &Scheduler{
		session: session,
		events:  make(map[crate.EventKind]int64),
	}
}

func (s *Scheduler) Session() *crate.Session {
	return s.session
}

// Register appends system to the execution order.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, &registered{
		system: system,
		stats:  SystemStats{Name: systemName(system)},
	})
}

func systemName(system System) string {
	if n, ok := system.(Named); ok {
		return n.Name()
	}
	t := reflect.TypeOf(system)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Once runs every system with delta time dt and then flushes the frame's
// commands. It returns the events of the flush, which are also handed to
// the systems of the next frame.
func (s *Scheduler) Once(dt float64) []crate.Event {
	frame := newUpdateFrame(dt, s.session, s.pending)

	for _, r := range s.systems {
		start := time.Now()
		r.system.Execute(frame)
		r.stats.record(time.Since(start))
	}

	s.pending = frame.Commands.Flush(s.session)
	for _, ev := range s.pending {
		s.events[ev.Kind]++
	}
	s.frames++
	return s.pending
}

// Run calls Once on every tick of interval until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.Once(now.Sub(last).Seconds())
			last = now
		}
	}
}

func (s *Scheduler) Stats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Frames:      s.frames,
		Events:      maps.Clone(s.events),
		Systems:     make([]SystemStats, len(s.systems)),
	}
	for i, r := range s.systems {
		stats.Systems[i] = r.stats
		stats.TotalExecutions += r.stats.ExecutionCount
	}
	return stats
}
