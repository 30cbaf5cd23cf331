package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/isopack/crate"
	"github.com/plus3/isopack/loop"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Config   crate.Config
	Seed     uint64

	// Results
	TotalUpdates   int64
	TotalTime      time.Duration
	UpdateTime     Stats
	Session        crate.SessionStats
	Events         map[string]int64
	Systems        []loop.SystemStats
	Games          int
	Stalled        int
	Scores         IntStats
	Efficiency     IntStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

type IntStats struct {
	Min, Max int
	Avg      float64
}

func intStats(values []int) IntStats {
	if len(values) == 0 {
		return IntStats{}
	}
	s := IntStats{Min: values[0], Max: values[0]}
	total := 0
	for _, v := range values {
		s.Min = min(s.Min, v)
		s.Max = max(s.Max, v)
		total += v
	}
	s.Avg = float64(total) / float64(len(values))
	return s
}

// Collect fills the result fields from the scheduler, the session and the
// finished games.
func (r *Report) Collect(sched *loop.SchedulerStats, session crate.SessionStats, games []GameResult) {
	r.UpdateTime.Finalize()
	r.TotalUpdates = sched.Frames
	r.Session = session
	r.Systems = sched.Systems

	r.Events = make(map[string]int64, len(sched.Events))
	for kind, n := range sched.Events {
		r.Events[kind.String()] = n
	}

	scores := make([]int, len(games))
	efficiency := make([]int, len(games))
	for i, g := range games {
		scores[i] = g.Score
		efficiency[i] = g.Efficiency
		if g.Stalled {
			r.Stalled++
		}
	}
	r.Games = len(games)
	r.Scores = intStats(scores)
	r.Efficiency = intStats(efficiency)
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Isopack Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Container:** {{.Config.GridSize}}x{{.Config.GridSize}}x{{.Config.MaxHeight}} ({{.Config.Volume}} cells)
- **Seed:** {{.Seed}}

## Performance Results
- **Total Updates:** {{.TotalUpdates}}
- **Total Test Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}
{{range .Systems}}- **System {{.Name}}:** {{.ExecutionCount}} runs, avg {{.AvgDuration}}, max {{.MaxDuration}}
{{end}}
## Games
- **Completed:** {{.Games}}
- **Stalled:** {{.Stalled}}
- **Score:** min {{.Scores.Min}}, max {{.Scores.Max}}, avg {{printf "%.1f" .Scores.Avg}}
- **Efficiency:** min {{.Efficiency.Min}}%, max {{.Efficiency.Max}}%, avg {{printf "%.1f" .Efficiency.Avg}}%
- **Placements:** {{.Session.Placements}}
- **Rejections:** {{.Session.Rejections}}
- **Rotations:** {{.Session.Rotations}}
- **Resets:** {{.Session.Resets}}
{{range $kind, $n := .Events}}- Event {{$kind}}: {{$n}}
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("parse report template: %w", err)
	}

	return tmpl.Execute(w, r)
}
