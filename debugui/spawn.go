package debugui

import "github.com/plus3/isopack/loop"

// DebugUI is the set of panels installed on a scheduler.
type DebugUI struct {
	Inspector   *SessionInspector
	Performance *PerformanceStats
	Events      *EventLog
	Input       ImguiInputState
}

// Install registers the debug panels with s. Register it after the game's
// own systems so the panels render last.
func Install(s *loop.Scheduler) *DebugUI {
	ui := &DebugUI{
		Inspector:   NewSessionInspector(),
		Performance: NewPerformanceStats(s, 120),
		Events:      NewEventLog(64),
	}

	s.Register(ui.Inspector)
	s.Register(ui.Events)
	s.Register(&ImguiSystem{
		Items: []*ImguiItem{
			{Render: ui.Inspector.Render},
			{Render: ui.Performance.Render},
			{Render: ui.Events.Render},
		},
		InputState: &ui.Input,
	})
	return ui
}
