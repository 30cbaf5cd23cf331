package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/isopack/crate"
	"github.com/plus3/isopack/loop"
)

type LogEntry struct {
	Frame int64
	Event crate.Event
}

// EventLog keeps the most recent session events.
type EventLog struct {
	capacity int
	entries  []LogEntry
	frame    int64
}

func NewEventLog(capacity int) *EventLog {
	return &EventLog{capacity: capacity}
}

func (l *EventLog) Name() string { return "debugui.events" }

func (l *EventLog) Execute(frame *loop.UpdateFrame) {
	l.frame++
	for _, ev := range frame.Events {
		l.entries = append(l.entries, LogEntry{Frame: l.frame, Event: ev})
	}
	if over := len(l.entries) - l.capacity; over > 0 {
		l.entries = append(l.entries[:0], l.entries[over:]...)
	}
}

// Entries returns the logged events, oldest first.
func (l *EventLog) Entries() []LogEntry {
	return append([]LogEntry(nil), l.entries...)
}

func (l *EventLog) Clear() {
	l.entries = l.entries[:0]
}

func (l *EventLog) Render(*loop.UpdateFrame) {
	imgui.SetNextWindowPosV(imgui.NewVec2(340, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 300), imgui.CondOnce)

	if !imgui.BeginV("Events", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("%d / %d", len(l.entries), l.capacity))
	imgui.SameLine()
	if imgui.Button("Clear") {
		l.Clear()
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EventTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Frame")
		imgui.TableSetupColumn("Event")
		imgui.TableHeadersRow()

		for i := len(l.entries) - 1; i >= 0; i-- {
			e := l.entries[i]
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", e.Frame))
			imgui.TableNextColumn()
			if e.Event.Kind == crate.EventRejected {
				imgui.TextColored(imgui.NewVec4(1.0, 0.3, 0.3, 1.0), e.Event.String())
			} else {
				imgui.Text(e.Event.String())
			}
		}

		imgui.EndTable()
	}

	imgui.End()
}
