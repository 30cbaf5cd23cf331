package loop_test

import (
	"fmt"

	"github.com/plus3/isopack/crate"
	"github.com/plus3/isopack/loop"
)

// ScriptedInput replays one cell per frame, standing in for pointer clicks.
type ScriptedInput struct {
	Clicks []crate.Cell
}

func (s *ScriptedInput) Execute(frame *loop.UpdateFrame) {
	if len(s.Clicks) == 0 {
		return
	}
	frame.Commands.PlaceAt(s.Clicks[0])
	s.Clicks = s.Clicks[1:]
}

// EventLog prints the transitions applied at the end of the previous frame.
type EventLog struct{}

func (EventLog) Execute(frame *loop.UpdateFrame) {
	for _, ev := range frame.Events {
		fmt.Println(ev)
	}
}

// ExampleScheduler wires an input system and a logging system around a
// session. Placements queued during a frame are applied after all systems
// have run, and the logger sees them one frame later.
func ExampleScheduler() {
	catalog := crate.Catalog{
		Templates: [][]crate.Vec3{{{X: 0, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}}},
		Palette:   []crate.Color{"#9333EA"},
	}
	session, err := crate.NewSession(crate.DefaultConfig(), crate.MustFactory(catalog, nil, crate.SequentialIDs("piece")))
	if err != nil {
		panic(err)
	}

	scheduler := loop.NewScheduler(session)
	scheduler.Register(&ScriptedInput{Clicks: []crate.Cell{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 5}}})
	scheduler.Register(EventLog{})

	for range 4 {
		scheduler.Once(1.0 / 60)
	}

	stats := scheduler.Stats()
	fmt.Printf("frames=%d score=%d\n", stats.Frames, session.Score())

	// Output:
	// placed piece-1 at (0,0) z=0
	// placed piece-2 at (0,1) z=1
	// rejected at (0,5)
	// frames=4 score=4
}
