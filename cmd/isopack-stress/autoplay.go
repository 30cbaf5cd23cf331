package main

import (
	"math/rand/v2"

	"github.com/plus3/isopack/crate"
	"github.com/plus3/isopack/loop"
)

// GameResult is the outcome of one finished game. A stalled game ended
// because the active piece fit no floor cell in any rotation before the
// container was full.
type GameResult struct {
	Score      int
	Efficiency int
	Frames     int64
	Stalled    bool
}

// AutoplaySystem plays by clicking random cells. Cells up to one step
// outside the floor are included so that rejections are exercised too.
// When a game ends, by filling the container or by stalling, it is recorded
// and the session is reset.
type AutoplaySystem struct {
	rng          *rand.Rand
	rotateChance float64

	frames int64
	Games  []GameResult
}

func NewAutoplaySystem(rng *rand.Rand, rotateChance float64) *AutoplaySystem {
	return &AutoplaySystem{rng: rng, rotateChance: rotateChance}
}

func (a *AutoplaySystem) Name() string { return "autoplay" }

func (a *AutoplaySystem) Execute(frame *loop.UpdateFrame) {
	a.frames++

	rejected := false
	for _, ev := range frame.Events {
		switch ev.Kind {
		case crate.EventGameOver:
			a.finish(frame, GameResult{Score: ev.Result.Score, Efficiency: ev.Result.Efficiency})
			return
		case crate.EventRejected:
			rejected = true
		}
	}

	// only a rejection can reveal a stall
	if rejected && !fitsAnywhere(frame.Session.Active(), frame.Session.Occupancy()) {
		a.finish(frame, GameResult{
			Score:      frame.Session.Score(),
			Efficiency: frame.Session.Efficiency(),
			Stalled:    true,
		})
		return
	}

	if a.rng.Float64() < a.rotateChance {
		frame.Commands.Rotate()
	}
	n := frame.Session.Config().GridSize
	frame.Commands.PlaceAt(crate.Cell{
		X: a.rng.IntN(n+2) - 1,
		Y: a.rng.IntN(n+2) - 1,
	})
}

func (a *AutoplaySystem) finish(frame *loop.UpdateFrame, result GameResult) {
	result.Frames = a.frames
	a.Games = append(a.Games, result)
	a.frames = 0
	frame.Commands.Reset()
}

// fitsAnywhere reports whether piece, in any of its four rotations, comes to
// rest on some floor cell.
func fitsAnywhere(piece crate.Piece, occ crate.OccupancyReader) bool {
	n := occ.Config().GridSize
	for range 4 {
		for x := range n {
			for y := range n {
				if _, ok := occ.FindRestingHeight(piece.Blocks, crate.Cell{X: x, Y: y}); ok {
					return true
				}
			}
		}
		piece = piece.Rotate()
	}
	return false
}
