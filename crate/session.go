package crate

import (
	"fmt"
	"math"
	"slices"
)

// State is the session's position in the game state machine.
type State int

const (
	Playing State = iota
	GameOver
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case GameOver:
		return "game over"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// SessionStats counts accepted and rejected transitions since creation.
// Reset does not clear them.
type SessionStats struct {
	Placements int
	Rejections int
	Rotations  int
	Resets     int
}

// PlaceResult describes a successful commit. Score and Efficiency are the
// session totals right after the commit.
type PlaceResult struct {
	Piece      Piece
	Cell       Cell
	Z          int
	Blocks     []Block
	Score      int
	Efficiency int
	GameOver   bool
}

// Session owns all mutable game state. It is the only writer of the placed
// block set.
type Session struct {
	cfg       Config
	factory   *Factory
	occupancy *Occupancy
	placed    []Block
	active    Piece
	next      Piece
	cursor    *Cell
	state     State
	stats     SessionStats
}

// NewSession starts a game in the Playing state with an empty container.
func NewSession(cfg Config, factory *Factory) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	if factory == nil {
		return nil, fmt.Errorf("new session: nil factory")
	}
	s := &Session{
		cfg:       cfg,
		factory:   factory,
		occupancy: NewOccupancy(cfg),
	}
	s.start()
	return s, nil
}

func (s *Session) start() {
	s.placed = s.placed[:0]
	s.occupancy.Clear()
	s.active = s.factory.Next()
	s.next = s.factory.Next()
	s.cursor = nil
	s.state = Playing
}

func (s *Session) Config() Config             { return s.cfg }
func (s *Session) State() State               { return s.state }
func (s *Session) Active() Piece              { return s.active.Clone() }
func (s *Session) Next() Piece                { return s.next.Clone() }
func (s *Session) Stats() SessionStats        { return s.stats }
func (s *Session) Occupancy() OccupancyReader { return s.occupancy }

// Cursor returns the current target cell, if any.
func (s *Session) Cursor() (Cell, bool) {
	if s.cursor == nil {
		return Cell{}, false
	}
	return *s.cursor, true
}

// SetCursor stores the player's horizontal target. Cells outside the
// container are accepted; they simply never fit. Ignored after game over.
func (s *Session) SetCursor(c Cell) {
	if s.state != Playing {
		return
	}
	s.cursor = &c
}

func (s *Session) ClearCursor() {
	if s.state != Playing {
		return
	}
	s.cursor = nil
}

// Place drops the active piece at the cursor. It returns false without
// changing anything when the game is over, no cursor is set, or the piece
// does not fit in the cursor column.
func (s *Session) Place() (PlaceResult, bool) {
	if s.state != Playing || s.cursor == nil {
		return PlaceResult{}, false
	}

	cell := *s.cursor
	z, ok := s.occupancy.FindRestingHeight(s.active.Blocks, cell)
	if !ok {
		s.stats.Rejections++
		return PlaceResult{}, false
	}

	blocks := Land(s.active, cell, z)
	for _, b := range blocks {
		if err := s.occupancy.Add(b); err != nil {
			panic(fmt.Sprintf("crate: commit of piece %s: %v", s.active.ID, err))
		}
	}
	s.placed = append(s.placed, blocks...)

	placedPiece := s.active
	s.active = s.next
	s.next = s.factory.Next()
	s.stats.Placements++

	if len(s.placed) >= s.cfg.Volume() {
		s.state = GameOver
	}

	return PlaceResult{
		Piece:      placedPiece.Clone(),
		Cell:       cell,
		Z:          z,
		Blocks:     slices.Clone(blocks),
		Score:      len(s.placed),
		Efficiency: s.Efficiency(),
		GameOver:   s.state == GameOver,
	}, true
}

// PlaceAt sets the cursor to cell and places.
func (s *Session) PlaceAt(cell Cell) (PlaceResult, bool) {
	s.SetCursor(cell)
	return s.Place()
}

// Rotate turns the active piece. It returns false after game over.
func (s *Session) Rotate() bool {
	if s.state != Playing {
		return false
	}
	s.active = s.active.Rotate()
	s.stats.Rotations++
	return true
}

// Reset empties the container and starts over with fresh pieces.
func (s *Session) Reset() {
	s.start()
	s.stats.Resets++
}

// Score is the number of placed unit cubes.
func (s *Session) Score() int {
	return len(s.placed)
}

func (s *Session) VolumeFilled() int { return len(s.placed) }
func (s *Session) TotalVolume() int  { return s.cfg.Volume() }

// Efficiency is the filled share of the container as a rounded percentage.
func (s *Session) Efficiency() int {
	return efficiency(len(s.placed), s.cfg.Volume())
}

func efficiency(filled, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(filled) / float64(total)))
}

// Snapshot copies the session state for a read-only consumer.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Config:       s.cfg,
		Placed:       slices.Clone(s.placed),
		Active:       s.active.Clone(),
		Next:         s.next.Clone(),
		State:        s.state,
		Score:        s.Score(),
		VolumeFilled: s.VolumeFilled(),
		TotalVolume:  s.TotalVolume(),
		Efficiency:   s.Efficiency(),
	}
	if s.cursor != nil {
		c := *s.cursor
		snap.Cursor = &c
	}
	return snap
}

// Ghost previews the active piece at the cursor without copying state.
func (s *Session) Ghost() []DrawItem {
	if s.state != Playing {
		return nil
	}
	return GhostFor(s.active, s.cursor, s.occupancy)
}

// DrawList returns the current frame's cubes in back-to-front order.
func (s *Session) DrawList() []DrawItem {
	return BuildDrawList(s.placed, s.Ghost())
}
