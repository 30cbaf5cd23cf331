package crate

import (
	"errors"
	"fmt"

	"github.com/kamstrup/intmap"
)

var (
	ErrOutOfBounds = errors.New("out of bounds")
	ErrOccupied    = errors.New("cell occupied")
)

// OccupancyReader is the read-only view of an Occupancy handed out by a
// Session.
type OccupancyReader interface {
	Config() Config
	Has(v Vec3) bool
	Owner(v Vec3) (string, bool)
	Len() int
	IsBlocked(blocks []Vec3, anchor Vec3) bool
	Check(blocks []Vec3, anchor Vec3) (Vec3, error)
	FindRestingHeight(blocks []Vec3, cell Cell) (int, bool)
}

// Occupancy indexes committed blocks by coordinate. Each coordinate maps to
// the id of the piece that filled it.
type Occupancy struct {
	cfg   Config
	cells *intmap.Map[uint64, string]
}

func NewOccupancy(cfg Config) *Occupancy {
	return &Occupancy{
		cfg:   cfg,
		cells: intmap.New[uint64, string](cfg.Volume()),
	}
}

// Config returns the container geometry the index was built for.
func (o *Occupancy) Config() Config {
	return o.cfg
}

// Has reports whether v is filled. Out-of-bounds coordinates are never
// filled.
func (o *Occupancy) Has(v Vec3) bool {
	if !o.cfg.InBounds(v) {
		return false
	}
	return o.cells.Has(key(v))
}

// Owner returns the piece id that filled v.
func (o *Occupancy) Owner(v Vec3) (string, bool) {
	if !o.cfg.InBounds(v) {
		return "", false
	}
	return o.cells.Get(key(v))
}

// Add marks b's coordinate as filled. It never overwrites an existing entry.
func (o *Occupancy) Add(b Block) error {
	if !o.cfg.InBounds(b.Vec3) {
		return fmt.Errorf("add %s: %w", b.Vec3, ErrOutOfBounds)
	}
	k := key(b.Vec3)
	if o.cells.Has(k) {
		return fmt.Errorf("add %s: %w", b.Vec3, ErrOccupied)
	}
	o.cells.Put(k, b.PieceID)
	return nil
}

func (o *Occupancy) Len() int {
	return o.cells.Len()
}

func (o *Occupancy) Clear() {
	o.cells.Clear()
}

// IsBlocked reports whether placing blocks with their local origin at
// anchor would leave the container or overlap a filled cell.
func (o *Occupancy) IsBlocked(blocks []Vec3, anchor Vec3) bool {
	for _, b := range blocks {
		abs := anchor.Add(b)
		if !o.cfg.InBounds(abs) || o.cells.Has(key(abs)) {
			return true
		}
	}
	return false
}

// Check is IsBlocked with a reason: it returns the first offending absolute
// coordinate together with ErrOutOfBounds or ErrOccupied.
func (o *Occupancy) Check(blocks []Vec3, anchor Vec3) (Vec3, error) {
	for _, b := range blocks {
		abs := anchor.Add(b)
		if !o.cfg.InBounds(abs) {
			return abs, ErrOutOfBounds
		}
		if o.cells.Has(key(abs)) {
			return abs, ErrOccupied
		}
	}
	return Vec3{}, nil
}

// IsBlocked is the free-function form of Occupancy.IsBlocked.
func IsBlocked(blocks []Vec3, anchor Vec3, placed *Occupancy) bool {
	return placed.IsBlocked(blocks, anchor)
}
