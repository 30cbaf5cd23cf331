package crate

import (
	"fmt"
	"slices"
)

// Snapshot is an immutable copy of session state consumed by renderers.
type Snapshot struct {
	Config       Config
	Placed       []Block
	Active       Piece
	Next         Piece
	Cursor       *Cell
	State        State
	Score        int
	VolumeFilled int
	TotalVolume  int
	Efficiency   int
}

// Kind tells a renderer how to draw a cube.
type Kind int

const (
	KindPlaced Kind = iota
	KindActive
	KindGhost
)

func (k Kind) String() string {
	switch k {
	case KindPlaced:
		return "placed"
	case KindActive:
		return "active"
	case KindGhost:
		return "ghost"
	default:
		return "unknown"
	}
}

// Opacity is the alpha a cube of this kind is drawn with.
func (k Kind) Opacity() float64 {
	switch k {
	case KindActive:
		return 0.95
	case KindGhost:
		return 0.4
	default:
		return 1
	}
}

// DrawItem is one cube in a frame's draw list.
type DrawItem struct {
	Vec3
	Color Color
	Kind  Kind
}

// Occupancy rebuilds a coordinate index from the snapshot's placed blocks.
// It panics when two blocks share a cell or a block lies outside the
// container, as Session.Place does.
func (s Snapshot) Occupancy() *Occupancy {
	occ := NewOccupancy(s.Config)
	for _, b := range s.Placed {
		if err := occ.Add(b); err != nil {
			panic(fmt.Sprintf("crate: snapshot block %s of piece %s: %v", b.Vec3, b.PieceID, err))
		}
	}
	return occ
}

// Ghost is the render-only preview of the active piece at the cursor.
func (s Snapshot) Ghost() []DrawItem {
	if s.State != Playing {
		return nil
	}
	return GhostFor(s.Active, s.Cursor, s.Occupancy())
}

// DrawList returns every cube to draw this frame in back-to-front order.
func (s Snapshot) DrawList() []DrawItem {
	return BuildDrawList(s.Placed, s.Ghost())
}

// GhostFor previews piece at cursor against placed. When the piece fits, its
// blocks sit at the resting height as KindActive. When it does not, they
// float one level above the container as KindGhost in InvalidColor. A nil
// cursor yields no preview.
func GhostFor(piece Piece, cursor *Cell, placed OccupancyReader) []DrawItem {
	if cursor == nil {
		return nil
	}

	z, ok := placed.FindRestingHeight(piece.Blocks, *cursor)
	kind, color := KindActive, piece.Color
	if !ok {
		z = placed.Config().MaxHeight
		kind, color = KindGhost, InvalidColor
	}

	anchor := cursor.At(z)
	items := make([]DrawItem, len(piece.Blocks))
	for i, b := range piece.Blocks {
		items[i] = DrawItem{Vec3: anchor.Add(b), Color: color, Kind: kind}
	}
	return items
}

// BuildDrawList merges placed blocks and a ghost preview and sorts them by
// ascending x+y+z. The sort is stable: placed blocks keep commit order and
// precede ghost cubes of equal depth, so identical input gives an identical
// list.
func BuildDrawList(placed []Block, ghost []DrawItem) []DrawItem {
	items := make([]DrawItem, 0, len(placed)+len(ghost))
	for _, b := range placed {
		items = append(items, DrawItem{Vec3: b.Vec3, Color: b.Color, Kind: KindPlaced})
	}
	items = append(items, ghost...)

	slices.SortStableFunc(items, func(a, b DrawItem) int {
		return a.Depth() - b.Depth()
	})
	return items
}
