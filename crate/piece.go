package crate

import "slices"

// Color is a palette entry in "#RRGGBB" form.
type Color string

// InvalidColor tints a ghost that cannot be placed.
const InvalidColor Color = "#EF4444"

// Piece is a rigid cluster of unit cubes. A Piece is never mutated after
// creation; Rotate returns a new value.
type Piece struct {
	Blocks []Vec3
	Color  Color
	ID     string
}

// Rotate turns the piece 90 degrees about the vertical axis.
func (p Piece) Rotate() Piece {
	return Piece{
		Blocks: RotateBlocks(p.Blocks),
		Color:  p.Color,
		ID:     p.ID,
	}
}

// RotateBlocks maps (x, y) to (-y, x) for every offset, keeps z, and then
// shifts the result so that its minimum x and minimum y are both zero.
func RotateBlocks(blocks []Vec3) []Vec3 {
	if len(blocks) == 0 {
		return nil
	}

	rotated := make([]Vec3, len(blocks))
	minX, minY := -blocks[0].Y, blocks[0].X
	for i, b := range blocks {
		r := Vec3{X: -b.Y, Y: b.X, Z: b.Z}
		rotated[i] = r
		minX = min(minX, r.X)
		minY = min(minY, r.Y)
	}

	for i := range rotated {
		rotated[i].X -= minX
		rotated[i].Y -= minY
	}
	return rotated
}

// Bounds returns the extent of the piece along each axis.
func (p Piece) Bounds() Vec3 {
	var ext Vec3
	for _, b := range p.Blocks {
		ext.X = max(ext.X, b.X+1)
		ext.Y = max(ext.Y, b.Y+1)
		ext.Z = max(ext.Z, b.Z+1)
	}
	return ext
}

// Clone returns a copy of the piece that shares no memory with p.
func (p Piece) Clone() Piece {
	p.Blocks = slices.Clone(p.Blocks)
	return p
}

// Block is a committed unit cube.
type Block struct {
	Vec3
	Color   Color
	PieceID string
}
