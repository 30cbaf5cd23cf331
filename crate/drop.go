package crate

// FindRestingHeight drops blocks onto the cell column and returns the base
// height where they come to rest.
//
// The scan does not start at MaxHeight-1. The blocks enter the column at the
// highest base height where they still fit under the ceiling, which is
// MaxHeight-1 only for flat pieces. A piece with blocks above its base
// enters lower, so it is placeable although it is blocked at MaxHeight-1.
// From there the scan moves down one level at a time and stops at the first
// blocked level; the last free level is the resting height. ok is false when
// the blocks are already blocked on entry, which includes a column stacked to
// the top and a footprint that leaves the container. The scan never skips
// past an obstruction, so a piece cannot reach a free pocket below a blocked
// level.
func (o *Occupancy) FindRestingHeight(blocks []Vec3, cell Cell) (z int, ok bool) {
	if len(blocks) == 0 {
		return 0, false
	}

	z = -1
	for candidate := o.entryHeight(blocks); candidate >= 0; candidate-- {
		if o.IsBlocked(blocks, cell.At(candidate)) {
			break
		}
		z = candidate
	}
	if z < 0 {
		return 0, false
	}
	return z, true
}

// entryHeight is the highest base height at which every block is below the
// ceiling. For flat pieces this is MaxHeight-1.
func (o *Occupancy) entryHeight(blocks []Vec3) int {
	top := blocks[0].Z
	for _, b := range blocks[1:] {
		top = max(top, b.Z)
	}
	return o.cfg.MaxHeight - 1 - top
}

// FindRestingHeight resolves where piece lands at cursor.
func FindRestingHeight(piece Piece, cursor Cell, placed OccupancyReader) (int, bool) {
	return placed.FindRestingHeight(piece.Blocks, cursor)
}

// Land returns piece's blocks translated to cell at base height z.
func Land(piece Piece, cell Cell, z int) []Block {
	anchor := cell.At(z)
	out := make([]Block, len(piece.Blocks))
	for i, b := range piece.Blocks {
		out[i] = Block{
			Vec3:    anchor.Add(b),
			Color:   piece.Color,
			PieceID: piece.ID,
		}
	}
	return out
}
