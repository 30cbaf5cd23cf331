package crate

// Column summarizes the stack standing on one floor cell. Height is one
// above the highest occupied z, so an empty column has height 0. Gaps below
// the top are not reported.
type Column struct {
	Height  int
	Top     Color
	PieceID string
}

// HeightMap is a top-down view of the container.
type HeightMap struct {
	size int
	cols []Column
}

// NewHeightMap summarizes blocks on a size×size floor. Blocks outside the
// floor are ignored.
func NewHeightMap(size int, blocks []Block) HeightMap {
	m := HeightMap{size: size, cols: make([]Column, size*size)}
	for _, b := range blocks {
		if b.X < 0 || b.Y < 0 || b.X >= size || b.Y >= size {
			continue
		}
		col := &m.cols[b.Y*size+b.X]
		if b.Z+1 > col.Height {
			*col = Column{Height: b.Z + 1, Top: b.Color, PieceID: b.PieceID}
		}
	}
	return m
}

func (m HeightMap) Size() int { return m.size }

// At returns the column at c, or an empty column outside the floor.
func (m HeightMap) At(c Cell) Column {
	if c.X < 0 || c.Y < 0 || c.X >= m.size || c.Y >= m.size {
		return Column{}
	}
	return m.cols[c.Y*m.size+c.X]
}

// Max is the tallest column height.
func (m HeightMap) Max() int {
	h := 0
	for _, c := range m.cols {
		h = max(h, c.Height)
	}
	return h
}

// HeightMap summarizes the snapshot's placed blocks column by column.
func (s Snapshot) HeightMap() HeightMap {
	return NewHeightMap(s.Config.GridSize, s.Placed)
}
