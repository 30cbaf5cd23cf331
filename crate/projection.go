package crate

import "math"

// Projection maps between grid coordinates and isometric screen space.
type Projection struct {
	halfW float64
	halfH float64
}

func NewProjection(cfg Config) Projection {
	return Projection{
		halfW: float64(cfg.TileWidth) / 2,
		halfH: float64(cfg.TileHeight) / 2,
	}
}

// ToScreen projects v to the screen. Each unit of height lifts the point
// by a full tile height.
func (p Projection) ToScreen(v Vec3, origin Point) Point {
	return Point{
		X: float64(v.X-v.Y)*p.halfW + origin.X,
		Y: float64(v.X+v.Y)*p.halfH - float64(v.Z)*2*p.halfH + origin.Y,
	}
}

// ToGrid inverts ToScreen on the floor plane and returns the cell that
// contains the screen point. Height is never inferred.
func (p Projection) ToGrid(pt Point, origin Point) Cell {
	adjX := (pt.X - origin.X) / p.halfW
	adjY := (pt.Y - origin.Y) / p.halfH

	return Cell{
		X: int(math.Floor((adjY + adjX) / 2)),
		Y: int(math.Floor((adjY - adjX) / 2)),
	}
}

// Corner returns the screen position of the floor-plane lattice point
// (x, y) lifted to height z. Used for drawing container edges.
func (p Projection) Corner(x, y, z int, origin Point) Point {
	return p.ToScreen(Vec3{X: x, Y: y, Z: z}, origin)
}

// TileSize returns the half width and half height of a tile in pixels.
func (p Projection) TileSize() (halfW, halfH float64) {
	return p.halfW, p.halfH
}
