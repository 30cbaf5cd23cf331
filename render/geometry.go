package render

import (
	"math"

	"github.com/plus3/isopack/crate"
)

// Quad is a convex polygon of four screen points.
type Quad [4]crate.Point

// Segment is a straight line between two screen points.
type Segment [2]crate.Point

// Faces are the three visible faces of a unit cube.
type Faces struct {
	Top, Left, Right Quad
}

// CubeFaces returns the screen polygons of the cube occupying cell v. The
// left face is the one facing +y, the right face the one facing +x.
func CubeFaces(proj crate.Projection, v crate.Vec3, origin crate.Point) Faces {
	p := func(dx, dy, dz int) crate.Point {
		return proj.Corner(v.X+dx, v.Y+dy, v.Z+dz, origin)
	}
	return Faces{
		Top:   Quad{p(0, 0, 1), p(1, 0, 1), p(1, 1, 1), p(0, 1, 1)},
		Left:  Quad{p(0, 1, 0), p(1, 1, 0), p(1, 1, 1), p(0, 1, 1)},
		Right: Quad{p(1, 0, 0), p(1, 1, 0), p(1, 1, 1), p(1, 0, 1)},
	}
}

// FloorTile returns the diamond of a floor cell.
func FloorTile(proj crate.Projection, c crate.Cell, origin crate.Point) Quad {
	return Quad{
		proj.Corner(c.X, c.Y, 0, origin),
		proj.Corner(c.X+1, c.Y, 0, origin),
		proj.Corner(c.X+1, c.Y+1, 0, origin),
		proj.Corner(c.X, c.Y+1, 0, origin),
	}
}

// Pillars are the four vertical container edges.
func Pillars(proj crate.Projection, cfg crate.Config, origin crate.Point) []Segment {
	n, h := cfg.GridSize, cfg.MaxHeight
	corners := []crate.Cell{{X: 0, Y: 0}, {X: n, Y: 0}, {X: 0, Y: n}, {X: n, Y: n}}

	out := make([]Segment, len(corners))
	for i, c := range corners {
		out[i] = Segment{proj.Corner(c.X, c.Y, 0, origin), proj.Corner(c.X, c.Y, h, origin)}
	}
	return out
}

// Lid is the outline of the container's open top.
func Lid(proj crate.Projection, cfg crate.Config, origin crate.Point) Quad {
	n, h := cfg.GridSize, cfg.MaxHeight
	return Quad{
		proj.Corner(0, 0, h, origin),
		proj.Corner(n, 0, h, origin),
		proj.Corner(n, n, h, origin),
		proj.Corner(0, n, h, origin),
	}
}

// Edges returns the closed outline of q.
func (q Quad) Edges() []Segment {
	return []Segment{{q[0], q[1]}, {q[1], q[2]}, {q[2], q[3]}, {q[3], q[0]}}
}

// Map applies fn to every corner.
func (q Quad) Map(fn func(crate.Point) crate.Point) Quad {
	for i := range q {
		q[i] = fn(q[i])
	}
	return q
}

// Dashes splits s into dashes of length on separated by gaps of length off.
// The pattern restarts at the beginning of every segment.
func Dashes(s Segment, on, off float64) []Segment {
	dx, dy := s[1].X-s[0].X, s[1].Y-s[0].Y
	length := math.Hypot(dx, dy)
	if length == 0 || on <= 0 {
		return nil
	}
	if off <= 0 {
		return []Segment{s}
	}

	ux, uy := dx/length, dy/length
	at := func(d float64) crate.Point {
		return crate.Point{X: s[0].X + ux*d, Y: s[0].Y + uy*d}
	}

	var out []Segment
	for d := 0.0; d < length; d += on + off {
		out = append(out, Segment{at(d), at(math.Min(d+on, length))})
	}
	return out
}
