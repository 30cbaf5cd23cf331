package crate

import "fmt"

// Vec3 is a grid coordinate, either absolute inside the container or
// relative to a piece's local origin.
type Vec3 struct {
	X, Y, Z int
}

func V(x, y, z int) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Depth is the painter's-algorithm sort key for the isometric view.
func (v Vec3) Depth() int {
	return v.X + v.Y + v.Z
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%d,%d,%d)", v.X, v.Y, v.Z)
}

// Cell is a horizontal grid cell on the container floor.
type Cell struct {
	X, Y int
}

// At lifts the cell to height z.
func (c Cell) At(z int) Vec3 {
	return Vec3{X: c.X, Y: c.Y, Z: z}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Point is a position in screen space.
type Point struct {
	X, Y float64
}

const coordBits = 21

// key packs an in-bounds coordinate into a single integer.
func key(v Vec3) uint64 {
	const mask = 1<<coordBits - 1
	return uint64(v.X&mask)<<(2*coordBits) | uint64(v.Y&mask)<<coordBits | uint64(v.Z&mask)
}
