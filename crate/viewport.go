package crate

const (
	// compactWidth is the canvas width below which the scene is scaled down.
	compactWidth = 600
	minZoom      = 0.6

	// TouchOffset lifts touch input so the finger does not hide the target.
	TouchOffset = 60
)

// Viewport holds the canvas size, zoom and projection origin. It is
// recomputed from scratch on every resize.
type Viewport struct {
	Width  float64
	Height float64
	Zoom   float64
	Origin Point
}

// NewViewport centers the container horizontally a quarter of the way down
// the canvas and shrinks it on narrow screens.
func NewViewport(width, height float64) Viewport {
	zoom := 1.0
	if width < compactWidth {
		zoom = width / compactWidth
	}
	zoom = max(minZoom, zoom)

	return Viewport{
		Width:  width,
		Height: height,
		Zoom:   zoom,
		Origin: Point{X: width / 2, Y: height * 0.25},
	}
}

// Unzoom maps a raw pointer position into the unscaled scene space the
// projection works in. The scene is scaled about the canvas center.
func (v Viewport) Unzoom(p Point) Point {
	if v.Zoom == 0 {
		return p
	}
	cx, cy := v.Width/2, v.Height/2
	return Point{
		X: (p.X-cx)/v.Zoom + cx,
		Y: (p.Y-cy)/v.Zoom + cy,
	}
}

// Zoomed is the inverse of Unzoom.
func (v Viewport) Zoomed(p Point) Point {
	cx, cy := v.Width/2, v.Height/2
	return Point{
		X: (p.X-cx)*v.Zoom + cx,
		Y: (p.Y-cy)*v.Zoom + cy,
	}
}

// CellAt resolves a raw pointer position to the floor cell under it.
func (v Viewport) CellAt(proj Projection, p Point) Cell {
	return proj.ToGrid(v.Unzoom(p), v.Origin)
}
