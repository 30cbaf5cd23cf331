package render

import (
	"image/color"

	"github.com/plus3/isopack/crate"
)

// Canvas is the drawing backend. Coordinates are screen pixels.
type Canvas interface {
	Clear(c color.NRGBA)
	FillQuad(q Quad, c color.NRGBA)
	Line(s Segment, width float64, c color.NRGBA)
	Rect(r Rect, c color.NRGBA)
	// Text draws s with its top-left corner at at, using a fixed-width font
	// of GlyphWidth by LineHeight pixels.
	Text(s string, at crate.Point, c color.NRGBA)
}

// Metrics of the fixed-width HUD font.
const (
	GlyphWidth = 7
	LineHeight = 13
)

// TextWidth is the width of s in the HUD font.
func TextWidth(s string) float64 {
	return float64(len([]rune(s)) * GlyphWidth)
}

type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(p crate.Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

func (r Rect) Center() crate.Point {
	return crate.Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// strokeQuad outlines q with one Line per edge.
func strokeQuad(c Canvas, q Quad, width float64, clr color.NRGBA) {
	for _, e := range q.Edges() {
		c.Line(e, width, clr)
	}
}
