// Package render turns session snapshots into flat drawing primitives. It
// knows the isometric cube geometry, shading and HUD layout but nothing
// about a graphics backend: everything is drawn through a Canvas.
package render

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/plus3/isopack/crate"
)

var ErrBadColor = errors.New("bad color")

// ParseColor parses "#RRGGBB" (the leading # is optional) into an opaque
// color.
func ParseColor(c crate.Color) (color.NRGBA, error) {
	hex := strings.TrimPrefix(string(c), "#")
	if len(hex) != 6 {
		return color.NRGBA{}, fmt.Errorf("parse %q: %w", string(c), ErrBadColor)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("parse %q: %w", string(c), ErrBadColor)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

func mustParse(c crate.Color) color.NRGBA {
	rgb, err := ParseColor(c)
	if err != nil {
		panic(err)
	}
	return rgb
}

// Darken subtracts amount from each channel, clamping at zero.
func Darken(c color.NRGBA, amount uint8) color.NRGBA {
	sub := func(v uint8) uint8 {
		if v < amount {
			return 0
		}
		return v - amount
	}
	return color.NRGBA{R: sub(c.R), G: sub(c.G), B: sub(c.B), A: c.A}
}

// WithAlpha replaces the alpha channel with opacity in [0, 1].
func WithAlpha(c color.NRGBA, opacity float64) color.NRGBA {
	opacity = min(1, max(0, opacity))
	c.A = uint8(opacity*255 + 0.5)
	return c
}

// Shading is the fill of the three visible faces of a cube.
type Shading struct {
	Top, Left, Right color.NRGBA
}

// Shade lights a cube from the upper left: the top face keeps the base
// color, the left face is a little darker and the right face darker still.
func Shade(base color.NRGBA, opacity float64) Shading {
	return Shading{
		Top:   WithAlpha(base, opacity),
		Left:  WithAlpha(Darken(base, 20), opacity),
		Right: WithAlpha(Darken(base, 40), opacity),
	}
}

// Theme is the fixed color scheme of the scene and HUD.
type Theme struct {
	Background color.NRGBA
	Floor      color.NRGBA
	GridLines  color.NRGBA
	Wall       color.NRGBA
	Lid        color.NRGBA
	Edge       color.NRGBA
	Text       color.NRGBA
	Muted      color.NRGBA
	Accent     color.NRGBA
	Good       color.NRGBA
	Panel      color.NRGBA
	Fallback   color.NRGBA
}

func DefaultTheme() Theme {
	return Theme{
		Background: mustParse("#111827"),
		Floor:      mustParse("#1F2937"),
		GridLines:  mustParse("#374151"),
		Wall:       mustParse("#374151"),
		Lid:        WithAlpha(mustParse("#FFFFFF"), 0.2),
		Edge:       WithAlpha(mustParse("#000000"), 0.3),
		Text:       mustParse("#FFFFFF"),
		Muted:      mustParse("#9CA3AF"),
		Accent:     mustParse("#FF6600"),
		Good:       mustParse("#4ADE80"),
		Panel:      WithAlpha(mustParse("#111827"), 0.85),
		Fallback:   mustParse("#6B7280"),
	}
}
