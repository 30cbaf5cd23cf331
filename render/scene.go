package render

import (
	"image/color"

	"github.com/plus3/isopack/crate"
)

// Scene draws the container and its cubes.
type Scene struct {
	cfg    crate.Config
	proj   crate.Projection
	theme  Theme
	colors map[crate.Color]color.NRGBA
}

func NewScene(cfg crate.Config, theme Theme) *Scene {
	return &Scene{
		cfg:    cfg,
		proj:   crate.NewProjection(cfg),
		theme:  theme,
		colors: make(map[crate.Color]color.NRGBA),
	}
}

func (s *Scene) Projection() crate.Projection {
	return s.proj
}

// Draw paints one frame: background, floor grid, container wireframe and
// the snapshot's draw list back to front. Everything is scaled by the
// viewport zoom about the canvas center.
func (s *Scene) Draw(c Canvas, snap crate.Snapshot, vp crate.Viewport) {
	c.Clear(s.theme.Background)

	zoom := vp.Zoomed
	origin := vp.Origin

	for x := range s.cfg.GridSize {
		for y := range s.cfg.GridSize {
			tile := FloorTile(s.proj, crate.Cell{X: x, Y: y}, origin).Map(zoom)
			c.FillQuad(tile, s.theme.Floor)
			strokeQuad(c, tile, vp.Zoom, s.theme.GridLines)
		}
	}

	for _, p := range Pillars(s.proj, s.cfg, origin) {
		c.Line(Segment{zoom(p[0]), zoom(p[1])}, 2*vp.Zoom, s.theme.Wall)
	}

	lid := Lid(s.proj, s.cfg, origin).Map(zoom)
	for _, e := range lid.Edges() {
		for _, d := range Dashes(e, 5*vp.Zoom, 5*vp.Zoom) {
			c.Line(d, vp.Zoom, s.theme.Lid)
		}
	}

	for _, item := range snap.DrawList() {
		s.drawCube(c, item, vp)
	}
}

func (s *Scene) drawCube(c Canvas, item crate.DrawItem, vp crate.Viewport) {
	faces := CubeFaces(s.proj, item.Vec3, vp.Origin)
	top, left, right := faces.Top.Map(vp.Zoomed), faces.Left.Map(vp.Zoomed), faces.Right.Map(vp.Zoomed)
	shade := Shade(s.color(item.Color), item.Kind.Opacity())

	c.FillQuad(top, shade.Top)
	c.FillQuad(right, shade.Right)
	c.FillQuad(left, shade.Left)

	if item.Kind == crate.KindGhost {
		return
	}
	for _, q := range []Quad{top, right, left} {
		strokeQuad(c, q, vp.Zoom, s.theme.Edge)
	}
}

// color resolves a palette entry, falling back to the theme's neutral color
// for entries that do not parse.
func (s *Scene) color(c crate.Color) color.NRGBA {
	if rgb, ok := s.colors[c]; ok {
		return rgb
	}
	rgb, err := ParseColor(c)
	if err != nil {
		rgb = s.theme.Fallback
	}
	s.colors[c] = rgb
	return rgb
}
