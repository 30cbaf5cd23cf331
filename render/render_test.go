package render_test

import (
	"image/color"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/plus3/isopack/crate"
	"github.com/plus3/isopack/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	clears []color.NRGBA
	quads  []quadCall
	lines  []render.Segment
	rects  []render.Rect
	texts  []string
}

type quadCall struct {
	q render.Quad
	c color.NRGBA
}

func (r *recorder) Clear(c color.NRGBA)                             { r.clears = append(r.clears, c) }
func (r *recorder) FillQuad(q render.Quad, c color.NRGBA)           { r.quads = append(r.quads, quadCall{q, c}) }
func (r *recorder) Line(s render.Segment, _ float64, _ color.NRGBA) { r.lines = append(r.lines, s) }
func (r *recorder) Rect(rect render.Rect, _ color.NRGBA)            { r.rects = append(r.rects, rect) }
func (r *recorder) Text(s string, _ crate.Point, _ color.NRGBA)     { r.texts = append(r.texts, s) }

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   crate.Color
		want color.NRGBA
		ok   bool
	}{
		{"#FF6600", color.NRGBA{R: 0xff, G: 0x66, A: 0xff}, true},
		{"4d148c", color.NRGBA{R: 0x4d, G: 0x14, B: 0x8c, A: 0xff}, true},
		{crate.InvalidColor, color.NRGBA{R: 0xef, G: 0x44, B: 0x44, A: 0xff}, true},
		{"#FFF", color.NRGBA{}, false},
		{"#GG0000", color.NRGBA{}, false},
		{"", color.NRGBA{}, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			got, err := render.ParseColor(tt.in)
			if !tt.ok {
				assert.ErrorIs(t, err, render.ErrBadColor)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShade(t *testing.T) {
	base := color.NRGBA{R: 0x25, G: 0x63, B: 0xeb, A: 0xff}

	s := render.Shade(base, 1)
	assert.Equal(t, base, s.Top)
	assert.Equal(t, color.NRGBA{R: 0x11, G: 0x4f, B: 0xd7, A: 0xff}, s.Left)
	assert.Equal(t, color.NRGBA{R: 0x00, G: 0x3b, B: 0xc3, A: 0xff}, s.Right, "channels clamp at zero")

	ghost := render.Shade(base, crate.KindGhost.Opacity())
	assert.Equal(t, uint8(102), ghost.Top.A)
	assert.Equal(t, uint8(242), render.Shade(base, crate.KindActive.Opacity()).Left.A)
}

func TestCubeFaces(t *testing.T) {
	proj := crate.NewProjection(crate.DefaultConfig())
	origin := crate.Point{X: 400, Y: 100}

	faces := render.CubeFaces(proj, crate.V(0, 0, 0), origin)

	assert.Equal(t, render.Quad{{X: 400, Y: 68}, {X: 432, Y: 84}, {X: 400, Y: 100}, {X: 368, Y: 84}}, faces.Top)
	assert.Equal(t, render.Quad{{X: 368, Y: 116}, {X: 400, Y: 132}, {X: 400, Y: 100}, {X: 368, Y: 84}}, faces.Left)
	assert.Equal(t, render.Quad{{X: 432, Y: 116}, {X: 400, Y: 132}, {X: 400, Y: 100}, {X: 432, Y: 84}}, faces.Right)

	// the floor tile of a cell is the cube's top face one level down
	tile := render.FloorTile(proj, crate.Cell{X: 2, Y: 1}, origin)
	lower := render.CubeFaces(proj, crate.V(2, 1, -1), origin).Top
	assert.Equal(t, lower, tile)
}

func TestContainerOutline(t *testing.T) {
	cfg := crate.DefaultConfig()
	proj := crate.NewProjection(cfg)
	origin := crate.Point{X: 400, Y: 100}

	pillars := render.Pillars(proj, cfg, origin)
	require.Len(t, pillars, 4)
	for _, p := range pillars {
		assert.Equal(t, p[0].X, p[1].X, "pillars are vertical")
		assert.Equal(t, 256.0, p[0].Y-p[1].Y)
	}

	lid := render.Lid(proj, cfg, origin)
	assert.Equal(t, crate.Point{X: 400, Y: 100 - 256}, lid[0])
	assert.Len(t, lid.Edges(), 4)
}

func TestDashes(t *testing.T) {
	s := render.Segment{{X: 0, Y: 0}, {X: 22, Y: 0}}

	dashes := render.Dashes(s, 5, 5)

	assert.Equal(t, []render.Segment{
		{{X: 0, Y: 0}, {X: 5, Y: 0}},
		{{X: 10, Y: 0}, {X: 15, Y: 0}},
		{{X: 20, Y: 0}, {X: 22, Y: 0}},
	}, dashes)
	assert.Nil(t, render.Dashes(render.Segment{}, 5, 5))
	assert.Equal(t, []render.Segment{s}, render.Dashes(s, 5, 0))
}

func newSnapshot(t *testing.T, cells ...crate.Cell) (*crate.Session, crate.Snapshot) {
	t.Helper()
	factory := crate.MustFactory(crate.DefaultCatalog(), rand.New(rand.NewPCG(4, 4)), crate.SequentialIDs("p"))
	s, err := crate.NewSession(crate.DefaultConfig(), factory)
	require.NoError(t, err)
	for _, c := range cells {
		s.PlaceAt(c)
	}
	return s, s.Snapshot()
}

func TestSceneDraw(t *testing.T) {
	s, snap := newSnapshot(t, crate.Cell{X: 0, Y: 0}, crate.Cell{X: 3, Y: 3})
	scene := render.NewScene(s.Config(), render.DefaultTheme())
	vp := crate.NewViewport(1024, 768)

	rec := &recorder{}
	scene.Draw(rec, snap, vp)

	require.Len(t, rec.clears, 1)
	floorTiles := 36
	cubes := len(snap.DrawList())
	assert.Len(t, rec.quads, floorTiles+3*cubes)

	first := rec.quads[floorTiles]
	assert.Equal(t, render.CubeFaces(scene.Projection(), snap.DrawList()[0].Vec3, vp.Origin).Top, first.q)
}

func TestSceneDrawGhost(t *testing.T) {
	s, _ := newSnapshot(t)
	s.SetCursor(crate.Cell{X: 40, Y: 40})
	snap := s.Snapshot()
	scene := render.NewScene(s.Config(), render.DefaultTheme())

	rec := &recorder{}
	scene.Draw(rec, snap, crate.NewViewport(800, 600))

	ghost := rec.quads[36:]
	require.Len(t, ghost, 3*len(snap.Active.Blocks))
	for _, q := range ghost {
		assert.Equal(t, uint8(102), q.c.A, "invalid preview is translucent")
		assert.Greater(t, q.c.R, q.c.G, "drawn in the invalid color")
	}
}

func TestSceneZoomScalesAboutCenter(t *testing.T) {
	s, snap := newSnapshot(t)
	scene := render.NewScene(s.Config(), render.DefaultTheme())

	narrow := crate.NewViewport(300, 600)
	rec := &recorder{}
	scene.Draw(rec, snap, narrow)

	want := render.FloorTile(scene.Projection(), crate.Cell{}, narrow.Origin).Map(narrow.Zoomed)
	assert.Equal(t, want, rec.quads[0].q)
}

func TestHUD(t *testing.T) {
	s, snap := newSnapshot(t, crate.Cell{X: 0, Y: 0})
	scene := render.NewScene(s.Config(), render.DefaultTheme())
	hud := render.NewHUD(render.DefaultTheme(), scene)
	vp := crate.NewViewport(1024, 768)

	rec := &recorder{}
	hud.Draw(rec, snap, vp)

	all := strings.Join(rec.texts, "\n")
	assert.Contains(t, all, "ISOPACK")
	assert.Contains(t, all, "SYSTEM ONLINE")
	for _, line := range render.StatusLines(snap) {
		assert.Contains(t, all, line)
	}
	assert.Contains(t, all, "ROTATE")
	assert.NotContains(t, all, "FULL CAPACITY")
}

func TestStatusLines(t *testing.T) {
	snap := crate.Snapshot{Score: 12, VolumeFilled: 12, TotalVolume: 288, Efficiency: 4}

	assert.Equal(t, []string{
		"UNITS    12",
		"VOLUME   12/288",
		"CAPACITY 4%",
	}, render.StatusLines(snap))
}

func TestHUDHitTest(t *testing.T) {
	hud := render.NewHUD(render.DefaultTheme(), render.NewScene(crate.DefaultConfig(), render.DefaultTheme()))
	vp := crate.NewViewport(1024, 768)
	playing := crate.Snapshot{State: crate.Playing}

	buttons := hud.Buttons(playing, vp)
	require.Len(t, buttons, 2)
	for _, b := range buttons {
		action, ok := hud.HitTest(playing, vp, b.Rect.Center())
		assert.True(t, ok)
		assert.Equal(t, b.Action, action)
	}

	_, ok := hud.HitTest(playing, vp, crate.Point{X: 512, Y: 300})
	assert.False(t, ok, "the scene is not a button")

	over := crate.Snapshot{State: crate.GameOver}
	buttons = hud.Buttons(over, vp)
	require.Len(t, buttons, 1)
	assert.Equal(t, render.ActionReset, buttons[0].Action)
	action, ok := hud.HitTest(over, vp, buttons[0].Rect.Center())
	assert.True(t, ok)
	assert.Equal(t, render.ActionReset, action)
}

func TestHUDGameOverDialog(t *testing.T) {
	hud := render.NewHUD(render.DefaultTheme(), render.NewScene(crate.DefaultConfig(), render.DefaultTheme()))
	snap := crate.Snapshot{State: crate.GameOver, Score: 288, VolumeFilled: 288, TotalVolume: 288, Efficiency: 100}

	rec := &recorder{}
	hud.Draw(rec, snap, crate.NewViewport(800, 600))

	all := strings.Join(rec.texts, "\n")
	assert.Contains(t, all, "FULL CAPACITY")
	assert.Contains(t, all, "TOTAL BOXES 288")
	assert.Contains(t, all, "EFFICIENCY 100%")
	assert.Contains(t, all, "RESTART")
}
