package render

import (
	"fmt"
	"image/color"

	"github.com/plus3/isopack/crate"
)

// Action is a request made through an on-screen button.
type Action int

const (
	ActionNone Action = iota
	ActionRotate
	ActionReset
)

func (a Action) String() string {
	switch a {
	case ActionRotate:
		return "rotate"
	case ActionReset:
		return "reset"
	default:
		return "none"
	}
}

type Button struct {
	Action Action
	Label  string
	Rect   Rect
}

const (
	hudMargin    = 16
	panelWidth   = 220
	buttonWidth  = 96
	buttonHeight = 32
	dialogWidth  = 320
	dialogHeight = 200
)

var controls = []string{
	"CLICK/TAP  place",
	"R/SPACE    rotate",
	"N          reset",
	"Q          quit",
}

// HUD draws the status panel, controls, touch buttons and the game over
// dialog. It is drawn unzoomed on top of the scene.
type HUD struct {
	theme Theme
	scene *Scene
}

func NewHUD(theme Theme, scene *Scene) *HUD {
	return &HUD{theme: theme, scene: scene}
}

// StatusLines are the score lines shown in the status panel.
func StatusLines(snap crate.Snapshot) []string {
	return []string{
		fmt.Sprintf("UNITS    %d", snap.Score),
		fmt.Sprintf("VOLUME   %d/%d", snap.VolumeFilled, snap.TotalVolume),
		fmt.Sprintf("CAPACITY %d%%", snap.Efficiency),
	}
}

// Buttons returns the buttons active for the snapshot's state. While playing
// these are rotate and reset in the bottom right corner; after game over the
// dialog's restart button is the only one.
func (h *HUD) Buttons(snap crate.Snapshot, vp crate.Viewport) []Button {
	if snap.State == crate.GameOver {
		d := dialogRect(vp)
		return []Button{{
			Action: ActionReset,
			Label:  "RESTART",
			Rect:   Rect{X: d.X + (d.W-2*buttonWidth)/2, Y: d.Y + d.H - buttonHeight - hudMargin, W: 2 * buttonWidth, H: buttonHeight},
		}}
	}

	y := vp.Height - hudMargin - buttonHeight
	reset := Rect{X: vp.Width - hudMargin - buttonWidth, Y: y, W: buttonWidth, H: buttonHeight}
	rotate := Rect{X: reset.X - hudMargin/2 - buttonWidth, Y: y, W: buttonWidth, H: buttonHeight}
	return []Button{
		{Action: ActionRotate, Label: "ROTATE", Rect: rotate},
		{Action: ActionReset, Label: "RESET", Rect: reset},
	}
}

// HitTest reports which button, if any, contains the raw screen point p.
func (h *HUD) HitTest(snap crate.Snapshot, vp crate.Viewport, p crate.Point) (Action, bool) {
	for _, b := range h.Buttons(snap, vp) {
		if b.Rect.Contains(p) {
			return b.Action, true
		}
	}
	return ActionNone, false
}

func dialogRect(vp crate.Viewport) Rect {
	return Rect{
		X: (vp.Width - dialogWidth) / 2,
		Y: (vp.Height - dialogHeight) / 2,
		W: dialogWidth,
		H: dialogHeight,
	}
}

func (h *HUD) Draw(c Canvas, snap crate.Snapshot, vp crate.Viewport) {
	h.drawPanel(c, snap)
	h.drawControls(c, vp)

	if snap.State == crate.GameOver {
		h.drawGameOver(c, snap, vp)
	}
	for _, b := range h.Buttons(snap, vp) {
		h.drawButton(c, b)
	}
}

func (h *HUD) drawPanel(c Canvas, snap crate.Snapshot) {
	x, y := float64(hudMargin), float64(hudMargin)
	c.Rect(Rect{X: x, Y: y, W: panelWidth, H: 150}, h.theme.Panel)

	x += 12
	y += 12
	c.Text("ISOPACK", crate.Point{X: x, Y: y}, h.theme.Accent)
	y += LineHeight + 2
	status := "SYSTEM ONLINE"
	if snap.State == crate.GameOver {
		status = "FULL CAPACITY"
	}
	c.Text(status, crate.Point{X: x, Y: y}, h.theme.Muted)
	y += LineHeight + 10

	bar := Rect{X: x, Y: y, W: panelWidth - 24, H: 8}
	c.Rect(bar, h.theme.GridLines)
	fill := bar
	fill.W = bar.W * float64(min(100, max(0, snap.Efficiency))) / 100
	c.Rect(fill, h.capacityColor(snap.Efficiency, 80))
	y += bar.H + 8

	for _, line := range StatusLines(snap) {
		c.Text(line, crate.Point{X: x, Y: y}, h.theme.Text)
		y += LineHeight + 2
	}

	c.Text("NEXT", crate.Point{X: x, Y: y + 2}, h.theme.Muted)
	swatch := Rect{X: x + TextWidth("NEXT") + 8, Y: y, W: 16, H: 16}
	c.Rect(swatch, h.scene.color(snap.Next.Color))
}

func (h *HUD) drawControls(c Canvas, vp crate.Viewport) {
	y := vp.Height - hudMargin - float64(len(controls))*(LineHeight+2)
	for _, line := range controls {
		c.Text(line, crate.Point{X: hudMargin, Y: y}, h.theme.Muted)
		y += LineHeight + 2
	}
}

func (h *HUD) drawGameOver(c Canvas, snap crate.Snapshot, vp crate.Viewport) {
	c.Rect(Rect{W: vp.Width, H: vp.Height}, WithAlpha(h.theme.Background, 0.6))

	d := dialogRect(vp)
	c.Rect(d, h.theme.Panel)
	for _, e := range (Quad{
		{X: d.X, Y: d.Y}, {X: d.X + d.W, Y: d.Y}, {X: d.X + d.W, Y: d.Y + d.H}, {X: d.X, Y: d.Y + d.H},
	}).Edges() {
		c.Line(e, 2, h.theme.Accent)
	}

	centered := func(s string, y float64, clr color.NRGBA) {
		c.Text(s, crate.Point{X: d.X + (d.W-TextWidth(s))/2, Y: y}, clr)
	}
	y := d.Y + 24
	centered("FULL CAPACITY", y, h.theme.Text)
	y += LineHeight + 4
	centered("SHIPMENT MANIFEST GENERATED", y, h.theme.Muted)
	y += LineHeight + 16
	centered(fmt.Sprintf("TOTAL BOXES %d", snap.Score), y, h.theme.Text)
	y += LineHeight + 4
	centered(fmt.Sprintf("EFFICIENCY %d%%", snap.Efficiency), y, h.capacityColor(snap.Efficiency, 90))
}

func (h *HUD) drawButton(c Canvas, b Button) {
	c.Rect(b.Rect, h.theme.GridLines)
	center := b.Rect.Center()
	c.Text(b.Label, crate.Point{X: center.X - TextWidth(b.Label)/2, Y: center.Y - LineHeight/2}, h.theme.Text)
}

func (h *HUD) capacityColor(pct, good int) color.NRGBA {
	if pct > good {
		return h.theme.Good
	}
	return h.theme.Accent
}
