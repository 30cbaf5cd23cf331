package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/isopack/crate"
	"github.com/plus3/isopack/render"
	"golang.org/x/image/font/basicfont"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

	hudFace = text.NewGoXFace(basicfont.Face7x13)
)

func init() {
	whiteImage.Fill(color.White)
}

// ebitenCanvas draws render output onto the current screen image.
type ebitenCanvas struct {
	dst      *ebiten.Image
	path     vector.Path
	vertices []ebiten.Vertex
	indices  []uint16
}

func (c *ebitenCanvas) Clear(clr color.NRGBA) {
	c.dst.Fill(clr)
}

func (c *ebitenCanvas) FillQuad(q render.Quad, clr color.NRGBA) {
	c.path.Reset()
	c.path.MoveTo(float32(q[0].X), float32(q[0].Y))
	for _, p := range q[1:] {
		c.path.LineTo(float32(p.X), float32(p.Y))
	}
	c.path.Close()

	c.vertices, c.indices = c.path.AppendVerticesAndIndicesForFilling(c.vertices[:0], c.indices[:0])
	r, g, b, a := float32(clr.R)/0xff, float32(clr.G)/0xff, float32(clr.B)/0xff, float32(clr.A)/0xff
	for i := range c.vertices {
		c.vertices[i].SrcX = 1
		c.vertices[i].SrcY = 1
		c.vertices[i].ColorR = r
		c.vertices[i].ColorG = g
		c.vertices[i].ColorB = b
		c.vertices[i].ColorA = a
	}

	c.dst.DrawTriangles(c.vertices, c.indices, whiteSubImage, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (c *ebitenCanvas) Line(s render.Segment, width float64, clr color.NRGBA) {
	vector.StrokeLine(c.dst,
		float32(s[0].X), float32(s[0].Y), float32(s[1].X), float32(s[1].Y),
		float32(width), clr, true)
}

func (c *ebitenCanvas) Rect(r render.Rect, clr color.NRGBA) {
	vector.DrawFilledRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

func (c *ebitenCanvas) Text(s string, at crate.Point, clr color.NRGBA) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(at.X, at.Y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(c.dst, s, hudFace, op)
}
