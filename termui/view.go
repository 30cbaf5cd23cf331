package termui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/isopack/crate"
	"github.com/plus3/isopack/render"
)

// Layout of the top-down view. Every floor cell is cellWidth characters
// wide.
const (
	gridLeft  = 2
	gridTop   = 2
	cellWidth = 3
)

var (
	styleDefault = tcell.StyleDefault
	styleTitle   = tcell.StyleDefault.Foreground(tcell.NewHexColor(0xFF6600)).Bold(true)
	styleMuted   = tcell.StyleDefault.Foreground(tcell.NewHexColor(0x9CA3AF))
	styleFloor   = tcell.StyleDefault.Foreground(tcell.NewHexColor(0x374151))
)

var controls = []string{
	"arrows/hjkl move",
	"enter       place",
	"r/space     rotate",
	"n           reset",
	"q/esc       quit",
}

// CellOrigin is the screen position of the first character of a floor cell.
func CellOrigin(c crate.Cell) (x, y int) {
	return gridLeft + c.X*cellWidth, gridTop + c.Y
}

// Draw paints the height map, the ghost footprint, the cursor and the status
// panel.
func Draw(screen tcell.Screen, snap crate.Snapshot) {
	screen.Clear()
	puts(screen, gridLeft, 0, "ISOPACK", styleTitle)

	heights := snap.HeightMap()
	ghost := make(map[crate.Cell]crate.Color)
	for _, item := range snap.Ghost() {
		ghost[crate.Cell{X: item.X, Y: item.Y}] = item.Color
	}

	n := snap.Config.GridSize
	for y := range n {
		for x := range n {
			cell := crate.Cell{X: x, Y: y}
			col := heights.At(cell)

			label, style := " · ", styleFloor
			if col.Height > 0 {
				label = fmt.Sprintf(" %d ", col.Height)
				style = styleDefault.Foreground(termColor(col.Top))
			}
			if c, ok := ghost[cell]; ok {
				style = style.Background(termColor(c))
			}
			if snap.Cursor != nil && *snap.Cursor == cell {
				style = style.Reverse(true)
			}

			sx, sy := CellOrigin(cell)
			puts(screen, sx, sy, label, style)
		}
	}

	drawStatus(screen, snap, gridLeft+n*cellWidth+3)
	screen.Show()
}

func drawStatus(screen tcell.Screen, snap crate.Snapshot, x int) {
	y := gridTop
	status := "SYSTEM ONLINE"
	if snap.State == crate.GameOver {
		status = "FULL CAPACITY"
	}
	puts(screen, x, y, status, styleMuted)
	y += 2

	for _, line := range render.StatusLines(snap) {
		puts(screen, x, y, line, styleDefault)
		y++
	}

	puts(screen, x, y, "NEXT", styleMuted)
	puts(screen, x+5, y, "■", styleDefault.Foreground(termColor(snap.Next.Color)))
	y += 2

	if snap.State == crate.GameOver {
		puts(screen, x, y, fmt.Sprintf("TOTAL BOXES %d", snap.Score), styleTitle)
		puts(screen, x, y+1, fmt.Sprintf("EFFICIENCY %d%%", snap.Efficiency), styleTitle)
		puts(screen, x, y+2, "press n to restart", styleMuted)
		y += 4
	}

	for _, line := range controls {
		puts(screen, x, y, line, styleMuted)
		y++
	}
}

func puts(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// termColor converts a palette entry, falling back to the terminal default.
func termColor(c crate.Color) tcell.Color {
	rgb, err := render.ParseColor(c)
	if err != nil {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
}
