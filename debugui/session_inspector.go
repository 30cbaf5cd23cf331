package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/isopack/crate"
	"github.com/plus3/isopack/loop"
	"github.com/plus3/isopack/render"
)

// SessionInspector shows the session state and lets the developer drive it.
// Button presses are queued and applied on the next frame, since the panel
// renders after the current frame's commands have run.
type SessionInspector struct {
	queued []func(*loop.Commands)
}

func NewSessionInspector() *SessionInspector {
	return &SessionInspector{}
}

func (si *SessionInspector) Name() string { return "debugui.inspector" }

func (si *SessionInspector) Execute(frame *loop.UpdateFrame) {
	for _, fn := range si.queued {
		fn(frame.Commands)
	}
	si.queued = si.queued[:0]
}

// Request queues fn for the next frame's command buffer.
func (si *SessionInspector) Request(fn func(*loop.Commands)) {
	si.queued = append(si.queued, fn)
}

func (si *SessionInspector) Render(frame *loop.UpdateFrame) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 480), imgui.CondOnce)

	if !imgui.BeginV("Session", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	snap := frame.Session.Snapshot()

	if snap.State == crate.GameOver {
		imgui.TextColored(imgui.NewVec4(1.0, 0.4, 0.0, 1.0), "GAME OVER")
	} else {
		imgui.TextColored(imgui.NewVec4(0.0, 1.0, 0.0, 1.0), "PLAYING")
	}
	imgui.Text(fmt.Sprintf("Score: %d", snap.Score))
	imgui.ProgressBarV(float32(snap.VolumeFilled)/float32(snap.TotalVolume), imgui.NewVec2(-1, 0),
		fmt.Sprintf("%d/%d (%d%%)", snap.VolumeFilled, snap.TotalVolume, snap.Efficiency))

	if snap.Cursor != nil {
		imgui.Text(fmt.Sprintf("Cursor: %s", *snap.Cursor))
	} else {
		imgui.Text("Cursor: none")
	}

	imgui.Separator()
	renderPiece("Active", snap.Active)
	renderPiece("Next", snap.Next)

	if imgui.TreeNodeStr("Height Map") {
		renderHeightMap(snap.HeightMap())
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Stats") {
		renderFields(frame.Session.Stats())
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Config") {
		renderFields(snap.Config)
		imgui.TreePop()
	}

	imgui.Separator()
	if imgui.Button("Rotate") {
		si.Request((*loop.Commands).Rotate)
	}
	imgui.SameLine()
	if imgui.Button("Clear Cursor") {
		si.Request((*loop.Commands).ClearCursor)
	}
	imgui.SameLine()
	imgui.PushStyleColorVec4(imgui.ColButton, imgui.NewVec4(0.7, 0.2, 0.2, 1.0))
	imgui.PushStyleColorVec4(imgui.ColButtonHovered, imgui.NewVec4(0.8, 0.3, 0.3, 1.0))
	imgui.PushStyleColorVec4(imgui.ColButtonActive, imgui.NewVec4(0.6, 0.1, 0.1, 1.0))
	if imgui.Button("Reset") {
		si.Request((*loop.Commands).Reset)
	}
	imgui.PopStyleColor()
	imgui.PopStyleColor()
	imgui.PopStyleColor()

	imgui.End()
}

func renderPiece(label string, p crate.Piece) {
	imgui.PushStyleColorVec4(imgui.ColText, colorVec4(p.Color))
	imgui.Text(fmt.Sprintf("■ %s", label))
	imgui.PopStyleColor()
	imgui.SameLine()
	imgui.Text(PieceSummary(p))
}

func renderHeightMap(m crate.HeightMap) {
	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsSizingFixedFit
	if !imgui.BeginTableV("HeightMap", int32(m.Size()), tableFlags, imgui.NewVec2(0, 0), 0) {
		return
	}
	for y := range m.Size() {
		imgui.TableNextRow()
		for x := range m.Size() {
			imgui.TableNextColumn()
			col := m.At(crate.Cell{X: x, Y: y})
			if col.Height == 0 {
				imgui.Text(".")
				continue
			}
			imgui.TextColored(colorVec4(col.Top), fmt.Sprintf("%d", col.Height))
		}
	}
	imgui.EndTable()
}

func renderFields(v any) {
	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if !imgui.BeginTableV(fmt.Sprintf("%T", v), 2, tableFlags, imgui.NewVec2(0, 0), 0) {
		return
	}
	imgui.TableSetupColumn("Field")
	imgui.TableSetupColumn("Value")
	imgui.TableHeadersRow()
	for _, f := range Describe(v) {
		imgui.TableNextRow()
		imgui.TableNextColumn()
		imgui.Text(f.Name)
		imgui.TableNextColumn()
		imgui.Text(f.Value)
	}
	imgui.EndTable()
}

// PieceSummary formats a piece as "<id> <color> <n> blocks [offsets]".
func PieceSummary(p crate.Piece) string {
	offsets := make([]string, len(p.Blocks))
	for i, b := range p.Blocks {
		offsets[i] = b.String()
	}
	return fmt.Sprintf("%s %s %d blocks [%s]", p.ID, p.Color, len(p.Blocks), strings.Join(offsets, " "))
}

// colorVec4 converts a palette entry for ImGui. Unparseable entries are
// shown in grey.
func colorVec4(c crate.Color) imgui.Vec4 {
	rgb, err := render.ParseColor(c)
	if err != nil {
		return imgui.NewVec4(0.5, 0.5, 0.5, 1.0)
	}
	return imgui.NewVec4(float32(rgb.R)/255, float32(rgb.G)/255, float32(rgb.B)/255, 1.0)
}
