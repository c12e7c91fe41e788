package app

import (
	"fmt"
	"path/filepath"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gocube/pkg/analysis"
	"github.com/philipparndt/gocube/pkg/editor"
	"github.com/philipparndt/gocube/pkg/gizmo"
	"github.com/philipparndt/gocube/pkg/viewer"
	"github.com/philipparndt/gocube/version"
)

const (
	statusDuration = 3 * time.Second
	lineHeight     = int32(20)
	fontSize14     = int32(14)
	fontSize16     = int32(16)
	fontSize12     = int32(12)
)

var helpLines = []string{
	"  Right Drag: Look | W/A/S/D: Move | Q/E: Down/Up | Shift: Fast",
	"  Wheel: Dolly | F: Focus selection | Home: Reset camera",
	"  Click: Select | Ctrl+Click: Add/remove | Esc: Clear",
	"  1/2/3: Translate/Rotate/Scale | L: Local space",
	"  Insert: Add cube | Delete: Remove selected",
	"  Ctrl+C/V: Copy/Paste | Ctrl+Z: Undo | Ctrl+N: New",
	"  Ctrl+S: Save | G: Grid | I: Stats | H: Help",
}

// drawUI draws the 2D overlay
func (app *App) drawUI(rs editor.RenderState) {
	y := int32(10)

	// === SCENE ===
	title := "untitled"
	if app.Project.path != "" {
		title = filepath.Base(app.Project.path)
	}
	if app.Editor.Modified {
		title += " *"
	}
	if app.FileWatch.enabled {
		title += " [auto-reload]"
	}
	rl.DrawText(title, 10, y, fontSize16, rl.Yellow)
	y += lineHeight

	selected := app.Editor.Scene.SelectedIndices()
	rl.DrawText(fmt.Sprintf("  Cubes: %d | Selected: %d", len(rs.Objects), len(selected)), 10, y, fontSize14, rl.White)
	y += lineHeight

	space := "world"
	if app.Editor.Gizmo.LocalSpace {
		space = "local"
	}
	rl.DrawText(fmt.Sprintf("  Mode: %s (%s)", app.Editor.Gizmo.Mode, space), 10, y, fontSize14, rl.White)
	y += lineHeight

	if obj := app.Editor.Scene.Object(app.Editor.Scene.Primary()); obj != nil {
		rl.DrawText("  Position: "+analysis.FormatVector(obj.Position), 10, y, fontSize14, rl.LightGray)
		y += lineHeight
		rl.DrawText("  Rotation: "+analysis.FormatVector(obj.Rotation), 10, y, fontSize14, rl.LightGray)
		y += lineHeight
		rl.DrawText("  Scale:    "+analysis.FormatVector(obj.Scale), 10, y, fontSize14, rl.LightGray)
		y += lineHeight
	}
	y += lineHeight

	if app.View.showStats {
		y = app.drawStats(y)
	}

	if app.View.showHelp {
		rl.DrawText("Controls:", 10, y, fontSize16, rl.Yellow)
		y += lineHeight
		for _, line := range helpLines {
			rl.DrawText(line, 10, y, fontSize14, rl.LightGray)
			y += lineHeight
		}
	}

	app.drawAxisLabels(rs)

	// status line, fades out
	if app.UI.status != "" {
		if age := time.Since(app.UI.statusTime); age < statusDuration {
			alpha := uint8(255 * (1 - float64(age)/float64(statusDuration)))
			x := int32(rl.GetScreenWidth()) - rl.MeasureText(app.UI.status, fontSize16) - 20
			rl.DrawText(app.UI.status, x, 20, fontSize16, rl.NewColor(255, 255, 0, alpha))
		}
	}

	// Version and FPS in bottom-left corner
	bottomY := int32(rl.GetScreenHeight()) - 30
	versionText := fmt.Sprintf("v%s", version.GetVersion())
	rl.DrawText(versionText, 10, bottomY, fontSize12, rl.Gray)
	versionWidth := rl.MeasureText(versionText, fontSize12)
	rl.DrawText(fmt.Sprintf("FPS: %d", rl.GetFPS()), 10+versionWidth+15, bottomY, fontSize12, rl.Lime)
}

func (app *App) drawStats(y int32) int32 {
	stats := analysis.AnalyzeScene(app.Editor.Scene.Objects())

	rl.DrawText("Stats:", 10, y, fontSize16, rl.Yellow)
	y += lineHeight
	rl.DrawText(fmt.Sprintf("  Triangles: %d", stats.TriangleCount), 10, y, fontSize14, rl.White)
	y += lineHeight
	rl.DrawText(fmt.Sprintf("  Volume: %.2f", stats.Volume), 10, y, fontSize14, rl.White)
	y += lineHeight
	rl.DrawText(fmt.Sprintf("  Surface Area: %.2f", stats.SurfaceArea), 10, y, fontSize14, rl.White)
	y += lineHeight
	rl.DrawText(fmt.Sprintf("  Size: %.2f x %.2f x %.2f", stats.Dimensions.X, stats.Dimensions.Y, stats.Dimensions.Z), 10, y, fontSize14, rl.White)
	y += lineHeight
	rl.DrawText(fmt.Sprintf("  Materials: %d", len(stats.Materials)), 10, y, fontSize14, rl.White)
	y += lineHeight * 2
	return y
}

// drawAxisLabels names the line handles of the gizmo
func (app *App) drawAxisLabels(rs editor.RenderState) {
	g := rs.Gizmo
	if !g.Visible || g.Mode == gizmo.Rotate {
		return
	}
	for _, line := range g.Lines {
		p, ok := viewer.WorldToScreen(axisLabelPosition(line), rs.View, rs.Proj, rs.Viewport)
		if !ok {
			continue
		}
		rl.DrawText(line.Axis.String(), int32(p.X)-4, int32(p.Y)-8, fontSize16, axisColor(line.Axis, g))
	}
}
