package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gocube/pkg/editor"
	"github.com/philipparndt/gocube/pkg/geometry"
	"github.com/philipparndt/gocube/pkg/gizmo"
)

var (
	axisColors = [3]rl.Color{
		rl.NewColor(230, 70, 70, 255),
		rl.NewColor(80, 220, 80, 255),
		rl.NewColor(80, 120, 240, 255),
	}
	highlightColor = rl.NewColor(255, 255, 80, 255)
)

func axisColor(a gizmo.Axis, g editor.GizmoState) rl.Color {
	if a == g.Active || (g.Active == gizmo.AxisNone && a == g.Hovered) {
		return highlightColor
	}
	return axisColors[a.Index()]
}

// drawGizmo draws the handles on top of the scene
func (app *App) drawGizmo(rs editor.RenderState) {
	g := rs.Gizmo
	if !g.Visible {
		return
	}

	// flush pending geometry so the handles are not hidden by the cubes
	rl.DrawRenderBatchActive()
	rl.DisableDepthTest()
	defer func() {
		rl.DrawRenderBatchActive()
		rl.EnableDepthTest()
	}()

	origin := g.Lines[0].Start
	r := handleRadius(app.Editor.Camera.Position, origin)

	switch g.Mode {
	case gizmo.Rotate:
		samples := app.Config.Gizmo.RingSamples
		for _, ring := range g.Rings {
			c := axisColor(ring.Axis, g)
			points := ring.Circle.Samples(samples)
			for i := range points {
				next := points[(i+1)%len(points)]
				rl.DrawCylinderEx(toRL(points[i]), toRL(next), r, r, 4, c)
			}
		}

	default:
		for _, line := range g.Lines {
			c := axisColor(line.Axis, g)
			rl.DrawCylinderEx(toRL(line.Start), toRL(line.End), r, r, 6, c)
			app.drawHandleTip(g.Mode, line, r, c)
		}
	}
}

// drawHandleTip draws a cone for translate and a box for scale
func (app *App) drawHandleTip(mode gizmo.TransformMode, line gizmo.Line, r float32, c rl.Color) {
	dir := line.End.Sub(line.Start).Normalize()
	if dir.IsZero() {
		return
	}
	size := float64(r) * 8

	if mode == gizmo.Scale {
		s := float32(size)
		rl.DrawCubeV(toRL(line.End), rl.Vector3{X: s, Y: s, Z: s}, c)
		return
	}

	tip := line.End.Add(dir.Mul(size * 1.5))
	rl.DrawCylinderEx(toRL(line.End), toRL(tip), float32(size)*0.5, 0, 12, c)
}

// axisLabelPosition is where the X/Y/Z label of a line handle is drawn
func axisLabelPosition(line gizmo.Line) geometry.Vector3 {
	return line.End.Add(line.End.Sub(line.Start).Normalize().Mul(0.35))
}
