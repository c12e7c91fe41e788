package app

import (
	"math"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gocube/pkg/editor"
	"github.com/philipparndt/gocube/pkg/geometry"
)

const (
	gridExtent = 20
	gridMajor  = 5
)

var (
	lightDir       = geometry.NewVector3(-0.5, -1.0, -0.5).Normalize()
	edgeColor      = rl.NewColor(40, 40, 48, 255)
	selectedColor  = rl.NewColor(255, 200, 40, 255)
	primaryColor   = rl.NewColor(255, 240, 120, 255)
	gridMinorColor = rl.NewColor(128, 128, 128, 40)
	gridMajorColor = rl.NewColor(160, 160, 160, 90)
)

func toRL(v geometry.Vector3) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

// shade applies the baked diffuse term used for every face
func shade(c rl.Color, normal geometry.Vector3) rl.Color {
	intensity := math.Max(0.3, -normal.Dot(lightDir)) // min 30% ambient
	return rl.NewColor(
		uint8(float64(c.R)*intensity),
		uint8(float64(c.G)*intensity),
		uint8(float64(c.B)*intensity),
		c.A,
	)
}

// drawGrid draws the ground grid around the point below the camera so it
// never runs out while flying
func (app *App) drawGrid() {
	pos := app.Editor.Camera.Position
	cx := math32.Floor(float32(pos.X)/gridMajor) * gridMajor
	cz := math32.Floor(float32(pos.Z)/gridMajor) * gridMajor

	var start, end rl.Vector3
	for i := -gridExtent; i <= gridExtent; i++ {
		c := gridMinorColor
		if i%gridMajor == 0 {
			c = gridMajorColor
		}
		offset := float32(i)

		start.X, start.Y, start.Z = cx+offset, 0, cz-gridExtent
		end.X, end.Y, end.Z = cx+offset, 0, cz+gridExtent
		rl.DrawLine3D(start, end, c)

		start.X, start.Y, start.Z = cx-gridExtent, 0, cz+offset
		end.X, end.Y, end.Z = cx+gridExtent, 0, cz+offset
		rl.DrawLine3D(start, end, c)
	}
}

// drawCubes draws the shaded faces and dark edges of every cube
func (app *App) drawCubes(rs editor.RenderState) {
	for _, obj := range rs.Objects {
		base := rl.NewColor(obj.Color.R, obj.Color.G, obj.Color.B, obj.Color.A)
		for _, t := range geometry.CubeTriangles(obj.Model) {
			rl.DrawTriangle3D(toRL(t.V1), toRL(t.V2), toRL(t.V3), shade(base, t.CalculateNormal()))
		}
		if !obj.Selected {
			for _, e := range geometry.CubeEdges(obj.Model) {
				rl.DrawLine3D(toRL(e[0]), toRL(e[1]), edgeColor)
			}
		}
	}
}

// drawSelection outlines the selected cubes; the primary one is brighter
func (app *App) drawSelection(rs editor.RenderState) {
	camPos := app.Editor.Camera.Position
	for _, obj := range rs.Objects {
		if !obj.Selected {
			continue
		}
		c := selectedColor
		if obj.Primary {
			c = primaryColor
		}
		radius := handleRadius(camPos, obj.Model.Translation()) * 0.6
		for _, e := range geometry.CubeEdges(obj.Model) {
			rl.DrawCylinderEx(toRL(e[0]), toRL(e[1]), radius, radius, 6, c)
		}
	}
}

// handleRadius keeps lines roughly constant in screen thickness
func handleRadius(camera, at geometry.Vector3) float32 {
	d := at.Sub(camera)
	dist := math32.Sqrt(float32(d.X*d.X + d.Y*d.Y + d.Z*d.Z))
	return math32.Max(0.004, dist*0.004)
}
