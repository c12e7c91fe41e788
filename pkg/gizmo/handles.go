package gizmo

import (
	"math"

	"github.com/philipparndt/gocube/pkg/geometry"
	"github.com/philipparndt/gocube/pkg/scene"
	"github.com/philipparndt/gocube/pkg/viewer"
)

// Line is a translate or scale handle from the gizmo origin outwards
type Line struct {
	Axis  Axis
	Start geometry.Vector3
	End   geometry.Vector3
}

// Ring is a rotation handle around Axis
type Ring struct {
	Axis   Axis
	Circle geometry.Circle
}

// ringBasis returns the in-plane basis of the world-aligned ring that
// rotates about axis a
func ringBasis(a Axis) (u, v geometry.Vector3) {
	switch a {
	case AxisX:
		return geometry.UnitAxis(2), geometry.UnitAxis(1)
	case AxisY:
		return geometry.UnitAxis(0), geometry.UnitAxis(2)
	default:
		return geometry.UnitAxis(0), geometry.UnitAxis(1)
	}
}

// Direction returns the world direction of axis a for obj in the current
// mode. Scale is always local; translate is local only with LocalSpace on;
// rotate always uses world axes.
func (g *Gizmo) Direction(obj scene.Object, a Axis) geometry.Vector3 {
	if !a.Valid() {
		return geometry.Vector3{}
	}
	if g.Mode == Scale || (g.Mode == Translate && g.LocalSpace) {
		return obj.LocalAxis(a.Index())
	}
	return a.Unit()
}

// Lines returns the three line handles for obj
func (g *Gizmo) Lines(obj scene.Object) [3]Line {
	var lines [3]Line
	for i, a := range Axes {
		lines[i] = Line{
			Axis:  a,
			Start: obj.Position,
			End:   obj.Position.Add(g.Direction(obj, a).Mul(g.Settings.Length)),
		}
	}
	return lines
}

// Rings returns the three world-aligned rotation rings for obj
func (g *Gizmo) Rings(obj scene.Object) [3]Ring {
	var rings [3]Ring
	for i, a := range Axes {
		u, v := ringBasis(a)
		rings[i] = Ring{
			Axis:   a,
			Circle: geometry.Circle{Center: obj.Position, U: u, V: v, Radius: g.Settings.Length},
		}
	}
	return rings
}

// Hover returns the handle under the cursor for obj and its screen distance.
// AxisNone is returned when no handle is within the pixel threshold or the
// gizmo origin is not visible.
func (g *Gizmo) Hover(obj scene.Object, in Input) (Axis, float64) {
	if _, ok := viewer.WorldToScreen(obj.Position, in.View, in.Proj, in.Viewport); !ok {
		return AxisNone, 0
	}

	best := AxisNone
	if g.Mode == Rotate {
		bestDist := g.Settings.RingThreshold
		for _, ring := range g.Rings(obj) {
			d, ok := ringDistance(ring, g.Settings.RingSamples, in)
			if ok && d < bestDist {
				best, bestDist = ring.Axis, d
			}
		}
		return best, bestDist
	}

	bestDist := g.Settings.LineThreshold
	for _, line := range g.Lines(obj) {
		start, ok1 := viewer.WorldToScreen(line.Start, in.View, in.Proj, in.Viewport)
		end, ok2 := viewer.WorldToScreen(line.End, in.View, in.Proj, in.Viewport)
		if !ok1 || !ok2 {
			continue
		}
		d, ok := in.Cursor.DistanceToSegment(start, end)
		if ok && d < bestDist {
			best, bestDist = line.Axis, d
		}
	}
	return best, bestDist
}

// ringDistance returns the smallest screen distance from the cursor to the
// visible samples of the ring
func ringDistance(ring Ring, samples int, in Input) (float64, bool) {
	best := math.Inf(1)
	for _, p := range ring.Circle.Samples(samples) {
		s, ok := viewer.WorldToScreen(p, in.View, in.Proj, in.Viewport)
		if !ok {
			continue
		}
		if d := in.Cursor.Distance(s); d < best {
			best = d
		}
	}
	return best, !math.IsInf(best, 1)
}

// screenProjection returns how far a world direction moves along the
// camera's screen right and up axes
func screenProjection(dir geometry.Vector3, view geometry.Mat4) geometry.Vector2 {
	return geometry.NewVector2(dir.Dot(view.Right()), dir.Dot(view.Up()))
}

// dragDirection returns the world direction a screen drag is projected on.
// For rings this is whichever in-plane basis vector is most visible on
// screen, since the rotation axis itself may point straight at the camera.
func (g *Gizmo) dragDirection(obj scene.Object, a Axis, view geometry.Mat4) geometry.Vector3 {
	if g.Mode != Rotate {
		return g.Direction(obj, a)
	}
	u, v := ringBasis(a)
	if screenProjection(v, view).Length() > screenProjection(u, view).Length() {
		return v
	}
	return u
}
