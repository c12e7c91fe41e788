// Package gizmo implements the screen-space transform manipulator: handle
// hit-testing, the drag lifecycle and the mapping of a 2D drag to a 1D
// change of position, rotation or scale.
package gizmo

import (
	"math"

	"github.com/philipparndt/gocube/pkg/geometry"
	"github.com/philipparndt/gocube/pkg/scene"
	"github.com/philipparndt/gocube/pkg/viewer"
)

// Settings holds the gizmo geometry and drag sensitivities
type Settings struct {
	Length               float64 // handle length and ring radius in world units
	LineThreshold        float64 // pixels
	RingThreshold        float64 // pixels
	RingSamples          int
	TranslateSensitivity float64 // units per pixel
	RotateSensitivity    float64 // degrees per pixel
	ScaleSensitivity     float64 // scale per pixel
	MinScale             float64 // scale components stay strictly above this
}

// DefaultSettings returns the built-in gizmo settings
func DefaultSettings() Settings {
	return Settings{
		Length:               1.5,
		LineThreshold:        15,
		RingThreshold:        20,
		RingSamples:          48,
		TranslateSensitivity: 0.01,
		RotateSensitivity:    0.5,
		ScaleSensitivity:     0.005,
		MinScale:             scene.MinScale,
	}
}

// Input is the per-frame data the gizmo needs
type Input struct {
	Cursor         geometry.Vector2
	PrimaryDown    bool
	PrimaryPressed bool // went down this frame
	View           geometry.Mat4
	Proj           geometry.Mat4
	Viewport       viewer.Viewport
}

// Gizmo is the drag state machine. It is idle until a handle of the primary
// selected object is pressed, drags while the button stays down and returns
// to idle on release.
type Gizmo struct {
	Settings   Settings
	Mode       TransformMode
	LocalSpace bool

	active      bool
	axis        Axis
	hovered     Axis
	target      int
	startCursor geometry.Vector2
	startValue  geometry.Vector3
}

// New creates an idle gizmo in translate mode
func New(s Settings) *Gizmo {
	return &Gizmo{
		Settings: s,
		Mode:     Translate,
		axis:     AxisNone,
		hovered:  AxisNone,
		target:   -1,
	}
}

// Dragging reports whether a drag is in progress
func (g *Gizmo) Dragging() bool {
	return g.active
}

// ActiveAxis returns the axis being dragged or AxisNone
func (g *Gizmo) ActiveAxis() Axis {
	return g.axis
}

// HoveredAxis returns the handle under the cursor while idle
func (g *Gizmo) HoveredAxis() Axis {
	return g.hovered
}

// SetMode switches the transform mode. It is ignored during a drag.
func (g *Gizmo) SetMode(m TransformMode) bool {
	if g.active || !m.Valid() {
		return false
	}
	g.Mode = m
	return true
}

// ToggleLocalSpace flips between local and world translate axes. It is
// ignored during a drag.
func (g *Gizmo) ToggleLocalSpace() bool {
	if g.active {
		return false
	}
	g.LocalSpace = !g.LocalSpace
	return true
}

// Reset drops any drag and hover state
func (g *Gizmo) Reset() {
	g.active = false
	g.axis = AxisNone
	g.hovered = AxisNone
	g.target = -1
}

// End finishes the current drag. The edited object keeps its value.
func (g *Gizmo) End() {
	g.active = false
	g.axis = AxisNone
	g.target = -1
}

// Update advances the state machine for one frame against the primary
// selection of sc. EventStarted marks the moment to record an undo
// snapshot; the object is not modified in that frame.
func (g *Gizmo) Update(sc *scene.Scene, in Input) Event {
	index := sc.Primary()
	obj := sc.Object(index)

	if obj == nil || (g.active && index != g.target) {
		wasActive := g.active
		g.Reset()
		if wasActive {
			return EventEnded
		}
		return EventNone
	}

	if g.active {
		if !in.PrimaryDown {
			g.End()
			return EventEnded
		}
		g.apply(obj, in)
		return EventDragged
	}

	axis, _ := g.Hover(*obj, in)
	g.hovered = axis
	if !in.PrimaryPressed || !axis.Valid() {
		return EventNone
	}

	g.begin(index, *obj, axis, in.Cursor)
	return EventStarted
}

func (g *Gizmo) begin(index int, obj scene.Object, axis Axis, cursor geometry.Vector2) {
	g.active = true
	g.axis = axis
	g.hovered = AxisNone
	g.target = index
	g.startCursor = cursor

	switch g.Mode {
	case Translate:
		g.startValue = obj.Position
	case Rotate:
		g.startValue = obj.Rotation
	case Scale:
		g.startValue = obj.Scale
	}
}

// DragDelta converts the total screen movement since the drag started into
// a signed amount along the drag direction, in pixels
func (g *Gizmo) DragDelta(obj scene.Object, cursor geometry.Vector2, view geometry.Mat4) float64 {
	if !g.active {
		return 0
	}
	dx := cursor.X - g.startCursor.X
	dy := -(cursor.Y - g.startCursor.Y) // screen Y grows downwards

	p := screenProjection(g.dragDirection(obj, g.axis, view), view)
	return dx*p.X + dy*p.Y
}

func (g *Gizmo) apply(obj *scene.Object, in Input) {
	delta := g.DragDelta(*obj, in.Cursor, in.View)
	i := g.axis.Index()

	switch g.Mode {
	case Translate:
		if g.LocalSpace {
			dir := g.Direction(*obj, g.axis)
			obj.Position = g.startValue.Add(dir.Mul(delta * g.Settings.TranslateSensitivity))
		} else {
			obj.Position = g.startValue.WithComponent(i, g.startValue.Component(i)+delta*g.Settings.TranslateSensitivity)
		}
	case Rotate:
		angle := geometry.WrapDegrees(g.startValue.Component(i) + delta*g.Settings.RotateSensitivity)
		obj.Rotation = obj.Rotation.WithComponent(i, angle)
	case Scale:
		value := g.startValue.Component(i) + delta*g.Settings.ScaleSensitivity
		if value <= g.Settings.MinScale {
			value = math.Nextafter(g.Settings.MinScale, math.Inf(1))
		}
		obj.Scale = obj.Scale.WithComponent(i, value)
	}
}
