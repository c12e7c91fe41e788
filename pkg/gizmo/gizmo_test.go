package gizmo

import (
	"math/rand"
	"testing"

	"github.com/philipparndt/gocube/pkg/geometry"
	"github.com/philipparndt/gocube/pkg/scene"
	"github.com/philipparndt/gocube/pkg/viewer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testViewport = viewer.Viewport{Width: 800, Height: 600}

// frontView is the default editor camera: (0, 1.2, 4) looking down -Z
func frontView() (geometry.Mat4, geometry.Mat4) {
	c := viewer.NewCamera()
	return c.View(), c.Projection(testViewport.Aspect())
}

// topView looks straight down at the origin from 10 units above; screen up
// is world -Z
func topView() (geometry.Mat4, geometry.Mat4) {
	c := viewer.NewCamera()
	view := geometry.LookFrom(geometry.NewVector3(0, 10, 0), geometry.NewVector3(0, -1, 0), geometry.NewVector3(0, 1, 0))
	return view, c.Projection(testViewport.Aspect())
}

type harness struct {
	t     *testing.T
	scene *scene.Scene
	gizmo *Gizmo
	view  geometry.Mat4
	proj  geometry.Mat4
}

func newHarness(t *testing.T, mode TransformMode, view, proj geometry.Mat4) *harness {
	sc := scene.New()
	sc.AddCube(geometry.Vector3{})
	require.True(t, sc.Select(0))

	g := New(DefaultSettings())
	require.True(t, g.SetMode(mode))
	return &harness{t: t, scene: sc, gizmo: g, view: view, proj: proj}
}

func (h *harness) screen(p geometry.Vector3) geometry.Vector2 {
	s, ok := viewer.WorldToScreen(p, h.view, h.proj, testViewport)
	require.True(h.t, ok, "%v must be visible", p)
	return s
}

func (h *harness) frame(cursor geometry.Vector2, down, pressed bool) Event {
	return h.gizmo.Update(h.scene, Input{
		Cursor:         cursor,
		PrimaryDown:    down,
		PrimaryPressed: pressed,
		View:           h.view,
		Proj:           h.proj,
		Viewport:       testViewport,
	})
}

// press grabs the handle at world point p and returns its screen position
func (h *harness) press(p geometry.Vector3) geometry.Vector2 {
	at := h.screen(p)
	require.Equal(h.t, EventStarted, h.frame(at, true, true))
	return at
}

func (h *harness) cube() *scene.Object {
	return h.scene.Object(0)
}

func TestEnums(t *testing.T) {
	assert.Equal(t, "translate", Translate.String())
	assert.Equal(t, "rotate", Rotate.String())
	assert.Equal(t, "scale", Scale.String())
	assert.False(t, TransformMode(3).Valid())

	assert.Equal(t, Axis(-1), AxisNone)
	assert.Equal(t, 0, AxisX.Index())
	assert.Equal(t, "Z", AxisZ.String())
	assert.False(t, AxisNone.Valid())
	assert.True(t, AxisNone.Unit().IsZero())
	assert.Equal(t, geometry.NewVector3(0, 1, 0), AxisY.Unit())
}

func TestHoverTranslateLines(t *testing.T) {
	view, proj := frontView()
	h := newHarness(t, Translate, view, proj)

	tests := []struct {
		name   string
		point  geometry.Vector3
		offset geometry.Vector2
		axis   Axis
	}{
		{"x handle", geometry.NewVector3(0.75, 0, 0), geometry.Vector2{}, AxisX},
		{"x handle near miss", geometry.NewVector3(0.75, 0, 0), geometry.NewVector2(0, 10), AxisX},
		{"y handle", geometry.NewVector3(0, 1.2, 0), geometry.Vector2{}, AxisY},
		{"z handle", geometry.NewVector3(0, 0, 1), geometry.Vector2{}, AxisZ},
		{"empty space", geometry.NewVector3(1, 1, 0), geometry.Vector2{}, AxisNone},
		{"x handle too far", geometry.NewVector3(0.75, 0, 0), geometry.NewVector2(0, 20), AxisNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cursor := h.screen(tt.point).Add(tt.offset)
			axis, _ := h.gizmo.Hover(*h.cube(), Input{Cursor: cursor, View: view, Proj: proj, Viewport: testViewport})
			assert.Equal(t, tt.axis, axis)
		})
	}
}

func TestHoverRotateRings(t *testing.T) {
	view, proj := topView()
	h := newHarness(t, Rotate, view, proj)
	in := Input{View: view, Proj: proj, Viewport: testViewport}

	// a point on the horizontal ring away from where the other rings project
	in.Cursor = h.screen(geometry.NewVector3(1.5*0.7071, 0, 1.5*0.7071))
	axis, dist := h.gizmo.Hover(*h.cube(), in)
	assert.Equal(t, AxisY, axis)
	assert.Less(t, dist, 20.0)

	// the X ring is seen edge-on as a vertical line through the centre
	in.Cursor = h.screen(geometry.NewVector3(0, 0, -1.5))
	in.Cursor.X += 3
	axis, _ = h.gizmo.Hover(*h.cube(), in)
	assert.Contains(t, []Axis{AxisX, AxisY}, axis)

	// inside the horizontal ring, clear of the two edge-on rings
	in.Cursor = h.screen(geometry.NewVector3(0.5, 0, 0.5))
	axis, _ = h.gizmo.Hover(*h.cube(), in)
	assert.Equal(t, AxisNone, axis)
}

func TestHoverBehindCamera(t *testing.T) {
	view, proj := frontView()
	h := newHarness(t, Translate, view, proj)
	h.cube().Position = geometry.NewVector3(0, 0, 10)

	axis, _ := h.gizmo.Hover(*h.cube(), Input{Cursor: testViewport.Center(), View: view, Proj: proj, Viewport: testViewport})
	assert.Equal(t, AxisNone, axis)
}

func TestTranslateDragAlongX(t *testing.T) {
	view, proj := frontView()
	h := newHarness(t, Translate, view, proj)

	start := h.press(geometry.NewVector3(0.75, 0, 0))
	assert.True(t, h.gizmo.Dragging())
	assert.Equal(t, AxisX, h.gizmo.ActiveAxis())
	assert.Equal(t, AxisNone, h.gizmo.HoveredAxis())
	assert.Equal(t, geometry.Vector3{}, h.cube().Position, "drag start must not move the cube")

	assert.Equal(t, EventDragged, h.frame(start.Add(geometry.NewVector2(50, 0)), true, false))
	assert.InDelta(t, 0.5, h.cube().Position.X, 1e-9)

	// the delta is measured from the drag start, not accumulated per frame
	assert.Equal(t, EventDragged, h.frame(start.Add(geometry.NewVector2(100, 0)), true, false))
	assert.InDelta(t, 100*0.01, h.cube().Position.X, 1e-9)
	assert.Equal(t, 0.0, h.cube().Position.Y)
	assert.Equal(t, 0.0, h.cube().Position.Z)

	assert.Equal(t, EventEnded, h.frame(start.Add(geometry.NewVector2(300, 80)), false, false))
	assert.False(t, h.gizmo.Dragging())
	assert.Equal(t, AxisNone, h.gizmo.ActiveAxis())
	assert.InDelta(t, 1.0, h.cube().Position.X, 1e-9)
}

func TestTranslateDragVerticalScreenMovement(t *testing.T) {
	view, proj := frontView()
	h := newHarness(t, Translate, view, proj)

	start := h.press(geometry.NewVector3(0, 1.2, 0))
	require.Equal(t, AxisY, h.gizmo.ActiveAxis())

	// moving the cursor up the screen raises the cube
	h.frame(start.Add(geometry.NewVector2(0, -40)), true, false)
	assert.InDelta(t, 40*0.01, h.cube().Position.Y, 1e-9)
	assert.Equal(t, 0.0, h.cube().Position.X)
}

func TestLocalSpaceTranslate(t *testing.T) {
	view, proj := topView()
	h := newHarness(t, Translate, view, proj)
	h.cube().Rotation = geometry.NewVector3(0, 90, 0)
	require.True(t, h.gizmo.ToggleLocalSpace())

	// local X of a cube turned 90 degrees about Y points along world -Z
	start := h.press(geometry.NewVector3(0, 0, -0.75))
	require.Equal(t, AxisX, h.gizmo.ActiveAxis())

	h.frame(start.Add(geometry.NewVector2(0, -100)), true, false)
	pos := h.cube().Position
	assert.InDelta(t, 0, pos.X, 1e-9)
	assert.InDelta(t, 0, pos.Y, 1e-9)
	assert.InDelta(t, -1, pos.Z, 1e-9)
}

func TestScaleUsesLocalAxes(t *testing.T) {
	view, proj := topView()
	h := newHarness(t, Scale, view, proj)
	h.cube().Rotation = geometry.NewVector3(0, 90, 0)
	require.False(t, h.gizmo.LocalSpace)

	// local X of a cube turned 90 degrees about Y points along world -Z,
	// with or without the local space toggle
	x := h.gizmo.Lines(*h.cube())[0]
	assert.InDelta(t, 0, x.End.X, 1e-9)
	assert.InDelta(t, 0, x.End.Y, 1e-9)
	assert.InDelta(t, -1.5, x.End.Z, 1e-9)

	start := h.press(geometry.NewVector3(0, 0, -0.75))
	require.Equal(t, AxisX, h.gizmo.ActiveAxis())

	// screen up is world -Z, the direction of the local X handle
	h.frame(start.Add(geometry.NewVector2(0, -100)), true, false)
	s := h.cube().Scale
	assert.InDelta(t, 1.5, s.X, 1e-9)
	assert.Equal(t, 1.0, s.Y)
	assert.Equal(t, 1.0, s.Z)
	assert.Equal(t, geometry.Vector3{}, h.cube().Position)
}

func TestRotateRingsIgnoreLocalSpace(t *testing.T) {
	view, proj := topView()
	h := newHarness(t, Rotate, view, proj)
	require.True(t, h.gizmo.ToggleLocalSpace())

	unrotated := *h.cube()
	h.cube().Rotation = geometry.NewVector3(30, 45, 0)
	rotated := *h.cube()

	assert.Equal(t, h.gizmo.Rings(unrotated), h.gizmo.Rings(rotated))
	for _, a := range Axes {
		assert.Equal(t, a.Unit(), h.gizmo.Direction(rotated, a))
	}

	in := Input{View: view, Proj: proj, Viewport: testViewport}
	cursors := []geometry.Vector3{
		geometry.NewVector3(1.5*0.7071, 0, 1.5*0.7071),
		geometry.NewVector3(-1.5, 0, 0),
		geometry.NewVector3(0, 0, -1.5),
		geometry.NewVector3(0.5, 0, 0.5),
	}
	for _, p := range cursors {
		in.Cursor = h.screen(p)
		want, wantDist := h.gizmo.Hover(unrotated, in)
		got, gotDist := h.gizmo.Hover(rotated, in)
		assert.Equal(t, want, got, "hover at %v", p)
		assert.InDelta(t, wantDist, gotDist, 1e-9)
	}

	// the horizontal world ring still answers on a rotated cube
	in.Cursor = h.screen(geometry.NewVector3(1.5*0.7071, 0, 1.5*0.7071))
	axis, _ := h.gizmo.Hover(rotated, in)
	assert.Equal(t, AxisY, axis)
}

func TestRotateDragWraps(t *testing.T) {
	view, proj := topView()
	h := newHarness(t, Rotate, view, proj)

	start := h.press(geometry.NewVector3(1.5*0.7071, 0, 1.5*0.7071))
	require.Equal(t, AxisY, h.gizmo.ActiveAxis())

	h.frame(start.Add(geometry.NewVector2(100, 0)), true, false)
	assert.InDelta(t, 50, h.cube().Rotation.Y, 1e-9)

	h.frame(start.Add(geometry.NewVector2(-100, 0)), true, false)
	assert.InDelta(t, 310, h.cube().Rotation.Y, 1e-9)

	h.frame(start.Add(geometry.NewVector2(-2000, 0)), true, false)
	assert.GreaterOrEqual(t, h.cube().Rotation.Y, 0.0)
	assert.Less(t, h.cube().Rotation.Y, 360.0)
	assert.Equal(t, 0.0, h.cube().Rotation.X)
	assert.Equal(t, 0.0, h.cube().Rotation.Z)
}

func TestScaleDragClampsAtFloor(t *testing.T) {
	view, proj := frontView()
	h := newHarness(t, Scale, view, proj)

	start := h.press(geometry.NewVector3(0.75, 0, 0))
	require.Equal(t, AxisX, h.gizmo.ActiveAxis())

	h.frame(start.Add(geometry.NewVector2(100, 0)), true, false)
	assert.InDelta(t, 1.5, h.cube().Scale.X, 1e-9)

	// raw value 1 - 300*0.005 = -0.5
	h.frame(start.Add(geometry.NewVector2(-300, 0)), true, false)
	assert.Equal(t, scene.ScaleFloor, h.cube().Scale.X)
	assert.Greater(t, h.cube().Scale.X, scene.MinScale)
	assert.InDelta(t, 0.01, h.cube().Scale.X, 1e-12)

	// raw value just below the floor
	h.frame(start.Add(geometry.NewVector2(-199, 0)), true, false)
	assert.Equal(t, scene.ScaleFloor, h.cube().Scale.X)

	// far past the floor
	h.frame(start.Add(geometry.NewVector2(-5000, 0)), true, false)
	assert.Greater(t, h.cube().Scale.X, scene.MinScale)

	assert.Equal(t, 1.0, h.cube().Scale.Y)
	assert.Equal(t, 1.0, h.cube().Scale.Z)
}

func TestScaleNeverBelowFloor(t *testing.T) {
	view, proj := frontView()
	h := newHarness(t, Scale, view, proj)
	rng := rand.New(rand.NewSource(3))

	handles := []geometry.Vector3{
		geometry.NewVector3(0.75, 0, 0),
		geometry.NewVector3(0, 0.75, 0),
		geometry.NewVector3(0, 0, 0.75),
	}

	for drag := 0; drag < 200; drag++ {
		start := h.press(handles[rng.Intn(len(handles))])
		for step := 0; step < 10; step++ {
			offset := geometry.NewVector2((rng.Float64()-0.5)*10000, (rng.Float64()-0.5)*10000)
			h.frame(start.Add(offset), true, false)

			s := h.cube().Scale
			require.Greater(t, s.X, scene.MinScale)
			require.Greater(t, s.Y, scene.MinScale)
			require.Greater(t, s.Z, scene.MinScale)
		}
		require.Equal(t, EventEnded, h.frame(start, false, false))
	}
}

func TestPressAwayFromHandlesDoesNotStart(t *testing.T) {
	view, proj := frontView()
	h := newHarness(t, Translate, view, proj)

	assert.Equal(t, EventNone, h.frame(geometry.NewVector2(10, 10), true, true))
	assert.False(t, h.gizmo.Dragging())

	// hovering without pressing only updates the highlight
	assert.Equal(t, EventNone, h.frame(h.screen(geometry.NewVector3(0.75, 0, 0)), false, false))
	assert.Equal(t, AxisX, h.gizmo.HoveredAxis())
	assert.False(t, h.gizmo.Dragging())
}

func TestDeletedTargetResetsToIdle(t *testing.T) {
	view, proj := frontView()
	h := newHarness(t, Translate, view, proj)

	start := h.press(geometry.NewVector3(0.75, 0, 0))
	require.True(t, h.scene.Delete(0))

	assert.Equal(t, EventEnded, h.frame(start.Add(geometry.NewVector2(20, 0)), true, false))
	assert.False(t, h.gizmo.Dragging())
	assert.Equal(t, EventNone, h.frame(start, true, false))
}

func TestNoSelectionStaysIdle(t *testing.T) {
	view, proj := frontView()
	h := newHarness(t, Translate, view, proj)
	h.scene.ClearSelection()

	at := h.screen(geometry.NewVector3(0.75, 0, 0))
	assert.Equal(t, EventNone, h.frame(at, true, true))
	assert.Equal(t, AxisNone, h.gizmo.HoveredAxis())
}

func TestModeLockedDuringDrag(t *testing.T) {
	view, proj := frontView()
	h := newHarness(t, Translate, view, proj)
	h.press(geometry.NewVector3(0.75, 0, 0))

	assert.False(t, h.gizmo.SetMode(Scale))
	assert.False(t, h.gizmo.ToggleLocalSpace())
	assert.Equal(t, Translate, h.gizmo.Mode)
}
