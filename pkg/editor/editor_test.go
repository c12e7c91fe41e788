package editor

import (
	"testing"

	"github.com/philipparndt/gocube/pkg/geometry"
	"github.com/philipparndt/gocube/pkg/gizmo"
	"github.com/philipparndt/gocube/pkg/viewer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-6

var testViewport = viewer.Viewport{Width: 800, Height: 600}

func newEditor(t *testing.T) *Editor {
	t.Helper()
	e := New(DefaultOptions())
	e.Logf = t.Logf
	return e
}

// screenOf projects p with the editor's current camera
func screenOf(t *testing.T, e *Editor, p geometry.Vector3) geometry.Vector2 {
	t.Helper()
	cam := e.Camera
	s, ok := viewer.WorldToScreen(p, cam.View(), cam.Projection(testViewport.Aspect()), testViewport)
	require.True(t, ok, "%v must be visible", p)
	return s
}

func idle(cursor geometry.Vector2) FrameInput {
	return FrameInput{Cursor: cursor, Viewport: testViewport}
}

func click(cursor geometry.Vector2) FrameInput {
	in := idle(cursor)
	in.PrimaryDown = true
	in.PrimaryPressed = true
	return in
}

func keys(held KeySet, pressed ...Key) FrameInput {
	in := idle(geometry.Vector2{X: 10, Y: 10})
	in.Held = held
	in.Pressed = Keys(pressed...)
	return in
}

func TestKeySet(t *testing.T) {
	s := Keys(KeyW, KeyCtrl)
	assert.True(t, s.Has(KeyW))
	assert.True(t, s.Has(KeyCtrl))
	assert.False(t, s.Has(KeyS))
	assert.False(t, s.Has(keyCount))
	assert.Equal(t, s, s.With(keyCount))
}

func TestClickSelectsCube(t *testing.T) {
	e := newEditor(t)
	e.Scene.AddCube(geometry.Vector3{})

	res := e.Update(click(screenOf(t, e, geometry.Vector3{})), 0.016)

	assert.Equal(t, gizmo.EventNone, res.Gizmo)
	assert.Equal(t, 0, res.Picked)
	assert.Equal(t, 0, e.Scene.Primary())
	assert.True(t, e.Scene.Object(0).Selected)
}

func TestClickScreenCenterAfterFacingCube(t *testing.T) {
	e := newEditor(t)
	e.Scene.AddCube(geometry.Vector3{})
	e.Camera.FaceTowards(geometry.Vector3{})

	res := e.Update(click(testViewport.Center()), 0.016)
	assert.Equal(t, 0, res.Picked)
	assert.Equal(t, 0, e.Scene.Primary())
}

func TestClickEmptySpace(t *testing.T) {
	e := newEditor(t)
	e.Scene.AddCube(geometry.Vector3{})
	require.True(t, e.Scene.Select(0))

	t.Run("ctrl keeps selection", func(t *testing.T) {
		in := click(geometry.Vector2{X: 10, Y: 10})
		in.Held = Keys(KeyCtrl)
		res := e.Update(in, 0.016)
		assert.Equal(t, -1, res.Picked)
		assert.Equal(t, 0, e.Scene.Primary())
	})

	t.Run("plain click clears", func(t *testing.T) {
		res := e.Update(click(geometry.Vector2{X: 10, Y: 10}), 0.016)
		assert.Equal(t, -1, res.Picked)
		assert.Equal(t, -1, e.Scene.Primary())
		assert.False(t, e.Scene.Object(0).Selected)
	})
}

func TestCtrlClickTogglesSelection(t *testing.T) {
	e := newEditor(t)
	left := geometry.NewVector3(-2, 0, 0)
	right := geometry.NewVector3(2, 0, 0)
	e.Scene.AddCube(left)
	e.Scene.AddCube(right)

	e.Update(click(screenOf(t, e, left)), 0.016)
	require.Equal(t, 0, e.Scene.Primary())

	multi := click(screenOf(t, e, right))
	multi.Held = Keys(KeyCtrl)
	res := e.Update(multi, 0.016)
	assert.Equal(t, 1, res.Picked)
	assert.Equal(t, []int{0, 1}, e.Scene.SelectedIndices())
	assert.Equal(t, 1, e.Scene.Primary())

	// release, then toggle the left cube off again
	e.Update(idle(multi.Cursor), 0.016)
	multi = click(screenOf(t, e, left))
	multi.Held = Keys(KeyCtrl)
	res = e.Update(multi, 0.016)
	assert.Equal(t, 0, res.Picked)
	assert.Equal(t, []int{1}, e.Scene.SelectedIndices())
	assert.Equal(t, 1, e.Scene.Primary())
}

func TestDragRecordsUndo(t *testing.T) {
	e := newEditor(t)
	e.Scene.AddCube(geometry.Vector3{})
	require.True(t, e.Scene.Select(0))

	start := screenOf(t, e, geometry.NewVector3(1, 0, 0))
	res := e.Update(click(start), 0.016)
	require.Equal(t, gizmo.EventStarted, res.Gizmo)
	assert.Equal(t, -1, res.Picked, "a gizmo press must not pick")
	assert.Equal(t, 1, e.History.Len())
	assert.InDelta(t, 0, e.Scene.Object(0).Position.X, tolerance)

	drag := idle(geometry.Vector2{X: start.X + 100, Y: start.Y})
	drag.PrimaryDown = true
	drag.Held = Keys(KeyW)
	res = e.Update(drag, 0.016)
	require.Equal(t, gizmo.EventDragged, res.Gizmo)
	assert.InDelta(t, 1.0, e.Scene.Object(0).Position.X, tolerance)
	assert.True(t, e.Modified)
	assert.Equal(t, geometry.NewVector3(0, 1.2, 4), e.Camera.Position, "camera is frozen while dragging")

	res = e.Update(idle(drag.Cursor), 0.016)
	assert.Equal(t, gizmo.EventEnded, res.Gizmo)

	e.Update(keys(Keys(KeyCtrl), KeyZ), 0.016)
	assert.InDelta(t, 0, e.Scene.Object(0).Position.X, tolerance)
	assert.Equal(t, 0, e.History.Len())
	assert.False(t, e.Undo(), "history is empty")
}

func TestModeHotkeys(t *testing.T) {
	e := newEditor(t)

	e.Update(keys(0, KeyTwo), 0.016)
	assert.Equal(t, gizmo.Rotate, e.Gizmo.Mode)
	e.Update(keys(0, KeyThree), 0.016)
	assert.Equal(t, gizmo.Scale, e.Gizmo.Mode)
	e.Update(keys(0, KeyOne), 0.016)
	assert.Equal(t, gizmo.Translate, e.Gizmo.Mode)

	e.Update(keys(0, KeyL), 0.016)
	assert.True(t, e.Gizmo.LocalSpace)
	e.Update(keys(0, KeyL), 0.016)
	assert.False(t, e.Gizmo.LocalSpace)
}

func TestAddAndDeleteHotkeys(t *testing.T) {
	e := newEditor(t)

	e.Update(keys(0, KeyInsert), 0.016)
	require.Equal(t, 1, e.Scene.Len())
	assert.Equal(t, 0, e.Scene.Primary())
	p := e.Scene.Object(0).Position
	assert.InDelta(t, 0, p.X, tolerance)
	assert.InDelta(t, 1.2, p.Y, tolerance)
	assert.InDelta(t, -1, p.Z, tolerance)

	e.Update(keys(0, KeyDelete), 0.016)
	assert.Equal(t, 0, e.Scene.Len())
	assert.Equal(t, -1, e.Scene.Primary())
	assert.Equal(t, 2, e.History.Len())

	// nothing selected: no snapshot
	e.Update(keys(0, KeyDelete), 0.016)
	assert.Equal(t, 2, e.History.Len())

	e.Update(keys(Keys(KeyCtrl), KeyZ), 0.016)
	assert.Equal(t, 1, e.Scene.Len())
	assert.Equal(t, 0, e.Scene.Primary())
}

func TestCopyPasteHotkeys(t *testing.T) {
	e := newEditor(t)
	e.Scene.AddCube(geometry.NewVector3(1, 2, 3))
	require.True(t, e.Scene.Select(0))

	ctrl := Keys(KeyCtrl)
	e.Update(keys(ctrl, KeyC), 0.016)
	assert.Equal(t, 1, e.Clipboard.Len())

	e.Update(keys(ctrl, KeyV), 0.016)
	require.Equal(t, 2, e.Scene.Len())
	assert.Equal(t, 1, e.Scene.Primary())
	assert.Equal(t, []int{1}, e.Scene.SelectedIndices())
	assert.InDelta(t, 2, e.Scene.Object(1).Position.X, tolerance)
	assert.Equal(t, 1, e.History.Len())

	res := e.Update(keys(ctrl, KeyN), 0.016)
	assert.True(t, res.NewScene)
	assert.Equal(t, 0, e.Scene.Len())
	assert.Equal(t, 0, e.History.Len())
	assert.False(t, e.Modified)
}

func TestSaveRequest(t *testing.T) {
	e := newEditor(t)
	res := e.Update(keys(Keys(KeyCtrl), KeyS), 0.016)
	assert.True(t, res.SaveRequested)

	res = e.Update(keys(0, KeyS), 0.016)
	assert.False(t, res.SaveRequested)
}

func TestCameraMovement(t *testing.T) {
	t.Run("dt is clamped", func(t *testing.T) {
		e := newEditor(t)
		in := idle(geometry.Vector2{})
		in.Held = Keys(KeyW)
		e.Update(in, 1)
		assert.InDelta(t, 4-3*0.033, e.Camera.Position.Z, tolerance)
	})

	t.Run("ctrl suppresses movement", func(t *testing.T) {
		e := newEditor(t)
		in := idle(geometry.Vector2{})
		in.Held = Keys(KeyW, KeyCtrl)
		e.Update(in, 0.016)
		assert.Equal(t, geometry.NewVector3(0, 1.2, 4), e.Camera.Position)
	})

	t.Run("look mode", func(t *testing.T) {
		e := newEditor(t)
		in := idle(geometry.Vector2{X: 100, Y: 100})
		in.LookDown = true
		e.Update(in, 0.016)
		assert.InDelta(t, -90, e.Camera.Yaw, tolerance, "first sample only arms the guard")

		in.Cursor.X = 200
		e.Update(in, 0.016)
		assert.InDelta(t, -90+100*0.08, e.Camera.Yaw, tolerance)
	})

	t.Run("look held through a gizmo drag", func(t *testing.T) {
		e := newEditor(t)
		e.Scene.AddCube(geometry.Vector3{})
		require.True(t, e.Scene.Select(0))
		start := screenOf(t, e, geometry.NewVector3(1, 0, 0))

		in := idle(start)
		in.LookDown = true
		e.Update(in, 0.016)

		in = click(start)
		in.LookDown = true
		require.Equal(t, gizmo.EventStarted, e.Update(in, 0.016).Gizmo)

		in.PrimaryPressed = false
		in.Cursor.X += 300
		require.Equal(t, gizmo.EventDragged, e.Update(in, 0.016).Gizmo)

		in.PrimaryDown = false
		require.Equal(t, gizmo.EventEnded, e.Update(in, 0.016).Gizmo)

		e.Update(in, 0.016)
		assert.InDelta(t, -90, e.Camera.Yaw, tolerance, "the drag distance must not turn the camera")

		in.Cursor.X += 10
		e.Update(in, 0.016)
		assert.InDelta(t, -90+10*0.08, e.Camera.Yaw, tolerance)
	})

	t.Run("focus and home", func(t *testing.T) {
		e := newEditor(t)
		e.Scene.AddCube(geometry.NewVector3(3, 0, 0))
		require.True(t, e.Scene.Select(0))

		e.Update(keys(0, KeyF), 0.016)
		want := geometry.NewVector3(3, 0, 0).Sub(e.Camera.Position).Normalize()
		assert.InDelta(t, 1, e.Camera.Front.Dot(want), tolerance)

		e.Update(keys(0, KeyHome), 0.016)
		assert.InDelta(t, -90, e.Camera.Yaw, tolerance)
	})
}

func TestSetMaterial(t *testing.T) {
	e := newEditor(t)
	e.Scene.AddCube(geometry.Vector3{})
	e.Scene.AddCube(geometry.NewVector3(2, 0, 0))

	assert.Equal(t, 0, e.SetMaterial("textures/brick.png"))
	assert.Equal(t, 0, e.History.Len())

	e.Scene.SelectAll([]int{0, 1})
	assert.Equal(t, 2, e.SetMaterial("textures/brick.png"))
	assert.Equal(t, "textures/brick.png", e.Scene.Object(1).Material)
	assert.Equal(t, 1, e.History.Len())
}

func TestRenderState(t *testing.T) {
	e := newEditor(t)
	e.Scene.AddCube(geometry.Vector3{})
	e.Scene.AddCube(geometry.NewVector3(2, 0, 0))

	rs := e.RenderState()
	assert.False(t, rs.Gizmo.Visible)
	require.Len(t, rs.Objects, 2)

	require.True(t, e.Scene.Select(1))
	e.Update(idle(geometry.Vector2{X: 10, Y: 10}), 0.016)
	rs = e.RenderState()

	assert.True(t, rs.Gizmo.Visible)
	assert.Equal(t, gizmo.Translate, rs.Gizmo.Mode)
	assert.Equal(t, gizmo.AxisNone, rs.Gizmo.Active)
	assert.Equal(t, geometry.NewVector3(2, 0, 0), rs.Gizmo.Lines[0].Start)
	assert.True(t, rs.Objects[1].Primary)
	assert.False(t, rs.Objects[0].Selected)
	assert.Equal(t, e.View(), rs.View)
	assert.Equal(t, testViewport, rs.Viewport)

	meshes := rs.PreviewMeshes()
	require.Len(t, meshes, 2)
	assert.True(t, meshes[1].Outlined)
	assert.Equal(t, rs.Objects[0].Model, meshes[0].Model)
	assert.Len(t, SceneMeshes(e.Scene), 2)
}

func TestMaterialColor(t *testing.T) {
	assert.Equal(t, defaultColor, MaterialColor(""))
	assert.Equal(t, MaterialColor("a.png"), MaterialColor("a.png"))
	assert.Contains(t, palette, MaterialColor("wood.png"))
}
