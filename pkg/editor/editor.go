// Package editor runs the per-frame update of the cube editor: camera
// navigation, gizmo drags, picking, selection hotkeys and undo.
package editor

import (
	"github.com/philipparndt/gocube/pkg/geometry"
	"github.com/philipparndt/gocube/pkg/gizmo"
	"github.com/philipparndt/gocube/pkg/scene"
	"github.com/philipparndt/gocube/pkg/viewer"
)

// Options configures a new editor
type Options struct {
	Camera        viewer.CameraSettings
	Gizmo         gizmo.Settings
	HistoryLimit  int
	MaxDeltaTime  float64 // seconds; larger frame times are clamped
	SpawnDistance float64 // distance in front of the camera for new cubes
}

// DefaultOptions returns the built-in editor options
func DefaultOptions() Options {
	return Options{
		Camera:        viewer.DefaultCameraSettings(),
		Gizmo:         gizmo.DefaultSettings(),
		HistoryLimit:  scene.DefaultHistoryLimit,
		MaxDeltaTime:  0.033,
		SpawnDistance: 5,
	}
}

// Result summarizes what happened during one Update
type Result struct {
	Gizmo         gizmo.Event
	Picked        int // index hit by a click, -1 otherwise
	SaveRequested bool
	NewScene      bool
}

// Editor owns the session state. All methods must be called from the frame
// loop goroutine.
type Editor struct {
	Camera    *viewer.Camera
	Scene     *scene.Scene
	Gizmo     *gizmo.Gizmo
	History   *scene.History
	Clipboard scene.Clipboard

	// Logf receives user-facing status messages; nil disables them
	Logf func(format string, args ...any)

	// Modified is set by every scene change and cleared by the caller after saving
	Modified bool

	opts     Options
	viewport viewer.Viewport
	view     geometry.Mat4
	proj     geometry.Mat4
}

// New creates an editor with an empty scene
func New(opts Options) *Editor {
	e := &Editor{
		Camera:  viewer.NewCameraWithSettings(opts.Camera),
		Scene:   scene.New(),
		Gizmo:   gizmo.New(opts.Gizmo),
		History: scene.NewHistory(opts.HistoryLimit),
		opts:    opts,
	}
	e.updateMatrices(viewer.Viewport{})
	return e
}

func (e *Editor) logf(format string, args ...any) {
	if e.Logf != nil {
		e.Logf(format, args...)
	}
}

func (e *Editor) updateMatrices(vp viewer.Viewport) {
	e.viewport = vp.Sanitized()
	e.view = e.Camera.View()
	e.proj = e.Camera.Projection(e.viewport.Aspect())
}

// Update runs one frame: camera, then gizmo, then picking, then hotkeys
func (e *Editor) Update(in FrameInput, dt float64) Result {
	res := Result{Picked: -1}

	if dt > e.opts.MaxDeltaTime {
		dt = e.opts.MaxDeltaTime
	}
	if dt < 0 {
		dt = 0
	}

	if e.Gizmo.Dragging() {
		// the cursor moves with the drag; do not turn it into a look delta later
		e.Camera.ResetLookSample()
	} else {
		e.updateCamera(in, dt)
	}
	e.updateMatrices(in.Viewport)

	res.Gizmo = e.Gizmo.Update(e.Scene, gizmo.Input{
		Cursor:         in.Cursor,
		PrimaryDown:    in.PrimaryDown,
		PrimaryPressed: in.PrimaryPressed,
		View:           e.view,
		Proj:           e.proj,
		Viewport:       e.viewport,
	})

	switch res.Gizmo {
	case gizmo.EventStarted:
		e.pushUndo()
		e.logf("Gizmo drag started: %s %s\n", e.Gizmo.Mode, e.Gizmo.ActiveAxis())
	case gizmo.EventDragged:
		e.Modified = true
	case gizmo.EventEnded:
		e.logf("Gizmo drag finished\n")
	case gizmo.EventNone:
		if in.PrimaryPressed {
			res.Picked = e.Pick(in.Cursor, in.Held.Has(KeyCtrl))
		}
	}

	e.handleHotkeys(in, &res)
	return res
}

func (e *Editor) updateCamera(in FrameInput, dt float64) {
	e.Camera.SetLookMode(in.LookDown)
	e.Camera.Look(in.Cursor.X, in.Cursor.Y)
	e.Camera.UpdateDirection()

	// Ctrl turns the letter keys into shortcuts
	if !in.Held.Has(KeyCtrl) {
		e.Camera.UpdatePosition(in.movement(), dt)
	}
	e.Camera.Scroll(in.Scroll)
}

// Pick casts a ray through the cursor and updates the selection. With
// multi set the hit object is toggled; a miss without multi clears the
// selection. It returns the hit index or -1.
func (e *Editor) Pick(cursor geometry.Vector2, multi bool) int {
	ray := viewer.ScreenToWorldRay(cursor, e.viewport, e.view, e.proj)
	index, _, ok := e.Scene.Raycast(ray)
	if !ok {
		if !multi {
			e.Scene.ClearSelection()
		}
		return -1
	}

	if multi {
		e.Scene.Toggle(index)
		if e.Scene.IsSelected(index) {
			e.logf("Cube added to selection: %d\n", index)
		} else {
			e.logf("Cube removed from selection: %d\n", index)
		}
	} else {
		e.Scene.Select(index)
		p := e.Scene.Object(index).Position
		e.logf("Cube selected: %d at (%.2f, %.2f, %.2f)\n", index, p.X, p.Y, p.Z)
	}
	return index
}

func (e *Editor) handleHotkeys(in FrameInput, res *Result) {
	pressed := in.Pressed
	if pressed == 0 || e.Gizmo.Dragging() {
		return
	}

	if in.Held.Has(KeyCtrl) {
		switch {
		case pressed.Has(KeyC):
			e.Copy()
		case pressed.Has(KeyV):
			e.Paste()
		case pressed.Has(KeyZ):
			e.Undo()
		case pressed.Has(KeyN):
			e.NewScene()
			res.NewScene = true
		case pressed.Has(KeyS):
			res.SaveRequested = true
		}
		return
	}

	switch {
	case pressed.Has(KeyOne):
		e.setMode(gizmo.Translate)
	case pressed.Has(KeyTwo):
		e.setMode(gizmo.Rotate)
	case pressed.Has(KeyThree):
		e.setMode(gizmo.Scale)
	case pressed.Has(KeyL):
		if e.Gizmo.ToggleLocalSpace() {
			e.logf("Local space: %v\n", e.Gizmo.LocalSpace)
		}
	case pressed.Has(KeyDelete):
		e.DeleteSelected()
	case pressed.Has(KeyInsert):
		e.AddCube()
	case pressed.Has(KeyF):
		e.FocusSelection()
	case pressed.Has(KeyHome):
		e.Camera.Reset()
	}
}

func (e *Editor) setMode(m gizmo.TransformMode) {
	if e.Gizmo.SetMode(m) {
		e.logf("Transform mode: %s\n", m)
	}
}

// pushUndo records the current scene on the undo history
func (e *Editor) pushUndo() {
	snap, err := e.Scene.Snapshot()
	if err != nil {
		e.logf("Failed to record undo state: %v\n", err)
		return
	}
	e.History.Push(snap)
}

// AddCube adds a unit cube in front of the camera, selects it and returns
// its index
func (e *Editor) AddCube() int {
	e.pushUndo()
	pos := e.Camera.Position.Add(e.Camera.Front.Normalize().Mul(e.opts.SpawnDistance))
	index := e.Scene.AddCube(pos)
	e.Scene.Select(index)
	e.Modified = true
	e.logf("Cube added: %d at (%.2f, %.2f, %.2f)\n", index, pos.X, pos.Y, pos.Z)
	return index
}

// DeleteSelected removes the selected cubes and returns how many were removed
func (e *Editor) DeleteSelected() int {
	if e.Scene.Primary() < 0 {
		return 0
	}
	e.pushUndo()
	n := e.Scene.DeleteSelected()
	e.Modified = true
	e.logf("Cubes deleted: %d\n", n)
	return n
}

// Copy puts the selected cubes on the clipboard
func (e *Editor) Copy() int {
	n, err := e.Clipboard.Copy(e.Scene)
	if err != nil {
		e.logf("Copy failed: %v\n", err)
		return 0
	}
	if n > 0 {
		e.logf("Cubes copied: %d\n", n)
	}
	return n
}

// Paste inserts the clipboard cubes and selects them
func (e *Editor) Paste() []int {
	if e.Clipboard.Len() == 0 {
		return nil
	}
	e.pushUndo()
	indices := e.Clipboard.Paste(e.Scene)
	e.Modified = true
	e.logf("Cubes pasted: %d\n", len(indices))
	return indices
}

// Undo restores the most recent snapshot. It reports whether there was one.
func (e *Editor) Undo() bool {
	snap, ok := e.History.Pop()
	if !ok {
		return false
	}
	if err := e.Scene.Restore(snap); err != nil {
		e.logf("Undo failed: %v\n", err)
		return false
	}
	e.Gizmo.Reset()
	e.Modified = true
	e.logf("Undo: scene restored\n")
	return true
}

// NewScene clears the scene and the undo history
func (e *Editor) NewScene() {
	e.Scene.Clear()
	e.History.Clear()
	e.Gizmo.Reset()
	e.Modified = false
	e.logf("New scene\n")
}

// Load replaces the scene with records, as when opening a project
func (e *Editor) Load(records []scene.Record) {
	e.Scene.Load(records)
	e.History.Clear()
	e.Gizmo.Reset()
	e.Modified = false
}

// SetMaterial assigns a material reference to every selected cube
func (e *Editor) SetMaterial(material string) int {
	indices := e.Scene.SelectedIndices()
	if len(indices) == 0 {
		return 0
	}
	e.pushUndo()
	for _, i := range indices {
		e.Scene.Object(i).Material = material
	}
	e.Modified = true
	return len(indices)
}

// FocusSelection turns the camera towards the primary selected cube
func (e *Editor) FocusSelection() bool {
	obj := e.Scene.Object(e.Scene.Primary())
	if obj == nil {
		return false
	}
	e.Camera.FaceTowards(obj.Position)
	return true
}

// View returns the view matrix of the last update
func (e *Editor) View() geometry.Mat4 {
	return e.view
}

// Projection returns the projection matrix of the last update
func (e *Editor) Projection() geometry.Mat4 {
	return e.proj
}

// Viewport returns the viewport of the last update
func (e *Editor) Viewport() viewer.Viewport {
	return e.viewport
}
