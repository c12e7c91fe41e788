package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gocube/pkg/editor"
	"github.com/philipparndt/gocube/pkg/geometry"
	"github.com/philipparndt/gocube/pkg/viewer"
)

// keyBindings maps editor keys to raylib key codes; any of them counts
var keyBindings = map[editor.Key][]int32{
	editor.KeyW:      {rl.KeyW},
	editor.KeyA:      {rl.KeyA},
	editor.KeyS:      {rl.KeyS},
	editor.KeyD:      {rl.KeyD},
	editor.KeyQ:      {rl.KeyQ},
	editor.KeyE:      {rl.KeyE},
	editor.KeyShift:  {rl.KeyLeftShift, rl.KeyRightShift},
	editor.KeyCtrl:   {rl.KeyLeftControl, rl.KeyRightControl, rl.KeyLeftSuper, rl.KeyRightSuper},
	editor.KeyOne:    {rl.KeyOne, rl.KeyKp1},
	editor.KeyTwo:    {rl.KeyTwo, rl.KeyKp2},
	editor.KeyThree:  {rl.KeyThree, rl.KeyKp3},
	editor.KeyL:      {rl.KeyL},
	editor.KeyF:      {rl.KeyF},
	editor.KeyC:      {rl.KeyC},
	editor.KeyV:      {rl.KeyV},
	editor.KeyZ:      {rl.KeyZ},
	editor.KeyN:      {rl.KeyN},
	editor.KeyDelete: {rl.KeyDelete, rl.KeyBackspace},
	editor.KeyInsert: {rl.KeyInsert},
	editor.KeyHome:   {rl.KeyHome},
}

// pollInput samples raylib into the editor's frame input
func (app *App) pollInput() editor.FrameInput {
	var held, pressed editor.KeySet
	for key, codes := range keyBindings {
		for _, code := range codes {
			if rl.IsKeyDown(code) {
				held = held.With(key)
			}
			if rl.IsKeyPressed(code) {
				pressed = pressed.With(key)
			}
		}
	}

	mouse := rl.GetMousePosition()
	return editor.FrameInput{
		Cursor:         geometry.Vector2{X: float64(mouse.X), Y: float64(mouse.Y)},
		PrimaryDown:    rl.IsMouseButtonDown(rl.MouseButtonLeft),
		PrimaryPressed: rl.IsMouseButtonPressed(rl.MouseButtonLeft),
		LookDown:       rl.IsMouseButtonDown(rl.MouseButtonRight),
		Scroll:         float64(rl.GetMouseWheelMove()),
		Viewport: viewer.Viewport{
			Width:  float64(rl.GetScreenWidth()),
			Height: float64(rl.GetScreenHeight()),
		},
		Held:    held,
		Pressed: pressed,
	}
}

// handleViewKeys processes keys that only affect the window
func (app *App) handleViewKeys() {
	if app.Editor.Gizmo.Dragging() {
		return
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		app.Editor.Scene.ClearSelection()
	}
	if rl.IsKeyPressed(rl.KeyG) {
		app.View.showGrid = !app.View.showGrid
	}
	if rl.IsKeyPressed(rl.KeyH) || rl.IsKeyPressed(rl.KeyF1) {
		app.View.showHelp = !app.View.showHelp
	}
	if rl.IsKeyPressed(rl.KeyI) {
		app.View.showStats = !app.View.showStats
	}
}
