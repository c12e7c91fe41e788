// Package app runs the interactive raylib window on top of the editor.
package app

import (
	"fmt"
	"strings"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gocube/internal/config"
	"github.com/philipparndt/gocube/pkg/editor"
	"github.com/philipparndt/gocube/version"
)

// Options configures Run
type Options struct {
	ProjectPath string // file to open; created on first save when missing
	Config      config.Config
}

type App struct {
	Editor    *editor.Editor
	Config    config.Config
	View      ViewSettings
	Project   ProjectState
	FileWatch FileWatchState
	UI        UIState
}

// Run opens the window and blocks until it is closed
func Run(opts Options) error {
	app := &App{
		Editor: editor.New(opts.Config.EditorOptions()),
		Config: opts.Config,
		View: ViewSettings{
			showGrid: true,
			showHelp: true,
		},
		Project: ProjectState{path: opts.ProjectPath},
	}
	app.Editor.Logf = app.logf

	if err := app.openProject(); err != nil {
		return err
	}

	if opts.Config.Editor.AutoReload && app.Project.path != "" {
		if err := app.setupFileWatcher(); err != nil {
			fmt.Printf("Warning: Failed to set up file watching: %v\n", err)
			fmt.Println("Auto-reload will not be available")
		} else {
			defer app.FileWatch.fileWatcher.Close()
		}
	}

	flags := uint32(rl.FlagWindowResizable | rl.FlagWindowHighdpi)
	if opts.Config.Window.MSAA {
		flags |= rl.FlagMsaa4xHint
	}
	rl.SetConfigFlags(flags) // must be before InitWindow
	rl.InitWindow(int32(opts.Config.Window.Width), int32(opts.Config.Window.Height), app.windowTitle())
	rl.SetTargetFPS(int32(opts.Config.Window.TargetFPS))
	rl.SetExitKey(0) // Escape clears the selection instead

	for !rl.WindowShouldClose() {
		if app.FileWatch.needsReload.Swap(false) {
			app.reloadProject()
		}

		in := app.pollInput()
		res := app.Editor.Update(in, float64(rl.GetFrameTime()))
		app.handleResult(res)
		app.handleViewKeys()
		app.updateCursor()

		rs := app.Editor.RenderState()

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(15, 18, 25, 255))

		rl.BeginMode3D(app.raylibCamera())
		if app.View.showGrid {
			app.drawGrid()
		}
		app.drawCubes(rs)
		app.drawSelection(rs)
		app.drawGizmo(rs)
		rl.EndMode3D()

		app.drawUI(rs)
		rl.EndDrawing()
	}

	rl.CloseWindow()

	if app.Editor.Modified {
		fmt.Println("Warning: closing with unsaved changes")
	}
	return nil
}

func (app *App) windowTitle() string {
	name := "untitled"
	if app.Project.data != nil && app.Project.data.Name != "" {
		name = app.Project.data.Name
	}
	return fmt.Sprintf("GoCube %s - %s", version.GetVersion(), name)
}

// logf prints editor messages and mirrors the last one in the status line
func (app *App) logf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Print(msg)
	app.UI.status = strings.TrimSpace(msg)
	app.UI.statusTime = time.Now()
}

func (app *App) handleResult(res editor.Result) {
	if res.SaveRequested {
		if err := app.saveProject(); err != nil {
			app.logf("Error saving project: %v\n", err)
		}
	}
	if res.NewScene {
		rl.SetWindowTitle(app.windowTitle())
	}
}

// raylibCamera mirrors the editor camera for BeginMode3D. raylib builds the
// same look-at and perspective matrices the editor picks with.
func (app *App) raylibCamera() rl.Camera3D {
	cam := app.Editor.Camera
	return rl.Camera3D{
		Position:   toRL(cam.Position),
		Target:     toRL(cam.Position.Add(cam.Front)),
		Up:         toRL(cam.WorldUp),
		Fovy:       float32(cam.Settings.FOV),
		Projection: rl.CameraPerspective,
	}
}

// updateCursor captures the cursor while mouse look is active
func (app *App) updateCursor() {
	look := app.Editor.Camera.LookMode()
	if look == app.UI.lookMode {
		return
	}
	app.UI.lookMode = look
	if look {
		rl.DisableCursor()
	} else {
		rl.EnableCursor()
	}
}
