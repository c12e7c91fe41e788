package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/philipparndt/gocube/pkg/project"
	"github.com/philipparndt/gocube/pkg/watcher"
)

// ownSaveWindow suppresses the reload triggered by our own save
const ownSaveWindow = time.Second

// openProject loads the project file if it exists. A missing file starts an
// empty scene that is written on the first save.
func (app *App) openProject() error {
	path := app.Project.path
	if path == "" {
		app.Project.data = project.New("untitled")
		return nil
	}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		fmt.Printf("New project: %s\n", path)
		app.Project.data = project.New(projectName(path))
		return nil
	}

	data, err := project.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load project: %w", err)
	}
	app.applyProject(data)
	fmt.Printf("Project loaded: %s (%d cubes)\n", path, len(data.Cubes))
	return nil
}

func (app *App) applyProject(data *project.Data) {
	app.Project.data = data
	app.Editor.Load(data.Cubes)
}

// saveProject writes the scene back to the project file
func (app *App) saveProject() error {
	if app.Project.path == "" {
		app.Project.path = project.FileName("untitled")
	}

	data := project.FromScene(app.Project.data.Name, app.Editor.Scene)
	data.ImportedFiles = app.Project.data.ImportedFiles

	app.Project.lastSave = time.Now()
	if err := project.Save(app.Project.path, data); err != nil {
		return err
	}

	app.Project.data = data
	app.Editor.Modified = false
	app.logf("Project saved: %s\n", app.Project.path)
	return nil
}

// reloadProject re-reads the project after an external change
func (app *App) reloadProject() {
	if time.Since(app.Project.lastSave) < ownSaveWindow {
		return
	}
	if app.Editor.Modified {
		app.logf("Project changed on disk; keeping unsaved changes\n")
		return
	}

	data, err := project.Load(app.Project.path)
	if err != nil {
		app.logf("Error reloading project: %v\n", err)
		return
	}
	app.applyProject(data)
	app.logf("Project reloaded: %d cubes\n", len(data.Cubes))
}

// setupFileWatcher flags a reload whenever the project file changes
func (app *App) setupFileWatcher() error {
	fw, err := watcher.NewFileWatcher(500 * time.Millisecond)
	if err != nil {
		return err
	}
	fw.OnError = func(err error) {
		fmt.Printf("Watcher error: %v\n", err)
	}

	// the file may not exist yet; watching its directory is enough
	if err := fw.Watch([]string{app.Project.path}, func(string) {
		app.FileWatch.needsReload.Store(true)
	}); err != nil {
		fw.Close()
		return err
	}

	fw.Start()
	app.FileWatch.fileWatcher = fw
	app.FileWatch.enabled = true
	fmt.Printf("Watching for changes: %s\n", app.Project.path)
	return nil
}

// projectName derives a display name from a file path
func projectName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
