package app

import (
	"sync/atomic"
	"time"

	"github.com/philipparndt/gocube/pkg/project"
	"github.com/philipparndt/gocube/pkg/watcher"
)

// ViewSettings holds display toggles
type ViewSettings struct {
	showGrid  bool
	showHelp  bool
	showStats bool
}

// ProjectState tracks the file backing the scene
type ProjectState struct {
	path     string
	data     *project.Data // last loaded or saved content, for name and imported files
	lastSave time.Time
}

// FileWatchState holds auto-reload state. needsReload is set from the
// watcher goroutine and consumed by the frame loop.
type FileWatchState struct {
	enabled     bool
	fileWatcher *watcher.FileWatcher
	needsReload atomic.Bool
}

// UIState holds the transient status line
type UIState struct {
	status     string
	statusTime time.Time
	lookMode   bool // cursor currently captured for mouse look
}
