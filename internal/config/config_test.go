package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/philipparndt/gocube/pkg/editor"
	"github.com/philipparndt/gocube/pkg/viewer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDefaultsMatchPackages(t *testing.T) {
	cfg := Default()
	cfg.Resolve(Flags{})

	assert.Equal(t, editor.DefaultOptions(), cfg.EditorOptions())
	assert.Equal(t, viewer.DefaultPreviewOptions(), cfg.PreviewOptions())
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
camera:
  speed: 5
gizmo:
  length: 2
editor:
  auto_reload: false
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5.0, cfg.Camera.Speed)
	assert.Equal(t, 0.08, cfg.Camera.Sensitivity)
	assert.Equal(t, 2.0, cfg.Gizmo.Length)
	assert.Equal(t, 48, cfg.Gizmo.RingSamples)
	assert.False(t, cfg.Editor.AutoReload)
	assert.Equal(t, 1280, cfg.Window.Width)
}

func TestInvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "camera: [1, 2"))
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	path := writeConfig(t, `
window:
  width: 640
camera:
  fov: 200
  near: 10
  far: 5
gizmo:
  ring_samples: 2
  scale_sensitivity: -1
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	cfg.Resolve(Flags{Height: 480})
	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, 480, cfg.Window.Height)
	assert.Equal(t, 45.0, cfg.Camera.FOV)
	assert.Equal(t, 0.1, cfg.Camera.Near)
	assert.Equal(t, 100.0, cfg.Camera.Far)
	assert.Equal(t, 48, cfg.Gizmo.RingSamples)
	assert.Equal(t, 0.005, cfg.Gizmo.ScaleSensitivity)

	cfg.Resolve(Flags{Width: 1920})
	assert.Equal(t, 1920, cfg.Window.Width)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	cfg := Default()
	cfg.Camera.Speed = 7
	cfg.Preview.Grid = false

	require.NoError(t, Save(path, cfg))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
