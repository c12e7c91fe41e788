// Package config loads the editor preferences from gocube.yaml.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/philipparndt/gocube/pkg/editor"
	"github.com/philipparndt/gocube/pkg/gizmo"
	"github.com/philipparndt/gocube/pkg/scene"
	"github.com/philipparndt/gocube/pkg/viewer"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file looked up when no path is given
const DefaultFile = "gocube.yaml"

// Config holds all editor preferences
type Config struct {
	Window  Window  `yaml:"window"`
	Camera  Camera  `yaml:"camera"`
	Gizmo   Gizmo   `yaml:"gizmo"`
	Editor  Editor  `yaml:"editor"`
	Preview Preview `yaml:"preview"`
}

// Window configures the interactive window
type Window struct {
	Width     int  `yaml:"width"`
	Height    int  `yaml:"height"`
	TargetFPS int  `yaml:"target_fps"`
	MSAA      bool `yaml:"msaa"`
}

// Camera configures the fly camera
type Camera struct {
	Sensitivity    float64 `yaml:"sensitivity"`
	Speed          float64 `yaml:"speed"`
	FastMultiplier float64 `yaml:"fast_multiplier"`
	ScrollStep     float64 `yaml:"scroll_step"`
	FOV            float64 `yaml:"fov"`
	Near           float64 `yaml:"near"`
	Far            float64 `yaml:"far"`
}

// Gizmo configures the transform handles
type Gizmo struct {
	Length               float64 `yaml:"length"`
	LineThreshold        float64 `yaml:"line_threshold"`
	RingThreshold        float64 `yaml:"ring_threshold"`
	RingSamples          int     `yaml:"ring_samples"`
	TranslateSensitivity float64 `yaml:"translate_sensitivity"`
	RotateSensitivity    float64 `yaml:"rotate_sensitivity"`
	ScaleSensitivity     float64 `yaml:"scale_sensitivity"`
}

// Editor configures history and scene behaviour
type Editor struct {
	HistoryLimit  int     `yaml:"history_limit"`
	SpawnDistance float64 `yaml:"spawn_distance"`
	AutoReload    bool    `yaml:"auto_reload"`
}

// Preview configures headless rendering
type Preview struct {
	Width       int  `yaml:"width"`
	Height      int  `yaml:"height"`
	Supersample int  `yaml:"supersample"`
	Grid        bool `yaml:"grid"`
}

// Flags holds CLI flag values that override the file
type Flags struct {
	Width  int
	Height int
}

// Default returns the built-in preferences
func Default() Config {
	cam := viewer.DefaultCameraSettings()
	g := gizmo.DefaultSettings()
	p := viewer.DefaultPreviewOptions()
	e := editor.DefaultOptions()

	return Config{
		Window: Window{Width: 1280, Height: 720, TargetFPS: 60, MSAA: true},
		Camera: Camera{
			Sensitivity:    cam.Sensitivity,
			Speed:          cam.Speed,
			FastMultiplier: cam.FastMultiplier,
			ScrollStep:     cam.ScrollStep,
			FOV:            cam.FOV,
			Near:           cam.Near,
			Far:            cam.Far,
		},
		Gizmo: Gizmo{
			Length:               g.Length,
			LineThreshold:        g.LineThreshold,
			RingThreshold:        g.RingThreshold,
			RingSamples:          g.RingSamples,
			TranslateSensitivity: g.TranslateSensitivity,
			RotateSensitivity:    g.RotateSensitivity,
			ScaleSensitivity:     g.ScaleSensitivity,
		},
		Editor: Editor{
			HistoryLimit:  e.HistoryLimit,
			SpawnDistance: e.SpawnDistance,
			AutoReload:    true,
		},
		Preview: Preview{
			Width:       p.Width,
			Height:      p.Height,
			Supersample: p.Supersample,
			Grid:        p.Grid,
		},
	}
}

// Load reads a YAML file over the defaults. A missing file yields the
// defaults; fields absent from the file keep their default value.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the preferences as YAML
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// Resolve applies CLI overrides and replaces invalid values with defaults
func (c *Config) Resolve(flags Flags) {
	if flags.Width > 0 {
		c.Window.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Window.Height = flags.Height
	}

	d := Default()
	positiveInt(&c.Window.Width, d.Window.Width)
	positiveInt(&c.Window.Height, d.Window.Height)
	positiveInt(&c.Window.TargetFPS, d.Window.TargetFPS)

	positive(&c.Camera.Sensitivity, d.Camera.Sensitivity)
	positive(&c.Camera.Speed, d.Camera.Speed)
	positive(&c.Camera.FastMultiplier, d.Camera.FastMultiplier)
	positive(&c.Camera.ScrollStep, d.Camera.ScrollStep)
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		c.Camera.FOV = d.Camera.FOV
	}
	positive(&c.Camera.Near, d.Camera.Near)
	if c.Camera.Far <= c.Camera.Near {
		c.Camera.Near, c.Camera.Far = d.Camera.Near, d.Camera.Far
	}

	positive(&c.Gizmo.Length, d.Gizmo.Length)
	positive(&c.Gizmo.LineThreshold, d.Gizmo.LineThreshold)
	positive(&c.Gizmo.RingThreshold, d.Gizmo.RingThreshold)
	if c.Gizmo.RingSamples < 3 {
		c.Gizmo.RingSamples = d.Gizmo.RingSamples
	}
	positive(&c.Gizmo.TranslateSensitivity, d.Gizmo.TranslateSensitivity)
	positive(&c.Gizmo.RotateSensitivity, d.Gizmo.RotateSensitivity)
	positive(&c.Gizmo.ScaleSensitivity, d.Gizmo.ScaleSensitivity)

	positiveInt(&c.Editor.HistoryLimit, d.Editor.HistoryLimit)
	positive(&c.Editor.SpawnDistance, d.Editor.SpawnDistance)

	positiveInt(&c.Preview.Width, d.Preview.Width)
	positiveInt(&c.Preview.Height, d.Preview.Height)
	positiveInt(&c.Preview.Supersample, d.Preview.Supersample)
}

func positive(v *float64, def float64) {
	if *v <= 0 {
		*v = def
	}
}

func positiveInt(v *int, def int) {
	if *v <= 0 {
		*v = def
	}
}

// EditorOptions converts the preferences for editor.New
func (c Config) EditorOptions() editor.Options {
	opts := editor.DefaultOptions()
	opts.Camera = viewer.CameraSettings{
		Sensitivity:    c.Camera.Sensitivity,
		Speed:          c.Camera.Speed,
		FastMultiplier: c.Camera.FastMultiplier,
		ScrollStep:     c.Camera.ScrollStep,
		FOV:            c.Camera.FOV,
		Near:           c.Camera.Near,
		Far:            c.Camera.Far,
	}
	opts.Gizmo = gizmo.Settings{
		Length:               c.Gizmo.Length,
		LineThreshold:        c.Gizmo.LineThreshold,
		RingThreshold:        c.Gizmo.RingThreshold,
		RingSamples:          c.Gizmo.RingSamples,
		TranslateSensitivity: c.Gizmo.TranslateSensitivity,
		RotateSensitivity:    c.Gizmo.RotateSensitivity,
		ScaleSensitivity:     c.Gizmo.ScaleSensitivity,
		MinScale:             scene.MinScale,
	}
	opts.HistoryLimit = c.Editor.HistoryLimit
	opts.SpawnDistance = c.Editor.SpawnDistance
	return opts
}

// PreviewOptions converts the preferences for viewer.RenderPreview
func (c Config) PreviewOptions() viewer.PreviewOptions {
	opts := viewer.DefaultPreviewOptions()
	opts.Width = c.Preview.Width
	opts.Height = c.Preview.Height
	opts.Supersample = c.Preview.Supersample
	opts.Grid = c.Preview.Grid
	return opts
}
