package editor

import (
	"hash/fnv"
	"image/color"

	"github.com/philipparndt/gocube/pkg/geometry"
	"github.com/philipparndt/gocube/pkg/gizmo"
	"github.com/philipparndt/gocube/pkg/scene"
	"github.com/philipparndt/gocube/pkg/viewer"
)

// ObjectState is one cube as the renderer sees it
type ObjectState struct {
	Index    int
	Model    geometry.Mat4
	Selected bool
	Primary  bool
	Color    color.RGBA
}

// GizmoState describes the handles to draw around the primary selection
type GizmoState struct {
	Visible    bool
	Mode       gizmo.TransformMode
	LocalSpace bool
	Active     gizmo.Axis
	Hovered    gizmo.Axis
	Lines      [3]gizmo.Line
	Rings      [3]gizmo.Ring
}

// RenderState is everything needed to draw one frame
type RenderState struct {
	View     geometry.Mat4
	Proj     geometry.Mat4
	Viewport viewer.Viewport
	Objects  []ObjectState
	Gizmo    GizmoState
}

var (
	defaultColor = color.RGBA{R: 180, G: 180, B: 190, A: 255}
	palette      = []color.RGBA{
		{R: 220, G: 90, B: 80, A: 255},
		{R: 90, G: 170, B: 90, A: 255},
		{R: 80, G: 130, B: 210, A: 255},
		{R: 220, G: 170, B: 70, A: 255},
		{R: 160, G: 100, B: 200, A: 255},
		{R: 70, G: 180, B: 180, A: 255},
	}
)

// MaterialColor maps a material reference to a stable display color
func MaterialColor(material string) color.RGBA {
	if material == "" {
		return defaultColor
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(material))
	return palette[h.Sum32()%uint32(len(palette))]
}

// RenderState captures the scene and gizmo as of the last Update
func (e *Editor) RenderState() RenderState {
	primary := e.Scene.Primary()
	objects := e.Scene.Objects()

	rs := RenderState{
		View:     e.view,
		Proj:     e.proj,
		Viewport: e.viewport,
		Objects:  make([]ObjectState, len(objects)),
	}
	for i, obj := range objects {
		rs.Objects[i] = ObjectState{
			Index:    i,
			Model:    obj.ModelMatrix(),
			Selected: obj.Selected,
			Primary:  i == primary,
			Color:    MaterialColor(obj.Material),
		}
	}

	if obj := e.Scene.Object(primary); obj != nil {
		rs.Gizmo = GizmoState{
			Visible:    true,
			Mode:       e.Gizmo.Mode,
			LocalSpace: e.Gizmo.LocalSpace,
			Active:     e.Gizmo.ActiveAxis(),
			Hovered:    e.Gizmo.HoveredAxis(),
			Lines:      e.Gizmo.Lines(*obj),
			Rings:      e.Gizmo.Rings(*obj),
		}
	}
	return rs
}

// PreviewMeshes converts the render state for the software preview
func (r RenderState) PreviewMeshes() []viewer.PreviewMesh {
	meshes := make([]viewer.PreviewMesh, len(r.Objects))
	for i, o := range r.Objects {
		meshes[i] = viewer.PreviewMesh{Model: o.Model, Color: o.Color, Outlined: o.Selected}
	}
	return meshes
}

// SceneMeshes builds preview meshes straight from a scene, for headless rendering
func SceneMeshes(s *scene.Scene) []viewer.PreviewMesh {
	objects := s.Objects()
	meshes := make([]viewer.PreviewMesh, len(objects))
	for i, obj := range objects {
		meshes[i] = viewer.PreviewMesh{Model: obj.ModelMatrix(), Color: MaterialColor(obj.Material)}
	}
	return meshes
}
