package stl

import (
	"github.com/philipparndt/gocube/pkg/geometry"
	"github.com/philipparndt/gocube/pkg/scene"
)

// TrianglesPerCube is the number of facets a cube exports to
const TrianglesPerCube = 12

// Model is a triangle soup as stored in an STL file
type Model struct {
	Name      string
	Triangles []geometry.Triangle
}

// NewModel creates an empty model
func NewModel(name string) *Model {
	return &Model{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0),
	}
}

// FromObjects tessellates every object into its twelve transformed facets
func FromObjects(name string, objects []scene.Object) *Model {
	m := NewModel(name)
	m.Triangles = make([]geometry.Triangle, 0, len(objects)*TrianglesPerCube)
	for _, obj := range objects {
		m.Triangles = append(m.Triangles, geometry.CubeTriangles(obj.ModelMatrix())...)
	}
	return m
}

// AddTriangle appends a facet
func (m *Model) AddTriangle(triangle geometry.Triangle) {
	m.Triangles = append(m.Triangles, triangle)
}

// TriangleCount returns the number of facets
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// BoundingBox returns the box around all vertices
func (m *Model) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, t := range m.Triangles {
		bbox.Extend(t.V1)
		bbox.Extend(t.V2)
		bbox.Extend(t.V3)
	}
	return bbox
}

// SurfaceArea sums the facet areas
func (m *Model) SurfaceArea() float64 {
	total := 0.0
	for _, t := range m.Triangles {
		total += t.Area()
	}
	return total
}
