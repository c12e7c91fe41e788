package scene

import (
	"math"

	"github.com/philipparndt/gocube/pkg/geometry"
)

// MinScale is the bound every scale component stays strictly above
const MinScale = 0.01

// ScaleFloor is the value a scale component at or below MinScale is raised to
var ScaleFloor = math.Nextafter(MinScale, math.Inf(1))

// Object is one cube instance in the scene
type Object struct {
	Position geometry.Vector3
	Rotation geometry.Vector3 // Euler angles in degrees
	Scale    geometry.Vector3
	Selected bool
	Material string // opaque material reference
}

// NewObject creates a unit cube at position
func NewObject(position geometry.Vector3) Object {
	return Object{
		Position: position,
		Scale:    geometry.NewVector3(1, 1, 1),
	}
}

// PickBounds returns the box used for picking: centred on Position with a
// half size of half the largest scale component. It ignores rotation and
// non-uniform scale.
func (o Object) PickBounds() geometry.BoundingBox {
	return geometry.NewCube(o.Position, 0.5*o.Scale.MaxComponent())
}

// ModelMatrix returns translate × rotate × scale
func (o Object) ModelMatrix() geometry.Mat4 {
	return geometry.ModelMatrix(o.Position, o.Rotation, o.Scale)
}

// LocalAxis returns the object's rotated axis i in world space
func (o Object) LocalAxis(i int) geometry.Vector3 {
	return geometry.LocalAxis(o.Rotation, i)
}

// ClampScale raises every scale component at or below MinScale to ScaleFloor
func (o *Object) ClampScale() {
	for i := 0; i < 3; i++ {
		if o.Scale.Component(i) <= MinScale {
			o.Scale = o.Scale.WithComponent(i, ScaleFloor)
		}
	}
}

// Record is the flat transform record exchanged with persistence
type Record struct {
	Position geometry.Vector3 `yaml:"position"`
	Rotation geometry.Vector3 `yaml:"rotation"`
	Scale    geometry.Vector3 `yaml:"scale"`
	Material string           `yaml:"material,omitempty"`
}

// Record converts the object to its persistence record
func (o Object) Record() Record {
	return Record{
		Position: o.Position,
		Rotation: o.Rotation,
		Scale:    o.Scale,
		Material: o.Material,
	}
}

// Object converts a record back into an unselected object
func (r Record) Object() Object {
	o := Object{
		Position: r.Position,
		Rotation: r.Rotation,
		Scale:    r.Scale,
		Material: r.Material,
	}
	o.ClampScale()
	return o
}
