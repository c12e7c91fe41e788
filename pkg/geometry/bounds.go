package geometry

import "math"

// parallelEpsilon is the direction component below which a ray is treated
// as parallel to a slab.
const parallelEpsilon = 1e-8

// BoundingBox represents an axis-aligned bounding box
type BoundingBox struct {
	Min Vector3
	Max Vector3
}

// NewBoundingBox creates a new empty bounding box
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Min: Vector3{X: math.MaxFloat64, Y: math.MaxFloat64, Z: math.MaxFloat64},
		Max: Vector3{X: -math.MaxFloat64, Y: -math.MaxFloat64, Z: -math.MaxFloat64},
	}
}

// NewCube returns the box centered at center extending halfSize on every axis
func NewCube(center Vector3, halfSize float64) BoundingBox {
	h := Vector3{X: halfSize, Y: halfSize, Z: halfSize}
	return BoundingBox{Min: center.Sub(h), Max: center.Add(h)}
}

// Extend expands the bounding box to include a point
func (b *BoundingBox) Extend(point Vector3) {
	b.Min = b.Min.Min(point)
	b.Max = b.Max.Max(point)
}

// Empty reports whether nothing has been added to the box
func (b BoundingBox) Empty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Size returns the dimensions of the bounding box
func (b BoundingBox) Size() Vector3 {
	return b.Max.Sub(b.Min)
}

// Center returns the center point of the bounding box
func (b BoundingBox) Center() Vector3 {
	return Vector3{
		X: (b.Min.X + b.Max.X) / 2.0,
		Y: (b.Min.Y + b.Max.Y) / 2.0,
		Z: (b.Min.Z + b.Max.Z) / 2.0,
	}
}

// Diagonal returns the length of the bounding box diagonal
func (b BoundingBox) Diagonal() float64 {
	size := b.Size()
	return size.Length()
}

// Volume returns the volume of the bounding box
func (b BoundingBox) Volume() float64 {
	size := b.Size()
	return size.X * size.Y * size.Z
}

// IntersectRay tests the ray against the box with the slab method and
// returns the entry distance. A ray starting inside the box hits at its exit
// distance; a box entirely behind the origin is a miss.
func (b BoundingBox) IntersectRay(ray Ray) (float64, bool) {
	tmin := -math.MaxFloat64
	tmax := math.MaxFloat64

	for i := 0; i < 3; i++ {
		origin := ray.Origin.Component(i)
		dir := ray.Direction.Component(i)
		lo := b.Min.Component(i)
		hi := b.Max.Component(i)

		if math.Abs(dir) < parallelEpsilon {
			if origin < lo || origin > hi {
				return 0, false
			}
			continue
		}

		inv := 1.0 / dir
		t0 := (lo - origin) * inv
		t1 := (hi - origin) * inv
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t0 > tmin {
			tmin = t0
		}
		if t1 < tmax {
			tmax = t1
		}
		if tmax < tmin {
			return 0, false
		}
	}

	if tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}
