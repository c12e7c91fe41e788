package geometry

// Ray is a half-line starting at Origin. Direction is normally unit length.
type Ray struct {
	Origin    Vector3
	Direction Vector3
}

// NewRay creates a ray with a normalized direction
func NewRay(origin, direction Vector3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// At returns the point at distance t along the ray
func (r Ray) At(t float64) Vector3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// IntersectPlane returns the distance at which the ray crosses the plane
// through point with the given normal. ok is false when the ray is parallel
// to the plane or the plane lies behind the origin.
func (r Ray) IntersectPlane(point, normal Vector3) (float64, bool) {
	denom := r.Direction.Dot(normal)
	if denom > -parallelEpsilon && denom < parallelEpsilon {
		return 0, false
	}
	t := point.Sub(r.Origin).Dot(normal) / denom
	if t < 0 {
		return 0, false
	}
	return t, true
}
