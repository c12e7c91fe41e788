package geometry

import "math"

// Circle is a ring in 3D spanned by two orthonormal basis vectors
type Circle struct {
	Center Vector3
	U, V   Vector3
	Radius float64
}

// Point returns the point on the circle at angle theta (radians)
func (c Circle) Point(theta float64) Vector3 {
	return c.Center.
		Add(c.U.Mul(math.Cos(theta) * c.Radius)).
		Add(c.V.Mul(math.Sin(theta) * c.Radius))
}

// Samples returns n evenly spaced points around the circle, starting at
// angle zero. n below 3 yields no points.
func (c Circle) Samples(n int) []Vector3 {
	if n < 3 {
		return nil
	}
	points := make([]Vector3, n)
	for i := range points {
		points[i] = c.Point(2 * math.Pi * float64(i) / float64(n))
	}
	return points
}

// Normal returns the unit normal of the circle's plane
func (c Circle) Normal() Vector3 {
	return c.U.Cross(c.V).Normalize()
}
