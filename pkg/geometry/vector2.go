package geometry

import "math"

// Vector2 is a point or offset in screen space (pixels, Y down)
type Vector2 struct {
	X, Y float64
}

// NewVector2 creates a new 2D vector
func NewVector2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns the sum of two vectors
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference between two vectors
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Dot returns the dot product of two vectors
func (v Vector2) Dot(other Vector2) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Length returns the magnitude of the vector
func (v Vector2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the distance between two points
func (v Vector2) Distance(other Vector2) float64 {
	return v.Sub(other).Length()
}

// minSegmentLength is the projected length below which a segment is
// considered degenerate (it collapsed to a point on screen).
const minSegmentLength = 1e-3

// DistanceToSegment returns the distance from v to the segment a-b.
// ok is false when the segment is degenerate.
func (v Vector2) DistanceToSegment(a, b Vector2) (dist float64, ok bool) {
	line := b.Sub(a)
	length := line.Length()
	if length < minSegmentLength {
		return 0, false
	}

	t := v.Sub(a).Dot(line) / (length * length)
	t = math.Max(0, math.Min(1, t))

	closest := Vector2{X: a.X + line.X*t, Y: a.Y + line.Y*t}
	return v.Distance(closest), true
}
