package geometry

import "math"

// DegToRad converts degrees to radians
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// EulerRotation returns the rotation for Euler angles given in degrees.
// The angles are applied Z first, then Y, then X (M = Rx·Ry·Rz), so column i
// of the result is the object's local axis i in world space.
func EulerRotation(degrees Vector3) Mat4 {
	cx, sx := math.Cos(DegToRad(degrees.X)), math.Sin(DegToRad(degrees.X))
	cy, sy := math.Cos(DegToRad(degrees.Y)), math.Sin(DegToRad(degrees.Y))
	cz, sz := math.Cos(DegToRad(degrees.Z)), math.Sin(DegToRad(degrees.Z))

	m := Identity()
	// row 0
	m[0], m[4], m[8] = cy*cz, -cy*sz, sy
	// row 1
	m[1], m[5], m[9] = sx*sy*cz+cx*sz, -sx*sy*sz+cx*cz, -sx*cy
	// row 2
	m[2], m[6], m[10] = -cx*sy*cz+sx*sz, cx*sy*sz+sx*cz, cx*cy
	return m
}

// LocalAxis returns local axis i (0..2) of an object rotated by the given
// Euler angles
func LocalAxis(degrees Vector3, i int) Vector3 {
	m := EulerRotation(degrees)
	return Vector3{X: m[i*4], Y: m[i*4+1], Z: m[i*4+2]}
}

// ModelMatrix composes scale, then rotation, then translation
func ModelMatrix(position, rotationDegrees, scale Vector3) Mat4 {
	return Translate(position).Mul(EulerRotation(rotationDegrees)).Mul(Scale(scale))
}

// WrapDegrees maps an angle into [0, 360)
func WrapDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg = 0
	}
	return deg
}
