package geometry

import "math"

// Mat4 is a 4x4 matrix stored column-major: element (row r, column c) lives
// at index c*4+r, matching the OpenGL/raylib memory layout.
type Mat4 [16]float64

// Vector4 is a homogeneous coordinate
type Vector4 struct {
	X, Y, Z, W float64
}

// Identity returns the identity matrix
func Identity() Mat4 {
	var m Mat4
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
	return m
}

// Perspective builds a right-handed perspective projection with clip-space
// Z in [-1, 1] (OpenGL convention).
func Perspective(fovyRadians, aspect, near, far float64) Mat4 {
	f := 1.0 / math.Tan(fovyRadians/2.0)
	var m Mat4
	m[0] = f / aspect
	m[5] = f
	m[10] = (far + near) / (near - far)
	m[11] = -1
	m[14] = (2.0 * far * near) / (near - far)
	return m
}

// Translate returns a translation matrix
func Translate(v Vector3) Mat4 {
	m := Identity()
	m[12], m[13], m[14] = v.X, v.Y, v.Z
	return m
}

// Scale returns a scale matrix
func Scale(v Vector3) Mat4 {
	m := Identity()
	m[0], m[5], m[10] = v.X, v.Y, v.Z
	return m
}

// RotateX returns a rotation about the X axis (radians)
func RotateX(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	m := Identity()
	m[5], m[6] = c, s
	m[9], m[10] = -s, c
	return m
}

// RotateY returns a rotation about the Y axis (radians)
func RotateY(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	m := Identity()
	m[0], m[2] = c, -s
	m[8], m[10] = s, c
	return m
}

// RotateZ returns a rotation about the Z axis (radians)
func RotateZ(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	m := Identity()
	m[0], m[1] = c, s
	m[4], m[5] = -s, c
	return m
}

// At returns the element at row r, column c
func (m Mat4) At(r, c int) float64 {
	return m[c*4+r]
}

// Mul returns m·o: applying the result to a point is the same as applying
// o first, then m.
func (m Mat4) Mul(o Mat4) Mat4 {
	var r Mat4
	for c := 0; c < 4; c++ {
		for row := 0; row < 4; row++ {
			r[c*4+row] = m[0*4+row]*o[c*4+0] +
				m[1*4+row]*o[c*4+1] +
				m[2*4+row]*o[c*4+2] +
				m[3*4+row]*o[c*4+3]
		}
	}
	return r
}

// MulVec4 multiplies the matrix by a homogeneous vector
func (m Mat4) MulVec4(v Vector4) Vector4 {
	return Vector4{
		X: m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		Y: m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		Z: m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		W: m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}

// TransformPoint transforms a point (w=1) without perspective divide
func (m Mat4) TransformPoint(v Vector3) Vector3 {
	r := m.MulVec4(Vector4{X: v.X, Y: v.Y, Z: v.Z, W: 1})
	return Vector3{X: r.X, Y: r.Y, Z: r.Z}
}

// TransformDirection transforms a direction (w=0)
func (m Mat4) TransformDirection(v Vector3) Vector3 {
	r := m.MulVec4(Vector4{X: v.X, Y: v.Y, Z: v.Z, W: 0})
	return Vector3{X: r.X, Y: r.Y, Z: r.Z}
}

// LookFrom builds a view matrix for a camera at pos looking along front.
// The rotation rows are the camera basis (right, up, back) and the result is
// rotation × translation(-pos). The accessors Right, Up, Back and
// CameraPosition read this exact layout back.
func LookFrom(pos, front, worldUp Vector3) Mat4 {
	zaxis := front.Mul(-1).NormalizeOr(Vector3{Z: 1})

	xaxis := worldUp.Cross(zaxis).Normalize()
	if xaxis.IsZero() {
		// Looking straight along worldUp: any right vector perpendicular to it will do
		xaxis = Vector3{X: 1}
	}

	yaxis := zaxis.Cross(xaxis)

	rotation := Identity()
	rotation[0], rotation[4], rotation[8] = xaxis.X, xaxis.Y, xaxis.Z
	rotation[1], rotation[5], rotation[9] = yaxis.X, yaxis.Y, yaxis.Z
	rotation[2], rotation[6], rotation[10] = zaxis.X, zaxis.Y, zaxis.Z

	return rotation.Mul(Translate(pos.Mul(-1)))
}

// Right returns the camera right vector of a view matrix built by LookFrom
func (m Mat4) Right() Vector3 {
	return Vector3{X: m[0], Y: m[4], Z: m[8]}
}

// Up returns the camera up vector of a view matrix built by LookFrom
func (m Mat4) Up() Vector3 {
	return Vector3{X: m[1], Y: m[5], Z: m[9]}
}

// Back returns the camera back vector (opposite of the viewing direction)
// of a view matrix built by LookFrom
func (m Mat4) Back() Vector3 {
	return Vector3{X: m[2], Y: m[6], Z: m[10]}
}

// Translation returns the translation column of the matrix
func (m Mat4) Translation() Vector3 {
	return Vector3{X: m[12], Y: m[13], Z: m[14]}
}

// CameraPosition recovers the world position of the camera from a view
// matrix built by LookFrom. Valid only while the upper 3x3 block is
// orthonormal, which LookFrom guarantees.
func (m Mat4) CameraPosition() Vector3 {
	t := m.Translation()
	return m.Right().Mul(t.X).
		Add(m.Up().Mul(t.Y)).
		Add(m.Back().Mul(t.Z)).
		Mul(-1)
}

// Float32 converts the matrix for GPU upload
func (m Mat4) Float32() [16]float32 {
	var out [16]float32
	for i, v := range m {
		out[i] = float32(v)
	}
	return out
}
