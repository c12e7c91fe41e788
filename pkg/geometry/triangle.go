package geometry

// Triangle represents a triangular facet in 3D space
type Triangle struct {
	Normal     Vector3
	V1, V2, V3 Vector3
}

// NewTriangle creates a new triangle
func NewTriangle(normal, v1, v2, v3 Vector3) Triangle {
	return Triangle{
		Normal: normal,
		V1:     v1,
		V2:     v2,
		V3:     v3,
	}
}

// CalculateNormal computes the normal vector for the triangle
func (t Triangle) CalculateNormal() Vector3 {
	edge1 := t.V2.Sub(t.V1)
	edge2 := t.V3.Sub(t.V1)
	return edge1.Cross(edge2).Normalize()
}

// Area returns the surface area of the triangle
func (t Triangle) Area() float64 {
	edge1 := t.V2.Sub(t.V1)
	edge2 := t.V3.Sub(t.V1)
	cross := edge1.Cross(edge2)
	return cross.Length() / 2.0
}

// Center returns the centroid of the triangle
func (t Triangle) Center() Vector3 {
	return Vector3{
		X: (t.V1.X + t.V2.X + t.V3.X) / 3.0,
		Y: (t.V1.Y + t.V2.Y + t.V3.Y) / 3.0,
		Z: (t.V1.Z + t.V2.Z + t.V3.Z) / 3.0,
	}
}

// Transform applies m to every vertex and recomputes the normal
func (t Triangle) Transform(m Mat4) Triangle {
	out := Triangle{
		V1: m.TransformPoint(t.V1),
		V2: m.TransformPoint(t.V2),
		V3: m.TransformPoint(t.V3),
	}
	out.Normal = out.CalculateNormal()
	return out
}

// cubeFaces lists the unit cube faces as counter-clockwise quads seen from
// outside, indexing into cubeCorners.
var cubeFaces = [6][4]int{
	{1, 5, 7, 3}, // +X
	{4, 0, 2, 6}, // -X
	{2, 3, 7, 6}, // +Y
	{4, 5, 1, 0}, // -Y
	{0, 1, 3, 2}, // +Z
	{5, 4, 6, 7}, // -Z
}

// cubeCorners returns the eight corners of the cube of edge length 1 centred
// at the origin. Bit 0 of the index selects +X, bit 1 +Y, bit 2 -Z.
func cubeCorners() [8]Vector3 {
	var c [8]Vector3
	for i := range c {
		x, y, z := -0.5, -0.5, 0.5
		if i&1 != 0 {
			x = 0.5
		}
		if i&2 != 0 {
			y = 0.5
		}
		if i&4 != 0 {
			z = -0.5
		}
		c[i] = Vector3{X: x, Y: y, Z: z}
	}
	return c
}

// CubeTriangles returns the 12 outward-facing triangles of a unit cube
// transformed by the model matrix m
func CubeTriangles(m Mat4) []Triangle {
	corners := cubeCorners()
	tris := make([]Triangle, 0, 12)
	for _, f := range cubeFaces {
		a, b, c, d := corners[f[0]], corners[f[1]], corners[f[2]], corners[f[3]]
		tris = append(tris,
			Triangle{V1: a, V2: b, V3: c}.Transform(m),
			Triangle{V1: a, V2: c, V3: d}.Transform(m),
		)
	}
	return tris
}

// CubeEdges returns the 12 edges of a unit cube transformed by m
func CubeEdges(m Mat4) [][2]Vector3 {
	corners := cubeCorners()
	for i := range corners {
		corners[i] = m.TransformPoint(corners[i])
	}

	edges := make([][2]Vector3, 0, 12)
	for i := range corners {
		for bit := 1; bit < 8; bit <<= 1 {
			if i&bit == 0 {
				edges = append(edges, [2]Vector3{corners[i], corners[i|bit]})
			}
		}
	}
	return edges
}
