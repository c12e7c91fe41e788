package viewer

import (
	"github.com/philipparndt/gocube/pkg/geometry"
)

// Fallback viewport size used before the window reports a real size
const (
	fallbackWidth  = 800
	fallbackHeight = 600
)

// Viewport is the framebuffer size in pixels
type Viewport struct {
	Width  float64
	Height float64
}

// Sanitized returns the viewport, substituting the fallback size when either
// dimension is not positive
func (v Viewport) Sanitized() Viewport {
	if v.Width <= 0 || v.Height <= 0 {
		return Viewport{Width: fallbackWidth, Height: fallbackHeight}
	}
	return v
}

// Aspect returns width / height of the sanitized viewport
func (v Viewport) Aspect() float64 {
	s := v.Sanitized()
	return s.Width / s.Height
}

// Center returns the middle of the viewport in pixels
func (v Viewport) Center() geometry.Vector2 {
	s := v.Sanitized()
	return geometry.NewVector2(s.Width/2, s.Height/2)
}

// projectPoint transforms p by the combined view-projection matrix and
// returns pixel coordinates plus NDC depth. ok is false behind the camera.
func projectPoint(p geometry.Vector3, viewProj geometry.Mat4, vp Viewport) (x, y, depth float64, ok bool) {
	clip := viewProj.MulVec4(geometry.Vector4{X: p.X, Y: p.Y, Z: p.Z, W: 1})
	if clip.W <= 0 {
		return 0, 0, 0, false
	}

	ndcX := clip.X / clip.W
	ndcY := clip.Y / clip.W
	ndcZ := clip.Z / clip.W

	vp = vp.Sanitized()
	x = (ndcX + 1) * 0.5 * vp.Width
	y = (1 - ndcY) * 0.5 * vp.Height
	return x, y, ndcZ, true
}

// WorldToScreen projects a world point to pixel coordinates (Y down).
// ok is false when the point is behind the camera.
func WorldToScreen(p geometry.Vector3, view, proj geometry.Mat4, vp Viewport) (geometry.Vector2, bool) {
	x, y, _, ok := projectPoint(p, proj.Mul(view), vp)
	if !ok {
		return geometry.Vector2{}, false
	}
	return geometry.NewVector2(x, y), true
}

// ScreenToWorldRay returns the world-space ray through a pixel. The view
// matrix must come from geometry.LookFrom: the camera basis and position are
// read back from it rather than inverting the matrix.
func ScreenToWorldRay(screen geometry.Vector2, vp Viewport, view, proj geometry.Mat4) geometry.Ray {
	vp = vp.Sanitized()
	ndcX := 2*screen.X/vp.Width - 1
	ndcY := 1 - 2*screen.Y/vp.Height

	tanHalfFovy := 1 / proj[5]
	aspect := proj[5] / proj[0]

	dir := view.Right().Mul(ndcX * aspect * tanHalfFovy).
		Add(view.Up().Mul(ndcY * tanHalfFovy)).
		Sub(view.Back())

	return geometry.Ray{
		Origin:    view.CameraPosition(),
		Direction: dir.NormalizeOr(view.Back().Mul(-1)),
	}
}
