package viewer

import (
	"math"
	"math/rand"
	"testing"

	"github.com/philipparndt/gocube/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMatrices(c *Camera, vp Viewport) (geometry.Mat4, geometry.Mat4) {
	return c.View(), c.Projection(vp.Aspect())
}

func TestViewportSanitized(t *testing.T) {
	assert.Equal(t, Viewport{Width: 800, Height: 600}, Viewport{}.Sanitized())
	assert.Equal(t, Viewport{Width: 800, Height: 600}, Viewport{Width: 1024, Height: -1}.Sanitized())
	assert.Equal(t, Viewport{Width: 1024, Height: 768}, Viewport{Width: 1024, Height: 768}.Sanitized())
	assert.InDelta(t, 4.0/3.0, Viewport{}.Aspect(), 1e-12)
}

func TestWorldToScreenCenter(t *testing.T) {
	c := NewCamera()
	vp := Viewport{Width: 1280, Height: 720}
	view, proj := testMatrices(c, vp)

	// a point straight ahead lands in the middle of the screen
	p, ok := WorldToScreen(c.Position.Add(c.Front.Mul(5)), view, proj, vp)
	require.True(t, ok)
	assert.InDelta(t, 640, p.X, 1e-6)
	assert.InDelta(t, 360, p.Y, 1e-6)

	// up in the world is up on screen (smaller Y)
	above, ok := WorldToScreen(c.Position.Add(c.Front.Mul(5)).Add(geometry.NewVector3(0, 1, 0)), view, proj, vp)
	require.True(t, ok)
	assert.Less(t, above.Y, p.Y)
}

func TestWorldToScreenBehindCamera(t *testing.T) {
	c := NewCamera()
	vp := Viewport{Width: 800, Height: 600}
	view, proj := testMatrices(c, vp)

	_, ok := WorldToScreen(c.Position.Sub(c.Front.Mul(2)), view, proj, vp)
	assert.False(t, ok)

	// exactly on the camera plane has clip w == 0
	_, ok = WorldToScreen(c.Position.Add(c.Right()), view, proj, vp)
	assert.False(t, ok)
}

func TestScreenToWorldRayCenter(t *testing.T) {
	c := NewCamera()
	vp := Viewport{Width: 800, Height: 600}
	view, proj := testMatrices(c, vp)

	ray := ScreenToWorldRay(vp.Center(), vp, view, proj)
	assertVectorNear(t, c.Position, ray.Origin, 1e-9)
	assertVectorNear(t, c.Front, ray.Direction, 1e-9)
}

func TestProjectionRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	vp := Viewport{Width: 1280, Height: 720}

	for i := 0; i < 200; i++ {
		c := NewCamera()
		c.Position = geometry.NewVector3(rng.Float64()*10-5, rng.Float64()*4, rng.Float64()*10-5)
		c.TargetYaw = rng.Float64()*360 - 180
		c.TargetPitch = rng.Float64()*120 - 60
		c.UpdateDirection()
		view, proj := testMatrices(c, vp)

		// random point inside the frustum
		depth := 1 + rng.Float64()*30
		half := math.Tan(geometry.DegToRad(c.Settings.FOV)/2) * depth * 0.9
		p := c.Position.
			Add(c.Front.Mul(depth)).
			Add(c.Right().Mul((rng.Float64()*2 - 1) * half * vp.Aspect())).
			Add(c.Up().Mul((rng.Float64()*2 - 1) * half))

		screen, ok := WorldToScreen(p, view, proj, vp)
		require.True(t, ok, "point %v must be visible", p)

		ray := ScreenToWorldRay(screen, vp, view, proj)
		require.InDelta(t, 1.0, ray.Direction.Length(), 1e-9)

		// intersect with the plane through p facing the camera
		dist, ok := ray.IntersectPlane(p, c.Front)
		require.True(t, ok)
		got := ray.At(dist)
		assert.InDelta(t, 0, got.Distance(p), 1e-6, "round trip of %v gave %v", p, got)
	}
}
