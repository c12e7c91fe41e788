package viewer

import (
	"math"

	"github.com/philipparndt/gocube/pkg/geometry"
)

// maxPitch limits how far the camera can look up or down (degrees)
const maxPitch = 80.0

// yawWrapLimit bounds the yaw angle so it does not grow without limit
const yawWrapLimit = 720.0

var (
	defaultPosition = geometry.NewVector3(0, 1.2, 4)
	defaultFront    = geometry.NewVector3(0, 0, -1)
	worldUp         = geometry.NewVector3(0, 1, 0)
)

// CameraSettings holds the tunable camera constants
type CameraSettings struct {
	Sensitivity    float64 // degrees per pixel of mouse movement
	Speed          float64 // units per second
	FastMultiplier float64 // speed multiplier while the fast modifier is held
	ScrollStep     float64 // units per scroll notch
	FOV            float64 // vertical field of view in degrees
	Near           float64
	Far            float64
}

// DefaultCameraSettings returns the built-in camera constants
func DefaultCameraSettings() CameraSettings {
	return CameraSettings{
		Sensitivity:    0.08,
		Speed:          3.0,
		FastMultiplier: 2.0,
		ScrollStep:     0.5,
		FOV:            45.0,
		Near:           0.1,
		Far:            100.0,
	}
}

// Movement is the set of movement keys held during a frame
type Movement struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
	Up       bool
	Down     bool
	Fast     bool
}

// Camera is a first-person fly camera driven by yaw and pitch
type Camera struct {
	Settings CameraSettings

	Position geometry.Vector3
	Front    geometry.Vector3
	WorldUp  geometry.Vector3

	Yaw         float64
	Pitch       float64
	TargetYaw   float64
	TargetPitch float64

	lookMode   bool
	firstMouse bool
	lastX      float64
	lastY      float64
}

// NewCamera creates a camera with default settings
func NewCamera() *Camera {
	return NewCameraWithSettings(DefaultCameraSettings())
}

// NewCameraWithSettings creates a camera at the default pose using s
func NewCameraWithSettings(s CameraSettings) *Camera {
	c := &Camera{Settings: s}
	c.Reset()
	return c
}

// Reset returns the camera to its initial pose. Settings are kept.
func (c *Camera) Reset() {
	c.Position = defaultPosition
	c.Front = defaultFront
	c.WorldUp = worldUp
	c.Yaw, c.TargetYaw = -90, -90
	c.Pitch, c.TargetPitch = 0, 0
	c.lookMode = false
	c.firstMouse = true
}

// SetLookMode enables or disables mouse look. Every transition re-arms the
// first-sample guard so the next cursor sample does not rotate the camera.
func (c *Camera) SetLookMode(on bool) {
	if c.lookMode == on {
		return
	}
	c.lookMode = on
	c.firstMouse = true
}

// ResetLookSample re-arms the first-sample guard without leaving look mode.
// Callers use it when cursor samples were not fed to Look for a while.
func (c *Camera) ResetLookSample() {
	c.firstMouse = true
}

// LookMode reports whether mouse look is active
func (c *Camera) LookMode() bool {
	return c.lookMode
}

// Look feeds a cursor sample. It only changes the target orientation while
// look mode is on.
func (c *Camera) Look(x, y float64) {
	if !c.lookMode {
		return
	}

	if c.firstMouse {
		c.lastX, c.lastY = x, y
		c.firstMouse = false
		return
	}

	xoffset := (x - c.lastX) * c.Settings.Sensitivity
	yoffset := (c.lastY - y) * c.Settings.Sensitivity
	c.lastX, c.lastY = x, y

	c.TargetYaw += xoffset
	c.TargetPitch = clamp(c.TargetPitch+yoffset, -maxPitch, maxPitch)
}

// UpdateDirection applies the target orientation and recomputes Front
func (c *Camera) UpdateDirection() {
	c.Yaw = c.TargetYaw
	c.Pitch = c.TargetPitch

	if c.Yaw > yawWrapLimit {
		c.Yaw -= 360
	}
	if c.Yaw < -yawWrapLimit {
		c.Yaw += 360
	}
	c.TargetYaw = c.Yaw

	c.Front = directionFromAngles(c.Yaw, c.Pitch)
}

// UpdatePosition moves the camera for the keys held during dt seconds
func (c *Camera) UpdatePosition(m Movement, dt float64) {
	speed := c.Settings.Speed
	if m.Fast {
		speed *= c.Settings.FastMultiplier
	}
	velocity := speed * dt

	if m.Forward {
		c.Position = c.Position.Add(c.Front.Mul(velocity))
	}
	if m.Backward {
		c.Position = c.Position.Sub(c.Front.Mul(velocity))
	}

	// Looking straight up or down leaves no horizontal right vector
	if right := c.Right(); !right.IsZero() {
		if m.Left {
			c.Position = c.Position.Sub(right.Mul(velocity))
		}
		if m.Right {
			c.Position = c.Position.Add(right.Mul(velocity))
		}
	}

	if m.Down {
		c.Position.Y -= velocity
	}
	if m.Up {
		c.Position.Y += velocity
	}
}

// Scroll dollies the camera along Front
func (c *Camera) Scroll(dy float64) {
	if dy == 0 {
		return
	}
	c.Position = c.Position.Add(c.Front.Mul(dy * c.Settings.ScrollStep))
}

// FaceTowards turns the camera to look at target
func (c *Camera) FaceTowards(target geometry.Vector3) {
	dir := target.Sub(c.Position).Normalize()
	if dir.IsZero() {
		return
	}
	pitch := math.Asin(clamp(dir.Y, -1, 1)) * 180 / math.Pi
	c.TargetPitch = clamp(pitch, -maxPitch, maxPitch)
	c.TargetYaw = math.Atan2(dir.Z, dir.X) * 180 / math.Pi
	c.UpdateDirection()
}

// Right returns the horizontal right vector, or zero when Front is parallel
// to the world up axis
func (c *Camera) Right() geometry.Vector3 {
	return c.Front.Cross(c.WorldUp).Normalize()
}

// Up returns the camera-relative up vector
func (c *Camera) Up() geometry.Vector3 {
	return c.Right().Cross(c.Front).NormalizeOr(c.WorldUp)
}

// View returns the view matrix for the current pose
func (c *Camera) View() geometry.Mat4 {
	return geometry.LookFrom(c.Position, c.Front, c.WorldUp)
}

// Projection returns the perspective projection for the given aspect ratio
func (c *Camera) Projection(aspect float64) geometry.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return geometry.Perspective(geometry.DegToRad(c.Settings.FOV), aspect, c.Settings.Near, c.Settings.Far)
}

func directionFromAngles(yawDeg, pitchDeg float64) geometry.Vector3 {
	yaw := geometry.DegToRad(yawDeg)
	pitch := geometry.DegToRad(pitchDeg)
	dir := geometry.Vector3{
		X: math.Cos(yaw) * math.Cos(pitch),
		Y: math.Sin(pitch),
		Z: math.Sin(yaw) * math.Cos(pitch),
	}
	return dir.NormalizeOr(defaultFront)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
