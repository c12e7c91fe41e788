package editor

import (
	"github.com/philipparndt/gocube/pkg/geometry"
	"github.com/philipparndt/gocube/pkg/viewer"
)

// Key is a keyboard key the editor reacts to
type Key uint

const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyQ
	KeyE
	KeyShift
	KeyCtrl
	KeyOne
	KeyTwo
	KeyThree
	KeyL
	KeyF
	KeyC
	KeyV
	KeyZ
	KeyN
	KeyDelete
	KeyInsert
	KeyHome
	keyCount
)

// KeySet is a set of keys
type KeySet uint32

// Keys builds a set from keys
func Keys(keys ...Key) KeySet {
	var s KeySet
	for _, k := range keys {
		s = s.With(k)
	}
	return s
}

// Has reports whether k is in the set
func (s KeySet) Has(k Key) bool {
	return k < keyCount && s&(1<<k) != 0
}

// With returns the set with k added
func (s KeySet) With(k Key) KeySet {
	if k >= keyCount {
		return s
	}
	return s | 1<<k
}

// FrameInput is the input snapshot for one frame
type FrameInput struct {
	Cursor         geometry.Vector2 // window pixels, Y down
	PrimaryDown    bool             // left button held
	PrimaryPressed bool             // left button went down this frame
	LookDown       bool             // right button held
	Scroll         float64
	Viewport       viewer.Viewport
	Held           KeySet // keys currently down
	Pressed        KeySet // keys that went down this frame
}

// movement maps held keys to camera movement
func (in FrameInput) movement() viewer.Movement {
	return viewer.Movement{
		Forward:  in.Held.Has(KeyW),
		Backward: in.Held.Has(KeyS),
		Left:     in.Held.Has(KeyA),
		Right:    in.Held.Has(KeyD),
		Down:     in.Held.Has(KeyQ),
		Up:       in.Held.Has(KeyE),
		Fast:     in.Held.Has(KeyShift),
	}
}
