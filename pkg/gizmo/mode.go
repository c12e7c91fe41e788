package gizmo

import "github.com/philipparndt/gocube/pkg/geometry"

// TransformMode selects which transform component a drag edits
type TransformMode int

const (
	Translate TransformMode = iota
	Rotate
	Scale
)

// String returns the mode name
func (m TransformMode) String() string {
	switch m {
	case Translate:
		return "translate"
	case Rotate:
		return "rotate"
	case Scale:
		return "scale"
	default:
		return "unknown"
	}
}

// Valid reports whether m is one of the defined modes
func (m TransformMode) Valid() bool {
	return m >= Translate && m <= Scale
}

// Axis identifies a gizmo handle
type Axis int

const (
	AxisNone Axis = iota - 1
	AxisX
	AxisY
	AxisZ
)

// Axes lists the valid axes in order
var Axes = [3]Axis{AxisX, AxisY, AxisZ}

// Valid reports whether a is X, Y or Z
func (a Axis) Valid() bool {
	return a >= AxisX && a <= AxisZ
}

// Index returns the component index (0..2) of a valid axis
func (a Axis) Index() int {
	return int(a)
}

// Unit returns the world unit vector of the axis, or zero for AxisNone
func (a Axis) Unit() geometry.Vector3 {
	if !a.Valid() {
		return geometry.Vector3{}
	}
	return geometry.UnitAxis(a.Index())
}

// String returns "X", "Y", "Z" or "none"
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return "none"
	}
}

// Event reports what an Update call did
type Event int

const (
	EventNone Event = iota
	EventStarted
	EventDragged
	EventEnded
)

// String returns the event name
func (e Event) String() string {
	switch e {
	case EventStarted:
		return "started"
	case EventDragged:
		return "dragged"
	case EventEnded:
		return "ended"
	default:
		return "none"
	}
}
