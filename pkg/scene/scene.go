package scene

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/philipparndt/gocube/pkg/geometry"
)

// Scene owns the ordered cube instances and the selection. Indices are only
// stable until the next Delete.
type Scene struct {
	objects   []Object
	selection Selection
}

// New creates an empty scene
func New() *Scene {
	return &Scene{selection: NewSelection()}
}

// Len returns the number of objects
func (s *Scene) Len() int {
	return len(s.objects)
}

// Valid reports whether i addresses a live object
func (s *Scene) Valid(i int) bool {
	return i >= 0 && i < len(s.objects)
}

// Object returns a pointer to object i for in-place edits, or nil when i is
// out of range
func (s *Scene) Object(i int) *Object {
	if !s.Valid(i) {
		return nil
	}
	return &s.objects[i]
}

// Objects returns a copy of all objects
func (s *Scene) Objects() []Object {
	out := make([]Object, len(s.objects))
	copy(out, s.objects)
	return out
}

// Add appends an object and returns its index
func (s *Scene) Add(o Object) int {
	o.Selected = false
	o.ClampScale()
	s.objects = append(s.objects, o)
	return len(s.objects) - 1
}

// AddCube appends a unit cube at position and returns its index
func (s *Scene) AddCube(position geometry.Vector3) int {
	return s.Add(NewObject(position))
}

// Delete removes object i and renumbers the selection. It reports whether
// anything was removed.
func (s *Scene) Delete(i int) bool {
	if !s.Valid(i) {
		return false
	}
	s.objects = append(s.objects[:i], s.objects[i+1:]...)
	s.selection.OnDelete(i)
	s.syncSelected()
	return true
}

// DeleteSelected removes every selected object and returns how many were
// removed
func (s *Scene) DeleteSelected() int {
	removed := 0
	// Highest index first so the remaining indices stay valid
	for i := len(s.objects) - 1; i >= 0; i-- {
		if s.selection.Contains(i) && s.Delete(i) {
			removed++
		}
	}
	return removed
}

// Clear removes all objects and the selection
func (s *Scene) Clear() {
	s.objects = nil
	s.selection.Clear()
}

// Raycast returns the index of the nearest object hit by ray and the hit
// distance. Equal distances resolve to the lower index.
func (s *Scene) Raycast(ray geometry.Ray) (index int, t float64, ok bool) {
	index = -1
	for i, o := range s.objects {
		hit, ok := o.PickBounds().IntersectRay(ray)
		if !ok {
			continue
		}
		if index < 0 || hit < t {
			index, t = i, hit
		}
	}
	if index < 0 {
		return -1, 0, false
	}
	return index, t, true
}

// Select makes i the only selected object
func (s *Scene) Select(i int) bool {
	if !s.Valid(i) {
		return false
	}
	s.selection.Set(i)
	s.syncSelected()
	return true
}

// SelectAll replaces the selection with indices, ignoring invalid ones
func (s *Scene) SelectAll(indices []int) {
	s.selection.SetAll(indices)
	s.selection.Validate(len(s.objects))
	s.syncSelected()
}

// Toggle adds or removes i from the selection
func (s *Scene) Toggle(i int) bool {
	if !s.Valid(i) {
		return false
	}
	s.selection.Toggle(i)
	s.syncSelected()
	return true
}

// ClearSelection deselects everything
func (s *Scene) ClearSelection() {
	s.selection.Clear()
	s.syncSelected()
}

// Primary returns the primary selected index or -1
func (s *Scene) Primary() int {
	return s.selection.Primary()
}

// SelectedIndices returns the selected indices in selection order
func (s *Scene) SelectedIndices() []int {
	return s.selection.Indices()
}

// IsSelected reports whether i is selected
func (s *Scene) IsSelected(i int) bool {
	return s.selection.Contains(i)
}

// syncSelected mirrors the selection into the per-object flags
func (s *Scene) syncSelected() {
	for i := range s.objects {
		s.objects[i].Selected = s.selection.Contains(i)
	}
}

// Records returns the persistence records of all objects
func (s *Scene) Records() []Record {
	records := make([]Record, len(s.objects))
	for i, o := range s.objects {
		records[i] = o.Record()
	}
	return records
}

// Load replaces the scene contents with records and clears the selection
func (s *Scene) Load(records []Record) {
	s.objects = make([]Object, 0, len(records))
	for _, r := range records {
		s.objects = append(s.objects, r.Object())
	}
	s.selection.Clear()
}

// Snapshot is a deep copy of the scene state used by the undo history
type Snapshot struct {
	Objects []Object
	Primary int
	Members []int
}

// Snapshot captures a deep copy of the objects and the selection
func (s *Scene) Snapshot() (Snapshot, error) {
	snap := Snapshot{Primary: s.selection.primary}
	if err := copier.CopyWithOption(&snap.Objects, &s.objects, copier.Option{DeepCopy: true}); err != nil {
		return Snapshot{}, fmt.Errorf("failed to copy objects: %w", err)
	}
	snap.Members = s.selection.Indices()
	return snap, nil
}

// Restore replaces the scene state with a snapshot. The snapshot itself is
// left untouched.
func (s *Scene) Restore(snap Snapshot) error {
	var objects []Object
	if err := copier.CopyWithOption(&objects, &snap.Objects, copier.Option{DeepCopy: true}); err != nil {
		return fmt.Errorf("failed to copy objects: %w", err)
	}
	s.objects = objects
	s.selection = Selection{primary: snap.Primary, members: append([]int(nil), snap.Members...)}
	s.selection.Validate(len(s.objects))
	s.syncSelected()
	return nil
}
