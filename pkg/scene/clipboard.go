package scene

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/philipparndt/gocube/pkg/geometry"
)

// Clipboard holds copies of objects for paste
type Clipboard struct {
	objects []Object
}

// Len returns the number of objects on the clipboard
func (c *Clipboard) Len() int {
	return len(c.objects)
}

// Copy replaces the clipboard with deep copies of the selected objects and
// returns how many were copied. An empty selection leaves the clipboard as
// it was.
func (c *Clipboard) Copy(s *Scene) (int, error) {
	var picked []Object
	for _, i := range s.SelectedIndices() {
		if o := s.Object(i); o != nil {
			picked = append(picked, *o)
		}
	}
	if len(picked) == 0 {
		return 0, nil
	}

	var objects []Object
	if err := copier.CopyWithOption(&objects, &picked, copier.Option{DeepCopy: true}); err != nil {
		return 0, fmt.Errorf("failed to copy selection: %w", err)
	}
	for i := range objects {
		objects[i].Selected = false
	}
	c.objects = objects
	return len(objects), nil
}

// Paste appends the clipboard objects, each shifted along X by 1 + 0.5*i,
// and selects exactly the pasted objects. It returns their indices.
func (c *Clipboard) Paste(s *Scene) []int {
	if len(c.objects) == 0 {
		return nil
	}

	indices := make([]int, 0, len(c.objects))
	for i, o := range c.objects {
		o.Position = o.Position.Add(geometry.NewVector3(1+0.5*float64(i), 0, 0))
		indices = append(indices, s.Add(o))
	}
	s.SelectAll(indices)
	return indices
}
