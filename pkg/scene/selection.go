package scene

import "slices"

// Selection tracks the selected object indices. The primary index is the
// most recently selected member, or -1 when nothing is selected.
type Selection struct {
	primary int
	members []int
}

// NewSelection returns an empty selection
func NewSelection() Selection {
	return Selection{primary: -1}
}

// Primary returns the primary index or -1
func (s *Selection) Primary() int {
	return s.primary
}

// Indices returns a copy of the member indices in selection order
func (s *Selection) Indices() []int {
	return slices.Clone(s.members)
}

// Len returns the number of selected objects
func (s *Selection) Len() int {
	return len(s.members)
}

// Contains reports whether i is selected
func (s *Selection) Contains(i int) bool {
	return slices.Contains(s.members, i)
}

// Set replaces the selection with the single index i
func (s *Selection) Set(i int) {
	s.members = append(s.members[:0], i)
	s.primary = i
}

// SetAll replaces the selection with indices; the last one becomes primary
func (s *Selection) SetAll(indices []int) {
	s.members = append(s.members[:0], indices...)
	s.updatePrimary()
}

// Toggle adds i to the selection or removes it when already present
func (s *Selection) Toggle(i int) {
	if idx := slices.Index(s.members, i); idx >= 0 {
		s.members = slices.Delete(s.members, idx, idx+1)
	} else {
		s.members = append(s.members, i)
	}
	s.updatePrimary()
}

// Clear empties the selection
func (s *Selection) Clear() {
	s.members = s.members[:0]
	s.primary = -1
}

// OnDelete updates the selection after the object at index i was removed:
// i is dropped and every larger index shifts down by one
func (s *Selection) OnDelete(i int) {
	out := s.members[:0]
	for _, m := range s.members {
		switch {
		case m == i:
			continue
		case m > i:
			out = append(out, m-1)
		default:
			out = append(out, m)
		}
	}
	s.members = out

	switch {
	case s.primary == i:
		s.updatePrimary()
	case s.primary > i:
		s.primary--
	}
}

// Validate drops every index outside [0, n)
func (s *Selection) Validate(n int) {
	s.members = slices.DeleteFunc(s.members, func(m int) bool {
		return m < 0 || m >= n
	})
	if s.primary < 0 || s.primary >= n || !slices.Contains(s.members, s.primary) {
		s.updatePrimary()
	}
}

func (s *Selection) updatePrimary() {
	if len(s.members) == 0 {
		s.primary = -1
		return
	}
	s.primary = s.members[len(s.members)-1]
}
