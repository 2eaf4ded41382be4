// Package selection tracks the genres chosen in the filter panel.
package selection

// Set is an insertion-ordered set of genre names. The zero value is ready to
// use. Not safe for concurrent use; it is owned by the controller.
type Set struct {
	order []string
	index map[string]int
}

// Toggle adds genre if absent and removes it otherwise. It reports whether
// genre is selected afterwards. Genres are not validated.
func (s *Set) Toggle(genre string) bool {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if i, ok := s.index[genre]; ok {
		s.order = append(s.order[:i], s.order[i+1:]...)
		delete(s.index, genre)
		for j := i; j < len(s.order); j++ {
			s.index[s.order[j]] = j
		}
		return false
	}
	s.index[genre] = len(s.order)
	s.order = append(s.order, genre)
	return true
}

// Clear empties the set.
func (s *Set) Clear() {
	s.order = nil
	s.index = nil
}

// Contains reports whether genre is selected.
func (s *Set) Contains(genre string) bool {
	_, ok := s.index[genre]
	return ok
}

// Len returns the number of selected genres.
func (s *Set) Len() int {
	return len(s.order)
}

// Snapshot returns the selected genres in the order they were chosen.
func (s *Set) Snapshot() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
