package table

import "slices"

// Selection is an insertion-ordered set of row ids
type Selection struct {
	ids []string
}

// Toggle adds id when absent and removes it when present.
// It reports whether id is selected afterwards.
func (s *Selection) Toggle(id string) bool {
	if i := slices.Index(s.ids, id); i >= 0 {
		s.ids = slices.Delete(s.ids, i, i+1)
		return false
	}
	s.ids = append(s.ids, id)
	return true
}

// Set replaces the selection with ids, dropping repeats.
func (s *Selection) Set(ids []string) {
	next := make([]string, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(next, id) {
			next = append(next, id)
		}
	}
	s.ids = next
}

func (s *Selection) Remove(id string) {
	s.ids = slices.DeleteFunc(s.ids, func(v string) bool { return v == id })
}

func (s *Selection) Clear() {
	s.ids = nil
}

func (s *Selection) Has(id string) bool {
	return slices.Contains(s.ids, id)
}

func (s *Selection) Len() int {
	return len(s.ids)
}

// IDs returns a copy of the selected ids in insertion order
func (s *Selection) IDs() []string {
	return slices.Clone(s.ids)
}

// Retain keeps only the ids for which keep returns true
func (s *Selection) Retain(keep func(id string) bool) {
	s.ids = slices.DeleteFunc(s.ids, func(id string) bool { return !keep(id) })
}
