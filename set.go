package presetenv

import (
	"iter"
	"slices"
)

// ItemSet is a set of item names that remembers insertion order.
// The zero value is an empty set ready to use; a nil *ItemSet reads as empty.
type ItemSet struct {
	order []string
	index map[string]struct{}
}

// NewItemSet returns a set holding names, in order, without duplicates.
func NewItemSet(names ...string) *ItemSet {
	s := &ItemSet{}
	for _, name := range names {
		s.Add(name)
	}
	return s
}

// Add inserts name and reports whether it was newly added.
func (s *ItemSet) Add(name string) bool {
	if s.index == nil {
		s.index = make(map[string]struct{})
	}
	if _, ok := s.index[name]; ok {
		return false
	}
	s.index[name] = struct{}{}
	s.order = append(s.order, name)
	return true
}

// Has reports whether name is in the set.
func (s *ItemSet) Has(name string) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[name]
	return ok
}

// Len returns the number of items.
func (s *ItemSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Items returns the items in insertion order.
func (s *ItemSet) Items() []string {
	if s == nil {
		return nil
	}
	return slices.Clone(s.order)
}

// Sorted returns the items in lexical order.
func (s *ItemSet) Sorted() []string {
	items := s.Items()
	slices.Sort(items)
	return items
}

// All iterates over the items in insertion order.
func (s *ItemSet) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		if s == nil {
			return
		}
		for _, name := range s.order {
			if !yield(name) {
				return
			}
		}
	}
}

// Intersect returns the items of s that are also in other, in s's order.
func (s *ItemSet) Intersect(other *ItemSet) []string {
	var out []string
	for name := range s.All() {
		if other.Has(name) {
			out = append(out, name)
		}
	}
	return out
}
