package entity

import "sort"

// OrderedSet keeps distinct strings in the order they were first added.
// The zero value is ready to use.
type OrderedSet struct {
	items []string
	seen  map[string]struct{}
}

func (s *OrderedSet) Add(values ...string) {
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	for _, v := range values {
		if _, ok := s.seen[v]; ok {
			continue
		}
		s.seen[v] = struct{}{}
		s.items = append(s.items, v)
	}
}

func (s *OrderedSet) Contains(value string) bool {
	_, ok := s.seen[value]
	return ok
}

func (s *OrderedSet) Len() int {
	return len(s.items)
}

// Values returns a copy of the members in insertion order.
func (s *OrderedSet) Values() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

// Sorted returns a copy of the members in lexical order.
func (s *OrderedSet) Sorted() []string {
	out := s.Values()
	sort.Strings(out)
	return out
}
