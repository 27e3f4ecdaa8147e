// Package sectioned provides the grouped, filterable list model behind every
// browsable screen: a store of keyed sections, a controller that rebuilds it
// from a superset of items and a search text, and a debouncer for keystrokes.
package sectioned

import (
	"cmp"
	"slices"
)

// Section is one labeled block of items sharing a key.
type Section[K comparable, T any] struct {
	Key   K
	Items []T
}

// Len returns the number of items in the section.
func (s Section[K, T]) Len() int {
	return len(s.Items)
}

// Policy describes how items are grouped and ordered.
type Policy[K comparable, T any] struct {
	// KeyOf derives the section key of an item.
	KeyOf func(T) K
	// CompareKeys orders sections.
	CompareKeys func(a, b K) int
	// CompareItems orders items within a section.
	CompareItems func(a, b T) int
}

// Store is an ordered, immutable sequence of sections.
// A Store is never patched; it is rebuilt and replaced as a whole.
type Store[K comparable, T any] struct {
	sections []Section[K, T]
	count    int
}

// Build groups items into a Store according to the policy.
// The input slice is not modified.
func Build[K comparable, T any](items []T, policy Policy[K, T]) *Store[K, T] {
	store := &Store[K, T]{}
	if len(items) == 0 {
		return store
	}

	index := make(map[K]int)
	for _, item := range items {
		key := policy.KeyOf(item)
		i, ok := index[key]
		if !ok {
			i = len(store.sections)
			index[key] = i
			store.sections = append(store.sections, Section[K, T]{Key: key})
		}
		store.sections[i].Items = append(store.sections[i].Items, item)
	}

	if policy.CompareKeys != nil {
		slices.SortStableFunc(store.sections, func(a, b Section[K, T]) int {
			return policy.CompareKeys(a.Key, b.Key)
		})
	}
	if policy.CompareItems != nil {
		for i := range store.sections {
			slices.SortStableFunc(store.sections[i].Items, policy.CompareItems)
		}
	}

	store.count = len(items)
	return store
}

// SectionCount returns the number of sections.
func (s *Store[K, T]) SectionCount() int {
	if s == nil {
		return 0
	}
	return len(s.sections)
}

// RowCount returns the number of items in a section, or 0 if the section
// index is out of range.
func (s *Store[K, T]) RowCount(section int) int {
	sec, ok := s.Section(section)
	if !ok {
		return 0
	}
	return sec.Len()
}

// Section returns the section at index i.
func (s *Store[K, T]) Section(i int) (Section[K, T], bool) {
	if s == nil || i < 0 || i >= len(s.sections) {
		return Section[K, T]{}, false
	}
	return s.sections[i], true
}

// ItemAt resolves a (section, row) coordinate.
func (s *Store[K, T]) ItemAt(section, row int) (T, bool) {
	var zero T
	sec, ok := s.Section(section)
	if !ok || row < 0 || row >= len(sec.Items) {
		return zero, false
	}
	return sec.Items[row], true
}

// Sections returns the sections in display order. Callers must not modify
// the returned slice.
func (s *Store[K, T]) Sections() []Section[K, T] {
	if s == nil {
		return nil
	}
	return s.sections
}

// Keys returns the section keys in display order.
func (s *Store[K, T]) Keys() []K {
	keys := make([]K, 0, s.SectionCount())
	for _, sec := range s.Sections() {
		keys = append(keys, sec.Key)
	}
	return keys
}

// IndexOf returns the index of the section with the given key, or -1.
func (s *Store[K, T]) IndexOf(key K) int {
	for i, sec := range s.Sections() {
		if sec.Key == key {
			return i
		}
	}
	return -1
}

// Len returns the total number of items across all sections.
func (s *Store[K, T]) Len() int {
	if s == nil {
		return 0
	}
	return s.count
}

// IsEmpty reports whether the store has no sections.
func (s *Store[K, T]) IsEmpty() bool {
	return s.SectionCount() == 0
}

// Ascending returns the natural ascending comparator for ordered keys.
func Ascending[K cmp.Ordered]() func(a, b K) int {
	return cmp.Compare[K]
}

// Descending reverses a comparator.
func Descending[V any](compare func(a, b V) int) func(a, b V) int {
	return func(a, b V) int {
		return compare(b, a)
	}
}

// By builds an item comparator from a field extractor and a field comparator.
func By[T, F any](field func(T) F, compare func(a, b F) int) func(a, b T) int {
	return func(a, b T) int {
		return compare(field(a), field(b))
	}
}
