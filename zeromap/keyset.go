// SPDX-License-Identifier: MIT

package zeromap

import (
	"iter"
	"slices"
)

// KeySet is an insertion-ordered set of comparable keys.
//   - order holds keys in first-insertion order.
//   - pos maps each key to its index in order.
//
// The zero value is an empty, ready-to-use set.
type KeySet[K comparable] struct {
	order []K
	pos   map[K]int
}

// NewKeySet returns an empty set with room for capacity keys.
// Complexity: O(1) alloc.
func NewKeySet[K comparable](capacity int) *KeySet[K] {
	if capacity < 0 {
		capacity = 0
	}

	return &KeySet[K]{
		order: make([]K, 0, capacity),
		pos:   make(map[K]int, capacity),
	}
}

// KeySetOf builds a set from keys; duplicates collapse to their first position.
func KeySetOf[K comparable](keys []K) *KeySet[K] {
	s := NewKeySet[K](len(keys))
	for _, k := range keys {
		s.Add(k)
	}

	return s
}

// Add inserts k if absent and reports whether it was new.
// Complexity: amortized O(1).
func (s *KeySet[K]) Add(k K) bool {
	if s.pos == nil {
		s.pos = make(map[K]int)
	}
	if _, ok := s.pos[k]; ok {
		return false
	}
	s.pos[k] = len(s.order)
	s.order = append(s.order, k)

	return true
}

// Has reports membership. Complexity: O(1).
func (s *KeySet[K]) Has(k K) bool {
	_, ok := s.pos[k]

	return ok
}

// Remove deletes k if present and reports whether it was.
// The relative order of the remaining keys is preserved.
// Complexity: O(n) for the reindex of the keys after k.
func (s *KeySet[K]) Remove(k K) bool {
	i, ok := s.pos[k]
	if !ok {
		return false
	}
	delete(s.pos, k)
	s.order = slices.Delete(s.order, i, i+1)
	for j := i; j < len(s.order); j++ {
		s.pos[s.order[j]] = j
	}

	return true
}

// RemoveFunc deletes every key for which del returns true and reports how
// many were removed. Survivors keep their relative order.
// Complexity: O(n) regardless of how many keys go.
func (s *KeySet[K]) RemoveFunc(del func(K) bool) int {
	kept := s.order[:0]
	removed := 0
	for _, k := range s.order {
		if del(k) {
			delete(s.pos, k)
			removed++
			continue
		}
		s.pos[k] = len(kept)
		kept = append(kept, k)
	}
	clear(s.order[len(kept):]) // drop references held by the tail
	s.order = kept

	return removed
}

// Len returns the number of keys.
func (s *KeySet[K]) Len() int { return len(s.order) }

// Keys returns a fresh slice of the keys in insertion order.
func (s *KeySet[K]) Keys() []K { return slices.Clone(s.order) }

// All yields keys in insertion order. Mutating the set while ranging is not supported.
func (s *KeySet[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, k := range s.order {
			if !yield(k) {
				return
			}
		}
	}
}

// Clone returns an independent copy.
func (s *KeySet[K]) Clone() *KeySet[K] {
	out := NewKeySet[K](len(s.order))
	for _, k := range s.order {
		out.Add(k)
	}

	return out
}

// Union returns a's keys followed by the keys of b not present in a.
// Duplicates inside either input collapse as well.
// Complexity: O(len(a)+len(b)) time and space.
func Union[K comparable](a, b []K) []K {
	seen := make(map[K]struct{}, len(a)+len(b))
	out := make([]K, 0, len(a)+len(b))
	for _, src := range [2][]K{a, b} {
		for _, k := range src {
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, k)
		}
	}

	return out
}
