// SPDX-License-Identifier: MIT

package zeromap

import (
	"iter"

	"github.com/katalvlaran/flexla/scalar"
)

// Map is a total mapping over an unbounded key universe with a finite
// representation: stored keys carry their value, every other key reads as
// the zero of V.
//   - keys keeps the stored key set in insertion order.
//   - vals holds the values of stored keys (a stored zero is still stored).
//
// The zero value is an empty, ready-to-use map.
type Map[K comparable, V scalar.Scalar] struct {
	keys KeySet[K]
	vals map[K]V
}

// New returns an empty map sized for capacity keys.
// Complexity: O(1) alloc.
func New[K comparable, V scalar.Scalar](capacity int) *Map[K, V] {
	if capacity < 0 {
		capacity = 0
	}

	return &Map[K, V]{
		keys: *NewKeySet[K](capacity),
		vals: make(map[K]V, capacity),
	}
}

// FromKeys returns a map whose stored key set is keys, every entry zero.
// Duplicate keys collapse to one entry at their first position.
func FromKeys[V scalar.Scalar, K comparable](keys []K) *Map[K, V] {
	m := New[K, V](len(keys))
	var zero V
	for _, k := range keys {
		m.Set(k, zero)
	}

	return m
}

// Get returns the value stored at k, or zero when k is absent.
// It never fails and never changes the key set.
// Complexity: O(1).
func (m *Map[K, V]) Get(k K) V {
	return m.vals[k] // a nil or missing entry yields the zero of V
}

// Lookup is Get plus a presence flag.
func (m *Map[K, V]) Lookup(k K) (V, bool) {
	v, ok := m.vals[k]

	return v, ok
}

// Set stores v at k, creating the key at the end of the order when new.
// Complexity: amortized O(1).
func (m *Map[K, V]) Set(k K, v V) {
	if m.vals == nil {
		m.vals = make(map[K]V)
	}
	m.keys.Add(k)
	m.vals[k] = v
}

// Delete removes k; absent keys are a no-op. Afterwards k reads as zero.
// Complexity: O(n) to keep the order of the remaining keys.
func (m *Map[K, V]) Delete(k K) {
	if m.keys.Remove(k) {
		delete(m.vals, k)
	}
}

// DeleteFunc removes every stored entry for which del returns true and
// reports how many were removed. Complexity: O(n).
func (m *Map[K, V]) DeleteFunc(del func(K, V) bool) int {
	return m.keys.RemoveFunc(func(k K) bool {
		if del(k, m.vals[k]) {
			delete(m.vals, k)
			return true
		}

		return false
	})
}

// Has reports whether k is stored.
func (m *Map[K, V]) Has(k K) bool { return m.keys.Has(k) }

// Len returns the number of stored keys.
func (m *Map[K, V]) Len() int { return m.keys.Len() }

// Zero returns the implicit value of absent keys.
func (m *Map[K, V]) Zero() V { return scalar.Zero[V]() }

// Keys returns a fresh slice of the stored keys in insertion order.
// Each call returns a new slice; callers may keep or modify it.
func (m *Map[K, V]) Keys() []K { return m.keys.Keys() }

// All yields stored (key, value) pairs in insertion order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.keys.order {
			if !yield(k, m.vals[k]) {
				return
			}
		}
	}
}

// Values returns the stored values in key insertion order.
func (m *Map[K, V]) Values() []V {
	out := make([]V, 0, m.keys.Len())
	for _, k := range m.keys.order {
		out = append(out, m.vals[k])
	}

	return out
}

// Clone returns an independent copy with the same order.
// Complexity: O(n).
func (m *Map[K, V]) Clone() *Map[K, V] {
	out := New[K, V](m.Len())
	for k, v := range m.All() {
		out.Set(k, v)
	}

	return out
}

// Clear drops every stored key.
func (m *Map[K, V]) Clear() {
	m.keys = KeySet[K]{}
	m.vals = nil
}
