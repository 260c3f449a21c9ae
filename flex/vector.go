// SPDX-License-Identifier: MIT

package flex

import (
	"fmt"
	"iter"
	"slices"

	"github.com/katalvlaran/flexla/scalar"
	"github.com/katalvlaran/flexla/zeromap"
)

// Vector is a 1-D container over an arbitrary key set.
//   - entries holds the stored keys in insertion order with their values.
//   - Every key outside entries reads as the zero of V.
//
// The zero value is an empty vector ready for use.
type Vector[K comparable, V scalar.Scalar] struct {
	entries zeromap.Map[K, V]
}

var (
	_ fmt.Stringer = (*Vector[int, float64])(nil)
	_ fmt.Stringer = (*Vector[string, complex128])(nil)
)

// newVector allocates an empty vector sized for capacity keys.
func newVector[K comparable, V scalar.Scalar](capacity int) *Vector[K, V] {
	return &Vector[K, V]{entries: *zeromap.New[K, V](capacity)}
}

// fillVector stores x at every key of seq; duplicates collapse to their first position.
func fillVector[K comparable, V scalar.Scalar](seq iter.Seq[K], x V, sizeHint int, opts []Option) *Vector[K, V] {
	o := gatherOptions(opts...)
	v := newVector[K, V](max(sizeHint, o.capacity))
	for k := range seq {
		if !v.entries.Has(k) {
			v.entries.Set(k, x)
		}
	}

	return v
}

// NewVector returns a float64 vector whose key set is exactly domain, every
// entry zero. Duplicate keys collapse to one entry.
// Complexity: O(len(domain)).
func NewVector[K comparable](domain []K, opts ...Option) *Vector[K, float64] {
	return NewVectorOf[float64](domain, opts...)
}

// NewVectorOf is NewVector with an explicit value type:
//
//	v := flex.NewVectorOf[complex128]([]string{"a", "b"})
func NewVectorOf[V scalar.Scalar, K comparable](domain []K, opts ...Option) *Vector[K, V] {
	return fillVector(slices.Values(domain), scalar.Zero[V](), len(domain), opts)
}

// VectorFromSeq builds a zero vector over any iterable key source.
func VectorFromSeq[V scalar.Scalar, K comparable](domain iter.Seq[K], opts ...Option) *Vector[K, V] {
	return fillVector(domain, scalar.Zero[V](), 0, opts)
}

// Ones returns a float64 vector over domain with every entry 1.
func Ones[K comparable](domain []K, opts ...Option) *Vector[K, float64] {
	return OnesOf[float64](domain, opts...)
}

// OnesOf returns a vector over domain with every entry set to the unit of V.
func OnesOf[V scalar.Scalar, K comparable](domain []K, opts ...Option) *Vector[K, V] {
	return fillVector(slices.Values(domain), scalar.One[V](), len(domain), opts)
}

// Get returns the value at k, or zero when k is not stored.
// It never fails and never adds k. Complexity: O(1).
func (v *Vector[K, V]) Get(k K) V { return v.entries.Get(k) }

// Set stores x at k and appends k to the key order when it is new.
// Complexity: amortized O(1).
func (v *Vector[K, V]) Set(k K, x V) { v.entries.Set(k, x) }

// Delete removes k; afterwards k reads as zero and is no longer a key.
// Deleting an absent key is a no-op.
func (v *Vector[K, V]) Delete(k K) { v.entries.Delete(k) }

// Has reports whether k is stored.
func (v *Vector[K, V]) Has(k K) bool { return v.entries.Has(k) }

// Len returns the number of stored keys.
func (v *Vector[K, V]) Len() int { return v.entries.Len() }

// Keys returns the stored keys in insertion order as a fresh slice.
func (v *Vector[K, V]) Keys() []K { return v.entries.Keys() }

// All yields (key, value) pairs in insertion order.
func (v *Vector[K, V]) All() iter.Seq2[K, V] { return v.entries.All() }

// ValueType reports the element type tag of V.
func (v *Vector[K, V]) ValueType() scalar.ValueType { return scalar.TypeOf[V]() }

// Clone returns an independent copy with the same key order.
func (v *Vector[K, V]) Clone() *Vector[K, V] {
	return &Vector[K, V]{entries: *v.entries.Clone()}
}
