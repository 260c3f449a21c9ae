// SPDX-License-Identifier: MIT

package flex

import (
	"github.com/katalvlaran/flexla/scalar"
	"github.com/katalvlaran/flexla/zeromap"
)

// zipUnion is the union merge shared by every binary vector operation.
// Implementation:
//   - Stage 1: U = keys(v) ∪ keys(w), v's keys first.
//   - Stage 2: allocate the result sized to |U|.
//   - Stage 3: out[k] = f(v.Get(k), w.Get(k)); the side lacking k yields zero.
//
// Complexity: O(|v| + |w|).
func zipUnion[K comparable, A, B, T scalar.Scalar](v *Vector[K, A], w *Vector[K, B], f func(A, B) T) *Vector[K, T] {
	keys := zeromap.Union(v.entries.Keys(), w.entries.Keys())
	out := newVector[K, T](len(keys))
	for _, k := range keys {
		out.entries.Set(k, f(v.entries.Get(k), w.entries.Get(k)))
	}

	return out
}

// mapEntries applies f to every stored entry, keeping the key set and order.
func mapEntries[K comparable, A, T scalar.Scalar](v *Vector[K, A], f func(A) T) *Vector[K, T] {
	out := newVector[K, T](v.entries.Len())
	for k, a := range v.entries.All() {
		out.entries.Set(k, f(a))
	}

	return out
}

// Add returns v + w over keys(v) ∪ keys(w).
func (v *Vector[K, V]) Add(w *Vector[K, V]) *Vector[K, V] {
	return zipUnion(v, w, func(a, b V) V { return a + b })
}

// Sub returns v - w over keys(v) ∪ keys(w).
func (v *Vector[K, V]) Sub(w *Vector[K, V]) *Vector[K, V] {
	return zipUnion(v, w, func(a, b V) V { return a - b })
}

// Scale returns c·v. The key set is v's: absent keys stay implicit zeros,
// and stored keys stay stored even when c is zero.
func (v *Vector[K, V]) Scale(c V) *Vector[K, V] {
	return mapEntries(v, func(a V) V { return c * a })
}

// Neg returns -v over v's key set. Unsigned types wrap modulo 2^n.
func (v *Vector[K, V]) Neg() *Vector[K, V] {
	return mapEntries(v, func(a V) V { return -a })
}

// Sum folds the stored values with + starting from zero.
func (v *Vector[K, V]) Sum() V {
	var s V
	for _, a := range v.entries.All() {
		s += a
	}

	return s
}

// Dot returns the Hermitian inner product Σ conj(v[k])·w[k] over
// keys(v) ∪ keys(w). The first operand is conjugated, so
// v.Dot(w) == conj(w.Dot(v)); for real V the product is symmetric.
// Keys present on one side only add zero terms.
// Complexity: O(|v| + |w|).
func (v *Vector[K, V]) Dot(w *Vector[K, V]) V {
	return dotUnion(v, w, scalar.Conj[V], func(b V) V { return b })
}

// Dot is the function form of v.Dot(w).
func Dot[K comparable, V scalar.Scalar](v, w *Vector[K, V]) V { return v.Dot(w) }

// dotUnion sums ca(v[k])·cb(w[k]) over keys(v) ∪ keys(w). One-sided keys
// multiply against zero, as in the dense product.
func dotUnion[K comparable, A, B, T scalar.Scalar](v *Vector[K, A], w *Vector[K, B], ca func(A) T, cb func(B) T) T {
	var s T
	for _, k := range zeromap.Union(v.entries.Keys(), w.entries.Keys()) {
		s += ca(v.entries.Get(k)) * cb(w.entries.Get(k))
	}

	return s
}

// Equal reports whether v and w store the same key set (in any order) with
// equal values at every key.
func (v *Vector[K, V]) Equal(w *Vector[K, V]) bool {
	if v.entries.Len() != w.entries.Len() {
		return false
	}
	for k, a := range v.entries.All() {
		b, ok := w.entries.Lookup(k)
		if !ok || a != b {
			return false
		}
	}

	return true
}

// ApproxEqual is Equal with a tolerance: |v[k] - w[k]| <= eps at every key.
// The key sets must still match exactly. A negative eps is treated as 0.
func ApproxEqual[K comparable, V scalar.Scalar](v, w *Vector[K, V], eps float64) bool {
	if v.entries.Len() != w.entries.Len() {
		return false
	}
	eps = max(eps, 0)
	for k, a := range v.entries.All() {
		b, ok := w.entries.Lookup(k)
		if !ok || !withinEps(a, b, eps) {
			return false
		}
	}

	return true
}

// withinEps compares in float64 so unsigned differences do not wrap.
func withinEps[V scalar.Scalar](a, b V, eps float64) bool {
	if a == b {
		return true
	}
	d := scalar.Convert[complex128](a) - scalar.Convert[complex128](b)

	return scalar.Abs(d) <= eps
}
