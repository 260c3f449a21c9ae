// SPDX-License-Identifier: MIT

package flex

import (
	"github.com/katalvlaran/flexla/matrix"
	"github.com/katalvlaran/flexla/scalar"
)

// Convert builds a vector with keys 1..n holding values in order.
// The slice is copied. Convert(v.ToSlice()) re-keys v onto 1..n.
func Convert[V scalar.Scalar](values []V, opts ...Option) *Vector[int, V] {
	o := gatherOptions(opts...)
	v := newVector[int, V](max(len(values), o.capacity))
	for i, x := range values {
		v.entries.Set(i+1, x)
	}

	return v
}

// ToSlice returns the stored values in key order; the keys are dropped.
func (v *Vector[K, V]) ToSlice() []V { return v.entries.Values() }

// ConvertMatrix builds a matrix keyed 1..m × 1..n from row slices.
// Every cell is stored. Errors: ErrBadShape for ragged rows.
// Complexity: O(m·n).
func ConvertMatrix[V scalar.Scalar](rows [][]V) (*Matrix[int, int, V], error) {
	d, err := matrix.FromRows(rows)
	if err != nil {
		return nil, flexErrorf("ConvertMatrix", err)
	}

	return fromDenseOn(d, countingKeys(d.Rows()), countingKeys(d.Cols())), nil
}

// FromDense keys a positional matrix as 1..rows × 1..cols.
// Errors: ErrNilMatrix.
func FromDense[V scalar.Scalar](d *matrix.Dense[V]) (*Matrix[int, int, V], error) {
	if d == nil {
		return nil, flexErrorf("FromDense", ErrNilMatrix)
	}

	return fromDenseOn(d, countingKeys(d.Rows()), countingKeys(d.Cols())), nil
}

// ToDense lays a out row-major on RowKeys() × ColKeys(); the keys are dropped.
// Unstored cells become zero.
func (a *Matrix[R, C, V]) ToDense() *matrix.Dense[V] {
	return denseOn(a, a.rows.Keys(), a.cols.Keys())
}

// ToRows is ToDense as row slices.
func (a *Matrix[R, C, V]) ToRows() [][]V { return a.ToDense().ToRows() }

// countingKeys returns 1..n.
func countingKeys(n int) []int {
	keys := make([]int, n)
	for i := range keys {
		keys[i] = i + 1
	}

	return keys
}
