// SPDX-License-Identifier: MIT

package flex

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/flexla/scalar"
	"github.com/katalvlaran/flexla/zeromap"
)

// Cell addresses one entry of a Matrix.
type Cell[R, C comparable] struct {
	Row R
	Col C
}

// Matrix is a 2-D container over independent row and column key sets.
//   - rows, cols: insertion-ordered key sets.
//   - entries: stored cells; every stored cell lies in rows × cols.
//
// A cell that is not stored reads as zero whether or not its row and column
// keys exist. The zero value is an empty matrix ready for use.
type Matrix[R, C comparable, V scalar.Scalar] struct {
	rows    zeromap.KeySet[R]
	cols    zeromap.KeySet[C]
	entries zeromap.Map[Cell[R, C], V]
}

var (
	_ fmt.Stringer = (*Matrix[int, int, float64])(nil)
	_ fmt.Stringer = (*Matrix[string, int, complex128])(nil)
)

// newMatrix allocates an empty matrix with the given capacities.
func newMatrix[R, C comparable, V scalar.Scalar](rowCap, colCap, entryCap int) *Matrix[R, C, V] {
	return &Matrix[R, C, V]{
		rows:    *zeromap.NewKeySet[R](rowCap),
		cols:    *zeromap.NewKeySet[C](colCap),
		entries: *zeromap.New[Cell[R, C], V](entryCap),
	}
}

// fillMatrix builds rows × cols with x stored at every cell.
// Duplicate keys on either axis collapse to their first position.
// Complexity: O(|rows|·|cols|).
func fillMatrix[R, C comparable, V scalar.Scalar](rows []R, cols []C, x V, opts []Option) *Matrix[R, C, V] {
	o := gatherOptions(opts...)
	a := newMatrix[R, C, V](
		max(len(rows), o.rowCapacity),
		max(len(cols), o.colCapacity),
		max(len(rows)*len(cols), o.capacity),
	)
	for _, r := range rows {
		a.rows.Add(r)
	}
	for _, c := range cols {
		a.cols.Add(c)
	}
	for r := range a.rows.All() {
		for c := range a.cols.All() {
			a.entries.Set(Cell[R, C]{r, c}, x)
		}
	}

	return a
}

// NewMatrix returns a float64 zero matrix over rows × cols.
func NewMatrix[R, C comparable](rows []R, cols []C, opts ...Option) *Matrix[R, C, float64] {
	return NewMatrixOf[float64](rows, cols, opts...)
}

// NewMatrixOf is NewMatrix with an explicit value type.
func NewMatrixOf[V scalar.Scalar, R, C comparable](rows []R, cols []C, opts ...Option) *Matrix[R, C, V] {
	return fillMatrix(rows, cols, scalar.Zero[V](), opts)
}

// OnesMatrix returns a float64 matrix over rows × cols with every entry 1.
func OnesMatrix[R, C comparable](rows []R, cols []C, opts ...Option) *Matrix[R, C, float64] {
	return OnesMatrixOf[float64](rows, cols, opts...)
}

// OnesMatrixOf returns a matrix over rows × cols with every entry set to the unit of V.
func OnesMatrixOf[V scalar.Scalar, R, C comparable](rows []R, cols []C, opts ...Option) *Matrix[R, C, V] {
	return fillMatrix(rows, cols, scalar.One[V](), opts)
}

// Identity returns the float64 identity over domain × domain.
func Identity[K comparable](domain []K, opts ...Option) *Matrix[K, K, float64] {
	return IdentityOf[float64](domain, opts...)
}

// IdentityOf returns the identity over domain × domain: one on the diagonal,
// zero stored elsewhere.
func IdentityOf[V scalar.Scalar, K comparable](domain []K, opts ...Option) *Matrix[K, K, V] {
	a := fillMatrix(domain, domain, scalar.Zero[V](), opts)
	one := scalar.One[V]()
	for k := range a.rows.All() {
		a.entries.Set(Cell[K, K]{k, k}, one)
	}

	return a
}

// Get returns the value at (r, c), or zero when that cell is not stored.
// It never fails and never grows the key sets. Complexity: O(1).
func (a *Matrix[R, C, V]) Get(r R, c C) V { return a.entries.Get(Cell[R, C]{r, c}) }

// Set stores x at (r, c), appending r and c to their key sets when new.
// Only the (r, c) cell is stored; other cells on the new line stay implicit.
func (a *Matrix[R, C, V]) Set(r R, c C, x V) {
	a.rows.Add(r)
	a.cols.Add(c)
	a.entries.Set(Cell[R, C]{r, c}, x)
}

// AddRow appends r to the row keys without storing any cell and reports
// whether it was new.
func (a *Matrix[R, C, V]) AddRow(r R) bool { return a.rows.Add(r) }

// AddCol appends c to the column keys without storing any cell and reports
// whether it was new.
func (a *Matrix[R, C, V]) AddCol(c C) bool { return a.cols.Add(c) }

// Has reports whether the cell (r, c) is stored.
func (a *Matrix[R, C, V]) Has(r R, c C) bool { return a.entries.Has(Cell[R, C]{r, c}) }

// HasRow reports whether r is a row key.
func (a *Matrix[R, C, V]) HasRow(r R) bool { return a.rows.Has(r) }

// HasCol reports whether c is a column key.
func (a *Matrix[R, C, V]) HasCol(c C) bool { return a.cols.Has(c) }

// RowKeys returns the row keys in insertion order as a fresh slice.
func (a *Matrix[R, C, V]) RowKeys() []R { return a.rows.Keys() }

// ColKeys returns the column keys in insertion order as a fresh slice.
func (a *Matrix[R, C, V]) ColKeys() []C { return a.cols.Keys() }

// Rows returns the number of row keys.
func (a *Matrix[R, C, V]) Rows() int { return a.rows.Len() }

// Cols returns the number of column keys.
func (a *Matrix[R, C, V]) Cols() int { return a.cols.Len() }

// Len returns the number of stored cells.
func (a *Matrix[R, C, V]) Len() int { return a.entries.Len() }

// ValueType reports the element type tag of V.
func (a *Matrix[R, C, V]) ValueType() scalar.ValueType { return scalar.TypeOf[V]() }

// DeleteEntry drops the stored cell (r, c). The row and column keys stay.
func (a *Matrix[R, C, V]) DeleteEntry(r R, c C) { a.entries.Delete(Cell[R, C]{r, c}) }

// DeleteRow removes r from the row keys together with every cell on row r.
// Absent keys are a no-op. Complexity: O(stored cells).
func (a *Matrix[R, C, V]) DeleteRow(r R) {
	if !a.rows.Remove(r) {
		return
	}
	a.entries.DeleteFunc(func(cell Cell[R, C], _ V) bool { return cell.Row == r })
}

// DeleteCol removes c from the column keys together with every cell in column c.
func (a *Matrix[R, C, V]) DeleteCol(c C) {
	if !a.cols.Remove(c) {
		return
	}
	a.entries.DeleteFunc(func(cell Cell[R, C], _ V) bool { return cell.Col == c })
}

// All yields the stored cells in insertion order.
func (a *Matrix[R, C, V]) All() iter.Seq2[Cell[R, C], V] { return a.entries.All() }

// Row returns row r as a vector over the column keys (zero where unstored).
func (a *Matrix[R, C, V]) Row(r R) *Vector[C, V] {
	out := newVector[C, V](a.cols.Len())
	for c := range a.cols.All() {
		out.entries.Set(c, a.Get(r, c))
	}

	return out
}

// Col returns column c as a vector over the row keys.
func (a *Matrix[R, C, V]) Col(c C) *Vector[R, V] {
	out := newVector[R, V](a.rows.Len())
	for r := range a.rows.All() {
		out.entries.Set(r, a.Get(r, c))
	}

	return out
}

// Clone returns an independent copy with the same key orders.
func (a *Matrix[R, C, V]) Clone() *Matrix[R, C, V] {
	return &Matrix[R, C, V]{
		rows:    *a.rows.Clone(),
		cols:    *a.cols.Clone(),
		entries: *a.entries.Clone(),
	}
}
