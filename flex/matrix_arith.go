// SPDX-License-Identifier: MIT

package flex

import (
	"fmt"

	"github.com/katalvlaran/flexla/matrix"
	"github.com/katalvlaran/flexla/scalar"
	"github.com/katalvlaran/flexla/zeromap"
)

// ---------- key ↔ position alignment ----------

// positions maps each key to its index in keys.
func positions[K comparable](keys []K) map[K]int {
	pos := make(map[K]int, len(keys))
	for i, k := range keys {
		pos[k] = i
	}

	return pos
}

// denseOn lays a out on the positional grid rows × cols. Stored cells whose
// keys are not on the grid are left out; grid cells a does not store are zero.
// Complexity: O(|rows|·|cols| + stored cells).
func denseOn[R, C comparable, V scalar.Scalar](a *Matrix[R, C, V], rows []R, cols []C) *matrix.Dense[V] {
	d := mustKernel(matrix.Zeros[V](len(rows), len(cols)))
	ri, ci := positions(rows), positions(cols)
	for cell, x := range a.entries.All() {
		i, okR := ri[cell.Row]
		j, okC := ci[cell.Col]
		if okR && okC {
			mustAlign(d.Set(i, j, x))
		}
	}

	return d
}

// fromDenseOn is the inverse of denseOn: every grid cell of d is stored
// under its (rows[i], cols[j]) key.
func fromDenseOn[R, C comparable, V scalar.Scalar](d *matrix.Dense[V], rows []R, cols []C) *Matrix[R, C, V] {
	out := newMatrix[R, C, V](len(rows), len(cols), len(rows)*len(cols))
	for _, r := range rows {
		out.rows.Add(r)
	}
	for _, c := range cols {
		out.cols.Add(c)
	}
	d.Do(func(i, j int, x V) bool {
		out.entries.Set(Cell[R, C]{rows[i], cols[j]}, x)
		return true
	})

	return out
}

// mustKernel unwraps a dense kernel result whose shapes were aligned by the
// caller. An error here means the alignment itself is broken.
func mustKernel[T any](x T, err error) T {
	mustAlign(err)

	return x
}

func mustAlign(err error) {
	if err != nil {
		panic(fmt.Sprintf("flex: misaligned dense operands: %v", err))
	}
}

// ---------- arithmetic ----------

// addSub aligns a and b on (rows(a) ∪ rows(b)) × (cols(a) ∪ cols(b)) and
// runs the positional kernel. Every cell of the union grid is stored.
// Complexity: O(|R∪|·|C∪|).
func addSub[R, C comparable, V scalar.Scalar](a, b *Matrix[R, C, V], subtract bool) *Matrix[R, C, V] {
	rows := zeromap.Union(a.rows.Keys(), b.rows.Keys())
	cols := zeromap.Union(a.cols.Keys(), b.cols.Keys())
	da, db := denseOn(a, rows, cols), denseOn(b, rows, cols)

	kernel := matrix.Add[V]
	if subtract {
		kernel = matrix.Sub[V]
	}

	return fromDenseOn(mustKernel(kernel(da, db)), rows, cols)
}

// Add returns a + b. Row keys and column keys are unioned independently
// (a's keys first); a cell missing from either side counts as zero.
func (a *Matrix[R, C, V]) Add(b *Matrix[R, C, V]) *Matrix[R, C, V] { return addSub(a, b, false) }

// Sub returns a - b over the same union grid as Add.
func (a *Matrix[R, C, V]) Sub(b *Matrix[R, C, V]) *Matrix[R, C, V] { return addSub(a, b, true) }

// mapCells applies f to every stored cell, keeping both key sets.
func mapCells[R, C comparable, A, T scalar.Scalar](a *Matrix[R, C, A], f func(A) T) *Matrix[R, C, T] {
	out := &Matrix[R, C, T]{
		rows:    *a.rows.Clone(),
		cols:    *a.cols.Clone(),
		entries: *zeromap.New[Cell[R, C], T](a.entries.Len()),
	}
	for cell, x := range a.entries.All() {
		out.entries.Set(cell, f(x))
	}

	return out
}

// Scale returns c·a over a's stored cells; key sets are unchanged.
func (a *Matrix[R, C, V]) Scale(c V) *Matrix[R, C, V] {
	return mapCells(a, func(x V) V { return c * x })
}

// Neg returns -a over a's stored cells.
func (a *Matrix[R, C, V]) Neg() *Matrix[R, C, V] {
	return mapCells(a, func(x V) V { return -x })
}

// Transpose returns aᵀ: row keys become column keys and every stored cell
// (r, c) moves to (c, r).
func (a *Matrix[R, C, V]) Transpose() *Matrix[C, R, V] {
	out := &Matrix[C, R, V]{
		rows:    *a.cols.Clone(),
		cols:    *a.rows.Clone(),
		entries: *zeromap.New[Cell[C, R], V](a.entries.Len()),
	}
	for cell, x := range a.entries.All() {
		out.entries.Set(Cell[C, R]{cell.Col, cell.Row}, x)
	}

	return out
}

// MulVec returns a·v as a vector over a's row keys.
// MAIN DESCRIPTION:
//   - result[r] = Σ a[r,c]·v[c] for c in cols(a) ∪ keys(v).
//   - A vector with keys a lacks (or lacking keys a has) is not an error;
//     the unmatched terms are zero.
//
// Implementation:
//   - Stage 1: inner = cols(a) ∪ keys(v).
//   - Stage 2: lay a out on rows(a) × inner and v on inner.
//   - Stage 3: positional MatVec, then re-key by rows(a).
//
// Complexity: O(|rows(a)|·|inner|).
func MulVec[R, C comparable, V scalar.Scalar](a *Matrix[R, C, V], v *Vector[C, V]) *Vector[R, V] {
	rows := a.rows.Keys()
	inner := zeromap.Union(a.cols.Keys(), v.entries.Keys())
	x := make([]V, len(inner))
	for i, c := range inner {
		x[i] = v.entries.Get(c)
	}
	y := mustKernel(matrix.MatVec[V](denseOn(a, rows, inner), x))

	out := newVector[R, V](len(rows))
	for i, r := range rows {
		out.entries.Set(r, y[i])
	}

	return out
}

// Mul returns a·b with rows(a) × cols(b) as the result key sets, contracting
// over cols(a) ∪ rows(b). Every cell of the result grid is stored.
// Complexity: O(|rows(a)|·|inner|·|cols(b)|).
func Mul[R, M, C comparable, V scalar.Scalar](a *Matrix[R, M, V], b *Matrix[M, C, V]) *Matrix[R, C, V] {
	rows, cols := a.rows.Keys(), b.cols.Keys()
	inner := zeromap.Union(a.cols.Keys(), b.rows.Keys())
	p := mustKernel(matrix.Mul[V](denseOn(a, rows, inner), denseOn(b, inner, cols)))

	return fromDenseOn(p, rows, cols)
}

// ---------- equality ----------

// Equal reports whether a and b have the same row and column key sets (in
// any order) and agree at every cell either of them stores.
func (a *Matrix[R, C, V]) Equal(b *Matrix[R, C, V]) bool {
	return sameCells(a, b, func(x, y V) bool { return x == y })
}

// ApproxEqualMatrix is Equal with |a[r,c] - b[r,c]| <= eps per cell.
// A negative eps is treated as 0.
func ApproxEqualMatrix[R, C comparable, V scalar.Scalar](a, b *Matrix[R, C, V], eps float64) bool {
	eps = max(eps, 0)

	return sameCells(a, b, func(x, y V) bool { return withinEps(x, y, eps) })
}

func sameCells[R, C comparable, V scalar.Scalar](a, b *Matrix[R, C, V], eq func(V, V) bool) bool {
	if !sameKeys(&a.rows, &b.rows) || !sameKeys(&a.cols, &b.cols) {
		return false
	}
	for cell, x := range a.entries.All() {
		if !eq(x, b.entries.Get(cell)) {
			return false
		}
	}
	for cell, y := range b.entries.All() {
		if !a.entries.Has(cell) && !eq(scalar.Zero[V](), y) {
			return false
		}
	}

	return true
}

// sameKeys compares two key sets ignoring order.
func sameKeys[K comparable](s, t *zeromap.KeySet[K]) bool {
	if s.Len() != t.Len() {
		return false
	}
	for k := range s.All() {
		if !t.Has(k) {
			return false
		}
	}

	return true
}
