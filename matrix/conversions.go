// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/flexla/scalar"

// FromRows builds a Dense from row slices (copied, row-major).
// An empty input yields a legal 0×0 matrix; rows of length zero yield r×0.
// Errors: ErrBadShape when rows are ragged.
// Complexity: O(r*c).
func FromRows[V scalar.Scalar](rows [][]V) (*Dense[V], error) {
	if err := ValidateRectangular(rows); err != nil {
		return nil, matrixErrorf("FromRows", err)
	}
	r, c := len(rows), 0
	if r > 0 {
		c = len(rows[0])
	}
	m, err := newDenseZeroOK[V](r, c)
	if err != nil {
		return nil, matrixErrorf("FromRows", err)
	}
	for i, row := range rows {
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// ToRows returns the matrix as freshly allocated row slices.
// Complexity: O(r*c).
func (m *Dense[V]) ToRows() [][]V {
	out := make([][]V, m.r)
	for i := range out {
		out[i] = make([]V, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}
