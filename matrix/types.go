// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/flexla/scalar"

// Matrix represents a two-dimensional mutable array of V values addressed by
// 0-based positions.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix[V scalar.Scalar] interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (V, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v V) error

	// Clone returns a deep copy of the matrix, independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix[V]
}
