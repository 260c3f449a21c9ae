// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic test fixtures and utilities for kernels.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/flexla/matrix"
	"github.com/katalvlaran/flexla/scalar"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels onto their interface fallback path.
type hide[V scalar.Scalar] struct{ matrix.Matrix[V] }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense[V scalar.Scalar](t *testing.T, r, c int) *matrix.Dense[V] {
	t.Helper()
	m, err := matrix.NewDense[V](r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// NewFilledDense allocates an r×c *Dense filled row-major from vals.
func NewFilledDense[V scalar.Scalar](t *testing.T, r, c int, vals []V) *matrix.Dense[V] {
	t.Helper()
	if len(vals) != r*c {
		t.Fatalf("NewFilledDense: need %d values, got %d", r*c, len(vals))
	}
	m := MustDense[V](t, r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if err := m.Set(i, j, vals[i*c+j]); err != nil {
				t.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt[V scalar.Scalar](t *testing.T, m matrix.Matrix[V], i, j int) V {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}
