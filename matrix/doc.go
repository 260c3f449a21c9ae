// SPDX-License-Identifier: MIT

// Package matrix offers positional (0-based, contiguous) dense matrices over
// any scalar.Scalar element type.
//
// The matrix package provides:
//
//   - Dense, a row-major matrix stored in one flat slice.
//   - Safe accessors: At/Set return ErrOutOfRange instead of panicking.
//   - Deterministic kernels (Add, Sub, Mul, MatVec, Transpose) with a *Dense
//     fast-path and an interface fallback.
//   - Converters between Dense and plain [][]V row slices.
//
// Dense is the positional counterpart of flex.Matrix: flex aligns arbitrary
// keys onto index ranges and delegates contraction kernels to this package.
package matrix
