// SPDX-License-Identifier: MIT

// Package scalar describes the numeric value types that flex containers can
// hold and the rules for combining them.
//
// The package provides:
//
//   - Scalar, the type-set constraint of supported element types
//     (fixed-width and word-size integers, float32/float64, complex64/complex128).
//   - ValueType, a runtime tag for each element type, and TypeOf to obtain it.
//   - Promote, the promotion table used when two containers of different
//     element types are combined. Pairs with no lossless common type fail with
//     ErrPromotionUndefined.
//   - Small generic helpers (Zero, One, Conj, Abs, Convert) used by the
//     container kernels.
//
// The additive identity of every supported type is its Go zero value, so a
// container never needs to be told what "zero" is.
package scalar
