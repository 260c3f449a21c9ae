// SPDX-License-Identifier: MIT

// Package flex provides vectors and matrices indexed by arbitrary comparable
// keys instead of contiguous integer ranges.
//
// Every container treats an absent key as the zero of its value type:
//
//   - Get never fails and never grows the container.
//   - Set stores the value and appends the key when it is new.
//   - Binary arithmetic (Add, Sub, Dot, Mul, MulVec) runs over the union of
//     the operand key sets; the side that lacks a key contributes zero.
//     Differing key sets are never a dimension error.
//
// Key order is insertion order. A binary result lists the left operand's
// keys first, then the right operand's keys it had not seen.
//
// Same-type arithmetic lives on the containers and cannot fail. Mixing value
// types goes through the *As helpers (AddAs, DotAs, MulAs, ...), which check
// the promotion table of package scalar and return ErrTypePromotionUndefined
// when the operand types have no common type or the requested result type
// cannot hold it:
//
//	v := flex.NewVectorOf[complex128]([]string{"x"})
//	w := flex.Ones([]string{"x", "y"})
//	s, err := flex.AddAs[complex128](v, w) // float64 + complex128 -> complex128
//
// Containers are not safe for concurrent mutation; callers serialize shared
// use. Results never alias their operands.
package flex
