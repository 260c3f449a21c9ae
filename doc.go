// SPDX-License-Identifier: MIT

// Package flexla is linear algebra over arbitrary keys: vectors and matrices
// indexed by any comparable type, where every key that is not stored reads
// as zero.
//
// What is in the box?
//
//   - Keyed containers: vectors keyed by K, matrices keyed by (R, C)
//   - Implicit zero: reads never fail and never insert
//   - Union arithmetic: a+b is defined on the union of both key sets
//   - Hermitian dot: the first operand is conjugated for complex values
//   - Type promotion: mixed element types meet in an explicit result type
//   - Dense bridge: to and from slices and row-major matrices
//
// Layout:
//
//	scalar/        element types, promotion table, conj/abs/convert
//	zeromap/       insertion-ordered key sets and zero-default maps
//	matrix/        generic row-major Dense kernels (add, sub, mul, matvec)
//	flex/          Vector and Matrix over arbitrary keys
//	internal/calc/ YAML documents of vectors, matrices and ops
//	cmd/flexcalc/  command line evaluator for those documents
//
// Quick example:
//
//	v := flex.Ones([]int{1, 2}) // {1: 1, 2: 1}
//	w := flex.Ones([]int{2, 3}) // {2: 1, 3: 1}
//	v.Add(w)                    // {1: 1, 2: 2, 3: 1}
//	v.Get(42)                   // 0, and 42 is still not stored
//
//	go get github.com/katalvlaran/flexla/flex
package flexla
