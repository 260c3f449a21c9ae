// SPDX-License-Identifier: MIT

package flex

import "github.com/katalvlaran/flexla/scalar"

// Mixed value types.
//
// Go arithmetic needs one element type, so combining containers of different
// value types names the result type explicitly:
//
//	s, err := flex.AddAs[complex128](realVec, complexVec)
//
// Every helper first checks scalar.Resolve: the operand types must promote to
// a common type and T must be able to hold it. T is normally that promoted
// type; a wider T is accepted and the result is computed in T, so
// AddAs[complex128] of two int8 vectors is a valid widening. A T narrower
// than the promoted type is rejected. On failure the error wraps
// ErrTypePromotionUndefined and nothing is computed. scalar.PromoteOf names
// the promoted type when the caller wants exactly that.

// resolve is the gate shared by every *As helper.
func resolve[T, A, B scalar.Scalar](tag string) error {
	if _, err := scalar.Resolve[T, A, B](); err != nil {
		return flexErrorf(tag, err)
	}

	return nil
}

// Cast converts every entry of v to T, keeping keys and order.
// Errors: ErrTypePromotionUndefined when T cannot hold A (narrowing).
func Cast[T scalar.Scalar, K comparable, A scalar.Scalar](v *Vector[K, A]) (*Vector[K, T], error) {
	if err := resolve[T, A, A]("Cast"); err != nil {
		return nil, err
	}

	return mapEntries(v, scalar.Convert[T, A]), nil
}

// AddAs returns v + w with values of type T over keys(v) ∪ keys(w).
// T must hold the promotion of A and B; it may be wider.
func AddAs[T scalar.Scalar, K comparable, A, B scalar.Scalar](v *Vector[K, A], w *Vector[K, B]) (*Vector[K, T], error) {
	if err := resolve[T, A, B]("AddAs"); err != nil {
		return nil, err
	}

	return zipUnion(v, w, func(a A, b B) T { return scalar.Convert[T](a) + scalar.Convert[T](b) }), nil
}

// SubAs returns v - w with values of type T over keys(v) ∪ keys(w).
func SubAs[T scalar.Scalar, K comparable, A, B scalar.Scalar](v *Vector[K, A], w *Vector[K, B]) (*Vector[K, T], error) {
	if err := resolve[T, A, B]("SubAs"); err != nil {
		return nil, err
	}

	return zipUnion(v, w, func(a A, b B) T { return scalar.Convert[T](a) - scalar.Convert[T](b) }), nil
}

// ScaleAs returns c·v with values of type T; the key set is v's.
func ScaleAs[T scalar.Scalar, S scalar.Scalar, K comparable, A scalar.Scalar](c S, v *Vector[K, A]) (*Vector[K, T], error) {
	if err := resolve[T, S, A]("ScaleAs"); err != nil {
		return nil, err
	}
	ct := scalar.Convert[T](c)

	return mapEntries(v, func(a A) T { return ct * scalar.Convert[T](a) }), nil
}

// DotAs returns Σ conj(v[k])·w[k] in T over keys(v) ∪ keys(w).
// Conjugation happens after conversion, so a real v against a complex w
// still yields the Hermitian product.
func DotAs[T scalar.Scalar, K comparable, A, B scalar.Scalar](v *Vector[K, A], w *Vector[K, B]) (T, error) {
	if err := resolve[T, A, B]("DotAs"); err != nil {
		var zero T

		return zero, err
	}

	return dotUnion(v, w,
		func(a A) T { return scalar.Conj(scalar.Convert[T](a)) },
		scalar.Convert[T, B],
	), nil
}

// CastMatrix converts every stored cell of a to T, keeping both key sets.
func CastMatrix[T scalar.Scalar, R, C comparable, A scalar.Scalar](a *Matrix[R, C, A]) (*Matrix[R, C, T], error) {
	if err := resolve[T, A, A]("CastMatrix"); err != nil {
		return nil, err
	}

	return mapCells(a, scalar.Convert[T, A]), nil
}

// AddMatrixAs returns a + b in T over the independent row and column unions.
func AddMatrixAs[T scalar.Scalar, R, C comparable, A, B scalar.Scalar](a *Matrix[R, C, A], b *Matrix[R, C, B]) (*Matrix[R, C, T], error) {
	if err := resolve[T, A, B]("AddMatrixAs"); err != nil {
		return nil, err
	}

	return addSub(mapCells(a, scalar.Convert[T, A]), mapCells(b, scalar.Convert[T, B]), false), nil
}

// SubMatrixAs returns a - b in T over the independent row and column unions.
func SubMatrixAs[T scalar.Scalar, R, C comparable, A, B scalar.Scalar](a *Matrix[R, C, A], b *Matrix[R, C, B]) (*Matrix[R, C, T], error) {
	if err := resolve[T, A, B]("SubMatrixAs"); err != nil {
		return nil, err
	}

	return addSub(mapCells(a, scalar.Convert[T, A]), mapCells(b, scalar.Convert[T, B]), true), nil
}

// MulAs returns a·b in T, contracting over cols(a) ∪ rows(b).
func MulAs[T scalar.Scalar, R, M, C comparable, A, B scalar.Scalar](a *Matrix[R, M, A], b *Matrix[M, C, B]) (*Matrix[R, C, T], error) {
	if err := resolve[T, A, B]("MulAs"); err != nil {
		return nil, err
	}

	return Mul(mapCells(a, scalar.Convert[T, A]), mapCells(b, scalar.Convert[T, B])), nil
}

// MulVecAs returns a·v in T over a's row keys, contracting over cols(a) ∪ keys(v).
func MulVecAs[T scalar.Scalar, R, C comparable, A, B scalar.Scalar](a *Matrix[R, C, A], v *Vector[C, B]) (*Vector[R, T], error) {
	if err := resolve[T, A, B]("MulVecAs"); err != nil {
		return nil, err
	}

	return MulVec(mapCells(a, scalar.Convert[T, A]), mapEntries(v, scalar.Convert[T, B])), nil
}
