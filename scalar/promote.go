// SPDX-License-Identifier: MIT

package scalar

import "fmt"

// signedBySize lists the sized signed types in ascending width.
var signedBySize = [...]ValueType{Int8, Int16, Int32, Int64}

// Promote resolves the common type of a and b.
// MAIN DESCRIPTION:
//   - Return the narrowest supported type that represents every value of both
//     operands (exactly for integer mixes, by standard numeric promotion once a
//     float or complex operand is involved).
//
// Implementation:
//   - Stage 1: reject unknown tags; identical tags promote to themselves.
//   - Stage 2: complex wins: promote the real components, then lift to complex.
//   - Stage 3: float wins over integer; float32 survives only next to ≤16-bit integers.
//   - Stage 4: same-signedness integers take the wider type.
//   - Stage 5: mixed signedness takes the narrowest signed type strictly wider
//     than the unsigned side; uint64 (and word-size uint) have none.
//
// Behavior highlights:
//   - Symmetric: Promote(a,b) == Promote(b,a).
//   - On equal width, a sized type (int64) is preferred over the word-size one (int).
//
// Errors:
//   - ErrUnknownValueType for an invalid tag.
//   - ErrPromotionUndefined when no common type exists.
//
// Complexity:
//   - Time O(1), Space O(1).
func Promote(a, b ValueType) (ValueType, error) {
	if !a.Valid() || !b.Valid() {
		return Invalid, scalarErrorf(fmt.Sprintf("Promote(%s,%s)", a, b), ErrUnknownValueType)
	}
	if a == b {
		return a, nil
	}

	switch {
	case a.IsComplex() || b.IsComplex():
		r, err := Promote(realOf(a), realOf(b))
		if err != nil {
			return Invalid, err
		}
		if r == Float32 {
			return Complex64, nil
		}

		return Complex128, nil

	case a.IsFloat() || b.IsFloat():
		if a.IsFloat() && b.IsFloat() {
			return Float64, nil // distinct floats: one of them is float64
		}
		f, i := a, b
		if b.IsFloat() {
			f, i = b, a
		}
		if f == Float32 && i.Bits() <= 16 {
			return Float32, nil
		}

		return Float64, nil

	case a.IsSigned() == b.IsSigned():
		return wider(a, b), nil
	}

	// Mixed signedness.
	s, u := a, b
	if u.IsSigned() {
		s, u = b, a
	}
	for _, c := range signedBySize {
		if c.Bits() > u.Bits() && c.Bits() >= s.Bits() {
			return c, nil
		}
	}

	return Invalid, scalarErrorf(fmt.Sprintf("Promote(%s,%s)", a, b), ErrPromotionUndefined)
}

// PromoteOf is Promote on the tags of A and B.
func PromoteOf[A, B Scalar]() (ValueType, error) {
	return Promote(TypeOf[A](), TypeOf[B]())
}

// CanHold reports whether dst represents every value of src, i.e. promoting
// src with dst yields dst.
func CanHold(dst, src ValueType) bool {
	p, err := Promote(src, dst)

	return err == nil && p == dst
}

// Resolve checks that R can hold the promotion of A and B and returns the
// promoted tag. It is the single gate used by mixed-type container kernels.
// Errors: ErrPromotionUndefined (wrapped) when the pair has no common type or
// R is narrower than it.
func Resolve[R, A, B Scalar]() (ValueType, error) {
	p, err := PromoteOf[A, B]()
	if err != nil {
		return Invalid, err
	}
	r := TypeOf[R]()
	if !CanHold(r, p) {
		return Invalid, scalarErrorf(fmt.Sprintf("Resolve(%s<-%s)", r, p), ErrPromotionUndefined)
	}

	return p, nil
}

// realOf maps a complex tag to its component type and leaves others as is.
func realOf(t ValueType) ValueType {
	switch t {
	case Complex64:
		return Float32
	case Complex128:
		return Float64
	default:
		return t
	}
}

// wider picks the wider of two same-signedness integer tags.
func wider(a, b ValueType) ValueType {
	switch {
	case a.Bits() > b.Bits():
		return a
	case b.Bits() > a.Bits():
		return b
	case a == Int || a == Uint:
		return b
	default:
		return a
	}
}
