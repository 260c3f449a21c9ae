// SPDX-License-Identifier: MIT

package scalar

import (
	"math"
	"math/cmplx"
)

// Zero returns the additive identity of V (its Go zero value).
func Zero[V Scalar]() V {
	var z V

	return z
}

// One returns the multiplicative identity of V.
func One[V Scalar]() V { return V(1) }

// IsZero reports whether v equals the additive identity of V.
func IsZero[V Scalar](v V) bool { return v == Zero[V]() }

// Conj returns the complex conjugate of v; for real types it returns v.
// Complexity: O(1).
func Conj[V Scalar](v V) V {
	switch x := any(v).(type) {
	case complex64:
		return any(complex(real(x), -imag(x))).(V)
	case complex128:
		return any(cmplx.Conj(x)).(V)
	}

	return v
}

// Abs returns |v| as float64 (the modulus for complex types).
func Abs[V Scalar](v V) float64 {
	switch x := any(v).(type) {
	case complex64:
		return cmplx.Abs(complex128(x))
	case complex128:
		return cmplx.Abs(x)
	}

	return math.Abs(toFloat64(v))
}

// Convert converts a to R.
// MAIN DESCRIPTION:
//   - Generic value conversion that Go's conversion rules do not allow directly
//     between type parameters whose sets mix real and complex types.
//
// Behavior highlights:
//   - Integer→integer goes through int64/uint64 and is exact whenever
//     CanHold(TypeOf[R](), TypeOf[A]()).
//   - Real→complex uses a zero imaginary part; complex→real keeps the real part.
//
// Complexity:
//   - Time O(1), Space O(1).
func Convert[R, A Scalar](a A) R {
	var out R
	switch p := any(&out).(type) {
	case *int:
		*p = int(toInt64(a))
	case *int8:
		*p = int8(toInt64(a))
	case *int16:
		*p = int16(toInt64(a))
	case *int32:
		*p = int32(toInt64(a))
	case *int64:
		*p = toInt64(a)
	case *uint:
		*p = uint(toUint64(a))
	case *uint8:
		*p = uint8(toUint64(a))
	case *uint16:
		*p = uint16(toUint64(a))
	case *uint32:
		*p = uint32(toUint64(a))
	case *uint64:
		*p = toUint64(a)
	case *float32:
		*p = float32(toFloat64(a))
	case *float64:
		*p = toFloat64(a)
	case *complex64:
		*p = complex64(toComplex128(a))
	case *complex128:
		*p = toComplex128(a)
	}

	return out
}

func toInt64[A Scalar](a A) int64 {
	switch x := any(a).(type) {
	case int:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case int64:
		return x
	case uint:
		return int64(x)
	case uint8:
		return int64(x)
	case uint16:
		return int64(x)
	case uint32:
		return int64(x)
	case uint64:
		return int64(x)
	case float32:
		return int64(x)
	case float64:
		return int64(x)
	case complex64:
		return int64(real(x))
	case complex128:
		return int64(real(x))
	}

	return 0
}

func toUint64[A Scalar](a A) uint64 {
	switch x := any(a).(type) {
	case uint:
		return uint64(x)
	case uint8:
		return uint64(x)
	case uint16:
		return uint64(x)
	case uint32:
		return uint64(x)
	case uint64:
		return x
	case float32:
		return uint64(x)
	case float64:
		return uint64(x)
	case complex64:
		return uint64(real(x))
	case complex128:
		return uint64(real(x))
	}

	return uint64(toInt64(a)) // signed sources
}

func toFloat64[A Scalar](a A) float64 {
	switch x := any(a).(type) {
	case int:
		return float64(x)
	case int8:
		return float64(x)
	case int16:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case uint:
		return float64(x)
	case uint8:
		return float64(x)
	case uint16:
		return float64(x)
	case uint32:
		return float64(x)
	case uint64:
		return float64(x)
	case float32:
		return float64(x)
	case float64:
		return x
	case complex64:
		return float64(real(x))
	case complex128:
		return real(x)
	}

	return 0
}

func toComplex128[A Scalar](a A) complex128 {
	switch x := any(a).(type) {
	case complex64:
		return complex128(x)
	case complex128:
		return x
	}

	return complex(toFloat64(a), 0)
}
