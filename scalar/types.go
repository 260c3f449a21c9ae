// SPDX-License-Identifier: MIT

package scalar

import "math/bits"

// Scalar is the set of element types a container may hold.
// Only exact (non-~) types are listed so that runtime type switches in the
// helpers below are exhaustive.
type Scalar interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64 |
		complex64 | complex128
}

// ValueType is the runtime tag of a Scalar type.
type ValueType uint8

// Supported value types. Invalid is the zero ValueType.
const (
	Invalid ValueType = iota
	Int
	Int8
	Int16
	Int32
	Int64
	Uint
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
	Complex64
	Complex128
)

var valueTypeNames = [...]string{
	Invalid:    "invalid",
	Int:        "int",
	Int8:       "int8",
	Int16:      "int16",
	Int32:      "int32",
	Int64:      "int64",
	Uint:       "uint",
	Uint8:      "uint8",
	Uint16:     "uint16",
	Uint32:     "uint32",
	Uint64:     "uint64",
	Float32:    "float32",
	Float64:    "float64",
	Complex64:  "complex64",
	Complex128: "complex128",
}

// String returns the Go spelling of the type ("float64", "complex128", ...).
func (t ValueType) String() string {
	if int(t) < len(valueTypeNames) {
		return valueTypeNames[t]
	}

	return valueTypeNames[Invalid]
}

// Valid reports whether t names a supported type.
func (t ValueType) Valid() bool { return t > Invalid && t <= Complex128 }

// IsSigned reports whether t is a signed integer type.
func (t ValueType) IsSigned() bool { return t >= Int && t <= Int64 }

// IsUnsigned reports whether t is an unsigned integer type.
func (t ValueType) IsUnsigned() bool { return t >= Uint && t <= Uint64 }

// IsInteger reports whether t is any integer type.
func (t ValueType) IsInteger() bool { return t.IsSigned() || t.IsUnsigned() }

// IsFloat reports whether t is float32 or float64.
func (t ValueType) IsFloat() bool { return t == Float32 || t == Float64 }

// IsComplex reports whether t is complex64 or complex128.
func (t ValueType) IsComplex() bool { return t == Complex64 || t == Complex128 }

// Bits returns the storage width of t in bits. int and uint report the
// platform word size. Complex types report the width of one component.
func (t ValueType) Bits() int {
	switch t {
	case Int8, Uint8:
		return 8
	case Int16, Uint16:
		return 16
	case Int32, Uint32, Float32, Complex64:
		return 32
	case Int64, Uint64, Float64, Complex128:
		return 64
	case Int, Uint:
		return bits.UintSize
	default:
		return 0
	}
}

// TypeOf returns the ValueType tag of V.
// Complexity: O(1).
func TypeOf[V Scalar]() ValueType {
	var zero V
	switch any(zero).(type) {
	case int:
		return Int
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case uint:
		return Uint
	case uint8:
		return Uint8
	case uint16:
		return Uint16
	case uint32:
		return Uint32
	case uint64:
		return Uint64
	case float32:
		return Float32
	case float64:
		return Float64
	case complex64:
		return Complex64
	case complex128:
		return Complex128
	}

	return Invalid
}
