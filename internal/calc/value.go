// SPDX-License-Identifier: MIT

package calc

import (
	"strconv"

	"github.com/katalvlaran/flexla/flex"
)

// Kind classifies a Value.
type Kind int

const (
	KindScalar Kind = iota + 1
	KindVector
	KindMatrix
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindVector:
		return "vector"
	case KindMatrix:
		return "matrix"
	default:
		return "invalid"
	}
}

// Real and complex containers keyed by the document's key text.
type (
	RealVector    = flex.Vector[string, float64]
	ComplexVector = flex.Vector[string, complex128]
	RealMatrix    = flex.Matrix[string, string, float64]
	ComplexMatrix = flex.Matrix[string, string, complex128]
)

// Value is an input or a result: a scalar, a vector or a matrix, each either
// real (float64) or complex (complex128). Exactly one payload field is set.
type Value struct {
	kind    Kind
	complex bool

	rs float64
	cs complex128
	rv *RealVector
	cv *ComplexVector
	rm *RealMatrix
	cm *ComplexMatrix
}

func realScalar(x float64) Value           { return Value{kind: KindScalar, rs: x} }
func complexScalar(x complex128) Value     { return Value{kind: KindScalar, complex: true, cs: x} }
func realVector(v *RealVector) Value       { return Value{kind: KindVector, rv: v} }
func complexVector(v *ComplexVector) Value { return Value{kind: KindVector, complex: true, cv: v} }
func realMatrix(m *RealMatrix) Value       { return Value{kind: KindMatrix, rm: m} }
func complexMatrix(m *ComplexMatrix) Value { return Value{kind: KindMatrix, complex: true, cm: m} }

// Kind reports what the value holds.
func (v Value) Kind() Kind { return v.kind }

// IsComplex reports whether the value type is complex128.
func (v Value) IsComplex() bool { return v.complex }

// TypeName is "float64" or "complex128".
func (v Value) TypeName() string {
	if v.complex {
		return TypeComplex128
	}

	return TypeFloat64
}

// Scalar returns a scalar value widened to complex128.
func (v Value) Scalar() (complex128, bool) {
	if v.kind != KindScalar {
		return 0, false
	}
	if v.complex {
		return v.cs, true
	}

	return complex(v.rs, 0), true
}

// Vector returns the value as a complex vector (cast when real).
func (v Value) Vector() (*ComplexVector, bool) {
	if v.kind != KindVector {
		return nil, false
	}
	c, err := v.complexVector()

	return c, err == nil
}

// Matrix returns the value as a complex matrix (cast when real).
func (v Value) Matrix() (*ComplexMatrix, bool) {
	if v.kind != KindMatrix {
		return nil, false
	}
	c, err := v.complexMatrix()

	return c, err == nil
}

func (v Value) complexVector() (*ComplexVector, error) {
	if v.complex {
		return v.cv, nil
	}

	return flex.Cast[complex128](v.rv)
}

func (v Value) complexMatrix() (*ComplexMatrix, error) {
	if v.complex {
		return v.cm, nil
	}

	return flex.CastMatrix[complex128](v.rm)
}

// String renders a scalar as a number and a container as its listing.
func (v Value) String() string {
	switch {
	case v.kind == KindScalar && v.complex:
		return formatComplex(v.cs)
	case v.kind == KindScalar:
		return formatReal(v.rs)
	case v.rv != nil:
		return v.rv.String()
	case v.cv != nil:
		return v.cv.String()
	case v.rm != nil:
		return v.rm.String()
	case v.cm != nil:
		return v.cm.String()
	default:
		return "<nil>"
	}
}

func formatReal(x float64) string       { return strconv.FormatFloat(x, 'g', -1, 64) }
func formatComplex(x complex128) string { return strconv.FormatComplex(x, 'g', -1, 128) }

// parseReal and parseComplex accept any Go numeric literal form strconv does.
func parseReal(s string) (float64, error) {
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, calcErrorf(strconv.Quote(s), ErrBadValue)
	}

	return x, nil
}

func parseComplex(s string) (complex128, error) {
	x, err := strconv.ParseComplex(s, 128)
	if err != nil {
		return 0, calcErrorf(strconv.Quote(s), ErrBadValue)
	}

	return x, nil
}
