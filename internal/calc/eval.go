// SPDX-License-Identifier: MIT

package calc

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/flexla/flex"
)

// Result is the value an op bound to its name.
type Result struct {
	Name  string
	Op    string
	Value Value
}

const opInput = "input"

type evalFunc func(op Op, args []Value) (Value, error)

type opSpec struct {
	arity int
	eval  evalFunc
}

// operations is the op table; every entry is reachable from a document.
var operations = map[string]opSpec{
	"add":       {2, evalAddSub(false)},
	"sub":       {2, evalAddSub(true)},
	"scale":     {1, evalScale},
	"neg":       {1, evalNeg},
	"sum":       {1, evalSum},
	"dot":       {2, evalDot},
	"mul":       {2, evalMul},
	"mulvec":    {2, evalMulVec},
	"transpose": {1, evalTranspose},
}

// Inputs builds the vectors and matrices declared by doc, in declaration
// order. Their Op is "input".
// Errors: ErrBadValue.
func Inputs(doc *Document) ([]Result, error) {
	inputs := make([]Result, 0, len(doc.Vectors)+len(doc.Matrices))
	for _, def := range doc.Vectors {
		v, err := buildVector(def)
		if err != nil {
			return nil, calcErrorf("vector "+def.Name, err)
		}
		inputs = append(inputs, Result{Name: def.Name, Op: opInput, Value: v})
		slog.Debug("Built vector", "name", def.Name, "type", v.TypeName(), "entries", len(def.Entries))
	}
	for _, def := range doc.Matrices {
		m, err := buildMatrix(def)
		if err != nil {
			return nil, calcErrorf("matrix "+def.Name, err)
		}
		inputs = append(inputs, Result{Name: def.Name, Op: opInput, Value: m})
		slog.Debug("Built matrix", "name", def.Name, "type", m.TypeName(), "entries", len(def.Entries))
	}

	return inputs, nil
}

// Evaluate builds the inputs of doc and runs its ops in order. Each op may
// use any input or earlier result as an argument.
// Errors: ErrBadValue while building inputs, ErrUnknownName, ErrOperandKind,
// or a flex promotion error; evaluation stops at the first failure.
func Evaluate(doc *Document) ([]Result, error) {
	inputs, err := Inputs(doc)
	if err != nil {
		return nil, err
	}
	env := make(map[string]Value, len(inputs)+len(doc.Ops))
	for _, in := range inputs {
		env[in.Name] = in.Value
	}

	results := make([]Result, 0, len(doc.Ops))
	for _, op := range doc.Ops {
		spec, ok := operations[op.Op]
		if !ok {
			return nil, calcErrorf("op "+op.Name, ErrUnknownOp)
		}
		args := make([]Value, len(op.Args))
		for i, name := range op.Args {
			v, ok := env[name]
			if !ok {
				return nil, calcErrorf(fmt.Sprintf("op %s: arg %q", op.Name, name), ErrUnknownName)
			}
			args[i] = v
		}
		if len(args) != spec.arity {
			return nil, calcErrorf("op "+op.Name, ErrArity)
		}
		out, err := spec.eval(op, args)
		if err != nil {
			return nil, calcErrorf(fmt.Sprintf("op %s (%s)", op.Name, op.Op), err)
		}
		env[op.Name] = out
		results = append(results, Result{Name: op.Name, Op: op.Op, Value: out})
		slog.Debug("Evaluated op", "name", op.Name, "op", op.Op, "kind", out.Kind(), "type", out.TypeName())
	}

	return results, nil
}

// ---------- inputs ----------

func buildVector(def VectorDef) (Value, error) {
	if def.Type == TypeComplex128 {
		var v *ComplexVector
		if def.Fill == FillOne {
			v = flex.OnesOf[complex128](def.Domain)
		} else {
			v = flex.NewVectorOf[complex128](def.Domain)
		}
		for _, e := range def.Entries {
			x, err := parseComplex(e.Value)
			if err != nil {
				return Value{}, err
			}
			v.Set(e.Key, x)
		}

		return complexVector(v), nil
	}

	var v *RealVector
	if def.Fill == FillOne {
		v = flex.Ones(def.Domain)
	} else {
		v = flex.NewVector(def.Domain)
	}
	for _, e := range def.Entries {
		x, err := parseReal(e.Value)
		if err != nil {
			return Value{}, err
		}
		v.Set(e.Key, x)
	}

	return realVector(v), nil
}

func buildMatrix(def MatrixDef) (Value, error) {
	if def.Type == TypeComplex128 {
		var m *ComplexMatrix
		switch def.Fill {
		case FillOne:
			m = flex.OnesMatrixOf[complex128](def.Rows, def.Cols)
		case FillIdentity:
			m = flex.IdentityOf[complex128](def.Rows)
		default:
			m = flex.NewMatrixOf[complex128](def.Rows, def.Cols)
		}
		for _, r := range def.EntryRows {
			m.AddRow(r)
		}
		for _, e := range def.Entries {
			x, err := parseComplex(e.Value)
			if err != nil {
				return Value{}, err
			}
			m.Set(e.Row, e.Col, x)
		}

		return complexMatrix(m), nil
	}

	var m *RealMatrix
	switch def.Fill {
	case FillOne:
		m = flex.OnesMatrix(def.Rows, def.Cols)
	case FillIdentity:
		m = flex.Identity(def.Rows)
	default:
		m = flex.NewMatrix(def.Rows, def.Cols)
	}
	for _, r := range def.EntryRows {
		m.AddRow(r)
	}
	for _, e := range def.Entries {
		x, err := parseReal(e.Value)
		if err != nil {
			return Value{}, err
		}
		m.Set(e.Row, e.Col, x)
	}

	return realMatrix(m), nil
}

// ---------- ops ----------

func expectKinds(args []Value, kinds ...Kind) error {
	for i, k := range kinds {
		if args[i].kind != k {
			return fmt.Errorf("arg %d is a %s, want %s: %w", i+1, args[i].kind, k, ErrOperandKind)
		}
	}

	return nil
}

func evalAddSub(subtract bool) evalFunc {
	return func(_ Op, args []Value) (Value, error) {
		a, b := args[0], args[1]
		if a.kind != b.kind || a.kind == KindScalar {
			return Value{}, fmt.Errorf("%s with %s: %w", a.kind, b.kind, ErrOperandKind)
		}
		if a.kind == KindVector {
			if !a.complex && !b.complex {
				if subtract {
					return realVector(a.rv.Sub(b.rv)), nil
				}

				return realVector(a.rv.Add(b.rv)), nil
			}
			x, y, err := complexVectors(a, b)
			if err != nil {
				return Value{}, err
			}
			if subtract {
				return complexVector(x.Sub(y)), nil
			}

			return complexVector(x.Add(y)), nil
		}

		if !a.complex && !b.complex {
			if subtract {
				return realMatrix(a.rm.Sub(b.rm)), nil
			}

			return realMatrix(a.rm.Add(b.rm)), nil
		}
		x, y, err := complexMatrices(a, b)
		if err != nil {
			return Value{}, err
		}
		if subtract {
			return complexMatrix(x.Sub(y)), nil
		}

		return complexMatrix(x.Add(y)), nil
	}
}

// evalScale multiplies by op.Scalar. A complex factor promotes a real operand.
func evalScale(op Op, args []Value) (Value, error) {
	c, err := parseComplex(op.Scalar)
	if err != nil {
		return Value{}, err
	}
	a := args[0]
	realFactor := imag(c) == 0

	switch a.kind {
	case KindVector:
		switch {
		case a.complex:
			return complexVector(a.cv.Scale(c)), nil
		case realFactor:
			return realVector(a.rv.Scale(real(c))), nil
		default:
			v, err := flex.ScaleAs[complex128](c, a.rv)
			if err != nil {
				return Value{}, err
			}

			return complexVector(v), nil
		}
	case KindMatrix:
		if !a.complex && realFactor {
			return realMatrix(a.rm.Scale(real(c))), nil
		}
		m, err := a.complexMatrix()
		if err != nil {
			return Value{}, err
		}

		return complexMatrix(m.Scale(c)), nil
	default:
		if !a.complex && realFactor {
			return realScalar(a.rs * real(c)), nil
		}
		s, _ := a.Scalar()

		return complexScalar(s * c), nil
	}
}

func evalNeg(_ Op, args []Value) (Value, error) {
	a := args[0]
	switch {
	case a.kind == KindScalar && a.complex:
		return complexScalar(-a.cs), nil
	case a.kind == KindScalar:
		return realScalar(-a.rs), nil
	case a.rv != nil:
		return realVector(a.rv.Neg()), nil
	case a.cv != nil:
		return complexVector(a.cv.Neg()), nil
	case a.rm != nil:
		return realMatrix(a.rm.Neg()), nil
	default:
		return complexMatrix(a.cm.Neg()), nil
	}
}

func evalSum(_ Op, args []Value) (Value, error) {
	if err := expectKinds(args, KindVector); err != nil {
		return Value{}, err
	}
	if args[0].complex {
		return complexScalar(args[0].cv.Sum()), nil
	}

	return realScalar(args[0].rv.Sum()), nil
}

// evalDot conjugates the first argument.
func evalDot(_ Op, args []Value) (Value, error) {
	if err := expectKinds(args, KindVector, KindVector); err != nil {
		return Value{}, err
	}
	a, b := args[0], args[1]
	if !a.complex && !b.complex {
		return realScalar(a.rv.Dot(b.rv)), nil
	}
	x, y, err := complexVectors(a, b)
	if err != nil {
		return Value{}, err
	}

	return complexScalar(x.Dot(y)), nil
}

func evalMul(_ Op, args []Value) (Value, error) {
	if err := expectKinds(args, KindMatrix, KindMatrix); err != nil {
		return Value{}, err
	}
	a, b := args[0], args[1]
	if !a.complex && !b.complex {
		return realMatrix(flex.Mul(a.rm, b.rm)), nil
	}
	x, y, err := complexMatrices(a, b)
	if err != nil {
		return Value{}, err
	}

	return complexMatrix(flex.Mul(x, y)), nil
}

func evalMulVec(_ Op, args []Value) (Value, error) {
	if err := expectKinds(args, KindMatrix, KindVector); err != nil {
		return Value{}, err
	}
	a, v := args[0], args[1]
	if !a.complex && !v.complex {
		return realVector(flex.MulVec(a.rm, v.rv)), nil
	}
	m, err := a.complexMatrix()
	if err != nil {
		return Value{}, err
	}
	x, err := v.complexVector()
	if err != nil {
		return Value{}, err
	}

	return complexVector(flex.MulVec(m, x)), nil
}

func evalTranspose(_ Op, args []Value) (Value, error) {
	if err := expectKinds(args, KindMatrix); err != nil {
		return Value{}, err
	}
	if args[0].complex {
		return complexMatrix(args[0].cm.Transpose()), nil
	}

	return realMatrix(args[0].rm.Transpose()), nil
}

func complexVectors(a, b Value) (*ComplexVector, *ComplexVector, error) {
	x, err := a.complexVector()
	if err != nil {
		return nil, nil, err
	}
	y, err := b.complexVector()
	if err != nil {
		return nil, nil, err
	}

	return x, y, nil
}

func complexMatrices(a, b Value) (*ComplexMatrix, *ComplexMatrix, error) {
	x, err := a.complexMatrix()
	if err != nil {
		return nil, nil, err
	}
	y, err := b.complexMatrix()
	if err != nil {
		return nil, nil, err
	}

	return x, y, nil
}
