// SPDX-License-Identifier: MIT

package calc

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownOp marks an op name outside the supported set.
	ErrUnknownOp = errors.New("calc: unknown operation")

	// ErrUnknownName marks an argument that names no input or earlier result.
	ErrUnknownName = errors.New("calc: unknown name")

	// ErrDuplicateName marks a second definition of a name.
	ErrDuplicateName = errors.New("calc: duplicate name")

	// ErrArity marks a wrong number of arguments for an op.
	ErrArity = errors.New("calc: wrong number of arguments")

	// ErrOperandKind marks an argument of the wrong kind (scalar, vector, matrix).
	ErrOperandKind = errors.New("calc: operand kind mismatch")

	// ErrValueType marks a container type other than float64 or complex128.
	ErrValueType = errors.New("calc: unsupported value type")

	// ErrBadValue marks an entry that does not parse as a number.
	ErrBadValue = errors.New("calc: bad numeric value")

	// ErrLayout marks YAML whose structure does not match the document layout.
	ErrLayout = errors.New("calc: malformed document")
)

// calcErrorf tags err with where it was detected.
func calcErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
