// SPDX-License-Identifier: MIT

package scalar

import (
	"errors"
	"fmt"
)

var (
	// ErrPromotionUndefined is returned when two value types have no common
	// type able to represent both, or when a requested result type cannot hold
	// the promoted type.
	ErrPromotionUndefined = errors.New("scalar: type promotion undefined")

	// ErrUnknownValueType marks a ValueType outside the supported set.
	ErrUnknownValueType = errors.New("scalar: unknown value type")
)

// scalarErrorf tags err with the operation that detected it.
func scalarErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
