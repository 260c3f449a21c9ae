// SPDX-License-Identifier: MIT

package flex

import (
	"fmt"

	"github.com/katalvlaran/flexla/matrix"
	"github.com/katalvlaran/flexla/scalar"
)

// Sentinels are shared with the packages that detect them so errors.Is
// matches whichever name the caller imports.
var (
	// ErrTypePromotionUndefined is the only failure of arithmetic: the operand
	// value types have no common type, or the requested result type cannot
	// represent it. No partial result accompanies it.
	ErrTypePromotionUndefined = scalar.ErrPromotionUndefined

	// ErrBadShape is returned by dense constructors for ragged input.
	ErrBadShape = matrix.ErrBadShape

	// ErrNilMatrix is returned when a nil dense matrix is converted.
	ErrNilMatrix = matrix.ErrNilMatrix
)

// flexErrorf tags err with the operation name; errors.Is still matches.
func flexErrorf(tag string, err error) error {
	return fmt.Errorf("flex.%s: %w", tag, err)
}
