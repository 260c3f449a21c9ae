// SPDX-License-Identifier: MIT

package flex_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flexla/flex"
)

// TestAddAs_RealPlusComplex checks a complex + real sum yields a complex result over the union.
func TestAddAs_RealPlusComplex(t *testing.T) {
	v := flex.OnesOf[complex128]([]int{1, 2, 3, 4})
	w := flex.Ones([]int{3, 4, 5, 6})

	s, err := flex.AddAs[complex128](v, w)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, s.Keys())
	require.Equal(t, []complex128{1, 1, 2, 2, 1, 1}, s.ToSlice())

	d, err := flex.SubAs[complex128](w, v)
	require.NoError(t, err)
	require.Equal(t, []int{3, 4, 5, 6, 1, 2}, d.Keys())
	require.Equal(t, []complex128{0, 0, 1, 1, -1, -1}, d.ToSlice())
}

// TestAddAs_IntegerWidening checks mixed integer widths promote.
func TestAddAs_IntegerWidening(t *testing.T) {
	v := flex.Convert([]int8{100})
	w := flex.Convert([]uint8{200})

	s, err := flex.AddAs[int16](v, w)
	require.NoError(t, err)
	require.Equal(t, []int16{300}, s.ToSlice())
}

// TestAddAs_ResultTypeMayWiden checks T may exceed the promoted type but never narrow it.
func TestAddAs_ResultTypeMayWiden(t *testing.T) {
	v := flex.Convert([]int8{100, -3})
	w := flex.Convert([]int8{100})

	s, err := flex.AddAs[complex128](v, w)
	require.NoError(t, err)
	require.Equal(t, []complex128{200, -3}, s.ToSlice())

	s16, err := flex.AddAs[int16](v, w)
	require.NoError(t, err)
	require.Equal(t, []int16{200, -3}, s16.ToSlice())

	_, err = flex.AddAs[int8](v, flex.Convert([]uint8{200}))
	require.ErrorIs(t, err, flex.ErrTypePromotionUndefined)
}

// TestPromotionUndefined checks the only arithmetic failure mode.
func TestPromotionUndefined(t *testing.T) {
	u := flex.OnesOf[uint64]([]int{1})
	i := flex.OnesOf[int8]([]int{1})

	s, err := flex.AddAs[int64](u, i)
	require.ErrorIs(t, err, flex.ErrTypePromotionUndefined)
	require.Nil(t, s)

	_, err = flex.DotAs[float64](u, i)
	require.ErrorIs(t, err, flex.ErrTypePromotionUndefined)

	// pair promotes to float64, but float32 cannot hold it
	f := flex.Ones([]int{1})
	_, err = flex.AddAs[float32](f, f)
	require.ErrorIs(t, err, flex.ErrTypePromotionUndefined)
}

// TestCast checks widening casts succeed and narrowing casts fail.
func TestCast(t *testing.T) {
	v := flex.Convert([]int32{1, -2})
	f, err := flex.Cast[float64](v)
	require.NoError(t, err)
	require.Equal(t, []float64{1, -2}, f.ToSlice())

	c, err := flex.Cast[complex128](f)
	require.NoError(t, err)
	require.Equal(t, []complex128{1, -2}, c.ToSlice())

	_, err = flex.Cast[int](f)
	require.ErrorIs(t, err, flex.ErrTypePromotionUndefined)
}

// TestScaleAs multiplies a real vector by a complex scalar.
func TestScaleAs(t *testing.T) {
	v := flex.Convert([]float64{2, 0})
	s, err := flex.ScaleAs[complex128](1i, v)
	require.NoError(t, err)
	require.Equal(t, []complex128{2i, 0}, s.ToSlice())

	_, err = flex.ScaleAs[float64](1i, v)
	require.ErrorIs(t, err, flex.ErrTypePromotionUndefined)
}

// TestDotAs_ConjugatesFirstAfterConversion checks Hermitian order across types.
func TestDotAs_ConjugatesFirstAfterConversion(t *testing.T) {
	r := flex.Convert([]float64{2})
	c := flex.Convert([]complex128{complex(1, 1)})

	rc, err := flex.DotAs[complex128](r, c)
	require.NoError(t, err)
	require.Equal(t, complex(2, 2), rc)

	cr, err := flex.DotAs[complex128](c, r)
	require.NoError(t, err)
	require.Equal(t, complex(2, -2), cr)
}

// TestMatrixAs covers the mixed-type matrix helpers.
func TestMatrixAs(t *testing.T) {
	a, err := flex.ConvertMatrix([][]int{{1, 2}})
	require.NoError(t, err)
	b, err := flex.ConvertMatrix([][]float64{{0.5}, {0.25}})
	require.NoError(t, err)

	p, err := flex.MulAs[float64](a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1}}, p.ToRows())

	v := flex.Convert([]complex128{1i, 1})
	y, err := flex.MulVecAs[complex128](a, v)
	require.NoError(t, err)
	require.Equal(t, []complex128{complex(2, 1)}, y.ToSlice())

	bt := b.Transpose() // 1×2 keyed 1..2
	s, err := flex.AddMatrixAs[float64](a, bt)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1.5, 2.25}}, s.ToRows())

	d, err := flex.SubMatrixAs[float64](a, bt)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0.5, 1.75}}, d.ToRows())

	cm, err := flex.CastMatrix[complex64](bt)
	require.ErrorIs(t, err, flex.ErrTypePromotionUndefined) // float64 does not fit complex64
	require.Nil(t, cm)

	_, err = flex.MulAs[int](a, b)
	require.ErrorIs(t, err, flex.ErrTypePromotionUndefined)
}
