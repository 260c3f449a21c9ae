// SPDX-License-Identifier: MIT

package flex_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flexla/flex"
	"github.com/katalvlaran/flexla/matrix"
)

// mustConvert builds a 1-keyed matrix from rows or fails the test.
func mustConvert[V int | float64 | complex128](t *testing.T, rows [][]V) *flex.Matrix[int, int, V] {
	t.Helper()
	a, err := flex.ConvertMatrix(rows)
	require.NoError(t, err)

	return a
}

// TestNewMatrix_StoresGrid checks construction stores every cell of the grid.
func TestNewMatrix_StoresGrid(t *testing.T) {
	a := flex.NewMatrix([]string{"a", "b", "a"}, []int{1, 2, 3})
	require.Equal(t, []string{"a", "b"}, a.RowKeys())
	require.Equal(t, []int{1, 2, 3}, a.ColKeys())
	require.Equal(t, 2, a.Rows())
	require.Equal(t, 3, a.Cols())
	require.Equal(t, 6, a.Len())
	require.True(t, a.Has("b", 3))

	o := flex.OnesMatrixOf[int]([]int{1}, []int{1, 2}, flex.WithRowCapacity(4), flex.WithColCapacity(4))
	require.Equal(t, [][]int{{1, 1}}, o.ToRows())
	require.Equal(t, [][]float64{{1}}, flex.OnesMatrix([]int{7}, []int{8}).ToRows())
}

// TestMatrixSet_GrowsAxesOnly checks writes grow both axes without filling other cells.
func TestMatrixSet_GrowsAxesOnly(t *testing.T) {
	a := flex.NewMatrix[string, int](nil, nil)
	require.Equal(t, 0.0, a.Get("nope", 42))
	require.Equal(t, 0, a.Rows())
	require.Equal(t, 0, a.Cols())

	a.Set("a", 1, 5)
	a.Set("b", 2, 6)
	require.Equal(t, []string{"a", "b"}, a.RowKeys())
	require.Equal(t, []int{1, 2}, a.ColKeys())
	require.Equal(t, 2, a.Len())
	require.False(t, a.Has("a", 2))
	require.Equal(t, 0.0, a.Get("a", 2))
	require.True(t, a.HasRow("b"))
	require.False(t, a.HasCol(3))
	require.Equal(t, [][]float64{{5, 0}, {0, 6}}, a.ToRows())
}

// TestAddRowCol checks bare key growth stores no cells and keeps order.
func TestAddRowCol(t *testing.T) {
	a := flex.NewMatrix[string, string](nil, nil)
	a.Set("c", "x", 1)
	require.True(t, a.AddRow("b"))
	require.False(t, a.AddRow("c"))
	require.True(t, a.AddCol("y"))

	require.Equal(t, []string{"c", "b"}, a.RowKeys())
	require.Equal(t, []string{"x", "y"}, a.ColKeys())
	require.Equal(t, 1, a.Len())
	require.Equal(t, [][]float64{{1, 0}, {0, 0}}, a.ToRows())
}

// TestDeleteRowCol checks line deletion drops keys and cells.
func TestDeleteRowCol(t *testing.T) {
	a := mustConvert(t, [][]int{{1, 2}, {3, 4}})
	a.DeleteRow(1)
	require.Equal(t, []int{2}, a.RowKeys())
	require.Equal(t, 2, a.Len())
	require.Equal(t, 0, a.Get(1, 1))
	require.Equal(t, [][]int{{3, 4}}, a.ToRows())

	a.DeleteCol(2)
	require.Equal(t, []int{1}, a.ColKeys())
	require.Equal(t, [][]int{{3}}, a.ToRows())

	a.DeleteRow(42) // absent: no-op
	a.DeleteCol(42)
	require.Equal(t, 1, a.Len())
}

// TestDeleteEntry keeps the keys and drops only the cell.
func TestDeleteEntry(t *testing.T) {
	a := mustConvert(t, [][]float64{{1, 2}})
	a.DeleteEntry(1, 2)
	require.False(t, a.Has(1, 2))
	require.Equal(t, []int{1, 2}, a.ColKeys())
	require.Equal(t, [][]float64{{1, 0}}, a.ToRows())
}

// TestMatrixAdd_IndependentUnions checks rows and columns union separately.
func TestMatrixAdd_IndependentUnions(t *testing.T) {
	a := flex.NewMatrix[int, string](nil, nil)
	a.Set(1, "x", 1)
	b := flex.NewMatrix[int, string](nil, nil)
	b.Set(2, "y", 2)
	b.Set(1, "x", 10)

	s := a.Add(b)
	require.Equal(t, []int{1, 2}, s.RowKeys())
	require.Equal(t, []string{"x", "y"}, s.ColKeys())
	require.Equal(t, 4, s.Len())
	require.Equal(t, [][]float64{{11, 0}, {0, 2}}, s.ToRows())

	d := a.Sub(b)
	require.Equal(t, [][]float64{{-9, 0}, {0, -2}}, d.ToRows())
}

// TestMatrixScale_StoredOnly checks scaling keeps the stored cell set.
func TestMatrixScale_StoredOnly(t *testing.T) {
	a := flex.NewMatrix[int, int](nil, nil)
	a.Set(1, 1, 2)
	a.Set(2, 2, 3)

	s := a.Scale(2)
	require.Equal(t, 2, s.Len())
	require.False(t, s.Has(1, 2))
	require.Equal(t, [][]float64{{4, 0}, {0, 6}}, s.ToRows())
	require.Equal(t, [][]float64{{-2, 0}, {0, -3}}, a.Neg().ToRows())
}

// TestTranspose swaps axes and cells.
func TestTranspose(t *testing.T) {
	a := flex.NewMatrix[string, int](nil, nil)
	a.Set("a", 1, 5)
	a.Set("b", 2, 7)

	tr := a.Transpose()
	require.Equal(t, []int{1, 2}, tr.RowKeys())
	require.Equal(t, []string{"a", "b"}, tr.ColKeys())
	require.Equal(t, 5.0, tr.Get(1, "a"))
	require.Equal(t, 2, tr.Len())
	require.True(t, tr.Transpose().Equal(a))
}

// TestMulVec_IdentityLike is the documented contraction example.
func TestMulVec_IdentityLike(t *testing.T) {
	a := flex.NewMatrix[int, int](nil, nil)
	a.Set(1, 1, 1)
	a.Set(2, 2, 1)
	v := flex.Convert([]float64{3, 4})

	got := flex.MulVec(a, v)
	require.Equal(t, []int{1, 2}, got.Keys())
	require.Equal(t, []float64{3, 4}, got.ToSlice())
}

// TestMulVec_PermissiveKeys checks mismatched column/vector keys contribute zero.
func TestMulVec_PermissiveKeys(t *testing.T) {
	a := flex.NewMatrix([]string{"r"}, []int{1, 2})
	a.Set("r", 1, 10)
	a.Set("r", 2, 1)
	v := flex.NewVector[int](nil)
	v.Set(2, 5)
	v.Set(3, 1000) // no column 3 in a

	got := flex.MulVec(a, v)
	require.Equal(t, []string{"r"}, got.Keys())
	require.Equal(t, 5.0, got.Get("r"))
}

// TestMul_ContractsOverUnion checks products over differing inner key sets.
func TestMul_ContractsOverUnion(t *testing.T) {
	a := flex.NewMatrix[string, string](nil, nil)
	a.Set("x", "p", 1)
	a.Set("x", "q", 2)
	a.Set("y", "p", 3)
	a.Set("y", "q", 4)
	b := flex.NewMatrix[string, int](nil, nil)
	b.Set("q", 1, 10)
	b.Set("r", 1, 100)

	c := flex.Mul(a, b)
	require.Equal(t, []string{"x", "y"}, c.RowKeys())
	require.Equal(t, []int{1}, c.ColKeys())
	require.Equal(t, [][]float64{{20}, {40}}, c.ToRows())
}

// TestMul_Identity checks I·A == A.
func TestMul_Identity(t *testing.T) {
	a := mustConvert(t, [][]float64{{1, 2}, {3, 4}})
	i := flex.Identity([]int{1, 2})
	require.True(t, flex.Mul(i, a).Equal(a))
	require.Equal(t, [][]int{{1, 0}, {0, 1}}, flex.IdentityOf[int]([]int{1, 2}).ToRows())
}

// TestMul_ZeroArea checks empty axes produce empty results.
func TestMul_ZeroArea(t *testing.T) {
	a := flex.NewMatrix[int, int](nil, []int{1, 2})
	b := mustConvert(t, [][]float64{{1}, {2}})
	c := flex.Mul(a, b)
	require.Equal(t, 0, c.Rows())
	require.Equal(t, []int{1}, c.ColKeys())

	v := flex.MulVec(flex.NewMatrix[int, int](nil, nil), flex.NewVector[int](nil))
	require.Equal(t, 0, v.Len())
}

// TestRowCol extracts lines as vectors.
func TestRowCol(t *testing.T) {
	a := mustConvert(t, [][]int{{1, 2}, {3, 4}})
	require.Equal(t, []int{3, 4}, a.Row(2).ToSlice())
	require.Equal(t, []int{1, 2}, a.Row(2).Keys())
	require.Equal(t, []int{1, 3}, a.Col(1).ToSlice())
	require.Equal(t, []int{0, 0}, a.Row(99).ToSlice())
}

// TestConvertMatrix checks dense conversion both ways and its errors.
func TestConvertMatrix(t *testing.T) {
	_, err := flex.ConvertMatrix([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, flex.ErrBadShape)

	_, err = flex.FromDense[int](nil)
	require.ErrorIs(t, err, flex.ErrNilMatrix)

	d, err := matrix.FromRows([][]complex128{{1, 2i}, {3, 4}})
	require.NoError(t, err)
	a, err := flex.FromDense(d)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, a.RowKeys())
	require.Equal(t, 2i, a.Get(1, 2))
	require.Equal(t, d.ToRows(), a.ToDense().ToRows())

	empty := mustConvert(t, [][]int{})
	require.Equal(t, 0, empty.Rows())
	require.Empty(t, empty.ToRows())
}

// TestToRows_InsertionOrder checks row-major output follows key insertion order.
func TestToRows_InsertionOrder(t *testing.T) {
	a := flex.NewMatrix[string, string](nil, nil)
	a.Set("b", "y", 1)
	a.Set("a", "x", 2)
	require.Equal(t, [][]float64{{1, 0}, {0, 2}}, a.ToRows())
}

// TestMatrixEqual checks order-insensitive equality with stored zeros.
func TestMatrixEqual(t *testing.T) {
	a := flex.NewMatrix([]int{1, 2}, []int{1})
	b := flex.NewMatrix[int, int](nil, nil)
	b.Set(2, 1, 0)
	b.Set(1, 1, 0)
	b.DeleteEntry(2, 1)
	require.True(t, a.Equal(b))
	require.True(t, b.Equal(a))

	b.Set(2, 1, 1e-12)
	require.False(t, a.Equal(b))
	require.True(t, flex.ApproxEqualMatrix(a, b, 1e-9))

	b.Set(3, 1, 0) // extra row key
	require.False(t, a.Equal(b))

	c := a.Clone()
	c.Set(1, 1, 1)
	require.Equal(t, 0.0, a.Get(1, 1))
}

// TestMatrixString checks the listing format.
func TestMatrixString(t *testing.T) {
	a := flex.NewMatrix([]string{"a"}, []int{1, 2})
	a.Set("a", 1, 2)
	want := "FlexMatrix[string,int,float64]:\n  (a, 1) => 2\n  (a, 2) => 0\n"
	require.Equal(t, want, a.String())
}
