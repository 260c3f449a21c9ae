// SPDX-License-Identifier: MIT

package calc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flexla/internal/calc"
)

// TestLoad_KeepsDocumentOrder checks declaration and entry order survive decoding.
func TestLoad_KeepsDocumentOrder(t *testing.T) {
	doc, err := calc.Load("testdata/basic.yaml")
	require.NoError(t, err)

	names := make([]string, 0, len(doc.Vectors))
	for _, v := range doc.Vectors {
		names = append(names, v.Name)
	}
	require.Equal(t, []string{"v", "w", "cv", "cw", "x"}, names)
	require.Equal(t, []calc.Entry{{Key: "1", Value: "1-2i"}, {Key: "2", Value: "2+3i"}}, doc.Vectors[2].Entries)
	require.Equal(t, calc.TypeComplex128, doc.Vectors[2].Type)

	require.Len(t, doc.Matrices, 1)
	require.Equal(t, []calc.MatrixEntry{
		{Row: "1", Col: "1", Value: "1"},
		{Row: "2", Col: "2", Value: "1"},
	}, doc.Matrices[0].Entries)

	require.Len(t, doc.Ops, 7)
	require.Equal(t, calc.Op{Name: "k", Op: "scale", Args: []string{"s"}, Scalar: "2"}, doc.Ops[5])
}

// TestLoad_MissingFile checks the read error surfaces.
func TestLoad_MissingFile(t *testing.T) {
	_, err := calc.Load("testdata/does-not-exist.yaml")
	require.Error(t, err)
}

// TestParse_Declarations checks domains, fills and empty rows.
func TestParse_Declarations(t *testing.T) {
	doc, err := calc.Parse([]byte(`
vectors:
  u:
    domain: [a, b]
    fill: one
matrices:
  I:
    rows: [p, q]
    fill: identity
  B:
    entries:
      r1: {}
      r2: {c1: 2}
`))
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, doc.Vectors[0].Domain)
	require.Equal(t, calc.FillOne, doc.Vectors[0].Fill)
	require.Equal(t, calc.FillIdentity, doc.Matrices[0].Fill)
	require.Empty(t, doc.Matrices[1].Rows)
	require.Equal(t, []string{"r1", "r2"}, doc.Matrices[1].EntryRows)
	require.Len(t, doc.Matrices[1].Entries, 1)
}

// TestParse_IdentityRepeatingRows checks cols equal to rows are accepted for identity.
func TestParse_IdentityRepeatingRows(t *testing.T) {
	doc, err := calc.Parse([]byte("matrices: {m: {rows: [a, b], cols: [a, b], fill: identity}}"))
	require.NoError(t, err)
	require.Equal(t, calc.FillIdentity, doc.Matrices[0].Fill)
}

// TestParse_Errors checks every validation failure maps to its sentinel.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"unknown op", "ops: [{name: a, op: frobnicate, args: []}]", calc.ErrUnknownOp},
		{"arity", "vectors: {v: {}}\nops: [{name: a, op: dot, args: [v]}]", calc.ErrArity},
		{"duplicate", "vectors: {v: {}}\nops: [{name: v, op: neg, args: [v]}]", calc.ErrDuplicateName},
		{"empty name", "vectors: {v: {}}\nops: [{op: neg, args: [v]}]", calc.ErrLayout},
		{"value type", "vectors: {v: {type: int8}}", calc.ErrValueType},
		{"vector fill", "vectors: {v: {fill: identity}}", calc.ErrLayout},
		{"matrix fill", "matrices: {m: {fill: two}}", calc.ErrLayout},
		{"vectors not a mapping", "vectors: [1, 2]", calc.ErrLayout},
		{"nested entry", "vectors: {v: {entries: {a: [1]}}}", calc.ErrLayout},
		{"row not a mapping", "matrices: {m: {entries: {r: 3}}}", calc.ErrLayout},
		{"identity with other cols", "matrices: {m: {rows: [a, b], cols: [x], fill: identity}}", calc.ErrLayout},
		{"identity with reordered cols", "matrices: {m: {rows: [a, b], cols: [b, a], fill: identity}}", calc.ErrLayout},
		{"scale without factor", "vectors: {v: {}}\nops: [{name: s, op: scale, args: [v]}]", calc.ErrLayout},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := calc.Parse([]byte(tc.src))
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := calc.Parse([]byte("vectors: {v: \n"))
	require.Error(t, err) // yaml syntax
}
