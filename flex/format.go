// SPDX-License-Identifier: MIT

package flex

import (
	"fmt"
	"reflect"
	"strings"
)

// String lists the entries under a type header, one "  key => value" line per
// stored key in insertion order:
//
//	FlexVector[int,float64]:
//	  4 => 7
//	  5 => 0
func (v *Vector[K, V]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "FlexVector[%s,%s]:\n", typeName[K](), v.ValueType())
	for k, x := range v.entries.All() {
		fmt.Fprintf(&b, "  %v => %v\n", k, x)
	}

	return b.String()
}

// String lists every cell of RowKeys() × ColKeys() row by row, unstored
// cells as zero, under a type header:
//
//	FlexMatrix[string,int,float64]:
//	  (a, 1) => 2
func (a *Matrix[R, C, V]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "FlexMatrix[%s,%s,%s]:\n", typeName[R](), typeName[C](), a.ValueType())
	for r := range a.rows.All() {
		for c := range a.cols.All() {
			fmt.Fprintf(&b, "  (%v, %v) => %v\n", r, c, a.Get(r, c))
		}
	}

	return b.String()
}

func typeName[K any]() string { return reflect.TypeFor[K]().String() }
