// SPDX-License-Identifier: MIT

package flex_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/flexla/flex"
)

// ExampleVector_Add adds two vectors whose key sets only overlap at 2.
func ExampleVector_Add() {
	v := flex.NewVector([]int{1, 2})
	v.Set(1, 1)
	v.Set(2, 1)
	w := flex.NewVector([]int{2, 3})
	w.Set(2, 1)
	w.Set(3, 1)

	fmt.Print(v.Add(w))
	// Output:
	// FlexVector[int,float64]:
	//   1 => 1
	//   2 => 2
	//   3 => 1
}

// ExampleVector_Dot shows that the first operand is conjugated.
func ExampleVector_Dot() {
	v := flex.Convert([]complex128{1 - 2i, 2 + 3i})
	w := flex.Convert([]complex128{-3i, 5 + 2i})

	fmt.Println(v.Dot(w), w.Dot(v))
	// Output: (22-14i) (22+14i)
}

// ExampleMulVec multiplies by an identity-like matrix built cell by cell.
func ExampleMulVec() {
	a := flex.NewMatrix[int, int](nil, nil)
	a.Set(1, 1, 1)
	a.Set(2, 2, 1)
	v := flex.Convert([]float64{3, 4})

	fmt.Print(flex.MulVec(a, v))
	// Output:
	// FlexVector[int,float64]:
	//   1 => 3
	//   2 => 4
}

// ExampleAddAs combines a complex and a real vector.
func ExampleAddAs() {
	v := flex.OnesOf[complex128]([]int{1, 2})
	w := flex.Ones([]int{2, 3})

	s, err := flex.AddAs[complex128](v, w)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(s.ToSlice())

	_, err = flex.AddAs[int64](flex.OnesOf[uint64]([]int{1}), flex.OnesOf[int8]([]int{1}))
	fmt.Println(errors.Is(err, flex.ErrTypePromotionUndefined))
	// Output:
	// [(1+0i) (2+0i) (1+0i)]
	// true
}

// ExampleIdentity prints a keyed identity matrix.
func ExampleIdentity() {
	fmt.Print(flex.Identity([]string{"a", "b"}))
	// Output:
	// FlexMatrix[string,string,float64]:
	//   (a, a) => 1
	//   (a, b) => 0
	//   (b, a) => 0
	//   (b, b) => 1
}
