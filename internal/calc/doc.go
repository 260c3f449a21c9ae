// SPDX-License-Identifier: MIT

// Package calc evaluates a YAML document of keyed vectors, keyed matrices and
// a list of operations on them, using package flex for the arithmetic.
//
// Document layout (mapping order is preserved and becomes key order):
//
//	vectors:
//	  v:
//	    type: float64        # or complex128; float64 when omitted
//	    entries: {1: 1, 2: 1}
//	matrices:
//	  A:
//	    entries:
//	      1: {1: 1}
//	      2: {2: 1}
//	ops:
//	  - {name: s, op: add, args: [v, v]}
//	  - {name: y, op: mulvec, args: [A, v]}
//
// A matrix fill covers its declared rows × cols; rows listed under entries
// follow them in document order. An identity fill takes rows as its domain.
//
// Keys are kept as their YAML text. Complex values use Go syntax ("1-2i").
// A real operand meeting a complex one is cast to complex128 first.
package calc
