// SPDX-License-Identifier: MIT

// Package zeromap provides the storage layer of the flex containers:
//
//   - Map, an insertion-ordered mapping from keys to scalars in which every
//     absent key reads as the zero of the value type. Reads never insert;
//     Set is the only way the key set grows.
//   - KeySet, an insertion-ordered set of keys used for matrix axes.
//   - Union, the ordered key-set union used by every binary kernel.
//
// Iteration order is always insertion order, never sorted order, so listings
// are reproducible from run to run.
//
// Neither type is safe for concurrent mutation; callers serialize access.
package zeromap
