// SPDX-License-Identifier: MIT

// Package store composes read-only, two-dimensional numeric views without copying
// data.
//
// The package provides:
//
//   - Store[N]: the read-only contract every view implements (shape, element
//     access, structural hints).
//   - Leaf stores built by a Factory[N]: zero, identity, single element, literal
//     rows/columns and wrappers around any Access2D[N] source.
//   - Builder[N] (the logical builder): chains structural transforms (transpose,
//     conjugate, triangular/band/hermitian masks, block concatenation, windows,
//     selections, overlays) into one lazy view.
//   - Dense[N]: the single mutable, row-major physical store, produced only by the
//     eager operations (Copy, Add, Subtract, Scale, Multiply).
//   - Slices: restartable 1D accessors over rows, columns, diagonals and ranges.
//
// Views are immutable after construction and may be shared by any number of
// parents and read concurrently without locks. A Builder is single-owner: it is
// not safe for concurrent use while composing.
//
// Usage:
//
//	m, err := store.Primitive.MakeIdentity(10).
//		Offsets(2, 3).
//		Limits(4, 4).
//		Get()
//
// Transpose and Conjugate cancel when applied twice, so decorator depth is bounded
// by the number of distinct transforms, not by the number of calls.
package store
