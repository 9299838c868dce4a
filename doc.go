// Package lvmat is a lazy view algebra for dense numeric matrices: compose
// transposes, masks, blocks and windows over existing data, and pay for a
// copy only when you ask for one.
//
// 🚀 What is lvmat?
//
//	A small, generic, read-only matrix layer that brings together:
//		• Leaves: zero, identity, single value, literal rows, external wrappers
//		• Views: transpose, conjugate, triangular/Hessenberg/hermitian masks
//		• Blocks: above/below/left/right concatenation, diagonal embedding
//		• Windows: offsets, limits, row/column selection, overlays
//		• Eager algebra: copy, add, subtract, scale, multiply, quadratic forms
//		• Backends: float64, complex128 and 256-bit *big.Float
//
// ✨ Why choose lvmat?
//
//   - Zero-copy – every transform is an O(1) wrapper over its input
//   - Bounded depth – transpose/conjugate toggles cancel instead of stacking
//   - Hint-aware kernels – products skip structurally zero regions
//   - Safe sharing – views are immutable and readable from any goroutine
//
// Under the hood, everything is organized under two subpackages:
//
//	scalar/ — numeric backends (Field) and norm aggregators
//	store/  — Store contract, leaves, views, Builder, Dense and the eager algebra
//
// Quick example:
//
//	w, err := store.Primitive.MakeIdentity(10).Offsets(2, 3).Limits(4, 4).Get()
//
// builds a 4×4 window into the identity without allocating its 100 elements.
//
//	go get github.com/katalvlaran/lvmat/store
package lvmat
