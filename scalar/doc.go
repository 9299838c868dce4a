// SPDX-License-Identifier: MIT

// Package scalar defines the numeric backends that matrix stores are built over.
//
// A Field[N] bundles everything the store package needs to know about an element
// type: its neutral elements, arithmetic, conjugation, magnitude, conversion to and
// from float64, a "negligible" test and a fresh L2 aggregator per reduction.
//
// Three backends are provided as process-wide singletons:
//
//	scalar.Float64     float64 (primitive real)
//	scalar.Complex128  complex128
//	scalar.BigFloat    *big.Float at 256-bit precision (arbitrary-precision real)
//
// A backend is selected once, when a store factory is created, and never per
// operation. All backends are stateless and safe for concurrent use.
package scalar
