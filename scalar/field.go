// SPDX-License-Identifier: MIT

package scalar

import "math"

// Field is the arithmetic contract of one element type N.
//
// Implementations must treat values as immutable: every operation returns a new
// value (or an existing one that is never written to afterwards).
type Field[N any] interface {
	// Zero returns the additive identity.
	Zero() N
	// One returns the multiplicative identity.
	One() N

	Add(a, b N) N
	Sub(a, b N) N
	Mul(a, b N) N
	// Div returns a/b. Division by zero follows the backend's own rules
	// (±Inf/NaN for the IEEE backends, a zero-divisor panic for big.Float).
	Div(a, b N) N
	Neg(a N) N
	// Conj returns the complex conjugate; identity on real backends.
	Conj(a N) N

	// Abs returns |a| (the modulus for complex values).
	Abs(a N) float64
	// Float64 returns the real part of a as float64.
	Float64(a N) float64
	// FromFloat64 converts a real float64 into the backend.
	FromFloat64(v float64) N

	// IsZero reports whether a is exactly zero.
	IsZero(a N) bool
	// IsSmall reports whether a is negligible compared to comparedTo.
	IsSmall(comparedTo float64, a N) bool
	// IsReal reports whether every value of the backend is real, i.e. Conj is
	// the identity.
	IsReal() bool

	// Format renders a for diagnostics.
	Format(a N) string

	// Norm2 returns a fresh L2 (sum-of-squares) aggregator.
	Norm2() Aggregator[N]
}

// Aggregator folds values one at a time into a float64 result.
// Aggregators are single-use and not safe for concurrent use.
type Aggregator[N any] interface {
	Merge(v N)
	Result() float64
}

// isSmall is the shared float64 rule behind Field.IsSmall: magnitude vanishes
// when added to comparedTo.
func isSmall(comparedTo, magnitude float64) bool {
	if magnitude == 0 {
		return true
	}
	ref := math.Abs(comparedTo)

	return ref+magnitude == ref
}

// l2 accumulates a Euclidean norm with the scale/sum-of-squares recurrence,
// avoiding overflow for large magnitudes.
type l2 struct {
	scale float64 // running max |v|
	ssq   float64 // sum of (|v|/scale)^2
}

func (a *l2) mergeAbs(v float64) {
	if v == 0 {
		return
	}
	if a.scale < v {
		r := a.scale / v
		a.ssq = 1 + a.ssq*r*r
		a.scale = v

		return
	}
	r := v / a.scale
	a.ssq += r * r
}

func (a *l2) result() float64 {
	if a.scale == 0 {
		return 0
	}

	return a.scale * math.Sqrt(a.ssq)
}
