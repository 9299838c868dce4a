// SPDX-License-Identifier: MIT

package scalar

import "math/big"

// BigPrec is the mantissa precision, in bits, of every value BigFloat produces.
const BigPrec uint = 256

// BigFloat is the arbitrary-precision real backend.
// A nil *big.Float is read as zero.
var BigFloat Field[*big.Float] = bigField{}

type bigField struct{}

func newBig() *big.Float { return new(big.Float).SetPrec(BigPrec) }

// orZero maps nil to a fresh zero so callers never dereference nil.
func orZero(a *big.Float) *big.Float {
	if a == nil {
		return newBig()
	}

	return a
}

func (bigField) Zero() *big.Float { return newBig() }
func (bigField) One() *big.Float  { return newBig().SetInt64(1) }

func (bigField) Add(a, b *big.Float) *big.Float { return newBig().Add(orZero(a), orZero(b)) }
func (bigField) Sub(a, b *big.Float) *big.Float { return newBig().Sub(orZero(a), orZero(b)) }
func (bigField) Mul(a, b *big.Float) *big.Float { return newBig().Mul(orZero(a), orZero(b)) }
func (bigField) Div(a, b *big.Float) *big.Float { return newBig().Quo(orZero(a), orZero(b)) }
func (bigField) Neg(a *big.Float) *big.Float    { return newBig().Neg(orZero(a)) }

// Conj returns a itself; values are never mutated after creation.
func (bigField) Conj(a *big.Float) *big.Float { return orZero(a) }

func (bigField) Abs(a *big.Float) float64 {
	f, _ := newBig().Abs(orZero(a)).Float64()

	return f
}

func (bigField) Float64(a *big.Float) float64 {
	f, _ := orZero(a).Float64()

	return f
}

func (bigField) FromFloat64(v float64) *big.Float { return newBig().SetFloat64(v) }

func (bigField) IsZero(a *big.Float) bool { return a == nil || a.Sign() == 0 }

func (f bigField) IsSmall(comparedTo float64, a *big.Float) bool {
	return isSmall(comparedTo, f.Abs(a))
}

func (bigField) IsReal() bool { return true }

func (bigField) Format(a *big.Float) string { return orZero(a).Text('g', 10) }

func (bigField) Norm2() Aggregator[*big.Float] { return &bigNorm{sum: newBig()} }

// bigNorm keeps the sum of squares at full precision and rounds only once.
type bigNorm struct{ sum *big.Float }

func (n *bigNorm) Merge(v *big.Float) {
	v = orZero(v)
	n.sum.Add(n.sum, newBig().Mul(v, v))
}

func (n *bigNorm) Result() float64 {
	f, _ := newBig().Sqrt(n.sum).Float64()

	return f
}
