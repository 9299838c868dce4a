// SPDX-License-Identifier: MIT

package scalar

import (
	"math/cmplx"
	"strconv"
)

// Complex128 is the complex backend.
var Complex128 Field[complex128] = complexField{}

type complexField struct{}

func (complexField) Zero() complex128                 { return 0 }
func (complexField) One() complex128                  { return 1 }
func (complexField) Add(a, b complex128) complex128   { return a + b }
func (complexField) Sub(a, b complex128) complex128   { return a - b }
func (complexField) Mul(a, b complex128) complex128   { return a * b }
func (complexField) Div(a, b complex128) complex128   { return a / b }
func (complexField) Neg(a complex128) complex128      { return -a }
func (complexField) Conj(a complex128) complex128     { return cmplx.Conj(a) }
func (complexField) Abs(a complex128) float64         { return cmplx.Abs(a) }
func (complexField) Float64(a complex128) float64     { return real(a) }
func (complexField) FromFloat64(v float64) complex128 { return complex(v, 0) }
func (complexField) IsZero(a complex128) bool         { return a == 0 }
func (complexField) IsSmall(comparedTo float64, a complex128) bool {
	return isSmall(comparedTo, cmplx.Abs(a))
}
func (complexField) IsReal() bool { return false }
func (complexField) Format(a complex128) string {
	return strconv.FormatComplex(a, 'g', -1, 128)
}
func (complexField) Norm2() Aggregator[complex128] { return &complexNorm{} }

// complexNorm treats re and im as two independent components, which yields
// sqrt(sum |v|^2) without squaring the modulus first.
type complexNorm struct{ acc l2 }

func (n *complexNorm) Merge(v complex128) {
	re, im := real(v), imag(v)
	if re < 0 {
		re = -re
	}
	if im < 0 {
		im = -im
	}
	n.acc.mergeAbs(re)
	n.acc.mergeAbs(im)
}

func (n *complexNorm) Result() float64 { return n.acc.result() }
