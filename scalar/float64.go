// SPDX-License-Identifier: MIT

package scalar

import (
	"math"
	"strconv"
)

// Float64 is the primitive real backend.
var Float64 Field[float64] = float64Field{}

type float64Field struct{}

func (float64Field) Zero() float64             { return 0 }
func (float64Field) One() float64              { return 1 }
func (float64Field) Add(a, b float64) float64  { return a + b }
func (float64Field) Sub(a, b float64) float64  { return a - b }
func (float64Field) Mul(a, b float64) float64  { return a * b }
func (float64Field) Div(a, b float64) float64  { return a / b }
func (float64Field) Neg(a float64) float64     { return -a }
func (float64Field) Conj(a float64) float64    { return a }
func (float64Field) Abs(a float64) float64     { return math.Abs(a) }
func (float64Field) Float64(a float64) float64 { return a }
func (float64Field) FromFloat64(v float64) float64 {
	return v
}
func (float64Field) IsZero(a float64) bool { return a == 0 }
func (float64Field) IsSmall(comparedTo float64, a float64) bool {
	return isSmall(comparedTo, math.Abs(a))
}
func (float64Field) IsReal() bool { return true }
func (float64Field) Format(a float64) string {
	return strconv.FormatFloat(a, 'g', -1, 64)
}
func (float64Field) Norm2() Aggregator[float64] { return &float64Norm{} }

type float64Norm struct{ acc l2 }

func (n *float64Norm) Merge(v float64) { n.acc.mergeAbs(math.Abs(v)) }
func (n *float64Norm) Result() float64 { return n.acc.result() }
