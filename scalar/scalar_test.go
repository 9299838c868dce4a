// SPDX-License-Identifier: MIT
// Package scalar_test contains unit tests for the numeric backends.
package scalar_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvmat/scalar"
	"github.com/stretchr/testify/require"
)

// TestFloat64Arithmetic checks the primitive backend against plain float64 math.
func TestFloat64Arithmetic(t *testing.T) {
	t.Parallel()
	f := scalar.Float64

	require.Equal(t, 0.0, f.Zero())
	require.Equal(t, 1.0, f.One())
	require.Equal(t, 5.0, f.Add(2, 3))
	require.Equal(t, -1.0, f.Sub(2, 3))
	require.Equal(t, 6.0, f.Mul(2, 3))
	require.Equal(t, 1.5, f.Div(3, 2))
	require.Equal(t, -2.0, f.Neg(2))
	require.Equal(t, 2.0, f.Conj(2))
	require.Equal(t, 2.0, f.Abs(-2))
	require.True(t, f.IsReal())
	require.True(t, f.IsZero(0))
	require.Equal(t, "0.25", f.Format(0.25))
}

// TestComplexConjAndAbs covers conjugation, modulus and the real-part view.
func TestComplexConjAndAbs(t *testing.T) {
	t.Parallel()
	f := scalar.Complex128

	require.Equal(t, complex(3, -4), f.Conj(complex(3, 4)))
	require.Equal(t, 5.0, f.Abs(complex(3, 4)))
	require.Equal(t, 3.0, f.Float64(complex(3, 4)))
	require.Equal(t, complex(2, 0), f.FromFloat64(2))
	require.False(t, f.IsReal())
	require.Equal(t, complex(1, 7), f.Mul(complex(1, 2), complex(3, 1)))
}

// TestBigFloatArithmetic checks precision and nil-as-zero handling.
func TestBigFloatArithmetic(t *testing.T) {
	t.Parallel()
	f := scalar.BigFloat

	third := f.Div(f.One(), f.FromFloat64(3))
	require.Equal(t, scalar.BigPrec, third.Prec())

	sum := f.Add(f.Add(third, third), third)
	require.Equal(t, 1.0, f.Float64(sum))

	require.True(t, f.IsZero(nil))
	require.Equal(t, 2.0, f.Float64(f.Add(nil, f.FromFloat64(2))))
	require.Equal(t, 3.0, f.Abs(f.FromFloat64(-3)))
	require.Equal(t, "1.5", f.Format(f.FromFloat64(1.5)))
	require.True(t, f.IsReal())
}

// TestIsSmall covers the relative negligibility rule on all backends.
func TestIsSmall(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		comparedTo float64
		value      float64
		want       bool
	}{
		{"exact zero", 0, 0, true},
		{"tiny vs one", 1, 1e-17, true},
		{"tiny vs zero", 0, 1e-300, false},
		{"comparable", 1, 0.5, false},
		{"negative reference", -1, 1e-18, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, scalar.Float64.IsSmall(tc.comparedTo, tc.value))
			require.Equal(t, tc.want, scalar.Complex128.IsSmall(tc.comparedTo, complex(tc.value, 0)))
			require.Equal(t, tc.want, scalar.BigFloat.IsSmall(tc.comparedTo, scalar.BigFloat.FromFloat64(tc.value)))
		})
	}
}

// TestNorm2 verifies the L2 aggregators, including overflow-prone magnitudes.
func TestNorm2(t *testing.T) {
	t.Parallel()

	agg := scalar.Float64.Norm2()
	for _, v := range []float64{3, -4, 0} {
		agg.Merge(v)
	}
	require.Equal(t, 5.0, agg.Result())

	huge := scalar.Float64.Norm2()
	huge.Merge(1e200)
	huge.Merge(1e200)
	require.InDelta(t, math.Sqrt2*1e200, huge.Result(), 1e186)

	cagg := scalar.Complex128.Norm2()
	cagg.Merge(complex(3, 4))
	cagg.Merge(complex(0, 12))
	require.InDelta(t, 13.0, cagg.Result(), 1e-12)

	bagg := scalar.BigFloat.Norm2()
	bagg.Merge(scalar.BigFloat.FromFloat64(1))
	bagg.Merge(scalar.BigFloat.FromFloat64(1))
	bagg.Merge(nil)
	require.InDelta(t, math.Sqrt2, bagg.Result(), 1e-15)

	require.Equal(t, 0.0, scalar.Float64.Norm2().Result())
}
