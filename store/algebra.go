// SPDX-License-Identifier: MIT

// Package store: algebra over any Store.
//
// Purpose:
//   - Provide the operations every store supports, built only from Rows/Cols/At
//     and the structural hints.
//
// Policy:
//   - Transpose/Conjugate are O(1) views and cancel in pairs.
//   - Copy, Add, Subtract, Scale, Negate, Signum and Multiply are eager: they
//     return a fresh Dense and never mutate their operands.
//   - Shape checks compare row/column counts directly.
package store

import (
	"math"
	"strings"

	"github.com/katalvlaran/lvmat/scalar"
)

// Transpose returns the transposed view of s. Transposing a transposed view
// returns its original.
func Transpose[N any](s Store[N]) Store[N] { return transposeOf(s) }

// Conjugate returns the conjugated view of s. Conjugating a conjugated view
// returns its original; on real backends s itself is returned.
func Conjugate[N any](s Store[N]) Store[N] { return conjugateOf(s) }

// Copy materializes s into a new, independent Dense.
// Every call allocates a new buffer. Complexity: O(r*c).
func Copy[N any](s Store[N]) (*Dense[N], error) {
	if s == nil {
		return nil, storeErrorf(opCopy, ErrNilStore)
	}
	dst := s.Factory().newDense(s.Rows(), s.Cols())
	if err := fillFrom(dst, s); err != nil {
		return nil, storeErrorf(opCopy, err)
	}

	return dst, nil
}

// OperateOnAll returns a Dense with out[i,j] = fn(s[i,j]).
func OperateOnAll[N any](s Store[N], fn func(v N) N) (*Dense[N], error) {
	out, err := Copy(s)
	if err != nil {
		return nil, err
	}
	for i, v := range out.data {
		out.data[i] = fn(v)
	}

	return out, nil
}

// OperateOnMatching returns a Dense with out[i,j] = fn(a[i,j], b[i,j]).
//
// Errors:
//   - ErrNilStore, ErrDimensionMismatch (shapes differ).
func OperateOnMatching[N any](a, b Store[N], fn func(x, y N) N) (*Dense[N], error) {
	if a == nil || b == nil {
		return nil, ErrNilStore
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return nil, ErrDimensionMismatch
	}
	out, err := Copy(a)
	if err != nil {
		return nil, err
	}
	var i, j int
	var y N
	for i = 0; i < out.rows; i++ {
		for j = 0; j < out.cols; j++ {
			if y, err = b.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*out.cols+j] = fn(out.data[i*out.cols+j], y)
		}
	}

	return out, nil
}

// Add returns the element-wise sum a + b.
func Add[N any](a, b Store[N]) (*Dense[N], error) {
	if a == nil {
		return nil, storeErrorf(opAdd, ErrNilStore)
	}
	out, err := OperateOnMatching(a, b, a.Factory().field.Add)
	if err != nil {
		return nil, storeErrorf(opAdd, err)
	}

	return out, nil
}

// Subtract returns the element-wise difference a - b.
func Subtract[N any](a, b Store[N]) (*Dense[N], error) {
	if a == nil {
		return nil, storeErrorf(opSubtract, ErrNilStore)
	}
	out, err := OperateOnMatching(a, b, a.Factory().field.Sub)
	if err != nil {
		return nil, storeErrorf(opSubtract, err)
	}

	return out, nil
}

// Scale returns alpha*s.
func Scale[N any](s Store[N], alpha N) (*Dense[N], error) {
	if s == nil {
		return nil, storeErrorf(opScale, ErrNilStore)
	}
	field := s.Factory().field
	out, err := OperateOnAll(s, func(v N) N { return field.Mul(v, alpha) })
	if err != nil {
		return nil, storeErrorf(opScale, err)
	}

	return out, nil
}

// ScaleFloat returns alpha*s with alpha converted into the backend.
func ScaleFloat[N any](s Store[N], alpha float64) (*Dense[N], error) {
	if s == nil {
		return nil, storeErrorf(opScale, ErrNilStore)
	}

	return Scale(s, s.Factory().field.FromFloat64(alpha))
}

// Negate returns -s.
func Negate[N any](s Store[N]) (*Dense[N], error) {
	if s == nil {
		return nil, storeErrorf(opScale, ErrNilStore)
	}

	return OperateOnAll(s, s.Factory().field.Neg)
}

// Signum returns s scaled to unit norm. A zero store is returned as a zero copy.
func Signum[N any](s Store[N]) (*Dense[N], error) {
	n, err := Norm(s)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return Copy(s)
	}

	return ScaleFloat(s, 1/n)
}

// Multiply returns the matrix product left × right, shaped
// left.Rows()×right.Cols().
//
// Errors:
//   - ErrNilStore, ErrDimensionMismatch when right.Rows() != left.Cols().
//
// Structural zeros:
//   - Terms outside the hint ranges and terms whose left factor is exactly zero
//     are skipped, so 0 × Inf or 0 × NaN contributes 0 rather than NaN.
//
// Complexity:
//   - O(r*n*c) worst case; rows of left and columns of right are restricted to
//     their structural hints, so masked and block-sparse views cost less.
func Multiply[N any](left, right Store[N]) (*Dense[N], error) {
	if left == nil || right == nil {
		return nil, storeErrorf(opMultiply, ErrNilStore)
	}
	if right.Rows() != left.Cols() {
		return nil, storeErrorf(opMultiply, ErrDimensionMismatch)
	}
	dst := left.Factory().newDense(left.Rows(), right.Cols())
	inner := left.Cols()
	leftRange := func(i int) (int, int) {
		return clamp(left.FirstInRow(i), 0, inner), clamp(left.LimitOfRow(i), 0, inner)
	}
	if err := multiplyInto(dst, inner, left.At, leftRange, right); err != nil {
		return nil, storeErrorf(opMultiply, err)
	}

	return dst, nil
}

// Premultiply returns the lazy product left × s, where left is read row-major
// (not column-major) with left.Count()/s.Rows() rows. Nothing is computed
// until the supplier is consumed.
//
// Errors:
//   - ErrDimensionMismatch when left.Count() is not a multiple of s.Rows().
func Premultiply[N any](s Store[N], left Access1D[N]) (*ProductSupplier[N], error) {
	if s == nil || left == nil {
		return nil, storeErrorf(opPremultiply, ErrNilStore)
	}
	inner := s.Rows()
	if (inner == 0 && left.Count() != 0) || (inner != 0 && left.Count()%inner != 0) {
		return nil, storeErrorf(opPremultiply, ErrDimensionMismatch)
	}
	rows := 0
	if inner != 0 {
		rows = left.Count() / inner
	}

	return &ProductSupplier[N]{left: left, right: s, rows: rows}, nil
}

// MultiplyBoth returns the quadratic form vᴴ·s·v. s must be square and v must
// have exactly s.Rows() elements.
//
// Errors:
//   - ErrNonSquare, ErrNotVector.
func MultiplyBoth[N any](s Store[N], v Access1D[N]) (N, error) {
	var zero N
	if s == nil || v == nil {
		return zero, storeErrorf(opMultiplyTwo, ErrNilStore)
	}
	if s.Rows() != s.Cols() {
		return zero, storeErrorf(opMultiplyTwo, ErrNonSquare)
	}
	n := v.Count()
	if n != s.Rows() {
		return zero, storeErrorf(opMultiplyTwo, ErrNotVector)
	}
	f := s.Factory()
	if n == 0 {
		return f.field.Zero(), nil
	}
	values, err := Values(v)
	if err != nil {
		return zero, storeErrorf(opMultiplyTwo, err)
	}
	conj := make(Vector[N], n)
	for i, x := range values {
		conj[i] = f.field.Conj(x)
	}

	// vᴴ·s stays lazy until the 1×n row is needed.
	product, err := Premultiply(s, Access1D[N](conj))
	if err != nil {
		return zero, err
	}
	row, err := product.Get()
	if err != nil {
		return zero, storeErrorf(opMultiplyTwo, err)
	}
	result, err := Multiply[N](row, f.column(values))
	if err != nil {
		return zero, storeErrorf(opMultiplyTwo, err)
	}

	return result.data[0], nil
}

// Visit calls fn for every element in row-major order; it stops early when fn
// returns false.
func Visit[N any](s Store[N], fn func(row, col int, v N) bool) error {
	if s == nil {
		return ErrNilStore
	}
	rows, cols := s.Rows(), s.Cols()
	var v N
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = s.At(i, j); err != nil {
				return err
			}
			if !fn(i, j, v) {
				return nil
			}
		}
	}

	return nil
}

// Aggregate folds every element of s into agg and returns its result.
func Aggregate[N any](s Store[N], agg scalar.Aggregator[N]) (float64, error) {
	err := Visit(s, func(_, _ int, v N) bool {
		agg.Merge(v)
		return true
	})
	if err != nil {
		return 0, err
	}

	return agg.Result(), nil
}

// Norm returns the Frobenius (L2) norm: the square root of the sum of squared
// magnitudes.
func Norm[N any](s Store[N]) (float64, error) {
	if s == nil {
		return 0, ErrNilStore
	}

	return Aggregate(s, s.Factory().field.Norm2())
}

// IsSmall reports whether the norm of s is negligible compared to comparedTo.
func IsSmall[N any](s Store[N], comparedTo float64) (bool, error) {
	n, err := Norm(s)
	if err != nil {
		return false, err
	}
	ref := math.Abs(comparedTo)

	return n == 0 || ref+n == ref, nil
}

// AllClose reports whether a and b have the same shape and every pair of
// elements differs by at most tol in magnitude.
func AllClose[N any](a, b Store[N], tol float64) (bool, error) {
	if a == nil || b == nil {
		return false, storeErrorf(opAllClose, ErrNilStore)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false, nil
	}
	field := a.Factory().field
	var y N
	var err error
	same := true
	visitErr := Visit(a, func(i, j int, x N) bool {
		if y, err = b.At(i, j); err != nil {
			return false
		}
		same = field.Abs(field.Sub(x, y)) <= math.Abs(tol)
		return same
	})
	if visitErr != nil {
		return false, storeErrorf(opAllClose, visitErr)
	}
	if err != nil {
		return false, storeErrorf(opAllClose, err)
	}

	return same, nil
}

// Format renders s as "[a, b]\n" lines, or the first read error.
func Format[N any](s Store[N]) string {
	if s == nil {
		return "<nil>"
	}
	var b strings.Builder
	field := s.Factory().field
	cols := s.Cols()
	err := Visit(s, func(_, j int, v N) bool {
		if j == 0 {
			b.WriteString(_fmtRowOpen)
		}
		b.WriteString(field.Format(v))
		if j+1 < cols {
			b.WriteString(_fmtSep)
		} else {
			b.WriteString(_fmtRowClose)
		}
		return true
	})
	if err != nil {
		return err.Error()
	}

	return b.String()
}
