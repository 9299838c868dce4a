// SPDX-License-Identifier: MIT

// Package store - Dense storage (row-major), the only mutable store.
//
// Purpose:
//   - Provide the materialization target for Copy and the eager algebra.
//   - Keep the explicit index formula i*cols + j over one flat buffer.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//
// AI-Hints:
//   - Dense is a Store, so it can seed a Builder (Logical(d)) like any leaf.
//   - Dense is an ElementsConsumer: Builder.SupplyTo(d) fills it in place.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c).
package store

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps err with a uniform Dense context and the offending coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major store.
//   - rows, cols come from the embedded dims.
//   - data is a flat buffer of length rows*cols (offset = i*cols + j).
type Dense[N any] struct {
	dims[N]
	data []N
}

// Compile-time assertions.
var (
	_ Store[float64]            = (*Dense[float64])(nil)
	_ ElementsConsumer[float64] = (*Dense[float64])(nil)
	_ fmt.Stringer              = (*Dense[float64])(nil)
)

// NewDense creates a rows×cols store filled with the backend's zero.
// MAIN DESCRIPTION:
//   - Public constructor with shape validation. Zero-sized shapes are legal.
//
// Errors:
//   - ErrBadShape when rows < 0 or cols < 0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (f *Factory[N]) NewDense(rows, cols int) (*Dense[N], error) {
	if rows < 0 || cols < 0 {
		return nil, ErrBadShape
	}

	return f.newDense(rows, cols), nil
}

// newDense allocates without validation. Every slot shares one zero value,
// which is safe because element values are never mutated in place.
func (f *Factory[N]) newDense(rows, cols int) *Dense[N] {
	buf := make([]N, rows*cols)
	zero := f.field.Zero()
	for i := range buf {
		buf[i] = zero
	}

	return &Dense[N]{dims: dims[N]{rows: rows, cols: cols, f: f}, data: buf}
}

// DenseFromRows copies row-major literal data into a new Dense.
//
// Errors:
//   - ErrDimensionMismatch when rows have different lengths.
func (f *Factory[N]) DenseFromRows(data [][]N) (*Dense[N], error) {
	rows := len(data)
	cols := 0
	if rows > 0 {
		cols = len(data[0])
	}
	d := f.newDense(rows, cols)
	for i, row := range data {
		if len(row) != cols {
			return nil, fmt.Errorf("DenseFromRows: row %d has %d values, want %d: %w", i, len(row), cols, ErrDimensionMismatch)
		}
		copy(d.data[i*cols:(i+1)*cols], row)
	}

	return d, nil
}

// Shape packs Rows() and Cols() into a single call.
func (m *Dense[N]) Shape() (rows, cols int) { return m.rows, m.cols }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense[N]) indexOf(row, col int) (int, error) {
	if !inBounds(row, col, m.rows, m.cols) {
		return 0, ErrOutOfRange
	}

	return row*m.cols + col, nil
}

// At returns the value at (row, col) or a wrapped ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[N]) At(row, col int) (N, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero N
		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Float64At returns the real part of (row, col) as float64.
func (m *Dense[N]) Float64At(row, col int) (float64, error) {
	return float64At[N](m, row, col)
}

// Set stores v at (row, col) or returns a wrapped ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[N]) Set(row, col int, v N) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy with an independent buffer.
// Complexity: O(r*c).
func (m *Dense[N]) Clone() *Dense[N] {
	cp := make([]N, len(m.data))
	copy(cp, m.data)

	return &Dense[N]{dims: m.dims, data: cp}
}

// Do visits each element in row-major order; it stops when f returns false.
func (m *Dense[N]) Do(f func(i, j int, v N) bool) {
	var i, j, base int
	for i = 0; i < m.rows; i++ {
		base = i * m.cols
		for j = 0; j < m.cols; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// String renders rows as "[a, b]\n" lines for diagnostics.
// Complexity: O(r*c).
func (m *Dense[N]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.rows; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.cols
		for j = 0; j < m.cols; j++ {
			b.WriteString(m.f.field.Format(m.data[base+j]))
			if j+1 < m.cols {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// ---------- ElementsConsumer ----------

// IsAcceptable reports whether supplier has exactly this store's shape.
func (m *Dense[N]) IsAcceptable(supplier Shape) bool {
	return supplier != nil && supplier.Rows() == m.rows && supplier.Cols() == m.cols
}

// Accept overwrites every element with the corresponding element of s.
// s may read from m itself (for example a transposed view of m); m is only
// written once every element of s has been read.
//
// Errors:
//   - ErrDimensionMismatch when shapes differ.
//   - Any error raised while reading s (first one wins).
//
// Complexity:
//   - Time O(r*c); row bands run in parallel above the factory threshold.
func (m *Dense[N]) Accept(s Store[N]) error {
	if s == nil {
		return storeErrorf(opAccept, ErrNilStore)
	}
	if !m.IsAcceptable(s) {
		return storeErrorf(opAccept, ErrDimensionMismatch)
	}
	// s may be a view over m itself; fill a scratch buffer first.
	tmp := m.f.newDense(m.rows, m.cols)
	if err := fillFrom(tmp, s); err != nil {
		return storeErrorf(opAccept, err)
	}
	copy(m.data, tmp.data)

	return nil
}

// FillByMultiplying overwrites m with left × right, reading left row-major
// as an m.Rows()×right.Rows() matrix. Either operand may read from m.
//
// Errors:
//   - ErrDimensionMismatch when left.Count() != m.Rows()*right.Rows() or
//     right.Cols() != m.Cols().
func (m *Dense[N]) FillByMultiplying(left Access1D[N], right Store[N]) error {
	if left == nil || right == nil {
		return storeErrorf(opFill, ErrNilStore)
	}
	inner := right.Rows()
	if left.Count() != m.rows*inner || right.Cols() != m.cols {
		return storeErrorf(opFill, ErrDimensionMismatch)
	}
	leftAt := func(i, k int) (N, error) { return left.At(i*inner + k) }
	fullRange := func(int) (int, int) { return 0, inner }
	tmp := m.f.newDense(m.rows, m.cols)
	if err := multiplyInto(tmp, inner, leftAt, fullRange, right); err != nil {
		return storeErrorf(opFill, err)
	}
	copy(m.data, tmp.data)

	return nil
}
