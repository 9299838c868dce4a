// SPDX-License-Identifier: MIT

// Package store: one-dimensional slices over a Store.
//
// A Slice is a stateless read-through view: it keeps only its base and start
// coordinates, so every read reflects the base as it is at read time. Slices
// never validate indices themselves; an out-of-range read is reported by the
// base store.
package store

import "fmt"

type sliceKind uint8

const (
	sliceRow sliceKind = iota
	sliceColumn
	sliceDiagonal
	sliceRange
)

// Slice is a one-dimensional read-only view of part of a Store.
type Slice[N any] struct {
	base  Store[N]
	row   int
	col   int
	first int
	count int
	kind  sliceKind
}

var _ Access1D[float64] = Slice[float64]{}

// SliceRow returns row starting at column col: (row, col), (row, col+1), ...
func SliceRow[N any](s Store[N], row, col int) Slice[N] {
	return Slice[N]{base: s, row: row, col: col, count: max(s.Cols()-col, 0), kind: sliceRow}
}

// SliceColumn returns column col starting at row: (row, col), (row+1, col), ...
func SliceColumn[N any](s Store[N], row, col int) Slice[N] {
	return Slice[N]{base: s, row: row, col: col, count: max(s.Rows()-row, 0), kind: sliceColumn}
}

// SliceDiagonal returns the diagonal starting at (row, col).
func SliceDiagonal[N any](s Store[N], row, col int) Slice[N] {
	count := max(min(s.Rows()-row, s.Cols()-col), 0)

	return Slice[N]{base: s, row: row, col: col, count: count, kind: sliceDiagonal}
}

// SliceRange returns the elements with row-major linear index in
// [first, limit): index i is (i / Cols, i % Cols). Linear indices in this
// package are row-major, not column-major.
func SliceRange[N any](s Store[N], first, limit int) Slice[N] {
	return Slice[N]{base: s, first: first, count: max(limit-first, 0), kind: sliceRange}
}

// Count returns the number of elements in the slice.
func (v Slice[N]) Count() int { return v.count }

// At returns element i of the slice, or the base store's error for the
// translated coordinates.
func (v Slice[N]) At(i int) (N, error) {
	row, col := v.coords(i)

	return v.base.At(row, col)
}

// Float64At returns the real part of element i as float64.
func (v Slice[N]) Float64At(i int) (float64, error) {
	x, err := v.At(i)
	if err != nil {
		return 0, err
	}

	return v.base.Factory().field.Float64(x), nil
}

func (v Slice[N]) coords(i int) (row, col int) {
	switch v.kind {
	case sliceRow:
		return v.row, v.col + i
	case sliceColumn:
		return v.row + i, v.col
	case sliceDiagonal:
		return v.row + i, v.col + i
	default:
		cols := v.base.Cols()
		if cols == 0 {
			return v.first + i, 0
		}
		return (v.first + i) / cols, (v.first + i) % cols
	}
}

// Vector is a plain in-memory Access1D.
type Vector[N any] []N

var _ Access1D[float64] = Vector[float64](nil)

// Count returns len(v).
func (v Vector[N]) Count() int { return len(v) }

// At returns v[i] or a wrapped ErrOutOfRange.
func (v Vector[N]) At(i int) (N, error) {
	if i < 0 || i >= len(v) {
		var zero N
		return zero, fmt.Errorf("Vector.At(%d): %w", i, ErrOutOfRange)
	}

	return v[i], nil
}

// Values copies every element of a into a new slice.
func Values[N any](a Access1D[N]) ([]N, error) {
	out := make([]N, a.Count())
	var err error
	for i := range out {
		if out[i], err = a.At(i); err != nil {
			return nil, err
		}
	}

	return out, nil
}
