// SPDX-License-Identifier: MIT

// Package store: public contracts shared by every view, leaf and consumer.
// This file contains ONLY interfaces and the embedded dims helper that supplies
// default shape and structural-hint behavior.
package store

// Shape is anything with a fixed row and column count.
type Shape interface {
	// Rows returns the number of rows (>= 0).
	Rows() int
	// Cols returns the number of columns (>= 0).
	Cols() int
}

// Access1D is a read-only, restartable one-dimensional sequence.
type Access1D[N any] interface {
	// Count returns the number of elements.
	Count() int
	// At returns element i.
	At(i int) (N, error)
}

// Access2D is the minimal two-dimensional source a wrapper leaf can adapt.
// Any matrix with Rows/Cols/At(i, j) (N, error) satisfies it.
type Access2D[N any] interface {
	Shape
	At(row, col int) (N, error)
}

// Store is an immutable logical view of two-dimensional numeric data.
//
// Contract:
//   - Rows and Cols are fixed at construction and consistent with At.
//   - At never mutates anything; concurrent reads are safe.
//   - Out-of-range coordinates are reported by the leaf that ultimately resolves
//     them (ErrOutOfRange); views only translate indices.
//   - FirstInRow/LimitOfRow (and the column pair) are structural hints: every
//     nonzero element of the row lies in [FirstInRow, LimitOfRow). A view may
//     report the full range but never a tighter one than the truth.
type Store[N any] interface {
	Access2D[N]

	// Float64At returns the real part of element (row, col) as float64.
	Float64At(row, col int) (float64, error)

	// Factory returns the factory (numeric backend and options) the view was
	// built from.
	Factory() *Factory[N]

	FirstInRow(row int) int
	LimitOfRow(row int) int
	FirstInColumn(col int) int
	LimitOfColumn(col int) int
}

// ElementsConsumer is the push side of bulk population.
type ElementsConsumer[N any] interface {
	// IsAcceptable reports whether the consumer can take a supplier of this shape.
	IsAcceptable(supplier Shape) bool
	// Accept copies every element of s into the consumer.
	Accept(s Store[N]) error
	// FillByMultiplying overwrites the consumer with left × right, where left is
	// read row-major with Rows() rows.
	FillByMultiplying(left Access1D[N], right Store[N]) error
}

// ElementsSupplier is the pull side of bulk population.
type ElementsSupplier[N any] interface {
	Shape
	// SupplyTo pushes the supplier's elements into consumer.
	SupplyTo(consumer ElementsConsumer[N]) error
}

// dims carries a view's shape and factory and supplies the dense default hints.
// Views embed it and override the hints they can narrow.
type dims[N any] struct {
	rows, cols int
	f          *Factory[N]
}

func (d dims[N]) Rows() int             { return d.rows }
func (d dims[N]) Cols() int             { return d.cols }
func (d dims[N]) Factory() *Factory[N]  { return d.f }
func (d dims[N]) FirstInRow(int) int    { return 0 }
func (d dims[N]) LimitOfRow(int) int    { return d.cols }
func (d dims[N]) FirstInColumn(int) int { return 0 }
func (d dims[N]) LimitOfColumn(int) int { return d.rows }

// float64At is the shared Float64At implementation for every view.
func float64At[N any](s Store[N], row, col int) (float64, error) {
	v, err := s.At(row, col)
	if err != nil {
		return 0, err
	}

	return s.Factory().field.Float64(v), nil
}

// clamp bounds v into [lo, hi].
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
