// SPDX-License-Identifier: MIT

// Package store: the logical builder.
//
// Purpose:
//   - Compose structural transforms into one lazy Store without copying data.
//   - Keep exactly one "current" view; every transform wraps it and replaces it.
//
// Error policy:
//   - A transform either fully succeeds (current is replaced) or fully fails
//     (current is untouched and the error is recorded).
//   - The first error is sticky: later transforms become no-ops and Get, Copy
//     and SupplyTo return it. Err exposes it at any point of the chain.
//
// AI-Hints:
//   - Transpose and Conjugate cancel in pairs; toggling them conditionally
//     inside loops never grows the decorator chain.
//   - A Builder is single-owner. Share the extracted Store, not the Builder.
package store

import (
	"fmt"
	"log/slog"
)

// Builder accumulates transforms over a current view.
type Builder[N any] struct {
	cur Store[N]
	f   *Factory[N]
	err error
}

// Compile-time assertion: the builder is a supplier.
var _ ElementsSupplier[float64] = (*Builder[float64])(nil)

// Logical starts a builder over s. It panics when s is nil (programmer error).
func Logical[N any](s Store[N]) *Builder[N] {
	if s == nil {
		panic("store: Logical: store must be non-nil")
	}

	return &Builder[N]{cur: s, f: s.Factory()}
}

// failedBuilder returns a builder that already carries err.
func failedBuilder[N any](f *Factory[N], err error) *Builder[N] {
	return &Builder[N]{f: f, err: err}
}

// apply runs one transform under the builder's error policy.
func (b *Builder[N]) apply(op string, fn func(cur Store[N]) (Store[N], error)) *Builder[N] {
	if b.err != nil {
		return b
	}
	if b.cur == nil {
		b.err = storeErrorf(op, ErrNilStore)
		return b
	}
	next, err := fn(b.cur)
	if err != nil {
		b.err = storeErrorf(op, err)
		if b.f != nil {
			b.f.opts.logger.Debug("store: transform rejected",
				slog.String("op", op),
				slog.Int("rows", b.cur.Rows()),
				slog.Int("cols", b.cur.Cols()),
				slog.Any("err", err))
		}

		return b
	}
	b.cur = next

	return b
}

// ---------- Block concatenation ----------

// AboveZero prepends rows zero rows.
func (b *Builder[N]) AboveZero(rows int) *Builder[N] {
	return b.apply(opAbove, func(cur Store[N]) (Store[N], error) {
		z, err := newZero(b.f, rows, cur.Cols())
		if err != nil {
			return nil, err
		}
		return newAboveBelow[N](z, cur)
	})
}

// Above joins stores left to right (zero-padded on the right up to the current
// column count) and stacks the result above the current view.
func (b *Builder[N]) Above(stores ...Store[N]) *Builder[N] {
	return b.apply(opAbove, func(cur Store[N]) (Store[N], error) {
		upper, err := concatRow(b.f, cur.Cols(), stores)
		if err != nil {
			return nil, err
		}
		return newAboveBelow(upper, cur)
	})
}

// AboveValues stacks the row of values (zero-padded) above the current view.
func (b *Builder[N]) AboveValues(values ...N) *Builder[N] {
	return b.Above(b.f.row(values))
}

// BelowZero appends rows zero rows.
func (b *Builder[N]) BelowZero(rows int) *Builder[N] {
	return b.apply(opBelow, func(cur Store[N]) (Store[N], error) {
		z, err := newZero(b.f, rows, cur.Cols())
		if err != nil {
			return nil, err
		}
		return newAboveBelow[N](cur, z)
	})
}

// Below joins stores left to right (zero-padded) and stacks them below.
func (b *Builder[N]) Below(stores ...Store[N]) *Builder[N] {
	return b.apply(opBelow, func(cur Store[N]) (Store[N], error) {
		lower, err := concatRow(b.f, cur.Cols(), stores)
		if err != nil {
			return nil, err
		}
		return newAboveBelow(cur, lower)
	})
}

// BelowValues stacks the row of values (zero-padded) below the current view.
func (b *Builder[N]) BelowValues(values ...N) *Builder[N] {
	return b.Below(b.f.row(values))
}

// LeftZero prepends cols zero columns.
func (b *Builder[N]) LeftZero(cols int) *Builder[N] {
	return b.apply(opLeft, func(cur Store[N]) (Store[N], error) {
		z, err := newZero(b.f, cur.Rows(), cols)
		if err != nil {
			return nil, err
		}
		return newLeftRight[N](z, cur)
	})
}

// Left stacks stores top to bottom (zero-padded below up to the current row
// count) and places the result left of the current view.
func (b *Builder[N]) Left(stores ...Store[N]) *Builder[N] {
	return b.apply(opLeft, func(cur Store[N]) (Store[N], error) {
		left, err := concatColumn(b.f, cur.Rows(), stores)
		if err != nil {
			return nil, err
		}
		return newLeftRight(left, cur)
	})
}

// LeftValues places the column of values (zero-padded) left of the current view.
func (b *Builder[N]) LeftValues(values ...N) *Builder[N] {
	return b.Left(b.f.column(values))
}

// RightZero appends cols zero columns.
func (b *Builder[N]) RightZero(cols int) *Builder[N] {
	return b.apply(opRight, func(cur Store[N]) (Store[N], error) {
		z, err := newZero(b.f, cur.Rows(), cols)
		if err != nil {
			return nil, err
		}
		return newLeftRight[N](cur, z)
	})
}

// Right stacks stores top to bottom (zero-padded) and places them right of the
// current view.
func (b *Builder[N]) Right(stores ...Store[N]) *Builder[N] {
	return b.apply(opRight, func(cur Store[N]) (Store[N], error) {
		right, err := concatColumn(b.f, cur.Rows(), stores)
		if err != nil {
			return nil, err
		}
		return newLeftRight(cur, right)
	})
}

// RightValues places the column of values (zero-padded) right of the current view.
func (b *Builder[N]) RightValues(values ...N) *Builder[N] {
	return b.Right(b.f.column(values))
}

// Diagonally embeds each store along the main diagonal of the growing result.
// Off-diagonal corners are zero. The final shape is the sum of all row counts
// by the sum of all column counts (current view included).
func (b *Builder[N]) Diagonally(stores ...Store[N]) *Builder[N] {
	return b.apply(opDiagonally, func(cur Store[N]) (Store[N], error) {
		for _, d := range stores {
			if d == nil {
				return nil, ErrNilStore
			}
			right, _ := newZero(b.f, cur.Rows(), d.Cols())
			left, _ := newZero(b.f, d.Rows(), cur.Cols())
			upper, err := newLeftRight[N](cur, right)
			if err != nil {
				return nil, err
			}
			lower, err := newLeftRight[N](left, d)
			if err != nil {
				return nil, err
			}
			if cur, err = newAboveBelow[N](upper, lower); err != nil {
				return nil, err
			}
		}
		return cur, nil
	})
}

// ---------- Structural masks ----------

// Triangular keeps the upper (row <= col) or lower (row >= col) triangle and
// reads exactly zero elsewhere. With assumeOne the diagonal reads exactly one.
func (b *Builder[N]) Triangular(upper, assumeOne bool) *Builder[N] {
	return b.apply("Triangular", func(cur Store[N]) (Store[N], error) {
		return newTriangular(cur, upper, assumeOne), nil
	})
}

// Diagonal keeps only the main diagonal (optionally forced to one).
func (b *Builder[N]) Diagonal(assumeOne bool) *Builder[N] {
	return b.apply("Diagonal", func(cur Store[N]) (Store[N], error) {
		return newTriangular[N](newTriangular(cur, false, assumeOne), true, assumeOne), nil
	})
}

// Hessenberg zeroes below the first subdiagonal (upper) or above the first
// superdiagonal (lower).
func (b *Builder[N]) Hessenberg(upper bool) *Builder[N] {
	return b.apply("Hessenberg", func(cur Store[N]) (Store[N], error) {
		return newHessenberg(cur, upper), nil
	})
}

// Bidiagonal keeps the diagonal and the first super- (upper) or sub-diagonal
// (lower): a triangle over the opposite Hessenberg band.
func (b *Builder[N]) Bidiagonal(upper, assumeOne bool) *Builder[N] {
	return b.apply("Bidiagonal", func(cur Store[N]) (Store[N], error) {
		return newTriangular[N](newHessenberg(cur, !upper), upper, assumeOne), nil
	})
}

// Tridiagonal keeps the diagonal and both first off-diagonals.
func (b *Builder[N]) Tridiagonal() *Builder[N] {
	return b.apply("Tridiagonal", func(cur Store[N]) (Store[N], error) {
		return newHessenberg[N](newHessenberg(cur, false), true), nil
	})
}

// Hermitian mirrors the stored upper (or lower) half into the other half as its
// conjugate transpose. The current view must be square.
func (b *Builder[N]) Hermitian(upper bool) *Builder[N] {
	return b.apply(opHermitian, func(cur Store[N]) (Store[N], error) {
		return newHermitian(cur, upper)
	})
}

// ---------- Selection and windows ----------

// Row selects rows by index. Indices may repeat and need not be ordered; they
// are resolved lazily.
func (b *Builder[N]) Row(rows ...int) *Builder[N] {
	return b.apply("Row", func(cur Store[N]) (Store[N], error) {
		return newRows(cur, rows), nil
	})
}

// Column selects columns by index, with the same rules as Row.
func (b *Builder[N]) Column(cols ...int) *Builder[N] {
	return b.apply("Column", func(cur Store[N]) (Store[N], error) {
		return newColumns(cur, cols), nil
	})
}

// Offsets windows the view from (max(row,0), max(col,0)) to its bottom-right
// corner. Offsets beyond the current shape fail with ErrDimensionMismatch.
func (b *Builder[N]) Offsets(row, col int) *Builder[N] {
	return b.apply(opOffsets, func(cur Store[N]) (Store[N], error) {
		return newOffset(cur, row, col)
	})
}

// Limits caps the visible shape at rows×cols. A negative limit means "no
// limit" for that dimension.
func (b *Builder[N]) Limits(rows, cols int) *Builder[N] {
	return b.apply("Limits", func(cur Store[N]) (Store[N], error) {
		return newLimit(cur, rows, cols), nil
	})
}

// Superimpose overlays s at (0, 0).
func (b *Builder[N]) Superimpose(s Store[N]) *Builder[N] {
	return b.SuperimposeAt(0, 0, s)
}

// SuperimposeAt overlays s with its top-left corner at (row, col). The overlay
// footprint must lie within the current view.
func (b *Builder[N]) SuperimposeAt(row, col int, s Store[N]) *Builder[N] {
	return b.apply(opSuperimpose, func(cur Store[N]) (Store[N], error) {
		return newSuperimposed(cur, row, col, s)
	})
}

// SuperimposeValue overlays the single element v at (row, col).
func (b *Builder[N]) SuperimposeValue(row, col int, v N) *Builder[N] {
	return b.SuperimposeAt(row, col, newSingle(b.f, v))
}

// ---------- Self-inverse transforms ----------

// Transpose swaps rows and columns; a second call unwraps the first.
func (b *Builder[N]) Transpose() *Builder[N] {
	return b.apply("Transpose", func(cur Store[N]) (Store[N], error) {
		return transposeOf(cur), nil
	})
}

// Conjugate conjugates every element; a second call unwraps the first. On real
// backends it leaves the view untouched.
func (b *Builder[N]) Conjugate() *Builder[N] {
	return b.apply("Conjugate", func(cur Store[N]) (Store[N], error) {
		return conjugateOf(cur), nil
	})
}

// ---------- Terminals ----------

// Get returns the accumulated view, or the first recorded error.
func (b *Builder[N]) Get() (Store[N], error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.cur == nil {
		return nil, ErrNilStore
	}

	return b.cur, nil
}

// Build is an alias of Get.
//
// Deprecated: use Get.
func (b *Builder[N]) Build() (Store[N], error) { return b.Get() }

// Copy materializes the accumulated view into a new Dense.
func (b *Builder[N]) Copy() (*Dense[N], error) {
	s, err := b.Get()
	if err != nil {
		return nil, err
	}

	return Copy(s)
}

// SupplyTo hands the accumulated view to consumer when it accepts this shape.
//
// Errors:
//   - The builder's recorded error, if any.
//   - ErrNotAcceptable when consumer.IsAcceptable(b) is false.
func (b *Builder[N]) SupplyTo(consumer ElementsConsumer[N]) error {
	s, err := b.Get()
	if err != nil {
		return err
	}
	if consumer == nil || !consumer.IsAcceptable(b) {
		return storeErrorf(opSupplyTo, ErrNotAcceptable)
	}

	return consumer.Accept(s)
}

// Err returns the first error recorded by the chain, if any.
func (b *Builder[N]) Err() error { return b.err }

// Factory returns the factory of the builder.
func (b *Builder[N]) Factory() *Factory[N] { return b.f }

// Rows returns the row count of the current view (0 when there is none).
func (b *Builder[N]) Rows() int {
	if b.cur == nil {
		return 0
	}

	return b.cur.Rows()
}

// Cols returns the column count of the current view (0 when there is none).
func (b *Builder[N]) Cols() int {
	if b.cur == nil {
		return 0
	}

	return b.cur.Cols()
}

// Count returns Rows()*Cols().
func (b *Builder[N]) Count() int { return b.Rows() * b.Cols() }

// String renders the current view, or the recorded error.
func (b *Builder[N]) String() string {
	s, err := b.Get()
	if err != nil {
		return fmt.Sprintf("Builder(%v)", err)
	}

	return Format(s)
}
