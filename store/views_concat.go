// SPDX-License-Identifier: MIT

// Package store: block concatenation views.
//
// Both views own two children and split the coordinate space at a fixed
// boundary. Shapes are validated once, at construction.
package store

// aboveBelowStore stacks upper over lower. Column counts must match.
type aboveBelowStore[N any] struct {
	dims[N]
	upper, lower Store[N]
	split        int // upper.Rows()
}

func newAboveBelow[N any](upper, lower Store[N]) (*aboveBelowStore[N], error) {
	if upper == nil || lower == nil {
		return nil, ErrNilStore
	}
	if upper.Cols() != lower.Cols() {
		return nil, ErrDimensionMismatch
	}

	return &aboveBelowStore[N]{
		dims:  dims[N]{rows: upper.Rows() + lower.Rows(), cols: upper.Cols(), f: upper.Factory()},
		upper: upper,
		lower: lower,
		split: upper.Rows(),
	}, nil
}

func (s *aboveBelowStore[N]) At(row, col int) (N, error) {
	if row < s.split {
		return s.upper.At(row, col)
	}

	return s.lower.At(row-s.split, col)
}

func (s *aboveBelowStore[N]) Float64At(row, col int) (float64, error) {
	return float64At[N](s, row, col)
}

func (s *aboveBelowStore[N]) FirstInRow(row int) int {
	if row < s.split {
		return s.upper.FirstInRow(row)
	}

	return s.lower.FirstInRow(row - s.split)
}

func (s *aboveBelowStore[N]) LimitOfRow(row int) int {
	if row < s.split {
		return s.upper.LimitOfRow(row)
	}

	return s.lower.LimitOfRow(row - s.split)
}

func (s *aboveBelowStore[N]) FirstInColumn(col int) int {
	if first := s.upper.FirstInColumn(col); first < s.split {
		return first
	}

	return s.split + s.lower.FirstInColumn(col)
}

func (s *aboveBelowStore[N]) LimitOfColumn(col int) int {
	if limit := s.lower.LimitOfColumn(col); limit > 0 {
		return s.split + limit
	}

	return s.upper.LimitOfColumn(col)
}

// leftRightStore places left beside right. Row counts must match.
type leftRightStore[N any] struct {
	dims[N]
	left, right Store[N]
	split       int // left.Cols()
}

func newLeftRight[N any](left, right Store[N]) (*leftRightStore[N], error) {
	if left == nil || right == nil {
		return nil, ErrNilStore
	}
	if left.Rows() != right.Rows() {
		return nil, ErrDimensionMismatch
	}

	return &leftRightStore[N]{
		dims:  dims[N]{rows: left.Rows(), cols: left.Cols() + right.Cols(), f: left.Factory()},
		left:  left,
		right: right,
		split: left.Cols(),
	}, nil
}

func (s *leftRightStore[N]) At(row, col int) (N, error) {
	if col < s.split {
		return s.left.At(row, col)
	}

	return s.right.At(row, col-s.split)
}

func (s *leftRightStore[N]) Float64At(row, col int) (float64, error) {
	return float64At[N](s, row, col)
}

func (s *leftRightStore[N]) FirstInRow(row int) int {
	if first := s.left.FirstInRow(row); first < s.split {
		return first
	}

	return s.split + s.right.FirstInRow(row)
}

func (s *leftRightStore[N]) LimitOfRow(row int) int {
	if limit := s.right.LimitOfRow(row); limit > 0 {
		return s.split + limit
	}

	return s.left.LimitOfRow(row)
}

func (s *leftRightStore[N]) FirstInColumn(col int) int {
	if col < s.split {
		return s.left.FirstInColumn(col)
	}

	return s.right.FirstInColumn(col - s.split)
}

func (s *leftRightStore[N]) LimitOfColumn(col int) int {
	if col < s.split {
		return s.left.LimitOfColumn(col)
	}

	return s.right.LimitOfColumn(col - s.split)
}

// concatRow joins blocks left to right (equal row counts) and zero-pads on the
// right up to minCols columns. Used by Above/Below.
func concatRow[N any](f *Factory[N], minCols int, blocks []Store[N]) (Store[N], error) {
	if len(blocks) == 0 {
		return nil, ErrNilStore
	}
	acc := blocks[0]
	if acc == nil {
		return nil, ErrNilStore
	}
	for _, b := range blocks[1:] {
		next, err := newLeftRight(acc, b)
		if err != nil {
			return nil, err
		}
		acc = next
	}
	if acc.Cols() < minCols {
		pad, _ := newZero(f, acc.Rows(), minCols-acc.Cols())
		next, err := newLeftRight[N](acc, pad)
		if err != nil {
			return nil, err
		}
		acc = next
	}

	return acc, nil
}

// concatColumn stacks blocks top to bottom (equal column counts) and zero-pads
// below up to minRows rows. Used by Left/Right.
func concatColumn[N any](f *Factory[N], minRows int, blocks []Store[N]) (Store[N], error) {
	if len(blocks) == 0 {
		return nil, ErrNilStore
	}
	acc := blocks[0]
	if acc == nil {
		return nil, ErrNilStore
	}
	for _, b := range blocks[1:] {
		next, err := newAboveBelow(acc, b)
		if err != nil {
			return nil, err
		}
		acc = next
	}
	if acc.Rows() < minRows {
		pad, _ := newZero(f, minRows-acc.Rows(), acc.Cols())
		next, err := newAboveBelow[N](acc, pad)
		if err != nil {
			return nil, err
		}
		acc = next
	}

	return acc, nil
}
