// SPDX-License-Identifier: MIT

// Package store: structural masks.
//
// Masks substitute fixed values for positions outside a declared region without
// reading the base there: exactly zero outside the region and, for unit
// triangles, exactly one on the diagonal. Coordinates outside the view are
// always passed to the base, so the leaf reports them.
//
// Regions (r = row, c = col):
//
//	upper triangular  r <= c        lower triangular  r >= c
//	upper Hessenberg  r <= c+1      lower Hessenberg  c <= r+1
//	hermitian         stored half read directly, other half mirrored and conjugated
package store

// narrowLine intersects a line's reported nonzero range [first, limit) with the
// mask region [lo, hi) and, when the diagonal slot diag is forced to one,
// re-includes it. The result is clamped into [0, size].
func narrowLine(first, limit, lo, hi, diag int, forced bool, size int) (int, int) {
	first, limit = max(first, lo), min(limit, hi)
	if forced && diag >= 0 && diag < size {
		first, limit = min(first, diag), max(limit, diag+1)
	}

	return clamp(first, 0, size), clamp(limit, 0, size)
}

// triangularStore masks everything outside the upper (r <= c) or lower (r >= c)
// triangle to zero; with assumeOne the diagonal reads as one.
type triangularStore[N any] struct {
	dims[N]
	base      Store[N]
	upper     bool
	assumeOne bool
}

func newTriangular[N any](base Store[N], upper, assumeOne bool) *triangularStore[N] {
	return &triangularStore[N]{
		dims:      dims[N]{rows: base.Rows(), cols: base.Cols(), f: base.Factory()},
		base:      base,
		upper:     upper,
		assumeOne: assumeOne,
	}
}

func (s *triangularStore[N]) At(row, col int) (N, error) {
	switch {
	case !inBounds(row, col, s.rows, s.cols):
		return s.base.At(row, col)
	case row == col && s.assumeOne:
		return s.f.field.One(), nil
	case s.upper && row > col, !s.upper && row < col:
		return s.f.field.Zero(), nil
	}

	return s.base.At(row, col)
}

func (s *triangularStore[N]) Float64At(row, col int) (float64, error) {
	return float64At[N](s, row, col)
}

func (s *triangularStore[N]) rowRange(row int) (int, int) {
	first, limit := s.base.FirstInRow(row), s.base.LimitOfRow(row)
	if s.upper {
		return narrowLine(first, limit, row, s.cols, row, s.assumeOne, s.cols)
	}

	return narrowLine(first, limit, 0, row+1, row, s.assumeOne, s.cols)
}

func (s *triangularStore[N]) colRange(col int) (int, int) {
	first, limit := s.base.FirstInColumn(col), s.base.LimitOfColumn(col)
	if s.upper {
		return narrowLine(first, limit, 0, col+1, col, s.assumeOne, s.rows)
	}

	return narrowLine(first, limit, col, s.rows, col, s.assumeOne, s.rows)
}

func (s *triangularStore[N]) FirstInRow(row int) int {
	first, _ := s.rowRange(row)
	return first
}

func (s *triangularStore[N]) LimitOfRow(row int) int {
	_, limit := s.rowRange(row)
	return limit
}

func (s *triangularStore[N]) FirstInColumn(col int) int {
	first, _ := s.colRange(col)
	return first
}

func (s *triangularStore[N]) LimitOfColumn(col int) int {
	_, limit := s.colRange(col)
	return limit
}

// hessenbergStore zeroes everything below the first subdiagonal (upper) or
// above the first superdiagonal (lower).
type hessenbergStore[N any] struct {
	dims[N]
	base  Store[N]
	upper bool
}

func newHessenberg[N any](base Store[N], upper bool) *hessenbergStore[N] {
	return &hessenbergStore[N]{
		dims:  dims[N]{rows: base.Rows(), cols: base.Cols(), f: base.Factory()},
		base:  base,
		upper: upper,
	}
}

func (s *hessenbergStore[N]) At(row, col int) (N, error) {
	if !inBounds(row, col, s.rows, s.cols) {
		return s.base.At(row, col)
	}
	if s.upper && row > col+1 || !s.upper && col > row+1 {
		return s.f.field.Zero(), nil
	}

	return s.base.At(row, col)
}

func (s *hessenbergStore[N]) Float64At(row, col int) (float64, error) {
	return float64At[N](s, row, col)
}

func (s *hessenbergStore[N]) rowRange(row int) (int, int) {
	first, limit := s.base.FirstInRow(row), s.base.LimitOfRow(row)
	if s.upper {
		return narrowLine(first, limit, row-1, s.cols, 0, false, s.cols)
	}

	return narrowLine(first, limit, 0, row+2, 0, false, s.cols)
}

func (s *hessenbergStore[N]) colRange(col int) (int, int) {
	first, limit := s.base.FirstInColumn(col), s.base.LimitOfColumn(col)
	if s.upper {
		return narrowLine(first, limit, 0, col+2, 0, false, s.rows)
	}

	return narrowLine(first, limit, col-1, s.rows, 0, false, s.rows)
}

func (s *hessenbergStore[N]) FirstInRow(row int) int {
	first, _ := s.rowRange(row)
	return first
}

func (s *hessenbergStore[N]) LimitOfRow(row int) int {
	_, limit := s.rowRange(row)
	return limit
}

func (s *hessenbergStore[N]) FirstInColumn(col int) int {
	first, _ := s.colRange(col)
	return first
}

func (s *hessenbergStore[N]) LimitOfColumn(col int) int {
	_, limit := s.colRange(col)
	return limit
}

// hermitianStore reads the stored half directly and synthesizes the other half
// as the conjugate of the mirrored element. The diagonal is read as stored and
// is assumed real. Hints stay dense: the mirrored half depends on the other
// line's structure.
type hermitianStore[N any] struct {
	dims[N]
	base  Store[N]
	upper bool
}

func newHermitian[N any](base Store[N], upper bool) (*hermitianStore[N], error) {
	if base.Rows() != base.Cols() {
		return nil, ErrNonSquare
	}

	return &hermitianStore[N]{
		dims:  dims[N]{rows: base.Rows(), cols: base.Cols(), f: base.Factory()},
		base:  base,
		upper: upper,
	}, nil
}

func (s *hermitianStore[N]) At(row, col int) (N, error) {
	if !inBounds(row, col, s.rows, s.cols) {
		return s.base.At(row, col)
	}
	if s.upper && row <= col || !s.upper && row >= col {
		return s.base.At(row, col)
	}
	v, err := s.base.At(col, row)
	if err != nil {
		return v, err
	}

	return s.f.field.Conj(v), nil
}

func (s *hermitianStore[N]) Float64At(row, col int) (float64, error) {
	return float64At[N](s, row, col)
}
