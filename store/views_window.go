// SPDX-License-Identifier: MIT

// Package store: windowing, overlay and selection views.
//
// All views here only translate coordinates; none of them copies data.
package store

const (
	kindRows    = "Rows"
	kindColumns = "Columns"
)

// offsetStore exposes base from (rowOffset, colOffset) to its bottom-right corner.
type offsetStore[N any] struct {
	dims[N]
	base   Store[N]
	ro, co int
}

func newOffset[N any](base Store[N], rowOffset, colOffset int) (*offsetStore[N], error) {
	rowOffset, colOffset = max(rowOffset, 0), max(colOffset, 0)
	if rowOffset > base.Rows() || colOffset > base.Cols() {
		return nil, ErrDimensionMismatch
	}

	return &offsetStore[N]{
		dims: dims[N]{rows: base.Rows() - rowOffset, cols: base.Cols() - colOffset, f: base.Factory()},
		base: base,
		ro:   rowOffset,
		co:   colOffset,
	}, nil
}

func (s *offsetStore[N]) At(row, col int) (N, error) { return s.base.At(row+s.ro, col+s.co) }

func (s *offsetStore[N]) Float64At(row, col int) (float64, error) {
	return s.base.Float64At(row+s.ro, col+s.co)
}

func (s *offsetStore[N]) FirstInRow(row int) int {
	return clamp(s.base.FirstInRow(row+s.ro)-s.co, 0, s.cols)
}

func (s *offsetStore[N]) LimitOfRow(row int) int {
	return clamp(s.base.LimitOfRow(row+s.ro)-s.co, 0, s.cols)
}

func (s *offsetStore[N]) FirstInColumn(col int) int {
	return clamp(s.base.FirstInColumn(col+s.co)-s.ro, 0, s.rows)
}

func (s *offsetStore[N]) LimitOfColumn(col int) int {
	return clamp(s.base.LimitOfColumn(col+s.co)-s.ro, 0, s.rows)
}

// limitStore exposes the top-left rows×cols corner of base.
type limitStore[N any] struct {
	dims[N]
	base Store[N]
}

// newLimit caps the visible shape; a negative limit keeps the base dimension.
func newLimit[N any](base Store[N], rowLimit, colLimit int) *limitStore[N] {
	rows, cols := base.Rows(), base.Cols()
	if rowLimit >= 0 {
		rows = min(rowLimit, rows)
	}
	if colLimit >= 0 {
		cols = min(colLimit, cols)
	}

	return &limitStore[N]{dims: dims[N]{rows: rows, cols: cols, f: base.Factory()}, base: base}
}

func (s *limitStore[N]) At(row, col int) (N, error) { return s.base.At(row, col) }

func (s *limitStore[N]) Float64At(row, col int) (float64, error) {
	return s.base.Float64At(row, col)
}

func (s *limitStore[N]) FirstInRow(row int) int    { return min(s.base.FirstInRow(row), s.cols) }
func (s *limitStore[N]) LimitOfRow(row int) int    { return min(s.base.LimitOfRow(row), s.cols) }
func (s *limitStore[N]) FirstInColumn(col int) int { return min(s.base.FirstInColumn(col), s.rows) }
func (s *limitStore[N]) LimitOfColumn(col int) int { return min(s.base.LimitOfColumn(col), s.rows) }

// superimposedStore reads overlay inside its footprint and base elsewhere.
type superimposedStore[N any] struct {
	dims[N]
	base, overlay Store[N]
	r0, c0        int
}

func newSuperimposed[N any](base Store[N], row, col int, overlay Store[N]) (*superimposedStore[N], error) {
	if overlay == nil {
		return nil, ErrNilStore
	}
	if row < 0 || col < 0 || row+overlay.Rows() > base.Rows() || col+overlay.Cols() > base.Cols() {
		return nil, ErrDimensionMismatch
	}

	return &superimposedStore[N]{
		dims:    dims[N]{rows: base.Rows(), cols: base.Cols(), f: base.Factory()},
		base:    base,
		overlay: overlay,
		r0:      row,
		c0:      col,
	}, nil
}

func (s *superimposedStore[N]) inRows(row int) bool {
	return row >= s.r0 && row < s.r0+s.overlay.Rows()
}

func (s *superimposedStore[N]) inCols(col int) bool {
	return col >= s.c0 && col < s.c0+s.overlay.Cols()
}

func (s *superimposedStore[N]) At(row, col int) (N, error) {
	if s.inRows(row) && s.inCols(col) {
		return s.overlay.At(row-s.r0, col-s.c0)
	}

	return s.base.At(row, col)
}

func (s *superimposedStore[N]) Float64At(row, col int) (float64, error) {
	return float64At[N](s, row, col)
}

// Hints take the union of the base range and the overlay range, which covers
// every nonzero the view can expose.
func (s *superimposedStore[N]) FirstInRow(row int) int {
	first := s.base.FirstInRow(row)
	if s.inRows(row) {
		first = min(first, s.c0+s.overlay.FirstInRow(row-s.r0))
	}

	return first
}

func (s *superimposedStore[N]) LimitOfRow(row int) int {
	limit := s.base.LimitOfRow(row)
	if s.inRows(row) {
		limit = max(limit, s.c0+s.overlay.LimitOfRow(row-s.r0))
	}

	return limit
}

func (s *superimposedStore[N]) FirstInColumn(col int) int {
	first := s.base.FirstInColumn(col)
	if s.inCols(col) {
		first = min(first, s.r0+s.overlay.FirstInColumn(col-s.c0))
	}

	return first
}

func (s *superimposedStore[N]) LimitOfColumn(col int) int {
	limit := s.base.LimitOfColumn(col)
	if s.inCols(col) {
		limit = max(limit, s.r0+s.overlay.LimitOfColumn(col-s.c0))
	}

	return limit
}

// rowsStore selects base rows by index. Indices may repeat or be out of order;
// they are resolved lazily against base.
type rowsStore[N any] struct {
	dims[N]
	base Store[N]
	idx  []int
}

func newRows[N any](base Store[N], idx []int) *rowsStore[N] {
	own := append([]int(nil), idx...)

	return &rowsStore[N]{dims: dims[N]{rows: len(own), cols: base.Cols(), f: base.Factory()}, base: base, idx: own}
}

func (s *rowsStore[N]) At(row, col int) (N, error) {
	if row < 0 || row >= len(s.idx) {
		var zero N
		return zero, indexErrorf(kindRows, row, col)
	}

	return s.base.At(s.idx[row], col)
}

func (s *rowsStore[N]) Float64At(row, col int) (float64, error) { return float64At[N](s, row, col) }

func (s *rowsStore[N]) FirstInRow(row int) int {
	if row < 0 || row >= len(s.idx) {
		return 0
	}

	return s.base.FirstInRow(s.idx[row])
}

func (s *rowsStore[N]) LimitOfRow(row int) int {
	if row < 0 || row >= len(s.idx) {
		return s.cols
	}

	return s.base.LimitOfRow(s.idx[row])
}

// columnsStore selects base columns by index, with the same rules as rowsStore.
type columnsStore[N any] struct {
	dims[N]
	base Store[N]
	idx  []int
}

func newColumns[N any](base Store[N], idx []int) *columnsStore[N] {
	own := append([]int(nil), idx...)

	return &columnsStore[N]{dims: dims[N]{rows: base.Rows(), cols: len(own), f: base.Factory()}, base: base, idx: own}
}

func (s *columnsStore[N]) At(row, col int) (N, error) {
	if col < 0 || col >= len(s.idx) {
		var zero N
		return zero, indexErrorf(kindColumns, row, col)
	}

	return s.base.At(row, s.idx[col])
}

func (s *columnsStore[N]) Float64At(row, col int) (float64, error) {
	return float64At[N](s, row, col)
}

func (s *columnsStore[N]) FirstInColumn(col int) int {
	if col < 0 || col >= len(s.idx) {
		return 0
	}

	return s.base.FirstInColumn(s.idx[col])
}

func (s *columnsStore[N]) LimitOfColumn(col int) int {
	if col < 0 || col >= len(s.idx) {
		return s.rows
	}

	return s.base.LimitOfColumn(s.idx[col])
}
