// SPDX-License-Identifier: MIT

// Package store: leaf stores. Leaves own no children, synthesize or hold their
// values directly and are the only place where coordinates are bounds-checked.
package store

// Leaf kind tags used in error messages.
const (
	kindZero     = "Zero"
	kindIdentity = "Identity"
	kindSingle   = "Single"
	kindWrapper  = "Wrapper"
	kindDense    = "Dense"
)

func inBounds(row, col, rows, cols int) bool {
	return row >= 0 && row < rows && col >= 0 && col < cols
}

// zeroStore reads as exactly zero everywhere.
type zeroStore[N any] struct {
	dims[N]
}

var _ Store[float64] = (*zeroStore[float64])(nil)

func newZero[N any](f *Factory[N], rows, cols int) (*zeroStore[N], error) {
	if rows < 0 || cols < 0 {
		return nil, ErrBadShape
	}

	return &zeroStore[N]{dims: dims[N]{rows: rows, cols: cols, f: f}}, nil
}

func (s *zeroStore[N]) At(row, col int) (N, error) {
	if !inBounds(row, col, s.rows, s.cols) {
		var zero N
		return zero, indexErrorf(kindZero, row, col)
	}

	return s.f.field.Zero(), nil
}

func (s *zeroStore[N]) Float64At(row, col int) (float64, error) { return float64At[N](s, row, col) }

// An all-zero store has an empty nonzero range everywhere.
func (s *zeroStore[N]) FirstInRow(int) int    { return s.cols }
func (s *zeroStore[N]) LimitOfRow(int) int    { return 0 }
func (s *zeroStore[N]) FirstInColumn(int) int { return s.rows }
func (s *zeroStore[N]) LimitOfColumn(int) int { return 0 }

// identityStore reads one on the main diagonal and zero elsewhere.
type identityStore[N any] struct {
	dims[N]
}

func (s *identityStore[N]) At(row, col int) (N, error) {
	if !inBounds(row, col, s.rows, s.cols) {
		var zero N
		return zero, indexErrorf(kindIdentity, row, col)
	}
	if row == col {
		return s.f.field.One(), nil
	}

	return s.f.field.Zero(), nil
}

func (s *identityStore[N]) Float64At(row, col int) (float64, error) {
	return float64At[N](s, row, col)
}

func (s *identityStore[N]) FirstInRow(row int) int    { return clamp(row, 0, s.cols) }
func (s *identityStore[N]) LimitOfRow(row int) int    { return clamp(row+1, 0, s.cols) }
func (s *identityStore[N]) FirstInColumn(col int) int { return clamp(col, 0, s.rows) }
func (s *identityStore[N]) LimitOfColumn(col int) int { return clamp(col+1, 0, s.rows) }

// singleStore is a 1×1 store.
type singleStore[N any] struct {
	dims[N]
	value N
}

func newSingle[N any](f *Factory[N], v N) *singleStore[N] {
	return &singleStore[N]{dims: dims[N]{rows: 1, cols: 1, f: f}, value: v}
}

func (s *singleStore[N]) At(row, col int) (N, error) {
	if row != 0 || col != 0 {
		var zero N
		return zero, indexErrorf(kindSingle, row, col)
	}

	return s.value, nil
}

func (s *singleStore[N]) Float64At(row, col int) (float64, error) {
	return float64At[N](s, row, col)
}

// wrapperStore adapts an external Access2D source.
type wrapperStore[N any] struct {
	dims[N]
	src Access2D[N]
}

func (s *wrapperStore[N]) At(row, col int) (N, error) {
	if !inBounds(row, col, s.rows, s.cols) {
		var zero N
		return zero, indexErrorf(kindWrapper, row, col)
	}

	return s.src.At(row, col)
}

func (s *wrapperStore[N]) Float64At(row, col int) (float64, error) {
	return float64At[N](s, row, col)
}
