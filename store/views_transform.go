// SPDX-License-Identifier: MIT

// Package store: self-inverse views. Transpose and conjugate are O(1) wrappers
// that cancel when applied twice (see Transpose, Conjugate and the Builder).
package store

// transposedStore swaps coordinates of its base.
type transposedStore[N any] struct {
	dims[N]
	base Store[N]
}

func newTransposed[N any](base Store[N]) *transposedStore[N] {
	return &transposedStore[N]{
		dims: dims[N]{rows: base.Cols(), cols: base.Rows(), f: base.Factory()},
		base: base,
	}
}

func (s *transposedStore[N]) At(row, col int) (N, error) { return s.base.At(col, row) }

func (s *transposedStore[N]) Float64At(row, col int) (float64, error) {
	return s.base.Float64At(col, row)
}

func (s *transposedStore[N]) FirstInRow(row int) int    { return s.base.FirstInColumn(row) }
func (s *transposedStore[N]) LimitOfRow(row int) int    { return s.base.LimitOfColumn(row) }
func (s *transposedStore[N]) FirstInColumn(col int) int { return s.base.FirstInRow(col) }
func (s *transposedStore[N]) LimitOfColumn(col int) int { return s.base.LimitOfRow(col) }

// conjugatedStore reads the complex conjugate of its base. Conjugation never
// turns a zero into a nonzero, so hints pass through.
type conjugatedStore[N any] struct {
	dims[N]
	base Store[N]
}

func newConjugated[N any](base Store[N]) *conjugatedStore[N] {
	return &conjugatedStore[N]{
		dims: dims[N]{rows: base.Rows(), cols: base.Cols(), f: base.Factory()},
		base: base,
	}
}

func (s *conjugatedStore[N]) At(row, col int) (N, error) {
	v, err := s.base.At(row, col)
	if err != nil {
		return v, err
	}

	return s.f.field.Conj(v), nil
}

// Float64At returns the real part, which conjugation leaves unchanged.
func (s *conjugatedStore[N]) Float64At(row, col int) (float64, error) {
	return s.base.Float64At(row, col)
}

func (s *conjugatedStore[N]) FirstInRow(row int) int    { return s.base.FirstInRow(row) }
func (s *conjugatedStore[N]) LimitOfRow(row int) int    { return s.base.LimitOfRow(row) }
func (s *conjugatedStore[N]) FirstInColumn(col int) int { return s.base.FirstInColumn(col) }
func (s *conjugatedStore[N]) LimitOfColumn(col int) int { return s.base.LimitOfColumn(col) }

// transposeOf returns the transpose of s, unwrapping an existing transpose.
func transposeOf[N any](s Store[N]) Store[N] {
	if t, ok := s.(*transposedStore[N]); ok {
		return t.base
	}

	return newTransposed(s)
}

// conjugateOf returns the conjugate of s, unwrapping an existing conjugate.
// On real backends conjugation is the identity and s is returned as is.
func conjugateOf[N any](s Store[N]) Store[N] {
	if c, ok := s.(*conjugatedStore[N]); ok {
		return c.base
	}
	if s.Factory().field.IsReal() {
		return s
	}

	return newConjugated(s)
}
