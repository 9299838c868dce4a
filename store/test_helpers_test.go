// SPDX-License-Identifier: MIT
// Package store_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures for builders and kernels.
//   • Verify the structural-hint contract of any view in one place.

package store_test

import (
	"log/slog"
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/lvmat/store"
	"github.com/stretchr/testify/require"
)

// hide wraps a Store so that only its Access2D surface is visible; used with
// MakeWrapper to build leaves over external sources.
type hide struct{ s store.Access2D[float64] }

func (h hide) Rows() int                        { return h.s.Rows() }
func (h hide) Cols() int                        { return h.s.Cols() }
func (h hide) At(row, col int) (float64, error) { return h.s.At(row, col) }

// grid is a plain external 2D source.
type grid [][]float64

func (g grid) Rows() int { return len(g) }
func (g grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}
func (g grid) At(row, col int) (float64, error) { return g[row][col], nil }

// mustGet extracts the builder's view or fails the test.
func mustGet[N any](t testing.TB, b *store.Builder[N]) store.Store[N] {
	t.Helper()
	s, err := b.Get()
	require.NoError(t, err)

	return s
}

// rows builds a float64 Dense from literal rows.
func rows(t testing.TB, data ...[]float64) store.Store[float64] {
	t.Helper()

	return mustGet(t, store.Primitive.MakeRows(data))
}

// sequence returns an r×c Dense holding 1, 2, 3, ... in row-major order.
func sequence(t testing.TB, r, c int) store.Store[float64] {
	t.Helper()
	data := make([][]float64, r)
	for i := range data {
		data[i] = make([]float64, c)
		for j := range data[i] {
			data[i][j] = float64(i*c + j + 1)
		}
	}

	return rows(t, data...)
}

// random returns an r×c Dense filled deterministically from seed.
func random(t testing.TB, r, c int, seed int64) *store.Dense[float64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	d, err := store.Primitive.NewDense(r, c)
	require.NoError(t, err)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.NoError(t, d.Set(i, j, rng.Float64()*2-1))
		}
	}

	return d
}

// elements reads every element of s into a [][]float64.
func elements(t testing.TB, s store.Store[float64]) [][]float64 {
	t.Helper()
	out := make([][]float64, s.Rows())
	for i := range out {
		out[i] = make([]float64, s.Cols())
		for j := range out[i] {
			v, err := s.At(i, j)
			require.NoError(t, err)
			out[i][j] = v
		}
	}

	return out
}

// requireElements asserts that s reads exactly want.
func requireElements(t testing.TB, want [][]float64, s store.Store[float64]) {
	t.Helper()
	require.Equal(t, len(want), s.Rows(), "rows")
	if len(want) > 0 {
		require.Equal(t, len(want[0]), s.Cols(), "cols")
	}
	require.Equal(t, want, elements(t, s))
}

// requireHints asserts the conservative-hint contract: every nonzero element
// lies inside the row and column ranges the view reports.
func requireHints[N any](t testing.TB, s store.Store[N]) {
	t.Helper()
	field := s.Factory().Field()
	for i := 0; i < s.Rows(); i++ {
		for j := 0; j < s.Cols(); j++ {
			v, err := s.At(i, j)
			require.NoError(t, err)
			if field.IsZero(v) {
				continue
			}
			require.GreaterOrEqual(t, j, s.FirstInRow(i), "FirstInRow(%d) excludes nonzero at col %d", i, j)
			require.Less(t, j, s.LimitOfRow(i), "LimitOfRow(%d) excludes nonzero at col %d", i, j)
			require.GreaterOrEqual(t, i, s.FirstInColumn(j), "FirstInColumn(%d) excludes nonzero at row %d", j, i)
			require.Less(t, i, s.LimitOfColumn(j), "LimitOfColumn(%d) excludes nonzero at row %d", j, i)
		}
	}
}

// tWriter forwards log output to t.Log.
type tWriter struct{ t testing.TB }

func (w tWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

// testLogger returns a debug-level logger that writes through t.Log.
func testLogger(t testing.TB) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(tWriter{t}, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
