// SPDX-License-Identifier: MIT

package store_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/lvmat/store"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestBuilder_TransposeCancels(t *testing.T) {
	base := sequence(t, 2, 3)

	tr := mustGet(t, store.Logical(base).Transpose())
	require.Equal(t, 3, tr.Rows())
	require.Equal(t, 2, tr.Cols())
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			want, err := base.At(i, j)
			require.NoError(t, err)
			got, err := tr.At(j, i)
			require.NoError(t, err)
			require.Equal(t, want, got)
		}
	}

	// The second call unwraps instead of wrapping again.
	require.Same(t, base, mustGet(t, store.Logical(base).Transpose().Transpose()))
	require.Same(t, base, store.Transpose(store.Transpose(base)))

	// Repeated toggling never grows the chain.
	b := store.Logical(base)
	for i := 0; i < 101; i++ {
		b.Transpose()
	}
	require.Equal(t, 3, b.Rows())
	require.Same(t, base, mustGet(t, b.Transpose()))
}

func TestBuilder_ConjugateCancels(t *testing.T) {
	base := mustGet(t, store.Complex.MakeRows([][]complex128{{1 + 2i, 3 - 1i}, {-4i, 5}}))

	conj := mustGet(t, store.Logical(base).Conjugate())
	v, err := conj.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1-2i, v)
	v, err = conj.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 4i, v)
	f, err := conj.Float64At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 3.0, f)

	require.Same(t, base, mustGet(t, store.Logical(base).Conjugate().Conjugate()))
	require.Same(t, base, store.Conjugate(store.Conjugate(base)))

	// Real backends: conjugate is a no-op.
	re := sequence(t, 2, 2)
	require.Same(t, re, mustGet(t, store.Logical(re).Conjugate()))
}

func TestBuilder_Above(t *testing.T) {
	a := sequence(t, 1, 3)
	b := rows(t, []float64{10, 11, 12}, []float64{13, 14, 15})

	c := mustGet(t, store.Logical(b).Above(a))
	require.Equal(t, a.Rows()+b.Rows(), c.Rows())
	require.Equal(t, 3, c.Cols())
	requireElements(t, [][]float64{{1, 2, 3}, {10, 11, 12}, {13, 14, 15}}, c)
	requireHints(t, c)

	below := mustGet(t, store.Logical(b).Below(a))
	requireElements(t, [][]float64{{10, 11, 12}, {13, 14, 15}, {1, 2, 3}}, below)

	// Several blocks are joined left to right and padded to the current width.
	padded := mustGet(t, store.Logical(b).Above(sequence(t, 1, 1), sequence(t, 1, 1)))
	requireElements(t, [][]float64{{1, 1, 0}, {10, 11, 12}, {13, 14, 15}}, padded)
	requireHints(t, padded)
}

func TestBuilder_AboveMismatchLeavesCurrent(t *testing.T) {
	base := sequence(t, 2, 3)
	b := store.Logical(base).Above(sequence(t, 1, 4))
	require.ErrorIs(t, b.Err(), store.ErrDimensionMismatch)
	require.Equal(t, 2, b.Rows())
	require.Equal(t, 3, b.Cols())

	// The first error is sticky.
	b.Transpose().AboveZero(5)
	require.Equal(t, 2, b.Rows())
	require.Equal(t, 3, b.Cols())
	_, err := b.Get()
	require.ErrorIs(t, err, store.ErrDimensionMismatch)
	_, err = b.Copy()
	require.ErrorIs(t, err, store.ErrDimensionMismatch)

	// Rows of a left/right group must agree.
	err = store.Logical(base).Left(sequence(t, 1, 1), sequence(t, 1, 2)).Err()
	require.ErrorIs(t, err, store.ErrDimensionMismatch)
}

func TestBuilder_ZeroBlocks(t *testing.T) {
	base := sequence(t, 2, 2)

	s := mustGet(t, store.Logical(base).AboveZero(1).BelowZero(1).LeftZero(1).RightZero(2))
	requireElements(t, [][]float64{
		{0, 0, 0, 0, 0},
		{0, 1, 2, 0, 0},
		{0, 3, 4, 0, 0},
		{0, 0, 0, 0, 0},
	}, s)
	requireHints(t, s)
	require.Equal(t, 1, s.FirstInRow(1))
	require.Equal(t, 3, s.LimitOfRow(1))
	require.Equal(t, 1, s.FirstInColumn(2))
	require.Equal(t, 3, s.LimitOfColumn(2))

	err := store.Logical(base).AboveZero(-1).Err()
	require.ErrorIs(t, err, store.ErrBadShape)
}

func TestBuilder_Values(t *testing.T) {
	s := mustGet(t, store.Logical(sequence(t, 2, 2)).
		AboveValues(7).
		BelowValues(8, 9).
		LeftValues(5).
		RightValues(1, 2, 3, 4))
	requireElements(t, [][]float64{
		{5, 7, 0, 1},
		{0, 1, 2, 2},
		{0, 3, 4, 3},
		{0, 8, 9, 4},
	}, s)
}

func TestBuilder_Triangular(t *testing.T) {
	base := sequence(t, 3, 3)

	upper := mustGet(t, store.Logical(base).Triangular(true, false))
	requireElements(t, [][]float64{{1, 2, 3}, {0, 5, 6}, {0, 0, 9}}, upper)
	requireHints(t, upper)

	unit := mustGet(t, store.Logical(base).Triangular(true, true))
	requireElements(t, [][]float64{{1, 2, 3}, {0, 1, 6}, {0, 0, 1}}, unit)
	requireHints(t, unit)

	lower := mustGet(t, store.Logical(base).Triangular(false, false))
	requireElements(t, [][]float64{{1, 0, 0}, {4, 5, 0}, {7, 8, 9}}, lower)
	requireHints(t, lower)
	require.Equal(t, 0, lower.FirstInColumn(0))
	require.Equal(t, 2, lower.FirstInColumn(2))
	require.Equal(t, 2, lower.LimitOfRow(1))

	// A unit triangle over a zero store keeps its diagonal in the hints.
	unitZero := mustGet(t, store.Primitive.MakeZero(3, 3).Triangular(false, true))
	requireElements(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, unitZero)
	requireHints(t, unitZero)
}

func TestBuilder_Bands(t *testing.T) {
	base := sequence(t, 4, 4)

	hess := mustGet(t, store.Logical(base).Hessenberg(true))
	requireElements(t, [][]float64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{0, 10, 11, 12},
		{0, 0, 15, 16},
	}, hess)
	requireHints(t, hess)

	lowerHess := mustGet(t, store.Logical(base).Hessenberg(false))
	requireElements(t, [][]float64{
		{1, 2, 0, 0},
		{5, 6, 7, 0},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	}, lowerHess)
	requireHints(t, lowerHess)

	tri := mustGet(t, store.Logical(base).Tridiagonal())
	requireElements(t, [][]float64{
		{1, 2, 0, 0},
		{5, 6, 7, 0},
		{0, 10, 11, 12},
		{0, 0, 15, 16},
	}, tri)
	requireHints(t, tri)

	bi := mustGet(t, store.Logical(base).Bidiagonal(true, false))
	requireElements(t, [][]float64{
		{1, 2, 0, 0},
		{0, 6, 7, 0},
		{0, 0, 11, 12},
		{0, 0, 0, 16},
	}, bi)
	requireHints(t, bi)

	lowerBi := mustGet(t, store.Logical(base).Bidiagonal(false, true))
	requireElements(t, [][]float64{
		{1, 0, 0, 0},
		{5, 1, 0, 0},
		{0, 10, 1, 0},
		{0, 0, 15, 1},
	}, lowerBi)
	requireHints(t, lowerBi)

	diag := mustGet(t, store.Logical(base).Diagonal(false))
	requireElements(t, [][]float64{
		{1, 0, 0, 0},
		{0, 6, 0, 0},
		{0, 0, 11, 0},
		{0, 0, 0, 16},
	}, diag)
	requireHints(t, diag)
}

func TestBuilder_Hermitian(t *testing.T) {
	base := mustGet(t, store.Complex.MakeRows([][]complex128{{1, 2 + 1i}, {99, 3}}))

	h := mustGet(t, store.Logical(base).Hermitian(true))
	v, err := h.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 2-1i, v)
	v, err = h.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 2+1i, v)

	lower := mustGet(t, store.Logical(base).Hermitian(false))
	v, err = lower.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, complex128(99), v)

	err = store.Logical(sequence(t, 2, 3)).Hermitian(true).Err()
	require.ErrorIs(t, err, store.ErrNonSquare)
}

func TestBuilder_Diagonally(t *testing.T) {
	base := sequence(t, 2, 2)
	d1 := sequence(t, 1, 3)
	d2 := sequence(t, 2, 1)

	s := mustGet(t, store.Logical(base).Diagonally(d1, d2))
	require.Equal(t, base.Rows()+d1.Rows()+d2.Rows(), s.Rows())
	require.Equal(t, base.Cols()+d1.Cols()+d2.Cols(), s.Cols())
	requireElements(t, [][]float64{
		{1, 2, 0, 0, 0, 0},
		{3, 4, 0, 0, 0, 0},
		{0, 0, 1, 2, 3, 0},
		{0, 0, 0, 0, 0, 1},
		{0, 0, 0, 0, 0, 2},
	}, s)
	requireHints(t, s)

	err := store.Logical(base).Diagonally(nil).Err()
	require.ErrorIs(t, err, store.ErrNilStore)
}

func TestBuilder_OffsetsLimitsOnIdentity(t *testing.T) {
	id := mustGet(t, store.Primitive.MakeIdentity(10))

	w := mustGet(t, store.Logical(id).Offsets(2, 3).Limits(4, 4))
	require.Equal(t, 4, w.Rows())
	require.Equal(t, 4, w.Cols())

	got, err := w.At(1, 0)
	require.NoError(t, err)
	want, err := id.At(3, 3)
	require.NoError(t, err)
	require.Equal(t, want, got)
	require.Equal(t, 1.0, got)

	got, err = w.At(0, 0)
	require.NoError(t, err)
	want, err = id.At(2, 3)
	require.NoError(t, err)
	require.Equal(t, want, got)
	require.Equal(t, 0.0, got)

	requireElements(t, [][]float64{
		{0, 0, 0, 0},
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
	}, w)
	requireHints(t, w)
}

func TestBuilder_OffsetsAndLimitsEdges(t *testing.T) {
	base := sequence(t, 3, 3)

	clamped := mustGet(t, store.Logical(base).Offsets(-4, 1))
	requireElements(t, [][]float64{{2, 3}, {5, 6}, {8, 9}}, clamped)

	empty := mustGet(t, store.Logical(base).Offsets(3, 3))
	require.Equal(t, 0, empty.Rows())
	require.Equal(t, 0, empty.Cols())

	err := store.Logical(base).Offsets(4, 0).Err()
	require.ErrorIs(t, err, store.ErrDimensionMismatch)

	unbounded := mustGet(t, store.Logical(base).Limits(-1, 2))
	requireElements(t, [][]float64{{1, 2}, {4, 5}, {7, 8}}, unbounded)

	capped := mustGet(t, store.Logical(base).Limits(10, 10))
	require.Equal(t, 3, capped.Rows())
	require.Equal(t, 3, capped.Cols())
}

func TestBuilder_RowSelectionDuplicates(t *testing.T) {
	base := sequence(t, 3, 3)

	s := mustGet(t, store.Logical(base).Row(2, 0, 0))
	require.Equal(t, 3, s.Rows())
	requireElements(t, [][]float64{{7, 8, 9}, {1, 2, 3}, {1, 2, 3}}, s)

	cols := mustGet(t, store.Logical(base).Column(1, 1))
	requireElements(t, [][]float64{{2, 2}, {5, 5}, {8, 8}}, cols)

	// Selection of a band keeps the band's hints per selected line.
	band := mustGet(t, store.Logical(base).Triangular(true, false).Row(2, 0).Column(2, 0))
	requireElements(t, [][]float64{{9, 0}, {3, 1}}, band)
	requireHints(t, band)

	// Indices are resolved lazily: the leaf reports the bad row on read.
	bad := mustGet(t, store.Logical(base).Row(7))
	_, err := bad.At(0, 0)
	require.ErrorIs(t, err, store.ErrOutOfRange)
	_, err = bad.At(1, 0)
	require.ErrorIs(t, err, store.ErrOutOfRange)
}

func TestBuilder_Superimpose(t *testing.T) {
	s := mustGet(t, store.Primitive.MakeZero(3, 4).
		SuperimposeAt(1, 1, sequence(t, 2, 2)).
		SuperimposeValue(0, 3, 9))
	requireElements(t, [][]float64{
		{0, 0, 0, 9},
		{0, 1, 2, 0},
		{0, 3, 4, 0},
	}, s)
	requireHints(t, s)

	origin := mustGet(t, store.Logical(sequence(t, 2, 2)).Superimpose(mustGet(t, store.Primitive.MakeSingle(-1))))
	requireElements(t, [][]float64{{-1, 2}, {3, 4}}, origin)

	err := store.Primitive.MakeZero(2, 2).SuperimposeAt(1, 1, sequence(t, 2, 2)).Err()
	require.ErrorIs(t, err, store.ErrDimensionMismatch)
	err = store.Primitive.MakeZero(2, 2).SuperimposeAt(-1, 0, sequence(t, 1, 1)).Err()
	require.ErrorIs(t, err, store.ErrDimensionMismatch)
	err = store.Primitive.MakeZero(2, 2).Superimpose(nil).Err()
	require.ErrorIs(t, err, store.ErrNilStore)
}

func TestBuilder_NormOfIdentity(t *testing.T) {
	n, err := store.Norm(mustGet(t, store.Primitive.MakeIdentity(3)))
	require.NoError(t, err)
	require.InDelta(t, math.Sqrt(3), n, 1e-15)

	n, err = store.Norm(mustGet(t, store.Big.MakeIdentity(3)))
	require.NoError(t, err)
	require.InDelta(t, math.Sqrt(3), n, 1e-15)

	n, err = store.Norm(mustGet(t, store.Complex.MakeIdentity(3)))
	require.NoError(t, err)
	require.InDelta(t, math.Sqrt(3), n, 1e-15)
}

func TestBuilder_CopyIsIndependent(t *testing.T) {
	base := random(t, 4, 3, 7)
	b := store.Logical[float64](base).Transpose().Triangular(true, false).BelowZero(1)
	chain := mustGet(t, b)

	cp, err := b.Copy()
	require.NoError(t, err)
	require.Equal(t, elements(t, chain), elements(t, cp))

	// Mutating the copy does not reach the lazy graph.
	before, err := chain.At(0, 0)
	require.NoError(t, err)
	require.NoError(t, cp.Set(0, 0, 100))
	after, err := chain.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, before, after)

	// Mutating the base after the copy does not reach the copy.
	snapshot := elements(t, cp)
	require.NoError(t, base.Set(0, 0, -100))
	require.Equal(t, snapshot, elements(t, cp))

	// Every call allocates a new instance.
	cp2, err := b.Copy()
	require.NoError(t, err)
	require.NotSame(t, cp, cp2)
}

func TestBuilder_SupplyTo(t *testing.T) {
	dst, err := store.Primitive.NewDense(3, 2)
	require.NoError(t, err)

	b := store.Logical(sequence(t, 2, 3)).Transpose()
	require.NoError(t, b.SupplyTo(dst))
	requireElements(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, dst)

	wrong, err := store.Primitive.NewDense(2, 3)
	require.NoError(t, err)
	require.ErrorIs(t, b.SupplyTo(wrong), store.ErrNotAcceptable)
	require.ErrorIs(t, b.SupplyTo(nil), store.ErrNotAcceptable)

	failed := store.Logical(sequence(t, 2, 3)).Hermitian(true)
	require.ErrorIs(t, failed.SupplyTo(wrong), store.ErrNonSquare)
}

func TestBuilder_TerminalsAndIntrospection(t *testing.T) {
	b := store.Logical(sequence(t, 1, 2)).BelowValues(3, 4)
	require.Equal(t, 2, b.Rows())
	require.Equal(t, 2, b.Cols())
	require.Equal(t, 4, b.Count())
	require.Same(t, store.Primitive, b.Factory())
	require.Equal(t, "[1, 2]\n[3, 4]\n", b.String())

	got, err := b.Build()
	require.NoError(t, err)
	require.Same(t, mustGet(t, b), got)

	failed := store.Primitive.MakeZero(-1, 2)
	require.ErrorIs(t, failed.Err(), store.ErrBadShape)
	require.Equal(t, 0, failed.Rows())
	require.Contains(t, failed.String(), store.ErrBadShape.Error())

	require.Panics(t, func() { store.Logical[float64](nil) })
}

func TestBuilder_RejectedTransformIsLogged(t *testing.T) {
	f := store.NewFactory(store.Primitive.Field(), store.WithLogger(testLogger(t)))
	err := f.MakeZero(2, 3).Hermitian(true).Err()
	require.ErrorIs(t, err, store.ErrNonSquare)
}

var errConcurrentMismatch = errors.New("concurrent copy differs")

func TestViews_ConcurrentReads(t *testing.T) {
	view := mustGet(t, store.Logical[float64](random(t, 16, 16, 8)).
		Hermitian(true).
		Diagonally(mustGet(t, store.Primitive.MakeIdentity(4))).
		Transpose().
		Offsets(1, 1))
	want, err := store.Copy(view)
	require.NoError(t, err)

	var g errgroup.Group
	for w := 0; w < 8; w++ {
		g.Go(func() error {
			got, err := store.Copy(view)
			if err != nil {
				return err
			}
			ok, err := store.AllClose[float64](want, got, 0)
			if err != nil {
				return err
			}
			if !ok {
				return errConcurrentMismatch
			}
			_, err = store.Norm(view)
			return err
		})
	}
	require.NoError(t, g.Wait())
}

func TestMasks_OutOfRangeReachesLeaf(t *testing.T) {
	id := mustGet(t, store.Primitive.MakeIdentity(3))
	masks := map[string]*store.Builder[float64]{
		"triangular":     store.Logical(id).Triangular(true, false),
		"unitTriangular": store.Logical(id).Triangular(true, true),
		"unitLower":      store.Logical(id).Triangular(false, true),
		"diagonal":       store.Logical(id).Diagonal(true),
		"bidiagonal":     store.Logical(id).Bidiagonal(true, true),
		"hessenberg":     store.Logical(id).Hessenberg(true),
		"lowerHess":      store.Logical(id).Hessenberg(false),
		"tridiagonal":    store.Logical(id).Tridiagonal(),
		"hermitian":      store.Logical(id).Hermitian(true),
	}
	coords := [][2]int{{7, 0}, {0, 7}, {7, 7}, {3, 3}, {-1, 0}, {0, -1}}

	for name, b := range masks {
		t.Run(name, func(t *testing.T) {
			s := mustGet(t, b)
			for _, rc := range coords {
				_, err := s.At(rc[0], rc[1])
				require.ErrorIs(t, err, store.ErrOutOfRange, "At(%d,%d)", rc[0], rc[1])
				_, err = s.Float64At(rc[0], rc[1])
				require.ErrorIs(t, err, store.ErrOutOfRange, "Float64At(%d,%d)", rc[0], rc[1])
			}
		})
	}
}

func TestBuilder_SupplyToOwnBuffer(t *testing.T) {
	d := random(t, 3, 3, 13)
	want := elements(t, mustGet(t, store.Logical[float64](d.Clone()).Transpose()))

	require.NoError(t, store.Logical[float64](d).Transpose().SupplyTo(d))
	require.Equal(t, want, elements(t, d))

	// A reordering view over the same buffer.
	e := random(t, 3, 2, 14)
	rev := [][]float64{}
	for _, row := range elements(t, e) {
		rev = append([][]float64{row}, rev...)
	}
	require.NoError(t, store.Logical[float64](e).Row(2, 1, 0).SupplyTo(e))
	require.Equal(t, rev, elements(t, e))
}
