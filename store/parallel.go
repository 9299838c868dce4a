// SPDX-License-Identifier: MIT

// Package store: eager kernels. These are the only O(r*c) and O(r*n*c) loops in
// the package; everything else is O(1) graph construction.
//
// Determinism:
//   - Each output element is written by exactly one worker, in fixed k order,
//     so parallel and sequential runs produce bit-identical results.
package store

import (
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// forEachRowBand runs fn over [0, rows) split into contiguous bands. Bands run
// concurrently when rows*cols reaches the factory threshold and more than one
// worker is allowed. The first error wins.
func forEachRowBand[N any](f *Factory[N], op string, rows, cols int, fn func(lo, hi int) error) error {
	workers := f.opts.workers
	parallel := workers > 1 && rows > 1 && rows*cols >= f.opts.parallelThreshold
	f.opts.logger.Debug("store: eager pass",
		slog.String("op", op),
		slog.Int("rows", rows),
		slog.Int("cols", cols),
		slog.Bool("parallel", parallel))

	if !parallel {
		return fn(0, rows)
	}
	if workers > rows {
		workers = rows
	}
	band := (rows + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < rows; lo += band {
		lo, hi := lo, min(lo+band, rows)
		g.Go(func() error { return fn(lo, hi) })
	}

	return g.Wait()
}

// fillFrom copies every element of src into dst (same shape, validated by caller).
func fillFrom[N any](dst *Dense[N], src Store[N]) error {
	cols := dst.cols

	return forEachRowBand(dst.f, opCopy, dst.rows, cols, func(lo, hi int) error {
		var v N
		var err error
		for i := lo; i < hi; i++ {
			base := i * cols
			for j := 0; j < cols; j++ {
				if v, err = src.At(i, j); err != nil {
					return err
				}
				dst.data[base+j] = v
			}
		}

		return nil
	})
}

// multiplyInto overwrites dst with L × right, where L(i, k) is read through
// leftAt. leftRange(i) bounds the nonzero k of row i of L; together with the
// column hints of right it lets the kernel skip structurally zero products.
func multiplyInto[N any](
	dst *Dense[N],
	inner int,
	leftAt func(i, k int) (N, error),
	leftRange func(i int) (lo, hi int),
	right Store[N],
) error {
	field := dst.f.field
	cols := dst.cols

	// Column hints are shared by every row; read them once.
	colLo := make([]int, cols)
	colHi := make([]int, cols)
	for j := 0; j < cols; j++ {
		colLo[j] = clamp(right.FirstInColumn(j), 0, inner)
		colHi[j] = clamp(right.LimitOfColumn(j), 0, inner)
	}

	return forEachRowBand(dst.f, opMultiply, dst.rows, cols, func(lo, hi int) error {
		var a, b N
		var err error
		for i := lo; i < hi; i++ {
			rLo, rHi := leftRange(i)
			base := i * cols
			for j := 0; j < cols; j++ {
				sum := field.Zero()
				kLo, kHi := max(rLo, colLo[j]), min(rHi, colHi[j])
				for k := kLo; k < kHi; k++ {
					if a, err = leftAt(i, k); err != nil {
						return err
					}
					// Exact zeros are structural: 0 × Inf/NaN is not propagated.
					if field.IsZero(a) {
						continue
					}
					if b, err = right.At(k, j); err != nil {
						return err
					}
					sum = field.Add(sum, field.Mul(a, b))
				}
				dst.data[base+j] = sum
			}
		}

		return nil
	})
}
