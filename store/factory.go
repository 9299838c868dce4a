// SPDX-License-Identifier: MIT

// Package store: factories bind a numeric backend to leaf construction.
//
// Purpose:
//   - One Factory per element type, created once and shared process-wide.
//   - Every Make* returns a Builder over a fresh leaf so composition can start
//     immediately.
//
// AI-Hints:
//   - Use Primitive/Complex/Big unless custom Options are needed; NewFactory
//     with WithWorkers(1) gives fully sequential eager paths.
package store

import (
	"math/big"

	"github.com/katalvlaran/lvmat/scalar"
)

// Process-wide factories, one per numeric backend.
var (
	Primitive = NewFactory(scalar.Float64)
	Complex   = NewFactory(scalar.Complex128)
	Big       = NewFactory[*big.Float](scalar.BigFloat)
)

// Factory produces leaf stores and physical stores for one numeric backend.
// A Factory is immutable after NewFactory and safe for concurrent use.
type Factory[N any] struct {
	field scalar.Field[N]
	opts  Options
}

// NewFactory returns a factory over field configured by opts.
// It panics when field is nil (programmer error).
func NewFactory[N any](field scalar.Field[N], opts ...Option) *Factory[N] {
	if field == nil {
		panic("store: NewFactory: field must be non-nil")
	}

	return &Factory[N]{field: field, opts: gatherOptions(opts...)}
}

// Field returns the numeric backend.
func (f *Factory[N]) Field() scalar.Field[N] { return f.field }

// Options returns the effective configuration.
func (f *Factory[N]) Options() Options { return f.opts }

// MakeIdentity returns a builder over the dim×dim identity.
func (f *Factory[N]) MakeIdentity(dim int) *Builder[N] {
	if dim < 0 {
		return failedBuilder(f, storeErrorf(opMake, ErrBadShape))
	}

	return Logical[N](&identityStore[N]{dims: dims[N]{rows: dim, cols: dim, f: f}})
}

// MakeSingle returns a builder over the 1×1 store holding v.
func (f *Factory[N]) MakeSingle(v N) *Builder[N] {
	return Logical[N](newSingle(f, v))
}

// MakeWrapper returns a builder over a read-through view of src. The wrapper
// holds src by reference; src must not change shape afterwards.
func (f *Factory[N]) MakeWrapper(src Access2D[N]) *Builder[N] {
	if src == nil {
		return failedBuilder(f, storeErrorf(opMake, ErrNilStore))
	}
	if src.Rows() < 0 || src.Cols() < 0 {
		return failedBuilder(f, storeErrorf(opMake, ErrBadShape))
	}

	return Logical[N](&wrapperStore[N]{dims: dims[N]{rows: src.Rows(), cols: src.Cols(), f: f}, src: src})
}

// MakeZero returns a builder over the rows×cols zero store.
func (f *Factory[N]) MakeZero(rows, cols int) *Builder[N] {
	z, err := newZero(f, rows, cols)
	if err != nil {
		return failedBuilder(f, storeErrorf(opMake, err))
	}

	return Logical[N](z)
}

// MakeRows returns a builder over a physical copy of the row-major literal data.
// All rows must have the same length.
func (f *Factory[N]) MakeRows(data [][]N) *Builder[N] {
	d, err := f.DenseFromRows(data)
	if err != nil {
		return failedBuilder(f, storeErrorf(opMake, err))
	}

	return Logical[N](d)
}

// MakeColumn returns a builder over the len(values)×1 column vector.
func (f *Factory[N]) MakeColumn(values ...N) *Builder[N] {
	return Logical[N](f.column(values))
}

// MakeRow returns a builder over the 1×len(values) row vector.
func (f *Factory[N]) MakeRow(values ...N) *Builder[N] {
	return Logical[N](f.row(values))
}

func (f *Factory[N]) column(values []N) *Dense[N] {
	d := f.newDense(len(values), 1)
	copy(d.data, values)

	return d
}

func (f *Factory[N]) row(values []N) *Dense[N] {
	d := f.newDense(1, len(values))
	copy(d.data, values)

	return d
}
