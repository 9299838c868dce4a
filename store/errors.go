// SPDX-License-Identifier: MIT
// Package store: sentinel error set.
// Every failure surfaced by this package matches one of these sentinels via
// errors.Is. Call sites add operation context with storeErrorf.

package store

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when requested dimensions are negative.
	ErrBadShape = errors.New("store: invalid shape")

	// ErrOutOfRange indicates that a row, column or 1D index is outside the
	// bounds of the leaf store that resolves it.
	ErrOutOfRange = errors.New("store: index out of range")

	// ErrDimensionMismatch indicates operands whose shapes cannot be combined
	// (concatenation, overlay, element-wise and matrix products).
	ErrDimensionMismatch = errors.New("store: dimension mismatch")

	// ErrNonSquare signals that a square store was required.
	ErrNonSquare = errors.New("store: store is not square")

	// ErrNilStore indicates that a nil store (operand or builder state) was used.
	ErrNilStore = errors.New("store: nil store")

	// ErrNotAcceptable is returned by SupplyTo when the consumer rejects the
	// supplier's shape.
	ErrNotAcceptable = errors.New("store: consumer does not accept supplier")

	// ErrNotVector indicates that an argument expected to be a conforming vector
	// had the wrong length.
	ErrNotVector = errors.New("store: argument is not a conforming vector")
)

// Operation tags used in error wrappers.
const (
	opAbove       = "Above"
	opBelow       = "Below"
	opLeft        = "Left"
	opRight       = "Right"
	opDiagonally  = "Diagonally"
	opHermitian   = "Hermitian"
	opOffsets     = "Offsets"
	opSuperimpose = "Superimpose"
	opSupplyTo    = "SupplyTo"
	opCopy        = "Copy"
	opAdd         = "Add"
	opSubtract    = "Subtract"
	opScale       = "Scale"
	opMultiply    = "Multiply"
	opMultiplyTwo = "MultiplyBoth"
	opPremultiply = "Premultiply"
	opAccept      = "Accept"
	opFill        = "FillByMultiplying"
	opMake        = "Make"
	opAllClose    = "AllClose"
)

// storeErrorf wraps err with an operation tag, preserving it for errors.Is.
// Callers must only pass a non-nil err.
func storeErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// indexErrorf reports an out-of-range coordinate at the leaf that owns it.
func indexErrorf(kind string, row, col int) error {
	return fmt.Errorf("%s.At(%d,%d): %w", kind, row, col, ErrOutOfRange)
}
