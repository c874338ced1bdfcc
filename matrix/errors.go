// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package and by the multipliers built on top of it. Callers MUST branch on
// them via errors.Is. No exported function panics on user-triggered input.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so logs stay greppable.
// Attach context at the call site with fmt.Errorf("ctx: %w", ErrX).
//
// ERROR PRIORITY (enforced in tests):
// nil/empty operand -> dimension mismatch -> index range.

var (
	// ErrBadShape is returned when a requested shape is invalid (rows<0 or cols<0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrRagged is returned when input rows do not all share the same length.
	ErrRagged = errors.New("matrix: ragged rows")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrEmptyInput indicates that an operand of a product has zero rows.
	ErrEmptyInput = errors.New("matrix: empty input")

	// ErrDimensionMismatch indicates that a.Cols != b.Rows for a product.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)

// denseErrorf wraps err with Dense method context and the offending indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}
