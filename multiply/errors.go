// SPDX-License-Identifier: MIT
// Package multiply: sentinel error set.
// Validation sentinels are re-exported from matrix so callers of this package
// can branch with errors.Is without importing matrix for the error kinds.

package multiply

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/matmul/matrix"
)

var (
	// ErrEmptyInput indicates that A or B has zero rows. Alias of matrix.ErrEmptyInput.
	ErrEmptyInput = matrix.ErrEmptyInput

	// ErrDimensionMismatch indicates A.Cols != B.Rows. Alias of matrix.ErrDimensionMismatch.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch

	// ErrWorkerCount indicates a worker count below 1 was requested for partitioning.
	ErrWorkerCount = errors.New("multiply: worker count must be >= 1")

	// ErrWorkerFailed indicates a worker terminated abnormally or returned an
	// incomplete block. The whole call fails; no partial matrix is returned.
	ErrWorkerFailed = errors.New("multiply: worker failed")

	// ErrPoolClosed is returned by Pool.Multiply after Close.
	ErrPoolClosed = errors.New("multiply: pool closed")
)

// Operation tags (no magic strings in error wrapping).
const (
	opSequential = "Sequential"
	opParallel   = "Parallel"
	opPartition  = "Partition"
	opPool       = "Pool.Multiply"
)

// multiplyErrorf wraps err with an operation tag, preserving errors.Is/As.
// Use only when err != nil.
func multiplyErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
