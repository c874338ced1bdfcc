// SPDX-License-Identifier: MIT
package multiply

import (
	"github.com/katalvlaran/matmul/matrix"
	"golang.org/x/sync/errgroup"
)

// Parallel computes C = A × B with a fork-join over T workers.
// By default T is DefaultWorkers(), read at call time. WithWorkers overrides it.
//
// Implementation:
//   - Stage 1: validate; on failure return before any goroutine starts.
//   - Stage 2: Partition(A.Rows(), T) into disjoint row blocks.
//   - Stage 3: start exactly T workers. Each one reads the shared A and B rows
//     (never copied, never written) and computes only its own block.
//   - Stage 4: each worker sends one partial on a T-buffered channel, so no
//     worker ever blocks on send. The coordinator drains exactly T messages
//     and writes each into its row range.
//   - Stage 5: join all workers (errgroup.Wait) before returning.
//
// Behavior highlights:
//   - No locks: blocks are disjoint, only the coordinator writes the result.
//   - Worker completion order does not affect the output.
//   - A panicking worker is reported as ErrWorkerFailed and no matrix is returned.
//
// Errors:
//   - ErrEmptyInput, ErrDimensionMismatch, ErrWorkerFailed.
//
// Complexity:
//   - Time O(m*k*n / T) wall clock at best, Space O(m*n).
func Parallel(a, b *matrix.Dense, opts ...Option) (*matrix.Dense, error) {
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, multiplyErrorf(opParallel, err)
	}

	o := gatherOptions(opts...)
	blocks, err := Partition(a.Rows(), o.workers)
	if err != nil {
		return nil, multiplyErrorf(opParallel, err)
	}

	av, bv, cols := a.RowsView(), b.RowsView(), b.Cols()
	results := make(chan partial, len(blocks))

	var g errgroup.Group
	for th, blk := range blocks {
		g.Go(func() error {
			p := runBlock(th, blk, av, bv, cols, o.onBlockStart)
			results <- p
			return p.err
		})
	}

	res, asmErr := assemble(results, len(blocks), a.Rows())
	joinErr := g.Wait()
	if asmErr != nil {
		return nil, multiplyErrorf(opParallel, asmErr)
	}
	if joinErr != nil {
		return nil, multiplyErrorf(opParallel, joinErr)
	}

	return res, nil
}
