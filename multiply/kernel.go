// SPDX-License-Identifier: MIT
package multiply

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/matmul/matrix"
)

// partial is one worker's completion message: the block it owned and the
// computed rows for that block. Ownership of rows moves to the receiver.
type partial struct {
	block RowBlock
	rows  [][]matrix.Element
	err   error
}

// blockKernel computes the rows of A×B in blk. Swapped only by tests.
var blockKernel = computeBlock

// computeBlock multiplies rows blk of a by all of b with an i→k→j loop,
// reading both operands and writing only its own fresh rows.
// Zero A[i][k] entries are skipped.
// Complexity: O(blk.Len()*k*cols).
func computeBlock(a, b [][]matrix.Element, blk RowBlock, cols int) [][]matrix.Element {
	n := blk.Len()
	if n <= 0 {
		return nil
	}

	out := make([][]matrix.Element, n)
	flat := make([]matrix.Element, n*cols)
	for r := 0; r < n; r++ {
		row := flat[r*cols : (r+1)*cols : (r+1)*cols]
		for k, av := range a[blk.Start+r] {
			if av == 0 {
				continue
			}
			bk := b[k]
			for j := range row {
				row[j] += av * bk[j]
			}
		}
		out[r] = row
	}

	return out
}

// runBlock executes one block on the current goroutine and always produces
// exactly one partial, even if the hook or kernel panics.
func runBlock(worker int, blk RowBlock, a, b [][]matrix.Element, cols int, hook func(int, RowBlock)) (p partial) {
	p.block = blk
	defer func() {
		if r := recover(); r != nil {
			p.rows = nil
			p.err = fmt.Errorf("worker %d rows %s: panic: %v: %w", worker, blk, r, ErrWorkerFailed)
		}
	}()

	if hook != nil {
		hook(worker, blk)
	}
	p.rows = blockKernel(a, b, blk, cols)
	if len(p.rows) != blk.Len() {
		p.err = fmt.Errorf("worker %d rows %s: got %d rows: %w", worker, blk, len(p.rows), ErrWorkerFailed)
		p.rows = nil
		return p
	}
	for r, row := range p.rows {
		if len(row) != cols {
			p.err = fmt.Errorf("worker %d row %d: got %d cols, want %d: %w",
				worker, blk.Start+r, len(row), cols, ErrWorkerFailed)
			p.rows = nil
			return p
		}
	}

	return p
}

// assemble receives exactly count partials and places each block into its
// row range of a fresh rows×cols result. Arrival order does not matter since
// blocks are disjoint. Worker errors are joined and the result is dropped.
func assemble(results <-chan partial, count, rows int) (*matrix.Dense, error) {
	out := make([][]matrix.Element, rows)
	var errs []error
	for i := 0; i < count; i++ {
		p := <-results
		if p.err != nil {
			errs = append(errs, p.err)
			continue
		}
		copy(out[p.block.Start:p.block.End], p.rows)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return matrix.Adopt(out)
}
