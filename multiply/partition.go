package multiply

import (
	"fmt"

	"github.com/katalvlaran/matmul/matrix"
	"github.com/samber/lo"
)

// RowBlock is the half-open output row range [Start, End) owned by one worker.
type RowBlock struct {
	Start int
	End   int
}

// Len returns End - Start.
func (b RowBlock) Len() int { return b.End - b.Start }

// Empty reports whether the block holds no rows.
func (b RowBlock) Empty() bool { return b.End <= b.Start }

// String renders the block as "[start,end)".
func (b RowBlock) String() string { return fmt.Sprintf("[%d,%d)", b.Start, b.End) }

// Partition splits rows [0, n) into exactly t contiguous blocks with
//
//	block[th] = [floor(th*n/t), floor((th+1)*n/t))
//
// The blocks cover [0, n) once, in order, with no gaps or overlaps. When t
// does not divide n the sizes differ by at most one, and later blocks absorb
// the remainder. When t > n some blocks are empty.
//
// Errors: ErrWorkerCount (t < 1), matrix.ErrBadShape (n < 0).
// Complexity: O(t).
func Partition(n, t int) ([]RowBlock, error) {
	if t < 1 {
		return nil, multiplyErrorf(opPartition, fmt.Errorf("t=%d: %w", t, ErrWorkerCount))
	}
	if n < 0 {
		return nil, multiplyErrorf(opPartition, fmt.Errorf("n=%d: %w", n, matrix.ErrBadShape))
	}

	blocks := make([]RowBlock, t)
	for th := range blocks {
		blocks[th] = RowBlock{Start: boundary(th, n, t), End: boundary(th+1, n, t)}
	}

	return blocks, nil
}

// boundary returns floor(th*n/t) without forming th*n, which overflows for
// large n. th*(n%t) < t*t stays small.
func boundary(th, n, t int) int {
	return th*(n/t) + th*(n%t)/t
}

// Covered returns the total number of rows held by blocks.
func Covered(blocks []RowBlock) int {
	return lo.SumBy(blocks, RowBlock.Len)
}
