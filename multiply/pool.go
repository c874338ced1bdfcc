// SPDX-License-Identifier: MIT
package multiply

import (
	"sync"

	"github.com/katalvlaran/matmul/matrix"
	"golang.org/x/sync/errgroup"
)

// task is one row block submitted to a Pool worker together with the shared
// operands and the per-call completion channel.
type task struct {
	block RowBlock
	a, b  [][]matrix.Element
	cols  int
	done  chan<- partial
}

// Pool is a fixed set of worker goroutines reused across Multiply calls.
// Each Multiply submits one task per worker and waits for that many
// completions, so the result contract is identical to Parallel.
// Multiply is safe for concurrent use; Close is idempotent.
type Pool struct {
	workers int
	hook    func(int, RowBlock)
	tasks   chan task

	mu     sync.RWMutex // guards closed against concurrent submit
	closed bool
	g      errgroup.Group
}

// NewPool starts the pool's workers. WithWorkers sets their number
// (DefaultWorkers() otherwise); WithOnBlockStart is called per task.
func NewPool(opts ...Option) *Pool {
	o := gatherOptions(opts...)
	p := &Pool{
		workers: o.workers,
		hook:    o.onBlockStart,
		tasks:   make(chan task),
	}
	for w := 0; w < p.workers; w++ {
		p.g.Go(func() error {
			for t := range p.tasks {
				t.done <- runBlock(w, t.block, t.a, t.b, t.cols, p.hook)
			}
			return nil
		})
	}

	return p
}

// Workers returns the fixed worker count T.
func (p *Pool) Workers() int { return p.workers }

// Multiply computes C = A × B on the pool.
// Errors: ErrEmptyInput, ErrDimensionMismatch, ErrWorkerFailed, ErrPoolClosed.
func (p *Pool) Multiply(a, b *matrix.Dense) (*matrix.Dense, error) {
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, multiplyErrorf(opPool, err)
	}

	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return nil, multiplyErrorf(opPool, ErrPoolClosed)
	}
	blocks, err := Partition(a.Rows(), p.workers)
	if err != nil {
		p.mu.RUnlock()
		return nil, multiplyErrorf(opPool, err)
	}

	av, bv, cols := a.RowsView(), b.RowsView(), b.Cols()
	done := make(chan partial, len(blocks)) // workers never block on completion
	for _, blk := range blocks {
		p.tasks <- task{block: blk, a: av, b: bv, cols: cols, done: done}
	}
	p.mu.RUnlock()

	res, err := assemble(done, len(blocks), a.Rows())
	if err != nil {
		return nil, multiplyErrorf(opPool, err)
	}

	return res, nil
}

// Close stops accepting work and joins every worker.
// Calls already past submission still receive their results.
// Closing a zero Pool only marks it closed.
func (p *Pool) Close() {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		if p.tasks != nil {
			close(p.tasks)
		}
	}
	p.mu.Unlock()

	_ = p.g.Wait() // workers never return an error
}
