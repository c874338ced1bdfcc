// Package generator produces random dense matrices for the multipliers.
//
// A Generator owns its random source. Two generators built WithSeed(s) for
// the same s yield identical matrix sequences, which keeps benchmarks and
// tests reproducible.
package generator

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/matmul/matrix"
	"github.com/samber/lo"
)

// ErrBadShape is returned for negative requested dimensions.
// It wraps matrix.ErrBadShape, so either sentinel matches via errors.Is.
var ErrBadShape = fmt.Errorf("generator: %w", matrix.ErrBadShape)

// ErrNilGenerator is returned when a method is called on a nil *Generator.
var ErrNilGenerator = errors.New("generator: nil receiver")

// Generator draws independent uniform integers in [0, Bound()).
// It is NOT safe for concurrent use; give each goroutine its own Generator.
type Generator struct {
	cfg config
}

// New builds a Generator from opts.
func New(opts ...Option) *Generator {
	return &Generator{cfg: newConfig(opts...)}
}

// Bound returns the exclusive upper bound of generated values.
func (g *Generator) Bound() int64 { return g.cfg.bound }

// Random returns a rows×cols matrix of values in [0, Bound()).
// Values are drawn row by row, left to right, so a fixed seed fixes the output.
// Errors: ErrNilGenerator, ErrBadShape.
// Complexity: O(rows*cols).
func (g *Generator) Random(rows, cols int) (*matrix.Dense, error) {
	if g == nil {
		return nil, ErrNilGenerator
	}
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("Random(%d,%d): %w", rows, cols, ErrBadShape)
	}

	data := lo.Times(rows, func(int) []matrix.Element {
		return lo.Times(cols, func(int) matrix.Element {
			return g.cfg.rng.Int63n(g.cfg.bound)
		})
	})

	// Every row has exactly cols entries; Adopt only re-checks the lengths.
	return matrix.Adopt(data)
}

// Square is shorthand for Random(n, n).
func (g *Generator) Square(n int) (*matrix.Dense, error) {
	return g.Random(n, n)
}
