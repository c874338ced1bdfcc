// Package harness times the sequential and parallel multipliers on random
// square matrices and reports elapsed milliseconds in a fixed format.
package harness

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/matmul/generator"
)

// Defaults reproduce the classic run: two 500×500 matrices in [0, 1000).
const (
	DefaultSize  = 500
	DefaultBound = generator.DefaultBound
)

// ErrInvalidConfig is returned by Validate and Run for nonsensical settings.
var ErrInvalidConfig = errors.New("harness: invalid config")

// Config holds every knob of a benchmark run.
type Config struct {
	Size    int    // side length of both square inputs
	Bound   int64  // exclusive upper bound of generated values
	Seed    int64  // 0 seeds from the clock
	Workers int    // 0 uses the detected hardware concurrency
	Verify  bool   // compare both products before discarding them
	Verbose bool   // log each worker start
	RunID   string // labels log lines; empty generates a UUID
}

// DefaultConfig returns the configuration used when no flags are given.
func DefaultConfig() Config {
	return Config{Size: DefaultSize, Bound: DefaultBound}
}

// Validate reports the first invalid field, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Size < 0:
		return fmt.Errorf("size=%d must be >= 0: %w", c.Size, ErrInvalidConfig)
	case c.Bound <= 0:
		return fmt.Errorf("bound=%d must be > 0: %w", c.Bound, ErrInvalidConfig)
	case c.Workers < 0:
		return fmt.Errorf("workers=%d must be >= 0: %w", c.Workers, ErrInvalidConfig)
	}
	return nil
}
