package harness

import (
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/matmul/generator"
	"github.com/katalvlaran/matmul/matrix"
	"github.com/katalvlaran/matmul/multiply"
)

// Report templates. Each is printed on its own line with the elapsed whole
// milliseconds substituted.
const (
	SingleTemplate = "Single thread calculation executed in %dms\n"
	MultiTemplate  = "Multi thread calculation executed in %dms\n"
)

// ErrResultMismatch is returned when Verify is set and the products differ.
var ErrResultMismatch = errors.New("harness: sequential and parallel results differ")

// Report carries the measured durations of one run.
type Report struct {
	RunID      string
	Size       int
	Workers    int
	Sequential time.Duration
	Parallel   time.Duration
}

// Run generates two Size×Size matrices, multiplies them sequentially and in
// parallel, and prints one timing line per multiplier to stdout. Both
// products are discarded. logger receives worker starts when cfg.Verbose is
// set; nil discards them.
func Run(cfg Config, stdout io.Writer, logger *log.Logger) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	a, b, err := inputs(cfg)
	if err != nil {
		return Report{}, err
	}

	rep := Report{RunID: cfg.RunID, Size: cfg.Size, Workers: cfg.Workers}
	if rep.RunID == "" {
		rep.RunID = uuid.New().String()
	}
	if rep.Workers == 0 {
		rep.Workers = multiply.DefaultWorkers()
	}
	logger.Printf("run %s: multiplying %dx%d matrices, %d workers", rep.RunID, cfg.Size, cfg.Size, rep.Workers)

	seq, d, err := timed(func() (*matrix.Dense, error) { return multiply.Sequential(a, b) })
	if err != nil {
		return Report{}, err
	}
	rep.Sequential = d
	fmt.Fprintf(stdout, SingleTemplate, d.Milliseconds())

	opts := []multiply.Option{multiply.WithWorkers(rep.Workers)}
	if cfg.Verbose {
		opts = append(opts, multiply.WithOnBlockStart(func(w int, blk multiply.RowBlock) {
			logger.Printf("run %s: worker-%d started rows %s", rep.RunID, w, blk)
		}))
	}
	par, d, err := timed(func() (*matrix.Dense, error) { return multiply.Parallel(a, b, opts...) })
	if err != nil {
		return Report{}, err
	}
	rep.Parallel = d
	fmt.Fprintf(stdout, MultiTemplate, d.Milliseconds())

	if cfg.Verify && !matrix.Equal(seq, par) {
		return rep, ErrResultMismatch
	}

	return rep, nil
}

// inputs draws both operands from one generator so a seed fixes the pair.
func inputs(cfg Config) (*matrix.Dense, *matrix.Dense, error) {
	opts := []generator.Option{generator.WithBound(cfg.Bound)}
	if cfg.Seed != 0 {
		opts = append(opts, generator.WithSeed(cfg.Seed))
	}
	gen := generator.New(opts...)

	a, err := gen.Square(cfg.Size)
	if err != nil {
		return nil, nil, err
	}
	b, err := gen.Square(cfg.Size)
	if err != nil {
		return nil, nil, err
	}

	return a, b, nil
}

// timed runs fn and measures its wall-clock duration.
func timed(fn func() (*matrix.Dense, error)) (*matrix.Dense, time.Duration, error) {
	start := time.Now()
	m, err := fn()
	return m, time.Since(start), err
}
