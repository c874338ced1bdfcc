package main

import (
	"log"

	"github.com/katalvlaran/matmul/internal/harness"
	"github.com/spf13/cobra"
)

// newRootCmd builds the matbench command. Flag defaults mirror
// harness.DefaultConfig, so a bare invocation is the classic 500×500 run.
func newRootCmd() *cobra.Command {
	cfg := harness.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "matbench",
		Short: "Time sequential vs parallel dense matrix multiplication",
		Long: `matbench multiplies two random square integer matrices twice, once on a
single goroutine and once split by rows across one worker per logical CPU,
and prints how long each took in milliseconds.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := log.New(cmd.ErrOrStderr(), "matbench: ", log.Lmicroseconds)
			if !cfg.Verbose {
				logger = nil
			}
			_, err := harness.Run(cfg, cmd.OutOrStdout(), logger)
			return err
		},
	}

	f := cmd.Flags()
	f.IntVarP(&cfg.Size, "size", "s", cfg.Size, "side length of both square matrices")
	f.Int64VarP(&cfg.Bound, "bound", "b", cfg.Bound, "exclusive upper bound of generated values")
	f.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 seeds from the clock)")
	f.IntVarP(&cfg.Workers, "workers", "w", cfg.Workers, "parallel worker count (0 = number of logical CPUs)")
	f.BoolVar(&cfg.Verify, "verify", cfg.Verify, "fail if the two products differ")
	f.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "log worker starts to stderr")
	f.StringVar(&cfg.RunID, "run-id", cfg.RunID, "label for log lines (default: random UUID)")

	return cmd
}
