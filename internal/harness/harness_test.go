package harness_test

import (
	"bytes"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/matmul/internal/harness"
	"github.com/katalvlaran/matmul/multiply"
	"github.com/stretchr/testify/require"
)

// TestRunPrintsTwoLines checks the fixed output templates and nothing else.
func TestRunPrintsTwoLines(t *testing.T) {
	cfg := harness.DefaultConfig()
	cfg.Size = 24
	cfg.Seed = 3
	cfg.Verify = true

	var out bytes.Buffer
	rep, err := harness.Run(cfg, &out, nil)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	require.Regexp(t, `^Single thread calculation executed in \d+ms$`, lines[0])
	require.Regexp(t, `^Multi thread calculation executed in \d+ms$`, lines[1])

	require.Equal(t, 24, rep.Size)
	require.Equal(t, multiply.DefaultWorkers(), rep.Workers)
	require.GreaterOrEqual(t, rep.Sequential, time.Duration(0))
	require.GreaterOrEqual(t, rep.Parallel, time.Duration(0))
}

// TestRunVerboseLogsWorkers ensures each worker start is logged, not printed.
func TestRunVerboseLogsWorkers(t *testing.T) {
	cfg := harness.Config{Size: 8, Bound: 10, Seed: 1, Workers: 3, Verbose: true, Verify: true}

	var out, logs bytes.Buffer
	rep, err := harness.Run(cfg, &out, log.New(&logs, "", 0))
	require.NoError(t, err)
	require.Equal(t, 3, rep.Workers)

	for _, w := range []string{"worker-0 started", "worker-1 started", "worker-2 started"} {
		require.Contains(t, logs.String(), w)
	}
	require.NotContains(t, out.String(), "worker-")
}

// TestRunID checks that a given ID is kept and an empty one becomes a UUID.
func TestRunID(t *testing.T) {
	var out, logs bytes.Buffer
	rep, err := harness.Run(harness.Config{Size: 4, Bound: 10, Seed: 2, RunID: "fixed"}, &out, log.New(&logs, "", 0))
	require.NoError(t, err)
	require.Equal(t, "fixed", rep.RunID)
	require.Contains(t, logs.String(), "run fixed:")

	rep, err = harness.Run(harness.Config{Size: 4, Bound: 10, Seed: 2}, &out, nil)
	require.NoError(t, err)
	_, err = uuid.Parse(rep.RunID)
	require.NoError(t, err)
}

func TestRunInvalidConfig(t *testing.T) {
	cases := []harness.Config{
		{Size: -1, Bound: 10},
		{Size: 4, Bound: 0},
		{Size: 4, Bound: 10, Workers: -2},
	}
	for _, cfg := range cases {
		var out bytes.Buffer
		_, err := harness.Run(cfg, &out, nil)
		require.ErrorIs(t, err, harness.ErrInvalidConfig)
		require.Empty(t, out.String())
	}
}

// TestRunEmptySize surfaces the multiplier's empty-input error.
func TestRunEmptySize(t *testing.T) {
	var out bytes.Buffer
	_, err := harness.Run(harness.Config{Size: 0, Bound: 10}, &out, nil)
	require.ErrorIs(t, err, multiply.ErrEmptyInput)
}

func TestDefaultConfig(t *testing.T) {
	cfg := harness.DefaultConfig()
	require.Equal(t, 500, cfg.Size)
	require.Equal(t, int64(1000), cfg.Bound)
	require.Zero(t, cfg.Workers)
	require.NoError(t, cfg.Validate())
}
