// SPDX-License-Identifier: MIT

// Package multiply: functional configuration shared by Parallel and Pool.
//
// Defaults are resolved at call time, so DefaultWorkers reflects the hardware
// concurrency visible to the process when Parallel is invoked, not when the
// package was loaded.
package multiply

import "runtime"

const panicWorkersInvalid = "multiply: WithWorkers: workers must be >= 1"

// Option mutates internal options. Later options override earlier ones.
type Option func(*options)

// options is the resolved configuration; unexported so only Option setters
// can change it.
type options struct {
	workers      int                          // 0 means DefaultWorkers()
	onBlockStart func(worker int, b RowBlock) // nil means no hook
}

// DefaultWorkers returns the number of logical CPUs usable by the process.
func DefaultWorkers() int {
	return runtime.NumCPU()
}

// WithWorkers fixes the worker count T instead of the detected hardware
// concurrency. Panics when t < 1.
func WithWorkers(t int) Option {
	if t < 1 {
		panic(panicWorkersInvalid)
	}
	return func(o *options) { o.workers = t }
}

// WithOnBlockStart installs a hook that every worker calls, from its own
// goroutine, right before computing its block. The hook must be safe for
// concurrent use. A panic inside it counts as a worker failure.
func WithOnBlockStart(fn func(worker int, b RowBlock)) Option {
	return func(o *options) { o.onBlockStart = fn }
}

// gatherOptions applies user setters over defaults and finalizes derived values.
func gatherOptions(user ...Option) options {
	var o options
	for _, set := range user {
		set(&o)
	}
	if o.workers == 0 {
		o.workers = DefaultWorkers()
	}

	return o
}
