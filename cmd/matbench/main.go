// Command matbench compares sequential and parallel matrix multiplication.
//
// Usage:
//
//	matbench [--size 500] [--workers 0] [--seed 0] [--verify] [--verbose]
//
// Output is exactly two lines:
//
//	Single thread calculation executed in <N>ms
//	Multi thread calculation executed in <N>ms
package main

import "log"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("matbench: %v", err)
	}
}
