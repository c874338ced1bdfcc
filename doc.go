// Package matmul compares sequential and parallel dense matrix multiplication.
//
// What is inside:
//
//	matrix/     — Dense integer matrix, sentinel errors, multiplication validators
//	generator/  — seeded random matrices with values in [0, bound)
//	multiply/   — Sequential oracle, row-block Partition, Parallel fork-join, reusable Pool
//	cmd/matbench — CLI that times both multipliers on two 500×500 inputs
//
// Quick ASCII view of a 4-worker run over 10 output rows:
//
//	rows 0-1  ── worker 0 ─┐
//	rows 2-4  ── worker 1 ─┤
//	rows 5-6  ── worker 2 ─┼─▶ channel ─▶ coordinator ─▶ C
//	rows 7-9  ── worker 3 ─┘
//
// Every worker reads all of A and B, writes only its own rows, and reports
// once; the coordinator places the blocks and joins the workers.
//
//	go install github.com/katalvlaran/matmul/cmd/matbench@latest
package matmul
