// SPDX-License-Identifier: MIT
// Package multiply_test contains test helpers
//
// Purpose:
//   • Provide small deterministic fixtures (literal and seeded random matrices).
//   • Keep every helper fatal on setup failure so tests read linearly.

package multiply_test

import (
	"testing"

	"github.com/katalvlaran/matmul/generator"
	"github.com/katalvlaran/matmul/matrix"
)

// workerCounts exercises T=1, small T, T around the row count, and T > n.
var workerCounts = []int{1, 2, 3, 4, 7, 16, 64}

// mustRows builds a Dense from literal rows or fails the test.
func mustRows(tb testing.TB, rows [][]matrix.Element) *matrix.Dense {
	tb.Helper()
	m, err := matrix.FromRows(rows)
	if err != nil {
		tb.Fatalf("FromRows: %v", err)
	}
	return m
}

// mustRandom builds a seeded rows×cols matrix in [0, 1000) or fails the test.
func mustRandom(tb testing.TB, rows, cols int, seed int64) *matrix.Dense {
	tb.Helper()
	m, err := generator.New(generator.WithSeed(seed)).Random(rows, cols)
	if err != nil {
		tb.Fatalf("Random(%d,%d): %v", rows, cols, err)
	}
	return m
}

// mustIdentity returns I_n or fails the test.
func mustIdentity(tb testing.TB, n int) *matrix.Dense {
	tb.Helper()
	id, err := matrix.Identity(n)
	if err != nil {
		tb.Fatalf("Identity(%d): %v", n, err)
	}
	return id
}

// paperA / paperB / paperC is the 2×2 fixture with a hand-checked product.
func paperA(tb testing.TB) *matrix.Dense {
	return mustRows(tb, [][]matrix.Element{{1, 2}, {3, 4}})
}

func paperB(tb testing.TB) *matrix.Dense {
	return mustRows(tb, [][]matrix.Element{{5, 6}, {7, 8}})
}

func paperC(tb testing.TB) *matrix.Dense {
	return mustRows(tb, [][]matrix.Element{{19, 22}, {43, 50}})
}
