// SPDX-License-Identifier: MIT
package multiply

import "github.com/katalvlaran/matmul/matrix"

// Sequential computes C = A × B with the textbook i→j→k triple loop on the
// calling goroutine. It is the reference oracle for Parallel and Pool.
//
// Errors:
//   - ErrEmptyInput (A or B has zero rows), ErrDimensionMismatch (A.Cols != B.Rows).
//
// Complexity:
//   - Time O(m*k*n), Space O(m*n) for an m×k by k×n product.
func Sequential(a, b *matrix.Dense) (*matrix.Dense, error) {
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, multiplyErrorf(opSequential, err)
	}

	av, bv := a.RowsView(), b.RowsView()
	m, inner, n := a.Rows(), a.Cols(), b.Cols()

	out := make([][]matrix.Element, m)
	var (
		i, j, k int
		cur     matrix.Element
	)
	for i = 0; i < m; i++ {
		out[i] = make([]matrix.Element, n)
		for j = 0; j < n; j++ {
			cur = 0
			for k = 0; k < inner; k++ {
				cur += av[i][k] * bv[k][j]
			}
			out[i][j] = cur
		}
	}

	return matrix.Adopt(out)
}
