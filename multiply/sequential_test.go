package multiply_test

import (
	"testing"

	"github.com/katalvlaran/matmul/matrix"
	"github.com/katalvlaran/matmul/multiply"
	"github.com/stretchr/testify/require"
)

// TestSequentialKnownProduct checks the hand-computed 2×2 product.
func TestSequentialKnownProduct(t *testing.T) {
	got, err := multiply.Sequential(paperA(t), paperB(t))
	require.NoError(t, err)
	require.True(t, matrix.Equal(paperC(t), got), "got:\n%s", got)
}

// TestSequentialRectangular checks shape (m×k)·(k×n) = m×n.
func TestSequentialRectangular(t *testing.T) {
	a := mustRows(t, [][]matrix.Element{{1, 2, 3}, {4, 5, 6}})      // 2×3
	b := mustRows(t, [][]matrix.Element{{7, 8}, {9, 10}, {11, 12}}) // 3×2
	got, err := multiply.Sequential(a, b)
	require.NoError(t, err)

	want := mustRows(t, [][]matrix.Element{{58, 64}, {139, 154}})
	require.True(t, matrix.Equal(want, got), "got:\n%s", got)
}

// TestSequentialIdentity checks A·I == A and I·A == A.
func TestSequentialIdentity(t *testing.T) {
	a := mustRandom(t, 9, 9, 5)
	id := mustIdentity(t, 9)

	right, err := multiply.Sequential(a, id)
	require.NoError(t, err)
	require.True(t, matrix.Equal(a, right))

	left, err := multiply.Sequential(id, a)
	require.NoError(t, err)
	require.True(t, matrix.Equal(a, left))
}

// TestSequentialDoesNotMutateInputs ensures operands are read-only.
func TestSequentialDoesNotMutateInputs(t *testing.T) {
	a, b := paperA(t), paperB(t)
	_, err := multiply.Sequential(a, b)
	require.NoError(t, err)
	require.True(t, matrix.Equal(paperA(t), a))
	require.True(t, matrix.Equal(paperB(t), b))
}

// TestSequentialErrors distinguishes mismatch from empty input.
func TestSequentialErrors(t *testing.T) {
	a23 := mustRows(t, [][]matrix.Element{{1, 2, 3}, {4, 5, 6}})
	b22 := mustRows(t, [][]matrix.Element{{1, 2}, {3, 4}})
	empty := mustRows(t, nil)

	_, err := multiply.Sequential(a23, b22)
	require.ErrorIs(t, err, multiply.ErrDimensionMismatch)
	require.NotErrorIs(t, err, multiply.ErrEmptyInput)

	_, err = multiply.Sequential(empty, b22)
	require.ErrorIs(t, err, multiply.ErrEmptyInput)

	_, err = multiply.Sequential(b22, nil)
	require.ErrorIs(t, err, multiply.ErrEmptyInput)
}
