package matrix_test

import (
	"testing"

	"github.com/katalvlaran/matmul/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateMulCompatible(t *testing.T) {
	sq, _ := matrix.New(2, 2)
	wide, _ := matrix.New(2, 3)
	empty, _ := matrix.New(0, 0)

	cases := []struct {
		name string
		a, b *matrix.Dense
		want error
	}{
		{"ok", sq, sq, nil},
		{"ok rectangular", sq, wide, nil},
		{"mismatch", wide, sq, matrix.ErrDimensionMismatch},
		{"empty left", empty, sq, matrix.ErrEmptyInput},
		{"empty right", sq, empty, matrix.ErrEmptyInput},
		{"nil left", nil, sq, matrix.ErrEmptyInput},
		{"empty wins over mismatch", empty, wide, matrix.ErrEmptyInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateMulCompatible(tc.a, tc.b)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestValidateSquare(t *testing.T) {
	sq, _ := matrix.New(3, 3)
	require.NoError(t, matrix.ValidateSquare(sq))

	wide, _ := matrix.New(2, 3)
	require.ErrorIs(t, matrix.ValidateSquare(wide), matrix.ErrDimensionMismatch)
}
