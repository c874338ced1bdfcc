// SPDX-License-Identifier: MIT

// Package matrix: Dense is the row-backed integer matrix shared by the
// sequential and parallel multipliers.
package matrix

import (
	"fmt"
	"strings"
)

// Element is the fixed-width signed integer stored in every cell.
// Arithmetic on it wraps on overflow; no operation guards against that.
type Element = int64

// Dense is an ordered sequence of equally long rows.
// Shape is derived from rows and never stored separately, so it cannot drift
// from the data. The zero value (and a nil *Dense) is the empty 0×0 matrix.
type Dense struct {
	rows [][]Element // len(rows) == Rows(); every len(rows[i]) == Cols()
}

// New creates a rows×cols matrix filled with zeros.
// Zero in either dimension is allowed and yields an empty-shaped matrix.
// Returns ErrBadShape on negative dimensions.
// Complexity: O(rows*cols) time and memory.
func New(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrBadShape)
	}

	// One flat allocation, sliced into rows, keeps rows contiguous.
	flat := make([]Element, rows*cols)
	data := make([][]Element, rows)
	for i := range data {
		data[i] = flat[i*cols : (i+1)*cols : (i+1)*cols]
	}

	return &Dense{rows: data}, nil
}

// FromRows builds a Dense from a deep copy of src.
// Stage 1 (Validate): every row must have len(src[0]).
// Stage 2 (Execute): copy into freshly allocated rows.
// Returns ErrRagged if any row length differs.
// Complexity: O(rows*cols).
func FromRows(src [][]Element) (*Dense, error) {
	if len(src) == 0 {
		return &Dense{}, nil
	}
	cols := len(src[0])
	for i := range src {
		if len(src[i]) != cols {
			return nil, fmt.Errorf("FromRows: row %d has %d cols, want %d: %w", i, len(src[i]), cols, ErrRagged)
		}
	}

	m, err := New(len(src), cols)
	if err != nil {
		return nil, err
	}
	for i := range src {
		copy(m.rows[i], src[i])
	}

	return m, nil
}

// Adopt wraps rows without copying; ownership of rows moves to the result.
// Callers MUST NOT keep writing to rows afterwards.
// Returns ErrRagged if the rows are not rectangular.
// Complexity: O(rows) for the length check.
func Adopt(rows [][]Element) (*Dense, error) {
	for i := range rows {
		if len(rows[i]) != len(rows[0]) {
			return nil, fmt.Errorf("Adopt: row %d has %d cols, want %d: %w", i, len(rows[i]), len(rows[0]), ErrRagged)
		}
	}
	return &Dense{rows: rows}, nil
}

// Identity returns the n×n identity matrix.
// Returns ErrBadShape when n < 0.
func Identity(n int) (*Dense, error) {
	m, err := New(n, n)
	if err != nil {
		return nil, fmt.Errorf("Identity: %w", err)
	}
	for i := 0; i < n; i++ {
		m.rows[i][i] = 1
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int {
	if m == nil {
		return 0
	}
	return len(m.rows)
}

// Cols returns the number of columns (0 for a matrix without rows).
func (m *Dense) Cols() int {
	if m == nil || len(m.rows) == 0 {
		return 0
	}
	return len(m.rows[0])
}

// Shape returns (Rows, Cols).
func (m *Dense) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// IsEmpty reports whether the matrix has no rows.
func (m *Dense) IsEmpty() bool { return m.Rows() == 0 }

// checkIndex validates (row, col) against the current shape.
func (m *Dense) checkIndex(method string, row, col int) error {
	if row < 0 || row >= m.Rows() || col < 0 || col >= m.Cols() {
		return denseErrorf(method, row, col, ErrOutOfRange)
	}
	return nil
}

// At retrieves the element at (row, col).
// Returns ErrOutOfRange on invalid indices.
// Complexity: O(1).
func (m *Dense) At(row, col int) (Element, error) {
	if err := m.checkIndex("At", row, col); err != nil {
		return 0, err
	}
	return m.rows[row][col], nil
}

// Set assigns v at (row, col). It changes a value, never the shape.
// Returns ErrOutOfRange on invalid indices.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v Element) error {
	if err := m.checkIndex("Set", row, col); err != nil {
		return err
	}
	m.rows[row][col] = v

	return nil
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]Element, error) {
	if i < 0 || i >= m.Rows() {
		return nil, denseErrorf("Row", i, 0, ErrOutOfRange)
	}
	out := make([]Element, len(m.rows[i]))
	copy(out, m.rows[i])

	return out, nil
}

// RowsView exposes the backing rows for read-only use by kernels.
// The returned slices alias m; callers MUST NOT write through them.
func (m *Dense) RowsView() [][]Element {
	if m == nil {
		return nil
	}
	return m.rows
}

// Clone returns a deep copy.
// Complexity: O(rows*cols).
func (m *Dense) Clone() *Dense {
	// FromRows cannot fail here: m already satisfies the rectangular invariant.
	c, _ := FromRows(m.RowsView())
	return c
}

// Equal reports whether a and b have the same shape and entries.
// Two empty matrices are equal regardless of nil-ness.
func Equal(a, b *Dense) bool {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	ar, br := a.RowsView(), b.RowsView()
	for i := range ar {
		for j := range ar[i] {
			if ar[i][j] != br[i][j] {
				return false
			}
		}
	}

	return true
}

// String renders one bracketed row per line, e.g. "[1, 2]\n[3, 4]\n".
func (m *Dense) String() string {
	var sb strings.Builder
	for _, row := range m.RowsView() {
		sb.WriteByte('[')
		for j, v := range row {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%d", v)
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
