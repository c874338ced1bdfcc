// Package matrix provides the dense integer matrix used by the multipliers.
//
// The matrix package provides:
//
//   - Dense, an ordered sequence of equally long int64 rows whose shape is
//     always derived from the data (rectangular by construction).
//   - Constructors New, FromRows, Adopt and Identity.
//   - ValidateMulCompatible, the single source of truth for the
//     "multiplicable pair" rule (both non-empty, a.Cols == b.Rows).
//
// Errors:
//
//   - ErrBadShape           negative dimensions
//   - ErrRagged             rows of unequal length
//   - ErrOutOfRange         At/Set/Row index outside the shape
//   - ErrEmptyInput         a product operand has zero rows
//   - ErrDimensionMismatch  a.Cols != b.Rows
//
// Dense values are mutable through Set only; multipliers treat their inputs
// as read-only and share them between goroutines through RowsView.
package matrix
