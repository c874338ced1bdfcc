// SPDX-License-Identifier: MIT
// Package matrix: canonical validators shared by every multiplier.

package matrix

import "fmt"

// validatorErrorf tags err with the validator name, preserving errors.Is.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotEmpty returns ErrEmptyInput if m has zero rows (nil included).
// Complexity: O(1).
func ValidateNotEmpty(m *Dense) error {
	if m.IsEmpty() {
		return validatorErrorf("ValidateNotEmpty", ErrEmptyInput)
	}
	return nil
}

// ValidateMulCompatible – Ensures both operands are non-empty and a.Cols == b.Rows.
//
// Order: emptiness of a, emptiness of b, then inner dimension.
// Errors: ErrEmptyInput, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b *Dense) error {
	if err := ValidateNotEmpty(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotEmpty(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible",
			fmt.Errorf("%dx%d * %dx%d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch))
	}

	return nil
}

// ValidateSquare returns ErrDimensionMismatch if m is not n×n.
func ValidateSquare(m *Dense) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}
	return nil
}
