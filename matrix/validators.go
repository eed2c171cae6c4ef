// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape and tiling checks.
//  - Return errors (no panics) so both the constructors and the kernels can
//    decide whether a violation is user input (return) or a contract breach (panic).
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate nothing on success.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and Rows == Cols.
func ValidateSquare(m *Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.rows != m.cols {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes both are non-nil.
func ValidateSameShape(a, b *Matrix) error {
	if a.rows != b.rows {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.cols != b.cols {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible checks out = lhs × rhs shape agreement and the
// square-only restriction of every multiplication kernel:
//
//	out.Rows == lhs.Rows, out.Cols == rhs.Cols, lhs.Cols == rhs.Rows.
//
// Order: NotNil → Square → inner dims → output dims.
func ValidateMulCompatible(lhs, rhs, out *Matrix) error {
	for _, m := range [...]*Matrix{lhs, rhs, out} {
		if err := ValidateSquare(m); err != nil {
			return validatorErrorf("ValidateMulCompatible", err)
		}
	}
	if lhs.cols != rhs.rows {
		return validatorErrorf("ValidateMulCompatible: inner", ErrDimensionMismatch)
	}
	if out.rows != lhs.rows || out.cols != rhs.cols {
		return validatorErrorf("ValidateMulCompatible: out", ErrDimensionMismatch)
	}

	return nil
}

// ValidateTiling checks that a tile size is positive and, when m uses a
// blocked layout, that it divides the dimension evenly.
func ValidateTiling(m *Matrix, tile int) error {
	if tile <= 0 {
		return validatorErrorf("ValidateTiling", ErrInvalidBlockSize)
	}
	if m.layout.Blocked() && m.rows%tile != 0 {
		return validatorErrorf("ValidateTiling", ErrBlockTiling)
	}

	return nil
}
