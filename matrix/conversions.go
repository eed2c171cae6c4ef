// SPDX-License-Identifier: MIT

// Package matrix - cross-layout conversion.
package matrix

import "fmt"

// Convert copies every cell of src that is valid in BOTH src and dst layouts
// into dst. Cells absent from src keep dst's current value (zero for a fresh
// allocation), cells absent from dst are dropped.
//
// Both matrices must be square and of equal shape; anything else is a caller
// bug and panics (ErrNonSquare / ErrDimensionMismatch).
//
// Determinism: fixed i→j order. Complexity: O(n²).
func Convert(src, dst *Matrix) {
	if err := ValidateSquare(src); err != nil {
		panic(fmt.Errorf("%s: src: %w", ctxConvert, err))
	}
	if err := ValidateSquare(dst); err != nil {
		panic(fmt.Errorf("%s: dst: %w", ctxConvert, err))
	}
	if err := ValidateSameShape(src, dst); err != nil {
		panic(fmt.Errorf("%s: %w", ctxConvert, err))
	}

	var i, j int
	n := src.rows
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if src.ValidIndex(i, j) && dst.ValidIndex(i, j) {
				dst.data[dst.offset(i, j)] = src.data[src.offset(i, j)]
			}
		}
	}
}

// ConvertTo allocates a fresh n×n matrix in layout (see New for opts) and
// converts src into it. src is not modified.
//
// Errors:
//   - construction errors from New (unknown layout, bad block size/tiling).
//   - ErrNonSquare when src is not square (returned, not panicked, since the
//     destination shape cannot even be derived).
func ConvertTo(src *Matrix, layout Layout, opts ...Option) (*Matrix, error) {
	if err := ValidateSquare(src); err != nil {
		return nil, fmt.Errorf("ConvertTo(%s): %w", layout, err)
	}
	dst, err := New(layout, src.rows, opts...)
	if err != nil {
		return nil, fmt.Errorf("ConvertTo(%s): %w", layout, err)
	}
	Convert(src, dst)

	return dst, nil
}

// ToNormal materializes src densely: absent cells become explicit zeros.
func ToNormal(src *Matrix) (*Matrix, error) {
	return ConvertTo(src, Normal)
}
