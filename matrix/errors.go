// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Constructors and decoders return these sentinels; accessors and the
// converter panic with an error wrapping them (programmer errors). Tests MUST
// check them via errors.Is, including on recovered panic values.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Context is attached with fmt.Errorf("ctx: %w", ErrX)
// at the detection site; callers still match with errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrInvalidIndex indicates that (i,j) is out of bounds or structurally
	// absent for the matrix layout (e.g. i > j on an upper-triangular matrix).
	ErrInvalidIndex = errors.New("matrix: index not valid for layout")

	// ErrUnknownLayout indicates a Layout value outside the closed set.
	ErrUnknownLayout = errors.New("matrix: unknown layout")

	// ErrInvalidBlockSize indicates a non-positive block (tile) size.
	ErrInvalidBlockSize = errors.New("matrix: block size must be > 0")

	// ErrBlockTiling indicates that the dimension is not evenly divisible by
	// the block size of a blocked layout.
	ErrBlockTiling = errors.New("matrix: dimension not divisible by block size")

	// ErrNaNInf signals a NaN or ±Inf value was stored while the finite-only
	// policy is enabled.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Matrix was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrReleased indicates access to a matrix whose storage was released.
	ErrReleased = errors.New("matrix: storage released")

	// ErrBadHeader indicates a serialized header with non-positive or
	// oversized dimensions.
	ErrBadHeader = errors.New("matrix: invalid serialized header")

	// ErrTruncated indicates a serialized payload shorter than its header announced.
	ErrTruncated = errors.New("matrix: truncated serialized payload")
)
