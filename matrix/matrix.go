// SPDX-License-Identifier: MIT

// Package matrix - constructors & lifecycle.
//
// Purpose:
//   - Allocate zero-filled storage sized per layout (single allocation per matrix).
//   - Validate user-facing shape/tiling input and return sentinel errors.
//   - Provide explicit Release for callers that want to drop large buffers early.
//
// Complexity quicksheet:
//   - New*: O(storage) zero-init; Clone: O(storage); Release: O(1).
package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxGet     = "Get"
	ctxSet     = "Set"
	ctxNew     = "New"
	ctxConvert = "Convert"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// matrixErrorf wraps err with a Matrix method tag and the offending coordinates.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// New allocates an n×n zero matrix in the given layout.
// MAIN DESCRIPTION:
//   - Single entry point used by ConvertTo and the benchmark driver; the typed
//     constructors below are thin wrappers over it.
//
// Implementation:
//   - Stage 1: resolve options; validate layout, n > 0.
//   - Stage 2: for blocked layouts validate block size and even tiling.
//   - Stage 3: allocate storage sized per layout.
//
// Errors:
//   - ErrUnknownLayout, ErrInvalidDimensions, ErrInvalidBlockSize, ErrBlockTiling.
//
// Complexity:
//   - Time O(storage), Space O(storage).
func New(layout Layout, n int, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)
	if !layout.Valid() {
		return nil, fmt.Errorf("%s(%s): %w", ctxNew, layout, ErrUnknownLayout)
	}
	if n <= 0 {
		return nil, fmt.Errorf("%s(%s): %w", ctxNew, layout, ErrInvalidDimensions)
	}

	m := &Matrix{layout: layout, rows: n, cols: n, validateNaNInf: o.validateNaNInf}
	if layout.Blocked() {
		if o.blockSize <= 0 {
			return nil, fmt.Errorf("%s(%s): %w", ctxNew, layout, ErrInvalidBlockSize)
		}
		if n%o.blockSize != 0 {
			return nil, fmt.Errorf("%s(%s, n=%d, block=%d): %w", ctxNew, layout, n, o.blockSize, ErrBlockTiling)
		}
		m.blocking = Blocking{Size: o.blockSize, PerRow: n / o.blockSize}
	}
	m.data = make([]float64, storageLen(layout, n, n))

	return m, nil
}

// NewNormal allocates a rows×cols dense row-major zero matrix.
// Normal is the only layout that may be rectangular.
func NewNormal(rows, cols int, opts ...Option) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%s(%s): %w", ctxNew, Normal, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)

	return &Matrix{
		layout:         Normal,
		rows:           rows,
		cols:           cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewUpperTriangular allocates an n×n packed upper-triangular zero matrix.
func NewUpperTriangular(n int, opts ...Option) (*Matrix, error) {
	return New(UpperTriangularPacked, n, opts...)
}

// NewLowerTriangular allocates an n×n packed lower-triangular zero matrix.
func NewLowerTriangular(n int, opts ...Option) (*Matrix, error) {
	return New(LowerTriangularPacked, n, opts...)
}

// NewNormalBlocked allocates an n×n tiled matrix with blockSize×blockSize tiles.
func NewNormalBlocked(n, blockSize int, opts ...Option) (*Matrix, error) {
	if blockSize <= 0 {
		return nil, fmt.Errorf("%s(%s): %w", ctxNew, NormalBlocked, ErrInvalidBlockSize)
	}

	return New(NormalBlocked, n, append(opts, WithBlockSize(blockSize))...)
}

// NewUpperTriangularBlocked allocates an n×n tiled upper-triangular matrix.
// Storage is n*n: tiles strictly below the diagonal are allocated and stay zero.
func NewUpperTriangularBlocked(n, blockSize int, opts ...Option) (*Matrix, error) {
	if blockSize <= 0 {
		return nil, fmt.Errorf("%s(%s): %w", ctxNew, UpperTriangularBlocked, ErrInvalidBlockSize)
	}

	return New(UpperTriangularBlocked, n, append(opts, WithBlockSize(blockSize))...)
}

// storageLen is the backing buffer length for a layout.
func storageLen(layout Layout, rows, cols int) int {
	switch layout {
	case UpperTriangularPacked, LowerTriangularPacked:
		return rows * (rows + 1) / 2
	default:
		return rows * cols
	}
}

// Layout returns the storage layout tag.
func (m *Matrix) Layout() Layout { return m.layout }

// Rows returns the number of logical rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of logical columns.
func (m *Matrix) Cols() int { return m.cols }

// Blocking returns the tiling payload (zero value for non-blocked layouts).
func (m *Matrix) Blocking() Blocking { return m.blocking }

// RawData exposes the backing buffer in storage order (aliasing, not a copy).
// Only meaningful together with Layout(); nil after Release.
func (m *Matrix) RawData() []float64 { return m.data }

// Released reports whether Release has been called.
func (m *Matrix) Released() bool { return m.data == nil }

// Release drops the backing buffer. Any later Get/Set panics with ErrReleased.
// Calling Release twice is a no-op.
func (m *Matrix) Release() { m.data = nil }

// Clone returns an independent deep copy with identical layout and policy.
func (m *Matrix) Clone() *Matrix {
	cp := *m
	if m.data != nil {
		cp.data = make([]float64, len(m.data))
		copy(cp.data, m.data)
	}

	return &cp
}

// String renders the logical matrix row by row; absent cells print as 0.
// Intended for debugging; not for hot paths.
func (m *Matrix) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.rows; i++ {
		b.WriteString(_fmtRowOpen)
		for j = 0; j < m.cols; j++ {
			fmt.Fprintf(&b, "%g", m.GetOrZero(i, j))
			if j+1 < m.cols {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
