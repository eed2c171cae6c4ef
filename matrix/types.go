// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// This file contains ONLY the layout tag, blocking payload and the Matrix
// value itself. Accessors live in impl_storage.go, constructors in matrix.go.
package matrix

import "fmt"

// Layout is the closed set of physical storage arrangements.
// Dispatch over a Layout is always an exhaustive switch; unknown values are
// a programmer error.
type Layout uint8

const (
	// Normal is dense row-major storage: offset = i*cols + j.
	Normal Layout = iota

	// UpperTriangularPacked stores only i <= j, column-major: offset = j*(j+1)/2 + i.
	UpperTriangularPacked

	// NormalBlocked stores Size×Size tiles contiguously; every cell is valid.
	NormalBlocked

	// UpperTriangularBlocked is NormalBlocked storage restricted to i <= j.
	// Storage is still rows*cols (zero tiles below the diagonal are kept).
	UpperTriangularBlocked

	// LowerTriangularPacked stores only i >= j, column-major:
	// offset = j*(2n-j+1)/2 + (i-j).
	LowerTriangularPacked

	layoutCount // sentinel, keep last
)

// layoutNames is indexed by Layout; order MUST mirror the const block.
var layoutNames = [layoutCount]string{
	"normal",
	"upper-triangular-packed",
	"normal-blocked",
	"upper-triangular-blocked",
	"lower-triangular-packed",
}

// String implements fmt.Stringer.
func (l Layout) String() string {
	if l >= layoutCount {
		return fmt.Sprintf("layout(%d)", uint8(l))
	}

	return layoutNames[l]
}

// Valid reports whether l belongs to the closed layout set.
func (l Layout) Valid() bool { return l < layoutCount }

// Blocked reports whether the layout carries a Blocking payload.
func (l Layout) Blocked() bool { return l == NormalBlocked || l == UpperTriangularBlocked }

// Triangular reports whether the layout has a structural zero half.
func (l Layout) Triangular() bool {
	return l == UpperTriangularPacked || l == UpperTriangularBlocked || l == LowerTriangularPacked
}

// ParseLayout maps a layout name (as produced by String) back to a Layout.
func ParseLayout(s string) (Layout, error) {
	for i, name := range layoutNames {
		if name == s {
			return Layout(i), nil
		}
	}

	return 0, fmt.Errorf("ParseLayout(%q): %w", s, ErrUnknownLayout)
}

// Blocking is the payload of the blocked layouts.
// Size is the tile side; PerRow = rows / Size tiles per block row.
// Both are zero for non-blocked layouts.
type Blocking struct {
	Size   int // tile side length
	PerRow int // tiles per block row (rows / Size)
}

// Matrix is a square-or-rectangular float64 matrix with an explicit layout.
//   - layout selects offset arithmetic and the structural validity predicate.
//   - blocking is meaningful only when layout.Blocked().
//   - data is owned exclusively by this value; nil after Release.
//
// A Matrix is not safe for concurrent mutation except through AddNormalAtomic.
type Matrix struct {
	layout         Layout
	rows, cols     int
	blocking       Blocking
	data           []float64
	validateNaNInf bool // reject NaN/Inf in Set when true
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)
