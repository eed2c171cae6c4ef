// SPDX-License-Identifier: MIT

// Package matrix - layout-dispatched accessors.
//
// Purpose:
//   - One logical (i,j) contract over every physical layout.
//   - Get/Set fail fast (panic) on structurally absent cells; GetOrZero never fails.
//   - Hot-path accessors skip the layout switch for kernels that already
//     dispatched on the layout pair.
//
// Offset formulas (n = rows = cols for square layouts):
//
//	Normal                  i*cols + j
//	UpperTriangularPacked   j*(j+1)/2 + i                  (i <= j)
//	LowerTriangularPacked   j*(2n-j+1)/2 + (i-j)           (i >= j)
//	*Blocked                (bi*PerRow + bj)*Size² + (i%Size)*Size + j%Size
package matrix

import (
	"math"
	"sync/atomic"
	"unsafe"
)

// ValidIndex reports whether (i,j) is in bounds and structurally present.
// Bounds are checked first, then the layout predicate.
// Complexity: O(1).
func (m *Matrix) ValidIndex(i, j int) bool {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return false
	}
	switch m.layout {
	case Normal, NormalBlocked:
		return true
	case UpperTriangularPacked, UpperTriangularBlocked:
		return i <= j
	case LowerTriangularPacked:
		return i >= j
	default:
		return false
	}
}

// offset maps a valid (i,j) to its position in data. No validation.
func (m *Matrix) offset(i, j int) int {
	switch m.layout {
	case Normal:
		return i*m.cols + j
	case UpperTriangularPacked:
		return j*(j+1)/2 + i
	case LowerTriangularPacked:
		return j*(2*m.rows-j+1)/2 + (i - j)
	case NormalBlocked, UpperTriangularBlocked:
		return m.blockedOffset(i, j)
	default:
		panic(matrixErrorf("offset", i, j, ErrUnknownLayout))
	}
}

// blockedOffset locates tile (i/Size, j/Size) and recurses into it as a
// Size×Size row-major sub-matrix.
func (m *Matrix) blockedOffset(i, j int) int {
	bs := m.blocking.Size
	tile := (i/bs)*m.blocking.PerRow + j/bs

	return tile*bs*bs + (i%bs)*bs + j%bs
}

// mustOffset validates (i,j) and returns its storage offset or panics.
func (m *Matrix) mustOffset(method string, i, j int) int {
	if !m.ValidIndex(i, j) {
		panic(matrixErrorf(method, i, j, ErrInvalidIndex))
	}
	if m.data == nil {
		panic(matrixErrorf(method, i, j, ErrReleased))
	}

	return m.offset(i, j)
}

// Get returns the value at (i,j).
// Panics with ErrInvalidIndex when ValidIndex(i,j) is false: reading a
// structurally absent cell is a caller bug, use GetOrZero for dense views.
func (m *Matrix) Get(i, j int) float64 {
	return m.data[m.mustOffset(ctxGet, i, j)]
}

// Set stores v at (i,j).
// Panics with ErrInvalidIndex on an invalid cell and with ErrNaNInf when the
// finite-only policy is on and v is NaN/±Inf.
func (m *Matrix) Set(i, j int, v float64) {
	off := m.mustOffset(ctxSet, i, j)
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		panic(matrixErrorf(ctxSet, i, j, ErrNaNInf))
	}
	m.data[off] = v
}

// GetOrZero returns the value at (i,j), or 0 for any index that is out of
// range, structurally absent, or on released storage. Never panics.
func (m *Matrix) GetOrZero(i, j int) float64 {
	if m.data == nil || !m.ValidIndex(i, j) {
		return 0
	}

	return m.data[m.offset(i, j)]
}

// GetNormal reads (i,j) assuming the Normal layout and a valid index.
// No layout switch, no checks beyond the slice bound.
func (m *Matrix) GetNormal(i, j int) float64 {
	return m.data[i*m.cols+j]
}

// SetNormal writes (i,j) assuming the Normal layout and a valid index.
func (m *Matrix) SetNormal(i, j int, v float64) {
	m.data[i*m.cols+j] = v
}

// GetUpperTriangular reads (i,j) assuming UpperTriangularPacked and i <= j.
func (m *Matrix) GetUpperTriangular(i, j int) float64 {
	return m.data[j*(j+1)/2+i]
}

// AddNormalAtomic performs out[i,j] += delta on a Normal matrix as an atomic
// read-modify-write (CAS loop over the float64 bit pattern).
// Safe for concurrent callers targeting the same or different cells.
func (m *Matrix) AddNormalAtomic(i, j int, delta float64) {
	p := (*uint64)(unsafe.Pointer(&m.data[i*m.cols+j]))
	for {
		old := atomic.LoadUint64(p)
		sum := math.Float64bits(math.Float64frombits(old) + delta)
		if atomic.CompareAndSwapUint64(p, old, sum) {
			return
		}
	}
}
