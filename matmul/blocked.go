// SPDX-License-Identifier: MIT

package matmul

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/matbench/matrix"
)

// MultiplyBlocked accumulates lhs × rhs into out using cubic tiles of side
// tile, visiting tile triples row-tile → col-tile → k-tile and, inside a
// tile, i → j → k. Edge tiles are clamped to the true extents.
//
// out is accumulated, not overwritten: start from a zero matrix for a plain
// product, or pre-seed it for out += lhs×rhs.
//
// Dispatch:
//   - With a Normal out, a kernel registered for (lhs.Layout(), rhs.Layout())
//     is used (see RegisterBlockedKernel). Built in: UpperTriangularPacked ×
//     Normal (skips k < i) and Normal × Normal.
//   - Otherwise the generic path reads operands through GetOrZero, writes
//     only cells valid in out, and logs a warning.
//
// Panics (wrapping matrix sentinels) on shape mismatch, non-square operands,
// tile <= 0, or a blocked-layout operand whose dimension tile does not divide.
func MultiplyBlocked(lhs, rhs, out *matrix.Matrix, tile int) {
	mustMulCompatible(opBlocked, lhs, rhs, out)
	mustTiling(opBlocked, tile, lhs, rhs, out)

	if out.Layout() == matrix.Normal {
		if k, ok := LookupBlockedKernel(lhs.Layout(), rhs.Layout()); ok {
			k(lhs, rhs, out, tile)
			return
		}
	}

	logger().WithFields(logrus.Fields{
		"lhs":  lhs.Layout().String(),
		"rhs":  rhs.Layout().String(),
		"out":  out.Layout().String(),
		"tile": tile,
	}).Warn("matmul: no specialized blocked kernel, using generic path")
	multiplyBlockedGeneric(lhs, rhs, out, tile)
}

// multiplyBlockedGeneric works for any layout triple. Structurally absent
// operand cells read as 0; structurally absent out cells are skipped.
func multiplyBlockedGeneric(lhs, rhs, out *matrix.Matrix, tile int) {
	forEachTile(out.Rows(), out.Cols(), rhs.Rows(), tile, func(t Tile) {
		var i, j, k int
		var val float64
		for i = t.I0; i < t.I1; i++ {
			for j = t.J0; j < t.J1; j++ {
				if !out.ValidIndex(i, j) {
					continue
				}
				val = out.GetOrZero(i, j)
				for k = t.K0; k < t.K1; k++ {
					val += lhs.GetOrZero(i, k) * rhs.GetOrZero(k, j)
				}
				out.Set(i, j, val)
			}
		}
	})
}

// multiplyBlockedNormalNormal is the plain tiled loop over two Normal operands.
func multiplyBlockedNormalNormal(lhs, rhs, out *matrix.Matrix, tile int) {
	forEachTile(out.Rows(), out.Cols(), rhs.Rows(), tile, func(t Tile) {
		var i, j, k int
		var val float64
		for i = t.I0; i < t.I1; i++ {
			for j = t.J0; j < t.J1; j++ {
				val = out.GetNormal(i, j)
				for k = t.K0; k < t.K1; k++ {
					val += lhs.GetNormal(i, k) * rhs.GetNormal(k, j)
				}
				out.SetNormal(i, j, val)
			}
		}
	})
}

// multiplyBlockedUpperNormal exploits lhs[i,k] = 0 for k < i: the k loop of
// row i starts at max(i, K0), and tiles entirely below the diagonal are
// skipped.
func multiplyBlockedUpperNormal(lhs, rhs, out *matrix.Matrix, tile int) {
	forEachTile(out.Rows(), out.Cols(), rhs.Rows(), tile, func(t Tile) {
		if t.belowDiagonal() {
			return
		}
		var i, j, k, kStart int
		var val float64
		for i = t.I0; i < t.I1; i++ {
			kStart = max(i, t.K0)
			for j = t.J0; j < t.J1; j++ {
				val = out.GetNormal(i, j)
				for k = kStart; k < t.K1; k++ {
					val += lhs.GetUpperTriangular(i, k) * rhs.GetNormal(k, j)
				}
				out.SetNormal(i, j, val)
			}
		}
	})
}
