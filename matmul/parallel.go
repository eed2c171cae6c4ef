// SPDX-License-Identifier: MIT

package matmul

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/matbench/matrix"
)

// MultiplyBlockedParallel accumulates lhs × rhs into out with one concurrent
// task per (row-tile, col-tile, k-tile) triple.
//
// Only UpperTriangularPacked × Normal into a Normal out is supported; there
// is no generic fallback and any other combination panics with
// ErrUnsupportedLayout.
//
// Tasks for the same output tile but different k-tiles run concurrently and
// overlap on output cells, so each task sums its tile-local partial products
// and adds them to out with AddNormalAtomic. Tiles entirely below the
// diagonal are never spawned. out must be zeroed beforehand.
//
// At most workers tasks run at a time (<= 0 means GOMAXPROCS). The call
// returns only after every spawned task finished. The floating-point
// summation order across k-tiles is unspecified.
func MultiplyBlockedParallel(lhs, rhs, out *matrix.Matrix, tile, workers int) {
	mustMulCompatible(opBlockedParallel, lhs, rhs, out)
	mustTiling(opBlockedParallel, tile, lhs, rhs, out)
	mustLayout(opBlockedParallel, "lhs", lhs, matrix.UpperTriangularPacked)
	mustLayout(opBlockedParallel, "rhs", rhs, matrix.Normal)
	mustLayout(opBlockedParallel, "out", out, matrix.Normal)

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	var g errgroup.Group
	g.SetLimit(workers)

	forEachTile(out.Rows(), out.Cols(), rhs.Rows(), tile, func(t Tile) {
		if t.belowDiagonal() {
			return
		}
		g.Go(func() error {
			accumulateUpperNormalTile(lhs, rhs, out, t)
			return nil
		})
	})
	_ = g.Wait() // tasks never fail; Wait is the join barrier
}

// accumulateUpperNormalTile adds the tile's contribution to out atomically.
func accumulateUpperNormalTile(lhs, rhs, out *matrix.Matrix, t Tile) {
	var i, j, k, kStart int
	var partial float64
	for i = t.I0; i < t.I1; i++ {
		kStart = max(i, t.K0)
		if kStart >= t.K1 {
			continue
		}
		for j = t.J0; j < t.J1; j++ {
			partial = 0
			for k = kStart; k < t.K1; k++ {
				partial += lhs.GetUpperTriangular(i, k) * rhs.GetNormal(k, j)
			}
			out.AddNormalAtomic(i, j, partial)
		}
	}
}
