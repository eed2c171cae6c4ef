// SPDX-License-Identifier: MIT

package matmul

import (
	"github.com/katalvlaran/matbench/internal/workerpool"
	"github.com/katalvlaran/matbench/matrix"
)

// UnregisterBlockedKernel removes a registry entry so tests can restore the
// built-in dispatch table after installing a custom kernel.
func UnregisterBlockedKernel(lhs, rhs matrix.Layout) {
	kernelsMu.Lock()
	delete(kernels, layoutPair{lhs, rhs})
	kernelsMu.Unlock()
}

// Tiles exposes the tile visiting order.
func Tiles(rows, cols, inner, tile int) []Tile {
	var out []Tile
	forEachTile(rows, cols, inner, tile, func(t Tile) { out = append(out, t) })

	return out
}

// SharedPool exposes the row-parallel pool cache.
func SharedPool(workers int) *workerpool.Pool { return sharedPool(workers) }
