// SPDX-License-Identifier: MIT

package matmul

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/matbench/matrix"
)

// BlockedKernel computes out += lhs × rhs over tiles of side tile.
// Kernels are only dispatched with a Normal out and with preconditions
// (shapes, tiling) already checked by MultiplyBlocked.
type BlockedKernel func(lhs, rhs, out *matrix.Matrix, tile int)

// layoutPair keys the kernel registry.
type layoutPair struct {
	lhs, rhs matrix.Layout
}

var (
	kernelsMu sync.RWMutex
	kernels   = map[layoutPair]BlockedKernel{}
)

func init() {
	RegisterBlockedKernel(matrix.UpperTriangularPacked, matrix.Normal, multiplyBlockedUpperNormal)
	RegisterBlockedKernel(matrix.Normal, matrix.Normal, multiplyBlockedNormalNormal)
}

// RegisterBlockedKernel installs k as the specialization for the
// (lhs, rhs) layout pair, replacing any previous one. Call sites of
// MultiplyBlocked pick it up without changes.
// Panics on unknown layouts or a nil kernel.
func RegisterBlockedKernel(lhs, rhs matrix.Layout, k BlockedKernel) {
	if !lhs.Valid() || !rhs.Valid() {
		panic(fmt.Errorf("%s(%s, %s): %w", opRegister, lhs, rhs, matrix.ErrUnknownLayout))
	}
	if k == nil {
		panic(opRegister + ": nil kernel")
	}
	kernelsMu.Lock()
	kernels[layoutPair{lhs, rhs}] = k
	kernelsMu.Unlock()
}

// LookupBlockedKernel returns the specialization for (lhs, rhs), if any.
func LookupBlockedKernel(lhs, rhs matrix.Layout) (BlockedKernel, bool) {
	kernelsMu.RLock()
	k, ok := kernels[layoutPair{lhs, rhs}]
	kernelsMu.RUnlock()

	return k, ok
}
