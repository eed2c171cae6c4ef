// Package matmul multiplies square matrices from package matrix using several
// strategies whose results are numerically equivalent:
//
//   - Multiply: naive i→j→k triple loop over Normal operands (the reference).
//   - MultiplyParallel: the naive loop with rows split across a worker pool.
//   - MultiplyBlocked: cache-blocked tile loop. Dispatches on the
//     (lhs layout, rhs layout) pair through a kernel registry; pairs without
//     a registered kernel run a slower generic path that reads through
//     GetOrZero and logs a warning.
//   - MultiplyBlockedParallel: one goroutine per (row-tile, col-tile, k-tile)
//     triple over an upper-triangular × Normal pair, accumulating into the
//     output with atomic adds.
//   - MultiplyGonum: gonum dgemm over the Normal buffers, an independent
//     third-party reference.
//
// Every function blocks until the whole result is materialized. Preconditions
// (shape mismatch, non-square operands, unsupported layouts, uneven tiling of
// a blocked operand) are programmer errors and panic with an error wrapping a
// sentinel from this package or from package matrix.
package matmul
