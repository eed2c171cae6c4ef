// SPDX-License-Identifier: MIT

// Package bench drives one benchmark run: it allocates the operands
// (A upper-triangular packed, B Normal), fills them from a seeded generator,
// times the selected multiplication algorithm, verifies the product against
// matmul.Reference and optionally persists it in the matrix wire format.
//
// The algorithm catalogue is fixed; list it with Algorithms or Names.
//
//	p := bench.DefaultParams()
//	p.Dimension, p.BlockSize = 960, bench.DefaultBlockSize(960)
//	p.Algorithm = bench.ParallelBlockTask
//	rep, err := bench.Run(ctx, p, log)
//	if errors.Is(err, bench.ErrVerificationFailed) { ... }
package bench
