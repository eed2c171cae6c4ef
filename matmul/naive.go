// SPDX-License-Identifier: MIT

package matmul

import "github.com/katalvlaran/matbench/matrix"

// Multiply computes out[i,j] = Σ_k lhs[i,k]*rhs[k,j] with the naive i→j→k loop.
// lhs, rhs and out must be Normal; out is overwritten, not accumulated.
//
// This is the reference every other algorithm is verified against: the sum
// for each cell starts at 0 and adds terms in ascending k.
//
// Complexity: O(n³) time, O(1) extra space.
func Multiply(lhs, rhs, out *matrix.Matrix) {
	mustNaive(opMultiply, lhs, rhs, out)
	multiplyRows(lhs, rhs, out, 0, out.Rows())
}

// MultiplyParallel is Multiply with the outer row loop split across a
// persistent pool of workers (<= 0 means GOMAXPROCS), shared by every call
// with the same worker count. Every row is written by exactly one worker, so
// the output needs no synchronization and the result is bit-identical to
// Multiply. Returns after all row chunks finished.
func MultiplyParallel(lhs, rhs, out *matrix.Matrix, workers int) {
	mustNaive(opMultiplyParallel, lhs, rhs, out)

	sharedPool(workers).ParallelFor(out.Rows(), func(start, end int) {
		multiplyRows(lhs, rhs, out, start, end)
	})
}

func mustNaive(tag string, lhs, rhs, out *matrix.Matrix) {
	mustMulCompatible(tag, lhs, rhs, out)
	mustLayout(tag, "lhs", lhs, matrix.Normal)
	mustLayout(tag, "rhs", rhs, matrix.Normal)
	mustLayout(tag, "out", out, matrix.Normal)
}

// multiplyRows runs the naive loop for output rows [r0, r1).
func multiplyRows(lhs, rhs, out *matrix.Matrix, r0, r1 int) {
	var i, j, k int
	var val float64
	cols, inner := out.Cols(), rhs.Rows()
	for i = r0; i < r1; i++ {
		for j = 0; j < cols; j++ {
			val = 0
			for k = 0; k < inner; k++ {
				val += lhs.GetNormal(i, k) * rhs.GetNormal(k, j)
			}
			out.SetNormal(i, j, val)
		}
	}
}
