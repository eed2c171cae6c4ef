// SPDX-License-Identifier: MIT

package matmul

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/matbench/matrix"
)

// MultiplyGonum overwrites out with lhs × rhs using gonum's dgemm.
// All three matrices must be Normal; gonum views share their buffers, so no
// copies are made. out must not alias lhs or rhs.
func MultiplyGonum(lhs, rhs, out *matrix.Matrix) {
	mustNaive(opGonum, lhs, rhs, out)

	a := mat.NewDense(lhs.Rows(), lhs.Cols(), lhs.RawData())
	b := mat.NewDense(rhs.Rows(), rhs.Cols(), rhs.RawData())
	c := mat.NewDense(out.Rows(), out.Cols(), out.RawData())
	c.Mul(a, b)
}
