// SPDX-License-Identifier: MIT

package matmul

import (
	"fmt"

	"github.com/katalvlaran/matbench/matrix"
)

// Reference returns the ground-truth product lhs × rhs: both operands are
// materialized into Normal layout (absent cells become zeros) and multiplied
// with the naive algorithm. Inputs are not modified.
//
// Errors:
//   - conversion errors (e.g. matrix.ErrNonSquare), wrapped with "Reference".
func Reference(lhs, rhs *matrix.Matrix) (*matrix.Matrix, error) {
	a, err := matrix.ToNormal(lhs)
	if err != nil {
		return nil, mulErrorf(opReference, fmt.Errorf("lhs: %w", err))
	}
	defer a.Release()

	b, err := matrix.ToNormal(rhs)
	if err != nil {
		return nil, mulErrorf(opReference, fmt.Errorf("rhs: %w", err))
	}
	defer b.Release()

	out, err := matrix.NewNormal(a.Rows(), b.Cols())
	if err != nil {
		return nil, mulErrorf(opReference, err)
	}
	if err = matrix.ValidateMulCompatible(a, b, out); err != nil {
		return nil, mulErrorf(opReference, err)
	}
	Multiply(a, b, out)

	return out, nil
}
