// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/matbench/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateMulCompatible(t *testing.T) {
	a := mustNew(t, matrix.Normal, 4, 0)
	b := mustNew(t, matrix.UpperTriangularPacked, 4, 0)
	out := mustNew(t, matrix.Normal, 4, 0)
	require.NoError(t, matrix.ValidateMulCompatible(a, b, out))

	small := mustNew(t, matrix.Normal, 3, 0)
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, small, out), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, b, small), matrix.ErrDimensionMismatch)

	rect, err := matrix.NewNormal(4, 2)
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, rect, out), matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.ValidateMulCompatible(nil, b, out), matrix.ErrNilMatrix)
}

func TestValidateTiling(t *testing.T) {
	blocked := mustNew(t, matrix.NormalBlocked, 6, 3)
	require.NoError(t, matrix.ValidateTiling(blocked, 3))
	require.NoError(t, matrix.ValidateTiling(blocked, 2))
	require.ErrorIs(t, matrix.ValidateTiling(blocked, 4), matrix.ErrBlockTiling)
	require.ErrorIs(t, matrix.ValidateTiling(blocked, 0), matrix.ErrInvalidBlockSize)

	dense := mustNew(t, matrix.Normal, 6, 0)
	require.NoError(t, matrix.ValidateTiling(dense, 4), "dense operands tolerate edge tiles")
}
