// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared by the storage, converter,
//     verifier and wire tests.
//   • Keep values exactly representable so comparisons can be bitwise.

package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/matbench/matrix"
	"github.com/stretchr/testify/require"
)

// allLayouts enumerates every layout; blocked ones need a block size.
var allLayouts = []matrix.Layout{
	matrix.Normal,
	matrix.UpperTriangularPacked,
	matrix.NormalBlocked,
	matrix.UpperTriangularBlocked,
	matrix.LowerTriangularPacked,
}

// mustNew allocates an n×n matrix in layout (block size bs for blocked layouts)
// or fails the test.
func mustNew(t testing.TB, layout matrix.Layout, n, bs int) *matrix.Matrix {
	t.Helper()
	var opts []matrix.Option
	if layout.Blocked() {
		opts = append(opts, matrix.WithBlockSize(bs))
	}
	m, err := matrix.New(layout, n, opts...)
	require.NoError(t, err)

	return m
}

// cellValue is a deterministic, exactly representable value for (i,j).
func cellValue(i, j int) float64 { return float64(i*100+j) + 0.5 }

// requirePanicIs runs fn and asserts it panics with an error matching target.
func requirePanicIs(t testing.TB, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected panic wrapping %v", target)
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.True(t, errors.Is(err, target), "panic %v does not wrap %v", err, target)
	}()
	fn()
}
