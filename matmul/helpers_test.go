// SPDX-License-Identifier: MIT
// Package matmul_test contains shared fixtures for the algorithm tests.
//
// Purpose:
//   • Build operand pairs in every layout the algorithms accept.
//   • Offer an exact-arithmetic fill so order-dependent accumulation
//     (parallel atomic adds) compares bitwise.

package matmul_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/matbench/matmul"
	"github.com/katalvlaran/matbench/matrix"
	"github.com/stretchr/testify/require"
)

// smallInt is a small signed integer per cell; products and sums of these
// stay exact in float64 for every size used in tests.
func smallInt(i, j int) float64 { return float64((i*7+j*3)%11 - 5) }

// upperNormalPair returns A (UpperTriangularPacked) and B (Normal), n×n.
// exact selects smallInt values; otherwise the bit-pattern random fill.
func upperNormalPair(t testing.TB, n int, seed int64, exact bool) (a, b *matrix.Matrix) {
	t.Helper()
	var err error
	a, err = matrix.NewUpperTriangular(n)
	require.NoError(t, err)
	b, err = matrix.NewNormal(n, n)
	require.NoError(t, err)
	if exact {
		matrix.Fill(a, smallInt)
		matrix.Fill(b, func(i, j int) float64 { return smallInt(j, i) })
	} else {
		rng := rand.New(rand.NewSource(seed))
		matrix.FillRandom(a, rng)
		matrix.FillRandom(b, rng)
	}

	return a, b
}

// mustNormal allocates an n×n zero Normal matrix.
func mustNormal(t testing.TB, n int) *matrix.Matrix {
	t.Helper()
	m, err := matrix.NewNormal(n, n)
	require.NoError(t, err)

	return m
}

// mustConvert converts src into layout (block size bs when blocked).
func mustConvert(t testing.TB, src *matrix.Matrix, layout matrix.Layout, bs int) *matrix.Matrix {
	t.Helper()
	var opts []matrix.Option
	if layout.Blocked() {
		opts = append(opts, matrix.WithBlockSize(bs))
	}
	m, err := matrix.ConvertTo(src, layout, opts...)
	require.NoError(t, err)

	return m
}

// mustReference computes the ground truth for a and b.
func mustReference(t testing.TB, a, b *matrix.Matrix) *matrix.Matrix {
	t.Helper()
	ref, err := matmul.Reference(a, b)
	require.NoError(t, err)

	return ref
}

// requireVerified asserts got matches want under matrix.Verify.
func requireVerified(t testing.TB, want, got *matrix.Matrix) {
	t.Helper()
	ok, mm := matrix.Verify(want, got)
	require.True(t, ok, "%v", mm)
}

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
