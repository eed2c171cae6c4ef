// SPDX-License-Identifier: MIT
package matmul_test

import (
	"fmt"
	"runtime"
	"sync"
	"testing"

	"github.com/katalvlaran/matbench/matmul"
	"github.com/katalvlaran/matbench/matrix"
	"github.com/stretchr/testify/require"
)

// TestMultiplyKnownProduct checks a hand-computed 2×2 product.
func TestMultiplyKnownProduct(t *testing.T) {
	a, err := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	b, err := matrix.FromRows([][]float64{{5, 6}, {7, 8}})
	require.NoError(t, err)
	out := mustNormal(t, 2)
	out.Set(0, 0, 1000) // overwritten, not accumulated

	matmul.Multiply(a, b, out)
	require.Equal(t, []float64{19, 22, 43, 50}, out.RawData())
}

// TestTriangularTimesIdentity is the N=4 scenario: A upper-triangular,
// B identity, every algorithm yields A densely.
func TestTriangularTimesIdentity(t *testing.T) {
	rows := [][]float64{
		{1, 2, 3, 4},
		{0, 5, 6, 7},
		{0, 0, 8, 9},
		{0, 0, 0, 10},
	}
	dense, err := matrix.FromRows(rows)
	require.NoError(t, err)
	a, err := matrix.ConvertTo(dense, matrix.UpperTriangularPacked)
	require.NoError(t, err)
	id := mustNormal(t, 4)
	for i := 0; i < 4; i++ {
		id.Set(i, i, 1)
	}

	expected := mustReference(t, a, id)
	require.Equal(t, dense.RawData(), expected.RawData())

	runs := map[string]func(out *matrix.Matrix){
		"naive":           func(out *matrix.Matrix) { matmul.Multiply(dense, id, out) },
		"naive-parallel":  func(out *matrix.Matrix) { matmul.MultiplyParallel(dense, id, out, 3) },
		"blocked-direct":  func(out *matrix.Matrix) { matmul.MultiplyBlocked(a, id, out, 2) },
		"blocked-dense":   func(out *matrix.Matrix) { matmul.MultiplyBlocked(dense, id, out, 3) },
		"parallel-blocks": func(out *matrix.Matrix) { matmul.MultiplyBlockedParallel(a, id, out, 1, 4) },
		"gonum":           func(out *matrix.Matrix) { matmul.MultiplyGonum(dense, id, out) },
	}
	for name, run := range runs {
		t.Run(name, func(t *testing.T) {
			out := mustNormal(t, 4)
			run(out)
			requireVerified(t, expected, out)
		})
	}
}

// TestMultiplyParallelReusesPool: the row pool outlives a call and is shared
// by concurrent callers with the same worker count.
func TestMultiplyParallelReusesPool(t *testing.T) {
	p := matmul.SharedPool(5)
	require.Same(t, p, matmul.SharedPool(5))
	require.Equal(t, 5, p.NumWorkers())
	require.NotSame(t, p, matmul.SharedPool(6))
	require.Equal(t, runtime.GOMAXPROCS(0), matmul.SharedPool(0).NumWorkers())

	const n = 12
	a, b := upperNormalPair(t, n, 0, true)
	ad := mustConvert(t, a, matrix.Normal, 0)
	want := mustReference(t, a, b)

	var wg sync.WaitGroup
	outs := make([]*matrix.Matrix, 8)
	for i := range outs {
		outs[i] = mustNormal(t, n)
		wg.Add(1)
		go func(out *matrix.Matrix) {
			defer wg.Done()
			matmul.MultiplyParallel(ad, b, out, 5)
		}(outs[i])
	}
	wg.Wait()
	for _, out := range outs {
		require.Equal(t, want.RawData(), out.RawData())
	}
	require.Same(t, p, matmul.SharedPool(5))
}

// TestMultiplyParallelIsBitIdentical: rows are disjoint, so no reordering.
func TestMultiplyParallelIsBitIdentical(t *testing.T) {
	for _, n := range []int{1, 3, 16, 33} {
		for _, workers := range []int{0, 1, 4, 64} {
			t.Run(fmt.Sprintf("n=%d/w=%d", n, workers), func(t *testing.T) {
				a, b := upperNormalPair(t, n, int64(n), false)
				ad := mustConvert(t, a, matrix.Normal, 0)
				want := mustNormal(t, n)
				got := mustNormal(t, n)
				matmul.Multiply(ad, b, want)
				matmul.MultiplyParallel(ad, b, got, workers)
				require.Equal(t, want.RawData(), got.RawData())
			})
		}
	}
}

// TestMultiplyGonumAgrees cross-checks the naive loop with gonum's dgemm on
// exact values.
func TestMultiplyGonumAgrees(t *testing.T) {
	a, b := upperNormalPair(t, 24, 0, true)
	ad := mustConvert(t, a, matrix.Normal, 0)
	want := mustNormal(t, 24)
	got := mustNormal(t, 24)
	matmul.Multiply(ad, b, want)
	matmul.MultiplyGonum(ad, b, got)
	require.Equal(t, want.RawData(), got.RawData())
}

// TestNaivePreconditions: wrong shapes and layouts are fatal.
func TestNaivePreconditions(t *testing.T) {
	a := mustNormal(t, 3)
	b := mustNormal(t, 3)
	small := mustNormal(t, 2)
	up, err := matrix.NewUpperTriangular(3)
	require.NoError(t, err)
	rect, err := matrix.NewNormal(3, 2)
	require.NoError(t, err)

	requirePanicIs(t, matrix.ErrDimensionMismatch, func() { matmul.Multiply(a, b, small) })
	requirePanicIs(t, matrix.ErrNonSquare, func() { matmul.Multiply(a, rect, a) })
	requirePanicIs(t, matmul.ErrUnsupportedLayout, func() { matmul.Multiply(up, b, mustNormal(t, 3)) })
	requirePanicIs(t, matmul.ErrUnsupportedLayout, func() { matmul.MultiplyParallel(a, up, mustNormal(t, 3), 2) })
	requirePanicIs(t, matmul.ErrUnsupportedLayout, func() { matmul.MultiplyGonum(a, b, up) })
}

// TestReferenceRejectsNonSquare returns an error instead of panicking.
func TestReferenceRejectsNonSquare(t *testing.T) {
	rect, err := matrix.NewNormal(2, 3)
	require.NoError(t, err)
	_, err = matmul.Reference(rect, mustNormal(t, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}
