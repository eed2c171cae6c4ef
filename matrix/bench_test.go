// Package matrix_test provides benchmarks for layout accessors,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/matbench/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{128, 256}

// sinks to defeat dead-code elimination
var (
	sinkF float64
	sinkM *matrix.Matrix
)

func BenchmarkGetByLayout(b *testing.B) {
	for _, n := range benchSizes {
		for _, layout := range allLayouts {
			b.Run(fmt.Sprintf("%s/n=%d", layout, n), func(b *testing.B) {
				m := mustNew(b, layout, n, n/8)
				matrix.FillRandom(m, rand.New(rand.NewSource(1337)))
				b.ResetTimer()
				for it := 0; it < b.N; it++ {
					var s float64
					for i := 0; i < n; i++ {
						for j := 0; j < n; j++ {
							s += m.GetOrZero(i, j)
						}
					}
					sinkF = s
				}
			})
		}
	}
}

func BenchmarkGetNormalHotPath(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := mustNew(b, matrix.Normal, n, 0)
			matrix.FillRandom(m, rand.New(rand.NewSource(4242)))
			b.ResetTimer()
			for it := 0; it < b.N; it++ {
				var s float64
				for i := 0; i < n; i++ {
					for j := 0; j < n; j++ {
						s += m.GetNormal(i, j)
					}
				}
				sinkF = s
			}
		})
	}
}

func BenchmarkConvertToBlocked(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			src := mustNew(b, matrix.Normal, n, 0)
			matrix.FillRandom(src, rand.New(rand.NewSource(11)))
			b.ResetTimer()
			for it := 0; it < b.N; it++ {
				m, err := matrix.ConvertTo(src, matrix.NormalBlocked, matrix.WithBlockSize(n/16))
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}
