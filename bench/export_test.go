// SPDX-License-Identifier: MIT

package bench

import (
	"testing"

	"github.com/katalvlaran/matbench/matrix"
)

// InstallCorruptingAlgorithm adds a catalogue entry whose product is off by
// one in cell (row, col), removing it when t finishes.
func InstallCorruptingAlgorithm(t testing.TB, name string, row, col int) {
	t.Helper()
	saved := catalogue
	catalogue = append(append([]Algorithm(nil), catalogue...), Algorithm{
		Name: name,
		prepare: func(a, b *matrix.Matrix, _ Params) (kernel, func(), error) {
			return func(out *matrix.Matrix) {
				ad, err := matrix.ToNormal(a)
				if err != nil {
					panic(err)
				}
				defer ad.Release()
				for i := 0; i < out.Rows(); i++ {
					for j := 0; j < out.Cols(); j++ {
						var v float64
						for k := 0; k < ad.Cols(); k++ {
							v += ad.GetNormal(i, k) * b.GetNormal(k, j)
						}
						out.SetNormal(i, j, v)
					}
				}
				out.SetNormal(row, col, out.GetNormal(row, col)+1)
			}, func() {}, nil
		},
	})
	t.Cleanup(func() { catalogue = saved })
}
