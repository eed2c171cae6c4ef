// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/katalvlaran/matbench/matmul"
	"github.com/katalvlaran/matbench/matrix"
)

// Algorithm selectors.
const (
	NaiveNormal                      = "naive-normal"
	NaiveParallel                    = "naive-parallel"
	BlockedTriangularDirect          = "blocked-triangular-direct"
	BlockedTriangularPrematerialized = "blocked-triangular-prematerialized"
	BlockedTiled                     = "blocked-tiled"
	ParallelBlockTask                = "parallel-block-task"
	GonumDgemm                       = "gonum-dgemm"
)

// kernel writes A×B into a zeroed Normal out.
type kernel func(out *matrix.Matrix)

// prepareFunc turns the raw operands (A upper packed, B Normal) into the
// operands an algorithm multiplies. It is not timed. The returned release
// frees any intermediate matrices.
type prepareFunc func(a, b *matrix.Matrix, p Params) (run kernel, release func(), err error)

// Algorithm is one entry of the catalogue.
type Algorithm struct {
	Name        string
	Description string
	// Tiled algorithms take Params.BlockSize as their tile side.
	Tiled bool
	// BlockedLayout algorithms store operands in blocked layouts, so the
	// block size must divide the dimension.
	BlockedLayout bool
	// Parallel algorithms honour Params.Workers.
	Parallel bool

	prepare prepareFunc
}

var catalogue = []Algorithm{
	{
		Name:        NaiveNormal,
		Description: "A densified to Normal, naive i-j-k triple loop",
		prepare: func(a, b *matrix.Matrix, _ Params) (kernel, func(), error) {
			ad, err := matrix.ToNormal(a)
			if err != nil {
				return nil, nil, err
			}
			return func(out *matrix.Matrix) { matmul.Multiply(ad, b, out) }, ad.Release, nil
		},
	},
	{
		Name:        NaiveParallel,
		Description: "naive loop with output rows split across a worker pool",
		Parallel:    true,
		prepare: func(a, b *matrix.Matrix, p Params) (kernel, func(), error) {
			ad, err := matrix.ToNormal(a)
			if err != nil {
				return nil, nil, err
			}
			return func(out *matrix.Matrix) { matmul.MultiplyParallel(ad, b, out, p.Workers) }, ad.Release, nil
		},
	},
	{
		Name:        BlockedTriangularDirect,
		Description: "packed upper-triangular A × Normal B, tiled, skipping k < i",
		Tiled:       true,
		prepare: func(a, b *matrix.Matrix, p Params) (kernel, func(), error) {
			return func(out *matrix.Matrix) { matmul.MultiplyBlocked(a, b, out, p.BlockSize) }, func() {}, nil
		},
	},
	{
		Name:        BlockedTriangularPrematerialized,
		Description: "A densified to Normal first, then the Normal × Normal tiled kernel",
		Tiled:       true,
		prepare: func(a, b *matrix.Matrix, p Params) (kernel, func(), error) {
			ad, err := matrix.ToNormal(a)
			if err != nil {
				return nil, nil, err
			}
			return func(out *matrix.Matrix) { matmul.MultiplyBlocked(ad, b, out, p.BlockSize) }, ad.Release, nil
		},
	},
	{
		Name:          BlockedTiled,
		Description:   "A as UpperTriangularBlocked, B as NormalBlocked, generic tiled path",
		Tiled:         true,
		BlockedLayout: true,
		prepare: func(a, b *matrix.Matrix, p Params) (kernel, func(), error) {
			at, err := matrix.ConvertTo(a, matrix.UpperTriangularBlocked, matrix.WithBlockSize(p.BlockSize))
			if err != nil {
				return nil, nil, err
			}
			bt, err := matrix.ConvertTo(b, matrix.NormalBlocked, matrix.WithBlockSize(p.BlockSize))
			if err != nil {
				at.Release()
				return nil, nil, err
			}
			release := func() {
				at.Release()
				bt.Release()
			}
			return func(out *matrix.Matrix) { matmul.MultiplyBlocked(at, bt, out, p.BlockSize) }, release, nil
		},
	},
	{
		Name:        ParallelBlockTask,
		Description: "one task per tile triple, atomic accumulation into the output",
		Tiled:       true,
		Parallel:    true,
		prepare: func(a, b *matrix.Matrix, p Params) (kernel, func(), error) {
			return func(out *matrix.Matrix) {
				matmul.MultiplyBlockedParallel(a, b, out, p.BlockSize, p.Workers)
			}, func() {}, nil
		},
	},
	{
		Name:        GonumDgemm,
		Description: "A densified to Normal, gonum dgemm",
		prepare: func(a, b *matrix.Matrix, _ Params) (kernel, func(), error) {
			ad, err := matrix.ToNormal(a)
			if err != nil {
				return nil, nil, err
			}
			return func(out *matrix.Matrix) { matmul.MultiplyGonum(ad, b, out) }, ad.Release, nil
		},
	},
}

// Algorithms returns a copy of the catalogue in presentation order.
func Algorithms() []Algorithm {
	return append([]Algorithm(nil), catalogue...)
}

// Names lists the algorithm selectors.
func Names() []string {
	return lo.Map(catalogue, func(a Algorithm, _ int) string { return a.Name })
}

// Lookup finds an algorithm by selector.
func Lookup(name string) (Algorithm, error) {
	a, ok := lo.Find(catalogue, func(a Algorithm) bool { return a.Name == name })
	if !ok {
		return Algorithm{}, fmt.Errorf("%w %q (known: %v)", ErrUnknownAlgorithm, name, Names())
	}

	return a, nil
}
