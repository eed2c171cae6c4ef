// SPDX-License-Identifier: MIT

package bench

import (
	"errors"
	"fmt"
)

const (
	// DefaultDimension is the side of the square operands.
	DefaultDimension = 2880
	// DefaultBlockDivisor derives the default tile: Dimension / 16.
	DefaultBlockDivisor = 16
	// DefaultAlgorithm is the algorithm of DefaultParams.
	DefaultAlgorithm = BlockedTriangularDirect
)

// Params configures one run. Fields are used as given: a zero Dimension or
// BlockSize is rejected by Validate. Start from DefaultParams for the stock
// setup.
type Params struct {
	Dimension int
	// BlockSize is the tile side of tiled algorithms and the block size of
	// blocked layouts. See DefaultBlockSize.
	BlockSize int
	Seed      int64
	Algorithm string
	Verify    bool
	// PrintTime asks the caller to report Report.Elapsed.
	PrintTime bool
	// Workers bounds parallel algorithms; 0 means GOMAXPROCS.
	Workers int
	// OutputPath, when set, receives the product in the matrix wire format.
	OutputPath string
}

// DefaultParams returns the stock configuration: 2880×2880, tile 180,
// blocked-triangular-direct, verification and timing on.
func DefaultParams() Params {
	return Params{
		Dimension: DefaultDimension,
		BlockSize: DefaultBlockSize(DefaultDimension),
		Seed:      1,
		Algorithm: DefaultAlgorithm,
		Verify:    true,
		PrintTime: true,
	}
}

// DefaultBlockSize is the stock tile for a dimension: max(1, dim/16).
func DefaultBlockSize(dim int) int {
	return max(1, dim/DefaultBlockDivisor)
}

// Validate reports every invalid field, each wrapping ErrInvalidParam.
func (p Params) Validate() error {
	var errs []error
	if p.Dimension <= 0 {
		errs = append(errs, paramErrorf("dimension", "must be > 0, got %d", p.Dimension))
	}
	if p.BlockSize <= 0 {
		errs = append(errs, paramErrorf("block", "must be > 0, got %d", p.BlockSize))
	}
	if p.Workers < 0 {
		errs = append(errs, paramErrorf("workers", "must be >= 0, got %d", p.Workers))
	}
	algo, err := Lookup(p.Algorithm)
	switch {
	case err != nil:
		errs = append(errs, fmt.Errorf("%w: algorithm: %w", ErrInvalidParam, err))
	case algo.BlockedLayout && p.Dimension > 0 && p.BlockSize > 0 && p.Dimension%p.BlockSize != 0:
		errs = append(errs, paramErrorf("block",
			"%s stores blocked layouts: block %d must divide dimension %d", algo.Name, p.BlockSize, p.Dimension))
	}

	return errors.Join(errs...)
}
