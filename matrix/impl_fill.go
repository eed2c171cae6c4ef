// SPDX-License-Identifier: MIT

// Package matrix - value generators.
package matrix

import (
	"math"
	"math/rand"
)

// RandomBound is the magnitude bound of values produced by FillRandom.
const RandomBound = 10.0

// FillRandom assigns a random value to every structurally valid cell, visiting
// rows then columns. Each value is 64 raw random bits reinterpreted as a
// float64 (non-finite patterns are redrawn), then halved until |v| <= 10.
//
// The caller owns seeding: pass rand.New(rand.NewSource(seed)) for
// reproducible runs.
//
// Complexity: O(n²) draws; each halving loop is bounded by the exponent range.
func FillRandom(m *Matrix, rng *rand.Rand) {
	Fill(m, func(_, _ int) float64 { return RandomDouble(rng) })
}

// RandomDouble draws one bounded, finite float64 with full bit-level diversity.
func RandomDouble(rng *rand.Rand) float64 {
	var v float64
	for {
		v = math.Float64frombits(rng.Uint64())
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			break
		}
	}
	for v > RandomBound || v < -RandomBound {
		v /= 2
	}

	return v
}

// Fill assigns f(i,j) to every structurally valid cell in i→j order.
// Invalid cells are never passed to f.
func Fill(m *Matrix, f func(i, j int) float64) {
	var i, j int
	for i = 0; i < m.rows; i++ {
		for j = 0; j < m.cols; j++ {
			if m.ValidIndex(i, j) {
				m.Set(i, j, f(i, j))
			}
		}
	}
}

// FromRows builds a Normal matrix from a rectangular [][]float64 literal.
// Returns ErrInvalidDimensions for empty input and ErrDimensionMismatch for ragged rows.
func FromRows(rows [][]float64, opts ...Option) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	m, err := NewNormal(len(rows), len(rows[0]), opts...)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != m.cols {
			return nil, validatorErrorf("FromRows", ErrDimensionMismatch)
		}
		for j, v := range row {
			m.Set(i, j, v)
		}
	}

	return m, nil
}
