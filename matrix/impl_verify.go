// SPDX-License-Identifier: MIT

// Package matrix - result verification.
package matrix

import (
	"fmt"
	"math"
)

// VerifyDigits is the number of decimal digits compared by Verify.
const VerifyDigits = 6

// verifyScale = 10^VerifyDigits.
var verifyScale = math.Pow10(VerifyDigits)

// Mismatch describes the first cell where Verify found a difference.
type Mismatch struct {
	Row, Col         int
	Expected, Actual float64
}

// Error implements error so a Mismatch can be wrapped by callers.
func (m *Mismatch) Error() string {
	return fmt.Sprintf("matrix: mismatch at (%d,%d): expected %.*f, got %.*f",
		m.Row, m.Col, VerifyDigits, m.Expected, VerifyDigits, m.Actual)
}

// truncate scales v by 10^VerifyDigits and drops the fraction.
// The result is kept as float64 so very large magnitudes cannot overflow an
// integer conversion; for |v*1e6| < 2^53 this equals integer truncation.
func truncate(v float64) float64 { return math.Trunc(v * verifyScale) }

// Verify compares expected and actual over actual's extent, reading both
// through GetOrZero, after truncation to VerifyDigits decimal digits.
// This is exact-after-truncation, not a tolerance comparison.
//
// Returns (true, nil) when all cells match, else (false, first mismatch)
// in i→j order.
func Verify(expected, actual *Matrix) (bool, *Mismatch) {
	var i, j int
	var e, a float64
	for i = 0; i < actual.rows; i++ {
		for j = 0; j < actual.cols; j++ {
			e = expected.GetOrZero(i, j)
			a = actual.GetOrZero(i, j)
			if truncate(e) != truncate(a) {
				return false, &Mismatch{Row: i, Col: j, Expected: e, Actual: a}
			}
		}
	}

	return true, nil
}
