// SPDX-License-Identifier: MIT

package matmul

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/matbench/matrix"
)

// ErrUnsupportedLayout is raised when an algorithm without a generic fallback
// receives a layout it has no kernel for.
var ErrUnsupportedLayout = errors.New("matmul: unsupported layout")

// Operation name constants for unified error wrapping.
const (
	opMultiply         = "Multiply"
	opMultiplyParallel = "MultiplyParallel"
	opBlocked          = "MultiplyBlocked"
	opBlockedParallel  = "MultiplyBlockedParallel"
	opGonum            = "MultiplyGonum"
	opReference        = "Reference"
	opRegister         = "RegisterBlockedKernel"
)

// mulErrorf wraps err with an operation tag, preserving it for errors.Is.
func mulErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// mustMulCompatible panics unless out = lhs × rhs is a valid square product.
func mustMulCompatible(tag string, lhs, rhs, out *matrix.Matrix) {
	if err := matrix.ValidateMulCompatible(lhs, rhs, out); err != nil {
		panic(mulErrorf(tag, err))
	}
}

// mustTiling panics unless tile is positive and evenly tiles every blocked operand.
func mustTiling(tag string, tile int, ms ...*matrix.Matrix) {
	for _, m := range ms {
		if err := matrix.ValidateTiling(m, tile); err != nil {
			panic(mulErrorf(tag, err))
		}
	}
}

// mustLayout panics unless m has the wanted layout.
func mustLayout(tag, role string, m *matrix.Matrix, want matrix.Layout) {
	if m.Layout() != want {
		panic(fmt.Errorf("%s: %s is %s, want %s: %w", tag, role, m.Layout(), want, ErrUnsupportedLayout))
	}
}
