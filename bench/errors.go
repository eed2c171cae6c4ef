// SPDX-License-Identifier: MIT

package bench

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParam indicates a Params field outside its domain. The
	// wrapping message names the field.
	ErrInvalidParam = errors.New("bench: invalid parameter")

	// ErrUnknownAlgorithm indicates an algorithm name missing from the catalogue.
	// It always travels wrapped together with ErrInvalidParam.
	ErrUnknownAlgorithm = errors.New("bench: unknown algorithm")

	// ErrVerificationFailed indicates the product disagreed with the reference.
	// The wrapped *matrix.Mismatch carries the first differing cell.
	ErrVerificationFailed = errors.New("bench: verification failed")
)

// paramErrorf wraps ErrInvalidParam with the offending field.
func paramErrorf(field, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidParam, field, fmt.Sprintf(format, args...))
}
