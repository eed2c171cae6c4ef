// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for matrix construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation in Set.
	DefaultValidateNaNInf = true

	// DefaultBlockSize means "no block size chosen"; blocked layouts then
	// fail with ErrInvalidBlockSize.
	DefaultBlockSize = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicBlockSizeInvalid = "matrix: WithBlockSize: size must be > 0"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	blockSize      int  // tile side for blocked layouts; DefaultBlockSize
	validateNaNInf bool // DefaultValidateNaNInf
}

// WithBlockSize sets the tile side used by NormalBlocked / UpperTriangularBlocked.
// Panics on size <= 0 (programmer error). Ignored by non-blocked layouts.
func WithBlockSize(size int) Option {
	if size <= 0 {
		panic(panicBlockSizeInvalid)
	}

	return func(o *Options) { o.blockSize = size }
}

// WithValidateNaNInf enables strict finite-value validation in Set (default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation on the new matrix.
// Kernels write through the hot-path accessors which never validate; this
// flag only affects Set.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// gatherOptions resolves opts over the documented defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		blockSize:      DefaultBlockSize,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
