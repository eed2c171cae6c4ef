// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private offsets and the options snapshot
//
// Purpose:
//   - Expose the unexported storage offset so tests can pin each layout's
//     formula without going through RawData ordering tricks.
//   - Expose a read-only view of the resolved Options.
//
// Build Policy:
//   - _test.go file in package matrix: visible to matrix_test, absent from
//     production builds.

var (
	// ExportedOffset exposes (*Matrix).offset.
	ExportedOffset = (*Matrix).offset

	// PanicBlockSizeInvalid is the WithBlockSize panic message.
	PanicBlockSizeInvalid = panicBlockSizeInvalid
)

// OptionsSnapshot is a stable, test-facing copy of internal Options fields.
type OptionsSnapshot struct {
	BlockSize      int
	ValidateNaNInf bool
}

// GatherOptionsSnapshot_TestOnly resolves opts over the defaults and
// returns the snapshot.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{
		BlockSize:      o.blockSize,
		ValidateNaNInf: o.validateNaNInf,
	}
}
