// Package matrix stores square float64 matrices under several physical layouts
// behind one logical (row, col) indexing contract.
//
// The matrix package provides:
//
//   - Normal: dense row-major storage, offset i*cols + j.
//   - UpperTriangularPacked: only cells with i <= j, column-major triangular
//     packing at offset j*(j+1)/2 + i.
//   - LowerTriangularPacked: only cells with i >= j, column-major packing of
//     the lower half at offset j*(2n-j+1)/2 + (i-j).
//   - NormalBlocked / UpperTriangularBlocked: the matrix is cut into
//     Size×Size tiles stored contiguously, each tile laid out row-major.
//
// Around the storage engine the package offers a layout converter (Convert),
// a bit-pattern random fill (FillRandom), a truncated-precision verifier
// (Verify) and a raw binary wire format (WriteTo / Decode).
//
// Contract violations (reading a structurally absent cell, converting
// non-square matrices) panic with an error wrapping one of the sentinels in
// errors.go. Bad user input at construction time is reported as a returned
// error instead.
//
// See the examples in this package for usage patterns.
package matrix
