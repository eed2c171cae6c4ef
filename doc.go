// Package matbench is a benchmark of dense square matrix multiplication
// across storage layouts and algorithms.
//
// What is matbench?
//
//	A small library plus CLI that multiplies an upper-triangular A by a
//	dense B and times it:
//		• Storage layouts: row-major, packed upper/lower triangular, block-tiled
//		• Layout converter, seeded bit-pattern random fill, 6-digit verifier
//		• Algorithms: naive, row-parallel naive, cache-blocked with layout-pair
//		  kernels, block-task parallel with atomic accumulation, gonum dgemm
//		• Raw binary wire format for persisting products
//
// Packages:
//
//	matrix/         — Matrix type, layouts, conversion, fill, verify, wire format
//	matmul/         — multiplication algorithms and the blocked kernel registry
//	bench/          — one benchmark run: params, catalogue, timing, report
//	cmd/matbench/   — cobra CLI (run, algorithms, sysinfo, version)
//
// Quick ASCII example of the packed upper-triangular layout (n = 3):
//
//	    j=0  j=1  j=2
//	i=0 [0]  [1]  [3]
//	i=1  .   [2]  [4]
//	i=2  .    .   [5]
//
//	cell (i, j), i <= j, lives at offset j*(j+1)/2 + i.
//
//	go install github.com/katalvlaran/matbench/cmd/matbench@latest
//	matbench run --dim 960 --algo parallel-block-task
package matbench
