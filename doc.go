// Package runcsr is a small numeric library around one data structure: a
// sparse matrix compressed twice, once over rows (empty rows cost nothing)
// and once over columns (each run of consecutive stored entries costs one
// index).
//
// 🚀 What is inside?
//
//	• csr/   : the immutable Matrix: builder, Apply (M·x), Transpose,
//	           expanders and every inbound/outbound conversion
//	• dense/ : a strided row-major / column-major grid used as the
//	           caller-side array for strided conversions
//
// ✨ Why runcsr?
//
//   - Canonical construction: equal entries always give identical arrays
//   - Safe reads: a built Matrix is never mutated, share it across goroutines
//   - gonum-friendly: *csr.Matrix is a mat.Matrix; gonum grids convert both ways
//   - YAML in and out: the five arrays are the wire format, validated on load
//
// Quick example:
//
//	[1 1 0 0 2 2]
//	[0 0 0 0 0 0]   =>  2 owned rows, 3 runs, 5 values
//	[0 0 5 0 0 0]
//
// Runnable demos live under examples/.
//
//	go get github.com/katalvlaran/runcsr/csr
package runcsr
