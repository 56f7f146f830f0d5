// SPDX-License-Identifier: MIT

// Package csr implements an immutable, doubly run-length compressed sparse
// matrix of float64 values.
//
// What & Why:
//
//	Rows that own no stored entry are omitted entirely, and inside a row only
//	the first column of every run of consecutive stored entries is recorded.
//	Matrices whose non-zeros cluster along rows (banded systems, stencils,
//	sliding windows) therefore pay one index per run instead of one per value.
//
// Layout (five arrays, each index array ends with a sentinel):
//
//	rows        - row indices that own at least one value, then rowCount
//	rowPtrs     - offset into columns where each row's runs begin, then #runs
//	columns     - first column of every run, then columnCount
//	columnPtrs  - offset into data where each run begins, then len(data)
//	data        - stored values, run after run
//
// Example (3×6):
//
//	[1 1 0 0 2 2]        rows       = [0 2 3]
//	[0 0 0 0 0 0]   =>   rowPtrs    = [0 2 3]
//	[0 0 5 0 0 0]        columns    = [0 4 2 6]
//	                     columnPtrs = [0 2 4 5]
//	                     data       = [1 1 2 2 5]
//
// Construction funnels every input shape (triples, coordinate maps, dense
// grids, strided arrays, gonum matrices) through Normalize and a single-pass
// builder. After that a *Matrix is read-only and safe for concurrent readers;
// Apply writes only into the caller's output buffer.
//
// Complexity:
//
//	Build:     O(n log n) for n input triples (sort) + O(n) scan.
//	Apply:     O(rowCount + runs + nnz).
//	Transpose: O(nnz log nnz).
//	At:        O(log rows + log runs-in-row).
package csr
