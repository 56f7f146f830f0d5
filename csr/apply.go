// SPDX-License-Identifier: MIT
// Package csr - sparse matrix–vector product over the compressed layout.
//
// Purpose:
//   - Compute dst = M·x without expanding M.
//
// Determinism & Policy:
//   - Rows are visited in ascending order; runs left to right.
//   - Rows that own no entry (gaps and the trailing tail) are written as 0,
//     so dst is fully initialized even when the caller passes a dirty buffer.
//
// AI-Hints:
//   - Reuse dst across calls to avoid allocation in iterative solvers.

package csr

import "gonum.org/v1/gonum/floats"

// Apply computes dst = M·x and returns dst.
// Implementation:
//   - Stage 1: validate len(x) == ColumnCount and len(dst) == RowCount
//     (dst == nil allocates a fresh buffer); dst must not overlap x.
//   - Stage 2: for each owning row, zero-fill skipped rows, then accumulate
//     floats.Dot over every run's value span and matching slice of x.
//   - Stage 3: zero-fill rows after the last owning row.
//
// Inputs:
//   - x  : dense vector of length ColumnCount.
//   - dst: output of length RowCount, or nil.
//
// Returns:
//   - []float64: dst (or the allocated buffer).
//   - error    : ErrDimensionMismatch on either length violation, ErrOverlap
//     when x and dst share memory; nothing is written.
//
// Complexity:
//   - Time O(rows + runs + nnz), Space O(1) beyond dst.
func (m *Matrix) Apply(x, dst []float64) ([]float64, error) {
	rowCount, colCount := m.Dims()
	if err := validateVecLen("x", x, colCount); err != nil {
		return nil, csrErrorf(opApply, err)
	}
	if dst == nil {
		dst = make([]float64, rowCount)
	} else if err := validateVecLen("dst", dst, rowCount); err != nil {
		return nil, csrErrorf(opApply, err)
	} else if err = validateNoOverlap(x, dst); err != nil {
		return nil, csrErrorf(opApply, err)
	}

	next := 0 // first output row not yet written
	for ri := 0; ri < len(m.rows)-1; ri++ {
		row := m.rows[ri]
		clear(dst[next:row])

		var s float64
		for k := m.rowPtrs[ri]; k < m.rowPtrs[ri+1]; k++ {
			d0, d1 := m.columnPtrs[k], m.columnPtrs[k+1]
			c0 := m.columns[k]
			s += floats.Dot(m.data[d0:d1], x[c0:c0+d1-d0])
		}
		dst[row] = s
		next = row + 1
	}
	clear(dst[next:])

	return dst, nil
}
