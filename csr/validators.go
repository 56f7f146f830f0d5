// SPDX-License-Identifier: MIT
// Package: csr
//
// Purpose:
//  - Single source of truth for argument and layout checks.
//  - Return plain sentinels with a short detail; call sites add their op tag.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing beyond error values.
//  - validateLayout is O(rows + runs + nnz).

package csr

import (
	"fmt"
	"math"
	"unsafe"
)

// validateVecLen checks len(v) == n. nil is accepted as the empty vector.
// Complexity: O(1).
func validateVecLen(name string, v []float64, n int) error {
	if len(v) != n {
		return fmt.Errorf("%s: len %d, want %d: %w", name, len(v), n, ErrDimensionMismatch)
	}

	return nil
}

// validateNoOverlap fails when a and b share at least one element of memory.
// Empty slices never overlap.
// Complexity: O(1).
func validateNoOverlap(a, b []float64) error {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	const size = unsafe.Sizeof(float64(0))
	a0 := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	b0 := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	if a0 < b0+uintptr(len(b))*size && b0 < a0+uintptr(len(a))*size {
		return ErrOverlap
	}

	return nil
}

// validateShape checks that a collaborator-reported shape is non-negative.
// Complexity: O(1).
func validateShape(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return fmt.Errorf("shape %dx%d: %w", rows, cols, ErrDimensionMismatch)
	}

	return nil
}

// layoutErrorf formats an ErrInvalidLayout detail.
func layoutErrorf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidLayout)
}

// validateLayout checks every invariant of the compressed layout.
// Implementation:
//   - Stage 1: array lengths and zero-offset heads.
//   - Stage 2: owning rows strictly increasing, below the row sentinel;
//     row pointers strictly increasing, ending at the run count.
//   - Stage 3: run pointers strictly increasing, ending at len(data).
//   - Stage 4: non-negative column count; per row, runs ordered,
//     non-touching and inside the column count.
//   - Stage 5: values non-zero and not NaN.
//
// Complexity:
//   - Time O(rows + runs + nnz), Space O(1).
func validateLayout(l Layout) error {
	// Stage 1: shapes.
	if len(l.Rows) == 0 || len(l.Rows) != len(l.RowPtrs) {
		return layoutErrorf("rows/row_ptrs lengths %d/%d", len(l.Rows), len(l.RowPtrs))
	}
	if len(l.Columns) == 0 || len(l.Columns) != len(l.ColumnPtrs) {
		return layoutErrorf("columns/column_ptrs lengths %d/%d", len(l.Columns), len(l.ColumnPtrs))
	}
	if l.RowPtrs[0] != 0 || l.ColumnPtrs[0] != 0 {
		return layoutErrorf("pointer arrays must start at 0")
	}

	// Stage 2: rows.
	nr := len(l.Rows) - 1
	if l.Rows[0] < 0 {
		return layoutErrorf("rows[0] = %d is negative", l.Rows[0])
	}
	if l.Rows[nr] < 0 {
		return layoutErrorf("row sentinel %d is negative", l.Rows[nr])
	}
	for i := 1; i <= nr; i++ {
		if l.Rows[i-1] >= l.Rows[i] {
			return layoutErrorf("rows not strictly increasing at %d", i)
		}
		if l.RowPtrs[i-1] >= l.RowPtrs[i] {
			return layoutErrorf("row_ptrs not strictly increasing at %d", i)
		}
	}
	runs := len(l.Columns) - 1
	if l.RowPtrs[nr] != runs {
		return layoutErrorf("row_ptrs sentinel %d, want %d runs", l.RowPtrs[nr], runs)
	}

	// Stage 3: run pointers.
	for k := 1; k <= runs; k++ {
		if l.ColumnPtrs[k-1] >= l.ColumnPtrs[k] {
			return layoutErrorf("column_ptrs not strictly increasing at %d", k)
		}
	}
	if l.ColumnPtrs[runs] != len(l.Data) {
		return layoutErrorf("column_ptrs sentinel %d, want %d values", l.ColumnPtrs[runs], len(l.Data))
	}

	// Stage 4: runs per row.
	colCount := l.Columns[runs]
	if colCount < 0 {
		return layoutErrorf("column sentinel %d is negative", colCount)
	}
	for ri := 0; ri < nr; ri++ {
		prevEnd := -1 // one past the previous run of this row
		for k := l.RowPtrs[ri]; k < l.RowPtrs[ri+1]; k++ {
			start := l.Columns[k]
			if start < 0 || start <= prevEnd {
				return layoutErrorf("run %d of row %d starts at %d, touching or overlapping", k, l.Rows[ri], start)
			}
			end := start + l.ColumnPtrs[k+1] - l.ColumnPtrs[k]
			if end > colCount {
				return layoutErrorf("run %d of row %d ends at %d beyond %d columns", k, l.Rows[ri], end, colCount)
			}
			prevEnd = end
		}
	}

	// Stage 5: values.
	for d, v := range l.Data {
		if v == 0 || math.IsNaN(v) {
			return layoutErrorf("data[%d] = %v is not storable", d, v)
		}
	}

	return nil
}
