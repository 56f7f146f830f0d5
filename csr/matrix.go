// SPDX-License-Identifier: MIT

// Package csr - the immutable Matrix value and its read accessors.
//
// Purpose:
//   - Hold the five compressed arrays privately; no method mutates them.
//   - Provide O(1) shape queries and a logarithmic random-access At.
//   - Provide the row → run → value walker every expander is built on.
//
// AI-Hints:
//   - Use Layout() when the raw arrays are needed; it returns copies.
//   - Equal compares structure, not just values: two matrices holding the same
//     entries always compare equal because the builder is canonical.

package csr

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Matrix is a doubly run-length compressed sparse matrix.
// The zero value is not usable; build one with FromList and friends.
type Matrix struct {
	rows       []int     // owning rows + sentinel rowCount
	rowPtrs    []int     // offset into columns per row + sentinel #runs
	columns    []int     // run start columns + sentinel columnCount
	columnPtrs []int     // offset into data per run + sentinel len(data)
	data       []float64 // values, run after run
	logger     *zap.Logger
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// RowCount returns the declared number of rows.
// Complexity: O(1).
func (m *Matrix) RowCount() int { return m.rows[len(m.rows)-1] }

// ColumnCount returns the declared number of columns.
// Complexity: O(1).
func (m *Matrix) ColumnCount() int { return m.columns[len(m.columns)-1] }

// Dims returns (RowCount, ColumnCount). It also satisfies gonum's mat.Matrix.
func (m *Matrix) Dims() (r, c int) { return m.RowCount(), m.ColumnCount() }

// NNZ returns the number of stored values.
func (m *Matrix) NNZ() int { return len(m.data) }

// RunCount returns the number of runs over all rows.
func (m *Matrix) RunCount() int { return len(m.columns) - 1 }

// At returns the value at (i, j), or 0 when nothing is stored there,
// including any out-of-range coordinate.
// Implementation:
//   - Stage 1: binary search i among the owning rows.
//   - Stage 2: binary search the last run of that row starting at or before j.
//   - Stage 3: check j falls inside the run.
//
// Complexity:
//   - Time O(log rows + log runs), Space O(1).
func (m *Matrix) At(i, j int) float64 {
	owned := m.rows[:len(m.rows)-1]
	ri, ok := slices.BinarySearch(owned, i)
	if !ok {
		return 0
	}
	lo, hi := m.rowPtrs[ri], m.rowPtrs[ri+1]
	// First run of the row starting strictly after j, then step back one.
	k := lo + sort.SearchInts(m.columns[lo:hi], j+1) - 1
	if k < lo {
		return 0
	}
	off := j - m.columns[k]
	if off >= m.columnPtrs[k+1]-m.columnPtrs[k] {
		return 0
	}

	return m.data[m.columnPtrs[k]+off]
}

// each calls fn for every stored entry in row-major, ascending-column order.
// It is the single traversal shared by all expanders; fn returning an error
// stops the walk and the error is returned unchanged.
// Complexity: O(rows + runs + nnz).
func (m *Matrix) each(fn func(row, col int, v float64) error) error {
	for ri := 0; ri < len(m.rows)-1; ri++ {
		row := m.rows[ri]
		for k := m.rowPtrs[ri]; k < m.rowPtrs[ri+1]; k++ {
			col := m.columns[k]
			for d := m.columnPtrs[k]; d < m.columnPtrs[k+1]; d++ {
				if err := fn(row, col, m.data[d]); err != nil {
					return err
				}
				col++
			}
		}
	}

	return nil
}

// Equal reports whether a and b have identical layouts, array by array.
// Because construction is canonical this is also value equality.
// Complexity: O(rows + runs + nnz).
func Equal(a, b *Matrix) bool {
	if a == nil || b == nil {
		return a == b
	}

	return slices.Equal(a.rows, b.rows) &&
		slices.Equal(a.rowPtrs, b.rowPtrs) &&
		slices.Equal(a.columns, b.columns) &&
		slices.Equal(a.columnPtrs, b.columnPtrs) &&
		slices.Equal(a.data, b.data)
}

// String renders a compact diagnostic dump: shape followed by one line per
// run, "row: [col0..colN] v0 v1 ...". Not intended for hot paths.
func (m *Matrix) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "csr %dx%d nnz=%d runs=%d\n", m.RowCount(), m.ColumnCount(), m.NNZ(), m.RunCount())
	for ri := 0; ri < len(m.rows)-1; ri++ {
		for k := m.rowPtrs[ri]; k < m.rowPtrs[ri+1]; k++ {
			d0, d1 := m.columnPtrs[k], m.columnPtrs[k+1]
			fmt.Fprintf(&sb, "%d: [%d..%d]", m.rows[ri], m.columns[k], m.columns[k]+d1-d0-1)
			for _, v := range m.data[d0:d1] {
				fmt.Fprintf(&sb, " %g", v)
			}
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
