// SPDX-License-Identifier: MIT
// Package csr - outbound conversions (the expander).
//
// All conversions share Matrix.each, so they agree on order (row-major,
// ascending column) and on content: exactly the stored entries.
// ToList is the exact inverse of FromList under the same shape.

package csr

import "fmt"

// ToList expands the matrix into coordinate triples.
// Complexity: O(rows + runs + nnz).
func (m *Matrix) ToList() []Triple {
	out := make([]Triple, 0, m.NNZ())
	_ = m.each(func(row, col int, v float64) error {
		out = append(out, Triple{Row: row, Col: col, Value: v})
		return nil
	})

	return out
}

// ToDictionary expands the matrix into a dictionary of keys.
func (m *Matrix) ToDictionary() map[Coord]float64 {
	out := make(map[Coord]float64, m.NNZ())
	_ = m.each(func(row, col int, v float64) error {
		out[Coord{Row: row, Col: col}] = v
		return nil
	})

	return out
}

// ToKeyed expands the matrix into the legacy "row,col" → value encoding.
func (m *Matrix) ToKeyed() map[string]float64 {
	out := make(map[string]float64, m.NNZ())
	_ = m.each(func(row, col int, v float64) error {
		out[Coord{Row: row, Col: col}.String()] = v
		return nil
	})

	return out
}

// ToDense expands the matrix into a zero-initialized RowCount × ColumnCount grid.
// Complexity: O(r*c) allocation + O(nnz) writes.
func (m *Matrix) ToDense() [][]float64 {
	rows, cols := m.Dims()
	backing := make([]float64, rows*cols)
	out := make([][]float64, rows)
	for i := range out {
		out[i] = backing[i*cols : (i+1)*cols : (i+1)*cols]
	}
	_ = m.each(func(row, col int, v float64) error {
		out[row][col] = v
		return nil
	})

	return out
}

// ToStrided writes every stored entry into dst through dst.Set.
// Only stored entries are written; dst is expected to start zeroed.
//
// Errors:
//   - ErrNilSource when dst is nil.
//   - ErrDimensionMismatch when dst is smaller than the matrix.
//   - Errors from dst.Set, wrapped with the failing coordinate.
//
// Complexity: O(rows + runs + nnz) Set calls.
func (m *Matrix) ToStrided(dst StridedWriter) error {
	if dst == nil {
		return csrErrorf(opToStrided, ErrNilSource)
	}
	rows, cols := dst.Shape()
	if rows < m.RowCount() || cols < m.ColumnCount() {
		return csrErrorf(opToStrided, fmt.Errorf("target %dx%d, want at least %dx%d: %w",
			rows, cols, m.RowCount(), m.ColumnCount(), ErrDimensionMismatch))
	}

	return m.each(func(row, col int, v float64) error {
		if err := dst.Set(row, col, v); err != nil {
			return csrErrorf(opToStrided, fmt.Errorf("Set(%d,%d): %w", row, col, err))
		}
		return nil
	})
}
