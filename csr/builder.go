// SPDX-License-Identifier: MIT
// Package csr - canonical builder for the compressed layout.
//
// Purpose:
//   - Single place where the five arrays are produced. Every constructor
//     (FromList, FromDictionary, FromKeyed, FromDense, FromStrided,
//     FromGonum, Transpose) ends here after Normalize.
//
// Policy & Contracts:
//   - New row entry whenever the row index changes.
//   - New run whenever the row changes or the column is not previous+1.
//   - Sentinels are always appended, also for an empty matrix.
//   - Shape = max(declared bound, data extent); 0 when neither exists.
//
// AI-Hints:
//   - The builder trusts its input: call it only with normalize output.

package csr

import "go.uber.org/zap"

// FromList builds a Matrix from coordinate triples.
// Implementation:
//   - Stage 1: copy items (the caller's slice keeps its order).
//   - Stage 2: Normalize (bounds, sort, merge, eps).
//   - Stage 3: single-pass compression.
//
// Inputs:
//   - items: triples in any order; duplicates are summed.
//   - opts : WithRowCount/WithColumnCount/WithShape, WithEpsilon, WithLogger.
//
// Returns:
//   - *Matrix: never nil; an empty input yields a 0×0 matrix unless bounds were declared.
//
// Complexity:
//   - Time O(n log n), Space O(n).
func FromList(items []Triple, opts ...Option) *Matrix {
	o := gatherOptions(opts...)
	owned := make([]Triple, len(items))
	copy(owned, items)

	return buildFrom(owned, o)
}

// buildFrom normalizes owned (which it may reorder freely) and compresses it.
func buildFrom(owned []Triple, o Options) *Matrix {
	sorted, st := normalize(owned, o)
	m := compress(sorted, o)

	o.logger.Debug("csr: matrix built",
		zap.Int("rows", m.RowCount()),
		zap.Int("cols", m.ColumnCount()),
		zap.Int("nnz", m.NNZ()),
		zap.Int("runs", m.RunCount()),
		zap.Int("input", st.in),
		zap.Int("merged", st.merged),
		zap.Int("out_of_range", st.outOfRange),
		zap.Int("near_zero", st.nearZero),
		zap.Float64("eps", o.eps),
	)

	return m
}

// compress emits the five-array layout from normalized triples.
// Implementation:
//   - Stage 1: resolve the shape from bounds and the data extent.
//   - Stage 2: scan once, opening rows and runs at boundaries.
//   - Stage 3: append the four sentinels.
//
// Complexity:
//   - Time O(n), Space O(n).
func compress(items []Triple, o Options) *Matrix {
	rowCount, colCount := 0, 0
	if o.rowBounded() {
		rowCount = o.rows
	}
	if o.colBounded() {
		colCount = o.cols
	}

	m := &Matrix{
		rows:       make([]int, 0, 1),
		rowPtrs:    make([]int, 0, 1),
		columns:    make([]int, 0, 1),
		columnPtrs: make([]int, 0, 1),
		data:       make([]float64, 0, len(items)),
		logger:     o.logger,
	}

	for i, it := range items {
		newRow := i == 0 || it.Row != items[i-1].Row
		if newRow {
			m.rows = append(m.rows, it.Row)
			m.rowPtrs = append(m.rowPtrs, len(m.columns))
		}
		if newRow || it.Col != items[i-1].Col+1 {
			m.columns = append(m.columns, it.Col)
			m.columnPtrs = append(m.columnPtrs, len(m.data))
		}
		m.data = append(m.data, it.Value)

		if it.Row+1 > rowCount {
			rowCount = it.Row + 1
		}
		if it.Col+1 > colCount {
			colCount = it.Col + 1
		}
	}

	// Sentinels.
	m.rows = append(m.rows, rowCount)
	m.rowPtrs = append(m.rowPtrs, len(m.columns))
	m.columns = append(m.columns, colCount)
	m.columnPtrs = append(m.columnPtrs, len(m.data))

	return m
}
