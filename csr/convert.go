// SPDX-License-Identifier: MIT
// Package csr - inbound conversions and the strided collaborator contracts.
//
// Purpose:
//   - Turn maps, dense grids and strided arrays into triples and hand them to
//     the canonical builder. No constructor compresses on its own.
//
// Policy & Contracts:
//   - Shapes implied by the source (grid size, strided Shape) are applied
//     first; user options come afterwards and therefore win.
//   - The strided source is read only through its interface; the core never
//     assumes a memory layout, it only picks a loop order from Strides.

package csr

import (
	"fmt"
	"maps"
	"slices"
)

// StridedReader is a two-dimensional numeric array with an explicit stride
// layout. Strides are in elements: the offset of (i, j) is i*row + j*col.
type StridedReader interface {
	Shape() (rows, cols int)
	Strides() (row, col int)
	At(i, j int) (float64, error)
}

// StridedWriter is a two-dimensional numeric array accepting element writes.
type StridedWriter interface {
	Shape() (rows, cols int)
	Set(i, j int, v float64) error
}

// FromDictionary builds a Matrix from a dictionary of keys.
// Complexity: O(n log n).
func FromDictionary(dict map[Coord]float64, opts ...Option) *Matrix {
	o := gatherOptions(opts...)
	items := make([]Triple, 0, len(dict))
	for c, v := range dict {
		items = append(items, Triple{Row: c.Row, Col: c.Col, Value: v})
	}

	return buildFrom(items, o)
}

// FromKeyed builds a Matrix from the legacy textual encoding "row,col" → value.
// Keys are parsed in sorted order so the reported malformed key is stable.
//
// Errors:
//   - ErrMalformedKey for the first key that does not parse.
//
// Complexity: O(n log n).
func FromKeyed(dict map[string]float64, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)
	items := make([]Triple, 0, len(dict))
	for _, k := range slices.Sorted(maps.Keys(dict)) {
		c, err := ParseCoord(k)
		if err != nil {
			return nil, csrErrorf(opFromKeyed, err)
		}
		items = append(items, Triple{Row: c.Row, Col: c.Col, Value: dict[k]})
	}

	return buildFrom(items, o), nil
}

// FromDense builds a Matrix from a grid given as a sequence of rows.
// The declared shape is len(grid) × (longest row); ragged rows are read as
// zero-padded. A grid without rows carries no column count, so a 0×N matrix
// comes back as 0×0 unless WithColumnCount(N) is passed.
// Complexity: O(r*c).
func FromDense(grid [][]float64, opts ...Option) *Matrix {
	cols := 0
	for _, r := range grid {
		cols = max(cols, len(r))
	}
	o := gatherOptions(append([]Option{WithShape(len(grid), cols)}, opts...)...)

	var items []Triple
	for i, r := range grid {
		for j, v := range r {
			if v != 0 {
				items = append(items, Triple{Row: i, Col: j, Value: v})
			}
		}
	}

	return buildFrom(items, o)
}

// FromStrided builds a Matrix from a strided array.
// Implementation:
//   - Stage 1: declare src.Shape() as the shape (user options may override).
//   - Stage 2: choose the loop whose inner index has the smaller |stride|
//     (row-major when the column stride is smaller or equal).
//   - Stage 3: collect non-zero elements and build.
//
// Errors:
//   - ErrNilSource when src is nil.
//   - ErrDimensionMismatch when src reports a negative shape.
//   - Errors from src.At, wrapped with the failing coordinate.
//
// Complexity: O(r*c) reads.
func FromStrided(src StridedReader, opts ...Option) (*Matrix, error) {
	if src == nil {
		return nil, csrErrorf(opFromStrided, ErrNilSource)
	}
	rows, cols := src.Shape()
	if err := validateShape(rows, cols); err != nil {
		return nil, csrErrorf(opFromStrided, err)
	}
	o := gatherOptions(append([]Option{WithShape(rows, cols)}, opts...)...)

	var items []Triple
	visit := func(i, j int) error {
		v, err := src.At(i, j)
		if err != nil {
			return csrErrorf(opFromStrided, fmt.Errorf("At(%d,%d): %w", i, j, err))
		}
		if v != 0 {
			items = append(items, Triple{Row: i, Col: j, Value: v})
		}
		return nil
	}

	rs, cs := src.Strides()
	if absInt(cs) <= absInt(rs) {
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				if err := visit(i, j); err != nil {
					return nil, err
				}
			}
		}
	} else {
		for j := 0; j < cols; j++ {
			for i := 0; i < rows; i++ {
				if err := visit(i, j); err != nil {
					return nil, err
				}
			}
		}
	}

	return buildFrom(items, o), nil
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
