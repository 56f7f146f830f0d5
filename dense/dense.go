// SPDX-License-Identifier: MIT

// Package dense - strided dense storage & safe accessors.
//
// Purpose:
//   - Provide a flat float64 grid with an explicit storage order and the
//     offset formula i*rowStride + j*colStride.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Serve as the caller-side two-dimensional array for csr.FromStrided and
//     csr.ToStrided in both row-major and column-major layouts.
//
// AI-Hints:
//   - Pick the Order that matches how the producer fills the grid; csr reads
//     it in stride order either way.
//   - Zero-sized grids are legal (0×n, n×0) so empty sparse matrices round-trip.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); String: O(r*c).
package dense

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Order selects the storage order of a Dense grid.
type Order int

const (
	// RowMajor stores rows contiguously: strides (cols, 1).
	RowMajor Order = iota
	// ColMajor stores columns contiguously: strides (1, rows).
	ColMajor
)

// String returns "row-major" or "col-major".
func (o Order) String() string {
	switch o {
	case RowMajor:
		return "row-major"
	case ColMajor:
		return "col-major"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keep tags in constants for grep-ability and consistency.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete strided grid.
//   - r,c hold dimensions (rows, cols).
//   - rs,cs are the element strides; offset(i,j) = i*rs + j*cs.
//   - data is a flat buffer of length r*c.
type Dense struct {
	r, c   int       // row and column counts (>= 0)
	rs, cs int       // row and column strides in elements
	order  Order     // storage order that produced rs/cs
	data   []float64 // contiguous storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero grid in the given storage order.
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0 and a known order.
//   - Stage 2: allocate the zero-filled buffer and derive strides.
//
// Errors:
//   - ErrInvalidDimensions (negative shape), ErrUnknownOrder.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, order Order) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	m := &Dense{r: rows, c: cols, order: order, data: make([]float64, rows*cols)}
	switch order {
	case RowMajor:
		m.rs, m.cs = cols, 1
	case ColMajor:
		m.rs, m.cs = 1, rows
	default:
		return nil, fmt.Errorf("NewDense(%v): %w", order, ErrUnknownOrder)
	}

	return m, nil
}

// FromRows copies a rectangular grid given as a sequence of rows.
// Every row must have the same length; values must be finite.
//
// Errors:
//   - ErrDimensionMismatch for ragged rows, ErrNaNInf, ErrUnknownOrder.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows(rows [][]float64, order Order) (*Dense, error) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	m, err := NewDense(len(rows), cols, order)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("FromRows: row %d has %d values, want %d: %w", i, len(row), cols, ErrDimensionMismatch)
		}
		for j, v := range row {
			if err = m.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Strides returns the element strides (row, col).
// Complexity: O(1).
func (m *Dense) Strides() (row, col int) { return m.rs, m.cs }

// Order returns the storage order.
func (m *Dense) Order() Order { return m.order }

// indexOf computes the strided offset or returns ErrOutOfRange.
// Returns a bare sentinel; public methods wrap it with coordinates.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.rs + col*m.cs, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: reject NaN/±Inf.
//   - Stage 3: write into the flat buffer.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for non-finite values.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy with the same shape and order.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, rs: m.rs, cs: m.cs, order: m.order, data: cp}
}

// ToRows copies the grid into a sequence of rows, independent of storage order.
// Complexity: O(r*c).
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := range out {
		out[i] = make([]float64, m.c)
		for j := range out[i] {
			out[i][j] = m.data[i*m.rs+j*m.cs]
		}
	}

	return out
}

// String renders rows as lines with comma-separated values.
// Not for hot paths; intended for logs and debugging.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.rs+j*m.cs])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
