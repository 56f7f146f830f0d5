// SPDX-License-Identifier: MIT
// Package csr - interop with gonum.
//
// Purpose:
//   - *Matrix satisfies mat.Matrix, so gonum kernels read it through At/Dims.
//   - General adapts a blas64.General (row-major, explicit Stride) to the
//     strided reader/writer contracts used by FromStrided/ToStrided.
//
// AI-Hints:
//   - gonum routines call At per element; prefer Apply for M·x on large
//     matrices and use the gonum path for verification or small dense work.

package csr

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

// Compile-time assertions for interface conformance.
var (
	_ mat.Matrix    = (*Matrix)(nil)
	_ StridedReader = General{}
	_ StridedWriter = General{}
)

// T returns the implicit gonum transpose of m. Use Transpose for a compressed Mᵀ.
func (m *Matrix) T() mat.Matrix { return mat.Transpose{Matrix: m} }

// FromGonum builds a Matrix from any gonum matrix.
// Implementation:
//   - Stage 1: mat.RawMatrixer sources go through FromStrided via General.
//   - Stage 2: other sources are read element by element in row-major order.
//
// Errors:
//   - ErrDimensionMismatch when a reports a negative shape.
//
// Complexity: O(r*c) reads.
func FromGonum(a mat.Matrix, opts ...Option) (*Matrix, error) {
	if rm, ok := a.(mat.RawMatrixer); ok {
		return FromStrided(General{General: rm.RawMatrix()}, opts...)
	}

	rows, cols := a.Dims()
	if err := validateShape(rows, cols); err != nil {
		return nil, csrErrorf(opFromGonum, err)
	}
	o := gatherOptions(append([]Option{WithShape(rows, cols)}, opts...)...)
	var items []Triple
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v := a.At(i, j); v != 0 {
				items = append(items, Triple{Row: i, Col: j, Value: v})
			}
		}
	}

	return buildFrom(items, o), nil
}

// ToGonum expands m into a new *mat.Dense.
//
// Errors:
//   - ErrEmptyMatrix when m has zero rows or columns (gonum rejects them).
//
// Complexity: O(r*c) allocation + O(nnz) writes.
func (m *Matrix) ToGonum() (*mat.Dense, error) {
	rows, cols := m.Dims()
	if rows == 0 || cols == 0 {
		return nil, csrErrorf(opToGonum, ErrEmptyMatrix)
	}
	d := mat.NewDense(rows, cols, nil)
	_ = m.each(func(row, col int, v float64) error {
		d.Set(row, col, v)
		return nil
	})

	return d, nil
}

// General adapts blas64.General to StridedReader and StridedWriter.
// Writes go straight into the shared Data slice.
type General struct {
	blas64.General
}

// Shape returns (Rows, Cols).
func (g General) Shape() (rows, cols int) { return g.Rows, g.Cols }

// Strides returns (Stride, 1): blas64.General is always row-major.
func (g General) Strides() (row, col int) { return g.Stride, 1 }

// At reads element (i, j) or returns ErrOutOfRange.
func (g General) At(i, j int) (float64, error) {
	if err := g.check(i, j); err != nil {
		return 0, err
	}

	return g.Data[i*g.Stride+j], nil
}

// Set writes element (i, j) or returns ErrOutOfRange.
func (g General) Set(i, j int, v float64) error {
	if err := g.check(i, j); err != nil {
		return err
	}
	g.Data[i*g.Stride+j] = v

	return nil
}

func (g General) check(i, j int) error {
	if i < 0 || i >= g.Rows || j < 0 || j >= g.Cols {
		return fmt.Errorf("General(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return nil
}
