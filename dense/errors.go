// SPDX-License-Identifier: MIT
// Package dense: sentinel error set.
// Public accessors return these (wrapped with method and coordinates) and
// never panic on user input; match them with errors.Is.

package dense

import "errors"

var (
	// ErrInvalidDimensions indicates negative requested dimensions.
	ErrInvalidDimensions = errors.New("dense: dimensions must be >= 0")

	// ErrOutOfRange indicates a row or column index outside the grid.
	ErrOutOfRange = errors.New("dense: index out of range")

	// ErrDimensionMismatch indicates ragged input rows.
	ErrDimensionMismatch = errors.New("dense: dimension mismatch")

	// ErrNaNInf indicates a NaN or ±Inf write; the grid stores finite values only.
	ErrNaNInf = errors.New("dense: NaN or Inf encountered")

	// ErrUnknownOrder indicates an Order value other than RowMajor/ColMajor.
	ErrUnknownOrder = errors.New("dense: unknown storage order")
)
