// SPDX-License-Identifier: MIT
// Package csr: sentinel error set.
// Every algorithm returns (possibly wrapped) sentinels from this file; tests
// and callers match them via errors.Is. User-triggered conditions never panic.
// Panics are reserved for nonsensical Option arguments (programmer error).

package csr

import (
	"errors"
	"fmt"
)

// NOTE ON PREFIXING
// -----------------
// Every message starts with "csr: ..." so log lines are easy to grep.
// Call sites attach their operation tag with csrErrorf; the sentinel stays
// reachable through %w.

var (
	// ErrDimensionMismatch is the shape-mismatch failure: an input vector or
	// output buffer whose length disagrees with the matrix dimensions, or a
	// strided target too small to hold the matrix.
	ErrDimensionMismatch = errors.New("csr: dimension mismatch")

	// ErrMalformedKey indicates a textual coordinate key that does not parse
	// into two integers separated by a comma.
	ErrMalformedKey = errors.New("csr: malformed coordinate key")

	// ErrInvalidLayout indicates raw arrays that violate the compressed layout
	// invariants (lengths, sentinels, ordering, touching runs, zero values).
	ErrInvalidLayout = errors.New("csr: invalid layout")

	// ErrEmptyMatrix indicates a conversion that cannot represent a matrix
	// with zero rows or zero columns.
	ErrEmptyMatrix = errors.New("csr: matrix has zero rows or columns")

	// ErrOutOfRange indicates an element index outside the bounds of a
	// strided adapter.
	ErrOutOfRange = errors.New("csr: index out of range")

	// ErrOverlap indicates an output buffer sharing memory with the input
	// vector; Apply would overwrite x before reading it.
	ErrOverlap = errors.New("csr: x and dst share memory")

	// ErrNilSource indicates a nil collaborator (strided array, target).
	ErrNilSource = errors.New("csr: nil source or target")
)

// Operation tags used in error wrappers.
const (
	opApply       = "Apply"
	opFromKeyed   = "FromKeyed"
	opFromStrided = "FromStrided"
	opFromGonum   = "FromGonum"
	opToStrided   = "ToStrided"
	opFromLayout  = "FromLayout"
	opToGonum     = "ToGonum"
	opParseCoord  = "ParseCoord"
)

// csrErrorf attaches an operation tag to err, preserving it for errors.Is.
func csrErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
