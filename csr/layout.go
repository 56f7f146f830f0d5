// SPDX-License-Identifier: MIT
// Package csr - raw layout exchange and YAML encoding.
//
// Purpose:
//   - The five arrays are the whole wire format of a Matrix. Layout exposes
//     them as a plain value for serialization; FromLayout accepts them back
//     only after validating every invariant.
//
// AI-Hints:
//   - Flow-style sequences keep YAML documents compact and diff-friendly.

package csr

import (
	"slices"

	"gopkg.in/yaml.v3"
)

// Layout is a detached copy of the compressed arrays.
type Layout struct {
	Rows       []int     `yaml:"rows,flow"`
	RowPtrs    []int     `yaml:"row_ptrs,flow"`
	Columns    []int     `yaml:"columns,flow"`
	ColumnPtrs []int     `yaml:"column_ptrs,flow"`
	Data       []float64 `yaml:"data,flow"`
}

// Compile-time assertions for YAML conformance.
var (
	_ yaml.Marshaler   = (*Matrix)(nil)
	_ yaml.Unmarshaler = (*Matrix)(nil)
)

// Layout returns deep copies of the five arrays.
// Complexity: O(rows + runs + nnz).
func (m *Matrix) Layout() Layout {
	return Layout{
		Rows:       slices.Clone(m.rows),
		RowPtrs:    slices.Clone(m.rowPtrs),
		Columns:    slices.Clone(m.columns),
		ColumnPtrs: slices.Clone(m.columnPtrs),
		Data:       slices.Clone(m.data),
	}
}

// FromLayout validates l and wraps copies of its arrays into a Matrix.
//
// Errors:
//   - ErrInvalidLayout with the first violated invariant.
//
// Complexity: O(rows + runs + nnz).
func FromLayout(l Layout, opts ...Option) (*Matrix, error) {
	if err := validateLayout(l); err != nil {
		return nil, csrErrorf(opFromLayout, err)
	}
	o := gatherOptions(opts...)

	return &Matrix{
		rows:       slices.Clone(l.Rows),
		rowPtrs:    slices.Clone(l.RowPtrs),
		columns:    slices.Clone(l.Columns),
		columnPtrs: slices.Clone(l.ColumnPtrs),
		data:       slices.Clone(l.Data),
		logger:     o.logger,
	}, nil
}

// MarshalYAML encodes the matrix as its Layout.
func (m *Matrix) MarshalYAML() (interface{}, error) {
	return m.Layout(), nil
}

// UnmarshalYAML decodes a Layout and validates it. On error m is unchanged.
func (m *Matrix) UnmarshalYAML(node *yaml.Node) error {
	var l Layout
	if err := node.Decode(&l); err != nil {
		return err
	}
	built, err := FromLayout(l)
	if err != nil {
		return err
	}
	*m = *built

	return nil
}
