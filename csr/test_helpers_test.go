// SPDX-License-Identifier: MIT
// Package csr_test contains shared fixtures and invariant checks.
//
// Purpose:
//   • Provide small deterministic fixtures plus seeded random matrices.
//   • Check the layout invariants exactly as every constructor must honor them.

package csr_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/runcsr/csr"
	"github.com/stretchr/testify/require"
)

// scenarioDict is the 6×4 reference matrix used across tests:
//
//	row 0: col 1 = 1
//	row 2: col 0 = 1
//	row 5: col 3 = 2
var scenarioDict = map[csr.Coord]float64{
	{Row: 0, Col: 1}: 1,
	{Row: 2, Col: 0}: 1,
	{Row: 5, Col: 3}: 2.0,
}

// scenario builds the reference matrix with declared shape 6×4.
func scenario() *csr.Matrix {
	return csr.FromDictionary(scenarioDict, csr.WithShape(6, 4))
}

// randomTriples GENERATES n triples inside rows×cols, biased toward runs:
// every triple starts a run of 1..4 consecutive columns, some coordinates
// repeat, and values are small non-zero integers so sums stay exact.
func randomTriples(rnd *rand.Rand, rows, cols, n int) []csr.Triple {
	var out []csr.Triple
	for len(out) < n {
		r, c := rnd.Intn(rows), rnd.Intn(cols)
		length := 1 + rnd.Intn(4)
		for k := 0; k < length && c+k < cols; k++ {
			v := float64(1 + rnd.Intn(9))
			if rnd.Intn(2) == 0 {
				v = -v
			}
			out = append(out, csr.Triple{Row: r, Col: c + k, Value: v})
		}
	}
	rnd.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })

	return out
}

// fixtures RETURNS the deterministic matrix set shared by round-trip tests.
func fixtures() map[string]*csr.Matrix {
	rnd := rand.New(rand.NewSource(1))
	out := map[string]*csr.Matrix{
		"scenario":  scenario(),
		"empty":     csr.FromList(nil),
		"row":       csr.FromDense([][]float64{{1, 2, 3, 4, 5, 6, 7, 8}}),
		"column":    csr.FromDense([][]float64{{1}, {2}, {3}, {4}, {5}, {6}, {7}, {8}}),
		"runs":      csr.FromDense([][]float64{{1, 1, 0, 0, 2, 2, 0, 0, 3, 3}}),
		"full3":     csr.FromDense([][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}),
		"trailing0": csr.FromList([]csr.Triple{{Row: 1, Col: 1, Value: 4}}, csr.WithShape(5, 7)),
		"noRows":    csr.FromList(nil, csr.WithShape(0, 5)),
		"noCols":    csr.FromList(nil, csr.WithShape(5, 0)),
	}
	for _, sz := range []struct{ r, c, n int }{{10, 10, 20}, {17, 40, 60}, {64, 8, 100}} {
		out[fmt.Sprintf("random%dx%d", sz.r, sz.c)] = csr.FromList(randomTriples(rnd, sz.r, sz.c, sz.n), csr.WithShape(sz.r, sz.c))
	}

	return out
}

// requireInvariants CHECKS every layout invariant of m.
// Mirrors the structural contract: lengths, sentinels, strict monotonicity,
// run pointers, and agreement of At with the expanded grid.
func requireInvariants(t *testing.T, m *csr.Matrix) {
	t.Helper()
	l := m.Layout()

	// Paired arrays, zero heads, sentinels.
	require.Len(t, l.RowPtrs, len(l.Rows))
	require.Len(t, l.ColumnPtrs, len(l.Columns))
	require.Equal(t, 0, l.RowPtrs[0])
	require.Equal(t, 0, l.ColumnPtrs[0])
	require.Equal(t, m.RowCount(), l.Rows[len(l.Rows)-1])
	require.Equal(t, m.ColumnCount(), l.Columns[len(l.Columns)-1])
	require.Equal(t, m.NNZ(), l.ColumnPtrs[len(l.ColumnPtrs)-1])
	for i := 1; i < len(l.Rows); i++ {
		require.Less(t, l.Rows[i-1], l.Rows[i])
		require.Less(t, l.RowPtrs[i-1], l.RowPtrs[i])
	}
	for k := 1; k < len(l.Columns); k++ {
		require.Less(t, l.ColumnPtrs[k-1], l.ColumnPtrs[k])
	}
	require.NoError(t, csr.ExportedValidateLayout(l))

	grid := m.ToDense()
	for i := range grid {
		for j := range grid[i] {
			require.Equal(t, grid[i][j], m.At(i, j), "At(%d,%d)", i, j)
		}
	}
	require.Zero(t, m.At(-1, 0))
	require.Zero(t, m.At(0, -1))
	require.Zero(t, m.At(m.RowCount(), 0))
	require.Zero(t, m.At(0, m.ColumnCount()))
}

// requireSame asserts structural identity with a readable diff on failure.
func requireSame(t *testing.T, want, got *csr.Matrix) {
	t.Helper()
	if !csr.Equal(want, got) {
		require.Equal(t, want.Layout(), got.Layout()) // prints the diverging arrays
		t.Fatalf("Equal reported a difference but layouts match")
	}
}
