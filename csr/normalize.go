// SPDX-License-Identifier: MIT
// Package csr - normalization of raw coordinate triples.
//
// Purpose:
//   - Turn an arbitrary triple sequence (unsorted, duplicated, out of range,
//     near-zero) into the sorted, duplicate-free, bounded input the builder
//     expects.
//
// Policy & Contracts:
//   - Negative coordinates and coordinates ≥ a declared bound are dropped.
//   - Equal coordinates are merged by summing values; the sum is judged
//     against eps only after merging, so +v and -v cancel out.
//   - NaN sums are dropped (|NaN| > eps is false).
//
// Determinism:
//   - slices.SortFunc on a total (row, col) order; merge order among equal
//     coordinates does not affect the sum beyond floating-point rounding.

package csr

import (
	"math"
	"slices"
)

// normStats counts what normalization removed, for diagnostics.
type normStats struct {
	in         int // triples received
	outOfRange int // dropped by bounds or negative indices
	merged     int // triples folded into an earlier equal coordinate
	nearZero   int // merged sums with |v| <= eps
}

// Normalize sorts, merges and filters items according to opts
// (WithRowCount, WithColumnCount, WithEpsilon) and returns the compacted
// prefix of items.
//
// Implementation:
//   - Stage 1: in-place filter of out-of-range coordinates.
//   - Stage 2: lexicographic sort by (row, col).
//   - Stage 3: single pass merging runs of equal coordinates; keep sums with |v| > eps.
//
// Behavior highlights:
//   - Works in place: items is reordered and overwritten. Callers that need
//     their slice intact pass a copy (FromList does).
//
// Complexity:
//   - Time O(n log n), Space O(1) beyond the sort.
func Normalize(items []Triple, opts ...Option) []Triple {
	o := gatherOptions(opts...)
	out, _ := normalize(items, o)

	return out
}

// normalize is the option-resolved core of Normalize.
func normalize(items []Triple, o Options) ([]Triple, normStats) {
	st := normStats{in: len(items)}

	// Stage 1: bounds filter.
	kept := items[:0]
	for _, it := range items {
		if it.Row < 0 || it.Col < 0 ||
			(o.rowBounded() && it.Row >= o.rows) ||
			(o.colBounded() && it.Col >= o.cols) {
			st.outOfRange++
			continue
		}
		kept = append(kept, it)
	}

	// Stage 2: (row, col) order.
	slices.SortFunc(kept, compareTriples)

	// Stage 3: merge duplicates, drop near-zero sums.
	w := 0
	for i := 0; i < len(kept); {
		cur := kept[i]
		i++
		for i < len(kept) && kept[i].Row == cur.Row && kept[i].Col == cur.Col {
			cur.Value += kept[i].Value
			st.merged++
			i++
		}
		if math.Abs(cur.Value) > o.eps {
			kept[w] = cur
			w++
		} else {
			st.nearZero++
		}
	}

	return kept[:w], st
}
