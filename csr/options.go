// SPDX-License-Identifier: MIT

// Package csr: functional configuration for construction.
// This file defines:
//   - Option / Options (functional options with unexported state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option changes what the builder keeps or logs.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Epsilon is a tolerance policy, not an exact-zero test: a merged value v
//     is stored only when |v| > eps. Different producers historically used
//     1e-15, 1e-12, 1e-8 or machine epsilon; pass WithEpsilon explicitly when
//     the data source has its own noise floor.
//   - Row/column bounds act both as filters (coordinates ≥ bound are dropped)
//     and as the declared shape (the result is never smaller than the bound).
package csr

import (
	"math"

	"go.uber.org/zap"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the double-precision machine epsilon (2^-52).
	DefaultEpsilon = 0x1p-52

	// unbounded marks an absent row/column bound.
	unbounded = -1
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "csr: WithEpsilon: eps must be finite, non-negative"
	panicRowCountNeg    = "csr: WithRowCount: count must be non-negative"
	panicColumnCountNeg = "csr: WithColumnCount: count must be non-negative"
)

// Option mutates internal options. Setters are applied in order; the last
// writer wins.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	eps    float64     // >= 0; DefaultEpsilon
	rows   int         // row bound, or unbounded
	cols   int         // column bound, or unbounded
	logger *zap.Logger // never nil after gatherOptions
}

// WithEpsilon sets the magnitude threshold: merged values with |v| <= eps
// are dropped.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// AI-Hints:
//   - WithEpsilon(0) keeps every non-zero value (exact-zero policy).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithRowCount declares the row count. Triples with row >= n are discarded
// and the built matrix has exactly n rows.
func WithRowCount(n int) Option {
	if n < 0 {
		panic(panicRowCountNeg)
	}

	return func(o *Options) { o.rows = n }
}

// WithColumnCount declares the column count. Triples with col >= n are
// discarded and the built matrix has exactly n columns.
func WithColumnCount(n int) Option {
	if n < 0 {
		panic(panicColumnCountNeg)
	}

	return func(o *Options) { o.cols = n }
}

// WithShape is WithRowCount(rows) followed by WithColumnCount(cols).
func WithShape(rows, cols int) Option {
	setRows, setCols := WithRowCount(rows), WithColumnCount(cols)

	return func(o *Options) {
		setRows(o)
		setCols(o)
	}
}

// WithLogger routes build diagnostics (Debug level) to l.
// A nil logger restores the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// gatherOptions resolves defaults and applies user setters in order.
// Complexity: O(len(user)).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:  DefaultEpsilon,
		rows: unbounded,
		cols: unbounded,
	}
	for _, set := range user {
		set(&o) // last-writer-wins
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	return o
}

// rowBounded reports whether a row bound was declared.
func (o Options) rowBounded() bool { return o.rows != unbounded }

// colBounded reports whether a column bound was declared.
func (o Options) colBounded() bool { return o.cols != unbounded }
