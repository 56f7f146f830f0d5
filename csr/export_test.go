// SPDX-License-Identifier: MIT

package csr

// Test-Bridge (white-box) for private helpers.
//
// Purpose:
//   - Expose unexported validators and panic messages to csr_test only.
//   - Compiled exclusively with `go test`; invisible in production builds.

var (
	// ExportedValidateLayout exposes validateLayout.
	ExportedValidateLayout = validateLayout
	// ExportedValidateVecLen exposes validateVecLen.
	ExportedValidateVecLen = validateVecLen
	// ExportedValidateShape exposes validateShape.
	ExportedValidateShape = validateShape
	// ExportedValidateNoOverlap exposes validateNoOverlap.
	ExportedValidateNoOverlap = validateNoOverlap
)

// Panic message exports to avoid magic strings in tests.
const (
	PanicEpsilonInvalid_TestOnly = panicEpsilonInvalid
	PanicRowCountNeg_TestOnly    = panicRowCountNeg
	PanicColumnCountNeg_TestOnly = panicColumnCountNeg
)

// NormalizeWithStats_TestOnly runs normalize and returns its counters as
// (in, outOfRange, merged, nearZero).
func NormalizeWithStats_TestOnly(items []Triple, opts ...Option) ([]Triple, [4]int) {
	out, st := normalize(items, gatherOptions(opts...))

	return out, [4]int{st.in, st.outOfRange, st.merged, st.nearZero}
}
