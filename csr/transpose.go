// SPDX-License-Identifier: MIT

package csr

// Transpose returns Mᵀ as a new Matrix; m is left untouched.
// Implementation:
//   - Stage 1: expand to triples and swap row/col.
//   - Stage 2: rebuild with swapped shape and eps = 0.
//
// Behavior highlights:
//   - The builder re-sorts and re-detects runs from scratch, so runs follow
//     the transposed row order and need not mirror those of m.
//   - eps = 0 keeps every stored value: all of them already passed the
//     threshold used when m was built.
//   - Transpose(Transpose(m)) is structurally identical to m.
//
// Complexity:
//   - Time O(nnz log nnz), Space O(nnz).
func (m *Matrix) Transpose() *Matrix {
	items := m.ToList()
	for i := range items {
		items[i].Row, items[i].Col = items[i].Col, items[i].Row
	}
	rows, cols := m.Dims()

	return buildFrom(items, gatherOptions(
		WithShape(cols, rows),
		WithEpsilon(0),
		WithLogger(m.logger),
	))
}
