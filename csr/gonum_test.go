// SPDX-License-Identifier: MIT
// Package csr_test contains gonum interop tests.
package csr_test

import (
	"testing"

	"github.com/katalvlaran/runcsr/csr"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// TestGonum_MulVecMatchesApply uses gonum's generic kernel as the reference.
func TestGonum_MulVecMatchesApply(t *testing.T) {
	for name, m := range fixtures() {
		r, c := m.Dims()
		if r == 0 || c == 0 {
			continue // gonum rejects zero-length vectors
		}
		t.Run(name, func(t *testing.T) {
			x := make([]float64, c)
			for j := range x {
				x[j] = float64(j%5) - 2
			}

			var y mat.VecDense
			y.MulVec(m, mat.NewVecDense(c, x))

			got, err := m.Apply(x, nil)
			require.NoError(t, err)
			require.True(t, floats.EqualApprox(y.RawVector().Data, got, 1e-12))
		})
	}
}

// TestGonum_RoundTrip checks ToGonum/FromGonum and the implicit transpose.
func TestGonum_RoundTrip(t *testing.T) {
	for name, m := range fixtures() {
		r, c := m.Dims()
		if r == 0 || c == 0 {
			continue
		}
		t.Run(name, func(t *testing.T) {
			d, err := m.ToGonum()
			require.NoError(t, err)
			require.True(t, mat.Equal(d, m))

			for _, tc := range []struct {
				want *csr.Matrix
				src  mat.Matrix
			}{
				{m, d},
				{m.Transpose(), m.T()},
				{m.Transpose(), d.T()},
			} {
				got, err := csr.FromGonum(tc.src)
				require.NoError(t, err)
				requireSame(t, tc.want, got)
			}
		})
	}
}

// TestFromGonum_StridedView reads a sub-matrix whose stride exceeds its width.
func TestFromGonum_StridedView(t *testing.T) {
	d := mat.NewDense(3, 4, []float64{
		1, 2, 0, 0,
		0, 0, 3, 4,
		5, 0, 0, 6,
	})
	view := d.Slice(1, 3, 1, 4) // 2×3, stride 4

	got, err := csr.FromGonum(view)
	require.NoError(t, err)
	want := csr.FromDense([][]float64{
		{0, 3, 4},
		{0, 0, 6},
	})
	requireSame(t, want, got)
}

// TestToGonum_Empty checks that shapes gonum cannot hold are reported.
func TestToGonum_Empty(t *testing.T) {
	for _, m := range []*csr.Matrix{
		csr.FromList(nil),
		csr.FromList(nil, csr.WithShape(3, 0)),
		csr.FromList(nil, csr.WithShape(0, 3)),
	} {
		d, err := m.ToGonum()
		require.ErrorIs(t, err, csr.ErrEmptyMatrix)
		require.Nil(t, d)
	}
}

// TestGeneral_Adapter checks bounds, strides and shared storage of the adapter.
func TestGeneral_Adapter(t *testing.T) {
	g := csr.General{General: blas64.General{Rows: 2, Cols: 2, Stride: 3, Data: make([]float64, 6)}}

	rs, cs := g.Strides()
	require.Equal(t, 3, rs)
	require.Equal(t, 1, cs)

	require.NoError(t, g.Set(1, 1, 5))
	require.Equal(t, 5.0, g.Data[4])
	v, err := g.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 5.0, v)

	_, err = g.At(2, 0)
	require.ErrorIs(t, err, csr.ErrOutOfRange)
	require.ErrorIs(t, g.Set(0, 2, 1), csr.ErrOutOfRange)
	require.ErrorIs(t, g.Set(-1, 0, 1), csr.ErrOutOfRange)

	// ToStrided into a padded row-major buffer.
	m := csr.FromDense([][]float64{{0, 7}, {8, 0}})
	require.NoError(t, m.ToStrided(g))
	require.Equal(t, []float64{0, 7, 0, 8, 5, 0}, g.Data) // (1,1) keeps its old value
}

// negativeDims is a gonum matrix reporting an impossible shape.
type negativeDims struct{}

func (negativeDims) Dims() (int, int)    { return 2, -3 }
func (negativeDims) At(_, _ int) float64 { return 0 }
func (n negativeDims) T() mat.Matrix     { return mat.Transpose{Matrix: n} }

// TestFromGonum_NegativeShape checks that a broken source is reported, not panicked on.
func TestFromGonum_NegativeShape(t *testing.T) {
	require.NotPanics(t, func() {
		m, err := csr.FromGonum(negativeDims{})
		require.ErrorIs(t, err, csr.ErrDimensionMismatch)
		require.Nil(t, m)
	})

	// A raw blas64 view with a negative row count takes the strided path.
	g := csr.General{General: blas64.General{Rows: -1, Cols: 2, Stride: 2}}
	m, err := csr.FromStrided(g)
	require.ErrorIs(t, err, csr.ErrDimensionMismatch)
	require.Nil(t, m)
}
