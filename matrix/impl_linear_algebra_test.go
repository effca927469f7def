// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for universal Matrix (linear algebra) operations.
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvnmf/matrix"
)

const crossTol = 1e-12

// gonumOf copies a Dense into gonum for reference computations.
func gonumOf(tb testing.TB, m *matrix.Dense) *mat.Dense {
	tb.Helper()
	g, err := matrix.ToGonum(m)
	require.NoError(tb, err)

	return g
}

// requireMatchesGonum compares every entry of got against want.
func requireMatchesGonum(tb testing.TB, want mat.Matrix, got matrix.Matrix) {
	tb.Helper()
	r, c := want.Dims()
	require.Equal(tb, r, got.Rows())
	require.Equal(tb, c, got.Cols())
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.InDeltaf(tb, want.At(i, j), MustAt(tb, got, i, j), crossTol, "[%d,%d]", i, j)
		}
	}
}

func TestAddSub_FastAndFallbackAgree(t *testing.T) {
	t.Parallel()
	a := MustDense(t, 4, 5)
	b := MustDense(t, 4, 5)
	RandomFill(t, a, 1)
	RandomFill(t, b, 2)

	for _, tc := range []struct {
		name string
		fn   func(x, y matrix.Matrix) (*matrix.Dense, error)
		ref  func(dst *mat.Dense, x, y mat.Matrix)
	}{
		{"Add", matrix.Add, func(dst *mat.Dense, x, y mat.Matrix) { dst.Add(x, y) }},
		{"Sub", matrix.Sub, func(dst *mat.Dense, x, y mat.Matrix) { dst.Sub(x, y) }},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var want mat.Dense
			tc.ref(&want, gonumOf(t, a), gonumOf(t, b))

			fast, err := tc.fn(a, b)
			require.NoError(t, err)
			slow, err := tc.fn(hide{a}, b)
			require.NoError(t, err)

			requireMatchesGonum(t, &want, fast)
			assert.Equal(t, fast.Data(), slow.Data())
		})
	}

	_, err := matrix.Sub(a, MustDense(t, 5, 4))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Add(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul_MatchesGonum(t *testing.T) {
	t.Parallel()
	for _, dims := range [][3]int{{1, 1, 1}, {2, 3, 4}, {6, 6, 6}, {5, 1, 7}} {
		dims := dims
		t.Run(fmt.Sprintf("%dx%dx%d", dims[0], dims[1], dims[2]), func(t *testing.T) {
			t.Parallel()
			a := MustDense(t, dims[0], dims[1])
			b := MustDense(t, dims[1], dims[2])
			RandomFill(t, a, 7)
			RandomFill(t, b, 8)
			require.NoError(t, a.Set(0, 0, 0)) // exercise the zero-skip branch

			var want mat.Dense
			want.Mul(gonumOf(t, a), gonumOf(t, b))

			fast, err := matrix.Mul(a, b)
			require.NoError(t, err)
			requireMatchesGonum(t, &want, fast)

			slow, err := matrix.Mul(hide{a}, hide{b})
			require.NoError(t, err)
			requireMatchesGonum(t, &want, slow)
		})
	}

	_, err := matrix.Mul(MustDense(t, 2, 3), MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMulTransA_MatchesGonum(t *testing.T) {
	t.Parallel()
	a := MustDense(t, 5, 3) // n × r
	b := MustDense(t, 5, 4) // n × c
	RandomFill(t, a, 11)
	RandomFill(t, b, 12)

	var want mat.Dense
	want.Mul(gonumOf(t, a).T(), gonumOf(t, b))

	fast, err := matrix.MulTransA(a, b)
	require.NoError(t, err)
	requireMatchesGonum(t, &want, fast)

	slow, err := matrix.MulTransA(hide{a}, b)
	require.NoError(t, err)
	requireMatchesGonum(t, &want, slow)

	_, err = matrix.MulTransA(a, MustDense(t, 4, 4))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MulTransA(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMulTransB_MatchesGonum(t *testing.T) {
	t.Parallel()
	a := MustDense(t, 3, 6) // r × n
	b := MustDense(t, 2, 6) // c × n
	RandomFill(t, a, 21)
	RandomFill(t, b, 22)

	var want mat.Dense
	want.Mul(gonumOf(t, a), gonumOf(t, b).T())

	fast, err := matrix.MulTransB(a, b)
	require.NoError(t, err)
	requireMatchesGonum(t, &want, fast)

	slow, err := matrix.MulTransB(a, hide{b})
	require.NoError(t, err)
	requireMatchesGonum(t, &want, slow)

	_, err = matrix.MulTransB(a, MustDense(t, 2, 5))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestTranspose(t *testing.T) {
	t.Parallel()
	m := MustFrom(t, 2, 3, 1, 2, 3, 4, 5, 6)
	want := [][]float64{{1, 4}, {2, 5}, {3, 6}}

	tr, err := matrix.Transpose(m)
	require.NoError(t, err)
	CompareExact(t, want, tr)

	tr2, err := matrix.Transpose(hide{m})
	require.NoError(t, err)
	CompareExact(t, want, tr2)
}

func TestScaleHadamard(t *testing.T) {
	t.Parallel()
	a := MustFrom(t, 2, 2, 1, 2, 3, 4)
	b := MustFrom(t, 2, 2, 2, 0, -1, 0.5)

	s, err := matrix.Scale(a, 0.5)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0.5, 1}, {1.5, 2}}, s)
	s2, err := matrix.Scale(hide{a}, 0.5)
	require.NoError(t, err)
	assert.Equal(t, s.Data(), s2.Data())

	h, err := matrix.Hadamard(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{2, 0}, {-3, 2}}, h)
	h2, err := matrix.Hadamard(hide{a}, b)
	require.NoError(t, err)
	assert.Equal(t, h.Data(), h2.Data())

	_, err = matrix.Hadamard(a, MustDense(t, 1, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestDivGuarded(t *testing.T) {
	t.Parallel()
	a := MustFrom(t, 1, 3, 1, 2, 0)
	b := MustFrom(t, 1, 3, 1, 4, 0)

	q, err := matrix.DivGuarded(a, b, 0.5)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1 / 1.5, 2 / 4.5, 0}}, q)

	q2, err := matrix.DivGuarded(hide{a}, hide{b}, 0.5)
	require.NoError(t, err)
	assert.Equal(t, q.Data(), q2.Data())

	// a zero denominator stays finite once eps > 0
	q3, err := matrix.DivGuarded(MustFrom(t, 1, 1, 3), MustFrom(t, 1, 1, 0), 1e-16)
	require.NoError(t, err)
	assert.False(t, math.IsInf(q3.Data()[0], 0))

	_, err = matrix.DivGuarded(a, b, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.DivGuarded(a, b, math.NaN())
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.DivGuarded(a, MustDense(t, 3, 1), 1)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.DivGuarded(nil, b, 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestFrobeniusNorm(t *testing.T) {
	t.Parallel()
	m := MustFrom(t, 2, 2, 1, 2, 2, 4)
	got, err := matrix.FrobeniusNorm(m)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, got, 1e-15)

	got2, err := matrix.FrobeniusNorm(hide{m})
	require.NoError(t, err)
	assert.Equal(t, got, got2)
	assert.InDelta(t, mat.Norm(gonumOf(t, m), 2), got, 1e-12)

	_, err = matrix.FrobeniusNorm(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	assert.False(t, math.IsNaN(got))
}

func TestKernels_DoNotMutateOperands(t *testing.T) {
	t.Parallel()
	a := MustFrom(t, 2, 2, 1, 2, 3, 4)
	before := append([]float64(nil), a.Data()...)

	_, err := matrix.Mul(a, a)
	require.NoError(t, err)
	_, err = matrix.MulTransA(a, a)
	require.NoError(t, err)
	_, err = matrix.MulTransB(a, a)
	require.NoError(t, err)
	_, err = matrix.Hadamard(a, a)
	require.NoError(t, err)

	assert.Equal(t, before, a.Data())
}
