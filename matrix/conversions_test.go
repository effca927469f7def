// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvnmf/matrix"
)

func TestGonumRoundTrip(t *testing.T) {
	t.Parallel()
	m := MustFrom(t, 2, 3, 1, 2, 3, 4, 5, 6)

	g, err := matrix.ToGonum(m)
	require.NoError(t, err)
	r, c := g.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)

	g.Set(0, 0, 100) // the copy is independent
	assert.Equal(t, 1.0, MustAt(t, m, 0, 0))

	back, err := matrix.FromGonum(g.T())
	require.NoError(t, err)
	CompareExact(t, [][]float64{{100, 4}, {2, 5}, {3, 6}}, back)

	slow, err := matrix.ToGonum(hide{m})
	require.NoError(t, err)
	assert.True(t, mat.Equal(slow, mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})))
}

func TestFromGonum_Errors(t *testing.T) {
	t.Parallel()
	_, err := matrix.FromGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.FromGonum(mat.NewDense(1, 1, []float64{math.NaN()}))
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.ToGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
