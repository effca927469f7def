// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnmf/matrix"
)

func TestNDArray_AsDense_RankCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		shape   []int
		data    []float64
		wantErr error
	}{
		{"2-D", []int{2, 2}, []float64{1, 2, 3, 4}, nil},
		{"1-D", []int{4}, []float64{1, 2, 3, 4}, matrix.ErrBadShape},
		{"3-D", []int{1, 2, 2}, []float64{1, 2, 3, 4}, matrix.ErrBadShape},
		{"zero axis", []int{0, 3}, []float64{}, matrix.ErrBadShape},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a, err := matrix.NewNDArray(tc.shape, tc.data)
			require.NoError(t, err)
			assert.Equal(t, len(tc.shape), a.NDim())

			m, err := a.AsDense()
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			CompareExact(t, [][]float64{{1, 2}, {3, 4}}, m)
		})
	}
}

func TestNDArray_ConstructorErrors(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewNDArray(nil, nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.NewNDArray([]int{2, -1}, nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.NewNDArray([]int{2, 2}, []float64{1})
	require.ErrorIs(t, err, matrix.ErrBadShape)

	var nilArr *matrix.NDArray
	_, err = nilArr.AsDense()
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestNDArray_ShapeIsCopy(t *testing.T) {
	t.Parallel()
	a, err := matrix.NewNDArrayFloat32([]int{1, 3}, []float32{0.5, 1, 2})
	require.NoError(t, err)
	sh := a.Shape()
	sh[0] = 42
	assert.Equal(t, []int{1, 3}, a.Shape())
	assert.Equal(t, 3, a.Len())

	m, err := a.AsDense()
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0.5, 1, 2}}, m)
}

func TestNDArray_VectorAndFromDense(t *testing.T) {
	t.Parallel()
	v := matrix.Vector([]float64{1, 2, 3})
	assert.Equal(t, 1, v.NDim())

	d := MustFrom(t, 1, 2, 3, 4)
	a, err := matrix.FromDense(d)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, a.Shape())

	_, err = matrix.FromDense(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
