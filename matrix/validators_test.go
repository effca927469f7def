// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnmf/matrix"
)

func TestValidateNotNil(t *testing.T) {
	t.Parallel()
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(typedNil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(MustDense(t, 1, 1)))
}

func TestValidateShapes(t *testing.T) {
	t.Parallel()
	a := MustDense(t, 2, 3)
	b := MustDense(t, 3, 2)

	require.ErrorIs(t, matrix.ValidateSameShape(a, b), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateBinarySameShape(a, nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateMulCompatible(a, b))
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, a), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateVecLen(nil, 1), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
}

func TestValidateNonNegative(t *testing.T) {
	t.Parallel()
	ok := MustFrom(t, 2, 2, 0, 1, 2, 3)
	require.NoError(t, matrix.ValidateNonNegative(ok))
	require.NoError(t, matrix.ValidateNonNegative(hide{ok}))

	neg := MustFrom(t, 2, 2, 0, 1, -2, 3)
	require.ErrorIs(t, matrix.ValidateNonNegative(neg), matrix.ErrNegative)
	require.ErrorIs(t, matrix.ValidateNonNegative(hide{neg}), matrix.ErrNegative)
	require.ErrorContains(t, matrix.ValidateNonNegative(neg), "(1,0)")

	// Scanning stops at the first offender; within one entry NaN is checked before sign.
	bad, err := matrix.NewDenseFrom(1, 2, []float64{-1, math.NaN()}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateNonNegative(bad), matrix.ErrNegative)
	bad2, err := matrix.NewDenseFrom(1, 2, []float64{math.NaN(), -1}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateNonNegative(bad2), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateFinite(bad2), matrix.ErrNaNInf)
	require.NoError(t, matrix.ValidateFinite(neg))
}
