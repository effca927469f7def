// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnmf/matrix"
)

func TestOptions_Defaults(t *testing.T) {
	t.Parallel()
	o := matrix.NewMatrixOptions()
	assert.Equal(t, matrix.DefaultEpsilon, o.Epsilon())
	assert.Equal(t, matrix.DefaultValidateNaNInf, o.ValidateNaNInf())
}

func TestOptions_LastWriterWins(t *testing.T) {
	t.Parallel()
	o := matrix.NewMatrixOptions(
		matrix.WithEpsilon(1e-3),
		matrix.WithNoValidateNaNInf(),
		nil, // ignored
		matrix.WithEpsilon(1e-6),
	)
	assert.Equal(t, 1e-6, o.Epsilon())
	assert.False(t, o.ValidateNaNInf())

	o = matrix.NewMatrixOptions(matrix.WithNoValidateNaNInf(), matrix.WithValidateNaNInf())
	assert.True(t, o.ValidateNaNInf())
}

func TestWithEpsilon_PanicsOnNonsense(t *testing.T) {
	t.Parallel()
	for _, eps := range []float64{-1, math.NaN(), math.Inf(1)} {
		eps := eps
		require.Panics(t, func() { _ = matrix.WithEpsilon(eps) })
	}
	require.NotPanics(t, func() { _ = matrix.WithEpsilon(0) })
}
