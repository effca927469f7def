// SPDX-License-Identifier: MIT

package nmf_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnmf/matrix"
)

// hide masks the concrete *Dense type to force generic paths.
type hide struct{ matrix.Matrix }

// fixture6x5 returns a deterministic positive 6×5 matrix with one zero entry.
func fixture6x5(tb testing.TB) *matrix.Dense {
	tb.Helper()
	data := make([]float64, 0, 30)
	for i := 0; i < 6; i++ {
		for j := 0; j < 5; j++ {
			v := 1 + float64((i*7+j*3)%5) + 0.5*float64((i+j)%2)
			if i == 2 && j == 3 {
				v = 0
			}
			data = append(data, v)
		}
	}
	m, err := matrix.NewDenseFrom(6, 5, data)
	require.NoError(tb, err)

	return m
}

// mustDense builds a Dense from row-major data or fails the test.
func mustDense(tb testing.TB, r, c int, data ...float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFrom(r, c, data)
	require.NoError(tb, err)

	return m
}

// requireNonNegative asserts every entry of m is ≥ 0.
func requireNonNegative(tb testing.TB, m *matrix.Dense) {
	tb.Helper()
	for idx, v := range m.Data() {
		require.GreaterOrEqualf(tb, v, 0.0, "entry %d", idx)
	}
}

// requireNonIncreasing asserts hist never rises beyond rounding noise.
func requireNonIncreasing(tb testing.TB, hist []float64) {
	tb.Helper()
	for i := 1; i < len(hist); i++ {
		require.LessOrEqualf(tb, hist[i], hist[i-1]*(1+1e-9)+1e-12,
			"divergence rose at iteration %d: %g -> %g", i, hist[i-1], hist[i])
	}
}
