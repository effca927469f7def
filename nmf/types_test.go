// SPDX-License-Identifier: MIT

package nmf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnmf/nmf"
)

// TestEnumOrdinals pins the integer codes shared with existing run configs.
func TestEnumOrdinals(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0, int(nmf.RuleKL))
	assert.Equal(t, 1, int(nmf.RuleIS))
	assert.Equal(t, 2, int(nmf.RuleEuclidean))
	assert.Equal(t, 0, int(nmf.NormalizeNone))
	assert.Equal(t, 3, int(nmf.NormalizeMax))
	assert.Equal(t, 0, int(nmf.StopDivergence))
	assert.Equal(t, 0, int(nmf.InitSequential))
}

func TestParseEnums(t *testing.T) {
	t.Parallel()

	r, err := nmf.ParseUpdateRule(" Euclidean ")
	require.NoError(t, err)
	assert.Equal(t, nmf.RuleEuclidean, r)
	r, err = nmf.ParseUpdateRule("1")
	require.NoError(t, err)
	assert.Equal(t, nmf.RuleIS, r)
	_, err = nmf.ParseUpdateRule("frobenius")
	require.ErrorIs(t, err, nmf.ErrOptionViolation)
	_, err = nmf.ParseUpdateRule("3")
	require.ErrorIs(t, err, nmf.ErrOptionViolation)

	n, err := nmf.ParseNormalizeMode("max")
	require.NoError(t, err)
	assert.Equal(t, nmf.NormalizeMax, n)

	s, err := nmf.ParseStopCriterion("factor")
	require.NoError(t, err)
	assert.Equal(t, nmf.StopFactorChange, s)

	i, err := nmf.ParseInitStrategy("NNDSVD")
	require.NoError(t, err)
	assert.Equal(t, nmf.InitNNDSVD, i)
}

func TestEnumStringRoundTrip(t *testing.T) {
	t.Parallel()
	for _, r := range []nmf.UpdateRule{nmf.RuleKL, nmf.RuleIS, nmf.RuleEuclidean} {
		got, err := nmf.ParseUpdateRule(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}
	for _, m := range []nmf.NormalizeMode{nmf.NormalizeNone, nmf.NormalizeL1, nmf.NormalizeL2, nmf.NormalizeMax} {
		got, err := nmf.ParseNormalizeMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	assert.Equal(t, "unknown(7)", nmf.UpdateRule(7).String())
}

func TestEnumText(t *testing.T) {
	t.Parallel()
	b, err := nmf.RuleIS.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "is", string(b))

	var r nmf.UpdateRule
	require.NoError(t, r.UnmarshalText([]byte("euclidean")))
	assert.Equal(t, nmf.RuleEuclidean, r)
	require.ErrorIs(t, r.UnmarshalText([]byte("x")), nmf.ErrOptionViolation)

	var s nmf.StopCriterion
	require.NoError(t, s.UnmarshalText([]byte("divergence")))
	assert.Equal(t, nmf.StopDivergence, s)

	var i nmf.InitStrategy
	require.NoError(t, i.UnmarshalText([]byte("1")))
	assert.Equal(t, nmf.InitNNDSVD, i)

	var n nmf.NormalizeMode
	require.NoError(t, n.UnmarshalText([]byte("l2")))
	assert.Equal(t, nmf.NormalizeL2, n)
}

func TestDefaultOptions(t *testing.T) {
	t.Parallel()
	o := nmf.DefaultOptions()
	assert.Equal(t, 300, o.MaxIter)
	assert.Equal(t, nmf.RuleKL, o.Rule)
	assert.Equal(t, 1e-3, o.Threshold)
	assert.Equal(t, nmf.NormalizeNone, o.Normalize)
	assert.Equal(t, nmf.StopDivergence, o.Stop)
	assert.Equal(t, 1e-16, o.Epsilon)
	assert.Equal(t, nmf.InitSequential, o.Init)
	require.NotNil(t, o.Logger)
	require.NoError(t, o.OnIteration(1, 0))
}

func TestResult_FinalDivergence(t *testing.T) {
	t.Parallel()
	assert.Zero(t, (&nmf.Result{}).FinalDivergence())
	assert.Equal(t, 2.0, (&nmf.Result{Divergence: []float64{5, 2}}).FinalDivergence())
}
