// SPDX-License-Identifier: MIT
// Package: lvnmf/signal
//
// options.go - knobs shared by every generator.
//
// Contract:
//   - Options are resolved over defaults by newConfig(opts...).
//   - Invalid knobs are kept as-is and rejected by the generator, which then
//     returns nil. No panics.

package signal

import "math/rand"

const (
	defAmp    = 1.0  // amplitude A (>0)
	defSigma  = 0.0  // Gaussian noise sigma (≥0)
	defTrend  = 0.0  // linear trend increment per sample
	defSeed   = 1    // noise seed
	defChirp0 = 0.02 // chirp start frequency (cycles/sample, >0)
	defChirp1 = 0.25 // chirp end frequency (cycles/sample, >0)
)

// Option customizes a generator.
type Option func(*config)

type config struct {
	amp   float64
	sigma float64
	trend float64
	seed  int64
	rng   *rand.Rand
	f0    float64
	f1    float64
}

func newConfig(opts ...Option) config {
	cfg := config{
		amp:   defAmp,
		sigma: defSigma,
		trend: defTrend,
		seed:  defSeed,
		f0:    defChirp0,
		f1:    defChirp1,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// valid reports whether the shared knobs are usable.
func (c config) valid() bool {
	return c.amp > 0 && c.sigma >= 0
}

// random returns the shared stream if one was supplied, else a fresh one from seed.
func (c config) random() *rand.Rand {
	if c.rng != nil {
		return c.rng
	}
	return rand.New(rand.NewSource(c.seed))
}

// WithAmplitude sets the peak amplitude (must be > 0).
func WithAmplitude(a float64) Option { return func(c *config) { c.amp = a } }

// WithNoise adds zero-mean Gaussian noise with the given sigma (must be ≥ 0).
func WithNoise(sigma float64) Option { return func(c *config) { c.sigma = sigma } }

// WithTrend adds slope·i to sample i.
func WithTrend(slope float64) Option { return func(c *config) { c.trend = slope } }

// WithSeed fixes the noise stream.
func WithSeed(seed int64) Option { return func(c *config) { c.seed = seed } }

// WithRand shares one noise stream across several generator calls.
func WithRand(r *rand.Rand) Option { return func(c *config) { c.rng = r } }

// WithSweep sets the chirp start and end frequencies in cycles/sample.
func WithSweep(f0, f1 float64) Option {
	return func(c *config) { c.f0, c.f1 = f0, f1 }
}
