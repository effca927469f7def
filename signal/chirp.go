// SPDX-License-Identifier: MIT
// Package: lvnmf/signal
//
// chirp.go - deterministic linear chirp and pure tone.
//
// Model (both generators share the phase accumulator):
//   - fᵢ  = f0 + (f1 − f0)·i/(n−1)   (cycles/sample; constant for Tone)
//   - θᵢ₊₁ = θᵢ + τ·fᵢ                (τ = 2π, θ₀ = 0)
//   - yᵢ  = A·sin(θ) + trend·i + σ·N(0,1)
//
// O(n) time, O(n) memory.

package signal

import "math"

const tau = 2.0 * math.Pi

// Chirp returns a length-n linear sweep from f0 to f1 (see WithSweep).
// It returns nil when n < 1 or any knob is out of range.
func Chirp(n int, opts ...Option) []float64 {
	if n < 1 {
		return nil
	}
	cfg := newConfig(opts...)
	if !cfg.valid() || cfg.f0 <= 0 || cfg.f1 <= 0 {
		return nil
	}

	return synthesize(n, cfg, func(t float64) float64 {
		return cfg.f0 + (cfg.f1-cfg.f0)*t
	})
}

// Tone returns a length-n sine at freq cycles/sample, 0 < freq ≤ 0.5.
// Unlike Chirp, the phase of sample i is exactly τ·freq·i, so a tone whose
// period divides the frame length lands on a single FFT bin.
func Tone(n int, freq float64, opts ...Option) []float64 {
	if n < 1 || freq <= 0 || freq > 0.5 {
		return nil
	}
	cfg := newConfig(opts...)
	if !cfg.valid() {
		return nil
	}

	out := make([]float64, n)
	rng := cfg.random()
	for i := range out {
		v := cfg.amp*math.Sin(tau*freq*float64(i)) + cfg.trend*float64(i)
		if cfg.sigma > 0 {
			v += cfg.sigma * rng.NormFloat64()
		}
		out[i] = v
	}

	return out
}

// synthesize integrates the instantaneous frequency freqAt(t), t ∈ [0,1].
func synthesize(n int, cfg config, freqAt func(t float64) float64) []float64 {
	out := make([]float64, n)
	rng := cfg.random()

	theta := 0.0
	for i := 0; i < n; i++ {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		theta += tau * freqAt(t)

		v := cfg.amp*math.Sin(theta) + cfg.trend*float64(i)
		if cfg.sigma > 0 {
			v += cfg.sigma * rng.NormFloat64()
		}
		out[i] = v
	}

	return out
}
