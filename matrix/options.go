// SPDX-License-Identifier: MIT

// Package matrix: options shared by constructors, readers and comparisons.
//
// Two knobs exist:
//   - the finite-only policy, consulted by NewDenseFrom, ReadCSV, NDArray.AsDense,
//     and later by Set/Apply on the matrix it was captured in;
//   - eps, the absolute tolerance of AllClose.
//
// Setters run in order over the defaults, so the last one wins. A setter
// given a meaningless value panics at construction time, since that is a
// programming error rather than bad data.
package matrix

import "math"

const (
	// DefaultEpsilon is the AllClose tolerance when WithEpsilon is absent.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf turns the finite-only policy on for new matrices.
	DefaultValidateNaNInf = true
)

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
)

// Option adjusts Options.
type Option func(*Options)

// Options is the resolved configuration. Read it through the accessor methods.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
}

// WithEpsilon sets the AllClose tolerance. eps must be finite and ≥ 0, or
// WithEpsilon panics.
//
// AI-Hints:
//   - Products of factorized W·H drift by ~1e-12 relative; compare those with
//     eps scaled to the data, not the 1e-9 default.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables strict finite-value validation (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf lets non-finite values in. It affects matrices
// created with it; existing ones keep their policy.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewMatrixOptions resolves opts over the defaults.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Epsilon reports the resolved tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// ValidateNaNInf reports whether finite-value validation is enabled.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// gatherOptions applies user over the defaults, skipping nil setters.
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
