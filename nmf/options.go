// SPDX-License-Identifier: MIT

package nmf

import (
	"fmt"
	"io"
	"log/slog"
	"math"
)

// Defaults match the classic audio NMF call:
// nmf(X, k, max_iter=300, update_rule=0, convergence_threshold=1e-3, normalize_mode=0).
const (
	// DefaultMaxIter is the iteration cap.
	DefaultMaxIter = 300

	// DefaultThreshold is the early-stopping threshold.
	DefaultThreshold = 1e-3

	// DefaultEpsilon guards every update denominator against zero.
	DefaultEpsilon = 1e-16
)

// Option configures a factorization via functional arguments.
// If an Option is invalid (e.g. negative threshold), it is recorded
// internally and surfaced as ErrOptionViolation when the call starts.
type Option func(*Options)

// Options holds parameters and callbacks to customize a factorization.
type Options struct {
	// MaxIter caps the number of update sweeps (> 0).
	MaxIter int

	// Rule selects the divergence and its multiplicative update.
	Rule UpdateRule

	// Threshold drives early stopping; 0 disables it.
	Threshold float64

	// Normalize rescales W's columns after every sweep.
	Normalize NormalizeMode

	// Stop selects how Threshold is applied.
	Stop StopCriterion

	// Epsilon is added to every update denominator (> 0).
	Epsilon float64

	// Init selects the seeding of W and H.
	Init InitStrategy

	// Logger receives per-iteration Debug records and a completion Info record.
	Logger *slog.Logger

	// OnIteration is called after every sweep with the 1-based iteration
	// number and the divergence. Returning an error aborts the call and
	// propagates that error.
	OnIteration func(iter int, divergence float64) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the documented defaults:
//   - MaxIter 300, Threshold 1e-3, Epsilon 1e-16
//   - RuleKL, NormalizeNone, StopDivergence, InitSequential
//   - a logger that discards everything and a no-op hook.
func DefaultOptions() Options {
	return Options{
		MaxIter:     DefaultMaxIter,
		Rule:        RuleKL,
		Threshold:   DefaultThreshold,
		Normalize:   NormalizeNone,
		Stop:        StopDivergence,
		Epsilon:     DefaultEpsilon,
		Init:        InitSequential,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		OnIteration: func(int, float64) error { return nil },
	}
}

// fail records the first violation only.
func (o *Options) fail(format string, args ...any) {
	if o.err == nil {
		o.err = fmt.Errorf("%w: "+format, append([]any{ErrOptionViolation}, args...)...)
	}
}

// WithMaxIter sets the iteration cap. n ≤ 0 → ErrOptionViolation.
func WithMaxIter(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.fail("MaxIter must be positive (%d)", n)
			return
		}
		o.MaxIter = n
	}
}

// WithRule selects the update rule.
func WithRule(r UpdateRule) Option {
	return func(o *Options) {
		if !r.valid() {
			o.fail("unknown update rule %d", int(r))
			return
		}
		o.Rule = r
	}
}

// WithThreshold sets the early-stopping threshold.
//
//	t > 0: stop once the selected criterion drops below t
//	t == 0: never stop early (run exactly MaxIter sweeps)
//	t < 0 or non-finite: ErrOptionViolation
func WithThreshold(t float64) Option {
	return func(o *Options) {
		if t < 0 || math.IsNaN(t) || math.IsInf(t, 0) {
			o.fail("Threshold must be finite and non-negative (%g)", t)
			return
		}
		o.Threshold = t
	}
}

// WithNormalize selects the per-iteration normalization of W.
func WithNormalize(n NormalizeMode) Option {
	return func(o *Options) {
		if !n.valid() {
			o.fail("unknown normalize mode %d", int(n))
			return
		}
		o.Normalize = n
	}
}

// WithStop selects the stop criterion.
func WithStop(s StopCriterion) Option {
	return func(o *Options) {
		if !s.valid() {
			o.fail("unknown stop criterion %d", int(s))
			return
		}
		o.Stop = s
	}
}

// WithEpsilon sets the denominator guard. eps must be finite and > 0.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if !(eps > 0) || math.IsInf(eps, 0) {
			o.fail("Epsilon must be finite and positive (%g)", eps)
			return
		}
		o.Epsilon = eps
	}
}

// WithInit selects the seeding strategy.
func WithInit(i InitStrategy) Option {
	return func(o *Options) {
		if !i.valid() {
			o.fail("unknown init strategy %d", int(i))
			return
		}
		o.Init = i
	}
}

// WithLogger routes solver logs to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnIteration registers a per-iteration callback; returning an error
// from it stops the factorization.
func WithOnIteration(fn func(iter int, divergence float64) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnIteration = fn
		}
	}
}

// resolveOptions applies opts over DefaultOptions and reports the first violation.
func resolveOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o, o.err
}
