// SPDX-License-Identifier: MIT

package nmf

import (
	"errors"
	"fmt"
	"log/slog"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvnmf/matrix"
)

const (
	opFactorize   = "Factorize"
	opReconstruct = "Reconstruct"
)

// wrapKernel tags an internal kernel error with the solver stage.
func wrapKernel(op string, err error) error {
	return fmt.Errorf("nmf.%s: %w", op, err)
}

// solver encapsulates mutable factorization state for one call.
type solver struct {
	x    *matrix.Dense // input, never mutated
	w, h *matrix.Dense // factors, updated in place
	v    *matrix.Dense // current reconstruction W·H
	opts Options
	log  *slog.Logger
	res  *Result

	// previous factors, kept only for StopFactorChange
	wPrev, hPrev []float64
}

// Factorize decomposes a non-negative n×m matrix X into W (n×k) and H (k×m)
// with multiplicative updates, applying any number of functional Options.
//
// Each iteration updates H, recomputes V = W·H, updates W, optionally
// normalizes W's columns (compensating H), then records D(X ‖ WH) and tests
// the stop criterion. X is not modified; W and H are fresh per call.
//
// Returns ErrNilInput, ErrOptionViolation, ErrShape, ErrInvalidRank,
// ErrNaNInf or ErrNegativeInput for invalid input (in that order of
// precedence), or any error returned by the OnIteration hook.
func Factorize(x matrix.Matrix, k int, opts ...Option) (*Result, error) {
	if matrix.ValidateNotNil(x) != nil {
		return nil, fmt.Errorf("%s: %w", opFactorize, ErrNilInput)
	}
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFactorize, err)
	}

	n, m := x.Rows(), x.Cols()
	if n <= 0 || m <= 0 {
		return nil, fmt.Errorf("%s: %dx%d: %w", opFactorize, n, m, ErrShape)
	}
	if k <= 0 || k > min(n, m) {
		return nil, fmt.Errorf("%s: k=%d for %dx%d input: %w", opFactorize, k, n, m, ErrInvalidRank)
	}
	xd, err := prepareInput(x)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFactorize, err)
	}

	s, err := newSolver(xd, k, o)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFactorize, err)
	}
	if err = s.run(); err != nil {
		return nil, fmt.Errorf("%s: %w", opFactorize, err)
	}

	return s.res, nil
}

// Reconstruct returns W·H.
// Errors: ErrNilInput, ErrShape (W.Cols != H.Rows).
func Reconstruct(w, h matrix.Matrix) (*matrix.Dense, error) {
	if matrix.ValidateNotNil(w) != nil || matrix.ValidateNotNil(h) != nil {
		return nil, fmt.Errorf("%s: %w", opReconstruct, ErrNilInput)
	}
	v, err := matrix.Mul(w, h)
	if err != nil {
		if errors.Is(err, matrix.ErrDimensionMismatch) {
			return nil, fmt.Errorf("%s: %w: %w", opReconstruct, ErrShape, err)
		}
		return nil, fmt.Errorf("%s: %w", opReconstruct, err)
	}

	return v, nil
}

// prepareInput validates entries and returns X as a read-only *Dense.
func prepareInput(x matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateNonNegative(x); err != nil {
		switch {
		case errors.Is(err, matrix.ErrNaNInf):
			return nil, fmt.Errorf("%w: %w", ErrNaNInf, err)
		case errors.Is(err, matrix.ErrNegative):
			return nil, fmt.Errorf("%w: %w", ErrNegativeInput, err)
		default:
			return nil, err
		}
	}
	if d, ok := x.(*matrix.Dense); ok {
		return d, nil
	}

	rows, cols := x.Rows(), x.Cols()
	buf := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := x.At(i, j)
			if err != nil {
				return nil, err
			}
			buf[i*cols+j] = v
		}
	}

	return matrix.NewDenseFrom(rows, cols, buf)
}

// newSolver seeds W and H and applies the initial normalization.
func newSolver(x *matrix.Dense, k int, o Options) (*solver, error) {
	n, m := x.Shape()
	s := &solver{
		x:    x,
		opts: o,
		log:  o.Logger,
		res:  &Result{Divergence: make([]float64, 0, o.MaxIter+1)},
	}

	var err error
	switch o.Init {
	case InitNNDSVD:
		s.w, s.h, err = seedNNDSVD(x, k, o.Epsilon)
		if errors.Is(err, errSVDFailed) {
			s.log.Warn("nmf: NNDSVD seeding failed, falling back to sequential", "err", err)
			s.w, s.h, err = seedSequential(n, m, k)
		}
	default:
		s.w, s.h, err = seedSequential(n, m, k)
	}
	if err != nil {
		return nil, err
	}
	if err = normalize(o.Normalize, s.w, s.h); err != nil {
		return nil, err
	}
	if o.Stop == StopFactorChange {
		s.wPrev = make([]float64, n*k)
		s.hPrev = make([]float64, k*m)
	}
	s.res.W, s.res.H = s.w, s.h

	return s, nil
}

// reconstruct refreshes s.v = W·H.
func (s *solver) reconstruct() error {
	v, err := matrix.Mul(s.w, s.h)
	if err != nil {
		return err
	}
	s.v = v

	return nil
}

// divergence scores the current reconstruction.
func (s *solver) divergence() (float64, error) {
	return Divergence(s.opts.Rule, s.x, s.v, s.opts.Epsilon)
}

// run iterates until MaxIter, the stop criterion, or a hook error.
func (s *solver) run() error {
	if err := s.reconstruct(); err != nil {
		return err
	}
	prev, err := s.divergence()
	if err != nil {
		return err
	}
	s.res.Divergence = append(s.res.Divergence, prev)

	for iter := 1; iter <= s.opts.MaxIter; iter++ {
		if s.wPrev != nil {
			copy(s.wPrev, s.w.Data())
			copy(s.hPrev, s.h.Data())
		}

		if err = s.sweep(); err != nil {
			return err
		}
		cur, err := s.divergence()
		if err != nil {
			return err
		}
		s.res.Divergence = append(s.res.Divergence, cur)
		s.res.Iterations = iter

		s.log.Debug("nmf iteration", "iter", iter, "divergence", cur, "rel_change", relChange(prev, cur))
		if err = s.opts.OnIteration(iter, cur); err != nil {
			return err
		}
		if s.converged(prev, cur) {
			s.res.Converged = true
			break
		}
		prev = cur
	}

	s.log.Info("nmf finished",
		"iterations", s.res.Iterations,
		"converged", s.res.Converged,
		"divergence", s.res.FinalDivergence(),
		"rule", s.opts.Rule.String(),
	)

	return nil
}

// sweep performs one H update, one W update and the optional normalization,
// leaving s.v equal to the new W·H.
func (s *solver) sweep() error {
	if err := updateH(s.opts.Rule, s.x, s.w, s.h, s.v, s.opts.Epsilon); err != nil {
		return err
	}
	if err := s.reconstruct(); err != nil {
		return err
	}
	if err := updateW(s.opts.Rule, s.x, s.w, s.h, s.v, s.opts.Epsilon); err != nil {
		return err
	}
	if err := normalize(s.opts.Normalize, s.w, s.h); err != nil {
		return err
	}

	return s.reconstruct()
}

// converged applies the selected stop criterion. Threshold 0 never stops.
func (s *solver) converged(prev, cur float64) bool {
	t := s.opts.Threshold
	if t == 0 {
		return false
	}
	switch s.opts.Stop {
	case StopFactorChange:
		return floats.Distance(s.w.Data(), s.wPrev, 2) < t &&
			floats.Distance(s.h.Data(), s.hPrev, 2) < t
	default:
		if prev <= 0 {
			return true // exact fit
		}
		return relChange(prev, cur) < t
	}
}

// relChange is the relative decrease (prev − cur)/prev, 0 when prev ≤ 0.
func relChange(prev, cur float64) float64 {
	if prev <= 0 {
		return 0
	}
	return (prev - cur) / prev
}
