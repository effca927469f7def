// SPDX-License-Identifier: MIT

package nmf

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvnmf/matrix"
)

const opDivergence = "Divergence"

// Divergence returns D(X ‖ WH) under rule, where wh is the reconstruction.
//
//   - RuleEuclidean: Σ (x − v)².
//   - RuleKL:        Σ x·log(x/v) − x + v, with 0·log 0 = 0.
//   - RuleIS:        Σ x/v − log(x/v) − 1.
//
// Reconstruction entries below eps are clamped to eps (and, for IS, so are
// entries of X) so the result is finite for any non-negative inputs.
//
// Errors:
//   - ErrNilInput, ErrShape (shape mismatch), ErrOptionViolation (unknown rule, eps ≤ 0).
//
// Complexity:
//   - Time O(n·m), Space O(1).
func Divergence(rule UpdateRule, x, wh matrix.Matrix, eps float64) (float64, error) {
	if x == nil || wh == nil {
		return 0, fmt.Errorf("%s: %w", opDivergence, ErrNilInput)
	}
	if err := matrix.ValidateSameShape(x, wh); err != nil {
		return 0, fmt.Errorf("%s: %w: %w", opDivergence, ErrShape, err)
	}
	if !rule.valid() {
		return 0, fmt.Errorf("%s: %w: unknown update rule %d", opDivergence, ErrOptionViolation, int(rule))
	}
	if !(eps > 0) {
		return 0, fmt.Errorf("%s: %w: eps must be positive (%g)", opDivergence, ErrOptionViolation, eps)
	}

	term := divergenceTerm(rule, eps)

	dx, okX := x.(*matrix.Dense)
	dv, okV := wh.(*matrix.Dense)
	if okX && okV {
		xs, vs := dx.Data(), dv.Data()
		sum := 0.0
		for idx := range xs {
			sum += term(xs[idx], vs[idx])
		}
		return sum, nil
	}

	rows, cols := x.Rows(), x.Cols()
	sum := 0.0
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			xv, err := x.At(i, j)
			if err != nil {
				return 0, fmt.Errorf("%s: %w", opDivergence, err)
			}
			vv, err := wh.At(i, j)
			if err != nil {
				return 0, fmt.Errorf("%s: %w", opDivergence, err)
			}
			sum += term(xv, vv)
		}
	}

	return sum, nil
}

// divergenceTerm returns the per-entry contribution for rule.
func divergenceTerm(rule UpdateRule, eps float64) func(x, v float64) float64 {
	switch rule {
	case RuleEuclidean:
		return func(x, v float64) float64 {
			d := x - v
			return d * d
		}
	case RuleIS:
		return func(x, v float64) float64 {
			r := math.Max(x, eps) / math.Max(v, eps)
			return r - math.Log(r) - 1
		}
	default: // RuleKL
		return func(x, v float64) float64 {
			v = math.Max(v, eps)
			if x == 0 {
				return v
			}
			return x*math.Log(x/v) - x + v
		}
	}
}
