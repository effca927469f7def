// SPDX-License-Identifier: MIT

// Tagged enumerations and the result type of the factorization. Ordinals are
// stable and match the integer codes used by existing run configurations
// (update rule 0 = KL, normalize 0 = none).

package nmf

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvnmf/matrix"
)

// UpdateRule selects the divergence minimized by the multiplicative updates.
//
//   - RuleKL: generalized Kullback-Leibler divergence (default).
//   - RuleIS: Itakura-Saito divergence; scale invariant, suited to power spectra.
//   - RuleEuclidean: squared Frobenius distance ‖X − WH‖².
type UpdateRule int

const (
	// RuleKL minimizes Σ x·log(x/v) − x + v.
	RuleKL UpdateRule = iota

	// RuleIS minimizes Σ x/v − log(x/v) − 1.
	RuleIS

	// RuleEuclidean minimizes Σ (x − v)².
	RuleEuclidean
)

// NormalizeMode selects how W's columns are rescaled after every iteration.
// H's rows absorb the inverse factor, so W·H is unchanged.
type NormalizeMode int

const (
	// NormalizeNone leaves the scale of W and H free.
	NormalizeNone NormalizeMode = iota

	// NormalizeL1 gives every column of W unit sum.
	NormalizeL1

	// NormalizeL2 gives every column of W unit Euclidean norm.
	NormalizeL2

	// NormalizeMax gives every column of W a maximum of 1.
	NormalizeMax
)

// StopCriterion selects the early-stopping test.
type StopCriterion int

const (
	// StopDivergence stops once the relative decrease of the divergence
	// between two iterations falls below the threshold.
	StopDivergence StopCriterion = iota

	// StopFactorChange stops once both ‖W − W_prev‖₂ and ‖H − H_prev‖₂
	// fall below the threshold.
	StopFactorChange
)

// InitStrategy selects how W and H are seeded.
type InitStrategy int

const (
	// InitSequential fills W with 1..n·k and H with 1..k·m in row-major order.
	// This legacy deterministic seeding differs from the
	// random or SVD-based seeding of most NMF implementations.
	InitSequential InitStrategy = iota

	// InitNNDSVD seeds from the leading singular triplets of X (NNDSVDa:
	// zeros are filled with the mean of X). Deterministic.
	InitNNDSVD
)

var (
	ruleNames      = []string{"kl", "is", "euclidean"}
	normalizeNames = []string{"none", "l1", "l2", "max"}
	stopNames      = []string{"divergence", "factor"}
	initNames      = []string{"sequential", "nndsvd"}
)

// enumName returns names[v] or a diagnostic placeholder.
func enumName(names []string, v int) string {
	if v >= 0 && v < len(names) {
		return names[v]
	}
	return "unknown(" + strconv.Itoa(v) + ")"
}

// parseEnum accepts a case-insensitive name or the decimal ordinal.
func parseEnum(kind string, names []string, s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range names {
		if s == n {
			return i, nil
		}
	}
	if v, err := strconv.Atoi(s); err == nil && v >= 0 && v < len(names) {
		return v, nil
	}

	return 0, fmt.Errorf("%w: unknown %s %q (want one of %s)", ErrOptionViolation, kind, s, strings.Join(names, ", "))
}

func (r UpdateRule) String() string    { return enumName(ruleNames, int(r)) }
func (n NormalizeMode) String() string { return enumName(normalizeNames, int(n)) }
func (s StopCriterion) String() string { return enumName(stopNames, int(s)) }
func (i InitStrategy) String() string  { return enumName(initNames, int(i)) }

func (r UpdateRule) valid() bool    { return r >= RuleKL && r <= RuleEuclidean }
func (n NormalizeMode) valid() bool { return n >= NormalizeNone && n <= NormalizeMax }
func (s StopCriterion) valid() bool { return s >= StopDivergence && s <= StopFactorChange }
func (i InitStrategy) valid() bool  { return i >= InitSequential && i <= InitNNDSVD }

// ParseUpdateRule parses "kl", "is", "euclidean" or the ordinal "0".."2".
func ParseUpdateRule(s string) (UpdateRule, error) {
	v, err := parseEnum("update rule", ruleNames, s)
	return UpdateRule(v), err
}

// ParseNormalizeMode parses "none", "l1", "l2", "max" or the ordinal "0".."3".
func ParseNormalizeMode(s string) (NormalizeMode, error) {
	v, err := parseEnum("normalize mode", normalizeNames, s)
	return NormalizeMode(v), err
}

// ParseStopCriterion parses "divergence", "factor" or the ordinal "0".."1".
func ParseStopCriterion(s string) (StopCriterion, error) {
	v, err := parseEnum("stop criterion", stopNames, s)
	return StopCriterion(v), err
}

// ParseInitStrategy parses "sequential", "nndsvd" or the ordinal "0".."1".
func ParseInitStrategy(s string) (InitStrategy, error) {
	v, err := parseEnum("init strategy", initNames, s)
	return InitStrategy(v), err
}

// MarshalText implements encoding.TextMarshaler.
func (r UpdateRule) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler via ParseUpdateRule.
func (r *UpdateRule) UnmarshalText(b []byte) (err error) {
	*r, err = ParseUpdateRule(string(b))
	return err
}

// MarshalText implements encoding.TextMarshaler.
func (n NormalizeMode) MarshalText() ([]byte, error) { return []byte(n.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler via ParseNormalizeMode.
func (n *NormalizeMode) UnmarshalText(b []byte) (err error) {
	*n, err = ParseNormalizeMode(string(b))
	return err
}

// MarshalText implements encoding.TextMarshaler.
func (s StopCriterion) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler via ParseStopCriterion.
func (s *StopCriterion) UnmarshalText(b []byte) (err error) {
	*s, err = ParseStopCriterion(string(b))
	return err
}

// MarshalText implements encoding.TextMarshaler.
func (i InitStrategy) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler via ParseInitStrategy.
func (i *InitStrategy) UnmarshalText(b []byte) (err error) {
	*i, err = ParseInitStrategy(string(b))
	return err
}

// normKind maps a non-None mode onto the matrix norm that measures a column.
func (n NormalizeMode) normKind() matrix.NormKind {
	switch n {
	case NormalizeL1:
		return matrix.NormL1
	case NormalizeL2:
		return matrix.NormL2
	default:
		return matrix.NormMax
	}
}

// Result holds the outcome of a factorization:
//   - W: basis matrix (n×k), non-negative.
//   - H: activation matrix (k×m), non-negative.
//   - Iterations: completed update sweeps, ≤ MaxIter.
//   - Converged: true when the stop criterion fired, false when MaxIter ran out.
//   - Divergence: index 0 is the value at initialization, then one value per iteration.
type Result struct {
	W          *matrix.Dense
	H          *matrix.Dense
	Iterations int
	Converged  bool
	Divergence []float64
}

// FinalDivergence returns the last recorded divergence.
func (r *Result) FinalDivergence() float64 {
	if len(r.Divergence) == 0 {
		return 0
	}
	return r.Divergence[len(r.Divergence)-1]
}
