// SPDX-License-Identifier: MIT

// Package nmf provides non-negative matrix factorization by multiplicative
// updates: X (n×m, X ≥ 0) ≈ W (n×k) · H (k×m) with W, H ≥ 0.
//
// What
//
//   - NMF(x, k, opts...) returns (H, W) in that order, the argument
//     order of the classic audio NMF call. x is an NDArray so that non-2-D input is
//     rejected with ErrShape rather than a type error.
//   - Factorize(X, k, opts...) runs the same algorithm on any matrix.Matrix and
//     returns a Result with the iteration count, the convergence flag and the
//     divergence history (index 0 = value at initialization).
//   - Three update rules: RuleKL (default), RuleIS, RuleEuclidean.
//   - Optional per-iteration normalization of W's columns (L1, L2, max), with
//     H's rows compensated so W·H is unchanged.
//   - Two stop criteria: relative decrease of the divergence (default) or the
//     change of both factors between iterations.
//
// Initialization
//
//	W and H are NOT seeded randomly. By default W holds 1, 2, …, n·k and H holds
//	1, 2, …, k·m, both row-major. This legacy seeding is kept for parity with
//	existing results; it is non-standard compared to random or SVD-based seeding
//	and can converge more slowly. WithInit(InitNNDSVD) opts into deterministic
//	NNDSVDa seeding instead.
//
// Algorithm (one iteration)
//
//  1. H ← H ⊙ Num_H / (Den_H + ε)   (rule-specific numerator/denominator)
//  2. V ← W·H                        (fresh reconstruction)
//  3. W ← W ⊙ Num_W / (Den_W + ε)
//  4. normalize W's columns, compensate H's rows (if enabled)
//  5. record D(X ‖ WH), log it, call OnIteration, test the stop criterion.
//
// Updating H before W against a fresh V keeps each half-step a majorization
// step, so the Euclidean and KL divergences are non-increasing up to rounding.
//
// Determinism
//
//	No randomness and fixed loop orders: identical inputs and options give
//	bit-identical factors.
//
// Errors
//
//	Shape, rank, value and option errors are reported before any iteration
//	(ErrNilInput, ErrOptionViolation, ErrShape, ErrInvalidRank, ErrNaNInf,
//	ErrNegativeInput). Zero denominators are absorbed by Epsilon and never
//	surfaced.
//
// Complexity (per iteration)
//
//   - Time:   O(n·m·k)
//   - Memory: O(n·m + (n+m)·k)
//
// Usage
//
//	h, w, err := nmf.NMF(x, 4,
//	    nmf.WithMaxIter(300),
//	    nmf.WithRule(nmf.RuleKL),
//	    nmf.WithThreshold(1e-3),
//	    nmf.WithNormalize(nmf.NormalizeNone),
//	)
//
//	res, err := nmf.Factorize(mag, 8, // mag: a magnitude spectrogram
//	    nmf.WithRule(nmf.RuleIS),
//	    nmf.WithLogger(slog.Default()),
//	    nmf.WithOnIteration(func(iter int, d float64) error { return nil }),
//	)
package nmf
