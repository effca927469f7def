// SPDX-License-Identifier: MIT

package nmf

import "errors"

// Sentinel errors for factorization calls. Every message is prefixed with
// "nmf:"; callers match with errors.Is.
var (
	// ErrNilInput is returned when X is nil.
	ErrNilInput = errors.New("nmf: input is nil")

	// ErrShape is returned when X is not exactly 2-dimensional or has a zero dimension.
	ErrShape = errors.New("nmf: input must be a non-empty 2-D matrix")

	// ErrInvalidRank is returned when k ≤ 0 or k > min(rows, cols).
	ErrInvalidRank = errors.New("nmf: rank out of range")

	// ErrNegativeInput is returned when X has a strictly negative entry.
	ErrNegativeInput = errors.New("nmf: input has a negative entry")

	// ErrNaNInf is returned when X has a NaN or ±Inf entry. The matrix-level
	// cause (matrix.ErrNaNInf) stays reachable through errors.Is.
	ErrNaNInf = errors.New("nmf: input has a non-finite entry")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("nmf: invalid option supplied")
)
