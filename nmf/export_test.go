// SPDX-License-Identifier: MIT

package nmf

import "github.com/katalvlaran/lvnmf/matrix"

// Normalize_TestOnly forwards to normalize for white-box tests.
func Normalize_TestOnly(mode NormalizeMode, w, h *matrix.Dense) error {
	return normalize(mode, w, h)
}

// SeedNNDSVD_TestOnly forwards to seedNNDSVD.
func SeedNNDSVD_TestOnly(x *matrix.Dense, k int) (w, h *matrix.Dense, err error) {
	return seedNNDSVD(x, k, DefaultEpsilon)
}

// RelChange_TestOnly forwards to relChange.
func RelChange_TestOnly(prev, cur float64) float64 { return relChange(prev, cur) }
