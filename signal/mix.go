// SPDX-License-Identifier: MIT

package signal

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Mix sums the given signals sample by sample. The result is as long as the
// longest input; shorter inputs contribute zeros past their end. Mix() is nil.
func Mix(signals ...[]float64) []float64 {
	n := 0
	for _, s := range signals {
		n = max(n, len(s))
	}
	if n == 0 {
		return nil
	}

	out := make([]float64, n)
	for _, s := range signals {
		floats.Add(out[:len(s)], s)
	}

	return out
}

// Peak returns max |s[i]|, or 0 for an empty signal.
func Peak(s []float64) float64 {
	if len(s) == 0 {
		return 0
	}
	return floats.Norm(s, math.Inf(1))
}

// Normalize scales s in place so that Peak(s) == target. Silent signals are left unchanged.
func Normalize(s []float64, target float64) {
	p := Peak(s)
	if p == 0 {
		return
	}
	floats.Scale(target/p, s)
}
