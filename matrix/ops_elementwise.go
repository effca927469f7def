// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, *private* element-wise kernels (ew*) behind the public
//     Add/Sub/Hadamard/Scale/DivGuarded facades, the column/row scaling
//     facades and AllClose.
//   - Keep all loops deterministic and cache-friendly with Dense fast-paths.
//
// Design:
//   - All ew* are UNEXPORTED (internal micro-kernels).
//   - Public API reaches them through one-line facades in
//     impl_linear_algebra.go and impl_norms.go.
//
// Determinism & Performance:
//   - Fixed loop orders (i→j or flat 0..n-1).
//   - Dense fast-path operates on a single flat buffer (row-major).
//   - No hidden allocations beyond the output Dense; O(r*c) time and space.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock the flat-slice fast path.
//   - Keep broadcast arrays (scale) precomputed and reused across calls.

package matrix

import (
	"fmt"
	"math"
)

// ewMap returns out[i,j] = f(i, j, m[i,j]) as a fresh Dense.
// The *Dense path walks the flat buffer; the fallback reads through At.
// Time: O(r*c). Space: O(r*c).
func ewMap(m Matrix, tag string, f func(i, j int, v float64) float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	r, c := m.Rows(), m.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	if d, ok := m.(*Dense); ok {
		for i := 0; i < r; i++ {
			row := d.data[i*c : (i+1)*c]
			dst := out.data[i*c : (i+1)*c]
			for j, v := range row {
				dst[j] = f(i, j, v)
			}
		}
		return out, nil
	}

	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, e := m.At(i, j)
			if e != nil {
				return nil, matrixErrorf(tag, fmt.Errorf("At(%d,%d): %w", i, j, e))
			}
			out.data[i*c+j] = f(i, j, v)
		}
	}
	return out, nil
}

// ewZip returns out[i,j] = f(a[i,j], b[i,j]) for same-shaped operands.
// Time: O(r*c). Space: O(r*c).
func ewZip(a, b Matrix, tag string, f func(x, y float64) float64) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if db, ok := b.(*Dense); ok {
		return ewMap(a, tag, func(i, j int, x float64) float64 {
			return f(x, db.data[i*db.c+j])
		})
	}

	var atErr error
	out, err := ewMap(a, tag, func(i, j int, x float64) float64 {
		y, e := b.At(i, j)
		if e != nil && atErr == nil {
			atErr = fmt.Errorf("At(%d,%d): %w", i, j, e)
		}
		return f(x, y)
	})
	if err != nil {
		return nil, err
	}
	if atErr != nil {
		return nil, matrixErrorf(tag, atErr)
	}
	return out, nil
}

// ewBroadcastMulCols computes out[i,j] = X[i,j] * scale[j].
//
// AI-Hint: Use for column scaling (e.g., unit-norm columns of a basis matrix).
func ewBroadcastMulCols(X Matrix, scale []float64, tag string) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if err := ValidateVecLen(scale, X.Cols()); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	return ewMap(X, tag, func(_, j int, v float64) float64 { return v * scale[j] })
}

// ewBroadcastMulRows computes out[i,j] = X[i,j] * scale[i].
func ewBroadcastMulRows(X Matrix, scale []float64, tag string) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if err := ValidateVecLen(scale, X.Rows()); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	return ewMap(X, tag, func(i, _ int, v float64) float64 { return v * scale[i] })
}

// ewMaxAbsDiff returns max |a[i,j] - b[i,j]| over all entries. NaN on either
// side yields +Inf so callers comparing against a tolerance fail closed.
// Shapes must already be validated by the caller.
// Time: O(r*c). Space: O(1).
func ewMaxAbsDiff(a, b Matrix) (float64, error) {
	r, c := a.Rows(), a.Cols()
	worst := 0.0

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				d := math.Abs(da.data[idx] - db.data[idx])
				if math.IsNaN(d) {
					return math.Inf(1), nil
				}
				if d > worst {
					worst = d
				}
			}
			return worst, nil
		}
	}

	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			av, err := a.At(i, j)
			if err != nil {
				return 0, err
			}
			bv, err := b.At(i, j)
			if err != nil {
				return 0, err
			}
			d := math.Abs(av - bv)
			if math.IsNaN(d) {
				return math.Inf(1), nil
			}
			if d > worst {
				worst = d
			}
		}
	}
	return worst, nil
}
