// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Column norms and broadcast scaling used to keep factor matrices on a
//     fixed scale (unit-norm basis columns with compensated activations).
//   - Tolerance comparison (AllClose) for tests and convergence checks.
//
// Exposed API:
//   - ColumnNorms(X, kind)     -> []float64  // per-column L1 / L2 / max-abs
//   - ScaleColumns(X, scale)   -> *Dense     // out[i,j] = X[i,j]*scale[j]
//   - ScaleRows(X, scale)      -> *Dense     // out[i,j] = X[i,j]*scale[i]
//   - AllClose(a, b, opts...)  -> bool       // max |a-b| ≤ eps
//
// Determinism & Performance:
//   - Column values are gathered in ascending row order before reduction,
//     so results are bit-stable across runs.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	opColumnNorms  = "ColumnNorms"
	opScaleColumns = "ScaleColumns"
	opScaleRows    = "ScaleRows"
	opAllClose     = "AllClose"
)

// floatsNormOrder maps a NormKind to the L argument of floats.Norm.
func floatsNormOrder(kind NormKind) (float64, error) {
	switch kind {
	case NormL1:
		return 1, nil
	case NormL2:
		return 2, nil
	case NormMax:
		return math.Inf(1), nil
	default:
		return 0, fmt.Errorf("kind=%d: %w", int(kind), ErrUnknownNorm)
	}
}

// ColumnNorms returns the norm of every column of X.
// Implementation:
//   - Stage 1: validate X and resolve the norm order.
//   - Stage 2: gather each column into a reusable buffer and reduce it with floats.Norm.
//
// Errors:
//   - ErrNilMatrix, ErrUnknownNorm.
//
// Complexity:
//   - Time O(r*c), Space O(r + c).
//
// AI-Hints:
//   - A zero entry in the result marks an all-zero column; skip it when dividing.
func ColumnNorms(X Matrix, kind NormKind) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColumnNorms, err)
	}
	order, err := floatsNormOrder(kind)
	if err != nil {
		return nil, matrixErrorf(opColumnNorms, err)
	}

	r, c := X.Rows(), X.Cols()
	norms := make([]float64, c)
	col := make([]float64, r)

	d, dense := X.(*Dense)
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			if dense {
				col[i] = d.data[i*c+j]
				continue
			}
			v, e := X.At(i, j)
			if e != nil {
				return nil, matrixErrorf(opColumnNorms, e)
			}
			col[i] = v
		}
		norms[j] = floats.Norm(col, order)
	}

	return norms, nil
}

// ScaleColumns returns a copy of X with column j multiplied by scale[j].
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(scale) != Cols).
// Complexity: Time O(r*c), Space O(r*c).
func ScaleColumns(X Matrix, scale []float64) (*Dense, error) {
	return ewBroadcastMulCols(X, scale, opScaleColumns)
}

// ScaleRows returns a copy of X with row i multiplied by scale[i].
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(scale) != Rows).
// Complexity: Time O(r*c), Space O(r*c).
func ScaleRows(X Matrix, scale []float64) (*Dense, error) {
	return ewBroadcastMulRows(X, scale, opScaleRows)
}

// AllClose reports whether |a[i,j] - b[i,j]| ≤ eps for every entry.
// eps comes from WithEpsilon (DefaultEpsilon otherwise). Any NaN compares unequal.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func AllClose(a, b Matrix, opts ...Option) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	o := gatherOptions(opts...)

	worst, err := ewMaxAbsDiff(a, b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	return worst <= o.eps, nil
}
