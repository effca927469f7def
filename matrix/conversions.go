// SPDX-License-Identifier: MIT

// Package matrix - interop with gonum's mat package.
//
// Purpose:
//   - Hand factor matrices to gonum routines (SVD, solvers, printing) and
//     take their results back without leaking gonum types into kernels.
//
// Complexity quicksheet:
//   - ToGonum: O(r*c) copy; FromGonum: O(r*c) copy + policy scan.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	opToGonum   = "ToGonum"
	opFromGonum = "FromGonum"
)

// ToGonum copies m into a freshly allocated *mat.Dense.
// The result shares no memory with m.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	r, c := m.Rows(), m.Cols()
	buf := make([]float64, r*c)

	if d, ok := m.(*Dense); ok {
		copy(buf, d.data)
		return mat.NewDense(r, c, buf), nil
	}

	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opToGonum, err)
			}
			buf[i*c+j] = v
		}
	}

	return mat.NewDense(r, c, buf), nil
}

// FromGonum copies any gonum matrix (including views and transposes) into a Dense.
// The numeric policy applies as in NewDenseFrom.
//
// Errors: ErrNilMatrix, ErrInvalidDimensions (empty matrix), ErrNaNInf.
// Complexity: Time O(r*c), Space O(r*c).
func FromGonum(g mat.Matrix, opts ...Option) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := g.Dims()
	if r <= 0 || c <= 0 {
		return nil, matrixErrorf(opFromGonum, fmt.Errorf("%dx%d: %w", r, c, ErrInvalidDimensions))
	}
	buf := make([]float64, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			buf[i*c+j] = g.At(i, j)
		}
	}
	d, err := NewDenseFrom(r, c, buf, opts...)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}

	return d, nil
}
