// SPDX-License-Identifier: MIT
// Package matrix: linear-algebra facades over any Matrix.
//
// Add, Sub, Scale, Hadamard and DivGuarded are element-wise and share the
// ew* kernels in ops_elementwise.go. Mul, MulTransA and MulTransB share one
// product kernel that reads operands through transposing views. Transpose
// and FrobeniusNorm stand alone.
//
// Every facade validates its operands, allocates a fresh *Dense and leaves
// the inputs untouched. Errors read "<Op>: <cause>".

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Operation tags.
const (
	opAdd        = "Add"
	opSub        = "Sub"
	opMul        = "Mul"
	opMulTransA  = "MulTransA"
	opMulTransB  = "MulTransB"
	opTranspose  = "Transpose"
	opScale      = "Scale"
	opHadamard   = "Hadamard"
	opDivGuarded = "DivGuarded"
	opFrobenius  = "FrobeniusNorm"
)

// matrixErrorf prefixes a non-nil err with the operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub returns a + sign*b for same-shaped operands.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	return ewZip(a, b, opTag, func(x, y float64) float64 { return x + sign*y })
}

// Add returns A + B. Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub returns A - B, e.g. the residual X - W·H.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul returns the product A·B for A (r×n) and B (n×c).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch when A.Cols() != B.Rows().
//
// AI-Hints:
//   - Zero entries of A cost nothing; sparse activations multiply fast.
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return product(opMul, viewOf(a, false), viewOf(b, false))
}

// MulTransA returns Aᵀ·B for A (n×r) and B (n×c) without building Aᵀ.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch when A.Rows() != B.Rows().
//
// AI-Hints:
//   - This is the WᵀX and WᵀW product of the multiplicative updates.
func MulTransA(a, b Matrix) (*Dense, error) {
	if err := requireOperands(a, b); err != nil {
		return nil, matrixErrorf(opMulTransA, err)
	}
	if a.Rows() != b.Rows() {
		return nil, matrixErrorf(opMulTransA, ErrDimensionMismatch)
	}

	return product(opMulTransA, viewOf(a, true), viewOf(b, false))
}

// MulTransB returns A·Bᵀ for A (r×n) and B (c×n) without building Bᵀ.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch when A.Cols() != B.Cols().
//
// AI-Hints:
//   - This is the XHᵀ and HHᵀ product of the multiplicative updates.
func MulTransB(a, b Matrix) (*Dense, error) {
	if err := requireOperands(a, b); err != nil {
		return nil, matrixErrorf(opMulTransB, err)
	}
	if a.Cols() != b.Cols() {
		return nil, matrixErrorf(opMulTransB, ErrDimensionMismatch)
	}

	return product(opMulTransB, viewOf(a, false), viewOf(b, true))
}

func requireOperands(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}

	return ValidateNotNil(b)
}

// view reads a Matrix, or its transpose, in logical coordinates.
type view struct {
	m     Matrix
	d     *Dense // non-nil when m is a *Dense
	trans bool
}

func viewOf(m Matrix, trans bool) view {
	d, _ := m.(*Dense)

	return view{m: m, d: d, trans: trans}
}

func (v view) rows() int {
	if v.trans {
		return v.m.Cols()
	}

	return v.m.Rows()
}

func (v view) cols() int {
	if v.trans {
		return v.m.Rows()
	}

	return v.m.Cols()
}

func (v view) at(i, j int) (float64, error) {
	if v.trans {
		i, j = j, i
	}
	if v.d != nil {
		return v.d.data[i*v.d.c+j], nil
	}
	x, err := v.m.At(i, j)
	if err != nil {
		return 0, fmt.Errorf("At(%d,%d): %w", i, j, err)
	}

	return x, nil
}

// contiguousRow returns logical row p when it is a slice of the backing
// buffer, that is for an untransposed *Dense.
func (v view) contiguousRow(p int) ([]float64, bool) {
	if v.d == nil || v.trans {
		return nil, false
	}

	return v.d.data[p*v.d.c : (p+1)*v.d.c], true
}

// product computes C = A·B over logical views, shapes already checked.
//
// Row i of C accumulates A[i,p]·B[p,:] for p = 0..n-1 in ascending order,
// skipping A[i,p] == 0, so every path sums the same terms in the same order
// and *Dense operands give results identical to the generic ones.
//
// Complexity: Time O(r*n*c), Space O(r*c).
func product(tag string, a, b view) (*Dense, error) {
	r, n, c := a.rows(), a.cols(), b.cols()
	res, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	for i := 0; i < r; i++ {
		dst := res.data[i*c : (i+1)*c]
		for p := 0; p < n; p++ {
			av, err := a.at(i, p)
			if err != nil {
				return nil, matrixErrorf(tag, err)
			}
			if av == 0 {
				continue
			}
			if row, ok := b.contiguousRow(p); ok {
				floats.AddScaled(dst, av, row)
				continue
			}
			for j := range dst {
				bv, err := b.at(p, j)
				if err != nil {
					return nil, matrixErrorf(tag, err)
				}
				dst[j] += av * bv
			}
		}
	}

	return res, nil
}

// Transpose returns a new cols×rows matrix holding mᵀ.
//
// AI-Hints:
//   - Inside products use MulTransA/MulTransB instead; they never build mᵀ.
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	t := viewOf(m, true)
	res, err := NewDense(t.rows(), t.cols())
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	for off := range res.data {
		v, err := t.at(off/res.c, off%res.c)
		if err != nil {
			return nil, matrixErrorf(opTranspose, err)
		}
		res.data[off] = v
	}

	return res, nil
}

// Scale returns alpha·m.
func Scale(m Matrix, alpha float64) (*Dense, error) {
	return ewMap(m, opScale, func(_, _ int, v float64) float64 { return v * alpha })
}

// Hadamard returns the element-wise product a ⊙ b, e.g. a soft mask applied
// to a spectrogram. Errors: ErrNilMatrix, ErrDimensionMismatch.
func Hadamard(a, b Matrix) (*Dense, error) {
	return ewZip(a, b, opHadamard, func(x, y float64) float64 { return x * y })
}

// DivGuarded computes the guarded quotient a ⊘ (b + eps), the X ⊘ (V+ε) ratio
// of multiplicative updates. eps must be ≥ 0; with b ≥ 0 and eps > 0 the
// result is always finite.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrOutOfRange (eps < 0 or NaN).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func DivGuarded(a, b Matrix, eps float64) (*Dense, error) {
	if !(eps >= 0) {
		return nil, matrixErrorf(opDivGuarded, fmt.Errorf("eps=%g: %w", eps, ErrOutOfRange))
	}
	return ewZip(a, b, opDivGuarded, func(x, y float64) float64 { return x / (y + eps) })
}

// FrobeniusNorm returns ‖m‖_F = sqrt(Σ m[i,j]²).
func FrobeniusNorm(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opFrobenius, err)
	}
	var sum float64
	if dm, ok := m.(*Dense); ok {
		for _, v := range dm.data {
			sum += v * v
		}
		return math.Sqrt(sum), nil
	}

	rows, cols := m.Rows(), m.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return 0, matrixErrorf(opFrobenius, err)
			}
			sum += v * v
		}
	}

	return math.Sqrt(sum), nil
}
