// SPDX-License-Identifier: MIT
// Package: matrix
//
// Argument checks shared by every kernel: nil operands, shape agreement and
// entry scans (finite, non-negative). Each validator prefixes its own name
// to the sentinel it returns, so a failure inside Mul reads
// "Mul: ValidateMulCompatible: matrix: dimension mismatch".
//
// Scans walk the flat buffer of a *Dense and fall back to At otherwise;
// none of them allocate.

package matrix

import (
	"fmt"
)

// validatorErrorf prefixes err with the validator name.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil rejects a nil Matrix, including a typed nil *Dense,
// with ErrNilMatrix.
func ValidateNotNil(m Matrix) error {
	if d, ok := m.(*Dense); m == nil || (ok && d == nil) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape reports ErrDimensionMismatch unless a and b agree in
// both dimensions. Neither operand may be nil.
func ValidateSameShape(a, b Matrix) error {
	ar, ac := a.Rows(), a.Cols()
	br, bc := b.Rows(), b.Cols()
	if ar != br || ac != bc {
		return validatorErrorf("ValidateSameShape",
			fmt.Errorf("%dx%d vs %dx%d: %w", ar, ac, br, bc, ErrDimensionMismatch))
	}

	return nil
}

// ValidateVecLen checks that x is non-nil and has exactly n entries.
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix) // reuse the sentinel for "nil argument"
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape runs ValidateNotNil on both operands, then
// ValidateSameShape.
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateMulCompatible checks that a·b is defined: both non-nil and
// a.Cols() == b.Rows().
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite reports the first NaN or ±Inf entry as ErrNaNInf with its
// coordinates.
func ValidateFinite(m Matrix) error {
	return scanEntries(m, "ValidateFinite", func(v float64) error {
		if isNonFinite(v) {
			return ErrNaNInf
		}
		return nil
	})
}

// ValidateNonNegative requires every entry to be finite and ≥ 0. A
// non-finite entry yields ErrNaNInf, a negative one ErrNegative; the first
// failing entry in row-major order decides which.
//
// AI-Hints: Multiplicative updates keep factors non-negative only when X is.
func ValidateNonNegative(m Matrix) error {
	return scanEntries(m, "ValidateNonNegative", func(v float64) error {
		if isNonFinite(v) {
			return ErrNaNInf
		}
		if v < 0 {
			return ErrNegative
		}
		return nil
	})
}

// scanEntries applies check to each entry in row-major order and stops at
// the first error, decorated with "(i,j)".
func scanEntries(m Matrix, tag string, check func(v float64) error) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf(tag, err)
	}
	rows, cols := m.Rows(), m.Cols()

	if d, ok := m.(*Dense); ok {
		for idx, v := range d.data {
			if err := check(v); err != nil {
				return validatorErrorf(tag, fmt.Errorf("(%d,%d): %w", idx/cols, idx%cols, err))
			}
		}
		return nil
	}

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return validatorErrorf(tag, err)
			}
			if err = check(v); err != nil {
				return validatorErrorf(tag, fmt.Errorf("(%d,%d): %w", i, j, err))
			}
		}
	}

	return nil
}
