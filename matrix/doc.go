// SPDX-License-Identifier: MIT

// Package matrix provides dense row-major float64 matrices and the kernels
// the factorization solvers are built from.
//
// The matrix package provides:
//
//   - Dense, a contiguous row-major matrix with bounds-checked At/Set and a
//     configurable finite-value policy (NaN/Inf rejected by default).
//   - NDArray, a shaped container that carries arbitrary-rank input to APIs
//     that accept exactly two dimensions (AsDense performs the rank check).
//   - Allocation-per-call kernels: Mul, MulTransA (AᵀB), MulTransB (ABᵀ),
//     Transpose, Hadamard, Add, Sub, Scale, ScaleColumns, ScaleRows,
//     ColumnNorms, FrobeniusNorm and AllClose. Every kernel has a *Dense
//     fast path and a generic At-based fallback with identical results.
//   - Central validators (ValidateNotNil, ValidateNonNegative, ...) returning
//     sentinel errors that callers match with errors.Is.
//   - Interop with gonum (ToGonum, FromGonum) and CSV (ReadCSV, WriteCSV).
//
// All loops run in a fixed order, so identical inputs give bit-identical
// outputs. Operands are never mutated.
//
// example_test.go shows typical calls.
package matrix
