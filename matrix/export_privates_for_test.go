// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private kernels and policy helpers.
//
// Purpose:
//   - Expose UNEXPORTED ew* micro-kernels and policy constructors to matrix_test ONLY.
//   - Enable white-box verification of fast-path (*Dense) vs generic fallback, without widening the prod API.
//
// Build Policy:
//   - The _test.go suffix keeps this file out of production builds.
//
// AI-Hints:
//   - Keep ALL test-only bridges co-located here.
//   - If a private helper changes signature, mirror the change here once, not across many tests.

var (
	// ExportedNewDenseWithPolicy exposes newDenseWithPolicy for white-box tests.
	ExportedNewDenseWithPolicy = newDenseWithPolicy
)

// EwBroadcastMulCols_TestOnly forwards to ewBroadcastMulCols.
func EwBroadcastMulCols_TestOnly(X Matrix, scale []float64) (*Dense, error) {
	return ewBroadcastMulCols(X, scale, "test")
}

// EwBroadcastMulRows_TestOnly forwards to ewBroadcastMulRows.
func EwBroadcastMulRows_TestOnly(X Matrix, scale []float64) (*Dense, error) {
	return ewBroadcastMulRows(X, scale, "test")
}

// EwMaxAbsDiff_TestOnly forwards to ewMaxAbsDiff.
func EwMaxAbsDiff_TestOnly(a, b Matrix) (float64, error) {
	return ewMaxAbsDiff(a, b)
}

// ValidateNaNInfOf_TestOnly reports the numeric policy a Dense carries.
func ValidateNaNInfOf_TestOnly(m *Dense) bool {
	return m.validateNaNInf
}
