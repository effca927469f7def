// SPDX-License-Identifier: MIT

// Package matrix: the Matrix interface and the NormKind enum.
package matrix

// Matrix is a mutable rows×cols grid of float64 values. *Dense is the only
// implementation in this module; kernels accept any Matrix and read through
// At when the operand is not a *Dense.
type Matrix interface {
	Rows() int
	Cols() int

	// At returns element (i, j), or ErrOutOfRange for an index outside the shape.
	At(i, j int) (float64, error)

	// Set writes element (i, j). Implementations may refuse values
	// (ErrNaNInf) as well as bad indices (ErrOutOfRange).
	Set(i, j int, v float64) error

	// Clone returns a copy that shares no storage with the receiver.
	Clone() Matrix
}

// NormKind selects the vector norm used by ColumnNorms and friends.
// Ordinals are stable; they are persisted in run configs.
type NormKind int

const (
	// NormL1 is the sum of absolute values.
	NormL1 NormKind = iota + 1

	// NormL2 is the Euclidean norm.
	NormL2

	// NormMax is the maximum absolute value.
	NormMax
)

// String returns the lower-case name of the norm.
func (k NormKind) String() string {
	switch k {
	case NormL1:
		return "l1"
	case NormL2:
		return "l2"
	case NormMax:
		return "max"
	default:
		return "unknown"
	}
}
