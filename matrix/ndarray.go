// SPDX-License-Identifier: MIT

// Package matrix - NDArray: shaped, row-major, untyped-rank input container.
//
// Purpose:
//   - Carry arbitrary-rank numeric input (1-D signal, 2-D matrix, 3-D stack)
//     into APIs that accept exactly one rank, so the rank check happens at the
//     API boundary and is reported with a dedicated error instead of a type error.
//   - Convert to Dense when (and only when) the array is 2-D.
//
// Complexity quicksheet:
//   - NewNDArray: O(len) copy; AsDense: O(len) copy + policy scan; Shape: O(ndim).

package matrix

import "fmt"

const (
	ctxNDArray = "NDArray"
	ctxAsDense = "NDArray.AsDense"
)

// NDArray is a row-major n-dimensional array of float64 values.
// The zero value is an empty 0-D array and is never valid input to AsDense.
type NDArray struct {
	shape []int     // axis lengths, outermost first
	data  []float64 // row-major values, len == prod(shape)
}

// NewNDArray builds an array with the given shape from a row-major slice (copied).
//
// Errors:
//   - ErrBadShape when shape is empty, any axis is negative, or len(data) != prod(shape).
//
// Complexity: Time O(len(data)), Space O(len(data)).
func NewNDArray(shape []int, data []float64) (*NDArray, error) {
	size, err := shapeSize(shape)
	if err != nil {
		return nil, err
	}
	if len(data) != size {
		return nil, fmt.Errorf("%s: len=%d want %d: %w", ctxNDArray, len(data), size, ErrBadShape)
	}
	sh := make([]int, len(shape))
	copy(sh, shape)
	buf := make([]float64, len(data))
	copy(buf, data)

	return &NDArray{shape: sh, data: buf}, nil
}

// NewNDArrayFloat32 is NewNDArray for single-precision producers.
// Values are widened to float64 exactly.
func NewNDArrayFloat32(shape []int, data []float32) (*NDArray, error) {
	wide := make([]float64, len(data))
	for idx, v := range data {
		wide[idx] = float64(v)
	}

	return NewNDArray(shape, wide)
}

// Vector wraps a 1-D slice as an NDArray.
func Vector(data []float64) *NDArray {
	a, _ := NewNDArray([]int{len(data)}, data) // a 1-D shape always matches

	return a
}

// FromDense lifts a Dense into a 2-D NDArray (copy).
func FromDense(m *Dense) (*NDArray, error) {
	if m == nil {
		return nil, fmt.Errorf("%s: %w", ctxNDArray, ErrNilMatrix)
	}

	return NewNDArray([]int{m.r, m.c}, m.data)
}

// NDim returns the number of axes.
func (a *NDArray) NDim() int { return len(a.shape) }

// Shape returns a copy of the axis lengths.
func (a *NDArray) Shape() []int {
	out := make([]int, len(a.shape))
	copy(out, a.shape)

	return out
}

// Len returns the total number of elements.
func (a *NDArray) Len() int { return len(a.data) }

// AsDense converts a 2-D array with positive dimensions into a Dense (copy).
// The numeric policy options are forwarded to NewDenseFrom.
//
// Errors:
//   - ErrNilMatrix for a nil receiver.
//   - ErrBadShape when NDim() != 2 or either axis is zero.
//   - ErrNaNInf under the default numeric policy.
func (a *NDArray) AsDense(opts ...Option) (*Dense, error) {
	if a == nil {
		return nil, fmt.Errorf("%s: %w", ctxAsDense, ErrNilMatrix)
	}
	if len(a.shape) != 2 {
		return nil, fmt.Errorf("%s: ndim=%d: %w", ctxAsDense, len(a.shape), ErrBadShape)
	}
	if a.shape[0] == 0 || a.shape[1] == 0 {
		return nil, fmt.Errorf("%s: shape=%v: %w", ctxAsDense, a.shape, ErrBadShape)
	}
	m, err := NewDenseFrom(a.shape[0], a.shape[1], a.data, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxAsDense, err)
	}

	return m, nil
}

// shapeSize validates a shape and returns the product of its axes.
func shapeSize(shape []int) (int, error) {
	if len(shape) == 0 {
		return 0, fmt.Errorf("%s: empty shape: %w", ctxNDArray, ErrBadShape)
	}
	size := 1
	for _, n := range shape {
		if n < 0 {
			return 0, fmt.Errorf("%s: shape=%v: %w", ctxNDArray, shape, ErrBadShape)
		}
		size *= n
	}

	return size, nil
}
