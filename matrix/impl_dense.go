// SPDX-License-Identifier: MIT

// Package matrix - Dense, the row-major storage every kernel in this module
// produces.
//
// Layout:
//   - One flat []float64 of length rows*cols; element (i, j) lives at i*cols + j.
//   - Spectrograms arrive as bins×frames, so a row is one frequency bin over
//     time and W·H products stay contiguous per bin.
//
// Contract:
//   - At/Set report ErrOutOfRange instead of panicking.
//   - Set and Apply honor the finite-only policy captured at construction.
//   - Data hands out the live buffer; the factorization solvers update W and
//     H through it without going back through Set.
//
// AI-Hints:
//   - Hot loops should type-assert *Dense and walk Data directly (see
//     ops_elementwise.go); At is for the generic Matrix fallback.
//
// Costs: NewDense O(r*c) zeroing, NewDenseFrom O(r*c) scan+copy, At/Set O(1).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// Method tags for denseErrorf.
const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxApply    = "Apply"
	ctxFrom     = "NewDenseFrom"
	ctxSequence = "NewSequential"
)

// denseErrorf yields "Dense.<method>(row,col): <cause>" and keeps the cause
// reachable through errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix with a fixed shape.
type Dense struct {
	r, c           int
	data           []float64 // len == r*c
	validateNaNInf bool      // Set/Apply refuse NaN and ±Inf when true
}

var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense allocates a rows×cols matrix of zeros under the default
// finite-only policy. Both dimensions must be positive; a 0×n matrix is
// rejected with ErrInvalidDimensions rather than silently created.
func NewDense(rows, cols int) (*Dense, error) {
	return newDenseWithPolicy(rows, cols, DefaultValidateNaNInf)
}

// NewDenseFrom copies data, read row by row, into a new rows×cols matrix.
// The caller keeps ownership of data.
//
// Unless WithNoValidateNaNInf is passed, the first non-finite value is
// reported with its (row, col) position.
//
// Errors:
//   - ErrInvalidDimensions when rows or cols is not positive.
//   - ErrBadShape when len(data) != rows*cols.
//   - ErrNaNInf under the finite-only policy.
func NewDenseFrom(rows, cols int, data []float64, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if want := rows * cols; len(data) != want {
		return nil, fmt.Errorf("%s: len=%d want %d: %w", ctxFrom, len(data), want, ErrBadShape)
	}

	o := gatherOptions(opts...)
	if o.validateNaNInf {
		for off, v := range data {
			if isNonFinite(v) {
				return nil, denseErrorf(ctxFrom, off/cols, off%cols, ErrNaNInf)
			}
		}
	}

	return &Dense{
		r:              rows,
		c:              cols,
		data:           append([]float64(nil), data...),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewSequential returns a rows×cols matrix holding 1, 2, …, rows*cols in
// row-major order. The solvers use it as their reproducible starting point.
func NewSequential(rows, cols int) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxSequence, err)
	}
	for off := range m.data {
		m.data[off] = float64(off + 1)
	}

	return m, nil
}

// newDenseWithPolicy is NewDense with an explicit finite-only flag.
func newDenseWithPolicy(rows, cols int, validateNaNInf bool) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols), validateNaNInf: validateNaNInf}, nil
}

func (m *Dense) Rows() int { return m.r }

func (m *Dense) Cols() int { return m.c }

// Shape returns (Rows(), Cols()).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Data returns the backing slice itself. Writes through it skip the
// finite-only policy.
func (m *Dense) Data() []float64 { return m.data }

// Float32 returns a single-precision copy in row-major order.
func (m *Dense) Float32() []float32 {
	out := make([]float32, len(m.data))
	for off, v := range m.data {
		out[off] = float32(v)
	}

	return out
}

// offset maps (row, col) to a position in data, or returns a bare
// ErrOutOfRange for the caller to decorate.
func (m *Dense) offset(row, col int) (int, error) {
	if uint(row) >= uint(m.r) || uint(col) >= uint(m.c) {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At reads element (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.offset(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set writes v at (row, col). It fails with ErrOutOfRange for a bad index
// and, under the finite-only policy, with ErrNaNInf for NaN or ±Inf.
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.offset(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns an independent copy with the same policy.
func (m *Dense) Clone() Matrix { return m.clone() }

func (m *Dense) clone() *Dense {
	cp := *m
	cp.data = append([]float64(nil), m.data...)

	return &cp
}

// String prints one bracketed, comma-separated line per row, e.g.
//
//	[1, 2]
//	[3, 4.5]
//
// Meant for debugging small matrices.
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteByte('[')
		for j, v := range m.data[i*m.c : (i+1)*m.c] {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		b.WriteString("]\n")
	}

	return b.String()
}

// Do visits elements row by row and stops as soon as f returns false.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	for off, v := range m.data {
		if !f(off/m.c, off%m.c, v) {
			return
		}
	}
}

// Apply overwrites every element with f(i, j, v), row by row.
//
// Under the finite-only policy a NaN or ±Inf result stops the walk with
// ErrNaNInf; elements already visited keep their new values and the
// offending one keeps its old value.
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	for off, v := range m.data {
		i, j := off/m.c, off%m.c
		nv := f(i, j, v)
		if m.validateNaNInf && isNonFinite(nv) {
			return denseErrorf(ctxApply, i, j, ErrNaNInf)
		}
		m.data[off] = nv
	}

	return nil
}
