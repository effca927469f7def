// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvnmf/matrix"
)

// ExampleMulTransA multiplies by an implicit transpose, the WᵀX product of
// multiplicative-update solvers.
func ExampleMulTransA() {
	w, _ := matrix.NewDenseFrom(2, 1, []float64{1, 2})
	x, _ := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3, 4})

	wtx, _ := matrix.MulTransA(w, x)
	fmt.Print(wtx)

	// Output:
	// [7, 10]
}

// ExampleNDArray_AsDense shows the rank check at the API boundary.
func ExampleNDArray_AsDense() {
	flat, _ := matrix.NewNDArray([]int{4}, []float64{1, 2, 3, 4})
	_, err := flat.AsDense()
	fmt.Println(err)

	sq, _ := matrix.NewNDArray([]int{2, 2}, []float64{1, 2, 3, 4})
	m, _ := sq.AsDense()
	fmt.Print(m)

	// Output:
	// NDArray.AsDense: ndim=1: matrix: invalid shape
	// [1, 2]
	// [3, 4]
}

// ExampleColumnNorms normalizes columns to unit L1 mass.
func ExampleColumnNorms() {
	m, _ := matrix.NewDenseFrom(2, 2, []float64{1, 3, 3, 1})
	norms, _ := matrix.ColumnNorms(m, matrix.NormL1)
	inv := []float64{1 / norms[0], 1 / norms[1]}
	unit, _ := matrix.ScaleColumns(m, inv)
	fmt.Print(unit)

	// Output:
	// [0.25, 0.75]
	// [0.75, 0.25]
}
