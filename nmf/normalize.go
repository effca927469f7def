// SPDX-License-Identifier: MIT

package nmf

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvnmf/matrix"
)

const opNormalize = "normalize"

// normalize rescales every column j of W to unit norm under mode and
// multiplies row j of H by the same factor, leaving W·H unchanged.
// All-zero columns (norm 0) are left as they are. NormalizeNone is a no-op.
//
// Complexity: Time O(n·k + k·m), Space O(k).
func normalize(mode NormalizeMode, w, h *matrix.Dense) error {
	if mode == NormalizeNone {
		return nil
	}
	norms, err := matrix.ColumnNorms(w, mode.normKind())
	if err != nil {
		return wrapKernel(opNormalize, err)
	}

	n, k := w.Shape()
	m := h.Cols()
	wd, hd := w.Data(), h.Data()
	for j, s := range norms {
		if s == 0 {
			continue
		}
		inv := 1 / s
		for i := 0; i < n; i++ {
			wd[i*k+j] *= inv
		}
		floats.Scale(s, hd[j*m:(j+1)*m])
	}

	return nil
}
