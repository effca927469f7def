// SPDX-License-Identifier: MIT

package nmf

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvnmf/matrix"
)

const opNMF = "NMF"

// NMF factorizes the 2-D array x into H (k×m) and W (n×k) and returns them
// in that order, matching the classic audio NMF call
//
//	nmf(X, k, max_iter=300, update_rule=0, convergence_threshold=1e-3, normalize_mode=0) -> (H, W)
//
// x may have any rank; anything other than a non-empty 2-D array yields
// ErrShape. Use Factorize for the full Result (iterations, history).
func NMF(x *matrix.NDArray, k int, opts ...Option) (h, w *matrix.Dense, err error) {
	if x == nil {
		return nil, nil, fmt.Errorf("%s: %w", opNMF, ErrNilInput)
	}
	xd, err := x.AsDense()
	if err != nil {
		if errors.Is(err, matrix.ErrNaNInf) {
			return nil, nil, fmt.Errorf("%s: %w: %w", opNMF, ErrNaNInf, err)
		}
		return nil, nil, fmt.Errorf("%s: shape %v: %w", opNMF, x.Shape(), ErrShape)
	}

	res, err := Factorize(xd, k, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opNMF, err)
	}

	return res.H, res.W, nil
}
