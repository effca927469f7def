// SPDX-License-Identifier: MIT

package nmf

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvnmf/matrix"
)

// errSVDFailed reports a non-converged SVD during NNDSVD seeding. The solver
// falls back to sequential seeding when it sees this error.
var errSVDFailed = errors.New("nmf: SVD did not converge")

// seedSequential returns W (n×k) filled with 1..n·k and H (k×m) filled with
// 1..k·m, both row-major.
func seedSequential(n, m, k int) (w, h *matrix.Dense, err error) {
	if w, err = matrix.NewSequential(n, k); err != nil {
		return nil, nil, err
	}
	if h, err = matrix.NewSequential(k, m); err != nil {
		return nil, nil, err
	}

	return w, h, nil
}

// seedNNDSVD seeds W and H with NNDSVDa (Boutsidis & Gallopoulos, 2008).
// Implementation:
//   - Stage 1: thin SVD X = U·Σ·Vᵀ via gonum.
//   - Stage 2: the leading triplet gives W[:,0] = √σ₀·|u₀| and H[0,:] = √σ₀·|v₀|.
//   - Stage 3: for j ≥ 1 keep the dominant sign-part (u⁺,v⁺) or (u⁻,v⁻) of the
//     j-th triplet, scaled by √(σⱼ·‖u±‖·‖v±‖).
//   - Stage 4: entries below eps are zeroed, then every zero becomes mean(X).
//
// Determinism:
//   - gonum's SVD is deterministic for identical input, so the seeding is too.
//
// Complexity:
//   - Time O(n·m·min(n,m)) for the SVD, O((n+m)·k) for the fill.
func seedNNDSVD(x *matrix.Dense, k int, eps float64) (w, h *matrix.Dense, err error) {
	n, m := x.Shape()
	gx, err := matrix.ToGonum(x)
	if err != nil {
		return nil, nil, err
	}

	var svd mat.SVD
	if ok := svd.Factorize(gx, mat.SVDThin); !ok {
		return nil, nil, errSVDFailed
	}
	sigma := svd.Values(nil)
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	if w, err = matrix.NewDense(n, k); err != nil {
		return nil, nil, err
	}
	if h, err = matrix.NewDense(k, m); err != nil {
		return nil, nil, err
	}
	wd, hd := w.Data(), h.Data()

	uc := make([]float64, n)
	vc := make([]float64, m)
	up, un := make([]float64, n), make([]float64, n)
	vp, vn := make([]float64, m), make([]float64, m)

	for j := 0; j < k; j++ {
		mat.Col(uc, j, &u)
		mat.Col(vc, j, &v)

		var (
			uSel, vSel []float64
			scale      float64
		)
		if j == 0 {
			absInto(up, uc)
			absInto(vp, vc)
			uSel, vSel, scale = up, vp, math.Sqrt(sigma[0])
		} else {
			splitSigns(up, un, uc)
			splitSigns(vp, vn, vc)
			upn, vpn := floats.Norm(up, 2), floats.Norm(vp, 2)
			unn, vnn := floats.Norm(un, 2), floats.Norm(vn, 2)
			mp, mn := upn*vpn, unn*vnn

			switch {
			case mp > mn:
				floats.Scale(1/upn, up)
				floats.Scale(1/vpn, vp)
				uSel, vSel, scale = up, vp, math.Sqrt(sigma[j]*mp)
			case mn > 0:
				floats.Scale(1/unn, un)
				floats.Scale(1/vnn, vn)
				uSel, vSel, scale = un, vn, math.Sqrt(sigma[j]*mn)
			default:
				continue // degenerate triplet: the column stays zero and is filled below
			}
		}

		for i := 0; i < n; i++ {
			wd[i*k+j] = scale * uSel[i]
		}
		for c := 0; c < m; c++ {
			hd[j*m+c] = scale * vSel[c]
		}
	}

	avg := floats.Sum(x.Data()) / float64(n*m)
	fillSmall(wd, eps, avg)
	fillSmall(hd, eps, avg)

	return w, h, nil
}

// absInto writes |src| into dst.
func absInto(dst, src []float64) {
	for i, v := range src {
		dst[i] = math.Abs(v)
	}
}

// splitSigns writes max(src,0) into pos and max(-src,0) into neg.
func splitSigns(pos, neg, src []float64) {
	for i, v := range src {
		pos[i], neg[i] = math.Max(v, 0), math.Max(-v, 0)
	}
}

// fillSmall replaces every entry below eps with fill.
func fillSmall(s []float64, eps, fill float64) {
	for i, v := range s {
		if v < eps {
			s[i] = fill
		}
	}
}
