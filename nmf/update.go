// SPDX-License-Identifier: MIT

package nmf

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvnmf/matrix"
)

// Multiplicative updates. Every rule has the shape
//
//	F ← F ⊙ Num / (Den + ε)
//
// with non-negative Num and Den, so F stays non-negative. The ratio arrays
// shared by H and W steps are built from the current reconstruction V.
//
// Operation tags used when wrapping kernel errors.
const (
	opUpdateH = "updateH"
	opUpdateW = "updateW"
)

// applyRatio performs f[i] *= num[i] / (den[i] + eps) in place.
// num and den are scratch and are overwritten.
func applyRatio(f, num, den []float64, eps float64) {
	floats.AddConst(eps, den)
	floats.Div(num, den)
	floats.Mul(f, num)
}

// ratios holds the element-wise quotients of X and V used by KL and IS.
type ratios struct {
	xv *matrix.Dense // KL: X ⊘ (V+ε); IS: X ⊘ (V²+ε)
	iv *matrix.Dense // IS only: 1 ⊘ (V+ε)
}

// buildRatios derives the quotient matrices for rule from X and V.
// Euclidean needs none and returns a zero value.
func buildRatios(rule UpdateRule, x, v *matrix.Dense, eps float64) (ratios, error) {
	if rule == RuleEuclidean {
		return ratios{}, nil
	}
	if rule == RuleKL {
		xv, err := matrix.DivGuarded(x, v, eps)
		if err != nil {
			return ratios{}, err
		}
		return ratios{xv: xv}, nil
	}

	rows, cols := x.Shape()
	xv, err := matrix.NewDense(rows, cols)
	if err != nil {
		return ratios{}, err
	}
	xs, vs, out := x.Data(), v.Data(), xv.Data()

	iv, err := matrix.NewDense(rows, cols)
	if err != nil {
		return ratios{}, err
	}
	inv := iv.Data()
	for i := range out {
		out[i] = xs[i] / (vs[i]*vs[i] + eps)
		inv[i] = 1 / (vs[i] + eps)
	}

	return ratios{xv: xv, iv: iv}, nil
}

// updateH applies one multiplicative step to H (k×m) given W, X and V = W·H.
//
//   - Euclidean: H ⊙ (WᵀX) / (WᵀW·H + ε)
//   - KL:        H ⊙ (Wᵀ(X⊘V)) / (Wᵀ1 + ε)
//   - IS:        H ⊙ (Wᵀ(X⊘V²)) / (Wᵀ(1⊘V) + ε)
func updateH(rule UpdateRule, x, w, h, v *matrix.Dense, eps float64) error {
	r, err := buildRatios(rule, x, v, eps)
	if err != nil {
		return wrapKernel(opUpdateH, err)
	}

	var num, den *matrix.Dense
	switch rule {
	case RuleEuclidean:
		if num, err = matrix.MulTransA(w, x); err != nil {
			return wrapKernel(opUpdateH, err)
		}
		wtw, err := matrix.MulTransA(w, w)
		if err != nil {
			return wrapKernel(opUpdateH, err)
		}
		if den, err = matrix.Mul(wtw, h); err != nil {
			return wrapKernel(opUpdateH, err)
		}
	case RuleKL:
		if num, err = matrix.MulTransA(w, r.xv); err != nil {
			return wrapKernel(opUpdateH, err)
		}
		// Wᵀ1 has identical columns: entry (a, ·) is the sum of W's column a.
		colSums, err := matrix.ColumnNorms(w, matrix.NormL1)
		if err != nil {
			return wrapKernel(opUpdateH, err)
		}
		if den, err = broadcastRows(colSums, h.Cols()); err != nil {
			return wrapKernel(opUpdateH, err)
		}
	default: // RuleIS
		if num, err = matrix.MulTransA(w, r.xv); err != nil {
			return wrapKernel(opUpdateH, err)
		}
		if den, err = matrix.MulTransA(w, r.iv); err != nil {
			return wrapKernel(opUpdateH, err)
		}
	}

	applyRatio(h.Data(), num.Data(), den.Data(), eps)

	return nil
}

// updateW applies one multiplicative step to W (n×k) given H, X and V = W·H.
//
//   - Euclidean: W ⊙ (XHᵀ) / (W·HHᵀ + ε)
//   - KL:        W ⊙ ((X⊘V)Hᵀ) / (1Hᵀ + ε)
//   - IS:        W ⊙ ((X⊘V²)Hᵀ) / ((1⊘V)Hᵀ + ε)
func updateW(rule UpdateRule, x, w, h, v *matrix.Dense, eps float64) error {
	r, err := buildRatios(rule, x, v, eps)
	if err != nil {
		return wrapKernel(opUpdateW, err)
	}

	var num, den *matrix.Dense
	switch rule {
	case RuleEuclidean:
		if num, err = matrix.MulTransB(x, h); err != nil {
			return wrapKernel(opUpdateW, err)
		}
		hht, err := matrix.MulTransB(h, h)
		if err != nil {
			return wrapKernel(opUpdateW, err)
		}
		if den, err = matrix.Mul(w, hht); err != nil {
			return wrapKernel(opUpdateW, err)
		}
	case RuleKL:
		if num, err = matrix.MulTransB(r.xv, h); err != nil {
			return wrapKernel(opUpdateW, err)
		}
		// 1Hᵀ has identical rows: entry (·, a) is the sum of H's row a.
		k, m := h.Shape()
		rowSums := make([]float64, k)
		hd := h.Data()
		for a := 0; a < k; a++ {
			rowSums[a] = floats.Sum(hd[a*m : (a+1)*m])
		}
		if den, err = broadcastCols(rowSums, w.Rows()); err != nil {
			return wrapKernel(opUpdateW, err)
		}
	default: // RuleIS
		if num, err = matrix.MulTransB(r.xv, h); err != nil {
			return wrapKernel(opUpdateW, err)
		}
		if den, err = matrix.MulTransB(r.iv, h); err != nil {
			return wrapKernel(opUpdateW, err)
		}
	}

	applyRatio(w.Data(), num.Data(), den.Data(), eps)

	return nil
}

// broadcastRows returns a len(v)×cols matrix whose row a is filled with v[a].
func broadcastRows(v []float64, cols int) (*matrix.Dense, error) {
	ones, err := matrix.NewDense(len(v), cols)
	if err != nil {
		return nil, err
	}
	d := ones.Data()
	for i := range d {
		d[i] = 1
	}

	return matrix.ScaleRows(ones, v)
}

// broadcastCols returns a rows×len(v) matrix whose column a is filled with v[a].
func broadcastCols(v []float64, rows int) (*matrix.Dense, error) {
	ones, err := matrix.NewDense(rows, len(v))
	if err != nil {
		return nil, err
	}
	d := ones.Data()
	for i := range d {
		d[i] = 1
	}

	return matrix.ScaleColumns(ones, v)
}
