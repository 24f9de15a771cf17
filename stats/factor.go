// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// rankTol scales the largest singular value to give the threshold
// below which a singular value counts as zero.
const rankTol = 1e-12

// A factor is a square root of a covariance matrix Σ, either its
// Cholesky factor or, for singular Σ, one built from its singular value
// decomposition.
type factor interface {
	// mahalanobis returns dᵀΣ⁺d, using the pseudo-inverse when Σ
	// is singular.
	mahalanobis(d []float64) float64

	// transform sets dst to A z where A Aᵀ = Σ.
	transform(dst, z []float64)

	// logDet returns the log of the (pseudo-)determinant of Σ.
	logDet() float64

	// rank returns the number of nonzero eigenvalues of Σ.
	rank() int
}

// factorize returns a Cholesky factor of cov if it is positive
// definite and an SVD factor otherwise.
func factorize(cov *mat.SymDense) (factor, error) {
	var chol mat.Cholesky
	if chol.Factorize(cov) {
		f := &cholFactor{det: chol.LogDet()}
		chol.LTo(&f.l)
		return f, nil
	}

	var svd mat.SVD
	if !svd.Factorize(cov, mat.SVDFull) {
		return nil, errors.New("stats: singular value decomposition of covariance failed")
	}
	n := cov.SymmetricDim()
	f := &svdFactor{s: svd.Values(nil), r: svd.Rank(rankTol)}
	if f.r == 0 {
		return nil, &ParamError{Param: "cov", Reason: "covariance is zero"}
	}
	log.Debugf("covariance is not positive definite, using rank %d of %d", f.r, n)
	svd.UTo(&f.u)
	for _, v := range f.s[:f.r] {
		f.det += math.Log(v)
	}
	return f, nil
}

type cholFactor struct {
	l   mat.TriDense
	det float64
}

func (f *cholFactor) mahalanobis(d []float64) float64 {
	var z mat.VecDense
	err := z.SolveVec(&f.l, mat.NewVecDense(len(d), d))
	var cond mat.Condition
	if err != nil && !errors.As(err, &cond) {
		panic(err)
	}
	return mat.Dot(&z, &z)
}

func (f *cholFactor) transform(dst, z []float64) {
	x := mat.NewVecDense(len(dst), dst)
	x.MulVec(&f.l, mat.NewVecDense(len(z), z))
}

func (f *cholFactor) logDet() float64 { return f.det }

func (f *cholFactor) rank() int {
	n, _ := f.l.Triangle()
	return n
}

type svdFactor struct {
	u   mat.Dense
	s   []float64
	r   int
	det float64
}

func (f *svdFactor) mahalanobis(d []float64) float64 {
	var t mat.VecDense
	t.MulVec(f.u.T(), mat.NewVecDense(len(d), d))
	var m float64
	for i := 0; i < f.r; i++ {
		v := t.AtVec(i)
		m += v * v / f.s[i]
	}
	return m
}

func (f *svdFactor) transform(dst, z []float64) {
	w := make([]float64, len(z))
	for i := 0; i < f.r; i++ {
		w[i] = math.Sqrt(f.s[i]) * z[i]
	}
	x := mat.NewVecDense(len(dst), dst)
	x.MulVec(&f.u, mat.NewVecDense(len(w), w))
}

func (f *svdFactor) logDet() float64 { return f.det }

func (f *svdFactor) rank() int { return f.r }
