// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/samplemv"

	"github.com/statnum/mvnorm/mathx"
)

var (
	_ MultiDist            = (*MultivariateNormal)(nil)
	_ distmv.Quantiler     = (*MultivariateNormal)(nil)
	_ distmv.RandLogProber = (*MultivariateNormal)(nil)
)

// Quantile maps p from the unit hypercube to the distribution: each
// p[i] is sent through the standard normal inverse CDF and the result
// is multiplied by a square root of the covariance and shifted by the
// mean. Uniform p gives a sample from m.
//
// The result is stored in dst, which is allocated if nil. Quantile
// panics if p or a non-nil dst does not have length Dim. Elements of p
// equal to 0 or 1 map to ∓9 standard deviations.
func (m *MultivariateNormal) Quantile(dst, p []float64) []float64 {
	n := m.Dim()
	if len(p) != n {
		panic("stats: quantile length mismatch")
	}
	z := make([]float64, n)
	for i, v := range p {
		z[i] = mathx.NormalInvCDF(v)
	}
	return m.affine(dst, z)
}

// InverseCDF is like Quantile but returns an error for invalid
// probabilities instead of panicking.
func (m *MultivariateNormal) InverseCDF(p []float64) ([]float64, error) {
	if err := m.check("p", p); err != nil {
		return nil, err
	}
	for i, v := range p {
		if v < 0 || v > 1 {
			return nil, &ParamError{Param: "p", Reason: fmt.Sprintf("element %d = %g outside [0, 1]", i, v)}
		}
	}
	return m.Quantile(nil, p), nil
}

// Rand returns a random sample drawn from m using m.Src. The sample is
// stored in dst, which is allocated if nil.
func (m *MultivariateNormal) Rand(dst []float64) []float64 {
	rnd := rand.New(m.source())
	z := make([]float64, m.Dim())
	for i := range z {
		z[i] = rnd.NormFloat64()
	}
	return m.affine(dst, z)
}

// LatinHypercube returns n samples from m, one per row, using Latin
// hypercube sampling: along every variable each of n equal probability
// strata holds exactly one sample. n must be positive.
func (m *MultivariateNormal) LatinHypercube(n int) *mat.Dense {
	batch := mat.NewDense(n, m.Dim(), nil)
	samplemv.LatinHypercube{Q: m, Src: m.source()}.Sample(batch)
	return batch
}

// affine returns μ + A z in dst, where A Aᵀ = Σ.
func (m *MultivariateNormal) affine(dst, z []float64) []float64 {
	n := m.Dim()
	if dst == nil {
		dst = make([]float64, n)
	}
	if len(dst) != n {
		panic("stats: destination length mismatch")
	}
	m.fact.transform(dst, z)
	floats.Add(dst, m.mean)
	return dst
}
