// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/mathext/prng"

	"github.com/statnum/mvnorm/integrate"
	"github.com/statnum/mvnorm/mathx"
	"github.com/statnum/mvnorm/mvncdf"
)

// DefaultAbsTol is the absolute error tolerance set by the
// MultivariateNormal constructors.
const DefaultAbsTol = 1e-5

// symTol is the relative difference allowed between mirrored
// covariance entries.
const symTol = 1e-10

// ln(2 * pi)
const ln2Pi = 1.83787706640934548356065947281123527972279494727556682563430308

// MultivariateNormal is a multivariate normal distribution with a
// given mean vector and covariance matrix. The covariance may be
// singular, in which case densities are taken with respect to the
// subspace it spans.
//
// The exported fields control the numerical integration behind CDF and
// Interval in three or more dimensions and may be changed between
// calls.
//
// A MultivariateNormal is not safe for concurrent use: CDF, Interval
// and the sampling methods advance Src and update Session.
type MultivariateNormal struct {
	// MinEvals is the minimum number of integrand evaluations. If
	// negative, a CDF or Interval call refines the result of the
	// previous call, which must have had the same arguments.
	MinEvals int

	// MaxEvals bounds the number of integrand evaluations per call.
	// If zero, max(25000, 1000·Dim) is used.
	MaxEvals int

	// AbsTol and RelTol are the requested absolute and relative
	// error of CDF and Interval.
	AbsTol, RelTol float64

	// Src is the random source for lattice shifts and sampling. The
	// constructors set it to a Mersenne Twister with a fixed seed.
	Src rand.Source

	// Session holds the state of the last numerical integration.
	Session integrate.Session

	mean []float64
	cov  *mat.SymDense
	std  []float64
	corr []float64 // strictly lower triangle, packed by rows
	fact factor
}

// NewMultivariateNormal returns a standard normal distribution in dim
// dimensions.
func NewMultivariateNormal(dim int) (*MultivariateNormal, error) {
	if dim < 1 {
		return nil, &ParamError{Param: "dim", Reason: fmt.Sprintf("%d is not positive", dim), Err: ErrDimension}
	}
	return NewMultivariateNormalMean(make([]float64, dim))
}

// NewMultivariateNormalMean returns a normal distribution with the
// given mean and identity covariance.
func NewMultivariateNormalMean(mean []float64) (*MultivariateNormal, error) {
	if len(mean) == 0 {
		return nil, &ParamError{Param: "mean", Reason: "empty", Err: ErrDimension}
	}
	ones := make([]float64, len(mean))
	for i := range ones {
		ones[i] = 1
	}
	return NewMultivariateNormalCov(mean, mat.NewDiagDense(len(mean), ones))
}

// NewMultivariateNormalCov returns a normal distribution with the
// given mean and covariance.
func NewMultivariateNormalCov(mean []float64, cov mat.Matrix) (*MultivariateNormal, error) {
	m := &MultivariateNormal{AbsTol: DefaultAbsTol}
	if err := m.SetParameters(mean, cov); err != nil {
		return nil, err
	}
	m.source()
	return m, nil
}

// SetParameters sets the mean and covariance of m. cov must be a
// square, symmetric, positive semidefinite matrix matching the length
// of mean. On error m is unchanged.
//
// The integration Session is reset.
func (m *MultivariateNormal) SetParameters(mean []float64, cov mat.Matrix) error {
	n := len(mean)
	if n == 0 {
		return &ParamError{Param: "mean", Reason: "empty", Err: ErrDimension}
	}
	if !finite(mean) {
		return &ParamError{Param: "mean", Reason: "not finite"}
	}
	r, c := cov.Dims()
	if r != c {
		return &ParamError{Param: "cov", Reason: fmt.Sprintf("%d×%d matrix is not square", r, c)}
	}
	if r != n {
		return dimError("cov", r, n)
	}

	sym := mat.NewSymDense(n, nil)
	std := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			v, w := cov.At(i, j), cov.At(j, i)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return &ParamError{Param: "cov", Reason: fmt.Sprintf("element (%d, %d) is not finite", i, j)}
			}
			if math.Abs(v-w) > symTol*math.Max(1, math.Abs(v)) {
				return &ParamError{Param: "cov", Reason: fmt.Sprintf("not symmetric at (%d, %d)", i, j)}
			}
			sym.SetSym(i, j, v)
		}
		if v := sym.At(i, i); v < 0 {
			return &ParamError{Param: "cov", Reason: fmt.Sprintf("negative variance %g at %d", v, i)}
		}
		std[i] = math.Sqrt(sym.At(i, i))
	}

	f, err := factorize(sym)
	if err != nil {
		return err
	}

	corr := make([]float64, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			var rho float64
			if std[i] > 0 && std[j] > 0 {
				rho = math.Max(-1, math.Min(1, sym.At(i, j)/(std[i]*std[j])))
			}
			corr = append(corr, rho)
		}
	}

	m.mean = append([]float64(nil), mean...)
	m.cov = sym
	m.std = std
	m.corr = corr
	m.fact = f
	m.Session.Reset()
	return nil
}

// Dim returns the number of variables, or 0 if the parameters have not
// been set.
func (m *MultivariateNormal) Dim() int {
	return len(m.mean)
}

// Mean returns a copy of the mean vector.
func (m *MultivariateNormal) Mean() []float64 {
	return append([]float64(nil), m.mean...)
}

// Covariance returns a copy of the covariance matrix.
func (m *MultivariateNormal) Covariance() *mat.SymDense {
	if m.cov == nil {
		return nil
	}
	c := mat.NewSymDense(m.cov.SymmetricDim(), nil)
	c.CopySym(m.cov)
	return c
}

// StdDev returns the standard deviation of each variable.
func (m *MultivariateNormal) StdDev() []float64 {
	return append([]float64(nil), m.std...)
}

// Correlation returns the correlation matrix. Variables with zero
// variance are uncorrelated with all others.
func (m *MultivariateNormal) Correlation() *mat.SymDense {
	n := m.Dim()
	if n == 0 {
		return nil
	}
	c := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		c.SetSym(i, i, 1)
		for j := 0; j < i; j++ {
			c.SetSym(i, j, m.corr[i*(i-1)/2+j])
		}
	}
	return c
}

// Marginal returns the distribution of variable i.
func (m *MultivariateNormal) Marginal(i int) NormalDist {
	return NormalDist{Mu: m.mean[i], Sigma: m.std[i]}
}

// Mahalanobis returns the squared Mahalanobis distance (x-μ)ᵀΣ⁻¹(x-μ)
// of x from the mean. For singular Σ the pseudo-inverse is used.
func (m *MultivariateNormal) Mahalanobis(x []float64) (float64, error) {
	if err := m.check("x", x); err != nil {
		return nan, err
	}
	return m.fact.mahalanobis(m.centered(x)), nil
}

// LogPDF returns the log of the probability density at x.
func (m *MultivariateNormal) LogPDF(x []float64) (float64, error) {
	d, err := m.Mahalanobis(x)
	if err != nil {
		return nan, err
	}
	return -(float64(m.fact.rank())*ln2Pi + m.fact.logDet() + d) / 2, nil
}

// PDF returns the probability density at x.
func (m *MultivariateNormal) PDF(x []float64) (float64, error) {
	lp, err := m.LogPDF(x)
	if err != nil {
		return nan, err
	}
	return math.Exp(lp), nil
}

// LogProb returns the log of the probability density at x. It panics
// if the length of x is not Dim.
func (m *MultivariateNormal) LogProb(x []float64) float64 {
	lp, err := m.LogPDF(x)
	if err != nil {
		panic(err)
	}
	return lp
}

// CDF returns the probability that each variable is at most the
// corresponding element of x.
func (m *MultivariateNormal) CDF(x []float64) (float64, error) {
	res, err := m.CDFResult(x)
	return res.Value, err
}

// CDFResult is like CDF but also reports the error estimate and status
// of the computation.
//
// One and two dimensional probabilities are exact. In more dimensions
// they are computed by randomized lattice integration controlled by
// the exported fields of m.
func (m *MultivariateNormal) CDFResult(x []float64) (mvncdf.Result, error) {
	if err := m.check("x", x); err != nil {
		return mvncdf.Result{}, err
	}
	switch m.Dim() {
	case 1:
		if m.std[0] == 0 {
			return indicator(x[0] >= m.mean[0]), nil
		}
		return closed(m.Marginal(0).CDF(x[0])), nil
	case 2:
		return m.cdf2(x), nil
	}
	lower := make([]float64, m.Dim())
	for i := range lower {
		lower[i] = -inf
	}
	return m.integrate(lower, x)
}

// cdf2 returns the bivariate CDF at x.
func (m *MultivariateNormal) cdf2(x []float64) mvncdf.Result {
	var z [2]float64
	var free []int
	for i := 0; i < 2; i++ {
		if m.std[i] == 0 {
			// Point mass at the mean.
			if x[i] < m.mean[i] {
				return indicator(false)
			}
			continue
		}
		z[i] = (x[i] - m.mean[i]) / m.std[i]
		free = append(free, i)
	}
	switch len(free) {
	case 0:
		return indicator(true)
	case 1:
		return closed(mathx.NormalCDF(z[free[0]]))
	}
	return closed(mathx.BivariateNormalUpper(-z[0], -z[1], m.corr[0]))
}

// Interval returns the probability that each variable lies between the
// corresponding elements of lower and upper. Infinite limits are
// allowed.
func (m *MultivariateNormal) Interval(lower, upper []float64) (float64, error) {
	res, err := m.IntervalResult(lower, upper)
	return res.Value, err
}

// IntervalResult is like Interval but also reports the error estimate
// and status of the computation.
func (m *MultivariateNormal) IntervalResult(lower, upper []float64) (mvncdf.Result, error) {
	if err := m.check("lower", lower); err != nil {
		return mvncdf.Result{}, err
	}
	if err := m.check("upper", upper); err != nil {
		return mvncdf.Result{}, err
	}
	return m.integrate(lower, upper)
}

// integrate returns the probability of the box [lower, upper].
// Variables with zero variance are settled exactly and the rest are
// standardized and passed to mvncdf.
func (m *MultivariateNormal) integrate(lower, upper []float64) (mvncdf.Result, error) {
	n := m.Dim()
	keep := make([]int, 0, n)
	var lo, up []float64
	for i := 0; i < n; i++ {
		if m.std[i] == 0 {
			if lower[i] <= m.mean[i] && m.mean[i] <= upper[i] {
				continue
			}
			return indicator(false), nil
		}
		keep = append(keep, i)
		lo = append(lo, (lower[i]-m.mean[i])/m.std[i])
		up = append(up, (upper[i]-m.mean[i])/m.std[i])
	}
	if len(keep) == 0 {
		return indicator(true), nil
	}

	corr := m.corr
	if len(keep) < n {
		corr = make([]float64, 0, len(keep)*(len(keep)-1)/2)
		for a, i := range keep {
			for _, j := range keep[:a] {
				corr = append(corr, m.corr[i*(i-1)/2+j])
			}
		}
	}
	return mvncdf.Integrate(mvncdf.NewRegion(lo, up), corr, m.options())
}

func (m *MultivariateNormal) options() mvncdf.Options {
	maxEvals := m.MaxEvals
	if maxEvals == 0 {
		maxEvals = max(25000, 1000*m.Dim())
	}
	return mvncdf.Options{
		MinEvals: m.MinEvals,
		MaxEvals: maxEvals,
		AbsTol:   m.AbsTol,
		RelTol:   m.RelTol,
		Src:      m.source(),
		Session:  &m.Session,
	}
}

// source returns m.Src, first installing the default generator if it
// is nil.
func (m *MultivariateNormal) source() rand.Source {
	if m.Src == nil {
		mt := prng.NewMT19937()
		mt.Seed(integrate.DefaultSeed)
		m.Src = mt
	}
	return m.Src
}

// check validates a vector argument named param.
func (m *MultivariateNormal) check(param string, x []float64) error {
	if m.Dim() == 0 {
		return ErrNoParameters
	}
	if len(x) != m.Dim() {
		return dimError(param, len(x), m.Dim())
	}
	if floats.HasNaN(x) {
		return &ParamError{Param: param, Reason: "contains NaN"}
	}
	return nil
}

func (m *MultivariateNormal) centered(x []float64) []float64 {
	d := make([]float64, len(x))
	floats.SubTo(d, x, m.mean)
	return d
}

func finite(xs []float64) bool {
	if floats.HasNaN(xs) {
		return false
	}
	for _, x := range xs {
		if math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// closed returns the result of a closed-form probability.
func closed(p float64) mvncdf.Result {
	return mvncdf.Result{Value: math.Max(0, math.Min(1, p)), Error: 2e-16, Status: integrate.Converged}
}

// indicator returns the exact result 1 if in and 0 otherwise.
func indicator(in bool) mvncdf.Result {
	res := mvncdf.Result{Status: integrate.Converged}
	if in {
		res.Value = 1
	}
	return res
}
