// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrate

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mathext/prng"
)

// MaxDim is the largest number of integration variables Lattice
// accepts.
const MaxDim = 1000

// DefaultSeed seeds the Mersenne Twister used when no random source
// is supplied.
const DefaultSeed = 5489

// minSamples is the smallest number of random shifts per lattice.
const minSamples = 8

// Status describes how an integration finished.
type Status int

const (
	// Converged means the error estimate met the requested tolerance.
	Converged Status = iota

	// BudgetExhausted means the next lattice would have exceeded the
	// evaluation budget. The result is still the best estimate so far.
	BudgetExhausted

	// InvalidDimension means the number of variables was out of
	// range. No integrand evaluations were made.
	InvalidDimension
)

func (s Status) String() string {
	switch s {
	case Converged:
		return "converged"
	case BudgetExhausted:
		return "budget exhausted"
	case InvalidDimension:
		return "invalid dimension"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Settings controls the work done by a lattice integration.
type Settings struct {
	// MinEvals is the minimum number of integrand evaluations. The
	// first lattice is the smallest whose 2·8·P evaluations exceed
	// MinEvals. A negative MinEvals continues from the state of the
	// Session, refining its previous estimate.
	MinEvals int

	// MaxEvals bounds the number of integrand evaluations made by
	// this call. At least one lattice is always evaluated.
	MaxEvals int

	// AbsTol and RelTol are the requested absolute and relative
	// error. Integration stops once the error estimate is at most
	// max(AbsTol, RelTol·|value|).
	AbsTol, RelTol float64
}

// Result is the outcome of a lattice integration.
type Result struct {
	// Value is the integral estimate.
	Value float64

	// Error estimates the absolute error of Value as 3.5 standard
	// errors of the randomized estimate.
	Error float64

	// Evals is the number of integrand evaluations made by the call
	// that produced this result.
	Evals int

	Status Status
}

// A Session carries the state of a lattice integration between calls,
// so that a later call with Settings.MinEvals < 0 can continue refining
// the same integral. The zero Session is ready to use and starts fresh.
//
// A Session must not be used by more than one goroutine at a time.
type Session struct {
	dim      int
	index    int     // into latticeSizes
	samples  int     // random shifts per lattice
	weight   float64 // inverse variance of estimate
	estimate float64
	evals    int
}

// Evals returns the total number of integrand evaluations made through
// s since it was last reset.
func (s *Session) Evals() int {
	return s.evals
}

// Reset discards all state so the next call starts fresh.
func (s *Session) Reset() {
	*s = Session{}
}

// Lattice integrates f over the dim-dimensional unit hypercube using
// a fresh Session. Settings.MinEvals < 0 is treated as 0.
func Lattice(f func(x []float64) float64, dim int, set Settings, src rand.Source) Result {
	var s Session
	if set.MinEvals < 0 {
		set.MinEvals = 0
	}
	return s.Lattice(f, dim, set, src)
}

// Lattice integrates f over the dim-dimensional unit hypercube.
//
// f is called with a slice of length dim that it must not retain or
// modify. Random shifts are drawn from src; if src is nil, a Mersenne
// Twister seeded with DefaultSeed is used, making the result
// deterministic.
//
// If set.MinEvals < 0 and s holds the state of an earlier integration
// of the same dimension, the earlier estimate is refined instead of
// discarded. Otherwise s is reinitialized.
func (s *Session) Lattice(f func(x []float64) float64, dim int, set Settings, src rand.Source) Result {
	if dim < 1 || dim > MaxDim {
		return Result{Error: 1, Status: InvalidDimension}
	}
	if src == nil {
		mt := prng.NewMT19937()
		mt.Seed(DefaultSeed)
		src = mt
	}
	rnd := rand.New(src)

	if set.MinEvals >= 0 || s.samples == 0 || s.dim != dim {
		s.start(dim, max(set.MinEvals, 0))
	}

	vk := make([]float64, dim)
	shift := make([]float64, dim)
	x := make([]float64, dim)
	var res Result
	for {
		p := latticeSizes[s.index]
		generator(vk, s.index)

		// Running mean and variance of the mean over shifts.
		var mean, varsqr float64
		for i := 1; i <= s.samples; i++ {
			v := shifted(f, vk, shift, x, p, rnd)
			dif := (v - mean) / float64(i)
			mean += dif
			varsqr = float64(i-2)*varsqr/float64(i) + dif*dif
		}
		res.Evals += 2 * s.samples * p

		varprd := s.weight * varsqr
		s.estimate += (mean - s.estimate) / (1 + varprd)
		if varsqr > 0 {
			s.weight = (1 + varprd) / varsqr
		}
		res.Error = 7 * math.Sqrt(varsqr/(1+varprd)) / 2
		if res.Error <= math.Max(set.AbsTol, math.Abs(s.estimate)*set.RelTol) {
			res.Status = Converged
			break
		}

		if s.index < numLatticeSizes-1 {
			s.index++
		} else {
			s.samples = max(minSamples, min(3*s.samples/2, (set.MaxEvals-res.Evals)/(2*p)))
		}
		if res.Evals+2*s.samples*latticeSizes[s.index] > set.MaxEvals {
			res.Status = BudgetExhausted
			log.Debugf("lattice budget of %d evaluations exhausted in dimension %d: value %g, error %g",
				set.MaxEvals, dim, s.estimate, res.Error)
			break
		}
	}
	res.Value = s.estimate
	s.evals += res.Evals
	return res
}

// start resets s for a new integration in dim variables, choosing the
// first lattice so that at least minEvals evaluations are made.
func (s *Session) start(dim, minEvals int) {
	*s = Session{dim: dim, samples: minSamples, index: numLatticeSizes - 1}
	for i := min(dim, 10) - 1; i < numLatticeSizes; i++ {
		if minEvals < 2*s.samples*latticeSizes[i] {
			s.index = i
			return
		}
	}
	s.samples = max(minSamples, minEvals/(2*latticeSizes[s.index]))
}

// generator fills vk with the Korobov generating vector for lattice
// index. Components past maxLatticeDim use a Niederreiter-style
// irrational sequence.
func generator(vk []float64, index int) {
	p := latticeSizes[index]
	n := len(vk)
	vk[0] = 1 / float64(p)
	if n == 1 {
		return
	}
	z := korobovMultipliers[index][min(n-1, maxLatticeDim-1)-1]
	k := 1
	for i := 1; i < n; i++ {
		if i < maxLatticeDim {
			k = z * k % p
			vk[i] = float64(k) * vk[0]
			continue
		}
		e := float64(i+1-maxLatticeDim) / float64(n-maxLatticeDim+1)
		v := math.Trunc(float64(p) * math.Pow(2, e))
		vk[i] = math.Mod(v/float64(p), 1)
	}
}

// shifted returns the antithetic lattice rule estimate of f for
// generating vector vk under a fresh random shift. The leading
// components of vk are randomly permuted in place first.
func shifted(f func([]float64) float64, vk, shift, x []float64, p int, rnd *rand.Rand) float64 {
	nk := min(len(vk), maxLatticeDim)
	for j := 0; j < nk-1; j++ {
		jp := j + int(rnd.Float64()*float64(nk-j))
		vk[j], vk[jp] = vk[jp], vk[j]
	}
	for j := range shift {
		shift[j] = rnd.Float64()
	}

	var sum float64
	for k := 1; k <= p; k++ {
		for j := range x {
			// Baker's tent transformation.
			_, fr := math.Modf(float64(k)*vk[j] + shift[j])
			x[j] = math.Abs(2*fr - 1)
		}
		sum += (f(x) - sum) / float64(2*k-1)
		for j := range x {
			x[j] = 1 - x[j]
		}
		sum += (f(x) - sum) / float64(2*k)
	}
	return sum
}
