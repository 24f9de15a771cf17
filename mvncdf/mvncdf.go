// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mvncdf

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"github.com/statnum/mvnorm/integrate"
)

// MaxDim is the largest number of variables Integrate accepts.
const MaxDim = 500

// ErrDimension is returned by Integrate when the number of variables is
// less than 1 or more than MaxDim.
var ErrDimension = errors.New("mvncdf: number of variables out of range")

// Result is the outcome of Integrate.
type Result = integrate.Result

// Options controls the accuracy and cost of Integrate. The zero value
// makes a single smallest lattice pass.
type Options struct {
	// MinEvals, MaxEvals, AbsTol and RelTol are passed to the lattice
	// rule. See integrate.Settings.
	MinEvals int
	MaxEvals int
	AbsTol   float64
	RelTol   float64

	// Src is the source of random lattice shifts. If nil, a fixed
	// seed is used and results are reproducible.
	Src rand.Source

	// Session, if not nil, carries lattice state between calls. With
	// MinEvals < 0 a call refines the estimate of the previous call
	// on the same session, which must have been for the same region
	// and correlation.
	Session *integrate.Session
}

// Integrate returns the probability that a standard normal vector with
// correlation matrix C lies in region. corr holds the strictly lower
// triangle of C packed by rows, so C[i][j] for j < i is corr[i*(i-1)/2+j].
// corr is assumed to describe a positive semidefinite matrix with unit
// diagonal.
//
// The returned Value is in [0, 1]. Problems with at most two bounded
// variables are computed in closed form; otherwise Error estimates the
// absolute error and Status reports whether the requested tolerance was
// met within the evaluation budget. Running out of budget is not an
// error.
func Integrate(region Region, corr []float64, opts Options) (Result, error) {
	n := region.Dim()
	if n < 1 || n > MaxDim {
		return Result{Error: 1, Status: integrate.InvalidDimension},
			fmt.Errorf("%w: %d", ErrDimension, n)
	}
	if err := region.validate(); err != nil {
		return Result{}, err
	}
	if want := n * (n - 1) / 2; len(corr) != want {
		return Result{}, fmt.Errorf("mvncdf: correlation triangle has %d entries, want %d for %d variables",
			len(corr), want, n)
	}

	r := reduce(region, corr)
	switch r.active {
	case 0:
		return Result{Value: 1, Status: integrate.Converged}, nil
	case 1:
		return closed(limits(r.a[0], r.b[0], r.kind[0])), nil
	case 2:
		return closed(r.pair()), nil
	}

	set := integrate.Settings{
		MinEvals: opts.MinEvals,
		MaxEvals: opts.MaxEvals,
		AbsTol:   opts.AbsTol,
		RelTol:   opts.RelTol,
	}
	var res Result
	if opts.Session != nil {
		res = opts.Session.Lattice(r.integrand(), r.active-1, set, opts.Src)
	} else {
		res = integrate.Lattice(r.integrand(), r.active-1, set, opts.Src)
	}
	res.Value = math.Max(0, math.Min(1, res.Value))
	return res, nil
}

// closed returns the result of a problem solved in closed form with
// probability up-lo.
func closed(lo, up float64) Result {
	return Result{Value: math.Max(0, math.Min(1, up-lo)), Error: 2e-16, Status: integrate.Converged}
}

// pair solves a reduced problem with two bounded variables, returning
// lo and up such that the probability is up-lo.
func (r *reduced) pair() (lo, up float64) {
	if math.Abs(r.cov[2]) > 0 {
		d := math.Sqrt(1 + r.cov[1]*r.cov[1])
		if r.kind[1].hasLower() {
			r.a[1] /= d
		}
		if r.kind[1].hasUpper() {
			r.b[1] /= d
		}
		return 0, bivariate(r.a, r.b, r.kind, r.cov[1]/d)
	}

	// The second variable is a multiple of the first; intersect
	// their intervals.
	k0, k1 := r.kind[0], r.kind[1]
	if k1.hasLower() {
		if k0.hasLower() {
			r.a[0] = math.Max(r.a[0], r.a[1])
		} else {
			r.a[0] = r.a[1]
		}
	}
	if k1.hasUpper() {
		if k0.hasUpper() {
			r.b[0] = math.Min(r.b[0], r.b[1])
		} else {
			r.b[0] = r.b[1]
		}
	}
	if k0 != k1 {
		r.kind[0] = Both
	}
	return limits(r.a[0], r.b[0], r.kind[0])
}
