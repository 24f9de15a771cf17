// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mvncdf

import (
	"math"

	"github.com/statnum/mvnorm/mathx"
)

// integrand returns the function of active-1 unit variables whose
// integral over the unit hypercube is the probability of r.
//
// Variable i is drawn from its conditional interval given the earlier
// ones by inverting the normal CDF at w[i]; the integrand is the product
// of the conditional interval probabilities. Consecutive rows that end
// in the same Cholesky column share one variable, and their limits are
// intersected.
//
// The returned function keeps scratch state and must not be called
// concurrently.
func (r *reduced) integrand() func(w []float64) float64 {
	n := r.active - 1
	y := make([]float64, n+1)
	return func(w []float64) float64 {
		val := 1.0
		var ai, bi float64
		var hasA, hasB bool
		ik := 0
		for i := 0; i <= n; i++ {
			var sum float64
			for j := 0; j < min(i, ik); j++ {
				sum += r.cov[tri(i, j)] * y[j]
			}
			if r.kind[i].hasLower() {
				if hasA {
					ai = math.Max(ai, r.a[i]-sum)
				} else {
					ai, hasA = r.a[i]-sum, true
				}
			}
			if r.kind[i].hasUpper() {
				if hasB {
					bi = math.Min(bi, r.b[i]-sum)
				} else {
					bi, hasB = r.b[i]-sum, true
				}
			}
			if i == n || r.cov[tri(i+1, ik+1)] > 0 {
				d, e := limits(ai, bi, combined(hasA, hasB))
				if d >= e {
					return 0
				}
				val *= e - d
				if i < n {
					y[ik] = mathx.NormalInvCDF(d + w[ik]*(e-d))
				}
				ik++
				hasA, hasB = false, false
			}
		}
		return val
	}
}

// combined returns the Bounds of an intersection of intervals that
// has a finite lower limit if hasA and a finite upper limit if hasB.
func combined(hasA, hasB bool) Bounds {
	switch {
	case hasA && hasB:
		return Both
	case hasA:
		return LowerOnly
	case hasB:
		return UpperOnly
	}
	return Unbounded
}
