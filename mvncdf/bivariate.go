// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mvncdf

import (
	"math"

	"github.com/statnum/mvnorm/mathx"
)

// bivariate returns the probability of the rectangle given by the
// first two entries of lower, upper and kinds under a standard
// bivariate normal with correlation rho. Neither kind may be Unbounded.
func bivariate(lower, upper []float64, kinds []Bounds, rho float64) float64 {
	bvu := mathx.BivariateNormalUpper
	l1, l2 := lower[0], lower[1]
	u1, u2 := upper[0], upper[1]

	var p float64
	switch [2]Bounds{kinds[0], kinds[1]} {
	case [2]Bounds{Both, Both}:
		p = bvu(l1, l2, rho) - bvu(u1, l2, rho) - bvu(l1, u2, rho) + bvu(u1, u2, rho)
	case [2]Bounds{Both, LowerOnly}:
		p = bvu(l1, l2, rho) - bvu(u1, l2, rho)
	case [2]Bounds{LowerOnly, Both}:
		p = bvu(l1, l2, rho) - bvu(l1, u2, rho)
	case [2]Bounds{Both, UpperOnly}:
		p = bvu(-u1, -u2, rho) - bvu(-l1, -u2, rho)
	case [2]Bounds{UpperOnly, Both}:
		p = bvu(-u1, -u2, rho) - bvu(-u1, -l2, rho)
	case [2]Bounds{LowerOnly, UpperOnly}:
		p = bvu(l1, -u2, -rho)
	case [2]Bounds{UpperOnly, LowerOnly}:
		p = bvu(-u1, l2, -rho)
	case [2]Bounds{LowerOnly, LowerOnly}:
		p = bvu(l1, l2, rho)
	case [2]Bounds{UpperOnly, UpperOnly}:
		p = bvu(-u1, -u2, rho)
	default:
		panic("mvncdf: bivariate region with unbounded variable")
	}
	return math.Max(0, math.Min(1, p))
}
