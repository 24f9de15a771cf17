// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// 1/sqrt(2 * pi)
const invSqrt2Pi = 0.39894228040143267793994605993438186847585863116493465766592583

// Chebyshev coefficients for the normal tail, from Schonfelder, J. L.
// (1978) Chebyshev expansions for the error and related functions.
// Math. Comp. 32, 1232–1240, truncated for double precision.
var schonfelder = [...]float64{
	6.10143081923200417926465815756e-1,
	-4.34841272712577471828182820888e-1,
	1.76351193643605501125840298123e-1,
	-6.0710795609249414860051215825e-2,
	1.7712068995694114486147141191e-2,
	-4.321119385567293818599864968e-3,
	8.54216676887098678819832055e-4,
	-1.27155090609487125392810482e-4,
	1.1248167243671189468847072e-5,
	3.13063885421820972630152e-7,
	-2.70988068537762022009086e-7,
	3.0737622701407688440959e-8,
	2.515620384817622937314e-9,
	-1.028929921320319127590e-9,
	2.9944052119949939363e-11,
	2.6051789687266936290e-11,
	-2.634839924171969386e-12,
	-6.43404509890636443e-13,
	1.12457401801663447e-13,
	1.7281533389986098e-14,
	-4.264101694942375e-15,
	-5.45371977880191e-16,
	1.58697607761671e-16,
	2.0899837844334e-17,
	-5.900526869409e-18,
}

// NormalCDF returns the standard normal cumulative distribution
// function Φ(z), accurate to about 1e-15.
//
// For |z|/√2 > 100 the lower tail underflows and NormalCDF returns
// exactly 0 (or 1 for positive z).
func NormalCDF(z float64) float64 {
	if math.IsNaN(z) {
		return nan
	}
	var p float64
	xa := math.Abs(z) / math.Sqrt2
	if xa <= 100 {
		// Clenshaw recurrence on the shifted Chebyshev variable.
		t := (8*xa - 30) / (4*xa + 15)
		var bm, b, bp float64
		for i := len(schonfelder) - 1; i >= 0; i-- {
			bp = b
			b = bm
			bm = t*b - bp + schonfelder[i]
		}
		p = math.Exp(-xa*xa) * (bm - bp) / 4
	}
	if z > 0 {
		p = 1 - p
	}
	return p
}

// NormalPDF returns the standard normal density at z.
func NormalPDF(z float64) float64 {
	return math.Exp(-z*z/2) * invSqrt2Pi
}

// Coefficients of Wichura, M. J. (1988) Algorithm AS 241: The
// percentage points of the normal distribution. Applied Statistics
// 37, 477–484. Each array is in increasing powers of r.
var (
	// |p - 0.5| <= 0.425
	as241A = [...]float64{
		3.3871328727963666080e0,
		1.3314166789178437745e+2,
		1.9715909503065514427e+3,
		1.3731693765509461125e+4,
		4.5921953931549871457e+4,
		6.7265770927008700853e+4,
		3.3430575583588128105e+4,
		2.5090809287301226727e+3,
	}
	as241B = [...]float64{
		1,
		4.2313330701600911252e+1,
		6.8718700749205790830e+2,
		5.3941960214247511077e+3,
		2.1213794301586595867e+4,
		3.9307895800092710610e+4,
		2.8729085735721942674e+4,
		5.2264952788528545610e+3,
	}

	// sqrt(-log(min(p, 1-p))) <= 5
	as241C = [...]float64{
		1.42343711074968357734e0,
		4.63033784615654529590e0,
		5.76949722146069140550e0,
		3.64784832476320460504e0,
		1.27045825245236838258e0,
		2.41780725177450611770e-1,
		2.27238449892691845833e-2,
		7.74545014278341407640e-4,
	}
	as241D = [...]float64{
		1,
		2.05319162663775882187e0,
		1.67638483018380384940e0,
		6.89767334985100004550e-1,
		1.48103976427480074590e-1,
		1.51986665636164571966e-2,
		5.47593808499534494600e-4,
		1.05075007164441684324e-9,
	}

	// Far tails.
	as241E = [...]float64{
		6.65790464350110377720e0,
		5.46378491116411436990e0,
		1.78482653991729133580e0,
		2.96560571828504891230e-1,
		2.65321895265761230930e-2,
		1.24266094738807843860e-3,
		2.71155556874348757815e-5,
		2.01033439929228813265e-7,
	}
	as241F = [...]float64{
		1,
		5.99832206555887937690e-1,
		1.36929880922735805310e-1,
		1.48753612908506148525e-2,
		7.86869131145613259100e-4,
		1.84631831751005468180e-5,
		1.42151175831644588870e-7,
		2.04426310338993978564e-15,
	}
)

// invCDFLimit is returned, with the sign of p-0.5, when p is exactly 0
// or 1.
const invCDFLimit = 9

// NormalInvCDF returns the inverse of the standard normal cumulative
// distribution function, so that NormalInvCDF(NormalCDF(z)) ≈ z.
//
// p should be in (0, 1). At p == 0 and p == 1 NormalInvCDF returns -9
// and 9 rather than -Inf and +Inf; callers that need the infinite
// limits must check for these inputs themselves. For p outside [0, 1]
// or NaN, the result is NaN.
func NormalInvCDF(p float64) float64 {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return nan
	}
	q := p - 0.5
	if math.Abs(q) <= 0.425 {
		r := 0.180625 - q*q
		return q * ratpoly(&as241A, &as241B, r)
	}
	r := math.Min(p, 1-p)
	var z float64
	if r > 0 {
		r = math.Sqrt(-math.Log(r))
		if r <= 5 {
			z = ratpoly(&as241C, &as241D, r-1.6)
		} else {
			z = ratpoly(&as241E, &as241F, r-5)
		}
	} else {
		z = invCDFLimit
	}
	if q < 0 {
		z = -z
	}
	return z
}

// ratpoly evaluates num(r)/den(r) using Horner's rule.
func ratpoly(num, den *[8]float64, r float64) float64 {
	var n, d float64
	for i := len(num) - 1; i >= 0; i-- {
		n = n*r + num[i]
		d = d*r + den[i]
	}
	return n / d
}
