// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/gonum/integrate/quad"
)

// bvnQuad computes P(X > h, Y > k) by one-dimensional quadrature of
// the conditional distribution of Y given X.
func bvnQuad(h, k, rho float64) float64 {
	s := math.Sqrt((1 - rho) * (1 + rho))
	f := func(x float64) float64 {
		return NormalPDF(x) * NormalCDF((rho*x-k)/s)
	}
	return quad.Fixed(f, h, math.Max(h, 0)+12, 1000, nil, 0)
}

func TestBivariateNormalUpperQuad(t *testing.T) {
	hs := []float64{-2.5, -0.7, 0, 0.4, 1.9}
	rhos := []float64{-0.95, -0.8, -0.5, -0.1, 0.1, 0.29, 0.31, 0.6, 0.9, 0.93, 0.99}
	for _, h := range hs {
		for _, k := range hs {
			for _, rho := range rhos {
				want := bvnQuad(h, k, rho)
				got := BivariateNormalUpper(h, k, rho)
				if math.Abs(want-got) > 1e-8 {
					t.Errorf("BivariateNormalUpper(%v, %v, %v) = %v, want %v", h, k, rho, got, want)
				}
			}
		}
	}
}

func TestBivariateNormalUpperOrigin(t *testing.T) {
	// Sheppard's formula.
	for _, rho := range []float64{-0.99, -0.95, -0.5, 0, 0.2, 0.5, 0.8, 0.95, 0.99} {
		want := 0.25 + math.Asin(rho)/(2*math.Pi)
		if got := BivariateNormalUpper(0, 0, rho); math.Abs(want-got) > 1e-14 {
			t.Errorf("BivariateNormalUpper(0, 0, %v) = %v, want %v", rho, got, want)
		}
	}
	if got := BivariateNormalUpper(0, 0, 0.5); math.Abs(got-1.0/3) > 1e-15 {
		t.Errorf("BivariateNormalUpper(0, 0, 0.5) = %v, want 1/3", got)
	}
}

func TestBivariateNormalUpperProperties(t *testing.T) {
	pts := [][2]float64{{0.3, -1.2}, {-2, 1}, {1.5, 1.4}, {0, 3}}
	for _, pt := range pts {
		h, k := pt[0], pt[1]
		t.Run(fmt.Sprintf("h=%v,k=%v", h, k), func(t *testing.T) {
			for _, rho := range []float64{-0.97, -0.4, 0, 0.4, 0.97} {
				a, b := BivariateNormalUpper(h, k, rho), BivariateNormalUpper(k, h, rho)
				if math.Abs(a-b) > 1e-15 {
					t.Errorf("asymmetric at rho=%v: %v != %v", rho, a, b)
				}
				if a < 0 || a > 1 {
					t.Errorf("rho=%v: %v out of [0, 1]", rho, a)
				}
			}
			if want, got := NormalCDF(-h)*NormalCDF(-k), BivariateNormalUpper(h, k, 0); math.Abs(want-got) > 1e-15 {
				t.Errorf("independent: got %v, want %v", got, want)
			}
			if want, got := NormalCDF(-math.Max(h, k)), BivariateNormalUpper(h, k, 1); math.Abs(want-got) > 1e-15 {
				t.Errorf("rho=1: got %v, want %v", got, want)
			}
			want := math.Max(0, NormalCDF(-h)-NormalCDF(k))
			if got := BivariateNormalUpper(h, k, -1); math.Abs(want-got) > 1e-15 {
				t.Errorf("rho=-1: got %v, want %v", got, want)
			}
		})
	}
}

func TestBivariateNormalUpperContinuity(t *testing.T) {
	for _, rho := range []float64{0.925, -0.925} {
		lo := BivariateNormalUpper(0.5, 0.7, rho-1e-9)
		hi := BivariateNormalUpper(0.5, 0.7, rho+1e-9)
		if math.Abs(lo-hi) > 1e-8 {
			t.Errorf("discontinuity at rho=%v: %v vs %v", rho, lo, hi)
		}
	}
}

func TestBivariateNormalUpperInf(t *testing.T) {
	if got := BivariateNormalUpper(math.Inf(-1), math.Inf(-1), 0.3); got != 1 {
		t.Errorf("both -Inf: got %v, want 1", got)
	}
	if got := BivariateNormalUpper(math.Inf(1), 0, 0.3); got != 0 {
		t.Errorf("+Inf: got %v, want 0", got)
	}
	if want, got := NormalCDF(-0.4), BivariateNormalUpper(math.Inf(-1), 0.4, 0.3); got != want {
		t.Errorf("-Inf: got %v, want %v", got, want)
	}
}
