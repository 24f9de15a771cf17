// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/stat/distuv"
)

func TestNormalDist(t *testing.T) {
	dists := []NormalDist{StdNormal, {Mu: 2, Sigma: 0.5}, {Mu: -10, Sigma: 3}}
	xs := []float64{-12, -3, -1, 0, 0.5, 1.7, 2, 4}
	for _, d := range dists {
		ref := distuv.Normal{Mu: d.Mu, Sigma: d.Sigma}
		pdfs := d.PDFEach(xs)
		cdfs := d.CDFEach(xs)
		for i, x := range xs {
			if !aeq(ref.Prob(x), d.PDF(x)) || !aeq(ref.Prob(x), pdfs[i]) {
				t.Errorf("%+v.PDF(%v) = %v, want %v", d, x, d.PDF(x), ref.Prob(x))
			}
			if !aeq(ref.CDF(x), d.CDF(x)) || cdfs[i] != d.CDF(x) {
				t.Errorf("%+v.CDF(%v) = %v, want %v", d, x, d.CDF(x), ref.CDF(x))
			}
		}

		ys := []float64{0.01, 0.25, 0.5, 0.9}
		invs := d.InvCDFEach(ys)
		for i, y := range ys {
			if !aeq(ref.Quantile(y), invs[i]) {
				t.Errorf("%+v.InvCDF(%v) = %v, want %v", d, y, invs[i], ref.Quantile(y))
			}
			if !aeq(y, d.CDF(d.InvCDF(y))) {
				t.Errorf("%+v: CDF(InvCDF(%v)) = %v", d, y, d.CDF(d.InvCDF(y)))
			}
		}

		lo, hi := d.Bounds()
		if !aeq(d.Mu-3*d.Sigma, lo) || !aeq(d.Mu+3*d.Sigma, hi) {
			t.Errorf("%+v.Bounds() = %v, %v", d, lo, hi)
		}
	}

	if got := StdNormal.InvCDF(0); !math.IsInf(got, -1) {
		t.Errorf("InvCDF(0) = %v, want -Inf", got)
	}
	if got := StdNormal.InvCDF(1); !math.IsInf(got, 1) {
		t.Errorf("InvCDF(1) = %v, want +Inf", got)
	}
}
