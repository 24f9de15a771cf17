// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mvncdf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/statnum/mvnorm/integrate"
	"github.com/statnum/mvnorm/mathx"
)

// pack returns the strictly lower triangle of c packed by rows.
func pack(c [][]float64) []float64 {
	var out []float64
	for i := range c {
		out = append(out, c[i][:i]...)
	}
	return out
}

func equicorrelated(n int, rho float64) [][]float64 {
	c := make([][]float64, n)
	for i := range c {
		c[i] = make([]float64, n)
		for j := range c[i] {
			if i == j {
				c[i][j] = 1
			} else {
				c[i][j] = rho
			}
		}
	}
	return c
}

func orthant(n int) Region {
	return Region{
		Lower: make([]float64, n),
		Upper: make([]float64, n),
		Kinds: make([]Bounds, n),
	}
}

var defaultOpts = Options{MaxEvals: 25000, AbsTol: 1e-5}

func TestIntegrateOrthant(t *testing.T) {
	tests := []struct {
		name string
		n    int
		rho  float64
		opts Options
		want float64
		tol  float64
	}{
		{"independent3", 3, 0, defaultOpts, 0.125, 1e-15},
		{"rho.5/3", 3, 0.5, Options{MaxEvals: 1000000, AbsTol: 1e-5}, 0.25, 1e-4},
		{"rho.5/5", 5, 0.5, Options{MaxEvals: 1000000, AbsTol: 1e-5}, 1.0 / 6, 1e-4},
		{"rho.5/2", 2, 0.5, defaultOpts, 1.0 / 3, 1e-15},
		{"single", 1, 0, defaultOpts, 0.5, 1e-15},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			corr := pack(equicorrelated(test.n, test.rho))
			res, err := Integrate(orthant(test.n), corr, test.opts)
			require.NoError(t, err)
			require.Equal(t, integrate.Converged, res.Status)
			require.InDelta(t, test.want, res.Value, test.tol)
			require.LessOrEqual(t, res.Error, math.Max(test.opts.AbsTol, 2e-16))
		})
	}
}

func TestIntegrateDefaultBudget(t *testing.T) {
	// Running out of budget still gives an estimate within its error.
	res, err := Integrate(orthant(3), pack(equicorrelated(3, 0.5)), defaultOpts)
	require.NoError(t, err)
	require.Contains(t, []integrate.Status{integrate.Converged, integrate.BudgetExhausted}, res.Status)
	require.LessOrEqual(t, res.Evals, defaultOpts.MaxEvals)
	require.Less(t, res.Error, 1e-4)
	require.InDelta(t, 0.25, res.Value, 1e-4)
}

func TestIntegrateUnbounded(t *testing.T) {
	region := orthant(4)
	region.Kinds[2] = Unbounded
	region.Kinds[3] = Unbounded
	res, err := Integrate(region, pack(equicorrelated(4, 0.5)), defaultOpts)
	require.NoError(t, err)
	require.InDelta(t, 1.0/3, res.Value, 1e-14)
	require.Equal(t, 2e-16, res.Error)
	require.Zero(t, res.Evals)

	// Unbounded variables first must give the same answer.
	region.Kinds = []Bounds{Unbounded, UpperOnly, Unbounded, UpperOnly}
	res, err = Integrate(region, pack(equicorrelated(4, 0.5)), defaultOpts)
	require.NoError(t, err)
	require.InDelta(t, 1.0/3, res.Value, 1e-14)

	region.Kinds = []Bounds{Unbounded, Unbounded, Unbounded, Unbounded}
	res, err = Integrate(region, pack(equicorrelated(4, 0.5)), defaultOpts)
	require.NoError(t, err)
	require.Equal(t, 1.0, res.Value)
	require.Zero(t, res.Error)
}

func TestIntegrateMixed(t *testing.T) {
	region := Region{
		Lower: []float64{-1, -0.5, 0, -2},
		Upper: []float64{1, 2, 0.3, 1},
		Kinds: []Bounds{Both, LowerOnly, UpperOnly, Both},
	}
	corr := pack([][]float64{
		{1, 0.3, 0.2, 0.1},
		{0.3, 1, 0.4, 0.2},
		{0.2, 0.4, 1, 0.5},
		{0.1, 0.2, 0.5, 1},
	})
	res, err := Integrate(region, corr, Options{MaxEvals: 1000000, AbsTol: 1e-5})
	require.NoError(t, err)
	require.Equal(t, integrate.Converged, res.Status)
	require.InDelta(t, 0.231676, res.Value, 1e-4)
}

func TestIntegrateSingular(t *testing.T) {
	// The first two variables are identical.
	corr := pack([][]float64{
		{1, 1, 0},
		{1, 1, 0},
		{0, 0, 1},
	})
	region := Region{
		Lower: make([]float64, 3),
		Upper: []float64{0.5, 0.2, 0},
		Kinds: []Bounds{UpperOnly, UpperOnly, UpperOnly},
	}
	res, err := Integrate(region, corr, defaultOpts)
	require.NoError(t, err)
	require.InDelta(t, mathx.NormalCDF(0.2)*0.5, res.Value, 1e-6)

	// Perfectly negatively correlated.
	corr = pack([][]float64{
		{1, -1, 0},
		{-1, 1, 0},
		{0, 0, 1},
	})
	region = Region{
		Lower: []float64{-1, -1, -1},
		Upper: []float64{0.5, 0.2, 0},
		Kinds: []Bounds{Both, Both, UpperOnly},
	}
	res, err = Integrate(region, corr, defaultOpts)
	require.NoError(t, err)
	want := (mathx.NormalCDF(0.5) - mathx.NormalCDF(-0.2)) * 0.5
	require.InDelta(t, want, res.Value, 1e-6)

	// Two identical variables alone merge into one interval.
	res, err = Integrate(Region{
		Lower: []float64{-1, 0},
		Upper: []float64{1, 0},
		Kinds: []Bounds{Both, LowerOnly},
	}, []float64{1}, defaultOpts)
	require.NoError(t, err)
	require.InDelta(t, mathx.NormalCDF(1)-0.5, res.Value, 1e-15)
}

func TestIntegrateIndependent(t *testing.T) {
	// With zero correlation the probability factors.
	region := Region{
		Lower: []float64{-1, 0.5, -0.2, -3},
		Upper: []float64{0.7, 2, 0, 1.5},
		Kinds: []Bounds{Both, Both, UpperOnly, LowerOnly},
	}
	want := (mathx.NormalCDF(0.7) - mathx.NormalCDF(-1)) *
		(mathx.NormalCDF(2) - mathx.NormalCDF(0.5)) *
		mathx.NormalCDF(0) *
		(1 - mathx.NormalCDF(-3))
	res, err := Integrate(region, make([]float64, 6), defaultOpts)
	require.NoError(t, err)
	require.InDelta(t, want, res.Value, 1e-12)
}

func TestIntegrateMonotone(t *testing.T) {
	corr := pack(equicorrelated(4, 0.3))
	prev := 0.0
	for _, u := range []float64{-2, -1, 0, 1, 2, 4} {
		region := orthant(4)
		for i := range region.Upper {
			region.Upper[i] = u
		}
		res, err := Integrate(region, corr, defaultOpts)
		require.NoError(t, err)
		require.GreaterOrEqual(t, res.Value, prev)
		require.LessOrEqual(t, res.Value, 1.0)
		prev = res.Value
	}
	require.InDelta(t, 1, prev, 1e-3)
}

func TestIntegrateErrors(t *testing.T) {
	res, err := Integrate(Region{}, nil, defaultOpts)
	require.ErrorIs(t, err, ErrDimension)
	require.Equal(t, integrate.InvalidDimension, res.Status)
	require.Zero(t, res.Value)
	require.Equal(t, 1.0, res.Error)

	big := orthant(MaxDim + 1)
	_, err = Integrate(big, nil, defaultOpts)
	require.ErrorIs(t, err, ErrDimension)

	region := orthant(3)
	_, err = Integrate(region, []float64{0.1}, defaultOpts)
	require.Error(t, err)

	region.Upper = region.Upper[:2]
	_, err = Integrate(region, make([]float64, 3), defaultOpts)
	require.Error(t, err)

	region = orthant(2)
	region.Kinds[1] = 5
	_, err = Integrate(region, []float64{0}, defaultOpts)
	require.Error(t, err)
}

func TestIntegrateSession(t *testing.T) {
	corr := pack(equicorrelated(5, 0.5))
	var s integrate.Session
	opts := Options{Src: rand.NewSource(3), Session: &s}
	first, err := Integrate(orthant(5), corr, opts)
	require.NoError(t, err)
	require.Equal(t, integrate.BudgetExhausted, first.Status)

	opts.MinEvals = -1
	next, err := Integrate(orthant(5), corr, opts)
	require.NoError(t, err)
	require.Less(t, next.Error, first.Error)
	require.Equal(t, first.Evals+next.Evals, s.Evals())
}

func TestNewRegion(t *testing.T) {
	inf := math.Inf(1)
	r := NewRegion([]float64{-inf, 0, -inf, -1}, []float64{1, inf, inf, 2})
	require.Equal(t, []Bounds{UpperOnly, LowerOnly, Unbounded, Both}, r.Kinds)
	require.Equal(t, 4, r.Dim())
	require.Equal(t, "upper", UpperOnly.String())
	require.Equal(t, "Bounds(9)", Bounds(9).String())
}
