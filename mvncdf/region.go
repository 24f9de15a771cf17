// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mvncdf

import (
	"fmt"
	"math"

	"github.com/statnum/mvnorm/mathx"
)

// Bounds says which limits of an integration variable are finite.
type Bounds int

const (
	// Unbounded variables range over the whole real line and drop
	// out of the integral.
	Unbounded Bounds = -1

	// UpperOnly variables range over (-∞, Upper].
	UpperOnly Bounds = 0

	// LowerOnly variables range over [Lower, ∞).
	LowerOnly Bounds = 1

	// Both variables range over [Lower, Upper].
	Both Bounds = 2
)

func (b Bounds) String() string {
	switch b {
	case Unbounded:
		return "unbounded"
	case UpperOnly:
		return "upper"
	case LowerOnly:
		return "lower"
	case Both:
		return "both"
	}
	return fmt.Sprintf("Bounds(%d)", int(b))
}

// hasLower reports whether b includes a finite lower limit.
func (b Bounds) hasLower() bool { return b == LowerOnly || b == Both }

// hasUpper reports whether b includes a finite upper limit.
func (b Bounds) hasUpper() bool { return b == UpperOnly || b == Both }

// A Region is a hyper-rectangle, one interval per variable. Lower[i] is
// ignored unless Kinds[i] includes a lower limit, and likewise for
// Upper[i].
type Region struct {
	Lower, Upper []float64
	Kinds        []Bounds
}

// NewRegion returns the region between lower and upper, deriving each
// variable's Bounds from which of its limits are infinite.
func NewRegion(lower, upper []float64) Region {
	if len(lower) != len(upper) {
		panic("mvncdf: limit length mismatch")
	}
	r := Region{
		Lower: append([]float64(nil), lower...),
		Upper: append([]float64(nil), upper...),
		Kinds: make([]Bounds, len(lower)),
	}
	for i := range lower {
		lo, up := !math.IsInf(lower[i], -1), !math.IsInf(upper[i], 1)
		switch {
		case lo && up:
			r.Kinds[i] = Both
		case lo:
			r.Kinds[i] = LowerOnly
		case up:
			r.Kinds[i] = UpperOnly
		default:
			r.Kinds[i] = Unbounded
		}
	}
	return r
}

// Dim returns the number of variables of r.
func (r Region) Dim() int {
	return len(r.Kinds)
}

func (r Region) validate() error {
	n := len(r.Kinds)
	if len(r.Lower) != n || len(r.Upper) != n {
		return fmt.Errorf("mvncdf: region has %d kinds but %d lower and %d upper limits",
			n, len(r.Lower), len(r.Upper))
	}
	for i, k := range r.Kinds {
		if k < Unbounded || k > Both {
			return fmt.Errorf("mvncdf: variable %d: invalid bounds kind %d", i, int(k))
		}
		if k.hasLower() && math.IsNaN(r.Lower[i]) || k.hasUpper() && math.IsNaN(r.Upper[i]) {
			return fmt.Errorf("mvncdf: variable %d: NaN limit", i)
		}
	}
	return nil
}

// limits returns the standard normal probabilities of the lower and
// upper ends of the interval described by a, b and kind, so that the
// interval's probability is up-lo. up is never less than lo.
func limits(a, b float64, kind Bounds) (lo, up float64) {
	lo, up = 0, 1
	if kind.hasLower() {
		lo = mathx.NormalCDF(a)
	}
	if kind.hasUpper() {
		up = mathx.NormalCDF(b)
	}
	return lo, math.Max(up, lo)
}
