// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mvncdf

import "math"

const (
	// pivotTol is the smallest conditional variance treated as
	// nonzero while factoring.
	pivotTol = 1e-10

	sqrt2Pi = 2.506628274631001
)

// tri returns the index of element (i, j), j <= i, of a packed lower
// triangle that includes the diagonal.
func tri(i, j int) int {
	return i*(i+1)/2 + j
}

// sym is tri for either order of i and j.
func sym(i, j int) int {
	if j > i {
		i, j = j, i
	}
	return tri(i, j)
}

// reduced is a rectangle probability problem after variable reordering
// and factoring. The first active variables are bounded. cov holds the
// packed lower Cholesky factor of their correlation matrix with each row
// divided by its diagonal, and a and b hold limits scaled the same way.
type reduced struct {
	n      int
	active int
	a, b   []float64
	kind   []Bounds
	cov    []float64
	y      []float64 // expected value of each transformed variable
}

// reduce reorders the variables of region so that the most constrained
// come first and computes the Cholesky factor of the reordered
// correlation matrix. corr is the strictly lower triangle of the
// correlation matrix packed by rows.
//
// Singular correlation matrices are handled: a variable that is an
// exact linear combination of earlier ones gets a zero diagonal, and its
// limits are rewritten in terms of the last variable it depends on.
func reduce(region Region, corr []float64) *reduced {
	n := region.Dim()
	r := &reduced{
		n:    n,
		a:    make([]float64, n),
		b:    make([]float64, n),
		kind: append([]Bounds(nil), region.Kinds...),
		cov:  make([]float64, n*(n+1)/2),
		y:    make([]float64, n),
	}
	unbounded := 0
	for i := 0; i < n; i++ {
		if r.kind[i] == Unbounded {
			unbounded++
		} else {
			if r.kind[i].hasLower() {
				r.a[i] = region.Lower[i]
			}
			if r.kind[i].hasUpper() {
				r.b[i] = region.Upper[i]
			}
		}
		copy(r.cov[tri(i, 0):tri(i, i)], corr[i*(i-1)/2:])
		r.cov[tri(i, i)] = 1
	}
	r.active = n - unbounded
	if r.active == 0 {
		return r
	}

	// Move the unbounded variables to the end.
	for i := n - 1; i >= r.active; i-- {
		if r.kind[i] == Unbounded {
			continue
		}
		for j := 0; j < i; j++ {
			if r.kind[j] == Unbounded {
				r.swap(j, i)
				break
			}
		}
	}

	for i := 0; i < r.active; i++ {
		r.pivot(i)
	}
	return r
}

// pivot chooses variable i: among variables i and later, the one with
// the smallest conditional probability given the expected values of
// the variables already chosen. It then computes column i of the
// Cholesky factor.
func (r *reduced) pivot(i int) {
	m := r.active
	jmin := -1
	var demin, amin, bmin, cvdiag float64
	for j := i; j < m; j++ {
		if r.cov[tri(j, j)] <= pivotTol {
			continue
		}
		sumsq := math.Sqrt(r.cov[tri(j, j)])
		var sum float64
		for k := 0; k < i; k++ {
			sum += r.cov[tri(j, k)] * r.y[k]
		}
		aj, bj := (r.a[j]-sum)/sumsq, (r.b[j]-sum)/sumsq
		d, e := limits(aj, bj, r.kind[j])
		// Genz orders by increasing probability: the smallest mass goes first.
		if jmin < 0 || e-d < demin {
			jmin = j
			amin, bmin = aj, bj
			demin = e - d
			cvdiag = sumsq
		}
	}
	if jmin > i {
		r.swap(i, jmin)
	}
	r.cov[tri(i, i)] = cvdiag

	if cvdiag == 0 {
		r.degenerate(i)
		return
	}

	for l := i + 1; l < m; l++ {
		r.cov[tri(l, i)] /= cvdiag
		for j := i + 1; j <= l; j++ {
			r.cov[tri(l, j)] -= r.cov[tri(l, i)] * r.cov[tri(j, i)]
		}
	}

	kind := r.kind[i]
	if demin > pivotTol {
		var yl, yu float64
		if kind.hasLower() {
			yl = -math.Exp(-amin*amin/2) / sqrt2Pi
		}
		if kind.hasUpper() {
			yu = -math.Exp(-bmin*bmin/2) / sqrt2Pi
		}
		r.y[i] = (yu - yl) / demin
	} else {
		switch kind {
		case UpperOnly:
			r.y[i] = bmin
		case LowerOnly:
			r.y[i] = amin
		case Both:
			r.y[i] = (amin + bmin) / 2
		}
	}
	for j := 0; j <= i; j++ {
		r.cov[tri(i, j)] /= cvdiag
	}
	r.a[i] /= cvdiag
	r.b[i] /= cvdiag
}

// degenerate handles a variable i with zero conditional variance. Its
// row is normalized by its last significant entry, flipping the limits
// when that entry is negative, and the row is moved up to sit with the
// other rows that end in the same column.
func (r *reduced) degenerate(i int) {
	for l := i + 1; l < r.active; l++ {
		r.cov[tri(l, i)] = 0
	}
	r.y[i] = 0

	for j := i - 1; j >= 0; j-- {
		piv := r.cov[tri(i, j)]
		if math.Abs(piv) <= pivotTol {
			r.cov[tri(i, j)] = 0
			continue
		}
		log.Debugf("variable %d is a linear combination of the first %d", i, j+1)
		r.a[i] /= piv
		r.b[i] /= piv
		if piv < 0 {
			r.a[i], r.b[i] = r.b[i], r.a[i]
			if r.kind[i] != Both {
				r.kind[i] = 1 - r.kind[i]
			}
		}
		for l := 0; l <= j; l++ {
			r.cov[tri(i, l)] /= piv
		}
		for l := j + 1; l < i; l++ {
			if r.cov[tri(l, j+1)] > 0 {
				r.bubble(i, l)
				break
			}
		}
		return
	}
}

// bubble moves row i up to row l by adjacent exchanges of the leading
// parts of rows, carrying limits and kinds along.
func (r *reduced) bubble(i, l int) {
	off := tri(i, 0)
	for k := i - 1; k >= l; k-- {
		for m := 0; m <= k; m++ {
			r.cov[off-k-1+m], r.cov[off+m] = r.cov[off+m], r.cov[off-k-1+m]
		}
		r.a[k], r.a[k+1] = r.a[k+1], r.a[k]
		r.b[k], r.b[k+1] = r.b[k+1], r.b[k]
		r.kind[k], r.kind[k+1] = r.kind[k+1], r.kind[k]
		off -= k + 1
	}
}

// swap exchanges variables p and q: their limits, kinds, and the
// corresponding rows and columns of the symmetric matrix in cov.
func (r *reduced) swap(p, q int) {
	r.a[p], r.a[q] = r.a[q], r.a[p]
	r.b[p], r.b[q] = r.b[q], r.b[p]
	r.kind[p], r.kind[q] = r.kind[q], r.kind[p]
	r.cov[tri(p, p)], r.cov[tri(q, q)] = r.cov[tri(q, q)], r.cov[tri(p, p)]
	for k := 0; k < r.n; k++ {
		if k == p || k == q {
			continue
		}
		x, y := sym(p, k), sym(q, k)
		r.cov[x], r.cov[y] = r.cov[y], r.cov[x]
	}
}
