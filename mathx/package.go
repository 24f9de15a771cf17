// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mathx implements special functions used to evaluate normal
// probabilities: the standard normal CDF and its inverse, and the
// bivariate normal upper tail.
//
// All functions are pure and safe for concurrent use.
package mathx // import "github.com/statnum/mvnorm/mathx"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()
