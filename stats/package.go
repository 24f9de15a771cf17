// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats provides the normal distribution in one and many
// dimensions.
//
// MultivariateNormal evaluates densities, Mahalanobis distances and
// rectangle probabilities of a multivariate normal with arbitrary
// (possibly singular) covariance. Rectangle probabilities in three or
// more dimensions are computed numerically by package mvncdf.
package stats // import "github.com/statnum/mvnorm/stats"

import (
	"math"

	logging "github.com/op/go-logging"
)

var inf = math.Inf(1)
var nan = math.NaN()

const logModule = "mvnorm/stats"

var log = logging.MustGetLogger(logModule)

// Debug messages stay off until the program raises the level of
// logModule or installs its own backend.
func init() {
	logging.SetLevel(logging.WARNING, logModule)
}
