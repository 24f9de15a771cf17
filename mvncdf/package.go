// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mvncdf computes rectangle probabilities of the standard
// multivariate normal distribution with a given correlation matrix,
// using Genz's method: the variables are reordered and transformed so
// the probability becomes an integral over the unit hypercube, which is
// then evaluated with randomized lattice rules.
//
// Problems with at most two effective variables are answered in closed
// form.
package mvncdf // import "github.com/statnum/mvnorm/mvncdf"

import logging "github.com/op/go-logging"

const logModule = "mvnorm/mvncdf"

var log = logging.MustGetLogger(logModule)

// Debug messages stay off until the program raises the level of
// logModule or installs its own backend.
func init() {
	logging.SetLevel(logging.WARNING, logModule)
}
