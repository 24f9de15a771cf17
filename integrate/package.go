// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package integrate implements randomized quasi-Monte Carlo
// integration over the unit hypercube using shifted Korobov lattice
// rules.
//
// The method is that of Genz's DKBVRC: a sequence of rank-1 lattice
// rules of increasing size is applied with random shifts, and the
// spread of the shifted estimates gives a standard error. Estimates from
// successive lattice sizes are combined with inverse-variance weights
// until the error is small enough or the evaluation budget runs out.
package integrate // import "github.com/statnum/mvnorm/integrate"

import logging "github.com/op/go-logging"

const logModule = "mvnorm/integrate"

var log = logging.MustGetLogger(logModule)

// Debug messages stay off until the program raises the level of
// logModule or installs its own backend.
func init() {
	logging.SetLevel(logging.WARNING, logModule)
}
