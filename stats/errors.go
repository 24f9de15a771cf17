// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"errors"
	"fmt"
)

var (
	// ErrDimension is wrapped by errors for vectors or matrices whose
	// size does not match the distribution.
	ErrDimension = errors.New("dimension mismatch")

	// ErrNoParameters is returned by a MultivariateNormal whose
	// parameters have not been set.
	ErrNoParameters = errors.New("stats: distribution parameters not set")
)

// A ParamError reports an invalid argument.
type ParamError struct {
	// Param names the argument, such as "mean" or "cov".
	Param string

	// Reason describes what is wrong with it.
	Reason string

	// Err is an underlying error, if any.
	Err error
}

func (e *ParamError) Error() string {
	return "stats: invalid " + e.Param + ": " + e.Reason
}

func (e *ParamError) Unwrap() error {
	return e.Err
}

func dimError(param string, got, want int) error {
	return &ParamError{
		Param:  param,
		Reason: fmt.Sprintf("length %d, want %d", got, want),
		Err:    ErrDimension,
	}
}
