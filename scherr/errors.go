// Copyright 2026 The Scheesim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scherr is the shared sentinel error set for the Scheesim solve
// kernel (vector ops, LU, iterative solvers, Newton driver).
//
// Every algorithm in this module returns these sentinels (or a value wrapped
// around one via Phase) instead of panicking on a caller-triggered condition.
// Conditions that can only arise from a bug inside this module itself are
// reported with ErrBug, also as a returned error rather than a panic.
package scherr

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch is returned when two vectors/matrices that should
	// share a dimension don't, or a vector/matrix argument has length zero.
	ErrShapeMismatch = errors.New("scheesim: shape mismatch")

	// ErrNotSquare is returned when a square matrix was required but the
	// input had rows(M) != cols(M).
	ErrNotSquare = errors.New("scheesim: matrix is not square")

	// ErrSingular is returned when LU pivot search is exhausted without a
	// usable nonzero pivot, or a zero remains on the U diagonal.
	ErrSingular = errors.New("scheesim: singular matrix")

	// ErrMissingParameter is returned when an iterative method is invoked
	// without its required x0/max_iter/atol/rtol parameters.
	ErrMissingParameter = errors.New("scheesim: missing required parameter")

	// ErrNonFiniteInput marks an input vector/matrix containing NaN or
	// ±Inf. No solver in this module pre-checks its inputs, so none returns
	// it; non-finite values surface as ErrNonFiniteResult after the solve.
	ErrNonFiniteInput = errors.New("scheesim: input contains non-finite value")

	// ErrNonFiniteResult is returned when a solve produces a result vector
	// containing NaN or ±Inf.
	ErrNonFiniteResult = errors.New("scheesim: result contains non-finite value")

	// ErrBug marks an invariant violation that can only be caused by a bug
	// in this module (never by caller input that has already been
	// shape-checked). Returned, never panicked.
	ErrBug = errors.New("scheesim: internal invariant violated")
)

// Phase wraps err with a phase tag matching the user-visible error format
// required of the CLI: a single line identifying the phase ("linear-solve",
// "newton/k=3") and the underlying sentinel. Phase returns nil if err is nil.
func Phase(phase string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", phase, err)
}

// NewtonPhase formats the phase tag for outer Newton iteration k, e.g.
// "newton/k=3".
func NewtonPhase(k int) string {
	return fmt.Sprintf("newton/k=%d", k)
}
