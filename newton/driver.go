// Copyright 2026 The Scheesim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package newton implements the outer damped quasi-Newton loop and its
// two external entry points, LinearSolve and Solve.
//
// The control-flow shape (tolerances set up once, then a bounded loop
// with early return on convergence) follows the familiar Init/Solve
// pairing used by iterative nonlinear solvers generally, but the
// numerics here are specific to this kernel: rather than a general
// f(x)=0 Newton-Raphson with an explicit Jacobian and line search, each
// iteration linearizes by re-evaluating a damped right-hand side against
// a fixed coefficient matrix, so no Jacobian or line-search machinery is
// needed.
package newton

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/Chubek/Scheesim/fun"
	"github.com/Chubek/Scheesim/internal/logx"
	"github.com/Chubek/Scheesim/la"
	"github.com/Chubek/Scheesim/scherr"
	"github.com/Chubek/Scheesim/unknown"
)

// Params bundles the outer-loop configuration: damping alpha, the
// iteration cap, the outer convergence tolerances, the inner linear method,
// and that method's own parameters (ignored for Method == la.LU).
type Params struct {
	Alpha       float64
	MaxIter     int
	Atol        float64
	Rtol        float64
	Method      la.Method
	InnerParams la.IterativeParams

	// Logger receives Debug-level iteration traces. The zero value drops
	// every event (see internal/logx), so the driver never writes to
	// standard streams unless the caller explicitly wires a writer via
	// WithWriter.
	Logger zerolog.Logger
}

// WithWriter returns a copy of p with Logger wired to w (e.g. os.Stderr
// from the CLI). Passing nil leaves logging disabled.
func (p Params) WithWriter(w io.Writer) Params {
	p.Logger = logx.New(w)
	return p
}

// Driver owns the facade used to run the inner linear solve.
type Driver struct {
	Facade la.Facade
}

// LinearSolve runs a single linear solve through the facade, with errors
// tagged with a "linear-solve" phase so callers can tell a facade failure
// apart from an outer-loop failure.
func (d Driver) LinearSolve(a la.Matrix, b la.Vector, iter la.IterativeParams, method la.Method) (la.Vector, error) {
	x, err := d.Facade.Solve(method, a, b, iter)
	if err != nil {
		return nil, scherr.Phase("linear-solve", err)
	}
	return x, nil
}

// Solve runs the damped quasi-Newton loop and returns the sequence of
// pre-update iterates (the trajectory), letting a caller inspect how the
// solve converged rather than only its final value.
func (d Driver) Solve(a la.Matrix, r fun.Model, x unknown.Vector, p Params) ([]la.Vector, error) {
	if len(r) != len(x) || a.Rows() != len(x) {
		return nil, scherr.Phase(scherr.NewtonPhase(0), scherr.ErrShapeMismatch)
	}
	if p.MaxIter <= 0 {
		return nil, scherr.Phase(scherr.NewtonPhase(0), scherr.ErrMissingParameter)
	}

	logger := p.Logger
	trajectory := make([]la.Vector, 0, p.MaxIter)

	for k := 1; k <= p.MaxIter; k++ {
		argsK := x.Snapshot()
		bK := r.EvaluateDampened(p.Alpha, k)

		inner := p.InnerParams
		if p.Method != la.LU {
			inner.X0 = argsK.Clone()
		}

		xNext, err := d.Facade.Solve(p.Method, a, bK, inner)
		if err != nil {
			return trajectory, scherr.Phase(scherr.NewtonPhase(k), err)
		}

		trajectory = append(trajectory, argsK.Clone())

		logger.Debug().Int("k", k).Floats64("x", []float64(xNext)).Msg("newton iterate")

		converged, err := la.IsDiagonallyConverged(xNext, argsK, p.Rtol, p.Atol)
		if err != nil {
			return trajectory, scherr.Phase(scherr.NewtonPhase(k), err)
		}
		if converged {
			return trajectory, nil
		}

		if err := x.Assign(xNext); err != nil {
			return trajectory, scherr.Phase(scherr.NewtonPhase(k), err)
		}
		if err := r.UpdateArgs(bK); err != nil {
			return trajectory, scherr.Phase(scherr.NewtonPhase(k), err)
		}
	}

	return trajectory, nil
}
