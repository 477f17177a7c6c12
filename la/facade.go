// Copyright 2026 The Scheesim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package la

import "github.com/Chubek/Scheesim/scherr"

// Method selects among the linear solvers behind the facade.
type Method int

const (
	LU Method = iota
	GaussJacobiMethod
	GaussSeidelMethod
)

// String names the method for logging/error messages.
func (m Method) String() string {
	switch m {
	case LU:
		return "lu"
	case GaussJacobiMethod:
		return "gauss-jacobi"
	case GaussSeidelMethod:
		return "gauss-seidel"
	default:
		return "unknown"
	}
}

// Facade is the single entry point that selects among LU, GaussJacobi, and
// GaussSeidel with a uniform input contract, so callers don't need to know
// which concrete solver backs a given method.
type Facade struct {
	LUSolver LUSolver
}

// Solve dispatches to the selected method. For LU, iter is ignored. For the
// iterative methods, iter.X0/MaxIter/Atol/Rtol are required.
func (f Facade) Solve(method Method, a Matrix, b Vector, iter IterativeParams) (Vector, error) {
	switch method {
	case LU:
		return f.LUSolver.SolveLU(a, b)
	case GaussJacobiMethod:
		return GaussJacobi(a, b, iter)
	case GaussSeidelMethod:
		return GaussSeidel(a, b, iter)
	default:
		return nil, scherr.ErrBug
	}
}
