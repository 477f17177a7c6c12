// Copyright 2026 The Scheesim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package la

import "github.com/Chubek/Scheesim/scherr"

// IterativeParams bundles the parameters shared by Gauss-Jacobi and
// Gauss-Seidel: an initial guess, an iteration cap, and the absolute/
// relative convergence tolerances consumed by IsDiagonallyConverged.
type IterativeParams struct {
	X0      Vector
	MaxIter int
	Atol    float64
	Rtol    float64
}

func (p IterativeParams) validate(n int) error {
	if p.X0 == nil || p.MaxIter <= 0 {
		return scherr.ErrMissingParameter
	}
	if len(p.X0) != n {
		return scherr.ErrShapeMismatch
	}
	return nil
}

// GaussJacobi solves A*x=b to a convergence tolerance or iteration cap.
// Preconditions (caller-declared, not checked): A nonsingular, nonzero
// diagonal; convergence is guaranteed for diagonally dominant A.
//
// x_new = D^-1 * (b - (A-D)*x_old), the standard Jacobi update.
func GaussJacobi(a Matrix, b Vector, p IterativeParams) (Vector, error) {
	n := a.Rows()
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if !a.IsSquare() {
		return nil, scherr.ErrNotSquare
	}
	if len(b) != n {
		return nil, scherr.ErrShapeMismatch
	}
	if err := p.validate(n); err != nil {
		return nil, err
	}

	xOld := p.X0.Clone()
	xNew := make(Vector, n)
	for iter := 0; iter < p.MaxIter; iter++ {
		for i := 0; i < n; i++ {
			sum := 0.0
			for j := 0; j < n; j++ {
				if j == i {
					continue
				}
				sum += a[i][j] * xOld[j]
			}
			xNew[i] = (b[i] - sum) / a[i][i]
		}
		converged, err := IsDiagonallyConverged(xNew, xOld, p.Rtol, p.Atol)
		if err != nil {
			return nil, err
		}
		copy(xOld, xNew)
		if converged {
			break
		}
	}
	if !xOld.IsFinite() {
		return nil, scherr.ErrNonFiniteResult
	}
	return xOld, nil
}

// GaussSeidel solves A*x=b using already-updated components within each
// sweep, which typically converges in fewer iterations than GaussJacobi
// at the cost of sequential dependence between components.
func GaussSeidel(a Matrix, b Vector, p IterativeParams) (Vector, error) {
	n := a.Rows()
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if !a.IsSquare() {
		return nil, scherr.ErrNotSquare
	}
	if len(b) != n {
		return nil, scherr.ErrShapeMismatch
	}
	if err := p.validate(n); err != nil {
		return nil, err
	}

	x := p.X0.Clone()
	prev := make(Vector, n)
	for iter := 0; iter < p.MaxIter; iter++ {
		copy(prev, x)
		for j := 0; j < n; j++ {
			sum := 0.0
			for k := 0; k < n; k++ {
				if k == j {
					continue
				}
				sum += a[j][k] * x[k]
			}
			x[j] = (b[j] - sum) / a[j][j]
		}
		converged, err := IsDiagonallyConverged(x, prev, p.Rtol, p.Atol)
		if err != nil {
			return nil, err
		}
		if converged {
			break
		}
	}
	if !x.IsFinite() {
		return nil, scherr.ErrNonFiniteResult
	}
	return x, nil
}
