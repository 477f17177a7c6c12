// Copyright 2026 The Scheesim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package la

import (
	"math"
	"runtime"
	"sync"

	"github.com/Chubek/Scheesim/scherr"
)

// DefaultPivotEpsilon is the zero-pivot tolerance used when
// LUSolver.PivotEpsilon is left at its zero value. An exact-zero comparison
// is too brittle for floating-point pivots accumulated through prior
// elimination steps, so a small epsilon band is used instead.
const DefaultPivotEpsilon = 1e-12

// LUSolver factors a square matrix A = P*L*U via parallel Gaussian
// elimination with partial row pivoting, then solves A*x = b by forward and
// back substitution.
type LUSolver struct {
	// PivotEpsilon is the tolerance below which a pivot candidate is
	// treated as zero. Zero means DefaultPivotEpsilon.
	PivotEpsilon float64

	// Workers caps the number of goroutines used during factorization.
	// Zero means min(n-1, runtime.GOMAXPROCS(0)): spawning one goroutine
	// per elimination column wastes resources once n exceeds the
	// available cores, so the worker count is capped and columns are
	// reassigned across the capped set.
	Workers int
}

// LUResult holds the outcome of a factorization: L (unit lower triangular,
// with its unit diagonal stored explicitly rather than left implicit),
// U (the upper triangle of the mutated coefficient matrix, diagonal
// included), and P (the row-permutation matrix applied during pivoting).
type LUResult struct {
	L Matrix
	U Matrix
	P Matrix
}

func (s LUSolver) epsilon() float64 {
	if s.PivotEpsilon > 0 {
		return s.PivotEpsilon
	}
	return DefaultPivotEpsilon
}

func (s LUSolver) workerCount(n int) int {
	if n <= 1 {
		return 1
	}
	max := n - 1
	w := s.Workers
	if w <= 0 {
		w = runtime.GOMAXPROCS(0)
	}
	if w > max {
		w = max
	}
	if w < 1 {
		w = 1
	}
	return w
}

// Factor mutates A in place into U (the entries below the diagonal are
// eliminated; the multipliers are kept in a separate L) and returns L, the
// consumed U-bearing A, and the permutation matrix P applied during
// pivoting. Callers that need the original matrix
// preserved must clone it first.
func (s LUSolver) Factor(a Matrix) (LUResult, error) {
	if err := a.Validate(); err != nil {
		return LUResult{}, err
	}
	if !a.IsSquare() {
		return LUResult{}, scherr.ErrNotSquare
	}
	n := a.Rows()
	eps := s.epsilon()
	l := NewIdentity(n)
	p := NewIdentity(n)

	t := s.workerCount(n)
	rowSync := newCyclicBarrier(t)
	pivotDone := newCyclicBarrier(t)

	var mu sync.Mutex
	var pivotErr error

	var wg sync.WaitGroup
	wg.Add(t)
	for w := 0; w < t; w++ {
		w := w
		go func() {
			defer wg.Done()
			for i := 0; i < n; i++ {
				rowSync.wait() // row-sync barrier: rendezvous at start of column i

				if w == 0 { // single-writer pivot search and swap
					if err := pivotSearchAndSwap(a, l, p, i, n, eps); err != nil {
						mu.Lock()
						if pivotErr == nil {
							pivotErr = err
						}
						mu.Unlock()
					}
				}

				pivotDone.wait() // pivot barrier: wait for swap before reading row i

				mu.Lock()
				failed := pivotErr != nil
				mu.Unlock()
				if failed {
					return
				}

				for j := i + 1; j < n; j++ {
					if j%t != w {
						continue
					}
					factor := a[j][i] / a[i][i]
					l[j][i] = factor
					for col := i; col < n; col++ {
						a[j][col] -= factor * a[i][col]
					}
				}
			}
		}()
	}
	wg.Wait() // phase barrier: all row updates visible before substitution

	if pivotErr != nil {
		return LUResult{}, pivotErr
	}
	return LUResult{L: l, U: a, P: p}, nil
}

// pivotSearchAndSwap: if A[i][i] is (within eps of) zero, scan rows
// i+1..n-1 for a usable pivot and swap it into row i, mirroring the swap
// in P and in the multipliers already stored in L (columns 0..i-1), so
// that P*A = L*U keeps holding. Returns ErrSingular if no pivot is found.
func pivotSearchAndSwap(a, l, p Matrix, i, n int, eps float64) error {
	if math.Abs(a[i][i]) >= eps {
		return nil
	}
	for k := i + 1; k < n; k++ {
		if math.Abs(a[k][i]) >= eps {
			a[i], a[k] = a[k], a[i]
			p[i], p[k] = p[k], p[i]
			for c := 0; c < i; c++ {
				l[i][c], l[k][c] = l[k][c], l[i][c]
			}
			return nil
		}
	}
	return scherr.ErrSingular
}

// ForwardSubstitute solves L*y = P*b for y.
func ForwardSubstitute(l, p Matrix, b Vector) (Vector, error) {
	n := l.Rows()
	if !l.IsSquare() || p.Rows() != n || len(b) != n {
		return nil, scherr.ErrShapeMismatch
	}
	pb, err := MatVecMul(p, b)
	if err != nil {
		return nil, err
	}
	y := make(Vector, n)
	y[0] = pb[0] / l[0][0]
	for i := 1; i < n; i++ {
		sum := 0.0
		for k := 0; k < i; k++ {
			sum += l[i][k] * y[k]
		}
		y[i] = (pb[i] - sum) / l[i][i]
	}
	return y, nil
}

// BackSubstitute solves U*x = y for x.
func BackSubstitute(u Matrix, y Vector) (Vector, error) {
	n := u.Rows()
	if !u.IsSquare() || len(y) != n {
		return nil, scherr.ErrShapeMismatch
	}
	x := make(Vector, n)
	if u[n-1][n-1] == 0 {
		return nil, scherr.ErrSingular
	}
	x[n-1] = y[n-1] / u[n-1][n-1]
	for i := n - 2; i >= 0; i-- {
		sum := 0.0
		for k := i + 1; k < n; k++ {
			sum += u[i][k] * x[k]
		}
		if u[i][i] == 0 {
			return nil, scherr.ErrSingular
		}
		x[i] = (y[i] - sum) / u[i][i]
	}
	return x, nil
}

// SolveLU factors a (internally cloned, so the caller's matrix is
// untouched) and solves a*x = b via forward/back substitution.
func (s LUSolver) SolveLU(a Matrix, b Vector) (Vector, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if a.Rows() != len(b) {
		return nil, scherr.ErrShapeMismatch
	}
	result, err := s.Factor(a.Clone())
	if err != nil {
		return nil, err
	}
	y, err := ForwardSubstitute(result.L, result.P, b)
	if err != nil {
		return nil, err
	}
	x, err := BackSubstitute(result.U, y)
	if err != nil {
		return nil, err
	}
	if !x.IsFinite() {
		return nil, scherr.ErrNonFiniteResult
	}
	return x, nil
}
