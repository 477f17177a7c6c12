// Copyright 2026 The Scheesim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package la is the dense-linear-algebra substrate of the Scheesim solve
// kernel: vector/matrix types and elementwise arithmetic (VectorKernel), the
// parallel partially-pivoted LU factorization, the Gauss-Jacobi/Gauss-Seidel
// iterative solvers, and the facade that selects among them.
package la

import (
	"math"

	"github.com/Chubek/Scheesim/scherr"
)

// Vector is a dense 1-D real vector.
type Vector []float64

// NewVector allocates a zeroed Vector of length n.
func NewVector(n int) Vector {
	return make(Vector, n)
}

// NewVectorSlice wraps an existing slice as a Vector without copying.
func NewVectorSlice(s []float64) Vector {
	return Vector(s)
}

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)
	return out
}

func checkSameLen(a, b Vector) error {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return scherr.ErrShapeMismatch
	}
	return nil
}

// Add returns a+b elementwise.
func (a Vector) Add(b Vector) (Vector, error) {
	return elementwise(a, b, func(x, y float64) float64 { return x + y })
}

// Sub returns a-b elementwise.
func (a Vector) Sub(b Vector) (Vector, error) {
	return elementwise(a, b, func(x, y float64) float64 { return x - y })
}

// Mul returns a*b elementwise (Hadamard product).
func (a Vector) Mul(b Vector) (Vector, error) {
	return elementwise(a, b, func(x, y float64) float64 { return x * y })
}

// Div returns a/b elementwise. Division by zero propagates ±Inf/NaN as
// produced by the underlying float64 division; no pre-check is performed.
func (a Vector) Div(b Vector) (Vector, error) {
	return elementwise(a, b, func(x, y float64) float64 { return x / y })
}

// Rem returns a%b elementwise (floating-point remainder, math.Mod).
func (a Vector) Rem(b Vector) (Vector, error) {
	return elementwise(a, b, math.Mod)
}

func elementwise(a, b Vector, op func(x, y float64) float64) (Vector, error) {
	if err := checkSameLen(a, b); err != nil {
		return nil, err
	}
	out := make(Vector, len(a))
	for i := range a {
		out[i] = op(a[i], b[i])
	}
	return out, nil
}

// AddScalar, SubScalar, MulScalar, DivScalar, RemScalar apply a binary op
// between every element of v and a scalar.
func (v Vector) AddScalar(s float64) Vector { return scalarOp(v, s, func(x, y float64) float64 { return x + y }) }
func (v Vector) SubScalar(s float64) Vector { return scalarOp(v, s, func(x, y float64) float64 { return x - y }) }
func (v Vector) MulScalar(s float64) Vector { return scalarOp(v, s, func(x, y float64) float64 { return x * y }) }
func (v Vector) DivScalar(s float64) Vector { return scalarOp(v, s, func(x, y float64) float64 { return x / y }) }
func (v Vector) RemScalar(s float64) Vector { return scalarOp(v, s, math.Mod) }

func scalarOp(v Vector, s float64, op func(x, y float64) float64) Vector {
	out := make(Vector, len(v))
	for i := range v {
		out[i] = op(v[i], s)
	}
	return out
}

// Dot computes the left-to-right reduction sum_i a[i]*b[i].
func (a Vector) Dot(b Vector) (float64, error) {
	if err := checkSameLen(a, b); err != nil {
		return 0, err
	}
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum, nil
}

// IsFinite reports whether every element of v is finite (not NaN, not ±Inf).
func (v Vector) IsFinite() bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// IsDiagonallyConverged reports whether |x[i]-y[i]| <= atol + rtol*|y[i]|
// holds for every component, the elementwise convergence test used
// throughout the iterative solvers and the Newton driver.
func IsDiagonallyConverged(x, y Vector, rtol, atol float64) (bool, error) {
	if err := checkSameLen(x, y); err != nil {
		return false, err
	}
	for i := range x {
		if math.Abs(x[i]-y[i]) > atol+rtol*math.Abs(y[i]) {
			return false, nil
		}
	}
	return true, nil
}

// DampenLn computes sign(x)*(alpha/k)*ln(1+k*|x|), the logarithmic Newton
// damping function. Defined for k >= 1.
func DampenLn(x, alpha float64, k int) float64 {
	if x == 0 {
		return 0
	}
	sign := 1.0
	if x < 0 {
		sign = -1.0
	}
	return sign * (alpha / float64(k)) * math.Log(1+float64(k)*math.Abs(x))
}

// DampenLnVector applies DampenLn elementwise.
func DampenLnVector(v Vector, alpha float64, k int) Vector {
	out := make(Vector, len(v))
	for i, x := range v {
		out[i] = DampenLn(x, alpha, k)
	}
	return out
}
