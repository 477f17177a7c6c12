// Copyright 2026 The Scheesim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fun holds the RHS model consumed by the Newton driver: a vector
// of tagged entries, each either a constant scalar or a nonlinear pure
// function of one argument, using a bare function value rather than an
// interface since a single scalar-in-scalar-out shape covers every entry.
package fun

import (
	"github.com/Chubek/Scheesim/la"
	"github.com/Chubek/Scheesim/scherr"
)

// Scalar is a pure scalar function f: R -> R. Implementations must not
// assume callability beyond the lifetime of the solve that evaluates them.
type Scalar func(float64) float64

// Kind tags an Entry's shape.
type Kind int

const (
	// KindConstant entries ignore their argument and always evaluate to
	// a fixed value.
	KindConstant Kind = iota
	// KindNonlinear entries evaluate Fn at the cached Arg.
	KindNonlinear
)

// Entry is a tagged RHS value: either Constant(value) or
// Nonlinear(fn, arg). Arg is the cached most-recent Newton iterate for the
// unknown this entry corresponds to.
type Entry struct {
	Kind  Kind
	Value float64 // valid when Kind == KindConstant
	Fn    Scalar  // valid when Kind == KindNonlinear
	Arg   float64 // valid when Kind == KindNonlinear
}

// Constant builds a KindConstant entry.
func Constant(value float64) Entry {
	return Entry{Kind: KindConstant, Value: value}
}

// Nonlinear builds a KindNonlinear entry with the given initial argument.
func Nonlinear(fn Scalar, arg float64) Entry {
	return Entry{Kind: KindNonlinear, Fn: fn, Arg: arg}
}

// Evaluate yields Value for a constant entry, or Fn(Arg) for a nonlinear
// one.
func (e Entry) Evaluate() float64 {
	if e.Kind == KindConstant {
		return e.Value
	}
	return e.Fn(e.Arg)
}

// Model is a vector of tagged RHS entries, one per unknown.
type Model []Entry

// NewModel allocates a Model of n constant-zero entries.
func NewModel(n int) Model {
	m := make(Model, n)
	for i := range m {
		m[i] = Constant(0)
	}
	return m
}

// Evaluate returns the raw (undamped) evaluation of every entry.
func (m Model) Evaluate() la.Vector {
	out := make(la.Vector, len(m))
	for i, e := range m {
		out[i] = e.Evaluate()
	}
	return out
}

// EvaluateDampened applies DampenLn to each entry's raw evaluation, giving
// the damped right-hand side a Newton iteration solves against.
func (m Model) EvaluateDampened(alpha float64, k int) la.Vector {
	out := make(la.Vector, len(m))
	for i, e := range m {
		out[i] = la.DampenLn(e.Evaluate(), alpha, k)
	}
	return out
}

// UpdateArgs pairwise replaces each nonlinear entry's cached argument.
// Constant entries are left untouched. newArgs must have the same length
// as m.
func (m Model) UpdateArgs(newArgs la.Vector) error {
	if len(newArgs) != len(m) {
		return scherr.ErrShapeMismatch
	}
	for i := range m {
		if m[i].Kind == KindNonlinear {
			m[i].Arg = newArgs[i]
		}
	}
	return nil
}
