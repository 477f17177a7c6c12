// Copyright 2026 The Scheesim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fun_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/Chubek/Scheesim/fun"
	"github.com/Chubek/Scheesim/la"
)

var floatCmp = cmpopts.EquateApprox(0, 1e-9)

func TestModelEvaluateMixedEntries(t *testing.T) {
	m := fun.Model{
		fun.Constant(5),
		fun.Nonlinear(func(x float64) float64 { return x * x }, 3),
	}
	got := m.Evaluate()
	want := la.Vector{5, 9}
	if diff := cmp.Diff(want, got, floatCmp); diff != "" {
		t.Fatalf("Evaluate mismatch (-want +got):\n%s", diff)
	}
}

func TestModelEvaluateDampened(t *testing.T) {
	m := fun.Model{fun.Constant(1)}
	got := m.EvaluateDampened(1.0, 1)
	want := la.Vector{math.Log(2)}
	if diff := cmp.Diff(want, got, floatCmp); diff != "" {
		t.Fatalf("EvaluateDampened mismatch (-want +got):\n%s", diff)
	}
}

func TestUpdateArgsOnlyTouchesNonlinear(t *testing.T) {
	m := fun.Model{
		fun.Constant(5),
		fun.Nonlinear(func(x float64) float64 { return x }, 1),
	}
	require.NoError(t, m.UpdateArgs(la.Vector{99, 2}))
	require.Equal(t, 5.0, m[0].Value)
	require.Equal(t, 2.0, m[1].Arg)
}

func TestUpdateArgsShapeMismatch(t *testing.T) {
	m := fun.NewModel(2)
	err := m.UpdateArgs(la.Vector{1})
	require.Error(t, err)
}

// TestDiodeClampCircuit exercises a representative nonlinear RHS entry: a
// single diode's exponential I-V law, the kind of nonlinearity a Newton
// driver exists to solve against.
func TestDiodeClampCircuit(t *testing.T) {
	const isat = 1e-12
	const vt = 0.02585
	diodeLaw := func(v float64) float64 { return isat * (math.Exp(v/vt) - 1) }

	m := fun.Model{fun.Nonlinear(diodeLaw, 0.6)}
	got := m.Evaluate()
	require.InDelta(t, diodeLaw(0.6), got[0], 1e-15)
}
