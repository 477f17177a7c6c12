// Copyright 2026 The Scheesim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package la_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Chubek/Scheesim/la"
)

func TestVectorElementwise(t *testing.T) {
	a := la.Vector{1, 2, 3}
	b := la.Vector{4, 5, 6}

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.Equal(t, la.Vector{5, 7, 9}, sum)

	diff, err := a.Sub(b)
	require.NoError(t, err)
	require.Equal(t, la.Vector{-3, -3, -3}, diff)

	prod, err := a.Mul(b)
	require.NoError(t, err)
	require.Equal(t, la.Vector{4, 10, 18}, prod)
}

func TestVectorShapeMismatch(t *testing.T) {
	a := la.Vector{1, 2, 3}
	b := la.Vector{1, 2}
	_, err := a.Add(b)
	require.Error(t, err)

	_, err = a.Dot(b)
	require.Error(t, err)
}

func TestVectorDivByZeroPropagates(t *testing.T) {
	a := la.Vector{1, -1, 0}
	b := la.Vector{0, 0, 0}
	out, err := a.Div(b)
	require.NoError(t, err)
	require.True(t, math.IsInf(out[0], 1))
	require.True(t, math.IsInf(out[1], -1))
	require.True(t, math.IsNaN(out[2]))
}

func TestDot(t *testing.T) {
	a := la.Vector{1, 2, 3}
	b := la.Vector{4, 5, 6}
	dot, err := a.Dot(b)
	require.NoError(t, err)
	require.Equal(t, 32.0, dot)
}

func TestIsDiagonallyConvergedReflexive(t *testing.T) {
	v := la.Vector{1, -2, 3.5, 0}
	ok, err := la.IsDiagonallyConverged(v, v, 1e-8, 1e-8)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestIsDiagonallyConvergedTolerance(t *testing.T) {
	x := la.Vector{1.0000001}
	y := la.Vector{1.0}
	ok, err := la.IsDiagonallyConverged(x, y, 1e-5, 1e-8)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = la.IsDiagonallyConverged(x, y, 0, 0)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestDampenLnZeroAndSign(t *testing.T) {
	require.Equal(t, 0.0, la.DampenLn(0, 1.0, 3))

	for _, x := range []float64{0.001, 1, 5, -1, -5} {
		d := la.DampenLn(x, 1.0, 2)
		if x > 0 {
			require.Greater(t, d, 0.0)
		} else {
			require.Less(t, d, 0.0)
		}
	}
}

func TestDampenLnWorkedExamples(t *testing.T) {
	require.InDelta(t, math.Log(2), la.DampenLn(1.0, 1.0, 1), 1e-12)
	require.InDelta(t, -math.Log(2), la.DampenLn(-1.0, 1.0, 1), 1e-12)
	require.InDelta(t, math.Log(7), la.DampenLn(3.0, 2.0, 2), 1e-12)
}
