// Copyright 2026 The Scheesim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unknown_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/Chubek/Scheesim/la"
	"github.com/Chubek/Scheesim/unknown"
)

func TestSnapshotAndAssignPreserveTags(t *testing.T) {
	v, err := unknown.NewVector(
		[]unknown.Kind{unknown.Voltage, unknown.Current, unknown.Voltage},
		la.Vector{1, 2, 3},
	)
	require.NoError(t, err)

	snap := v.Snapshot()
	if diff := cmp.Diff(la.Vector{1, 2, 3}, snap, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Fatalf("Snapshot mismatch (-want +got):\n%s", diff)
	}

	require.NoError(t, v.Assign(la.Vector{9, 8, 7}))
	require.Equal(t, unknown.Voltage, v[0].Kind)
	require.Equal(t, unknown.Current, v[1].Kind)
	require.Equal(t, unknown.Voltage, v[2].Kind)
	require.Equal(t, 9.0, v[0].Value)
}

func TestAssignShapeMismatch(t *testing.T) {
	v, err := unknown.NewVector([]unknown.Kind{unknown.Voltage}, la.Vector{1})
	require.NoError(t, err)
	require.Error(t, v.Assign(la.Vector{1, 2}))
}
