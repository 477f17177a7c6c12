// Copyright 2026 The Scheesim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package unknown holds the tagged solution vector the MNA stamper hands
// to (and the Newton driver updates during) a solve: each slot is tagged
// Voltage or Current at construction.
package unknown

import (
	"github.com/Chubek/Scheesim/la"
	"github.com/Chubek/Scheesim/scherr"
)

// Kind tags an Entry as a node voltage or a branch current.
type Kind int

const (
	Voltage Kind = iota
	Current
)

// Entry is a tagged scalar unknown. The tag is fixed at construction (the
// MNA assembler decides which row corresponds to which kind); only the
// value is mutated across Newton iterations.
type Entry struct {
	Kind  Kind
	Value float64
}

// NewVoltage and NewCurrent build tagged entries.
func NewVoltage(v float64) Entry { return Entry{Kind: Voltage, Value: v} }
func NewCurrent(v float64) Entry { return Entry{Kind: Current, Value: v} }

// Vector holds one tagged Entry per unknown.
type Vector []Entry

// NewVector builds a Vector from parallel tag/value slices.
func NewVector(kinds []Kind, values la.Vector) (Vector, error) {
	if len(kinds) != len(values) {
		return nil, scherr.ErrShapeMismatch
	}
	v := make(Vector, len(kinds))
	for i := range v {
		v[i] = Entry{Kind: kinds[i], Value: values[i]}
	}
	return v, nil
}

// Snapshot extracts the raw values into a plain la.Vector.
func (v Vector) Snapshot() la.Vector {
	out := make(la.Vector, len(v))
	for i, e := range v {
		out[i] = e.Value
	}
	return out
}

// Assign writes raw values back, preserving each entry's tag.
func (v Vector) Assign(values la.Vector) error {
	if len(values) != len(v) {
		return scherr.ErrShapeMismatch
	}
	for i := range v {
		v[i].Value = values[i]
	}
	return nil
}

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)
	return out
}
