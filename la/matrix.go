// Copyright 2026 The Scheesim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package la

import "github.com/Chubek/Scheesim/scherr"

// Matrix is a dense, row-major real matrix: an ordered sequence of rows,
// each row an ordered sequence of scalars, all rows equal length.
type Matrix []Vector

// NewMatrix allocates a zeroed rows x cols Matrix.
func NewMatrix(rows, cols int) Matrix {
	m := make(Matrix, rows)
	for i := range m {
		m[i] = make(Vector, cols)
	}
	return m
}

// NewIdentity returns the n x n identity matrix.
func NewIdentity(n int) Matrix {
	m := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		m[i][i] = 1
	}
	return m
}

// Rows and Cols report the matrix dimensions. Cols reports the length of the
// first row; callers that need strict rectangularity should call Validate.
func (m Matrix) Rows() int { return len(m) }
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Validate checks that m is rectangular with at least one row and column.
func (m Matrix) Validate() error {
	if len(m) == 0 {
		return scherr.ErrShapeMismatch
	}
	cols := len(m[0])
	if cols == 0 {
		return scherr.ErrShapeMismatch
	}
	for _, row := range m {
		if len(row) != cols {
			return scherr.ErrShapeMismatch
		}
	}
	return nil
}

// IsSquare reports whether m is non-empty and square.
func (m Matrix) IsSquare() bool {
	if err := m.Validate(); err != nil {
		return false
	}
	return m.Rows() == m.Cols()
}

// Clone returns an independent deep copy of m.
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = row.Clone()
	}
	return out
}

// MatVecMul computes m*v: each output element is the dot of the
// corresponding matrix row with v.
func MatVecMul(m Matrix, v Vector) (Vector, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if m.Cols() != len(v) {
		return nil, scherr.ErrShapeMismatch
	}
	out := make(Vector, m.Rows())
	for i, row := range m {
		dot, err := row.Dot(v)
		if err != nil {
			return nil, err
		}
		out[i] = dot
	}
	return out, nil
}

// MatMulElementwise computes the elementwise (Hadamard) product of two
// equally-shaped matrices.
func MatMulElementwise(a, b Matrix) (Matrix, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return nil, scherr.ErrShapeMismatch
	}
	out := NewMatrix(a.Rows(), a.Cols())
	for i := range a {
		for j := range a[i] {
			out[i][j] = a[i][j] * b[i][j]
		}
	}
	return out, nil
}

// Diag extracts the main diagonal of a square matrix.
func Diag(m Matrix) (Vector, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if !m.IsSquare() {
		return nil, scherr.ErrNotSquare
	}
	out := make(Vector, m.Rows())
	for i := range out {
		out[i] = m[i][i]
	}
	return out, nil
}

// DiagFlat returns a square matrix with v on its main diagonal and zeros
// elsewhere.
func DiagFlat(v Vector) Matrix {
	n := len(v)
	out := NewMatrix(n, n)
	for i, x := range v {
		out[i][i] = x
	}
	return out
}

// IsFinite reports whether every entry of m is finite.
func (m Matrix) IsFinite() bool {
	for _, row := range m {
		if !row.IsFinite() {
			return false
		}
	}
	return true
}
