// SPDX-License-Identifier: MIT

package qr

import "github.com/katalvlaran/linalg/matrix"

// Decompose is shorthand for New(a, opts...) followed by Householder.
func Decompose(a matrix.Matrix, opts ...Option) (q, r *matrix.Dense, err error) {
	e, err := New(a, opts...)
	if err != nil {
		return nil, nil, err
	}

	return e.Householder()
}

// Solve is shorthand for New(a, opts...) followed by Solve(b).
func Solve(a matrix.Matrix, b []float64, opts ...Option) ([]float64, error) {
	e, err := New(a, opts...)
	if err != nil {
		return nil, err
	}

	return e.Solve(b)
}
