// SPDX-License-Identifier: MIT

// Package matrix - vector primitives shared by orthogonalization kernels.
//
// Vectors are plain []float64 treated as elements of Euclidean space.
// The primitives are pure: inputs are never mutated except by the explicit
// *InPlace variants. Degenerate inputs (zero-norm vectors) are not trapped;
// the resulting NaN/Inf is the caller's signal.
//
// Norms are computed with scaling, so finite vectors whose squared entries
// would overflow or underflow (|x| ≳ 1e154 or ≲ 1e-162) still get a finite,
// non-zero norm. Ratios of inner products go through rescale for the same reason.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	opDot        = "Dot"
	opProjection = "Projection"
	opBasisVec   = "BasisVec"
)

// dot is the unchecked inner product used in hot loops. Lengths must match.
func dot(a, b []float64) float64 { return floats.Dot(a, b) }

// rescale returns a copy of u multiplied by the power of two that brings ‖u‖
// into [0.5, 1). The factor is exact, so (uᵀx / uᵀu)·u is unchanged bit for
// bit while uᵀu no longer overflows or underflows.
// A zero, NaN or ±Inf norm leaves the copy unscaled.
func rescale(u []float64) []float64 {
	_, e := math.Frexp(L2Norm(u))
	out := make([]float64, len(u))
	for i := range u {
		out[i] = math.Ldexp(u[i], -e)
	}

	return out
}

// Dot returns aᵀb.
// Errors: ErrNilMatrix (nil vector), ErrDimensionMismatch (unequal lengths).
// Complexity: O(n).
func Dot(a, b []float64) (float64, error) {
	if a == nil {
		return 0, matrixErrorf(opDot, ErrNilMatrix)
	}
	if err := ValidateVecLen(b, len(a)); err != nil {
		return 0, matrixErrorf(opDot, err)
	}

	return dot(a, b), nil
}

// L2Norm returns the Euclidean norm ‖v‖₂. Empty input yields 0.
// Uses the scaled sum of squares, so it neither overflows nor underflows
// for finite v. NaN in v yields NaN; ±Inf yields +Inf.
// Complexity: O(n).
func L2Norm(v []float64) float64 {
	return floats.Norm(v, 2)
}

// Normalize returns a new vector v/‖v‖₂.
// The caller guarantees ‖v‖₂ ≠ 0; a zero vector yields NaN entries.
// Complexity: O(n).
func Normalize(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	NormalizeInPlace(out)

	return out
}

// NormalizeInPlace divides v by its Euclidean norm in place.
// A zero vector becomes all-NaN (0/0).
func NormalizeInPlace(v []float64) {
	n := L2Norm(v)
	for i := range v {
		v[i] /= n
	}
}

// Projection returns the component of v along onto: (vᵀonto / ontoᵀonto)·onto.
//
// Errors: ErrNilMatrix (nil vector), ErrDimensionMismatch (unequal lengths).
// A zero onto vector yields NaN entries.
// Complexity: O(n).
func Projection(v, onto []float64) ([]float64, error) {
	if v == nil {
		return nil, matrixErrorf(opProjection, ErrNilMatrix)
	}
	if err := ValidateVecLen(onto, len(v)); err != nil {
		return nil, matrixErrorf(opProjection, err)
	}
	w := rescale(onto)
	coef := dot(v, w) / dot(w, w)
	for i := range w {
		w[i] *= coef
	}

	return w, nil
}

// subtractProjection performs v ← v − (vᵀonto / ontoᵀonto)·onto without allocating.
// Lengths are assumed equal.
func subtractProjection(v, onto []float64) {
	w := rescale(onto)
	coef := dot(v, w) / dot(w, w)
	for i := range v {
		v[i] -= coef * w[i]
	}
}

// SubtractProjection performs v ← v − Projection(v, onto) in place.
// Errors: ErrNilMatrix, ErrDimensionMismatch as in Projection.
func SubtractProjection(v, onto []float64) error {
	if v == nil {
		return matrixErrorf(opProjection, ErrNilMatrix)
	}
	if err := ValidateVecLen(onto, len(v)); err != nil {
		return matrixErrorf(opProjection, err)
	}
	subtractProjection(v, onto)

	return nil
}

// Sign returns +1 for x ≥ 0 and −1 otherwise.
// Zero (either signed zero) maps to +1 so a Householder vector built from a
// zero pivot is never scaled by zero. NaN maps to −1.
func Sign(x float64) float64 {
	if x >= 0 {
		return 1
	}

	return -1
}

// BasisVec returns the length-n standard basis vector eᵢ.
// Errors: ErrInvalidDimensions (n ≤ 0), ErrOutOfRange (i ∉ [0,n)).
func BasisVec(i, n int) ([]float64, error) {
	if n <= 0 {
		return nil, matrixErrorf(opBasisVec, ErrInvalidDimensions)
	}
	if i < 0 || i >= n {
		return nil, matrixErrorf(opBasisVec, fmt.Errorf("index %d for length %d: %w", i, n, ErrOutOfRange))
	}
	e := make([]float64, n)
	e[i] = 1

	return e, nil
}
