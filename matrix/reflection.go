// SPDX-License-Identifier: MIT

// Package matrix - Householder reflection helpers.
//
// A Householder vector u (not necessarily unit length) defines the reflector
//
//	H = I − 2·u·uᵀ / (uᵀu)
//
// H is symmetric and orthogonal. Applying it to a block S never forms H:
//
//	H·S = S − 2·u·(uᵀS) / (uᵀu)
//
// which costs O(rows*cols) instead of O(rows²*cols). u is first rescaled by
// a power of two, so uᵀu stays representable for any finite non-zero u.
//
// AI-Hints:
//   - The factorization engine uses ReflectInPlace over a MatrixView of the
//     trailing block; Reflect and Reflector are the copying forms.

package matrix

import "fmt"

const (
	opReflect        = "Reflect"
	opReflector      = "Reflector"
	opReflectInPlace = "ReflectInPlace"
)

// Reflect returns H·sub as a new Dense, where H is the reflector built from u.
// sub is not mutated.
//
// Errors:
//   - ErrNilMatrix (nil sub or u), ErrDimensionMismatch (len(u) != sub.Rows()),
//   - ErrZeroVector (uᵀu == 0).
//
// Complexity: Time O(r*c), Space O(r*c).
func Reflect(sub Matrix, u []float64) (*Dense, error) {
	if err := ValidateNotNil(sub); err != nil {
		return nil, matrixErrorf(opReflect, err)
	}
	out, err := ToDense(sub, WithNoValidateNaNInf())
	if err != nil {
		return nil, matrixErrorf(opReflect, err)
	}
	v, _ := out.View(0, 0, out.r, out.c)
	if err = ReflectInPlace(v, u); err != nil {
		return nil, matrixErrorf(opReflect, err)
	}
	out.validateNaNInf = DefaultValidateNaNInf

	return out, nil
}

// Reflector materializes H = I − 2·u·uᵀ/(uᵀu) as a len(u)×len(u) Dense.
//
// Errors: ErrNilMatrix (nil u), ErrZeroVector (u == 0 or empty).
// Complexity: Time O(n²), Space O(n²).
func Reflector(u []float64) (*Dense, error) {
	if u == nil {
		return nil, matrixErrorf(opReflector, ErrNilMatrix)
	}
	n := len(u)
	w := rescale(u)
	uu := dot(w, w)
	if uu == 0 {
		return nil, matrixErrorf(opReflector, ErrZeroVector)
	}
	h, err := NewIdentity(n)
	if err != nil {
		return nil, matrixErrorf(opReflector, err)
	}
	scale := 2 / uu
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			h.data[i*n+j] -= scale * (w[i] * w[j])
		}
	}

	return h, nil
}

// ReflectInPlace overwrites the window v with H·v.
// Writes go straight to the base buffer; the numeric policy is not consulted
// so NaN produced by a degenerate u propagates.
//
// Implementation:
//   - Stage 1: validate u against v.Rows(); rescale u; reject u == 0.
//   - Stage 2: per column j: w = uᵀv[:,j]; v[:,j] -= (2w/uᵀu)·u.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrZeroVector.
// Complexity: Time O(r*c), Space O(1).
func ReflectInPlace(v *MatrixView, u []float64) error {
	if v == nil {
		return matrixErrorf(opReflectInPlace, ErrNilMatrix)
	}
	if err := ValidateVecLen(u, v.r); err != nil {
		return matrixErrorf(opReflectInPlace, fmt.Errorf("len(u)=%d, rows=%d: %w", len(u), v.r, err))
	}
	u = rescale(u)
	uu := dot(u, u)
	if uu == 0 {
		return matrixErrorf(opReflectInPlace, ErrZeroVector)
	}

	data := v.base.data
	var i, j int
	var w float64
	for j = 0; j < v.c; j++ {
		w = ZeroSum
		for i = 0; i < v.r; i++ {
			w += u[i] * data[v.offset(i, j)]
		}
		w = 2 * w / uu
		for i = 0; i < v.r; i++ {
			data[v.offset(i, j)] -= w * u[i]
		}
	}

	return nil
}
