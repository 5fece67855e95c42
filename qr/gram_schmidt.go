// SPDX-License-Identifier: MIT

package qr

import (
	"time"

	"github.com/katalvlaran/linalg/matrix"
)

// GramSchmidt factorizes A with classical Gram-Schmidt.
//
// Implementation:
//   - Stage 1: copy the columns of A; normalize column 0.
//   - Stage 2: for i = 1..N-1 subtract from column i its projection onto
//     each q₀..qᵢ₋₁ in turn, then normalize it.
//   - Stage 3: Q = [q₀ … qₙ₋₁], R = Qᵀ·A.
//
// R has a positive diagonal by construction (Rᵢᵢ = ‖vᵢ‖). A column that
// becomes zero during orthogonalization yields NaN in Q and R.
//
// Errors: ErrUnderdetermined (M < N). Unlike Householder, which accepts any
// shape, Gram-Schmidt refuses M < N rather than return an M×N Q whose
// columns cannot all be orthonormal.
// Complexity: O(M·N²).
func (e *QR) GramSchmidt() (q, r *matrix.Dense, err error) {
	start := time.Now()
	cols, err := e.columns(opGS)
	if err != nil {
		return nil, nil, err
	}

	matrix.NormalizeInPlace(cols[0])
	var i, j, k int
	var p []float64
	for i = 1; i < len(cols); i++ {
		for j = 0; j < i; j++ {
			if p, err = matrix.Projection(cols[i], cols[j]); err != nil {
				return nil, nil, qrErrorf(opGS, err)
			}
			for k = range p {
				cols[i][k] -= p[k]
			}
		}
		matrix.NormalizeInPlace(cols[i])
	}

	if q, r, err = e.assembleQR(opGS, cols); err != nil {
		return nil, nil, err
	}
	e.logFactorized(MethodGramSchmidt, start)

	return q, r, nil
}

// GramSchmidtModified factorizes A with modified Gram-Schmidt.
//
// Implementation:
//   - Stage 1: copy the columns of A.
//   - Stage 2: for i = 0..N-1 normalize column i, then remove its
//     projection from every column j > i.
//   - Stage 3: Q = [q₀ … qₙ₋₁], R = Qᵀ·A.
//
// Each projection uses an already orthonormal qᵢ, which keeps Q closer to
// orthogonal than the classical form on ill-conditioned input.
//
// Errors: ErrUnderdetermined (M < N).
// Complexity: O(M·N²).
func (e *QR) GramSchmidtModified() (q, r *matrix.Dense, err error) {
	start := time.Now()
	cols, err := e.columns(opMGS)
	if err != nil {
		return nil, nil, err
	}

	var i, j int
	for i = 0; i < len(cols); i++ {
		matrix.NormalizeInPlace(cols[i])
		for j = i + 1; j < len(cols); j++ {
			if err = matrix.SubtractProjection(cols[j], cols[i]); err != nil {
				return nil, nil, qrErrorf(opMGS, err)
			}
		}
	}

	if q, r, err = e.assembleQR(opMGS, cols); err != nil {
		return nil, nil, err
	}
	e.logFactorized(MethodGramSchmidtModified, start)

	return q, r, nil
}

// columns extracts independent copies of the columns of A.
func (e *QR) columns(op string) ([][]float64, error) {
	rows, n := e.a.Shape()
	if rows < n {
		return nil, qrErrorf(op, ErrUnderdetermined)
	}
	cols := make([][]float64, n)
	var err error
	for j := 0; j < n; j++ {
		if cols[j], err = e.a.Col(j); err != nil {
			return nil, qrErrorf(op, err)
		}
	}

	return cols, nil
}

// assembleQR builds Q from orthonormal columns and R = Qᵀ·A.
func (e *QR) assembleQR(op string, cols [][]float64) (q, r *matrix.Dense, err error) {
	if q, err = matrix.FromColumns(cols); err != nil {
		return nil, nil, qrErrorf(op, err)
	}
	qt, err := matrix.Transpose(q)
	if err != nil {
		return nil, nil, qrErrorf(op, err)
	}
	if r, err = matrix.Mul(qt, e.a); err != nil {
		return nil, nil, qrErrorf(op, err)
	}

	return q, r, nil
}
