// SPDX-License-Identifier: MIT

package qr

import (
	"time"

	"github.com/katalvlaran/linalg/matrix"
)

// Householder factorizes A with Householder reflections.
//
// Implementation:
//   - Stage 1: W = copy of A, P = I (M×M).
//   - Stage 2: for i in [0, min(M−1, N)):
//     c = W[i:M, i]; u = c + sign(c₀)·‖c‖·e₀;
//     W[i:M, i:N] ← H·W[i:M, i:N] with H = I − 2uuᵀ/uᵀu;
//     W[i+1:M, i] ← 0 exactly; P[i:M, :] ← H·P[i:M, :] (P ← Hᵢ·P).
//     A sub-column that is exactly zero is already triangular: step skipped.
//   - Stage 3: Q = Pᵀ, R = W. Reduced mode keeps the leading K = min(M,N)
//     columns of Q and rows of R.
//
// Step count: N when M > N, N−1 when M = N, M−1 when M < N.
// Rᵢᵢ = −sign(cᵢ)·‖c‖, so the diagonal sign pattern is deterministic.
//
// Complexity: O(M·N·K) for R plus O(M²·K) for Q.
func (e *QR) Householder() (q, r *matrix.Dense, err error) {
	start := time.Now()
	w := e.work()
	m, n := w.Shape()
	p, err := matrix.NewIdentity(m)
	if err != nil {
		return nil, nil, qrErrorf(opHouse, err)
	}

	steps := min(m-1, n)
	for i := 0; i < steps; i++ {
		if err = reflectStep(w, p, i); err != nil {
			return nil, nil, qrErrorf(opHouse, err)
		}
	}

	if q, err = matrix.Transpose(p); err != nil {
		return nil, nil, qrErrorf(opHouse, err)
	}
	r = w
	if e.opts.reduce {
		k := min(m, n)
		if q, err = q.Induced(seq(m), seq(k)); err != nil {
			return nil, nil, qrErrorf(opHouse, err)
		}
		if r, err = r.Induced(seq(k), seq(n)); err != nil {
			return nil, nil, qrErrorf(opHouse, err)
		}
	}
	e.logFactorized(MethodHouseholder, start)

	return q, r, nil
}

// reflectStep performs Householder step i on the working matrix w and the
// accumulated reflector product p.
func reflectStep(w, p *matrix.Dense, i int) error {
	m, n := w.Shape()
	active, err := w.View(i, i, m-i, n-i)
	if err != nil {
		return err
	}
	c, err := active.Col(0)
	if err != nil {
		return err
	}
	e0, err := matrix.BasisVec(0, m-i)
	if err != nil {
		return err
	}

	alpha := matrix.Sign(c[0]) * matrix.L2Norm(c)
	if alpha == 0 {
		return nil
	}
	u := make([]float64, len(c))
	for k := range c {
		u[k] = c[k] + alpha*e0[k]
	}

	if err = matrix.ReflectInPlace(active, u); err != nil {
		return err
	}
	for k := 1; k < m-i; k++ {
		if err = active.Set(k, 0, 0); err != nil {
			return err
		}
	}

	rows, err := p.View(i, 0, m-i, m)
	if err != nil {
		return err
	}

	return matrix.ReflectInPlace(rows, u)
}

// seq returns [0, 1, …, n-1].
func seq(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}

	return s
}
