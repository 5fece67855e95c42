// SPDX-License-Identifier: MIT

package qr

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/linalg/kahan"
	"github.com/katalvlaran/linalg/matrix"
)

// Solve returns x minimizing ‖Ax − b‖₂ for a single right-hand side.
//
// Implementation:
//   - Stage 1: validate len(b) == M and M ≥ N before any arithmetic.
//   - Stage 2: reduced Householder factorization A = Q·R (Q: M×N, R: N×N).
//   - Stage 3: y = Qᵀb, then back substitution on R·x = y with each inner
//     sum accumulated in a kahan.Sum.
//
// A zero or tiny Rᵢᵢ (rank-deficient A) is not detected: x carries NaN/Inf.
//
// Errors: ErrNilMatrix (nil b), ErrDimensionMismatch (len(b) != M),
// ErrUnderdetermined (M < N).
// Complexity: O(M·N²) factorization + O(M·N + N²) per solve.
func (e *QR) Solve(b []float64) ([]float64, error) {
	start := time.Now()
	m, _ := e.a.Shape()
	if err := matrix.ValidateVecLen(b, m); err != nil {
		return nil, qrErrorf(opSolve, fmt.Errorf("b: %w", err))
	}
	f, err := e.triangular(opSolve)
	if err != nil {
		return nil, err
	}
	x, err := f.solveVec(b)
	if err != nil {
		return nil, qrErrorf(opSolve, err)
	}
	e.logSolved(1, start)

	return x, nil
}

// SolveMatrix solves A·X ≈ B column by column for an M×K right-hand side,
// returning X of shape N×K. Column k of X equals Solve(B[:,k]) exactly:
// both run the same per-column arithmetic on one shared factorization.
//
// Errors: ErrNilMatrix (nil b), ErrDimensionMismatch (b.Rows() != M),
// ErrUnderdetermined (M < N).
func (e *QR) SolveMatrix(b matrix.Matrix) (*matrix.Dense, error) {
	start := time.Now()
	if err := matrix.ValidateNotNil(b); err != nil {
		return nil, qrErrorf(opSolveMat, err)
	}
	m, _ := e.a.Shape()
	if b.Rows() != m {
		return nil, qrErrorf(opSolveMat, fmt.Errorf("b has %d rows, A has %d: %w", b.Rows(), m, ErrDimensionMismatch))
	}
	bd, err := matrix.ToDense(b, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, qrErrorf(opSolveMat, err)
	}
	f, err := e.triangular(opSolveMat)
	if err != nil {
		return nil, err
	}

	k := bd.Cols()
	xs := make([][]float64, k)
	var col []float64
	for j := 0; j < k; j++ {
		if col, err = bd.Col(j); err != nil {
			return nil, qrErrorf(opSolveMat, err)
		}
		if xs[j], err = f.solveVec(col); err != nil {
			return nil, qrErrorf(opSolveMat, err)
		}
	}
	x, err := matrix.FromColumns(xs)
	if err != nil {
		return nil, qrErrorf(opSolveMat, err)
	}
	e.logSolved(k, start)

	return x, nil
}

// factors is a reduced factorization prepared for repeated solves.
type factors struct {
	qt *matrix.Dense // Qᵀ, N×M
	r  [][]float64   // rows of R, N×N
}

// triangular runs the reduced Householder factorization for the solver.
func (e *QR) triangular(op string) (*factors, error) {
	m, n := e.a.Shape()
	if m < n {
		return nil, qrErrorf(op, ErrUnderdetermined)
	}
	reduced := &QR{a: e.a, opts: e.opts}
	reduced.opts.reduce = true
	q, r, err := reduced.Householder()
	if err != nil {
		return nil, qrErrorf(op, err)
	}
	qt, err := matrix.Transpose(q)
	if err != nil {
		return nil, qrErrorf(op, err)
	}
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		if rows[i], err = r.Row(i); err != nil {
			return nil, qrErrorf(op, err)
		}
	}

	return &factors{qt: qt, r: rows}, nil
}

// solveVec computes y = Qᵀb and back-substitutes R·x = y.
func (f *factors) solveVec(b []float64) ([]float64, error) {
	y, err := matrix.MatVec(f.qt, b)
	if err != nil {
		return nil, err
	}

	return backSubstitute(f.r, y), nil
}

// backSubstitute solves the upper-triangular system R·x = y for x.
// For i = N−1..0: xᵢ = (yᵢ − Σ_{j=N−1..i+1} Rᵢⱼ·xⱼ) / Rᵢᵢ.
func backSubstitute(r [][]float64, y []float64) []float64 {
	n := len(r)
	x := make([]float64, n)
	var acc kahan.Sum
	var i, j int
	for i = n - 1; i >= 0; i-- {
		acc.Reset()
		for j = n - 1; j > i; j-- {
			acc.Add(r[i][j] * x[j])
		}
		x[i] = (y[i] - acc.Total()) / r[i][i]
	}

	return x
}

func (e *QR) logSolved(rhs int, start time.Time) {
	rows, cols := e.a.Shape()
	e.opts.logger.Debug(logSolve,
		slog.Int("rows", rows),
		slog.Int("cols", cols),
		slog.Int("rhs", rhs),
		slog.Duration("elapsed", time.Since(start)),
	)
}
