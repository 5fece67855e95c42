// SPDX-License-Identifier: MIT

package qr

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/linalg/matrix"
)

// Method selects a factorization strategy for Factorize.
type Method int

const (
	// MethodHouseholder uses Householder reflections (default, most stable).
	MethodHouseholder Method = iota
	// MethodGramSchmidt uses classical Gram-Schmidt.
	MethodGramSchmidt
	// MethodGramSchmidtModified uses modified Gram-Schmidt.
	MethodGramSchmidtModified
)

// String implements fmt.Stringer.
func (m Method) String() string {
	switch m {
	case MethodHouseholder:
		return "householder"
	case MethodGramSchmidt:
		return "gram-schmidt"
	case MethodGramSchmidtModified:
		return "gram-schmidt-modified"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

const (
	opNew        = "New"
	opFactorize  = "Factorize"
	opGS         = "GramSchmidt"
	opMGS        = "GramSchmidtModified"
	opHouse      = "Householder"
	opSolve      = "Solve"
	opSolveMat   = "SolveMatrix"
	opPositive   = "PositiveDiagonal"
	logFactorize = "qr: factorized"
	logSolve     = "qr: solved"
)

// QR is a factorization engine bound to one input matrix.
// Its only state is an immutable copy of A and the resolved options, so a
// *QR is safe for concurrent use.
type QR struct {
	a    *matrix.Dense // pristine copy of the caller's matrix, never written
	opts Options
}

// New copies a into a fresh engine.
//
// Errors:
//   - ErrNilMatrix (nil a), ErrInvalidDimensions (empty a),
//   - ErrNaNInf (non-finite entry, unless WithNoValidateNaNInf).
//
// Complexity: O(M·N) copy.
func New(a matrix.Matrix, opts ...Option) (*QR, error) {
	o := gatherOptions(opts...)
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, qrErrorf(opNew, err)
	}
	policy := matrix.WithValidateNaNInf()
	if !o.validateNaNInf {
		policy = matrix.WithNoValidateNaNInf()
	}
	backup, err := matrix.ToDense(a, policy)
	if err != nil {
		return nil, qrErrorf(opNew, err)
	}

	return &QR{a: backup, opts: o}, nil
}

// Shape returns the dimensions (M, N) of the factored matrix.
func (e *QR) Shape() (rows, cols int) { return e.a.Shape() }

// Reduced reports whether Householder returns the reduced shape.
func (e *QR) Reduced() bool { return e.opts.reduce }

// Decompose returns the default factorization (Householder).
func (e *QR) Decompose() (q, r *matrix.Dense, err error) {
	return e.Householder()
}

// Factorize dispatches to the strategy named by m.
// Errors: ErrUnknownMethod plus those of the selected strategy.
func (e *QR) Factorize(m Method) (q, r *matrix.Dense, err error) {
	switch m {
	case MethodHouseholder:
		return e.Householder()
	case MethodGramSchmidt:
		return e.GramSchmidt()
	case MethodGramSchmidtModified:
		return e.GramSchmidtModified()
	default:
		return nil, nil, qrErrorf(opFactorize, fmt.Errorf("%v: %w", m, ErrUnknownMethod))
	}
}

// work returns a private working copy of A.
func (e *QR) work() *matrix.Dense {
	return e.a.Clone().(*matrix.Dense)
}

func (e *QR) logFactorized(m Method, start time.Time) {
	rows, cols := e.a.Shape()
	e.opts.logger.Debug(logFactorize,
		slog.String("method", m.String()),
		slog.Int("rows", rows),
		slog.Int("cols", cols),
		slog.Bool("reduce", e.opts.reduce),
		slog.Duration("elapsed", time.Since(start)),
	)
}

// PositiveDiagonal flips signs so R has a non-negative diagonal.
// With D = diag(sign(Rᵢᵢ)) (sign(0) = +1) it returns (Q·D, D·R), which is
// again a factorization of the same matrix. Inputs are not mutated.
//
// Rows of R beyond min(R.Rows, R.Cols) have no diagonal entry and keep +1.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (Q.Cols != R.Rows).
// Complexity: O(M·K + K·N).
func PositiveDiagonal(q, r *matrix.Dense) (*matrix.Dense, *matrix.Dense, error) {
	if q == nil || r == nil {
		return nil, nil, qrErrorf(opPositive, ErrNilMatrix)
	}
	if err := matrix.ValidateMulCompatible(q, r); err != nil {
		return nil, nil, qrErrorf(opPositive, err)
	}
	qd, err := matrix.ToDense(q, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, nil, qrErrorf(opPositive, err)
	}
	rd, err := matrix.ToDense(r, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, nil, qrErrorf(opPositive, err)
	}

	k := min(r.Rows(), r.Cols())
	var i, j int
	var v float64
	for i = 0; i < k; i++ {
		v, _ = rd.At(i, i)
		if matrix.Sign(v) > 0 {
			continue
		}
		for j = 0; j < qd.Rows(); j++ {
			v, _ = qd.At(j, i)
			_ = qd.Set(j, i, -v)
		}
		for j = 0; j < rd.Cols(); j++ {
			v, _ = rd.At(i, j)
			_ = rd.Set(i, j, -v)
		}
	}

	return qd, rd, nil
}
