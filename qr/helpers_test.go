// SPDX-License-Identifier: MIT
// Package qr_test contains shared fixtures and property checks.
//
// Purpose:
//   - Build deterministic inputs (literals, seeded Gaussian matrices).
//   - Bridge to gonum/mat, used as an independent reference implementation.
//   - Centralize the algebraic properties every factorization must satisfy.

package qr_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linalg/matrix"
)

// hide masks *matrix.Dense behind the Matrix interface to force fallback paths.
type hide struct{ matrix.Matrix }

// mustDense builds a Dense from row literals or fails the test.
func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return d
}

// randDense returns an r×c matrix of standard normal entries from rng.
func randDense(tb testing.TB, rng *rand.Rand, r, c int) *matrix.Dense {
	tb.Helper()
	d, err := matrix.NewDense(r, c)
	require.NoError(tb, err)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.NoError(tb, d.Set(i, j, rng.NormFloat64()))
		}
	}

	return d
}

// randVec returns n standard normal values from rng.
func randVec(rng *rand.Rand, n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = rng.NormFloat64()
	}

	return v
}

// mustAt reads m[i,j] or fails the test.
func mustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// toGonum copies m into a gonum dense matrix.
func toGonum(t *testing.T, m matrix.Matrix) *mat.Dense {
	t.Helper()
	r, c := m.Rows(), m.Cols()
	g := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			g.Set(i, j, mustAt(t, m, i, j))
		}
	}

	return g
}

// fromGonum copies the leading rows×cols block of g into a Dense.
func fromGonum(t *testing.T, g mat.Matrix, rows, cols int) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDense(rows, cols)
	require.NoError(t, err)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			require.NoError(t, d.Set(i, j, g.At(i, j)))
		}
	}

	return d
}

// requireClose asserts element-wise closeness with an absolute tolerance.
func requireClose(t *testing.T, want, got matrix.Matrix, atol float64, msg string) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "%s: rows", msg)
	require.Equal(t, want.Cols(), got.Cols(), "%s: cols", msg)
	ok, err := matrix.AllClose(got, want, 0, atol)
	require.NoError(t, err)
	require.True(t, ok, "%s: not within %.1e", msg, atol)
}

// propReconstruction checks Q·R ≈ A.
func propReconstruction(t *testing.T, a, q, r matrix.Matrix, atol float64) {
	t.Helper()
	prod, err := matrix.Mul(q, r)
	require.NoError(t, err)
	requireClose(t, a, prod, atol, "Q·R ≈ A")
}

// propOrthonormalColumns checks Qᵀ·Q ≈ I.
func propOrthonormalColumns(t *testing.T, q matrix.Matrix, atol float64) {
	t.Helper()
	qt, err := matrix.Transpose(q)
	require.NoError(t, err)
	qtq, err := matrix.Mul(qt, q)
	require.NoError(t, err)
	id, err := matrix.NewIdentity(q.Cols())
	require.NoError(t, err)
	requireClose(t, id, qtq, atol, "QᵀQ ≈ I")
}

// propUpper checks that R is upper triangular within eps.
func propUpper(t *testing.T, r matrix.Matrix, eps float64) {
	t.Helper()
	for i := 1; i < r.Rows(); i++ {
		for j := 0; j < i && j < r.Cols(); j++ {
			v := mustAt(t, r, i, j)
			require.True(t, math.Abs(v) <= eps, "R[%d,%d] = %g below the diagonal", i, j, v)
		}
	}
}

// propShape checks the dimensions of Q and R.
func propShape(t *testing.T, q, r matrix.Matrix, qRows, qCols, rRows, rCols int) {
	t.Helper()
	require.Equal(t, [2]int{qRows, qCols}, [2]int{q.Rows(), q.Cols()}, "Q shape")
	require.Equal(t, [2]int{rRows, rCols}, [2]int{r.Rows(), r.Cols()}, "R shape")
}
