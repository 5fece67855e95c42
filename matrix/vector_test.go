// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestL2Norm(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5.0, matrix.L2Norm([]float64{3, 4}))
	assert.Equal(t, 0.0, matrix.L2Norm(nil))
	assert.Equal(t, 0.0, matrix.L2Norm([]float64{}))
}

// TestL2Norm_ExtremeScale keeps finite vectors away from overflow and underflow.
func TestL2Norm_ExtremeScale(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		v    []float64
		want float64
	}{
		{"huge", []float64{3e200, 4e200}, 5e200},
		{"tiny", []float64{3e-200, 4e-200}, 5e-200},
		{"below sqrt(min)", []float64{1e-170, 1e-170}, math.Sqrt2 * 1e-170},
		{"mixed", []float64{1e200, 1e-200}, 1e200},
	}
	for _, tc := range cases {
		got := matrix.L2Norm(tc.v)
		assert.InEpsilon(t, tc.want, got, 1e-15, tc.name)
	}

	assert.True(t, math.IsNaN(matrix.L2Norm([]float64{1, math.NaN()})))
	assert.True(t, math.IsInf(matrix.L2Norm([]float64{1, math.Inf(-1)}), 1))

	u := matrix.Normalize([]float64{1e200, 1e200})
	sliceClose(t, u, []float64{math.Sqrt2 / 2, math.Sqrt2 / 2}, 0, 1e-15)
	u = matrix.Normalize([]float64{0, 1e-170})
	require.Equal(t, []float64{0, 1}, u)
}

// TestNormalize returns a unit vector without touching its input.
func TestNormalize(t *testing.T) {
	t.Parallel()

	v := []float64{3, 4}
	u := matrix.Normalize(v)
	sliceClose(t, u, []float64{0.6, 0.8}, 0, 1e-15)
	require.Equal(t, []float64{3, 4}, v)
	assert.InDelta(t, 1.0, matrix.L2Norm(u), 1e-15)

	matrix.NormalizeInPlace(v)
	require.Equal(t, u, v)
}

// TestNormalize_ZeroVector documents NaN propagation for degenerate input.
func TestNormalize_ZeroVector(t *testing.T) {
	t.Parallel()

	u := matrix.Normalize([]float64{0, 0})
	require.True(t, math.IsNaN(u[0]))
	require.True(t, math.IsNaN(u[1]))
}

func TestDot(t *testing.T) {
	t.Parallel()

	d, err := matrix.Dot([]float64{1, 2, 3}, []float64{4, -5, 6})
	require.NoError(t, err)
	assert.Equal(t, 12.0, d)

	_, err = matrix.Dot([]float64{1}, []float64{1, 2})
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Dot(nil, []float64{1})
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestProjection checks the component along onto and the in-place residual.
func TestProjection(t *testing.T) {
	t.Parallel()

	v := []float64{2, 3}
	onto := []float64{2, 0}
	p, err := matrix.Projection(v, onto)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 0}, p)

	// The residual is orthogonal to onto.
	require.NoError(t, matrix.SubtractProjection(v, onto))
	require.Equal(t, []float64{0, 3}, v)
	d, err := matrix.Dot(v, onto)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)

	_, err = matrix.Projection(v, []float64{1})
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
	AssertErrorIs(t, matrix.SubtractProjection(nil, onto), matrix.ErrNilMatrix)

	nan, err := matrix.Projection(v, []float64{0, 0})
	require.NoError(t, err)
	require.True(t, math.IsNaN(nan[0]))
}

// TestProjection_ExtremeScale projects onto vectors whose squared norm is not representable.
func TestProjection_ExtremeScale(t *testing.T) {
	t.Parallel()

	v := []float64{1e200, 3e200}
	p, err := matrix.Projection(v, []float64{2e-200, 0})
	require.NoError(t, err)
	assert.InEpsilon(t, 1e200, p[0], 1e-15)
	assert.Equal(t, 0.0, p[1])

	w := []float64{3e-170, 1e-170}
	require.NoError(t, matrix.SubtractProjection(w, []float64{1e200, 1e200}))
	assert.InEpsilon(t, 1e-170, w[0], 1e-14)
	assert.InEpsilon(t, -1e-170, w[1], 1e-14)
}

// TestSign pins the zero tie-break.
func TestSign(t *testing.T) {
	t.Parallel()

	cases := []struct {
		x, want float64
	}{
		{3, 1},
		{-0.5, -1},
		{0, 1},
		{math.Copysign(0, -1), 1},
		{math.Inf(-1), -1},
		{math.NaN(), -1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, matrix.Sign(tc.x), "Sign(%v)", tc.x)
	}
}

func TestBasisVec(t *testing.T) {
	t.Parallel()

	e, err := matrix.BasisVec(2, 4)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 1, 0}, e)

	_, err = matrix.BasisVec(4, 4)
	AssertErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.BasisVec(-1, 4)
	AssertErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.BasisVec(0, 0)
	AssertErrorIs(t, err, matrix.ErrInvalidDimensions)
}
