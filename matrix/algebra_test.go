// Package matrix_test contains unit tests for the homogeneous algebra.
package matrix_test

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hypertile/matrix"
)

const tol = 1e-9

// sample is a well-conditioned, non-orthogonal 4×4 matrix.
var sample = matrix.Matrix{
	{2, 1, 0, 0.5},
	{0, 3, 1, 0},
	{1, 0, 4, 1},
	{0.5, 0, 1, 2},
}

func TestDet_IdentityAndZero(t *testing.T) {
	for n := 1; n <= matrix.MaxDim; n++ {
		d, err := matrix.Det(matrix.Id, n)
		require.NoError(t, err)
		assert.Equal(t, 1.0, d, "det(Id) n=%d", n)

		d, err = matrix.Det(matrix.Zero, n)
		require.NoError(t, err)
		assert.Equal(t, 0.0, d, "det(Zero) n=%d", n)
	}
	assert.Equal(t, 1.0, matrix.Det3(matrix.Id))
	assert.Equal(t, 1.0, matrix.Det2(matrix.Id))
	assert.Equal(t, 0.0, matrix.Det3(matrix.Zero))
}

func TestDet_AgreesWithDet3(t *testing.T) {
	d, err := matrix.Det(sample, 3)
	require.NoError(t, err)
	assert.InDelta(t, matrix.Det3(sample), d, tol)
}

func TestDet_RowSwapFlipsSign(t *testing.T) {
	S := matrix.SwapCoords(0, 1)
	d, err := matrix.Det(S, 4)
	require.NoError(t, err)
	assert.InDelta(t, -1.0, d, tol)
}

func TestDet_BadDimension(t *testing.T) {
	_, err := matrix.Det(matrix.Id, 5)
	require.ErrorIs(t, err, matrix.ErrDimension)
}

func TestInverse_RoundTrip(t *testing.T) {
	for n := 2; n <= matrix.MaxDim; n++ {
		inv := matrix.Inverse(sample, n)
		// sample restricted to the n×n block, identity elsewhere
		block := matrix.Id
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				block[i][j] = sample[i][j]
			}
		}
		assert.True(t, matrix.EqMatrix(block.Mul(inv), matrix.Id, tol), "T·T⁻¹ n=%d", n)
		assert.True(t, matrix.EqMatrix(matrix.Inverse(inv, n), block, tol), "(T⁻¹)⁻¹ n=%d", n)
	}
}

func TestInverse3_MatchesGaussJordan(t *testing.T) {
	a := matrix.Inverse3(sample)
	b := matrix.Inverse(sample, 3)
	assert.Less(t, a.MaxAbsDiff(b), tol)
}

func TestInverse_SingularWarnsAndReturnsId(t *testing.T) {
	var buf bytes.Buffer
	matrix.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer matrix.SetLogger(nil)

	before := matrix.SingularInversions()
	got := matrix.Inverse(matrix.Zero, 4)
	assert.Equal(t, matrix.Id, got)
	assert.Equal(t, matrix.Id, matrix.Inverse3(matrix.Zero))
	assert.Equal(t, before+2, matrix.SingularInversions())
	assert.Contains(t, buf.String(), "inverting a singular matrix")
}

func TestTryInverse_Singular(t *testing.T) {
	_, err := matrix.TryInverse(matrix.Diag(1, 0, 1, 1), 4)
	require.Error(t, err)
	assert.True(t, errors.Is(err, matrix.ErrSingular))

	_, err = matrix.TryInverse3(matrix.Zero)
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestInverse_BadDimensionPanics(t *testing.T) {
	assert.Panics(t, func() { matrix.Inverse(matrix.Id, 0) })
}

func TestOrthoInverses(t *testing.T) {
	R := matrix.Cspin(0, 1, 0.7).Mul(matrix.Cspin(1, 2, -0.3))
	assert.True(t, matrix.EqMatrix(R.Mul(matrix.OrthoInverse(R, 3)), matrix.Id, tol))

	L := matrix.Lorentz(0, 2, 1.3).Mul(matrix.Cspin(0, 1, 0.4))
	assert.True(t, matrix.EqMatrix(L.Mul(matrix.PseudoOrthoInverse(L, 3)), matrix.Id, tol))
}

func TestExp_Rotation(t *testing.T) {
	var G matrix.Matrix
	G[0][1], G[1][0] = 1, -1
	got := matrix.Exp(G.Scale(2.5))
	assert.Less(t, got.MaxAbsDiff(matrix.Cspin(0, 1, 2.5)), 1e-12)

	var B matrix.Matrix
	B[0][2], B[2][0] = 1, 1
	got = matrix.Exp(B.Scale(1.7))
	assert.Less(t, got.MaxAbsDiff(matrix.Lorentz(0, 2, 1.7)), 1e-10)
	assert.Equal(t, matrix.Id, matrix.Exp(matrix.Zero))
}

func TestCspin_ZeroAndComposition(t *testing.T) {
	assert.Equal(t, matrix.Id, matrix.Cspin(0, 1, 0))
	a, b := 0.4, 1.1
	assert.True(t, matrix.EqMatrix(matrix.Cspin(0, 1, a).Mul(matrix.Cspin(0, 1, b)), matrix.Cspin(0, 1, a+b), tol))
	assert.True(t, matrix.EqMatrix(matrix.Cspin90(0, 1), matrix.Cspin(0, 1, math.Pi/2), tol))
	assert.True(t, matrix.EqMatrix(matrix.Cspin180(1, 2), matrix.Cspin(1, 2, math.Pi), tol))
}

func TestSpintoc_ZeroesCoordinate(t *testing.T) {
	h := matrix.Point{3, 4, 1, 0}
	r := matrix.Spintoc(h, 0, 1).Apply(h)
	assert.InDelta(t, 5.0, r[0], tol)
	assert.InDelta(t, 0.0, r[1], tol)
	back := matrix.Rspintoc(h, 0, 1).Apply(r)
	assert.InDelta(t, 3.0, back[0], tol)
	assert.InDelta(t, 4.0, back[1], tol)
	assert.Equal(t, matrix.Id, matrix.Spintoc(matrix.Point{0, 0, 1, 0}, 0, 1))
}
