package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/hypertile/matrix"
)

func TestPoint_Arithmetic(t *testing.T) {
	a := matrix.Point{1, 2, 3, 4}
	b := matrix.Point{4, 3, 2, 1}
	assert.Equal(t, matrix.Point{5, 5, 5, 5}, a.Add(b))
	assert.Equal(t, matrix.Point{-3, -1, 1, 3}, a.Sub(b))
	assert.Equal(t, matrix.Point{2, 4, 6, 8}, a.Scale(2))
	assert.Equal(t, matrix.Point{0.5, 1, 1.5, 2}, a.Div(2))
	assert.Equal(t, 20.0, a.Dot(b))
	assert.Equal(t, 10.0, a.DotD(2, b))
	assert.Equal(t, 5.0, matrix.Point2(3, 4).HypotD(2))
	assert.True(t, matrix.Point{0, 0, 1, 0}.ZeroD(2))
	assert.False(t, a.ZeroD(1))
}

func TestPoint_Cross(t *testing.T) {
	x := matrix.Point3(1, 0, 0)
	y := matrix.Point3(0, 1, 0)
	assert.Equal(t, matrix.Point3(0, 0, 1), x.Cross(y))
}

func TestPoint_LerpAndFinite(t *testing.T) {
	a := matrix.Point{0, 0, 1, 0}
	b := matrix.Point{2, 0, 1, 0}
	assert.Equal(t, matrix.Point{1, 0, 1, 0}, a.Lerp(b, 0.5))
	assert.True(t, a.IsFinite())
	assert.False(t, matrix.Point{math.NaN(), 0, 0, 0}.IsFinite())
}

func TestMatrix_ApplyAndMul(t *testing.T) {
	T := matrix.Cspin(0, 1, math.Pi/2)
	h := T.Apply(matrix.Point{1, 0, 1, 0})
	assert.InDelta(t, 0.0, h[0], tol)
	assert.InDelta(t, -1.0, h[1], tol)

	assert.Equal(t, sample, sample.Mul(matrix.Id))
	assert.Equal(t, sample, matrix.Id.Mul(sample))
	assert.Equal(t, sample, sample.Transpose().Transpose())

	c := sample.Column(2)
	assert.Equal(t, matrix.Point{0, 1, 4, 1}, c)
	assert.Equal(t, c, sample.Transpose().Row(2))
	assert.Equal(t, sample, matrix.FromColumns(sample.Column(0), sample.Column(1), sample.Column(2), sample.Column(3)))
}

func TestShiftAlgebra(t *testing.T) {
	S := matrix.ShiftMatrix{T: matrix.Cspin(0, 1, 0.3), Shift: 1.5}
	U := matrix.ShiftMatrix{T: matrix.Cspin(0, 1, 0.2), Shift: -0.5}
	c := S.Compose(U)
	assert.InDelta(t, 1.0, c.Shift, tol)
	assert.True(t, matrix.EqMatrix(c.T, matrix.Cspin(0, 1, 0.5), tol))

	p := S.ApplyShift(matrix.ShiftPoint{H: matrix.C02, Shift: 2})
	assert.InDelta(t, 3.5, p.Shift, tol)
	assert.Equal(t, 1.5, S.Mul(matrix.Id).Shift)
	assert.Equal(t, 0.0, matrix.ShiftLess(matrix.Id).Shift)
	assert.Equal(t, matrix.C02, matrix.ShiftLessPoint(matrix.C02).H)
}
