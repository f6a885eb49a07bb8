package geom

import (
	"math"

	"github.com/katalvlaran/hypertile/matrix"
)

// productModel implements factor×R. Scalar trigonometry and the horizontal
// part of every construction are those of the factor; the level is the
// logarithm of the point's overall scale.
type productModel struct{ base }

func (m productModel) f() model { return m.g.under.m }

func (m productModel) sin(x float64) float64        { return m.f().sin(x) }
func (m productModel) cos(x float64) float64        { return m.f().cos(x) }
func (m productModel) tan(x float64) float64        { return m.f().tan(x) }
func (m productModel) asin(x float64) float64       { return m.f().asin(x) }
func (m productModel) acos(x float64) float64       { return m.f().acos(x) }
func (m productModel) atan(x float64) float64       { return m.f().atan(x) }
func (m productModel) atan2(y, x float64) float64   { return m.f().atan2(y, x) }
func (m productModel) asinClamp(x float64) float64  { return m.f().asinClamp(x) }
func (m productModel) acosClamp(x float64) float64  { return m.f().acosClamp(x) }
func (m productModel) curvature() float64           { return m.f().curvature() }
func (m productModel) hypot(x, y float64) float64   { return math.Hypot(x, y) }

// zlevel: |form| works for both spherical and hyperbolic factors.
func (m productModel) zlevel(h Point) float64 {
	return math.Log(math.Sqrt(math.Abs(m.g.Intval(h, Hypc))))
}

func (m productModel) cpush(c int, a float64) Matrix {
	if c == 2 {
		return m.g.ScaleMatrix(matrix.Id, math.Exp(a))
	}
	return m.base.cpush(c, a)
}

func (m productModel) cpush0(c int, x float64) Point {
	if c == 2 {
		var h Point
		h[2] = math.Exp(x)
		return h
	}
	return m.base.cpush0(c, x)
}

func (m productModel) ggpushxto0(h Point, co float64) Matrix {
	z, p := m.g.ProductDecompose(h)
	return m.g.ScaleMatrix(m.f().ggpushxto0(p, co), math.Exp(z*co))
}

func (m productModel) dist0(h Point) float64 {
	z, p := m.g.ProductDecompose(h)
	return math.Hypot(m.f().dist0(p), z)
}

func (m productModel) dist(a, b Point) float64 {
	za, pa := m.g.ProductDecompose(a)
	zb, pb := m.g.ProductDecompose(b)
	return math.Hypot(m.f().dist(pa, pb), za-zb)
}

// directExp moves horizontally by (v0, v1) in the factor and vertically by v2.
func (m productModel) directExp(v Point) Point {
	w := Point{v[0], v[1], 0, 0}
	return m.g.ScalePoint(m.f().directExp(w), math.Exp(v[2]))
}

func (m productModel) inverseExp(p ShiftPoint, prec Precision) Point {
	z, q := m.g.ProductDecompose(p.H)
	v := m.f().inverseExp(matrix.ShiftLessPoint(q), prec)
	v[2] = z
	return v
}

func (m productModel) fix(T Matrix) Matrix {
	z := m.zlevel(m.g.TC0(T))
	T = m.g.ScaleMatrix(T, math.Exp(-z))
	T = m.f().fix(T)
	return m.g.ScaleMatrix(T, math.Exp(z))
}
