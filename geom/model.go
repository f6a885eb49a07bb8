package geom

import (
	"math"

	"github.com/katalvlaran/hypertile/matrix"
)

// model is the per-class behaviour behind every public Geometry method.
// Each class implements it once; base supplies the behaviour shared by the
// generic hyperboloid/sphere formulas and the fallbacks used by classes
// that do not override a method.
type model interface {
	sin(x float64) float64
	cos(x float64) float64
	tan(x float64) float64
	asin(x float64) float64
	acos(x float64) float64
	atan(x float64) float64
	atan2(y, x float64) float64
	asinClamp(x float64) float64
	acosClamp(x float64) float64
	curvature() float64
	area(r float64) float64
	volume(r float64) float64
	circle(r float64) float64
	hypot(x, y float64) float64

	zlevel(h Point) float64
	cpush(c int, a float64) Matrix
	cpush0(c int, x float64) Point
	ggpushxto0(h Point, co float64) Matrix
	dist0(h Point) float64
	dist(a, b Point) float64
	directExp(v Point) Point
	inverseExp(p ShiftPoint, prec Precision) Point
	fix(T Matrix) Matrix
	isoInverse(T Matrix) Matrix
	unshift(p ShiftPoint, ref float64) Point
	translate(h Point) Matrix
	itranslate(h Point) Matrix
}

// base holds the defaults. Methods that need class-specific helpers call
// them through b.g.m so that overrides in the embedding model are honoured.
type base struct{ g *Geometry }

func (base) sin(x float64) float64        { return x }
func (base) cos(float64) float64          { return 1 }
func (base) tan(float64) float64          { return 1 }
func (base) asin(x float64) float64       { return x }
func (base) acos(x float64) float64       { return x }
func (base) atan(x float64) float64       { return x }
func (base) atan2(y, x float64) float64   { return y / x }
func (base) asinClamp(x float64) float64  { return nanToZero(x) }
func (base) acosClamp(x float64) float64  { return nanToZero(x) }
func (base) curvature() float64           { return 0 }
func (base) area(float64) float64         { return 0 }
func (base) volume(float64) float64       { return 0 }
func (base) circle(r float64) float64     { return 2 * math.Pi * r }
func (base) hypot(x, y float64) float64   { return math.Hypot(x, y) }
func (b base) unshift(p ShiftPoint, _ float64) Point { return p.H }
func (b base) translate(h Point) Matrix             { return b.g.m.ggpushxto0(h, 1) }
func (b base) itranslate(h Point) Matrix            { return b.g.m.ggpushxto0(h, -1) }

// zlevel of the hyperboloid: signed square root of minus the form.
func (b base) zlevel(h Point) float64 {
	z := math.Sqrt(-b.g.Intval(h, Hypc))
	if h[b.g.LDim()] < 0 {
		return -z
	}
	return z
}

func (b base) cpush(c int, a float64) Matrix {
	m := b.g.m
	l := b.g.LDim()
	T := matrix.Id
	T[l][l] = m.cos(a)
	T[c][c] = m.cos(a)
	T[c][l] = m.sin(a)
	T[l][c] = -m.curvature() * m.sin(a)
	return T
}

func (b base) cpush0(c int, x float64) Point {
	var h Point
	h[b.g.LDim()] = b.g.m.cos(x)
	h[c] = b.g.m.sin(x)
	return h
}

func (b base) ggpushxto0(h Point, co float64) Matrix {
	g := b.g
	res := matrix.Id
	if h.SqhypotD(g.gdim) < 1e-16 {
		return res
	}
	l := g.LDim()
	k := g.m.curvature()
	fac := -k / (h[l] + 1)
	for i := 0; i < g.gdim; i++ {
		for j := 0; j < g.gdim; j++ {
			res[i][j] += h[i] * h[j] * fac
		}
	}
	for d := 0; d < g.gdim; d++ {
		res[d][l] = co * h[d]
		res[l][d] = -k * co * h[d]
	}
	res[l][l] = h[l]
	return res
}

func (b base) dist0(h Point) float64 { return h.HypotD(b.g.gdim) }

func (b base) dist(x, y Point) float64 {
	iv := b.g.Intval(x, y)
	if iv < 0 {
		return 0
	}
	return math.Sqrt(iv)
}

// directExp for isotropic classes: v·sin(d)/d, last coordinate cos(d).
func (b base) directExp(v Point) Point {
	g := b.g
	d := v.HypotD(g.gdim)
	if d > 0 {
		s := g.m.sin(d) / d
		for i := 0; i < g.gdim; i++ {
			v[i] *= s
		}
	}
	v[g.LDim()] = g.m.cos(d)
	return v
}

func (b base) inverseExp(p ShiftPoint, _ Precision) Point {
	g := b.g
	h := p.H
	d := g.m.acosClamp(h[g.gdim])
	var v Point
	if s := g.m.sin(d); d != 0 && s != 0 {
		for i := 0; i < g.gdim; i++ {
			v[i] = h[i] * d / s
		}
	}
	return v
}

func (b base) fix(T Matrix) Matrix { return b.g.Orthonormalize(T) }

func (b base) isoInverse(T Matrix) Matrix { return b.g.Inverse(T) }

func nanToZero(x float64) float64 {
	if math.IsNaN(x) {
		return 0
	}
	return x
}

type euclidModel struct{ base }

func (euclidModel) tan(x float64) float64 { return x }
func (euclidModel) area(r float64) float64 { return r * r * math.Pi }
func (euclidModel) volume(r float64) float64 {
	return r * r * r * 4 * math.Pi / 3
}
func (m euclidModel) zlevel(h Point) float64 { return h[m.g.LDim()] }

func (m euclidModel) ggpushxto0(h Point, co float64) Matrix { return m.g.Eupush(h, co) }

func (m euclidModel) fix(T Matrix) Matrix {
	if m.g.Affine() {
		return T
	}
	return m.g.FixmatrixEuclid(T)
}

func (m euclidModel) isoInverse(T Matrix) Matrix {
	if m.g.Affine() {
		return m.g.Inverse(T)
	}
	n := m.g.LDim()
	U := matrix.Id
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			U[i][j] = T[j][i]
		}
	}
	h := U.Apply(m.g.TC0(T))
	for i := 0; i < n; i++ {
		U[i][n] = -h[i]
	}
	return U
}

type hyperbolicModel struct{ base }

func (hyperbolicModel) sin(x float64) float64      { return math.Sinh(x) }
func (hyperbolicModel) cos(x float64) float64      { return math.Cosh(x) }
func (hyperbolicModel) tan(x float64) float64      { return math.Tanh(x) }
func (hyperbolicModel) asin(x float64) float64     { return math.Asinh(x) }
func (hyperbolicModel) acos(x float64) float64     { return math.Acosh(x) }
func (hyperbolicModel) atan(x float64) float64     { return math.Atanh(x) }
func (hyperbolicModel) atan2(y, x float64) float64 { return math.Atanh(y / x) }
func (hyperbolicModel) asinClamp(x float64) float64 {
	return nanToZero(math.Asinh(x))
}
func (hyperbolicModel) acosClamp(x float64) float64 {
	if x < 1 || math.IsNaN(x) {
		return 0
	}
	return math.Acosh(x)
}
func (hyperbolicModel) curvature() float64     { return -1 }
func (hyperbolicModel) area(r float64) float64 { return 2 * math.Pi * (math.Cosh(r) - 1) }
func (hyperbolicModel) volume(r float64) float64 {
	return math.Pi * (math.Sinh(2*r) - 2*r)
}
func (hyperbolicModel) circle(r float64) float64 { return 2 * math.Pi * math.Sinh(r) }
func (hyperbolicModel) hypot(x, y float64) float64 {
	return math.Acosh(math.Cosh(x) * math.Cosh(y))
}

func (m hyperbolicModel) dist0(h Point) float64 {
	z := h[m.g.LDim()]
	if z < 1 {
		return 0
	}
	return math.Acosh(z)
}

func (m hyperbolicModel) dist(a, b Point) float64 {
	iv := m.g.Intval(a, b)
	if iv < 0 {
		return 0
	}
	return 2 * math.Asinh(math.Sqrt(iv)/2)
}

func (m hyperbolicModel) isoInverse(T Matrix) Matrix {
	return matrix.PseudoOrthoInverse(T, m.g.mdim)
}

type sphereModel struct{ base }

func (sphereModel) sin(x float64) float64        { return math.Sin(x) }
func (sphereModel) cos(x float64) float64        { return math.Cos(x) }
func (sphereModel) tan(x float64) float64        { return math.Tan(x) }
func (sphereModel) asin(x float64) float64       { return math.Asin(x) }
func (sphereModel) acos(x float64) float64       { return math.Acos(x) }
func (sphereModel) atan(x float64) float64       { return math.Atan(x) }
func (sphereModel) atan2(y, x float64) float64   { return math.Atan2(y, x) }
func (sphereModel) asinClamp(x float64) float64  { return AsinClamp(x) }
func (sphereModel) acosClamp(x float64) float64  { return AcosClamp(x) }
func (sphereModel) curvature() float64           { return 1 }
func (sphereModel) area(r float64) float64       { return 2 * math.Pi * (1 - math.Cos(r)) }
func (sphereModel) volume(r float64) float64     { return math.Pi * (2*r - math.Sin(2*r)) }
func (sphereModel) circle(r float64) float64     { return 2 * math.Pi * math.Sin(r) }
func (sphereModel) hypot(x, y float64) float64   { return math.Acos(math.Cos(x) * math.Cos(y)) }
func (m sphereModel) zlevel(h Point) float64     { return math.Sqrt(m.g.Intval(h, Hypc)) }

func (m sphereModel) dist0(h Point) float64 {
	z := h[m.g.LDim()]
	switch {
	case z >= 1:
		return 0
	case z <= -1:
		return math.Pi
	}
	return math.Acos(z)
}

func (m sphereModel) dist(a, b Point) float64 {
	return 2 * AsinClamp(math.Sqrt(m.g.Intval(a, b))/2)
}

func (m sphereModel) isoInverse(T Matrix) Matrix {
	return matrix.OrthoInverse(T, m.g.mdim)
}
