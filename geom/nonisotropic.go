package geom

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hypertile/matrix"
)

// Non-isotropic geometries are Lie groups with a left-invariant metric.
// Points are group elements applied to the origin (0,0,0,1); Translate(h)
// is the group element taking the origin to h. Geodesics are integrated
// from the Euler–Arnold equation on the Lie algebra, whose structure
// constants are computed once from the three generator matrices.

const (
	geodesicSteps   = 128
	newtonIters     = 40
	newtonItersFast = 12
	newtonTol       = 1e-12
	bisectIters     = 100
	bisectItersFast = 30
)

// lieAlgebra holds orthonormal generators G0..G2 of the algebra and the
// structure constants c[i][k][j] = coefficient of Gj in [Gi, Gk].
type lieAlgebra struct {
	gens [3]Matrix
	c    [3][3][3]float64
}

func frobenius(A, B Matrix) float64 {
	var s float64
	for i := range A {
		for j := range A[i] {
			s += A[i][j] * B[i][j]
		}
	}
	return s
}

func newLieAlgebra(gens [3]Matrix) *lieAlgebra {
	la := &lieAlgebra{gens: gens}
	var gram Matrix
	for a := 0; a < 3; a++ {
		for b := 0; b < 3; b++ {
			gram[a][b] = frobenius(gens[a], gens[b])
		}
	}
	ginv := matrix.Inverse(gram, 3)
	for i := 0; i < 3; i++ {
		for k := 0; k < 3; k++ {
			br := gens[i].Mul(gens[k]).Sub(gens[k].Mul(gens[i]))
			var rhs Point
			for a := 0; a < 3; a++ {
				rhs[a] = frobenius(gens[a], br)
			}
			co := ginv.Apply(rhs)
			for j := 0; j < 3; j++ {
				la.c[i][k][j] = co[j]
			}
		}
	}
	return la
}

// element is Σ v_i G_i.
func (la *lieAlgebra) element(v Point) Matrix {
	return la.gens[0].Scale(v[0]).Add(la.gens[1].Scale(v[1])).Add(la.gens[2].Scale(v[2]))
}

// accel is the Euler–Arnold right-hand side v̇_k = Σ v_i v_j c[i][k][j].
func (la *lieAlgebra) accel(v Point) Point {
	var out Point
	for k := 0; k < 3; k++ {
		var s float64
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				s += v[i] * v[j] * la.c[i][k][j]
			}
		}
		out[k] = s
	}
	return out
}

// geodesic integrates Ṫ = T·element(v), v̇ = accel(v) from T = Id over unit
// time with classic RK4 and returns T(1).
func (la *lieAlgebra) geodesic(v Point, steps int) Matrix {
	T := matrix.Id
	w := Point{v[0], v[1], v[2], 0}
	h := 1 / float64(steps)
	for s := 0; s < steps; s++ {
		k1T, k1w := T.Mul(la.element(w)), la.accel(w)
		T2, w2 := T.Add(k1T.Scale(h/2)), w.Add(k1w.Scale(h/2))
		k2T, k2w := T2.Mul(la.element(w2)), la.accel(w2)
		T3, w3 := T.Add(k2T.Scale(h/2)), w.Add(k2w.Scale(h/2))
		k3T, k3w := T3.Mul(la.element(w3)), la.accel(w3)
		T4, w4 := T.Add(k3T.Scale(h)), w.Add(k3w.Scale(h))
		k4T, k4w := T4.Mul(la.element(w4)), la.accel(w4)
		T = T.Add(k1T.Add(k2T.Scale(2)).Add(k3T.Scale(2)).Add(k4T).Scale(h / 6))
		w = w.Add(k1w.Add(k2w.Scale(2)).Add(k3w.Scale(2)).Add(k4w).Scale(h / 6))
	}
	return T
}

// lieModel is the shared part of Nil, Sol and SL2.
type lieModel struct {
	base
	la *lieAlgebra
}

func (m lieModel) zlevel(h Point) float64 { return h[m.g.LDim()] }

func (m lieModel) cpush0(c int, x float64) Point {
	return m.g.m.cpush(c, x).Apply(m.g.C0())
}

func (m lieModel) ggpushxto0(h Point, co float64) Matrix {
	if co < 0 {
		return m.g.m.itranslate(h)
	}
	return m.g.m.translate(h)
}

func (m lieModel) directExp(v Point) Point {
	return m.la.geodesic(v, geodesicSteps).Apply(m.g.C0())
}

func (m lieModel) fix(T Matrix) Matrix { return T }

func (m lieModel) inverseExp(p ShiftPoint, prec Precision) Point {
	h := p.H
	return m.solveExp(h, Point{h[0], h[1], h[2], 0}, prec)
}

// solveExp finds v with directExp(v) ≈ target by damped Gauss–Newton,
// starting from guess.
func (m lieModel) solveExp(target, guess Point, prec Precision) Point {
	iters := newtonIters
	if prec&PQuick != 0 {
		iters = newtonItersFast
	}
	exp := m.g.m.directExp
	residual := func(v Point) (Point, float64) {
		r := exp(v).Sub(target)
		return r, r.Dot(r)
	}
	v := guess
	r, rn := residual(v)
	const eps = 1e-6
	for it := 0; it < iters && rn > newtonTol*newtonTol; it++ {
		var J [3]Point
		for k := 0; k < 3; k++ {
			vp, vm := v, v
			vp[k] += eps
			vm[k] -= eps
			J[k] = exp(vp).Sub(exp(vm)).Scale(1 / (2 * eps))
		}
		var JtJ Matrix
		var Jtr Point
		for a := 0; a < 3; a++ {
			for b := 0; b < 3; b++ {
				JtJ[a][b] = J[a].Dot(J[b])
			}
			Jtr[a] = J[a].Dot(r)
		}
		inv, err := matrix.TryInverse(JtJ, 3)
		if err != nil {
			break
		}
		delta := inv.Apply(Jtr).Neg()
		delta[3] = 0
		improved := false
		for step, ls := 1.0, 0; ls < 20; step, ls = step/2, ls+1 {
			cand := v.Add(delta.Scale(step))
			rc, rcn := residual(cand)
			if rcn < rn {
				v, r, rn = cand, rc, rcn
				improved = true
				break
			}
		}
		if !improved {
			break
		}
	}
	if rn > 1e-16 {
		m.g.log.Debug("inverse exponential", "geometry", m.g.name, "err", fmt.Errorf("%w: residual %.3g", ErrNotConverged, math.Sqrt(rn)))
	}
	return v
}

// nilModel: the Heisenberg group with translate(a,b,c)·(x,y,z) = (a+x, b+y, c+z+a·y).
type nilModel struct{ lieModel }

func newNilModel(g *Geometry) nilModel {
	var gx, gy, gz Matrix
	gx[0][3], gx[2][1] = 1, 1
	gy[1][3] = 1
	gz[2][3] = 1
	return nilModel{lieModel{base{g}, newLieAlgebra([3]Matrix{gx, gy, gz})}}
}

func (nilModel) translate(h Point) Matrix {
	T := matrix.Id
	T[0][3], T[1][3], T[2][3] = h[0], h[1], h[2]
	T[2][1] = h[0]
	return T
}

func (m nilModel) itranslate(h Point) Matrix {
	return m.translate(Point{-h[0], -h[1], h[0]*h[1] - h[2], 1})
}

func (m nilModel) cpush(c int, a float64) Matrix {
	var h Point
	h[c], h[3] = a, 1
	return m.translate(h)
}

func (nilModel) dist0(h Point) float64 {
	bz := h[0] * h[1] / 2
	return math.Hypot(h[0], h[1]) + math.Abs(h[2]-bz)
}

func (nilModel) isoInverse(T Matrix) Matrix {
	U := matrix.Id
	U[2][3] = T[0][3]*T[1][3] - T[2][3]
	U[1][3] = -T[1][3]
	U[2][1] = -T[0][3]
	U[0][3] = -T[0][3]
	return U
}

// sinc is sin(x)/x, continuous at 0.
func sinc(x float64) float64 {
	if math.Abs(x) < 1e-8 {
		return 1 - x*x/6
	}
	return math.Sin(x) / x
}

// directExp in closed form: the horizontal projection is a circular arc of
// angular speed w; the height integrates x·ẏ along it (Simpson's rule).
func (nilModel) directExp(v Point) Point {
	c := math.Hypot(v[0], v[1])
	alpha := math.Atan2(v[1], v[0])
	w := v[2]
	xy := func(t float64) (float64, float64) {
		mid := alpha + w*t/2
		s := c * t * sinc(w*t/2)
		return s * math.Cos(mid), s * math.Sin(mid)
	}
	integrand := func(t float64) float64 {
		x, _ := xy(t)
		return x * c * math.Sin(alpha+w*t)
	}
	const n = 256
	sum := integrand(0) + integrand(1)
	for i := 1; i < n; i++ {
		f := 4.0
		if i%2 == 0 {
			f = 2
		}
		sum += f * integrand(float64(i)/n)
	}
	x, y := xy(1)
	return Point{x, y, w + sum/(3*n), 1}
}

// inverseExp bisects on the vertical component w in (-2π, 2π); the
// horizontal speed and heading then follow from the chord.
func (m nilModel) inverseExp(p ShiftPoint, prec Precision) Point {
	h := p.H
	if h[3] != 0 && h[3] != 1 {
		h = h.Div(h[3])
	}
	D := math.Hypot(h[0], h[1])
	if D < 1e-12 {
		return Point{0, 0, h[2], 0}
	}
	theta := math.Atan2(h[1], h[0])
	tangent := func(w float64) Point {
		c := D / sinc(w/2)
		a := theta - w/2
		return Point{c * math.Cos(a), c * math.Sin(a), w, 0}
	}
	height := func(w float64) float64 { return m.directExp(tangent(w))[2] }
	iters := bisectIters
	if prec&PQuick != 0 {
		iters = bisectItersFast
	}
	lo, hi := -2*math.Pi+1e-6, 2*math.Pi-1e-6
	increasing := height(lo) < height(hi)
	for i := 0; i < iters; i++ {
		mid := (lo + hi) / 2
		if (height(mid) < h[2]) == increasing {
			lo = mid
		} else {
			hi = mid
		}
	}
	return tangent((lo + hi) / 2)
}

// solModel: metric e^{2z}dx² + e^{-2z}dy² + dz².
type solModel struct{ lieModel }

func newSolModel(g *Geometry) solModel {
	var gx, gy, gz Matrix
	gx[0][3] = 1
	gy[1][3] = 1
	gz[0][0], gz[1][1], gz[2][3] = -1, 1, 1
	return solModel{lieModel{base{g}, newLieAlgebra([3]Matrix{gx, gy, gz})}}
}

func (solModel) translate(h Point) Matrix {
	T := matrix.Id
	T[0][0] = math.Exp(-h[2])
	T[1][1] = math.Exp(h[2])
	T[0][3], T[1][3], T[2][3] = h[0], h[1], h[2]
	return T
}

func (m solModel) itranslate(h Point) Matrix {
	return m.translate(Point{-h[0] * math.Exp(h[2]), -h[1] * math.Exp(-h[2]), -h[2], 1})
}

func (m solModel) cpush(c int, a float64) Matrix {
	var h Point
	h[c], h[3] = a, 1
	return m.translate(h)
}

// sl2Model: unit split quaternions w + z·i + x·j + y·k stored as (x,y,z,w),
// i² = -1, j² = k² = 1. The hyperbolic trigonometry is that of the base plane.
type sl2Model struct{ lieModel }

// splitLeft is the matrix of left multiplication by p.
func splitLeft(p Point) Matrix {
	x, y, z, w := p[0], p[1], p[2], p[3]
	return Matrix{
		{w, -z, y, x},
		{z, w, -x, y},
		{y, -x, w, z},
		{x, y, -z, w},
	}
}

func newSL2Model(g *Geometry) sl2Model {
	gj := splitLeft(Point{1, 0, 0, 0})
	gk := splitLeft(Point{0, 1, 0, 0})
	gi := splitLeft(Point{0, 0, 1, 0})
	return sl2Model{lieModel{base{g}, newLieAlgebra([3]Matrix{gj, gk, gi})}}
}

func (sl2Model) sin(x float64) float64      { return math.Sinh(x) }
func (sl2Model) cos(x float64) float64      { return math.Cosh(x) }
func (sl2Model) tan(x float64) float64      { return math.Tanh(x) }
func (sl2Model) asin(x float64) float64     { return math.Asinh(x) }
func (sl2Model) acos(x float64) float64     { return math.Acosh(x) }
func (sl2Model) atan(x float64) float64     { return math.Atanh(x) }
func (sl2Model) atan2(y, x float64) float64 { return math.Atanh(y / x) }
func (sl2Model) asinClamp(x float64) float64 {
	return nanToZero(math.Asinh(x))
}
func (sl2Model) acosClamp(x float64) float64 {
	if x < 1 || math.IsNaN(x) {
		return 0
	}
	return math.Acosh(x)
}

func (sl2Model) translate(h Point) Matrix  { return splitLeft(h) }
func (sl2Model) itranslate(h Point) Matrix { return splitLeft(Point{-h[0], -h[1], -h[2], h[3]}) }

func (m sl2Model) cpush(c int, a float64) Matrix {
	var p Point
	switch c {
	case 0, 1:
		p[c], p[3] = math.Sinh(a), math.Cosh(a)
	default:
		p[2], p[3] = math.Sin(a), math.Cos(a)
	}
	return splitLeft(p)
}

func (m sl2Model) zlevel(h Point) float64 { return math.Sqrt(-m.g.Intval(h, Hypc)) }

func (sl2Model) dist0(h Point) float64 {
	coshR := math.Hypot(h[2], h[3])
	phi := math.Atan2(h[2], h[3])
	r := 0.0
	if coshR >= 1 {
		r = math.Acosh(coshR)
	}
	return math.Hypot(r, phi)
}

func (m sl2Model) dist(a, b Point) float64 {
	return m.dist0(m.itranslate(a).Apply(b))
}

func (sl2Model) unshift(p ShiftPoint, ref float64) Point {
	return matrix.Cspin(3, 2, p.Shift-ref).Apply(p.H)
}

// inverseExp starts from the fibre angle plus the shift so that the
// solution stays on the requested sheet of the universal cover.
func (m sl2Model) inverseExp(p ShiftPoint, prec Precision) Point {
	h := p.H
	guess := Point{h[0], h[1], math.Atan2(h[2], h[3]) + p.Shift, 0}
	return m.solveExp(h, guess, prec)
}
