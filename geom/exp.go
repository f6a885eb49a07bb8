package geom

// DirectExp follows the geodesic from the origin with initial velocity v
// for unit time.
//
// Isotropic models use the closed form v·sin(d)/d with last coordinate
// cos(d). Nil uses its closed form; Sol and SL2 integrate the geodesic
// equation of the left-invariant metric.
func (g *Geometry) DirectExp(v Point) Point { return g.m.directExp(v) }

// InverseExp is the logarithm map: the tangent vector at the origin whose
// geodesic reaches p at time 1. It is exact in isotropic and product
// models. Nil solves by bisection on the vertical speed; Sol and SL2 by
// damped Gauss–Newton. PQuick lowers their iteration counts.
func (g *Geometry) InverseExp(p ShiftPoint, prec Precision) Point {
	return g.m.inverseExp(p, prec)
}

// Ctangent is the tangent vector of length x along axis c.
func Ctangent(c int, x float64) Point {
	var h Point
	h[c] = x
	return h
}

// Xtangent is the tangent vector of length x along the first axis.
func Xtangent(x float64) Point { return Ctangent(0, x) }

// Ztangent is the tangent vector of length z along the third axis.
func Ztangent(z float64) Point { return Ctangent(2, z) }

// TangentLength rescales dir to the given length; a zero vector is
// returned unchanged.
func (g *Geometry) TangentLength(dir Point, length float64) Point {
	r := dir.HypotD(g.gdim)
	if r == 0 {
		return dir
	}
	return dir.Scale(length / r)
}
