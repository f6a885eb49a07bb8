package geom

import "math"

// Hdist0 is the distance from the origin to h. Arguments outside the
// domain of the inverse functions (round-off near the origin) give 0.
func (g *Geometry) Hdist0(h Point) float64 { return g.m.dist0(h) }

// Hdist is the distance between h1 and h2; never negative, never NaN for
// finite model points.
func (g *Geometry) Hdist(h1, h2 Point) float64 { return g.m.dist(h1, h2) }

// Unshift folds the shift of p, taken relative to ref, into its point
// part. Only SL2 (the universal cover) uses the shift; elsewhere p.H is
// returned.
func (g *Geometry) Unshift(p ShiftPoint, ref float64) Point { return g.m.unshift(p, ref) }

// Hdist0Shift is Hdist0 of a shifted point.
func (g *Geometry) Hdist0Shift(p ShiftPoint) float64 { return g.Hdist0(g.Unshift(p, 0)) }

// HdistShift is Hdist between shifted points; h2 is unshifted relative to h1.
func (g *Geometry) HdistShift(h1, h2 ShiftPoint) float64 {
	return g.Hdist(h1.H, g.Unshift(h2, h1.Shift))
}

// ProductDecompose splits a product point into its level and the
// normalized factor point.
func (g *Geometry) ProductDecompose(h Point) (float64, Point) {
	z := g.Zlevel(h)
	return z, g.ScalePoint(h, math.Exp(-z))
}

// GeoDist is the length of the geodesic from h1 to h2. It equals Hdist in
// isotropic geometries; in non-isotropic ones it is computed through the
// inverse exponential map.
func (g *Geometry) GeoDist(h1, h2 Point, prec Precision) float64 {
	if !g.Nonisotropic() {
		return g.Hdist(h1, h2)
	}
	v := g.InverseExp(ShiftPoint{H: g.ITranslate(h1).Apply(h2)}, prec)
	return v.HypotD(3)
}

// GeoDistShift is GeoDist between shifted points.
func (g *Geometry) GeoDistShift(h1, h2 ShiftPoint, prec Precision) float64 {
	if !g.Nonisotropic() {
		return g.HdistShift(h1, h2)
	}
	p := ShiftPoint{H: g.ITranslate(h1.H).Apply(h2.H), Shift: h2.Shift - h1.Shift}
	return g.InverseExp(p, prec).HypotD(3)
}

// GeoDistQ is GeoDist in the elliptic quotient: distances above a quarter
// turn are folded back.
func (g *Geometry) GeoDistQ(h1, h2 Point, prec Precision) float64 {
	d := g.GeoDist(h1, h2, prec)
	if g.Elliptic() && d > math.Pi/2 {
		return math.Pi - d
	}
	return d
}
