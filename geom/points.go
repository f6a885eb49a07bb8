package geom

import (
	"math"

	"github.com/katalvlaran/hypertile/matrix"
)

// Ideal-point approximation parameters.
const (
	// IdealLimit is the distance from the origin at which
	// SafeApproximationOfIdeal places its material stand-in.
	IdealLimit = 10.0

	idealEps = 1e-6
)

// Intval is the quadratic form of h1-h2 under the signature. In elliptic
// geometry the antipode of h2 is tried as well and the smaller value wins.
// With Hypc as h2 it evaluates the defining form of h1.
func (g *Geometry) Intval(h1, h2 Point) float64 {
	var res float64
	for i := 0; i < g.mdim; i++ {
		d := h1[i] - h2[i]
		res += d * d * g.sig[i]
	}
	if g.Elliptic() {
		var res2 float64
		for i := 0; i < g.mdim; i++ {
			d := h1[i] + h2[i]
			res2 += d * d * g.sig[i]
		}
		return math.Min(res, res2)
	}
	return res
}

// Quickdist is a monotone proxy of the distance, cheaper than Hdist.
func (g *Geometry) Quickdist(h1, h2 Point) float64 {
	if g.IsProduct() {
		return g.Hdist(h1, h2)
	}
	return g.Intval(h1, h2)
}

// Zlevel extracts the normalization level of h: the factor that Normalize
// divides by, or the log-scale level in product geometries.
func (g *Geometry) Zlevel(h Point) float64 { return g.m.zlevel(h) }

// Normalize rescales h onto the model surface. Product points carry their
// level in the scale and are returned unchanged.
func (g *Geometry) Normalize(h Point) Point {
	if g.IsProduct() {
		return h
	}
	return h.Div(g.Zlevel(h))
}

// Material is positive for a material point, zero for an ideal one and
// negative for an ultra-ideal one.
func (g *Geometry) Material(h Point) float64 {
	switch {
	case g.class == ClassSphere, g.IsProduct() && g.under.class == ClassSphere:
		return g.Intval(h, Hypc)
	case g.class == ClassHyperbolic, g.IsProduct() && g.under.class == ClassHyperbolic:
		return -g.Intval(h, Hypc)
	case g.class == ClassSL2:
		return h[2]*h[2] + h[3]*h[3] - h[0]*h[0] - h[1]*h[1]
	}
	return h[g.LDim()]
}

// UltraNormalize is Normalize that first lifts (ultra)ideal points to
// material ones.
func (g *Geometry) UltraNormalize(h Point) Point {
	if g.Material(h) <= 0 {
		l := g.LDim()
		h[l] = h.HypotD(l) + 1e-10
	}
	return g.Normalize(h)
}

// NormalizeFlat normalizes h and, where the model has an extra vertical
// direction, projects it onto the base level.
func (g *Geometry) NormalizeFlat(h Point) Point {
	switch {
	case g.IsProduct():
		_, p := g.ProductDecompose(h)
		return p
	case g.class == ClassSL2:
		return g.m.translate(h).Apply(g.Zpush0(-math.Atan2(h[2], h[3])))
	case g.embed == EmbedEucInHyp:
		d := g.Deparabolic13(g.Normalize(h))
		d[2] = 0
		return g.Parabolic13Point(d)
	}
	return g.Normalize(h)
}

// SafeClassifyIdeals returns 1 for material, 0 for ideal and -1 for
// ultra-ideal points. Only hyperbolic models have non-material points.
func (g *Geometry) SafeClassifyIdeals(h Point) int {
	hyp := g.class == ClassHyperbolic || g.IsProduct() && g.under.class == ClassHyperbolic
	if !hyp {
		return 1
	}
	h = h.Div(h[g.LDim()])
	x := 1 - h.SqhypotD(g.LDim())
	switch {
	case x > idealEps:
		return 1
	case x < -idealEps:
		return -1
	}
	return 0
}

// SafeApproximationOfIdeal replaces an (ultra)ideal point by the point
// IdealLimit away from the origin in its direction.
func (g *Geometry) SafeApproximationOfIdeal(h Point) Point {
	return g.TowardsInf(g.C0(), h, IdealLimit)
}

// ClosestToZero returns the point on the line ab closest to the origin in
// the projective (Klein) chart. The result need not be normalized; a and b
// may be (ultra)ideal.
func (g *Geometry) ClosestToZero(a, b Point) Point {
	if a.Sub(b).SqhypotD(g.mdim) < 1e-9 || math.IsNaN(a[0]) {
		return a
	}
	l := g.LDim()
	a = a.Div(a[l])
	b = b.Div(b[l])
	var mulA, mulB float64
	for i := 0; i < l; i++ {
		z := a[i] - b[i]
		mulA += a[i] * z
		mulB -= b[i] * z
	}
	return a.Scale(mulB).Add(b.Scale(mulA)).Div(mulA + mulB)
}

// Mid is the midpoint of the segment h1h2.
func (g *Geometry) Mid(h1, h2 Point) Point {
	if g.IsProduct() {
		z1, p1 := g.ProductDecompose(h1)
		z2, p2 := g.ProductDecompose(h2)
		return g.under.Mid(p1, p2).Scale(math.Exp((z1 + z2) / 2))
	}
	return g.Normalize(h1.Add(h2))
}

// MidShift is Mid on shifted points; the shifts are averaged.
func (g *Geometry) MidShift(h1, h2 ShiftPoint) ShiftPoint {
	return ShiftPoint{H: g.Mid(h1.H, h2.H), Shift: (h1.Shift + h2.Shift) / 2}
}

// Midz is Mid keeping the average level of h1 and h2 instead of
// projecting onto the surface.
func (g *Geometry) Midz(h1, h2 Point) Point {
	if g.IsProduct() {
		return g.Mid(h1, h2)
	}
	h3 := h1.Add(h2)
	z := 2.0
	if g.class != ClassEuclid {
		z = g.Zlevel(h3) * 2 / (g.Zlevel(h1) + g.Zlevel(h2))
	}
	return h3.Div(z)
}

// Mid3 is the centroid of a triangle.
func (g *Geometry) Mid3(h1, h2, h3 Point) Point {
	s := h1.Add(h2).Add(h3)
	return g.Mid(s, s)
}

// MidAt interpolates linearly in the chart and projects back: v=0 gives
// h1, v=1 gives h2.
func (g *Geometry) MidAt(h1, h2 Point, v float64) Point {
	h := h1.Scale(1 - v).Add(h2.Scale(v))
	return g.Mid(h, h)
}

// MidAtActual is the point at fraction v of the geodesic from the origin
// to h.
func (g *Geometry) MidAtActual(h Point, v float64) Point {
	return g.Rspintox(h).Apply(g.Xpush0(g.Hdist0(h) * v))
}

// Hpxy lifts chart coordinates (x, y) onto the model surface.
func (g *Geometry) Hpxy(x, y float64) Point {
	if g.embed != EmbedNone {
		return g.LogicalToHostPoint(g.logical.Hpxy(x, y))
	}
	switch {
	case g.class == ClassSL2:
		return Point{x, y, 0, math.Sqrt(1 + x*x + y*y)}
	case g.Translatable():
		return g.Hpxyz(x, y, 1)
	case g.class == ClassSphere:
		return g.Hpxyz(x, y, math.Sqrt(1-x*x-y*y))
	case g.IsProduct():
		return g.under.Hpxy(x, y)
	}
	return g.Hpxyz(x, y, math.Sqrt(1+x*x+y*y))
}

// Hpxy3 lifts (x, y, z) onto a 3D model surface.
func (g *Geometry) Hpxy3(x, y, z float64) Point {
	var w float64
	switch {
	case g.class == ClassSL2:
		w = math.Sqrt(1 + x*x + y*y - z*z)
	case g.Translatable():
		w = 1
	case g.class == ClassSphere:
		w = math.Sqrt(1 - x*x - y*y - z*z)
	default:
		w = math.Sqrt(1 + x*x + y*y + z*z)
	}
	return Point{x, y, z, w}
}

// Hpxyz builds the homogeneous point (x, y, z) in a 2D model; in a 3D
// model z becomes the last coordinate and the third one is 0.
func (g *Geometry) Hpxyz(x, y, z float64) Point {
	if g.mdim == 3 {
		return Point{x, y, z, 0}
	}
	return Point{x, y, 0, z}
}

// Hpxyz3 builds the four-coordinate point (x, y, z, w).
func (g *Geometry) Hpxyz3(x, y, z, w float64) Point { return Point{x, y, z, w} }

// Cpush0 is Cpush(c, x)·C0, computed directly.
func (g *Geometry) Cpush0(c int, x float64) Point { return g.m.cpush0(c, x) }

// Xpush0 is the point at distance x along the first axis.
func (g *Geometry) Xpush0(x float64) Point { return g.Cpush0(0, x) }

// Ypush0 is the point at distance x along the second axis.
func (g *Geometry) Ypush0(x float64) Point { return g.Cpush0(1, x) }

// Zpush0 is the point at distance x along the third axis.
func (g *Geometry) Zpush0(x float64) Point { return g.Cpush0(2, x) }

// Xspinpush0 is Spin(alpha)·Xpush0(x).
func (g *Geometry) Xspinpush0(alpha, x float64) Point {
	if g.embed != EmbedNone {
		return g.Lspinpush0(alpha, x)
	}
	if g.Nonisotropic() {
		return matrix.Cspin(0, 1, alpha).Apply(g.Xpush0(x))
	}
	var h Point
	h[g.LDim()] = g.CosAuto(x)
	h[0] = g.SinAuto(x) * math.Cos(alpha)
	h[1] = -g.SinAuto(x) * math.Sin(alpha)
	return h
}

// TC0 is T·C0: the last homogeneous column of T.
func (g *Geometry) TC0(T Matrix) Point { return T.Column(g.LDim()) }

// TC0Shift is TC0 keeping the shift.
func (g *Geometry) TC0Shift(S ShiftMatrix) ShiftPoint {
	return ShiftPoint{H: g.TC0(S.T), Shift: S.Shift}
}

// Linecross intersects the lines ab and cd in the projective chart.
func (g *Geometry) Linecross(a, b, c, d Point) Point {
	l := g.LDim()
	a, b, c, d = a.Div(a[l]), b.Div(b[l]), c.Div(c[l]), d.Div(d[l])
	bax, dcx, cax := b[0]-a[0], d[0]-c[0], c[0]-a[0]
	bay, dcy, cay := b[1]-a[1], d[1]-c[1], c[1]-a[1]
	var res Point
	res[0] = (cay*dcx*bax + a[0]*bay*dcx - c[0]*dcy*bax) / (bay*dcx - dcy*bax)
	res[1] = (cax*dcy*bay + a[1]*bax*dcy - c[1]*dcx*bay) / (bax*dcy - dcx*bay)
	res[g.gdim] = 1
	return g.Normalize(res)
}

// Inner2 is the bilinear form of the 2D model (Minkowski in hyperbolic,
// Euclidean in spherical, planar otherwise).
func (g *Geometry) Inner2(h1, h2 Point) float64 {
	l := g.LDim()
	switch g.class {
	case ClassHyperbolic:
		return h1[l]*h2[l] - h1[0]*h2[0] - h1[1]*h2[1]
	case ClassSphere:
		return h1[l]*h2[l] + h1[0]*h2[0] + h1[1]*h2[1]
	}
	return h1[0]*h2[0] + h1[1]*h2[1]
}

// Circumscribe is the centre of the circle through a, b and c.
func (g *Geometry) Circumscribe(a, b, c Point) Point {
	h := g.C0()
	b = b.Sub(a)
	c = c.Sub(a)
	if g.class == ClassEuclid {
		b2 := g.Inner2(b, b) / 2
		c2 := g.Inner2(c, c) / 2
		det := c[1]*b[0] - b[1]*c[0]
		h = a
		h[1] += (c2*b[0] - b2*c[0]) / det
		h[0] += (c2*b[1] - b2*c[1]) / -det
		return h
	}
	if ib := g.Inner2(b, b); ib < 0 {
		b = b.Div(math.Sqrt(-ib))
		c = c.Add(b.Scale(g.Inner2(c, b)))
		h = h.Add(b.Scale(g.Inner2(h, b)))
	} else {
		b = b.Div(math.Sqrt(ib))
		c = c.Sub(b.Scale(g.Inner2(c, b)))
		h = h.Sub(b.Scale(g.Inner2(h, b)))
	}
	if ic := g.Inner2(c, c); ic < 0 {
		c = c.Div(math.Sqrt(-ic))
		h = h.Add(c.Scale(g.Inner2(h, c)))
	} else {
		c = c.Div(math.Sqrt(ic))
		h = h.Sub(c.Scale(g.Inner2(h, c)))
	}
	l := g.LDim()
	if h[l] < 0 {
		h[0], h[1], h[l] = -h[0], -h[1], -h[l]
	}
	if i := g.Inner2(h, h); i > 0 {
		h = h.Div(math.Sqrt(i))
	} else {
		h = h.Div(-math.Sqrt(-i))
	}
	return h
}

// Clockwise reports whether h2 lies clockwise from h1 around the origin.
func Clockwise(h1, h2 Point) bool { return h1[0]*h2[1] > h1[1]*h2[0] }

// TowardsInf is the point dist away from material in the direction of dir
// (usually an (ultra)ideal point).
func (g *Geometry) TowardsInf(material, dir Point, dist float64) Point {
	id := g.Gpushxto0(material).Apply(dir)
	return g.Rgpushxto0(material).Mul(g.Rspintox(id)).Apply(g.Xpush0(dist))
}

// ToOtherSide returns the isometry reflecting across the line h1h2
// composed with the point reflection: it moves each point orthogonally to
// the line by twice its distance from the origin's foot point.
func (g *Geometry) ToOtherSide(h1, h2 Point) Matrix {
	d := g.Hdist(h1, h2)
	var v Point
	if g.class == ClassEuclid {
		v = h2.Sub(h1).Div(d)
	} else {
		v = h1.Scale(g.CosAuto(d)).Sub(h2).Div(g.SinAuto(d))
	}
	var d1 float64
	if g.class == ClassEuclid {
		d1 = -v.Dot(h1) / v.Dot(v)
	} else {
		l := g.LDim()
		d1 = g.AtanAuto(-v[l] / h1[l])
	}
	sgn := 1.0
	if g.class == ClassSphere {
		sgn = -1
	}
	hm := h1.Scale(g.CosAuto(d1)).Add(v.Scale(sgn * g.SinAuto(d1)))
	return g.Rspintox(hm).Mul(g.Xpush(-g.Hdist0(hm) * 2)).Mul(g.Spintox(hm))
}

// BucketerScalar quantizes x to a grid of 1e-4.
func BucketerScalar(x float64) uint32 {
	return uint32(int64(x*10000+100000.5) - 100000)
}

// Bucketer hashes a point so that nearby points usually share a key.
// Points straddling a grid line get different keys; callers that need
// robustness probe neighbouring buckets.
func (g *Geometry) Bucketer(h Point) uint32 {
	var dx uint32
	if g.IsProduct() {
		z, p := g.ProductDecompose(h)
		h = p
		dx += BucketerScalar(z) * 50
	}
	dx += BucketerScalar(h[0]) + 1000*BucketerScalar(h[1]) + 1000000*BucketerScalar(h[2])
	if g.mdim == 4 {
		dx += BucketerScalar(h[3]) * 1000000001
	}
	if g.Elliptic() && -dx < dx {
		dx = -dx
	}
	return dx
}
