package geom

import "math"

// AsinClamp is asin with its argument saturated to [-1, 1]; NaN maps to 0.
func AsinClamp(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return 0
	case x > 1:
		return math.Pi / 2
	case x < -1:
		return -math.Pi / 2
	}
	return math.Asin(x)
}

// AcosClamp is acos with its argument saturated to [-1, 1]; NaN maps to 0.
func AcosClamp(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return 0
	case x > 1:
		return 0
	case x < -1:
		return math.Pi
	}
	return math.Acos(x)
}

// Signum returns -1, 0 or 1.
func Signum(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// Asign reports whether y1 and y2 have different signs.
func Asign(y1, y2 float64) bool { return Signum(y1) != Signum(y2) }

// Xcross is the x coordinate where the segment (x1,y1)-(x2,y2) crosses y=0.
func Xcross(x1, y1, x2, y2 float64) float64 {
	return x1 + (x2-x1)*y1/(y1-y2)
}

// Cyclefix returns a + 2πk closest to b.
func Cyclefix(a, b float64) float64 {
	for a > b+math.Pi {
		a -= 2 * math.Pi
	}
	for a < b-math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// Raddif is the absolute angular difference of a and b in [0, π].
func Raddif(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 2*math.Pi)
	if d > math.Pi {
		d = 2*math.Pi - d
	}
	return d
}

// Squar is x².
func Squar(x float64) float64 { return x * x }

// SinAuto is the curvature-correct sine: x in Euclidean (and the default
// for non-isotropic geometries), sinh for hyperbolic, sin for spherical.
func (g *Geometry) SinAuto(x float64) float64 { return g.m.sin(x) }

// CosAuto is the curvature-correct cosine (1 in Euclidean).
func (g *Geometry) CosAuto(x float64) float64 { return g.m.cos(x) }

// TanAuto is the curvature-correct tangent.
func (g *Geometry) TanAuto(x float64) float64 { return g.m.tan(x) }

// AsinAuto is the curvature-correct inverse sine.
func (g *Geometry) AsinAuto(x float64) float64 { return g.m.asin(x) }

// AcosAuto is the curvature-correct inverse cosine.
func (g *Geometry) AcosAuto(x float64) float64 { return g.m.acos(x) }

// AtanAuto is the curvature-correct inverse tangent.
func (g *Geometry) AtanAuto(x float64) float64 { return g.m.atan(x) }

// Atan2Auto is the curvature-correct two-argument inverse tangent.
func (g *Geometry) Atan2Auto(y, x float64) float64 { return g.m.atan2(y, x) }

// AsinAutoClamp never returns NaN.
func (g *Geometry) AsinAutoClamp(x float64) float64 { return g.m.asinClamp(x) }

// AcosAutoClamp never returns NaN; in hyperbolic geometry arguments
// below 1 give 0.
func (g *Geometry) AcosAutoClamp(x float64) float64 { return g.m.acosClamp(x) }

// Curvature is -1, 0 or 1.
func (g *Geometry) Curvature() float64 { return g.m.curvature() }

// HypotAuto is the hypotenuse of a right triangle with legs x and y.
func (g *Geometry) HypotAuto(x, y float64) float64 { return g.m.hypot(x, y) }

// AreaAuto is the area of a disk of radius r.
func (g *Geometry) AreaAuto(r float64) float64 { return g.m.area(r) }

// VolumeAuto is the volume of a ball of radius r.
func (g *Geometry) VolumeAuto(r float64) float64 { return g.m.volume(r) }

// WvolareaAuto is AreaAuto or VolumeAuto depending on the world dimension.
func (g *Geometry) WvolareaAuto(r float64) float64 {
	if g.WDim() == 3 {
		return g.VolumeAuto(r)
	}
	return g.AreaAuto(r)
}

// CircleLength is the circumference of a circle of radius r.
func (g *Geometry) CircleLength(r float64) float64 { return g.m.circle(r) }

// EdgeOfTriangleWithAngles returns the length of the edge opposite to
// alpha in a triangle with angles alpha, beta, gamma. In Euclidean
// geometry the shape does not determine the size and the result is 0.
func (g *Geometry) EdgeOfTriangleWithAngles(alpha, beta, gamma float64) float64 {
	num := math.Cos(alpha) + math.Cos(beta)*math.Cos(gamma)
	den := math.Sin(beta) * math.Sin(gamma)
	switch g.Curvature() {
	case -1:
		return g.AcosAutoClamp(num / den)
	case 1:
		return AcosClamp(num / den)
	}
	return 0
}
