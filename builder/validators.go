package builder

import (
	"github.com/katalvlaran/hypertile/geom"
)

// validateGeometry accepts the 2D isotropic spaces: the Euclidean plane,
// the sphere and the hyperbolic plane.
func validateGeometry(method string, g *geom.Geometry) error {
	if g == nil {
		return builderErrorf(method, "nil geometry: %w", ErrUnsupportedGeometry)
	}
	switch g.Class() {
	case geom.ClassEuclid, geom.ClassHyperbolic, geom.ClassSphere:
	default:
		return builderErrorf(method, "%s: %w", g.Name(), ErrUnsupportedGeometry)
	}
	if g.GDim() != 2 || g.Elliptic() {
		return builderErrorf(method, "%s: %w", g.Name(), ErrUnsupportedGeometry)
	}
	return nil
}

// validateTiling checks that {p,q} tiles g: (p-2)(q-2) is above 4 in the
// hyperbolic plane, equal to 4 in the Euclidean plane and below 4 on the
// sphere.
func validateTiling(method string, g *geom.Geometry, p, q int) error {
	if p < MinPolygon || q < MinPolygon {
		return builderErrorf(method, "{%d,%d} needs p,q ≥ %d: %w", p, q, MinPolygon, ErrInvalidTiling)
	}
	k := (p - 2) * (q - 2)
	var ok bool
	switch g.Class() {
	case geom.ClassHyperbolic:
		ok = k > 4
	case geom.ClassEuclid:
		ok = k == 4
	case geom.ClassSphere:
		ok = k < 4
	}
	if !ok {
		return builderErrorf(method, "{%d,%d} on %s: %w", p, q, g.Name(), ErrInvalidTiling)
	}
	return nil
}
