package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/hypertile/geom"
	"github.com/katalvlaran/hypertile/matrix"
)

func TestIsotropic_ExpLogRoundTrip(t *testing.T) {
	v := geom.Point{0.3, -0.4, 0, 0}
	for _, g := range []*geom.Geometry{geom.Euclid2(), geom.Hyperbolic2(), geom.Sphere2()} {
		p := g.DirectExp(v)
		assert.InDelta(t, 0.5, g.Hdist0(p), tol, g.Name())
		requirePointNear(t, v, g.InverseExp(matrix.ShiftLessPoint(p), geom.PNormal), tol)
	}
}

func TestProduct_ExpLogRoundTrip(t *testing.T) {
	g := must(geom.ByName("h2xr"))
	v := geom.Point{0.3, -0.4, 0.2, 0}
	p := g.DirectExp(v)
	assert.InDelta(t, 0.2, g.Zlevel(p), tol)
	assert.InDelta(t, v.HypotD(3), g.Hdist0(p), tol)
	requirePointNear(t, v, g.InverseExp(matrix.ShiftLessPoint(p), geom.PNormal), tol)
}

func TestTangentLength(t *testing.T) {
	g := geom.Hyperbolic3()
	got := g.TangentLength(geom.Point{3, 4, 0, 0}, 2)
	requirePointNear(t, geom.Point{1.2, 1.6, 0, 0}, got, tol)
	requirePointNear(t, geom.Point{}, g.TangentLength(geom.Point{}, 2), 0)
	requirePointNear(t, geom.Point{0, 0, 0.5, 0}, geom.Ztangent(0.5), 0)
}
