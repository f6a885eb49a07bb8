package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hypertile/geom"
)

func TestClamps_NeverNaN(t *testing.T) {
	inputs := []float64{-5, -1.0000001, -1, -0.3, 0, 0.7, 1, 1.0000001, 5, math.NaN(), math.Inf(1), math.Inf(-1)}
	gs := []*geom.Geometry{geom.Euclid2(), geom.Hyperbolic2(), geom.Sphere2(), geom.SL2(), must(geom.Product(geom.Hyperbolic2()))}
	for _, x := range inputs {
		assert.False(t, math.IsNaN(geom.AsinClamp(x)), "AsinClamp(%v)", x)
		assert.False(t, math.IsNaN(geom.AcosClamp(x)), "AcosClamp(%v)", x)
		for _, g := range gs {
			assert.False(t, math.IsNaN(g.AsinAutoClamp(x)), "%s AsinAutoClamp(%v)", g, x)
			assert.False(t, math.IsNaN(g.AcosAutoClamp(x)), "%s AcosAutoClamp(%v)", g, x)
		}
	}
	require.Equal(t, math.Pi/2, geom.AsinClamp(3))
	require.Equal(t, math.Pi, geom.AcosClamp(-3))
	require.Equal(t, 0.0, geom.AcosClamp(math.NaN()))
	require.Equal(t, 0.0, geom.Hyperbolic2().AcosAutoClamp(0.5))
}

func TestTrigFamilies(t *testing.T) {
	e, h, s := geom.Euclid2(), geom.Hyperbolic2(), geom.Sphere2()
	x := 0.8
	require.Equal(t, x, e.SinAuto(x))
	require.Equal(t, 1.0, e.CosAuto(x))
	require.Equal(t, x, e.TanAuto(x))
	require.Equal(t, math.Sinh(x), h.SinAuto(x))
	require.Equal(t, math.Cosh(x), h.CosAuto(x))
	require.Equal(t, math.Sin(x), s.SinAuto(x))
	require.Equal(t, math.Atan2(0.3, 0.4), s.Atan2Auto(0.3, 0.4))
	require.InDelta(t, x, h.AsinAuto(h.SinAuto(x)), tol)
	require.InDelta(t, x, h.AcosAuto(h.CosAuto(x)), tol)
	require.InDelta(t, x, s.AtanAuto(s.TanAuto(x)), tol)

	// product geometries use the factor's formulas
	p := must(geom.Product(geom.Sphere2()))
	require.Equal(t, math.Sin(x), p.SinAuto(x))
	require.Equal(t, 1.0, p.Curvature())

	// non-isotropic defaults
	n := geom.Nil()
	require.Equal(t, x, n.SinAuto(x))
	require.Equal(t, 1.0, n.CosAuto(x))
	require.Equal(t, 1.0, n.TanAuto(x))
	require.Equal(t, math.Sinh(x), geom.SL2().SinAuto(x))
}

func TestCurvatureQuantities(t *testing.T) {
	e, h, s := geom.Euclid2(), geom.Hyperbolic2(), geom.Sphere2()
	require.Equal(t, []float64{0, -1, 1}, []float64{e.Curvature(), h.Curvature(), s.Curvature()})
	require.InDelta(t, 2*math.Pi, e.CircleLength(1), tol)
	require.InDelta(t, 2*math.Pi*math.Sinh(1), h.CircleLength(1), tol)
	require.InDelta(t, 4*math.Pi, s.AreaAuto(math.Pi), tol)
	require.InDelta(t, math.Pi, e.AreaAuto(1), tol)
	require.InDelta(t, h.AreaAuto(0.5), h.WvolareaAuto(0.5), tol)
	h3 := geom.Hyperbolic3()
	require.InDelta(t, h3.VolumeAuto(0.5), h3.WvolareaAuto(0.5), tol)
	require.InDelta(t, 5.0, e.HypotAuto(3, 4), tol)
	require.InDelta(t, math.Acosh(math.Cosh(1)*math.Cosh(2)), h.HypotAuto(1, 2), tol)
}

func TestEdgeOfTriangleWithAngles(t *testing.T) {
	s := geom.Sphere2()
	// adjacent faces of a dodecahedron subtend atan(2)
	r := s.EdgeOfTriangleWithAngles(math.Pi/3, math.Pi/5, math.Pi/2)
	require.InDelta(t, math.Atan(2), 2*r, tol)

	// {7,3}: heptagon inradius
	h := geom.Hyperbolic2()
	r = h.EdgeOfTriangleWithAngles(math.Pi/3, math.Pi/7, math.Pi/2)
	require.InDelta(t, math.Acosh(math.Cos(math.Pi/3)/math.Sin(math.Pi/7)), r, tol)

	require.Equal(t, 0.0, geom.Euclid2().EdgeOfTriangleWithAngles(math.Pi/4, math.Pi/4, math.Pi/2))
}

func TestScalarHelpers(t *testing.T) {
	require.Equal(t, -1.0, geom.Signum(-3))
	require.Equal(t, 0.0, geom.Signum(0))
	require.True(t, geom.Asign(-1, 2))
	require.False(t, geom.Asign(1, 2))
	require.InDelta(t, 0.5, geom.Xcross(0, -1, 1, 1), tol)
	require.InDelta(t, 0.1, geom.Cyclefix(0.1+4*math.Pi, 0), tol)
	require.InDelta(t, 0.2, geom.Raddif(0.1, 2*math.Pi-0.1), tol)
	require.Equal(t, 9.0, geom.Squar(3))
	require.True(t, geom.Clockwise(geom.Point{1, 0}, geom.Point{0, 1}))
}
