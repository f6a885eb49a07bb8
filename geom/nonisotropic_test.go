package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hypertile/geom"
	"github.com/katalvlaran/hypertile/matrix"
)

func TestNonisotropic_ExpLogRoundTrip(t *testing.T) {
	cases := []struct {
		g *geom.Geometry
		v geom.Point
	}{
		{geom.Nil(), geom.Point{0.5, -0.3, 0.8, 0}},
		{geom.Nil(), geom.Point{0.2, 0.4, 3, 0}},
		{geom.Nil(), geom.Point{-0.6, 0.1, -2, 0}},
		{geom.Sol(), geom.Point{0.3, -0.2, 0.25, 0}},
		{geom.SL2(), geom.Point{0.3, 0.2, 0.4, 0}},
	}
	for _, tc := range cases {
		p := tc.g.DirectExp(tc.v)
		got := tc.g.InverseExp(matrix.ShiftLessPoint(p), geom.PNormal)
		requirePointNear(t, tc.v, got, 1e-6)
	}
}

func TestNonisotropic_TranslateAndInverse(t *testing.T) {
	for _, g := range []*geom.Geometry{geom.Nil(), geom.Sol(), geom.SL2()} {
		h := g.DirectExp(geom.Point{0.4, -0.2, 0.3, 0})
		requirePointNear(t, h, g.Translate(h).Apply(g.C0()), 1e-9)
		requirePointNear(t, g.C0(), g.ITranslate(h).Apply(h), 1e-9)
		require.True(t, matrix.EqMatrix(matrix.Id, g.Translate(h).Mul(g.ITranslate(h)), 1e-9), g.Name())
		// Gpushxto0 and Rgpushxto0 are the group translations
		require.Equal(t, g.ITranslate(h), g.Gpushxto0(h))
		require.Equal(t, g.Translate(h), g.Rgpushxto0(h))
	}
}

func TestNonisotropic_GeoDist(t *testing.T) {
	g := geom.Nil()
	v := geom.Point{0.5, -0.3, 0.8, 0}
	a := g.Xpush0(0.3)
	b := g.Translate(a).Apply(g.DirectExp(v))
	assert.InDelta(t, v.HypotD(3), g.GeoDist(a, b, geom.PNormal), 1e-6)
	assert.InDelta(t, 0.0, g.GeoDist(a, a, geom.PNormal), 1e-9)

	// Nil distance estimate is exact along the axes
	assert.InDelta(t, 0.7, g.Hdist0(g.Xpush0(0.7)), tol)
	assert.InDelta(t, 0.7, g.Hdist0(g.Zpush0(0.7)), tol)
}

func TestLieExp(t *testing.T) {
	n := geom.Nil()
	requirePointNear(t, geom.Point{0.7, 0, 0, 1}, n.LieExp(geom.Xtangent(0.7)).Apply(n.C0()), 1e-12)
	requirePointNear(t, geom.Point{0, 0, -0.4, 1}, n.LieExp(geom.Ztangent(-0.4)).Apply(n.C0()), 1e-12)

	s := geom.Sol()
	requirePointNear(t, geom.Point{0, 0, 0.5, 1}, s.LieExp(geom.Ztangent(0.5)).Apply(s.C0()), 1e-9)

	// isotropic geometries: the one-parameter subgroup is the geodesic
	h := geom.Hyperbolic2()
	requirePointNear(t, h.Xpush0(0.8), h.LieExp(geom.Xtangent(0.8)).Apply(h.C0()), 1e-9)
}

func TestNonisotropic_QuickPrecision(t *testing.T) {
	g := geom.Nil()
	v := geom.Point{0.3, 0.3, 0.5, 0}
	p := g.DirectExp(v)
	got := g.InverseExp(matrix.ShiftLessPoint(p), geom.PQuick)
	requirePointNear(t, v, got, 1e-5)
}
