package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hypertile/geom"
	"github.com/katalvlaran/hypertile/matrix"
)

const tol = 1e-9

func requirePointNear(t *testing.T, want, got geom.Point, eps float64) {
	t.Helper()
	for i := range want {
		require.InDeltaf(t, want[i], got[i], eps, "coordinate %d: want %v got %v", i, want, got)
	}
}

func TestByName_AllRegistered(t *testing.T) {
	for _, name := range geom.Names() {
		g, err := geom.ByName(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, g.Name())
	}
	g, err := geom.ByName("  Hyperbolic ")
	require.NoError(t, err)
	assert.Equal(t, geom.ClassHyperbolic, g.Class())

	_, err = geom.ByName("torus")
	require.ErrorIs(t, err, geom.ErrUnknownGeometry)
}

func TestNew_Unsupported(t *testing.T) {
	_, err := geom.New(geom.ClassNil, 2)
	require.ErrorIs(t, err, geom.ErrUnsupported)
	_, err = geom.New(geom.ClassProduct, 3)
	require.ErrorIs(t, err, geom.ErrUnsupported)
	_, err = geom.Product(geom.Nil())
	require.ErrorIs(t, err, geom.ErrUnsupported)
	_, err = geom.Embedded(geom.EmbedEucInHyp, geom.Hyperbolic2())
	require.ErrorIs(t, err, geom.ErrUnsupported)
}

func TestDimensions(t *testing.T) {
	cases := []struct {
		g          *geom.Geometry
		mdim, gdim int
	}{
		{geom.Euclid2(), 3, 2},
		{geom.Hyperbolic3(), 4, 3},
		{geom.Nil(), 4, 3},
		{must(geom.Product(geom.Hyperbolic2())), 3, 3},
	}
	for _, c := range cases {
		assert.Equal(t, c.mdim, c.g.MDim(), c.g.Name())
		assert.Equal(t, c.gdim, c.g.GDim(), c.g.Name())
		assert.Equal(t, c.mdim-1, c.g.LDim(), c.g.Name())
		assert.Equal(t, 1.0, c.g.C0()[c.g.LDim()], c.g.Name())
	}
}

func must(g *geom.Geometry, err error) *geom.Geometry {
	if err != nil {
		panic(err)
	}
	return g
}

func TestHdist_EuclideanPythagoras(t *testing.T) {
	g := geom.Euclid2()
	require.InDelta(t, 5.0, g.Hdist(g.Hpxy(0, 0), g.Hpxy(3, 4)), tol)
	require.InDelta(t, 5.0, g.Hdist0(g.Hpxy(3, 4)), tol)
}

func TestSpinZero_IsIdentity(t *testing.T) {
	for _, name := range geom.Names() {
		g, err := geom.ByName(name)
		require.NoError(t, err)
		require.Equal(t, matrix.Id, g.Spin(0), name)
	}
}

func TestNormalize_QuadraticFormAndIdempotence(t *testing.T) {
	cases := []struct {
		g    *geom.Geometry
		h    geom.Point
		form float64
	}{
		{geom.Hyperbolic2(), geom.Point{0.3, -0.2, 1.5}, -1},
		{geom.Sphere2(), geom.Point{0.3, 0.4, 2}, 1},
		{geom.Hyperbolic3(), geom.Point{0.3, -0.2, 0.7, 2.5}, -1},
		{geom.Sphere3(), geom.Point{0.1, 0.4, -0.2, 3}, 1},
	}
	for _, c := range cases {
		n := c.g.Normalize(c.h)
		require.InDelta(t, c.form, c.g.Intval(n, geom.Hypc), tol, c.g.Name())
		requirePointNear(t, n, c.g.Normalize(n), tol)
	}
	e := geom.Euclid2()
	require.Equal(t, geom.Point{1, 2, 1}, e.Normalize(geom.Point{2, 4, 2}))
}

func TestIsometriesPreserveDistance(t *testing.T) {
	for _, g := range []*geom.Geometry{geom.Euclid2(), geom.Hyperbolic2(), geom.Sphere2()} {
		T := g.Xpush(0.7).Mul(g.Spin(1.1)).Mul(g.Ypush(-0.3))
		a, b := g.Hpxy(0.2, 0.1), g.Hpxy(-0.5, 0.4)
		require.InDelta(t, g.Hdist(a, b), g.Hdist(T.Apply(a), T.Apply(b)), tol, g.Name())
	}
	for _, g := range []*geom.Geometry{geom.Euclid3(), geom.Hyperbolic3(), geom.Sphere3()} {
		T := g.Zpush(0.4).Mul(g.Xpush(0.7)).Mul(matrix.Cspin(1, 2, 0.8))
		a, b := g.Hpxy3(0.2, 0.1, -0.3), g.Hpxy3(-0.5, 0.4, 0.1)
		require.InDelta(t, g.Hdist(a, b), g.Hdist(T.Apply(a), T.Apply(b)), tol, g.Name())
	}
}

func TestGpushxto0_TakesPointToOrigin(t *testing.T) {
	for _, g := range []*geom.Geometry{geom.Euclid2(), geom.Hyperbolic2(), geom.Sphere2(), geom.Hyperbolic3()} {
		h := g.Normalize(g.Xpush(0.4).Mul(g.Ypush(0.9)).Apply(g.C0()))
		requirePointNear(t, g.C0(), g.Gpushxto0(h).Apply(h), tol)
		requirePointNear(t, h, g.Rgpushxto0(h).Apply(g.C0()), tol)
	}
}

func TestIsoInverse_MatchesInverse(t *testing.T) {
	for _, g := range []*geom.Geometry{geom.Euclid2(), geom.Hyperbolic2(), geom.Sphere2()} {
		T := g.Xpush(0.3).Mul(g.Spin(0.7)).Mul(g.Ypush(-0.5))
		require.True(t, matrix.EqMatrix(g.Inverse(T), g.IsoInverse(T), 1e-9), g.Name())
		require.True(t, matrix.EqMatrix(matrix.Id, T.Mul(g.IsoInverse(T)), 1e-9), g.Name())
	}
	for _, g := range []*geom.Geometry{geom.Hyperbolic3(), geom.Sphere3(), geom.Euclid3(), geom.Nil()} {
		T := g.Xpush(0.3).Mul(g.Ypush(-0.5)).Mul(g.Zpush(0.2))
		require.True(t, matrix.EqMatrix(g.Inverse(T), g.IsoInverse(T), 1e-9), g.Name())
		require.True(t, matrix.EqMatrix(matrix.Id, T.Mul(g.IsoInverse(T)), 1e-9), g.Name())
	}
}

func TestParabolicRoundTrip(t *testing.T) {
	h2 := geom.Hyperbolic2()
	h := h2.Hpxy(0.3, -0.4)
	requirePointNear(t, h, h2.Parabolic13Point(h2.Deparabolic13(h)), tol)
	x := geom.Point{0.5, 0.7}
	requirePointNear(t, x, h2.Deparabolic13(h2.Parabolic13Point(x)), tol)

	h3 := geom.Hyperbolic3()
	p := h3.Hpxy3(0.3, -0.4, 0.2)
	requirePointNear(t, p, h3.Parabolic13Point(h3.Deparabolic13(p)), tol)

	// Parabolic13At agrees with the point form.
	requirePointNear(t, h3.Parabolic13Point(geom.Point{0.5, 0.7, -0.2}),
		h3.Parabolic13At(geom.Point{0.5, 0.7, -0.2}).Apply(h3.C0()), tol)

	e := geom.Euclid2()
	require.Equal(t, h, e.Deparabolic13(h))
}

func TestEupush_HyperbolicInverse(t *testing.T) {
	g := geom.Hyperbolic2()
	h := g.Hpxy(0.4, 0.2)
	require.True(t, matrix.EqMatrix(matrix.Id, g.Eupush(h, 1).Mul(g.Eupush(h, -1)), 1e-9))
	requirePointNear(t, h, g.Eupush(h, 1).Apply(g.C0()), tol)
}

func TestFixmatrix(t *testing.T) {
	g := geom.Hyperbolic2()
	T := g.Xpush(0.5).Mul(g.Spin(0.3))
	require.True(t, matrix.EqMatrix(T, g.Fixmatrix(T), 1e-12))

	noisy := T
	noisy[0][0] += 1e-5
	noisy[2][1] -= 2e-5
	fixed := g.Fixmatrix(noisy)
	require.InDelta(t, -1, g.Intval(g.TC0(fixed), geom.Hypc), 1e-12)
	a, b := g.Hpxy(0.1, 0.2), g.Hpxy(-0.3, 0.1)
	require.InDelta(t, g.Hdist(a, b), g.Hdist(fixed.Apply(a), fixed.Apply(b)), 1e-9)

	e := geom.Euclid2()
	E := e.Xpush(2).Mul(e.Spin(1))
	E[0][0] *= 1.001
	E[2][0] = 0.01
	fe := e.Fixmatrix(E)
	assert.Equal(t, 0.0, fe[2][0])
	require.InDelta(t, 1, fe[0][0]*fe[0][0]+fe[1][0]*fe[1][0], 1e-12)

	affine := geom.Euclid2(geom.WithAffine())
	require.Equal(t, E, affine.Fixmatrix(E))

	nilg := geom.Nil()
	N := nilg.Translate(geom.Point{1, 2, 3, 1})
	N[0][1] = 0.5
	require.Equal(t, N, nilg.Fixmatrix(N))
}

func TestFixRotation(t *testing.T) {
	R := matrix.Cspin(0, 1, 0.4).Mul(matrix.Cspin(1, 2, 1.2))
	R[0][0] += 1e-4
	R[1][2] -= 1e-4
	require.Greater(t, geom.OrthoError(R), 1e-10)
	require.Less(t, geom.OrthoError(geom.FixRotation(R)), 1e-20)
}

func TestMidpoints(t *testing.T) {
	g := geom.Hyperbolic2()
	a, b := g.Hpxy(0.4, 0), g.Hpxy(-0.1, 0.3)
	m := g.Mid(a, b)
	require.InDelta(t, g.Hdist(a, m), g.Hdist(m, b), tol)
	require.InDelta(t, g.Hdist(a, b)/2, g.Hdist(a, m), tol)

	h := g.Xpush0(1.2)
	require.InDelta(t, 0.3, g.Hdist0(g.MidAtActual(h, 0.25)), tol)

	p := must(geom.Product(geom.Hyperbolic2()))
	pa := p.ScalePoint(p.Underlying().Xpush0(0.5), math.Exp(1))
	pb := p.ScalePoint(p.Underlying().Xpush0(-0.5), math.Exp(3))
	pm := p.Mid(pa, pb)
	require.InDelta(t, 2.0, p.Zlevel(pm), tol)
	require.InDelta(t, 0.0, p.Hdist0(p.Underlying().Normalize(pm)), 1e-6)
}

func TestProductDistance(t *testing.T) {
	p := must(geom.Product(geom.Sphere2()))
	a := p.ScalePoint(p.Underlying().Xpush0(0.3), math.Exp(0.4))
	z, flat := p.ProductDecompose(a)
	require.InDelta(t, 0.4, z, tol)
	require.InDelta(t, 1, p.Underlying().Intval(flat, geom.Hypc), tol)
	require.InDelta(t, 0.5, p.Hdist0(a), tol)
	require.InDelta(t, 0.5, p.Hdist(p.C0(), a), tol)
	require.Equal(t, a, p.Normalize(a))
}

func TestCircumscribe_Equidistant(t *testing.T) {
	for _, g := range []*geom.Geometry{geom.Euclid2(), geom.Hyperbolic2(), geom.Sphere2()} {
		a, b, c := g.Xspinpush0(0.1, 0.5), g.Xspinpush0(2, 0.7), g.Xspinpush0(4, 0.3)
		o := g.Circumscribe(a, b, c)
		if g.Class() == geom.ClassEuclid {
			o = g.Normalize(o)
		}
		require.InDelta(t, g.Hdist(o, a), g.Hdist(o, b), 1e-9, g.Name())
		require.InDelta(t, g.Hdist(o, a), g.Hdist(o, c), 1e-9, g.Name())
	}
}

func TestMaterialAndIdeals(t *testing.T) {
	g := geom.Hyperbolic2()
	assert.Equal(t, 1, g.SafeClassifyIdeals(g.Hpxy(0.5, 0.5)))
	assert.Equal(t, 0, g.SafeClassifyIdeals(geom.Point{1, 0, 1}))
	assert.Equal(t, -1, g.SafeClassifyIdeals(geom.Point{2, 0, 1}))
	assert.Greater(t, g.Material(g.Hpxy(0.5, 0.5)), 0.0)
	assert.Less(t, g.Material(geom.Point{2, 0, 1}), 0.0)

	ideal := geom.Point{1, 0, 1}
	approx := g.SafeApproximationOfIdeal(ideal)
	require.InDelta(t, geom.IdealLimit, g.Hdist0(approx), 1e-6)
	require.Greater(t, approx[0], 0.0)

	u := g.UltraNormalize(geom.Point{2, 0, 1})
	assert.Greater(t, g.Material(u), 0.5)
	assert.Greater(t, u[2], 0.0)
}

func TestBucketer(t *testing.T) {
	assert.Equal(t, uint32(0), geom.BucketerScalar(0))
	assert.Equal(t, uint32(0), geom.BucketerScalar(0.00004))
	assert.Equal(t, uint32(1), geom.BucketerScalar(0.00006))
	g := geom.Hyperbolic2()
	h := g.Xpush0(1)
	assert.Equal(t, g.Bucketer(h), g.Bucketer(g.Xpush(0.5).Apply(g.Xpush0(0.5))))
	assert.NotEqual(t, g.Bucketer(h), g.Bucketer(g.Xpush0(1.01)))
}

func TestToOtherSide(t *testing.T) {
	g := geom.Hyperbolic2()
	h1, h2 := g.Hpxy(0.5, -1), g.Hpxy(0.5, 1)
	T := g.ToOtherSide(h1, h2)
	// both defining points stay on the line, mirrored across its foot point
	o := T.Apply(g.C0())
	require.InDelta(t, 2*g.Hdist0(g.Normalize(g.ClosestToZero(h1, h2))), g.Hdist0(o), 1e-6)
}

func TestLinecross(t *testing.T) {
	g := geom.Euclid2()
	x := g.Linecross(g.Hpxy(-1, 0), g.Hpxy(1, 0), g.Hpxy(0.5, -1), g.Hpxy(0.5, 1))
	requirePointNear(t, geom.Point{0.5, 0, 1}, x, tol)
}
