package geom_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hypertile/geom"
	"github.com/katalvlaran/hypertile/matrix"
)

// requirePanicIs runs fn and checks that it panics with an error wrapping target.
func requirePanicIs(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.True(t, errors.Is(err, target), "got %v", err)
	}()
	fn()
}

func TestShiftMethod_Selection(t *testing.T) {
	eih := must(geom.ByName("euc-in-hyp"))
	hih := must(geom.ByName("hyp-in-hyp"))
	cases := []struct {
		name string
		g    *geom.Geometry
		app  geom.ShiftMethodApplication
		want geom.ShiftMethod
	}{
		{"hyperbolic object", geom.Hyperbolic2(), geom.SMAObject, geom.SMIsotropic},
		{"sphere camera", geom.Sphere3(), geom.SMAManualCamera, geom.SMIsotropic},
		{"product", must(geom.ByName("h2xr")), geom.SMAAutocenter, geom.SMProduct},
		{"nil geodesic", geom.Nil(), geom.SMAObject, geom.SMGeodesic},
		{"nil lie", geom.Nil(geom.WithGeodesicMovement(false)), geom.SMAObject, geom.SMLie},
		{"euc-in-hyp object", eih, geom.SMAObject, geom.SMEmbedded},
		{"euc-in-hyp camera", eih, geom.SMAManualCamera, geom.SMEmbedded},
		{"euc-in-hyp radar", eih, geom.SMAWallRadar, geom.SMIsotropic},
		{"hyp-in-hyp object", hih, geom.SMAObject, geom.SMIsotropic},
		{
			"euc-in-hyp manual, auto only",
			must(geom.Embedded(geom.EmbedEucInHyp, geom.Euclid2(), geom.WithEmbeddedShiftChoice(geom.SMCAuto))),
			geom.SMAManualCamera, geom.SMIsotropic,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.g.ShiftMethod(tc.app))
		})
	}
}

func TestUseEmbeddedShift(t *testing.T) {
	g := geom.Hyperbolic2(geom.WithEmbeddedShiftChoice(geom.SMCAuto))
	assert.True(t, g.UseEmbeddedShift(geom.SMAAutocenter))
	assert.True(t, g.UseEmbeddedShift(geom.SMAAnimation))
	assert.False(t, g.UseEmbeddedShift(geom.SMAManualCamera))
	assert.True(t, g.UseEmbeddedShift(geom.SMAObject))
	assert.False(t, g.UseEmbeddedShift(geom.SMAWallRadar))
	requirePanicIs(t, geom.ErrUnknownShiftMethod, func() {
		g.UseEmbeddedShift(geom.ShiftMethodApplication(42))
	})
}

func TestShiftObject(t *testing.T) {
	h := geom.Hyperbolic2()
	T := h.ShiftObject(matrix.Id, matrix.Id, geom.Xtangent(0.5), geom.SMIsotropic)
	requirePointNear(t, h.Xpush0(0.5), T.Apply(h.C0()), tol)

	p := must(geom.ByName("h2xr"))
	T = p.ShiftObject(matrix.Id, matrix.Id, geom.Ztangent(0.3), geom.SMProduct)
	assert.InDelta(t, 0.3, p.Zlevel(T.Apply(p.C0())), tol)

	n := geom.Nil()
	v := geom.Point{0.2, 0.1, 0.3, 0}
	T = n.ShiftObject(matrix.Id, matrix.Id, v, geom.SMGeodesic)
	requirePointNear(t, n.DirectExp(v), T.Apply(n.C0()), 1e-9)
	T = n.ShiftObject(matrix.Id, matrix.Id, v, geom.SMLie)
	requirePointNear(t, n.LieExp(v).Apply(n.C0()), T.Apply(n.C0()), 1e-12)

	eih := must(geom.ByName("euc-in-hyp"))
	T = eih.ShiftObject(matrix.Id, matrix.Id, geom.Xtangent(0.5), geom.SMEmbedded)
	requirePointNear(t, eih.LogicalToHostPoint(geom.Point{0.5, 0, 1, 0}), T.Apply(eih.C0()), 1e-9)

	requirePanicIs(t, geom.ErrUnknownShiftMethod, func() {
		h.ShiftObject(matrix.Id, matrix.Id, geom.Xtangent(0.5), geom.ShiftMethod(99))
	})
	assert.Equal(t, "ShiftMethod(99)", geom.ShiftMethod(99).String())
	assert.Equal(t, "geodesic", geom.SMGeodesic.String())
}
