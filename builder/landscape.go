package builder

import (
	"math"

	"github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/katalvlaran/hypertile/core"
	"github.com/katalvlaran/hypertile/geom"
)

// noiseRange maps noise in [-1,1] to heptagon values.
const noiseRange = 1000

// field is a scalar noise in roughly [-1,1].
type field interface {
	at2(x, y float64) float64
	at3(x, y, z float64) float64
}

// perlinField is the Perlin noise of go-perlin.
type perlinField struct{ p *perlin.Perlin }

func newPerlinField(seed int64) field {
	return perlinField{perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed)}
}

func (f perlinField) at2(x, y float64) float64    { return f.p.Noise2D(x, y) }
func (f perlinField) at3(x, y, z float64) float64 { return f.p.Noise3D(x, y, z) }

// simplexField layers octaves of OpenSimplex noise, each at twice the
// frequency and half the amplitude of the previous one.
type simplexField struct{ n opensimplex.Noise }

func newSimplexField(seed int64) field {
	return simplexField{opensimplex.New(seed)}
}

func (f simplexField) at2(x, y float64) float64 {
	return f.octaves(func(s float64) float64 { return f.n.Eval2(x*s, y*s) })
}

func (f simplexField) at3(x, y, z float64) float64 {
	return f.octaves(func(s float64) float64 { return f.n.Eval3(x*s, y*s, z*s) })
}

func (f simplexField) octaves(eval func(scale float64) float64) float64 {
	total, amp, maxVal, scale := 0.0, 1.0, 0.0, 1.0
	for i := 0; i < noiseOctaves; i++ {
		total += eval(scale) * amp
		maxVal += amp
		amp /= noiseAlpha
		scale *= noiseBeta
	}
	return total / maxVal
}

// paint stores landscape noise sampled at the centre of h. Two samples at
// offset coordinates fill Rval0 and Rval1; the cell repeats Rval0 in
// LandParam.
func (t *Tiling) paint(h *core.Heptagon, center geom.Point) {
	h.Rval0 = int16(math.Round(clampUnit(t.sample(center, 0)) * noiseRange))
	h.Rval1 = int16(math.Round(clampUnit(t.sample(center, 17.5)) * noiseRange))
	if h.C7 != nil {
		h.C7.LandParam = int32(h.Rval0)
	}
}

// sample evaluates the noise at h shifted by off in noise space. The
// sphere is sampled on its embedding in 3D, the hyperbolic plane in the
// Poincaré disk and the Euclidean plane in its affine chart.
func (t *Tiling) sample(h geom.Point, off float64) float64 {
	switch t.g.Class() {
	case geom.ClassSphere:
		return t.noise.at3(h[0]*landscapeScale+off, h[1]*landscapeScale, h[2]*landscapeScale)
	case geom.ClassHyperbolic:
		s := landscapeScale / (1 + h[2])
		return t.noise.at2(h[0]*s+off, h[1]*s)
	}
	s := landscapeScale
	if h[2] != 0 {
		s /= h[2]
	}
	return t.noise.at2(h[0]*s+off, h[1]*s)
}

// clampUnit clamps x to [-1,1]; summed octaves may overshoot.
func clampUnit(x float64) float64 {
	return math.Max(-1, math.Min(1, x))
}
