package geom

import (
	"math"

	"github.com/katalvlaran/hypertile/matrix"
)

// LogicalToHostPoint lifts a point of the logical plane into the host
// geometry. Geometries that are not embedding hosts return h unchanged.
func (g *Geometry) LogicalToHostPoint(h Point) Point {
	switch g.embed {
	case EmbedSameInSame:
		return Point{h[0], h[1], 0, h[2]}
	case EmbedEucInHyp:
		return g.Parabolic13(h[0], h[1]).Apply(g.C0())
	}
	return h
}

// HostToLogicalPoint projects a host point back onto the logical plane.
func (g *Geometry) HostToLogicalPoint(h Point) Point {
	switch g.embed {
	case EmbedSameInSame:
		return Point{h[0], h[1], h[3], 0}
	case EmbedEucInHyp:
		d := g.Deparabolic13(h)
		return Point{d[0], d[1], 1, 0}
	}
	return h
}

// LogicalToHostMatrix lifts a logical isometry into the host geometry.
// A result containing NaN is replaced by the identity.
func (g *Geometry) LogicalToHostMatrix(T Matrix) Matrix {
	switch g.embed {
	case EmbedNone:
		return T
	case EmbedEucInHyp:
		mov := g.logical.TC0(T)
		U := g.logical.Gpushxto0(mov).Mul(T)
		for i := 0; i < 4; i++ {
			U[i][3], U[3][i] = 0, 0
		}
		U[3][3] = 1
		T = g.Parabolic13(mov[0], mov[1]).Mul(U)
	case EmbedSameInSame:
		T = matrix.SwapCoords(2, 3).Mul(T).Mul(matrix.SwapCoords(2, 3))
		for i := 0; i < 4; i++ {
			T[i][2], T[2][i] = 0, 0
		}
		T[2][2] = 1
	}
	T = g.Fixmatrix(T)
	for i := 0; i < g.mdim; i++ {
		for j := 0; j < g.mdim; j++ {
			if math.IsNaN(T[i][j]) {
				return matrix.Id
			}
		}
	}
	return T
}

// Lxpush is Xpush along the logical plane.
func (g *Geometry) Lxpush(alpha float64) Matrix {
	if g.embed == EmbedNone {
		return g.Xpush(alpha)
	}
	return g.LogicalToHostMatrix(g.logical.Xpush(alpha))
}

// Lspinpush0 is Xspinpush0 in the logical plane, lifted to the host.
func (g *Geometry) Lspinpush0(alpha, x float64) Point {
	if g.embed == EmbedNone {
		return g.Xspinpush0(alpha, x)
	}
	return g.LogicalToHostPoint(g.logical.Xspinpush0(alpha, x))
}
