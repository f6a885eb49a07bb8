package geom

import "math"

// Parabolic1 is the horocyclic translation by u in a 2D model. In
// Euclidean geometry it is a plain translation along the second axis.
func (g *Geometry) Parabolic1(u float64) Matrix {
	if g.class == ClassEuclid {
		return g.Ypush(u)
	}
	diag := u * u / 2
	return g.Matrix3(
		-diag+1, u, diag,
		-u, 1, u,
		-diag, u, diag+1)
}

// Parabolic13 is the horocyclic translation by (u, v) in a 3D model. For
// a Euclidean plane embedded in H3 the horosphere is the one through the
// origin orthogonal to the third axis.
func (g *Geometry) Parabolic13(u, v float64) Matrix {
	diag := (u*u + v*v) / 2
	switch {
	case g.class == ClassEuclid:
		return g.EuclideanTranslate(0, u, v)
	case g.embed == EmbedEucInHyp:
		return Matrix4(
			1, 0, -u, u,
			0, 1, -v, v,
			u, v, -diag+1, diag,
			u, v, -diag, diag+1)
	}
	return Matrix4(
		-diag+1, u, v, diag,
		-u, 1, 0, u,
		-v, 0, 1, v,
		-diag, u, v, diag+1)
}

// Deparabolic13 returns the horocyclic coordinates of h: the distance
// along the first axis followed by the horocyclic offsets. It is the
// inverse of Parabolic13Point.
func (g *Geometry) Deparabolic13(h Point) Point {
	if g.class == ClassEuclid {
		return h
	}
	l := g.LDim()
	h = h.Div(1 + h[l])
	if g.embed == EmbedEucInHyp {
		h[2] -= 1
		h = h.Div(h.SqhypotD(l))
		h[2] += .5
		return Point{h[0] * 2, h[1] * 2, math.Log(2) + math.Log(-h[2]), 0}
	}
	h[0] -= 1
	h = h.Div(h.SqhypotD(l))
	h[0] += .5
	res := Point{math.Log(2) + math.Log(-h[0]), h[1] * 2, 0, 0}
	if l == 3 {
		res[2] = h[2] * 2
	}
	return res
}

// Parabolic13Point maps horocyclic coordinates back to a model point.
func (g *Geometry) Parabolic13Point(h Point) Point {
	switch {
	case g.class == ClassEuclid:
		return h
	case g.embed == EmbedEucInHyp:
		return g.Parabolic13(h[0], h[1]).Apply(g.Cpush0(2, h[2]))
	case g.LDim() == 3:
		return g.Parabolic13(h[1], h[2]).Apply(g.Xpush0(h[0]))
	}
	return g.Parabolic1(h[1]).Apply(g.Xpush0(h[0]))
}

// Parabolic13At is the isometry taking the origin to Parabolic13Point(h)
// that preserves the horocycle foliation.
func (g *Geometry) Parabolic13At(h Point) Matrix {
	switch {
	case g.class == ClassEuclid:
		return g.Rgpushxto0(h)
	case g.embed == EmbedEucInHyp:
		return g.Parabolic13(h[0], h[1]).Mul(g.Cpush(2, h[2]))
	case g.LDim() == 3:
		return g.Parabolic13(h[1], h[2]).Mul(g.Xpush(h[0]))
	}
	return g.Parabolic1(h[1]).Mul(g.Xpush(h[0]))
}
