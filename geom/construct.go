package geom

import (
	"math"

	"github.com/katalvlaran/hypertile/matrix"
)

// Spin rotates by alpha in the xy plane. Rotations are locally Euclidean,
// so the same matrix serves every geometry.
func (g *Geometry) Spin(alpha float64) Matrix { return matrix.Cspin(0, 1, alpha) }

// Spin90 rotates by a quarter turn with exact entries.
func (g *Geometry) Spin90() Matrix { return matrix.Cspin90(0, 1) }

// Spin180 rotates by a half turn with exact entries.
func (g *Geometry) Spin180() Matrix { return matrix.Cspin180(0, 1) }

// Spin270 rotates by three quarter turns with exact entries.
func (g *Geometry) Spin270() Matrix { return matrix.Cspin90(1, 0) }

// Cpush translates by alpha along coordinate axis c.
func (g *Geometry) Cpush(c int, alpha float64) Matrix { return g.m.cpush(c, alpha) }

// Xpush translates by alpha along the first axis.
func (g *Geometry) Xpush(alpha float64) Matrix { return g.Cpush(0, alpha) }

// Ypush translates by alpha along the second axis.
func (g *Geometry) Ypush(alpha float64) Matrix { return g.Cpush(1, alpha) }

// Zpush translates by alpha along the third axis.
func (g *Geometry) Zpush(alpha float64) Matrix { return g.Cpush(2, alpha) }

// Cmirror negates coordinate c.
func Cmirror(c int) Matrix {
	T := matrix.Id
	T[c][c] = -1
	return T
}

// Eupush is the "Euclidean-style" translation to h. Non-isotropic
// geometries use their group translation; hyperbolic geometry uses the
// horocyclic (parabolic) translation. co < 0 requests the inverse.
func (g *Geometry) Eupush(h Point, co float64) Matrix {
	switch {
	case g.Nonisotropic():
		if co < 0 {
			return g.m.itranslate(h)
		}
		return g.m.translate(h)
	case g.class == ClassHyperbolic:
		T := g.Parabolic13At(g.Deparabolic13(h))
		if co < 0 {
			return g.Inverse(T)
		}
		return T
	}
	T := matrix.Id
	l := g.LDim()
	for i := 0; i < g.gdim; i++ {
		T[i][l] = h[i] * co
	}
	return T
}

// EuclideanTranslate is the affine translation by (x, y, z).
func (g *Geometry) EuclideanTranslate(x, y, z float64) Matrix {
	T := matrix.Id
	l := g.LDim()
	T[0][l], T[1][l] = x, y
	if l > 2 {
		T[2][l] = z
	}
	return T
}

// Euscale scales the first two axes.
func Euscale(x, y float64) Matrix { return matrix.Diag(x, y, 1, 1) }

// Euscale3 scales the first three axes.
func Euscale3(x, y, z float64) Matrix { return matrix.Diag(x, y, z, 1) }

// Euscalezoom is the complex multiplication by h[0] + i·h[1] in the xy plane.
func Euscalezoom(h Point) Matrix {
	T := matrix.Id
	T[0][0], T[0][1] = h[0], -h[1]
	T[1][0], T[1][1] = h[1], h[0]
	return T
}

// Euaffine is the shear/stretch used by affine Euclidean models.
func Euaffine(h Point) Matrix {
	T := matrix.Id
	T[0][1] = h[0]
	T[1][1] = math.Exp(h[1])
	return T
}

// Matrix3 lays out a 3×3 matrix in the model's homogeneous coordinates:
// directly in a 2D model, with the third axis skipped in a 3D one.
func (g *Geometry) Matrix3(a, b, c, d, e, f, gg, h, i float64) Matrix {
	if g.gdim == 2 || g.mdim == 3 {
		return Matrix{{a, b, c, 0}, {d, e, f, 0}, {gg, h, i, 0}, {0, 0, 0, 1}}
	}
	return Matrix{{a, b, 0, c}, {d, e, 0, f}, {0, 0, 1, 0}, {gg, h, 0, i}}
}

// Matrix4 builds a 4×4 matrix from its rows.
func Matrix4(a, b, c, d, e, f, g, h, i, j, k, l, m, n, o, p float64) Matrix {
	return Matrix{{a, b, c, d}, {e, f, g, h}, {i, j, k, l}, {m, n, o, p}}
}

// Spintox returns the rotation that takes h to the positive first axis.
func (g *Geometry) Spintox(h Point) Matrix {
	if g.gdim == 2 || g.IsProduct() {
		return matrix.Spintoc(h, 0, 1)
	}
	t1 := matrix.Spintoc(h, 0, 1)
	return matrix.Spintoc(t1.Apply(h), 0, 2).Mul(t1)
}

// Rspintox is the inverse of Spintox.
func (g *Geometry) Rspintox(h Point) Matrix {
	if g.gdim == 2 || g.IsProduct() {
		return matrix.Rspintoc(h, 0, 1)
	}
	t1 := matrix.Spintoc(h, 0, 1)
	return matrix.Rspintoc(h, 0, 1).Mul(matrix.Rspintoc(t1.Apply(h), 0, 2))
}

// Pushxto0 takes h, lying on the first axis, to the origin.
func (g *Geometry) Pushxto0(h Point) Matrix {
	T := matrix.Id
	l := g.LDim()
	T[0][0] = h[l]
	T[0][l] = -h[0]
	T[l][0] = g.Curvature() * h[0]
	T[l][l] = h[l]
	return T
}

// Rpushxto0 is the inverse of Pushxto0.
func (g *Geometry) Rpushxto0(h Point) Matrix {
	T := matrix.Id
	l := g.LDim()
	T[0][0] = h[l]
	T[0][l] = h[0]
	T[l][0] = -g.Curvature() * h[0]
	T[l][l] = h[l]
	return T
}

// Ggpushxto0 is the translation taking the origin to h (co = 1) or h to
// the origin (co = -1).
func (g *Geometry) Ggpushxto0(h Point, co float64) Matrix { return g.m.ggpushxto0(h, co) }

// Gpushxto0 takes h to the origin.
func (g *Geometry) Gpushxto0(h Point) Matrix { return g.Ggpushxto0(h, -1) }

// Rgpushxto0 takes the origin to h.
func (g *Geometry) Rgpushxto0(h Point) Matrix { return g.Ggpushxto0(h, 1) }

// Rgpushxto0Shift is Rgpushxto0 carrying the shift of p.
func (g *Geometry) Rgpushxto0Shift(p ShiftPoint) ShiftMatrix {
	return ShiftMatrix{T: g.Rgpushxto0(p.H), Shift: p.Shift}
}

// ScaleMatrix multiplies the homogeneous columns of T by x. In a product
// geometry this moves by log(x) along the R factor.
func (g *Geometry) ScaleMatrix(T Matrix, x float64) Matrix { return T.ScaleColumns(g.mdim, x) }

// ScaleMatrixShift is ScaleMatrix keeping the shift.
func (g *Geometry) ScaleMatrixShift(S ShiftMatrix, x float64) ShiftMatrix {
	return ShiftMatrix{T: g.ScaleMatrix(S.T, x), Shift: S.Shift}
}

// ScalePoint multiplies the homogeneous coordinates of h by x.
func (g *Geometry) ScalePoint(h Point, x float64) Point {
	for i := 0; i < g.mdim; i++ {
		h[i] *= x
	}
	return h
}

// Xyscale scales the visible columns of T by fac.
func (g *Geometry) Xyscale(T Matrix, fac float64) Matrix { return T.ScaleColumns(g.gdim, fac) }

// Xyzscale scales the visible columns by fac and the last homogeneous
// column by facz.
func (g *Geometry) Xyzscale(T Matrix, fac, facz float64) Matrix {
	T = T.ScaleColumns(g.gdim, fac)
	l := g.LDim()
	for i := range T {
		T[i][l] *= facz
	}
	return T
}

// OrthogonalMove moves h orthogonally to the base plane by z units. In 2D
// models z is a scale factor applied to the homogeneous coordinates.
func (g *Geometry) OrthogonalMove(h Point, z float64) Point {
	switch {
	case g.embed == EmbedEucInHyp:
		hf := g.Deparabolic13(h)
		hf[2] += z
		return g.Parabolic13Point(hf)
	case g.gdim == 2:
		return g.ScalePoint(h, z)
	case g.IsProduct():
		return g.ScalePoint(h, math.Exp(z))
	case g.Nonisotropic():
		return g.m.translate(h).Apply(g.Cpush0(2, z))
	case g.class != ClassHyperbolic:
		return g.Rgpushxto0(h).Apply(g.Cpush0(2, z))
	}
	u := 1.0
	if h[2] != 0 {
		a := g.AsinAuto(h[2])
		z += a
		u /= g.CosAuto(a)
	}
	u *= g.CosAuto(z)
	return g.Hpxy3(h[0]*u, h[1]*u, math.Sinh(z))
}

// OrthogonalMoveMatrix moves the frame T orthogonally to the base plane
// by level.
func (g *Geometry) OrthogonalMoveMatrix(T Matrix, level float64) Matrix {
	switch {
	case g.IsProduct():
		return g.ScaleMatrix(T, math.Exp(level))
	case g.gdim == 3:
		return T.Mul(g.Zpush(level))
	}
	return g.ScaleMatrix(T, level)
}

// Translate is the isometry taking the origin to h: the group translation
// in non-isotropic geometries, Rgpushxto0 elsewhere.
func (g *Geometry) Translate(h Point) Matrix { return g.m.translate(h) }

// ITranslate is the inverse of Translate.
func (g *Geometry) ITranslate(h Point) Matrix { return g.m.itranslate(h) }

// LieExp is the one-parameter subgroup generated by the tangent vector v,
// evaluated at time 1. Only non-isotropic geometries have a Lie algebra;
// elsewhere it coincides with Rgpushxto0(DirectExp(v)).
func (g *Geometry) LieExp(v Point) Matrix {
	if lm, ok := g.lie(); ok {
		return matrix.Exp(lm.la.element(v))
	}
	return g.Rgpushxto0(g.DirectExp(v))
}

func (g *Geometry) lie() (lieModel, bool) {
	switch m := g.m.(type) {
	case nilModel:
		return m.lieModel, true
	case solModel:
		return m.lieModel, true
	case sl2Model:
		return m.lieModel, true
	}
	return lieModel{}, false
}
