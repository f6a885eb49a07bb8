package geom

import (
	"fmt"

	"github.com/katalvlaran/hypertile/matrix"
)

// Inverse inverts T in the model's homogeneous dimension: the closed form
// for 3×3 models, Gauss–Jordan with partial pivoting for 4×4 ones. A
// singular T logs a warning and yields the identity.
func (g *Geometry) Inverse(T Matrix) Matrix {
	if g.mdim == 3 {
		return matrix.Inverse3(T)
	}
	return matrix.Inverse(T, g.mdim)
}

// Det is the determinant of T in the model's homogeneous dimension.
func (g *Geometry) Det(T Matrix) float64 {
	if g.mdim == 3 {
		return matrix.Det3(T)
	}
	d, err := matrix.Det(T, g.mdim)
	if err != nil {
		// mdim is always a valid dimension
		panic(fmt.Errorf("geom: Det: %w", err))
	}
	return d
}

// IsoInverse inverts an isometry, using the structure of the model where
// possible: transposition on the sphere, Minkowski transposition in
// hyperbolic space, a closed form in Nil and Euclidean space.
func (g *Geometry) IsoInverse(T Matrix) Matrix { return g.m.isoInverse(T) }

// ZInverse inverts T = O·S with O an isometry and S a scaling.
func (g *Geometry) ZInverse(T Matrix) Matrix { return g.Inverse(T) }

// ViewInverse inverts T = O·P with O orthogonal and P an isometry.
func (g *Geometry) ViewInverse(T Matrix) Matrix {
	switch {
	case g.Nonisotropic():
		return g.Inverse(T)
	case g.IsProduct():
		return g.ZInverse(T)
	}
	return g.IsoInverse(T)
}
