package geom

import "math"

// Fixmatrix removes the drift accumulated by repeated composition of
// isometries, replacing T by a nearby exact isometry.
//
// Implementation:
//   - Stage 1: non-isotropic and affine models return T unchanged; their
//     matrices need not be orthogonal in any signature.
//   - Stage 2: product models divide out the level of T·C0, fix the
//     remainder in the factor model and restore the level.
//   - Stage 3: Euclidean models re-orthonormalize the rotation block and
//     reset the last row; other models run Gram–Schmidt in the signature.
//
// Complexity: O(MDim³).
func (g *Geometry) Fixmatrix(T Matrix) Matrix { return g.m.fix(T) }

// FixmatrixEuclid orthonormalizes the rotation block of a Euclidean
// isometry and resets its last row to (0, …, 0, 1).
func (g *Geometry) FixmatrixEuclid(T Matrix) Matrix {
	n := g.gdim
	for x := 0; x < n; x++ {
		for y := 0; y <= x; y++ {
			var dp float64
			for z := 0; z < n; z++ {
				dp += T[z][x] * T[z][y]
			}
			if y == x {
				dp = 1 - math.Sqrt(1/dp)
			}
			for z := 0; z < n; z++ {
				T[z][x] -= dp * T[z][y]
			}
		}
	}
	l := g.LDim()
	for x := 0; x < n; x++ {
		T[l][x] = 0
	}
	T[l][l] = 1
	return T
}

// Orthonormalize runs a Gram–Schmidt sweep over the columns of T using the
// signature of g as the inner product.
func (g *Geometry) Orthonormalize(T Matrix) Matrix {
	for x := 0; x < g.mdim; x++ {
		for y := 0; y <= x; y++ {
			var dp float64
			for z := range T {
				dp += T[z][x] * T[z][y] * g.sig[z]
			}
			if y == x {
				dp = 1 - math.Sqrt(g.sig[x]/dp)
			}
			for z := range T {
				T[z][x] -= dp * T[z][y]
			}
		}
	}
	return T
}

var rotationSphere = build("sphere3", ClassSphere, 3, defaultOptions(), nil)

// FixRotation re-orthonormalizes a 3D rotation matrix.
func FixRotation(rot Matrix) Matrix {
	rot = rotationSphere.Orthonormalize(rot)
	for i := 0; i < 3; i++ {
		rot[i][3], rot[3][i] = 0, 0
	}
	rot[3][3] = 1
	return rot
}

// OrthoError is the squared Frobenius distance of the top-left 3×3 block
// of TᵀT from the identity.
func OrthoError(T Matrix) float64 {
	var err float64
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			var s float64
			for z := 0; z < 3; z++ {
				s += T[z][x] * T[z][y]
			}
			if x == y {
				s--
			}
			err += s * s
		}
	}
	return err
}
