// SPDX-License-Identifier: MIT

package matrix

import "math"

// spinEps is the norm below which Spintoc/Rspintoc return the identity.
const spinEps = 1e-15

// Cspin rotates by alpha in the coordinate plane (a, b):
// T[a][a]=T[b][b]=cos α, T[a][b]=sin α, T[b][a]=-sin α.
func Cspin(a, b int, alpha float64) Matrix {
	T := Id
	s, c := math.Sincos(alpha)
	T[a][a] = c
	T[a][b] = s
	T[b][a] = -s
	T[b][b] = c
	return T
}

// Cspin90 is Cspin(a, b, π/2) with exact entries.
func Cspin90(a, b int) Matrix {
	T := Id
	T[a][a], T[a][b] = 0, 1
	T[b][a], T[b][b] = -1, 0
	return T
}

// Cspin180 is Cspin(a, b, π) with exact entries.
func Cspin180(a, b int) Matrix {
	T := Id
	T[a][a], T[b][b] = -1, -1
	return T
}

// Lorentz is the hyperbolic rotation (boost) by v in the plane (a, b):
// cosh v on the diagonal, sinh v off it.
func Lorentz(a, b int, v float64) Matrix {
	T := Id
	T[a][a] = math.Cosh(v)
	T[a][b] = math.Sinh(v)
	T[b][a] = math.Sinh(v)
	T[b][b] = math.Cosh(v)
	return T
}

// Spintoc returns the rotation in the (t, f) plane that maps h onto the
// t axis, i.e. zeroes coordinate f of T·h while keeping it non-negative in t.
// When h has no (t, f) component the identity is returned.
func Spintoc(h Point, t, f int) Matrix {
	T := Id
	R := math.Hypot(h[f], h[t])
	if R >= spinEps {
		T[t][t] = h[t] / R
		T[t][f] = h[f] / R
		T[f][t] = -h[f] / R
		T[f][f] = h[t] / R
	}
	return T
}

// Rspintoc is the inverse of Spintoc(h, t, f).
func Rspintoc(h Point, t, f int) Matrix {
	T := Id
	R := math.Hypot(h[f], h[t])
	if R >= spinEps {
		T[t][t] = h[t] / R
		T[f][t] = h[f] / R
		T[t][f] = -h[f] / R
		T[f][f] = h[t] / R
	}
	return T
}

// SwapCoords returns the permutation matrix exchanging coordinates a and b.
func SwapCoords(a, b int) Matrix {
	T := Id
	T[a][a], T[b][b] = 0, 0
	T[a][b], T[b][a] = 1, 1
	return T
}
