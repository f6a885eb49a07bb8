// SPDX-License-Identifier: MIT

package matrix

import "math"

// Diag returns the diagonal matrix with the given entries.
func Diag(a, b, c, d float64) Matrix {
	var T Matrix
	T[0][0], T[1][1], T[2][2], T[3][3] = a, b, c, d
	return T
}

// FromColumns builds the matrix whose columns are h0..h3.
func FromColumns(h0, h1, h2, h3 Point) Matrix {
	var T Matrix
	for i := 0; i < MaxDim; i++ {
		T[i][0], T[i][1], T[i][2], T[i][3] = h0[i], h1[i], h2[i], h3[i]
	}
	return T
}

// Apply returns T·h.
func (T Matrix) Apply(h Point) Point {
	var r Point
	for i := 0; i < MaxDim; i++ {
		r[i] = T[i][0]*h[0] + T[i][1]*h[1] + T[i][2]*h[2] + T[i][3]*h[3]
	}
	return r
}

// Mul returns the composition T·U (U is applied first).
//
// Implementation:
//   - Stage 1: fixed i→j→k loop over the MaxDim×MaxDim block.
//
// Determinism:
//   - Fixed summation order; identical inputs give bit-identical outputs.
//
// Complexity:
//   - Time O(MaxDim^3) = 64 multiply-adds, no allocation.
func (T Matrix) Mul(U Matrix) Matrix {
	var R Matrix
	var i, j, k int
	for i = 0; i < MaxDim; i++ {
		for j = 0; j < MaxDim; j++ {
			var s float64
			for k = 0; k < MaxDim; k++ {
				s += T[i][k] * U[k][j]
			}
			R[i][j] = s
		}
	}
	return R
}

// Add returns T+U.
func (T Matrix) Add(U Matrix) Matrix {
	for i := range T {
		for j := range T[i] {
			T[i][j] += U[i][j]
		}
	}
	return T
}

// Sub returns T-U.
func (T Matrix) Sub(U Matrix) Matrix {
	for i := range T {
		for j := range T[i] {
			T[i][j] -= U[i][j]
		}
	}
	return T
}

// Scale multiplies every entry by x.
func (T Matrix) Scale(x float64) Matrix {
	for i := range T {
		for j := range T[i] {
			T[i][j] *= x
		}
	}
	return T
}

// Transpose returns Tᵀ.
func (T Matrix) Transpose() Matrix {
	var R Matrix
	for i := 0; i < MaxDim; i++ {
		for j := 0; j < MaxDim; j++ {
			R[j][i] = T[i][j]
		}
	}
	return R
}

// Column returns column j as a Point.
func (T Matrix) Column(j int) Point {
	return Point{T[0][j], T[1][j], T[2][j], T[3][j]}
}

// WithColumn returns a copy of T whose column j is h.
func (T Matrix) WithColumn(j int, h Point) Matrix {
	for i := 0; i < MaxDim; i++ {
		T[i][j] = h[i]
	}
	return T
}

// Row returns row i as a Point.
func (T Matrix) Row(i int) Point { return Point(T[i]) }

// ScaleColumns multiplies the first n columns by x. Used by geometries that
// keep a level as an overall scale factor.
func (T Matrix) ScaleColumns(n int, x float64) Matrix {
	for i := 0; i < MaxDim; i++ {
		for j := 0; j < n; j++ {
			T[i][j] *= x
		}
	}
	return T
}

// MaxAbsDiff is the largest |T[i][j]-U[i][j]|.
func (T Matrix) MaxAbsDiff(U Matrix) float64 {
	var m float64
	for i := range T {
		for j := range T[i] {
			if d := math.Abs(T[i][j] - U[i][j]); d > m {
				m = d
			}
		}
	}
	return m
}

// EqMatrix reports whether every entry of A and B differs by less than eps.
func EqMatrix(A, B Matrix, eps float64) bool {
	for i := range A {
		for j := range A[i] {
			if math.Abs(A[i][j]-B[i][j]) > eps {
				return false
			}
		}
	}
	return true
}

// DefaultEqEps is the tolerance used by callers of EqMatrix that have no
// better-informed choice.
const DefaultEqEps = 0.01
