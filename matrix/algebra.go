// SPDX-License-Identifier: MIT
// Package matrix: dimension-explicit determinants and inverses.
//
// Every kernel here takes the number n of meaningful coordinates explicitly;
// entries outside the leading n×n block are treated as identity. The
// non-Try inverses implement the "warn and return identity" contract: a
// singular input is logged, counted (SingularInversions) and answered with
// Id, so that rendering-style callers never have to branch on an error.

package matrix

import "math"

// Det2 is the determinant of the leading 2×2 block.
func Det2(T Matrix) float64 {
	return T[0][0]*T[1][1] - T[0][1]*T[1][0]
}

// Det3 is the determinant of the leading 3×3 block (cyclic expansion).
func Det3(T Matrix) float64 {
	var d float64
	for a := 0; a < 3; a++ {
		d += T[0][a] * T[1][(a+1)%3] * T[2][(a+2)%3]
	}
	for a := 0; a < 3; a++ {
		d -= T[0][a] * T[1][(a+2)%3] * T[2][(a+1)%3]
	}
	return d
}

// Det is the determinant of the leading n×n block.
//
// Implementation:
//   - Stage 1: Gaussian elimination with partial pivoting (largest |pivot|
//     per column); every row swap flips the sign.
//   - Stage 2: the product of the pivots is the determinant; a zero pivot
//     short-circuits to 0.
//
// Errors:
//   - ErrDimension when n is outside 1..MaxDim.
//
// Complexity:
//   - Time O(n^3), no allocation.
func Det(T Matrix, n int) (float64, error) {
	if err := validateDim(n); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	det := 1.0
	var a, b, c int
	for a = 0; a < n; a++ {
		best := a
		for b = a + 1; b < n; b++ {
			if math.Abs(T[b][a]) > math.Abs(T[best][a]) {
				best = b
			}
		}
		if best != a {
			T[a], T[best] = T[best], T[a]
			det = -det
		}
		p := T[a][a]
		if p == 0 {
			return 0, nil
		}
		det *= p
		for b = a + 1; b < n; b++ {
			co := -T[b][a] / p
			for c = a; c < n; c++ {
				T[b][c] += T[a][c] * co
			}
		}
	}
	return det, nil
}

// TryInverse3 inverts the leading 3×3 block through the adjugate.
// Returns ErrSingular when the determinant is exactly zero.
func TryInverse3(T Matrix) (Matrix, error) {
	d := Det3(T)
	if d == 0 {
		return Id, matrixErrorf(opInverse3, ErrSingular)
	}
	R := Id
	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			R[j][i] = (T[(i+1)%3][(j+1)%3]*T[(i+2)%3][(j+2)%3] -
				T[(i+1)%3][(j+2)%3]*T[(i+2)%3][(j+1)%3]) / d
		}
	}
	return R, nil
}

// Inverse3 is TryInverse3 that logs a warning and returns Id on a singular input.
func Inverse3(T Matrix) Matrix {
	R, err := TryInverse3(T)
	if err != nil {
		warnSingular(opInverse3, T)
		return Id
	}
	return R
}

// TryInverse inverts the leading n×n block.
//
// Implementation:
//   - Stage 1: forward elimination with partial pivoting, mirroring every
//     row operation on an identity accumulator.
//   - Stage 2: back substitution and row normalisation.
//
// Behavior highlights:
//   - Entries outside the n×n block of the result are those of Id.
//   - The input is a value and is never modified.
//
// Errors:
//   - ErrDimension when n is outside 1..MaxDim.
//   - ErrSingular when a zero pivot remains after pivoting.
//
// Complexity:
//   - Time O(n^3), no allocation.
func TryInverse(T Matrix, n int) (Matrix, error) {
	if err := validateDim(n); err != nil {
		return Id, matrixErrorf(opInverse, err)
	}
	A := T
	R := Id
	var a, b, c int
	for a = 0; a < n; a++ {
		best := a
		for b = a + 1; b < n; b++ {
			if math.Abs(A[b][a]) > math.Abs(A[best][a]) {
				best = b
			}
		}
		A[a], A[best] = A[best], A[a]
		R[a], R[best] = R[best], R[a]
		if A[a][a] == 0 {
			return Id, matrixErrorf(opInverse, ErrSingular)
		}
		for b = a + 1; b < n; b++ {
			co := -A[b][a] / A[a][a]
			for c = 0; c < n; c++ {
				A[b][c] += A[a][c] * co
				R[b][c] += R[a][c] * co
			}
		}
	}
	for a = n - 1; a >= 0; a-- {
		for b = 0; b < a; b++ {
			co := -A[b][a] / A[a][a]
			for c = 0; c < n; c++ {
				A[b][c] += A[a][c] * co
				R[b][c] += R[a][c] * co
			}
		}
		co := 1 / A[a][a]
		for c = 0; c < n; c++ {
			A[a][c] *= co
			R[a][c] *= co
		}
	}
	return R, nil
}

// Inverse is TryInverse that logs "inverting a singular matrix" and returns
// Id on a singular input. An invalid n is a programming error and panics.
func Inverse(T Matrix, n int) Matrix {
	R, err := TryInverse(T, n)
	switch {
	case err == nil:
		return R
	case validateDim(n) != nil:
		panic(err)
	default:
		warnSingular(opInverse, T)
		return Id
	}
}

// OrthoInverse inverts an orthogonal leading n×n block by transposition.
func OrthoInverse(T Matrix, n int) Matrix {
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			T[i][j], T[j][i] = T[j][i], T[i][j]
		}
	}
	return T
}

// PseudoOrthoInverse inverts a Lorentz-orthogonal matrix whose last
// meaningful coordinate (index n-1) is the timelike one: transpose, then
// negate the mixed space/time entries.
func PseudoOrthoInverse(T Matrix, n int) Matrix {
	T = OrthoInverse(T, n)
	l := n - 1
	for i := 0; i < l; i++ {
		T[i][l] = -T[i][l]
		T[l][i] = -T[l][i]
	}
	return T
}

// Exp is the matrix exponential, by scaling and squaring of a truncated
// Taylor series.
func Exp(A Matrix) Matrix {
	var norm float64
	for i := range A {
		var row float64
		for j := range A[i] {
			row += math.Abs(A[i][j])
		}
		norm = math.Max(norm, row)
	}
	s := 0
	if norm > 0.5 {
		s = int(math.Ceil(math.Log2(norm/0.5)))
	}
	B := A.Scale(math.Ldexp(1, -s))
	R := Id
	term := Id
	for k := 1; k <= 16; k++ {
		term = term.Mul(B).Scale(1 / float64(k))
		R = R.Add(term)
	}
	for ; s > 0; s-- {
		R = R.Mul(R)
	}
	return R
}
