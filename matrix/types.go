// SPDX-License-Identifier: MIT

// Package matrix: value types of the homogeneous algebra.
// This file contains ONLY the type declarations and the shared constants;
// operations live in point.go, transform.go, rotation.go and shift.go.
package matrix

// MaxDim is the number of stored homogeneous coordinates. Geometries whose
// homogeneous dimension is smaller simply ignore the trailing coordinates.
const MaxDim = 4

// Point is a point in homogeneous coordinates or a tangent vector.
// Which of the MaxDim coordinates are meaningful is decided by the geometry.
type Point [MaxDim]float64

// Matrix is a MaxDim×MaxDim transformation, indexed [row][column].
// It acts on a Point by left-multiplication (see Matrix.Apply).
type Matrix [MaxDim][MaxDim]float64

// ShiftPoint is a Point together with an additive fibre coordinate.
type ShiftPoint struct {
	H     Point
	Shift float64
}

// ShiftMatrix is a Matrix together with an additive fibre coordinate.
type ShiftMatrix struct {
	T     Matrix
	Shift float64
}

// Canonical constants.
var (
	// Id is the identity transformation.
	Id = Diag(1, 1, 1, 1)

	// Zero is the all-zero matrix.
	Zero = Matrix{}

	// Mirror flips the y coordinate.
	Mirror = Diag(1, -1, 1, 1)

	// MirrorX flips the x coordinate.
	MirrorX = Diag(-1, 1, 1, 1)

	// MirrorZ flips the z coordinate.
	MirrorZ = Diag(1, 1, -1, 1)

	// PiSpin is the rotation by π in the xy plane.
	PiSpin = Diag(-1, -1, 1, 1)

	// CentralSym negates the three spatial coordinates.
	CentralSym = Diag(-1, -1, -1, 1)

	// C02 is the origin of a two-dimensional model (third coordinate 1).
	C02 = Point{0, 0, 1, 0}

	// C03 is the origin of a three-dimensional model (fourth coordinate 1).
	C03 = Point{0, 0, 0, 1}

	// Zpoint is the zero vector.
	Zpoint = Point{}
)
