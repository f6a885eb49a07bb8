// SPDX-License-Identifier: MIT

package matrix

import "math"

// Point2 returns the tangent-style point (x, y, 0, 0).
func Point2(x, y float64) Point { return Point{x, y, 0, 0} }

// Point3 returns (x, y, z, 0).
func Point3(x, y, z float64) Point { return Point{x, y, z, 0} }

// Point30 returns (x, y, z, 0); identical to Point3, named for 3D tangents.
func Point30(x, y, z float64) Point { return Point{x, y, z, 0} }

// Point31 returns the 3D affine point (x, y, z, 1).
func Point31(x, y, z float64) Point { return Point{x, y, z, 1} }

// Add returns h+o coordinatewise.
func (h Point) Add(o Point) Point {
	for i := range h {
		h[i] += o[i]
	}
	return h
}

// Sub returns h-o coordinatewise.
func (h Point) Sub(o Point) Point {
	for i := range h {
		h[i] -= o[i]
	}
	return h
}

// Scale returns h·x.
func (h Point) Scale(x float64) Point {
	for i := range h {
		h[i] *= x
	}
	return h
}

// Div returns h/x.
func (h Point) Div(x float64) Point {
	for i := range h {
		h[i] /= x
	}
	return h
}

// Neg returns -h.
func (h Point) Neg() Point { return h.Scale(-1) }

// Mul returns the coordinatewise product of h and o.
func (h Point) Mul(o Point) Point {
	for i := range h {
		h[i] *= o[i]
	}
	return h
}

// Dot is the plain Euclidean inner product over all MaxDim coordinates.
func (h Point) Dot(o Point) float64 {
	var s float64
	for i := range h {
		s += h[i] * o[i]
	}
	return s
}

// DotD is the Euclidean inner product over the first d coordinates.
func (h Point) DotD(d int, o Point) float64 {
	var s float64
	for i := 0; i < d; i++ {
		s += h[i] * o[i]
	}
	return s
}

// SqhypotD is the squared Euclidean norm of the first d coordinates.
func (h Point) SqhypotD(d int) float64 { return h.DotD(d, h) }

// HypotD is the Euclidean norm of the first d coordinates.
func (h Point) HypotD(d int) float64 { return math.Sqrt(h.SqhypotD(d)) }

// ZeroD reports whether the first d coordinates are exactly zero.
func (h Point) ZeroD(d int) bool {
	for i := 0; i < d; i++ {
		if h[i] != 0 {
			return false
		}
	}
	return true
}

// Cross is the 3D cross product of the first three coordinates.
func (h Point) Cross(o Point) Point {
	return Point{
		h[1]*o[2] - h[2]*o[1],
		h[2]*o[0] - h[0]*o[2],
		h[0]*o[1] - h[1]*o[0],
		0,
	}
}

// Lerp interpolates linearly: t=0 gives h, t=1 gives o.
func (h Point) Lerp(o Point, t float64) Point {
	return h.Scale(1 - t).Add(o.Scale(t))
}

// IsFinite reports whether every coordinate is finite.
func (h Point) IsFinite() bool {
	for _, v := range h {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
