// Package matrix is the homogeneous-coordinate algebra underneath every
// geometry model of hypertile.
//
// The package provides:
//
//   - Point: a homogeneous point or tangent vector with up to MaxDim
//     coordinates. Two-dimensional geometries use the first three,
//     three-dimensional ones all four.
//   - Matrix: a MaxDim×MaxDim transformation acting on Point by
//     left-multiplication; composition is Matrix.Mul.
//   - ShiftPoint / ShiftMatrix: the same values augmented with a scalar
//     shift (a fibre coordinate used by universal-cover geometries); shifts
//     add under composition.
//   - Dimension-explicit determinants and inverses (Det2, Det3, Det,
//     Inverse3, Inverse) with the "warn and return identity" contract for
//     singular inputs, plus TryInverse for callers that want ErrSingular.
//   - Curvature-agnostic rotation builders (Cspin, Lorentz, Spintoc).
//
// Everything here is geometry-agnostic: which coordinates are meaningful,
// what the quadratic form looks like and how distances are measured is
// decided by package geom.
//
// All types are plain values (fixed-size arrays); operations never allocate
// and never mutate their receivers.
package matrix
