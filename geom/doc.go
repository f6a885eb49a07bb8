// Package geom implements curvature-aware geometry on top of the homogeneous
// algebra of package matrix.
//
// A *Geometry is an immutable descriptor: its class (Euclidean, hyperbolic,
// spherical, product, Nil, Sol, SL2), the number of homogeneous and visible
// dimensions, the signature of the quadratic form, flags, and for product
// spaces the factor geometry. Every operation of the construction library
// (Cpush, Spin, Rgpushxto0, Parabolic13, ...), the distance layer (Hdist,
// Hdist0), the exponential maps (DirectExp, InverseExp) and the numerical
// stabilizer (Fixmatrix) is a method on *Geometry and dispatches once through
// the class model.
//
// Geometries are explicit values; there is no hidden active geometry.
// Callers that want an ambient "current geometry" use Stack, whose Push
// returns a restore function and whose Within restores on every exit path.
//
// Numerical contracts:
//
//   - Clamped inverse trigonometry never returns NaN.
//   - Singular inverses warn through the matrix package logger and yield Id.
//   - SamePointMayWarn distinguishes "same", "different" and "cannot tell"
//     (a *PrecisionError wrapping ErrPrecision).
//   - An unknown ShiftMethod is a programming error and panics.
package geom
