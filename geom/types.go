package geom

import "github.com/katalvlaran/hypertile/matrix"

// Short names for the algebra types; they are the same types as in matrix.
type (
	Point       = matrix.Point
	Matrix      = matrix.Matrix
	ShiftPoint  = matrix.ShiftPoint
	ShiftMatrix = matrix.ShiftMatrix
)

// Class is the curvature family of a geometry.
type Class uint8

const (
	ClassEuclid Class = iota
	ClassHyperbolic
	ClassSphere
	ClassProduct
	ClassNil
	ClassSol
	ClassSL2
)

var classNames = [...]string{"euclid", "hyperbolic", "sphere", "product", "nil", "sol", "sl2"}

func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return "class(?)"
}

// Nonisotropic reports whether the class has a direction-dependent metric.
func (c Class) Nonisotropic() bool {
	return c == ClassNil || c == ClassSol || c == ClassSL2
}

// Flag is a bit set of geometry properties.
type Flag uint8

const (
	// FlagAffine marks an affine (non-metric) Euclidean model: Fixmatrix
	// and the Euclidean isometry inverse are disabled.
	FlagAffine Flag = 1 << iota

	// FlagElliptic marks the elliptic quotient of the sphere: antipodal
	// points are identified.
	FlagElliptic
)

// Embedding describes how a 2D logical plane sits inside a 3D host geometry.
type Embedding uint8

const (
	// EmbedNone: the geometry is not an embedding host.
	EmbedNone Embedding = iota

	// EmbedSameInSame: the plane is a totally geodesic copy of the same
	// class (H2 in H3, S2 in S3, E2 in E3); coordinates 2 and 3 are swapped.
	EmbedSameInSame

	// EmbedEucInHyp: the Euclidean plane is a horosphere of H3.
	EmbedEucInHyp
)

func (e Embedding) String() string {
	switch e {
	case EmbedNone:
		return "none"
	case EmbedSameInSame:
		return "same-in-same"
	case EmbedEucInHyp:
		return "euc-in-hyp"
	}
	return "embedding(?)"
}

// Precision selects the effort spent by iterative inverse exponentials.
type Precision uint8

const (
	// PNormal is full precision.
	PNormal Precision = 0

	// PQuick lowers iteration counts (bisection and Newton steps).
	PQuick Precision = 1
)

func (p Precision) String() string {
	if p&PQuick != 0 {
		return "quick"
	}
	return "normal"
}
