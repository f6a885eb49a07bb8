package builder

// Method tokens used as error context.
const (
	MethodNewRegular = "NewRegular"
	MethodCreateStep = "CreateStep"
)

// MinPolygon is the smallest p and q of a regular tessellation.
const MinPolygon = 3

// DefaultEuclidRadius is the centre to edge distance used in the Euclidean
// plane, where the angles alone do not fix the size.
const DefaultEuclidRadius = 0.5

// bucketScale coarsens geom.Bucketer from its 1e-4 grid to a 1e-2 grid so
// that drift up to geom.DifferentPointDist stays within neighbouring
// buckets.
const bucketScale = 1e-2

// landscapeScale maps chart coordinates to noise coordinates.
const landscapeScale = 2.37

// Perlin parameters: smoothing, frequency and octaves.
const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = 3
)
