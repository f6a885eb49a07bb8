package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned or raised by Dijkstra.
var (
	// ErrNilSource is returned when the source node is nil.
	ErrNilSource = errors.New("dijkstra: source node is nil")

	// ErrNilWeight is returned when no Weight function is supplied.
	ErrNilWeight = errors.New("dijkstra: weight function is nil")

	// ErrUnbounded is returned when MaxDistance is infinite.
	ErrUnbounded = errors.New("dijkstra: MaxDistance is required on an infinite graph")

	// ErrNegativeWeight is returned when an edge cost is negative or NaN.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance is raised by WithMaxDistance for negative or NaN values.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold is raised by WithInfEdgeThreshold for values ≤ 0.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Weight is the cost of crossing edge d of n. It may step (and so generate)
// the neighbour to inspect it.
type Weight[N any] func(n N, d int) float64

// Options configures a search.
type Options struct {
	MaxDistance      float64 // Nodes costlier than this are not reached
	InfEdgeThreshold float64 // Edges costing at least this are walls
	ReturnPath       bool    // Whether predecessors are kept
	Target           any     // Node whose settlement ends the search, if any
}

// Option mutates Options.
type Option func(*Options)

// WithMaxDistance bounds the cost of reached nodes. Panics on negative or
// NaN values.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold marks edges costing threshold or more as
// impassable. Panics on threshold ≤ 0.
func WithInfEdgeThreshold(threshold float64) Option {
	if !(threshold > 0) {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// WithReturnPath keeps predecessors for PathTo.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithTarget stops the search once target is settled. Implies
// WithReturnPath.
func WithTarget(target any) Option {
	return func(o *Options) {
		o.Target = target
		o.ReturnPath = true
	}
}

// DefaultOptions has no bound, no walls and no paths.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
