package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for listings.
var (
	// ErrNilOrigin is returned when the origin node is nil.
	ErrNilOrigin = errors.New("bfs: origin is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied
	// or when no bound is given.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures Collect.
// If an Option is invalid (e.g. negative distance), it is recorded
// internally and surfaced as ErrOptionViolation when Collect runs.
type Option func(*Options)

// Options holds the bounds and callbacks of a listing.
type Options struct {
	// Ctx allows cancellation.
	Ctx context.Context

	// MaxDist, if > 0, is the largest distance listed.
	MaxDist int

	// MaxCount, if > 0, stops after the layer that reaches this count.
	MaxCount int

	// BreakOn, if non-nil, is the node whose discovery ends the listing.
	BreakOn any

	// OnAdd is called for every node added, with its serial and distance.
	OnAdd func(serial uint64, dist int)

	// OnExpand is called before the neighbours of a node are listed; an
	// error aborts the listing.
	OnExpand func(serial uint64, dist int) error

	err error
}

// DefaultOptions returns Options with no bounds and no-op callbacks.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnAdd:    func(uint64, int) {},
		OnExpand: func(uint64, int) error { return nil },
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDist bounds the distance; d must be positive.
func WithMaxDist(d int) Option {
	return func(o *Options) {
		if d <= 0 {
			o.err = fmt.Errorf("%w: MaxDist must be positive (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDist = d
	}
}

// WithMaxCount bounds the number of listed nodes (rounded up to a whole
// layer); n must be positive.
func WithMaxCount(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxCount must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxCount = n
	}
}

// WithBreakOn stops the listing as soon as target is discovered.
func WithBreakOn(target any) Option {
	return func(o *Options) { o.BreakOn = target }
}

// WithOnAdd registers a callback run for every node added.
func WithOnAdd(fn func(serial uint64, dist int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAdd = fn
		}
	}
}

// WithOnExpand registers a callback run before a node's neighbours are
// listed; returning an error stops the listing.
func WithOnExpand(fn func(serial uint64, dist int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}
