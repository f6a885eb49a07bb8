// SPDX-License-Identifier: MIT
// Package: hypertile/builder
//
// options.go — functional options for NewRegular.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//   • NewRegular itself returns errors, never panics.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hypertile/core"
)

// Option customizes NewRegular by mutating a config before the origin is
// created.
type Option func(*config)

type config struct {
	worldOpts    []core.WorldOption
	landscape    Landscape
	seed         int64
	euclidRadius float64
}

func defaultConfig() config {
	return config{euclidRadius: DefaultEuclidRadius}
}

// WithWorldOptions forwards options (logger, seed, id) to core.NewWorld.
func WithWorldOptions(opts ...core.WorldOption) Option {
	return func(c *config) { c.worldOpts = append(c.worldOpts, opts...) }
}

// Landscape selects the noise behind WithLandscape.
type Landscape uint8

const (
	LandscapeNone Landscape = iota
	LandscapePerlin
	LandscapeSimplex
)

// WithLandscape fills Heptagon.Rval0/Rval1 and Cell.LandParam of every
// generated heptagon from Perlin noise with the given seed. The values are
// a function of the position only, so they do not depend on the order of
// generation.
func WithLandscape(seed int64) Option {
	return WithLandscapeNoise(LandscapePerlin, seed)
}

// WithLandscapeNoise is WithLandscape with an explicit noise kind;
// LandscapeNone disables the landscape. Panics on an unknown kind.
func WithLandscapeNoise(kind Landscape, seed int64) Option {
	if kind > LandscapeSimplex {
		panic(fmt.Errorf("%w: WithLandscapeNoise(%d)", ErrOptionViolation, kind))
	}
	return func(c *config) {
		c.landscape = kind
		c.seed = seed
	}
}

// WithEuclidRadius sets the centre to edge distance of Euclidean tilings.
// Panics on r ≤ 0.
func WithEuclidRadius(r float64) Option {
	if !(r > 0) {
		panic(fmt.Errorf("%w: WithEuclidRadius(%v)", ErrOptionViolation, r))
	}
	return func(c *config) { c.euclidRadius = r }
}
