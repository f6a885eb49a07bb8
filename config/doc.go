// Package config loads the YAML (or TOML) description of a tessellation session:
// which geometry, which {p,q} tiling, how the world is seeded and how far
// an exploration reaches.
//
// Load resolves its path in order: the argument, the HYPERTILE_CONFIG
// environment variable, then the built-in defaults (the {7,3} hyperbolic
// tiling). Missing fields keep their defaults. A path ending in .toml is
// decoded as TOML with the same keys.
//
//	geometry:
//	  name: hyperbolic
//	tiling:
//	  p: 7
//	  q: 3
//	  landscape_seed: 42
//	world:
//	  seed: 1
//	explore:
//	  radius: 4
//	log:
//	  level: debug
package config
