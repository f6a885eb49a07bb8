// Package hypertile is a curvature-aware geometry kernel together with a
// lazily generated tessellation graph: the substrate for worlds that live
// on the hyperbolic plane, the sphere, the Euclidean plane and the eight
// Thurston-style 3D spaces.
//
// 🚀 What is in the box?
//
//	• One Point/Matrix algebra for every geometry, homogeneous coordinates
//	• Isometries, distances and exponential maps per curvature class
//	• Nil, Sol and SL(2,R) with geodesic and Lie-group movement
//	• Product spaces (H²×R, S²×R, E²×R) and embedded planes
//	• An infinite graph of heptagons and cells, generated on first step
//	• Walkers that keep orientation across mirrored edges
//	• Breadth-first listings that grow the world as they go
//	• Perlin or OpenSimplex landscapes painted on every new heptagon
//
// Under the hood, everything is organized into flat subpackages:
//
//	matrix/   — points, matrices, shift-augmented algebra, inverses
//	geom/     — geometry descriptors and the curvature-dispatched kernel
//	core/     — connection tables, Heptagon, Cell, World, Walker, Movei
//	bfs/      — Lister and bounded breadth-first Collect
//	dijkstra/ — terrain-weighted cheapest paths over the lazy graph
//	builder/  — regular {p,q} tilings placed by the geometry
//	config/   — YAML or TOML session configuration
//	metrics/  — Prometheus collectors over world counters
//
// Quick ASCII picture of a {7,3} origin and its first ring:
//
//	      ◯ ◯
//	    ◯  ⬡  ◯      7 neighbours, 3 heptagons at every vertex,
//	     ◯ ◯ ◯       21 at distance 2, 56 at distance 3, …
//
// Run the explorer for a tour:
//
//	go run ./examples/explore -radius 4
package hypertile
