// Package core is the tessellation graph: lazily generated adjacency of
// polygonal nodes with orientation-aware traversal.
//
// Two node kinds share one adjacency implementation:
//
//   - *Heptagon: a node of the underlying regular tiling (the generation
//     scaffold; its generator fields are opaque to this package).
//   - *Cell: a playable tile, owned by a Heptagon (Master).
//
// Both embed a ConnectionTable sized exactly to the node's degree. For each
// edge d it records the neighbour, the index of the same edge at the
// neighbour ("spin") and a mirror flag for non-orientable surfaces.
//
// Structural invariant:
//
//	n.Move(d) == m && n.Spin(d) == s  ⇒  m.Move(s) == n && m.Spin(s) == d
//	                                     && m.Mirror(s) == n.Mirror(d)
//
// Connect is the only topology mutator and establishes both directions in
// one call. Nodes are allocated by a World (NewHeptagon, NewCell). Unknown
// territory is generated on demand: CMove on a null slot calls the World's
// Hooks (CreateStep for heptagons, CreateMov for cells) and panics with
// ErrHookContract if the hook returns without establishing the invariant.
//
// Walker is an oriented cursor (node, edge, mirrored). Step crosses the
// facing edge and turns back toward the node just left; Rev faces one of
// the reverse directions, choosing at random among several.
//
// Movei describes a single move between cells, including the special
// non-adjacent directions (StrongWind, Fall, Teleport, ...).
//
// Concurrency: graph mutation is single-threaded. The World's counters are
// atomic so that metrics may be scraped from another goroutine.
package core
