// Package dijkstra finds least-cost paths over a lazily generated
// tessellation graph with non-negative edge costs.
//
// Overview:
//
//   - Dijkstra expands nodes of a core graph (heptagons or cells) in order of
//     increasing cost from a source, using a min-heap.
//   - Costs come from a Weight function of (node, direction), so terrain,
//     geometric edge lengths or walls are all expressed by the caller.
//   - Neighbours are reached with CMove: the search generates the part of
//     the world it explores, and nothing beyond MaxDistance.
//
// Key features:
//
//   - MaxDistance bounds the search. It is mandatory: the graph is infinite.
//   - InfEdgeThreshold treats any edge with cost ≥ threshold as impassable.
//   - WithTarget stops as soon as the target's cost is final.
//   - WithReturnPath keeps predecessors so PathTo can rebuild paths.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V) for V settled nodes and E relaxed edges.
//   - Space: O(V + E) under the "lazy decrease-key" heap strategy.
//
// Error handling (sentinel errors):
//
//   - ErrNilSource: the source node is nil.
//   - ErrNilWeight: no Weight function was given.
//   - ErrUnbounded: MaxDistance was left infinite.
//   - ErrNegativeWeight: a Weight call returned a negative or NaN cost.
//   - ErrBadMaxDistance, ErrBadInfThreshold: raised (via panic) by the
//     option constructors.
package dijkstra
