// Package bfs lists the cells (or heptagons) near an origin of a lazily
// generated tessellation graph.
//
// What
//
//   - Lister: an add-only set with insertion order and O(1) membership.
//   - Collect: breadth-first listing bounded by distance (WithMaxDist),
//     by count (WithMaxCount) or by finding a target (WithBreakOn).
//     Every listed node records its discovery distance.
//
// Bounds
//
//	MaxDist d > 0 lists nodes at distance ≤ d. MaxCount n > 0 stops after
//	the first complete layer that brings the total to at least n, so the
//	listing always holds whole layers. At least one bound is required:
//	the graph is infinite. BreakOn stops immediately after the target is
//	discovered, possibly in the middle of a layer.
//
// Generation
//
//	Collect steps with CMove, so every neighbour of an expanded node is
//	generated if needed. Listing the ball of radius d therefore generates
//	the ball of radius d.
//
// Reentrancy
//
//	Each Lister keeps its own index, so listings may be nested or
//	interleaved freely and are independent of each other.
//
// Cancellation
//
//	WithContext is checked once per expanded node.
package bfs
