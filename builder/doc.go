// Package builder generates regular {p,q} tessellations of the plane,
// the sphere or the hyperbolic plane as lazily grown core worlds.
//
// A tessellation heptagon is a regular p-gon; q of them meet at every
// vertex. Neighbours are placed geometrically: the heptagon across edge d
// of a heptagon with frame T has the frame
//
//	T · Spin(d·2π/p) · Xpush(2r) · Spin(π)
//
// where r is the distance from a centre to an edge midpoint. A position
// that was already generated is recognised by a bucketed lookup confirmed
// with Geometry.SamePointMayWarn, so walking around a vertex closes up
// instead of producing duplicates.
//
// Every heptagon carries one cell of the same degree (the pure
// variation): Heptagon.C7 and Cell.Master link the two graphs and the cell
// graph mirrors the heptagon graph edge for edge.
//
// Complexity: generating a heptagon costs O(1) matrix products plus a
// lookup over 27 buckets. Memory is O(V) for V generated heptagons.
package builder
