// SPDX-License-Identifier: MIT

package core

import "fmt"

// FullEdge is the largest supported degree. Spins share a byte with the
// mirror bit, so a degree must fit in seven bits.
const FullEdge = 120

const mirrorBit = 128

// Node is implemented by *Heptagon and *Cell: the node kinds that carry a
// ConnectionTable and can be generated lazily.
type Node[N comparable] interface {
	comparable
	Degree() int
	Move(d int) N
	Spin(d int) int
	Mirror(d int) bool
	Fix(d int) int
	CMove(d int) N
	Serial() uint64

	table() *ConnectionTable[N]
	reverseDirections(d int) []int
	randIntn(n int) int
}

type link[N comparable] struct {
	to   N
	spin uint8 // spin | mirrorBit
}

// ConnectionTable is the adjacency of one node: exactly Degree() links in
// a single allocation.
type ConnectionTable[N comparable] struct {
	links []link[N]
}

func newTable[N comparable](degree int) ConnectionTable[N] {
	return ConnectionTable[N]{links: make([]link[N], degree)}
}

// Gmod is i mod j in [0, j).
func Gmod(i, j int) int {
	i %= j
	if i < 0 {
		i += j
	}
	return i
}

// Degree is the number of edges.
func (t *ConnectionTable[N]) Degree() int { return len(t.links) }

// Move is the neighbour across edge d, or the zero value when it has not
// been generated yet.
func (t *ConnectionTable[N]) Move(d int) N { return t.links[d].to }

// ModMove is Move(Fix(d)).
func (t *ConnectionTable[N]) ModMove(d int) N { return t.links[t.Fix(d)].to }

// Spin is the index of edge d at the neighbour.
func (t *ConnectionTable[N]) Spin(d int) int { return int(t.links[d].spin &^ mirrorBit) }

// ModSpin is Spin(Fix(d)).
func (t *ConnectionTable[N]) ModSpin(d int) int { return t.Spin(t.Fix(d)) }

// Mirror reports whether crossing edge d flips orientation.
func (t *ConnectionTable[N]) Mirror(d int) bool { return t.links[d].spin&mirrorBit != 0 }

// Fix reduces an edge number to [0, Degree()).
func (t *ConnectionTable[N]) Fix(d int) int { return Gmod(d, len(t.links)) }

// Connected reports whether edge d has a neighbour.
func (t *ConnectionTable[N]) Connected(d int) bool {
	var zero N
	return t.links[d].to != zero
}

// Unconnected counts the null slots.
func (t *ConnectionTable[N]) Unconnected() int {
	n := 0
	for d := range t.links {
		if !t.Connected(d) {
			n++
		}
	}
	return n
}

func (t *ConnectionTable[N]) setspin(d, spin int, mirror bool) {
	s := uint8(spin)
	if mirror {
		s |= mirrorBit
	}
	t.links[d].spin = s
}

// Connect joins edge d0 of a with edge d1 of b, possibly mirrored, filling
// both tables. It is the only operation that changes the topology.
//
// Both sides are checked before anything is written, so a panic leaves the
// graph untouched: a nil node panics with ErrNilNode, an edge index out of
// range with ErrEdge, and a slot already joined elsewhere with ErrEdgeTaken.
// Repeating an existing join is a no-op. Edges are never rewired.
func Connect[N Node[N]](a N, d0 int, b N, d1 int, mirror bool) {
	var zero N
	if a == zero || b == zero {
		panic(fmt.Errorf("%w: Connect", ErrNilNode))
	}
	ta, tb := a.table(), b.table()
	if d0 < 0 || d0 >= len(ta.links) || d1 < 0 || d1 >= len(tb.links) {
		panic(fmt.Errorf("%w: Connect edge %d (degree %d) to edge %d (degree %d)",
			ErrEdge, d0, len(ta.links), d1, len(tb.links)))
	}
	if !ta.joinable(d0, b, d1, mirror) {
		panic(fmt.Errorf("%w: edge %d of node %d", ErrEdgeTaken, d0, a.Serial()))
	}
	if !tb.joinable(d1, a, d0, mirror) {
		panic(fmt.Errorf("%w: edge %d of node %d", ErrEdgeTaken, d1, b.Serial()))
	}
	ta.links[d0].to = b
	tb.links[d1].to = a
	ta.setspin(d0, d1, mirror)
	tb.setspin(d1, d0, mirror)
}

// joinable reports whether slot d is free or already holds exactly the
// link to edge spin of to.
func (t *ConnectionTable[N]) joinable(d int, to N, spin int, mirror bool) bool {
	var zero N
	cur := t.links[d].to
	if cur == zero {
		return true
	}
	return cur == to && t.Spin(d) == spin && t.Mirror(d) == mirror
}

// ConnectWalker connects edge d0 of a to the edge w faces, mirrored when w is.
func ConnectWalker[N Node[N]](a N, d0 int, w Walker[N]) {
	Connect(a, d0, w.At, w.Spin, w.Mirrored)
}

// Reciprocal reports whether edge d of n satisfies the back-reference
// invariant. Null slots are trivially reciprocal.
func Reciprocal[N Node[N]](n N, d int) bool {
	var zero N
	m := n.Move(d)
	if m == zero {
		return true
	}
	s := n.Spin(d)
	return s < m.Degree() && m.Move(s) == n && m.Spin(s) == d && m.Mirror(s) == n.Mirror(d)
}

func requireReciprocal[N Node[N]](hook string, from N, d int, got N) {
	var zero N
	if got == zero {
		panic(fmt.Errorf("%w: %s returned nil for edge %d", ErrHookContract, hook, d))
	}
	if from.Move(d) != got || !Reciprocal(from, d) {
		panic(fmt.Errorf("%w: %s left edge %d of node %d one-sided", ErrHookContract, hook, d, from.Serial()))
	}
}
