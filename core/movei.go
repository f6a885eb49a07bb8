package core

import "fmt"

// Special directions of a Movei that are not edges of the source cell.
const (
	StrongWind = 199
	Fall       = 198
	NoSpace    = 197
	Teleport   = 196
	Jump       = 195
	Stay       = 194
)

// Movei describes a move from S to T in direction D. For proper moves
// S.Move(D) == T; other moves (jumps, falls, special directions) keep D
// for bookkeeping.
type Movei struct {
	S, T *Cell
	D    int
}

// NewMovei resolves the move from s in direction d: an edge index
// generates the neighbour, StrongWind asks the JumpDestination hook, and
// any other direction stays at s.
func NewMovei(s *Cell, d int) Movei {
	switch {
	case d == StrongWind:
		return Movei{S: s, T: s.world.jumpDestination(s), D: d}
	case !Proper(s, d):
		return Movei{S: s, T: s, D: d}
	}
	return Movei{S: s, T: s.CMove(d), D: d}
}

// MoveiOf is the move a walker would make by stepping.
func MoveiOf(cw CellWalker) Movei {
	return Movei{S: cw.At, T: cw.CPeek(), D: cw.Spin}
}

// MoveiMon is the move of the monster on c in the direction it faces.
func MoveiMon(c *Cell) Movei { return NewMovei(c, int(c.MonDir)) }

// Match finds the edge from f to t; D is -1 when they are not adjacent.
func Match(f, t *Cell) Movei {
	for i := 0; i < f.Degree(); i++ {
		if f.Move(i) == t {
			return Movei{S: f, T: t, D: i}
		}
	}
	return Movei{S: f, T: t, D: -1}
}

// Op reports whether the move changes cells.
func (m Movei) Op() bool { return m.S != m.T }

// Proper reports whether the move crosses an edge of the graph.
func (m Movei) Proper() bool { return Proper(m.S, m.D) && m.S.Move(m.D) == m.T }

// Rev is the reverse move.
func (m Movei) Rev() Movei { return Movei{S: m.T, T: m.S, D: m.RevDirOr(m.D)} }

// DirOr is D for a proper move, x otherwise.
func (m Movei) DirOr(x int) int {
	if m.Proper() {
		return m.D
	}
	return x
}

// RevDirOr is the direction back from T for a proper move, x otherwise.
func (m Movei) RevDirOr(x int) int {
	if m.Proper() {
		return m.S.Spin(m.D)
	}
	return x
}

// RevDirMirror is RevDirOr(D).
func (m Movei) RevDirMirror() int { return m.RevDirOr(m.D) }

// DirForce is D; it panics with ErrNotProper if the move is not proper.
func (m Movei) DirForce() int {
	m.mustBeProper("DirForce")
	return m.D
}

// RevDirForce is the direction back from T; it panics with ErrNotProper if
// the move is not proper.
func (m Movei) RevDirForce() int {
	m.mustBeProper("RevDirForce")
	return m.S.Spin(m.D)
}

// Mirror reports whether the move crosses a mirror edge.
func (m Movei) Mirror() bool { return Proper(m.S, m.D) && m.S.Mirror(m.D) }

func (m Movei) mustBeProper(op string) {
	if !m.Proper() {
		panic(fmt.Errorf("%w: %s on direction %d", ErrNotProper, op, m.D))
	}
}
