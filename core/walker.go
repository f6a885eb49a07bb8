package core

import "fmt"

// Walker is an oriented cursor on the graph: the node it is at, the edge
// it faces and whether it is mirrored. Walkers are values; every method
// returns the moved walker and leaves the receiver unchanged. Two walkers
// are equal (==) when all three fields are.
type Walker[N Node[N]] struct {
	At       N
	Spin     int
	Mirrored bool
}

// HeptSpin walks the heptagon graph.
type HeptSpin = Walker[*Heptagon]

// CellWalker walks the cell graph.
type CellWalker = Walker[*Cell]

// NewWalker returns a walker at at facing edge spin (reduced modulo the
// degree).
func NewWalker[N Node[N]](at N, spin int, mirrored bool) Walker[N] {
	var zero N
	if at != zero {
		spin = at.Fix(spin)
	}
	return Walker[N]{At: at, Spin: spin, Mirrored: mirrored}
}

// Turn rotates the facing edge by i steps: counter-clockwise, or clockwise
// when mirrored.
func (w Walker[N]) Turn(i int) Walker[N] {
	if w.Mirrored {
		i = -i
	}
	w.Spin = w.At.Fix(w.Spin + i)
	return w
}

// Mirror flips the orientation.
func (w Walker[N]) Mirror() Walker[N] {
	w.Mirrored = !w.Mirrored
	return w
}

// Step crosses the facing edge, generating the neighbour if needed, and
// faces back toward the node just left. Crossing a mirror edge flips the
// orientation.
func (w Walker[N]) Step() Walker[N] {
	next := w.At.CMove(w.Spin)
	nspin := w.At.Spin(w.Spin)
	if w.At.Mirror(w.Spin) {
		w.Mirrored = !w.Mirrored
	}
	w.At, w.Spin = next, nspin
	return w
}

// Rev faces a direction reverse to the current one. When there are
// several, one is chosen uniformly at random from the world's source.
func (w Walker[N]) Rev() Walker[N] {
	rd := w.At.reverseDirections(w.Spin)
	switch len(rd) {
	case 0:
		return w
	case 1:
		w.Spin = rd[0]
	default:
		w.Spin = rd[w.At.randIntn(len(rd))]
	}
	return w
}

// RevStep is Rev followed by Step.
func (w Walker[N]) RevStep() Walker[N] { return w.Rev().Step() }

// Peek is the node faced, without generating it (zero if unknown).
func (w Walker[N]) Peek() N { return w.At.Move(w.Spin) }

// CPeek is the node faced, generating it if needed.
func (w Walker[N]) CPeek() N { return w.At.CMove(w.Spin) }

// Creates reports whether stepping forward would generate a node.
func (w Walker[N]) Creates() bool {
	var zero N
	return w.Peek() == zero
}

// ToSpin is how much to Turn to face edge dir.
func (w Walker[N]) ToSpin(dir int) int {
	s := Gmod(dir-w.Spin, w.At.Degree())
	if w.Mirrored {
		return -s
	}
	return s
}

// MirrorAt reflects the walker in edge d.
func (w Walker[N]) MirrorAt(d int) Walker[N] {
	return Walker[N]{At: w.At, Spin: w.At.Fix(2*d - w.Spin), Mirrored: !w.Mirrored}
}

// Less orders walkers by node serial, then spin, then orientation.
func (w Walker[N]) Less(o Walker[N]) bool {
	var zero N
	var a, b uint64
	if w.At != zero {
		a = w.At.Serial()
	}
	if o.At != zero {
		b = o.At.Serial()
	}
	switch {
	case a != b:
		return a < b
	case w.Spin != o.Spin:
		return w.Spin < o.Spin
	}
	return !w.Mirrored && o.Mirrored
}

func (w Walker[N]) String() string {
	var zero N
	if w.At == zero {
		return "walker(nil)"
	}
	m := ""
	if w.Mirrored {
		m = "*"
	}
	return fmt.Sprintf("walker(%d:%d%s)", w.At.Serial(), w.Spin, m)
}

// HeptSpinOf is the heptagon walker corresponding to a cell walker:
// the cell's master, with the spin multiplied by dualMul (1 for pure
// tilings, 2 for bitruncated ones).
func HeptSpinOf(cw CellWalker, dualMul int) HeptSpin {
	return HeptSpin{At: cw.At.Master, Spin: cw.Spin * dualMul, Mirrored: cw.Mirrored}
}

// CellWalkerOf is the inverse of HeptSpinOf: the central cell of the
// heptagon with the spin divided by dualMul.
func CellWalkerOf(hs HeptSpin, dualMul int) CellWalker {
	return CellWalker{At: hs.At.C7, Spin: hs.Spin / dualMul, Mirrored: hs.Mirrored}
}
