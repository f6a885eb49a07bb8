package core

// HState is the state of the tiling automaton at a heptagon.
type HState uint8

const (
	HSOrigin HState = iota
	HSA
	HSB
	HSError
	HSA0
	HSA1
	HSB0
	HSB1
	HSC
)

var hstateNames = [...]string{"origin", "A", "B", "error", "A0", "A1", "B0", "B1", "C"}

func (s HState) String() string {
	if int(s) < len(hstateNames) {
		return hstateNames[s]
	}
	return "hstate(?)"
}

// GlobalDistanceLimit bounds Heptagon.Distance; negative distances are
// valid (horocycle structures use them).
const GlobalDistanceLimit = 32000

// IterationLimit bounds iterative walks over possibly inconsistent data.
// It is larger than GlobalDistanceLimit.
const IterationLimit = 10000000

// CData is per-heptagon landscape data of external generators.
type CData struct {
	Val  [4]int
	Bits int
}

// Heptagon is a node of the underlying regular tiling. Besides the
// adjacency it carries automaton state and generator fields whose meaning
// belongs to pattern and landscape code outside this package.
type Heptagon struct {
	// State is the automaton state.
	State HState
	// DM4 is the distance modulo 4.
	DM4 uint8
	// Distance from the origin, counted in cells of the final tiling.
	Distance int

	EmeraldVal int16
	FiftyVal   int16
	ZebraVal   int16
	FieldVal   int32

	// Rval0 and Rval1 seed fractal landscapes.
	Rval0, Rval1 int16

	CData *CData
	// C7 is the central cell of this heptagon.
	C7 *Cell
	// Alt is the generator of an alternate structure.
	Alt *Heptagon

	world  *World
	serial uint64

	ConnectionTable[*Heptagon]
}

// Serial is the allocation number, unique within the world.
func (h *Heptagon) Serial() uint64 { return h.serial }

// World is the world that allocated h.
func (h *Heptagon) World() *World { return h.world }

// CMove is the neighbour across edge d, generated by the CreateStep hook
// if it does not exist yet.
func (h *Heptagon) CMove(d int) *Heptagon {
	if n := h.Move(d); n != nil {
		return n
	}
	return h.world.createStep(h, d)
}

// CModMove is CMove(Fix(d)).
func (h *Heptagon) CModMove(d int) *Heptagon { return h.CMove(h.Fix(d)) }

func (h *Heptagon) table() *ConnectionTable[*Heptagon] { return &h.ConnectionTable }

func (h *Heptagon) reverseDirections(d int) []int {
	if f := h.world.hooks.HeptReverse; f != nil {
		return f(h, d)
	}
	return defaultReverse(h.Degree(), d)
}

func (h *Heptagon) randIntn(n int) int { return h.world.randIntn(n) }

// defaultReverse: the edge opposite d, or the two nearest to opposite for
// odd degrees.
func defaultReverse(degree, d int) []int {
	if degree%2 == 0 {
		return []int{Gmod(d+degree/2, degree)}
	}
	return []int{Gmod(d+degree/2, degree), Gmod(d+degree/2+1, degree)}
}
