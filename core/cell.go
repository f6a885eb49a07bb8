package core

// Sentinel values of Cell.BarDir.
const (
	NoDir      = 126
	NoBarriers = 127
)

// Cell is a playable tile. The game tags (land, wall, monster, item, ...)
// are opaque bytes owned by game logic; this package only stores them.
type Cell struct {
	Land, Wall, Monster, Item uint8
	BarLeft, BarRight         uint8

	// MPDist is the minimum player distance; smaller is more generated.
	MPDist   int8
	PathDist int8
	CPDist   int8

	MonDir    uint8
	BarDir    uint8
	StunTime  uint8
	HitPoints uint8
	MonMirror bool
	LigOn     bool
	LandFlags uint8
	LandParam int32
	WParam    int8

	// Master is the heptagon owning this cell.
	Master *Heptagon

	world  *World
	serial uint64

	ConnectionTable[*Cell]
}

// Serial is the allocation number, unique within the world.
func (c *Cell) Serial() uint64 { return c.serial }

// World is the world that allocated c.
func (c *Cell) World() *World { return c.world }

// CMove is the neighbour across edge d, generated by the CreateMov hook
// if it does not exist yet.
func (c *Cell) CMove(d int) *Cell {
	if n := c.Move(d); n != nil {
		return n
	}
	return c.world.createMov(c, d)
}

// CModMove is CMove(Fix(d)).
func (c *Cell) CModMove(d int) *Cell { return c.CMove(c.Fix(d)) }

// Proper reports whether d is an edge index of c.
func Proper(c *Cell, d int) bool { return d >= 0 && d < c.Degree() }

func (c *Cell) table() *ConnectionTable[*Cell] { return &c.ConnectionTable }

func (c *Cell) reverseDirections(d int) []int {
	if f := c.world.hooks.CellReverse; f != nil {
		return f(c, d)
	}
	return defaultReverse(c.Degree(), d)
}

func (c *Cell) randIntn(n int) int { return c.world.randIntn(n) }
