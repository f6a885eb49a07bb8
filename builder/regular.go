package builder

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/hypertile/core"
	"github.com/katalvlaran/hypertile/geom"
	"github.com/katalvlaran/hypertile/matrix"
)

// Tiling is a regular {p,q} tessellation generated on demand. It owns the
// core.World whose hooks it installs, and remembers the frame of every
// generated heptagon.
//
// A Tiling is used by one goroutine at a time, like its world.
type Tiling struct {
	g     *geom.Geometry
	w     *core.World
	log   *slog.Logger
	p, q  int
	r     float64
	theta float64

	origin  *core.Heptagon
	pos     map[*core.Heptagon]geom.Matrix
	buckets map[uint32][]*core.Heptagon
	noise   field
}

// NewRegular returns the {p,q} tessellation of g with its origin heptagon
// (frame Id) and the origin's cell already allocated.
//
// Errors: ErrUnsupportedGeometry, ErrInvalidTiling.
func NewRegular(g *geom.Geometry, p, q int, opts ...Option) (*Tiling, error) {
	if err := validateGeometry(MethodNewRegular, g); err != nil {
		return nil, err
	}
	if err := validateTiling(MethodNewRegular, g, p, q); err != nil {
		return nil, err
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	t := &Tiling{
		g:       g,
		p:       p,
		q:       q,
		theta:   2 * math.Pi / float64(p),
		pos:     make(map[*core.Heptagon]geom.Matrix),
		buckets: make(map[uint32][]*core.Heptagon),
	}
	if g.Class() == geom.ClassEuclid {
		t.r = cfg.euclidRadius
	} else {
		t.r = g.EdgeOfTriangleWithAngles(math.Pi/float64(q), math.Pi/float64(p), math.Pi/2)
	}
	switch cfg.landscape {
	case LandscapePerlin:
		t.noise = newPerlinField(cfg.seed)
	case LandscapeSimplex:
		t.noise = newSimplexField(cfg.seed)
	}

	t.w = core.NewWorld(core.Hooks{}, cfg.worldOpts...)
	t.w.SetHooks(core.Hooks{CreateStep: t.createStep, CreateMov: t.createMov})
	t.log = t.w.Logger().With("tiling", fmt.Sprintf("{%d,%d}", p, q), "geometry", g.Name())

	origin, err := t.allocate(matrix.Id)
	if err != nil {
		return nil, builderErrorf(MethodNewRegular, "origin: %w", err)
	}
	t.origin = origin
	t.log.Debug("tiling created", "radius", t.r)
	return t, nil
}

// World is the world the tiling generates into.
func (t *Tiling) World() *core.World { return t.w }

// Geometry is the space being tiled.
func (t *Tiling) Geometry() *geom.Geometry { return t.g }

// Origin is the first heptagon, at the identity frame.
func (t *Tiling) Origin() *core.Heptagon { return t.origin }

// Schlafli returns p and q.
func (t *Tiling) Schlafli() (p, q int) { return t.p, t.q }

// InRadius is the distance from a heptagon centre to an edge midpoint.
func (t *Tiling) InRadius() float64 { return t.r }

// Len is the number of heptagons generated so far.
func (t *Tiling) Len() int { return len(t.pos) }

// Position is the frame of h: its centre is Position(h)·C0 and its edge d
// points along Position(h)·Spin(d·2π/p).
func (t *Tiling) Position(h *core.Heptagon) (geom.Matrix, bool) {
	T, ok := t.pos[h]
	return T, ok
}

// CellPosition is the frame of the heptagon that owns c.
func (t *Tiling) CellPosition(c *core.Cell) (geom.Matrix, bool) {
	if c == nil || c.Master == nil {
		return geom.Matrix{}, false
	}
	return t.Position(c.Master)
}

// Center is the centre of h in model coordinates.
func (t *Tiling) Center(h *core.Heptagon) (geom.Point, bool) {
	T, ok := t.pos[h]
	if !ok {
		return geom.Point{}, false
	}
	return t.g.TC0(T), true
}

// Relative is the frame of b as seen from a: Position(a)⁻¹·Position(b).
func (t *Tiling) Relative(a, b *core.Heptagon) (geom.Matrix, bool) {
	A, ok1 := t.pos[a]
	B, ok2 := t.pos[b]
	if !ok1 || !ok2 {
		return geom.Matrix{}, false
	}
	return t.g.IsoInverse(A).Mul(B), true
}

// EdgeFrame is the frame of the heptagon across edge d of the frame T;
// the edge it shares with T is its edge 0.
func (t *Tiling) EdgeFrame(T geom.Matrix, d int) geom.Matrix {
	N := T.Mul(t.g.Spin(float64(d) * t.theta)).Mul(t.g.Xpush(2 * t.r)).Mul(t.g.Spin180())
	return t.g.Fixmatrix(N)
}

// edgeToward is the edge of the heptagon with frame T that faces the
// point h.
func (t *Tiling) edgeToward(T geom.Matrix, h geom.Point) int {
	rel := t.g.IsoInverse(T).Apply(h)
	a := -math.Atan2(rel[1], rel[0])
	return core.Gmod(int(math.Round(a/t.theta)), t.p)
}

// allocate creates a heptagon with its cell at frame T and registers it.
func (t *Tiling) allocate(T geom.Matrix) (*core.Heptagon, error) {
	h, err := t.w.NewHeptagon(t.p)
	if err != nil {
		return nil, err
	}
	c, err := t.w.NewCell(t.p, h)
	if err != nil {
		return nil, err
	}
	h.C7 = c
	t.pos[h] = T
	center := t.g.TC0(T)
	k := t.bucket(center)
	t.buckets[k] = append(t.buckets[k], h)
	if t.noise != nil {
		t.paint(h, center)
	}
	return h, nil
}

// createStep is the CreateStep hook: it connects edge d of h to the
// heptagon at the neighbouring position, generating it when new.
func (t *Tiling) createStep(h *core.Heptagon, d int) *core.Heptagon {
	T := t.pos[h]
	N := t.EdgeFrame(T, d)
	center := t.g.TC0(N)

	x, err := t.lookup(center)
	if err != nil {
		panic(builderErrorf(MethodCreateStep, "heptagon %d edge %d: %w", h.Serial(), d, err))
	}
	if x != nil {
		e := t.edgeToward(t.pos[x], t.g.TC0(T))
		if x.Move(e) != nil {
			panic(builderErrorf(MethodCreateStep, "heptagon %d edge %d is taken: %w", x.Serial(), e, ErrInconsistent))
		}
		core.Connect(h, d, x, e, false)
		return x
	}

	n, err := t.allocate(N)
	if err != nil {
		panic(builderErrorf(MethodCreateStep, "allocate: %w", err))
	}
	n.Distance = h.Distance + 1
	core.Connect(h, d, n, 0, false)
	return n
}

// createMov is the CreateMov hook: the cell graph follows the heptagon
// graph.
func (t *Tiling) createMov(c *core.Cell, d int) *core.Cell {
	h := c.Master
	h2 := h.CMove(d)
	if h2.C7.Move(h.Spin(d)) != nil {
		panic(builderErrorf(MethodCreateStep, "cell %d edge %d is taken: %w", h2.C7.Serial(), h.Spin(d), ErrInconsistent))
	}
	core.Connect(c, d, h2.C7, h.Spin(d), h.Mirror(d))
	return h2.C7
}
