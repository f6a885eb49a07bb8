package core

import (
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// Hooks are the collaborators that generate unknown territory. CreateStep
// and CreateMov are called by CMove on a null slot; before returning they
// must Connect the new (or found) node so that the slot is filled and the
// back-reference invariant holds.
type Hooks struct {
	CreateStep func(h *Heptagon, d int) *Heptagon
	CreateMov  func(c *Cell, d int) *Cell

	// HeptReverse and CellReverse list the directions reverse to d; the
	// default is the opposite edge (two candidates for odd degrees).
	HeptReverse func(h *Heptagon, d int) []int
	CellReverse func(c *Cell, d int) []int

	// JumpDestination resolves the StrongWind move; nil means "stay".
	JumpDestination func(c *Cell) *Cell
}

// WorldOption configures a World.
type WorldOption func(*World)

// WithLogger sets the world logger (slog.Default() otherwise).
func WithLogger(l *slog.Logger) WorldOption {
	return func(w *World) {
		if l != nil {
			w.log = l
		}
	}
}

// WithSeed seeds the random choices of Walker.Rev.
func WithSeed(seed int64) WorldOption {
	return func(w *World) { w.rng = rngFromSeed(seed) }
}

// WithID fixes the world identifier instead of a random one.
func WithID(id uuid.UUID) WorldOption {
	return func(w *World) { w.id = id }
}

// World allocates heptagons and cells and dispatches lazy generation to
// its Hooks. A world is explored by one goroutine at a time; its counters
// may be read concurrently.
type World struct {
	id    uuid.UUID
	hooks Hooks
	log   *slog.Logger

	rngMu sync.Mutex
	rng   *rand.Rand

	serial    atomic.Uint64
	heptagons atomic.Int64
	cells     atomic.Int64
	steps     atomic.Int64
	movs      atomic.Int64
}

// NewWorld returns an empty world using hooks for generation.
func NewWorld(hooks Hooks, opts ...WorldOption) *World {
	w := &World{
		id:    uuid.New(),
		hooks: hooks,
		log:   slog.Default(),
		rng:   rngFromSeed(defaultSeed),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.log = w.log.With("world", w.id.String())
	return w
}

// SetHooks replaces the generation hooks. Generators that need the world
// before they can build their hooks call it once after NewWorld.
func (w *World) SetHooks(h Hooks) { w.hooks = h }

// ID identifies the world in logs and metrics.
func (w *World) ID() uuid.UUID { return w.id }

// Logger is the world logger, tagged with the world ID.
func (w *World) Logger() *slog.Logger { return w.log }

// HeptagonCount is the number of heptagons allocated.
func (w *World) HeptagonCount() int64 { return w.heptagons.Load() }

// CellCount is the number of cells allocated.
func (w *World) CellCount() int64 { return w.cells.Load() }

// StepCalls is the number of CreateStep invocations.
func (w *World) StepCalls() int64 { return w.steps.Load() }

// MovCalls is the number of CreateMov invocations.
func (w *World) MovCalls() int64 { return w.movs.Load() }

func validDegree(degree int) error {
	if degree < 1 || degree > FullEdge {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrDegree, degree, FullEdge)
	}
	return nil
}

// NewHeptagon allocates an unconnected heptagon of the given degree.
func (w *World) NewHeptagon(degree int) (*Heptagon, error) {
	if err := validDegree(degree); err != nil {
		return nil, fmt.Errorf("NewHeptagon: %w", err)
	}
	h := &Heptagon{
		world:           w,
		serial:          w.serial.Add(1),
		ConnectionTable: newTable[*Heptagon](degree),
	}
	w.heptagons.Add(1)
	return h, nil
}

// NewCell allocates an unconnected cell of the given degree owned by
// master (which may be nil for masterless tilings).
func (w *World) NewCell(degree int, master *Heptagon) (*Cell, error) {
	if err := validDegree(degree); err != nil {
		return nil, fmt.Errorf("NewCell: %w", err)
	}
	c := &Cell{
		Master:          master,
		MonDir:          NoDir,
		BarDir:          NoDir,
		world:           w,
		serial:          w.serial.Add(1),
		ConnectionTable: newTable[*Cell](degree),
	}
	w.cells.Add(1)
	return c, nil
}

func (w *World) createStep(h *Heptagon, d int) *Heptagon {
	if w.hooks.CreateStep == nil {
		panic(fmt.Errorf("%w: no CreateStep hook", ErrHookContract))
	}
	w.steps.Add(1)
	n := w.hooks.CreateStep(h, d)
	requireReciprocal("CreateStep", h, d, n)
	w.log.Debug("heptagon step", "from", h.serial, "dir", d, "to", n.serial)
	return n
}

func (w *World) createMov(c *Cell, d int) *Cell {
	if w.hooks.CreateMov == nil {
		panic(fmt.Errorf("%w: no CreateMov hook", ErrHookContract))
	}
	w.movs.Add(1)
	n := w.hooks.CreateMov(c, d)
	requireReciprocal("CreateMov", c, d, n)
	w.log.Debug("cell move", "from", c.serial, "dir", d, "to", n.serial)
	return n
}

func (w *World) jumpDestination(c *Cell) *Cell {
	if w.hooks.JumpDestination == nil {
		return c
	}
	return w.hooks.JumpDestination(c)
}

func (w *World) randIntn(n int) int {
	w.rngMu.Lock()
	defer w.rngMu.Unlock()
	return w.rng.Intn(n)
}
