package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hypertile/core"
)

// newPathWorld is an infinite path of degree-2 heptagons generated on
// demand: edge 0 leads left, edge 1 leads right.
func newPathWorld(t *testing.T, opts ...core.WorldOption) (*core.World, *core.Heptagon) {
	t.Helper()
	w := core.NewWorld(core.Hooks{}, opts...)
	w.SetHooks(core.Hooks{
		CreateStep: func(h *core.Heptagon, d int) *core.Heptagon {
			n, err := w.NewHeptagon(2)
			if err != nil {
				panic(err)
			}
			n.Distance = h.Distance + 1
			core.Connect(h, d, n, 1-d, false)
			return n
		},
	})
	root, err := w.NewHeptagon(2)
	require.NoError(t, err)
	return w, root
}

// newCellRing is a closed ring of n degree-4 cells: edge 0 of cell i meets
// edge 2 of cell i+1; edges 1 and 3 are generated on demand as leaves.
func newCellRing(t *testing.T, n int, hooks core.Hooks) (*core.World, []*core.Cell) {
	t.Helper()
	w := core.NewWorld(core.Hooks{})
	if hooks.CreateMov == nil {
		hooks.CreateMov = func(c *core.Cell, d int) *core.Cell {
			leaf, err := w.NewCell(4, nil)
			if err != nil {
				panic(err)
			}
			core.Connect(c, d, leaf, 0, false)
			return leaf
		}
	}
	w.SetHooks(hooks)
	ring := make([]*core.Cell, n)
	for i := range ring {
		c, err := w.NewCell(4, nil)
		require.NoError(t, err)
		ring[i] = c
	}
	for i := range ring {
		core.Connect(ring[i], 0, ring[(i+1)%n], 2, false)
	}
	return w, ring
}

// requirePanicIs checks that fn panics with an error wrapping target.
func requirePanicIs(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.True(t, errors.Is(err, target), "got %v", err)
	}()
	fn()
}
