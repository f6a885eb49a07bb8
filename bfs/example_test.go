package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/hypertile/bfs"
	"github.com/katalvlaran/hypertile/core"
)

// ExampleCollect lists the ball of radius 2 in a lazily grown binary
// tree and counts the cells per layer.
func ExampleCollect() {
	w := core.NewWorld(core.Hooks{})
	w.SetHooks(core.Hooks{
		CreateMov: func(c *core.Cell, d int) *core.Cell {
			n, _ := w.NewCell(3, nil)
			core.Connect(c, d, n, 0, false)
			return n
		},
	})
	root, _ := w.NewCell(3, nil)

	res, err := bfs.Collect(root, bfs.WithMaxDist(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	layers := make([]int, 3)
	for i := 0; i < res.Len(); i++ {
		layers[res.DistAt(i)]++
	}
	fmt.Println("layers:", layers)
	fmt.Println("generated:", w.CellCount())
	// Output:
	// layers: [1 3 6]
	// generated: 10
}
