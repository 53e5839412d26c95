package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/searchviz/bfs"
	"github.com/katalvlaran/searchviz/builder"
	"github.com/katalvlaran/searchviz/event"
)

// ExampleTraverse demonstrates BFS layering on a 3×3 lattice (9 nodes).
// Nodes are visited in non-decreasing Manhattan distance from the corner.
func ExampleTraverse() {
	g, err := builder.BuildGraph(nil, nil, builder.Lattice(3, 3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	seq, err := bfs.Traverse(g, builder.LatticeNode(3, 0, 0))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for ev := range seq {
		if ev.Kind != event.Visit {
			continue
		}
		n, _ := g.Node(ev.At)
		fmt.Print(n.Label, " ")
	}
	fmt.Println()
	// Output:
	// 0,0 0,1 1,0 0,2 1,1 2,0 1,2 2,1 2,2
}

// ExampleWithTarget stops at the first shortest path to the target.
func ExampleWithTarget() {
	g, _ := builder.BuildGraph(nil, nil, builder.Cycle(6))

	seq, _ := bfs.Traverse(g, 1, bfs.WithTarget(4))
	last, _ := event.Last(seq)
	fmt.Println(last.Kind, last.Path)
	// Output:
	// target-found [1 2 3 4]
}
