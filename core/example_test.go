package core_test

import (
	"fmt"

	"github.com/katalvlaran/longpath/core"
)

// ExampleGraph builds a tiny directed multigraph and inspects it.
func ExampleGraph() {
	g := core.NewGraph()
	_ = g.AddEdge(1, 2, 8.54)
	_ = g.AddEdge(2, 3, 3.11)
	_ = g.AddEdge(1, 2, 1.00) // parallel edge, kept as a distinct option

	fmt.Println("vertices:", g.Vertices())
	fmt.Println("edges:", g.EdgeCount())

	out, _ := g.OutEdges(1)
	for _, e := range out {
		fmt.Printf("%d->%d %.2f\n", e.From, e.To, e.Weight)
	}

	// Output:
	// vertices: [1 2 3]
	// edges: 3
	// 1->2 8.54
	// 1->2 1.00
}
