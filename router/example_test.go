// SPDX-License-Identifier: MIT

package router_test

import (
	"fmt"

	"github.com/katalvlaran/transport-catalogue/graph"
	"github.com/katalvlaran/transport-catalogue/router"
)

// ExampleRouter_Route solves a small directed graph and prints one path.
func ExampleRouter_Route() {
	g, _ := graph.New(3)
	_, _ = g.AddEdge(graph.Edge{From: 0, To: 1, Weight: 1})
	_, _ = g.AddEdge(graph.Edge{From: 1, To: 2, Weight: 2})
	_, _ = g.AddEdge(graph.Edge{From: 0, To: 2, Weight: 5})

	r, err := router.Build(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, ok := r.Route(0, 2)
	fmt.Println(ok, res.Weight, res.Edges)
	// Output: true 3 [0 1]
}
