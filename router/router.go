// SPDX-License-Identifier: MIT

package router

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/transport-catalogue/graph"
)

// Router holds the solved route table of one graph.
type Router struct {
	n      int
	edges  []graph.Edge
	routes []routeData // row-major n×n
}

// Build solves all-pairs shortest paths for g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. The strategy must be known (ErrUnknownStrategy).
//  3. Every weight must be finite (ErrInvalidWeight) and ≥ 0 (ErrNegativeWeight).
//
// No Router is returned on error.
func Build(g *graph.Graph, opts ...Option) (*Router, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if cfg.Strategy != StrategyFloydWarshall && cfg.Strategy != StrategyDijkstra {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, cfg.Strategy)
	}

	edges := g.Edges()
	if err := validateWeights(edges); err != nil {
		return nil, err
	}

	n := g.VertexCount()
	r := &Router{
		n:      n,
		edges:  edges,
		routes: make([]routeData, n*n),
	}

	switch cfg.Strategy {
	case StrategyDijkstra:
		r.solveDijkstra(g)
	default:
		r.initialize()
		r.solveFloydWarshall()
	}

	return r, nil
}

// validateWeights scans all edges once and fails on the first bad weight.
func validateWeights(edges []graph.Edge) error {
	for id, e := range edges {
		if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
			return fmt.Errorf("%w: edge %d %d→%d weight=%v", ErrInvalidWeight, id, e.From, e.To, e.Weight)
		}
		if e.Weight < 0 {
			return fmt.Errorf("%w: edge %d %d→%d weight=%v", ErrNegativeWeight, id, e.From, e.To, e.Weight)
		}
	}

	return nil
}

// initialize seeds the table with trivial self paths and direct edges.
// Among parallel edges the cheapest wins; on equal weight the lower id wins.
func (r *Router) initialize() {
	for v := 0; v < r.n; v++ {
		r.routes[v*r.n+v] = routeData{known: true}
	}

	for id, e := range r.edges {
		cell := &r.routes[int(e.From)*r.n+int(e.To)]
		if cell.known && cell.weight <= e.Weight {
			continue
		}
		*cell = routeData{weight: e.Weight, last: graph.EdgeID(id), hasLast: true, known: true}
	}
}

// Route returns one optimal path from → to.
// ok is false when to is unreachable or either vertex is out of range.
// Complexity: O(path length).
func (r *Router) Route(from, to graph.VertexID) (PathResult, bool) {
	cell, ok := r.cell(from, to)
	if !ok || !cell.known {
		return PathResult{}, false
	}

	var path []graph.EdgeID
	for cur := cell; cur.hasLast; {
		path = append(path, cur.last)
		if len(path) > len(r.edges) {
			panic("router: route table is corrupted (cycle during reconstruction)")
		}
		cur = r.routes[int(from)*r.n+int(r.edges[cur.last].From)]
	}
	slices.Reverse(path)

	return PathResult{Weight: cell.weight, Edges: path}, true
}

// Weight returns the optimal weight from → to without reconstructing the path.
func (r *Router) Weight(from, to graph.VertexID) (float64, bool) {
	cell, ok := r.cell(from, to)
	if !ok || !cell.known {
		return 0, false
	}

	return cell.weight, true
}

// VertexCount returns the number of vertices of the solved graph.
func (r *Router) VertexCount() int { return r.n }

func (r *Router) cell(from, to graph.VertexID) (routeData, bool) {
	if from < 0 || to < 0 || int(from) >= r.n || int(to) >= r.n {
		return routeData{}, false
	}

	return r.routes[int(from)*r.n+int(to)], true
}
