// SPDX-License-Identifier: MIT

// Package router computes all-pairs shortest paths over a graph.Graph once
// and then answers path queries with full edge-sequence reconstruction.
//
// Overview:
//
//   - Build(g) validates every edge weight (O(E) pre-scan), fills a dense
//     V×V route table and returns an immutable *Router.
//   - Route(from, to) returns the optimal weight and the ordered edge ids of
//     one optimal path, or false when to is unreachable from from.
//
// Route table:
//
//	Each (i, j) cell stores the best known weight and the id of the LAST edge
//	of that path. Following last(i, j) → last(i, edge.From) → … until a cell
//	without an edge (the trivial i→i path) yields the path backwards.
//
// Strategies:
//
//   - StrategyFloydWarshall (default): k → i → j relaxation. When the path
//     through k improves (i, j), last(i, j) becomes last(k, j) when the k→j
//     part is non-empty, otherwise last(i, k), so the stored edge always
//     belongs to the second half of the combined path.
//     Time O(V³), Space O(V²).
//   - StrategyDijkstra: one lazy-decrease-key heap run per source vertex,
//     writing the predecessor edge of every settled vertex into the same
//     table. Time O(V·(V+E)·log V), Space O(V²). Faster on sparse graphs;
//     optimal weights are identical, tie-broken paths may differ.
//
// Determinism: loop orders are fixed, improvements are strict (<), the heap
// orders by (distance, vertex). Repeated builds over the same graph produce
// identical tables, and Route is a pure read.
//
// Errors (sentinel):
//
//   - ErrNilGraph        – Build received a nil graph.
//   - ErrNegativeWeight  – some edge weight is < 0.
//   - ErrInvalidWeight   – some edge weight is NaN or ±Inf.
//   - ErrUnknownStrategy – the Strategy option is not recognised.
//
// Thread safety: a built Router is read-only; Route may be called from any
// number of goroutines without synchronization.
package router
