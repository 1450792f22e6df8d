// SPDX-License-Identifier: MIT

// Package graph provides the directed, weighted multigraph consumed by the
// shortest-path solver.
//
// Vertices and edges are dense integer ids:
//
//   - VertexID ∈ [0, VertexCount()), fixed at construction time.
//   - EdgeID ∈ [0, EdgeCount()), assigned by AddEdge in insertion order.
//
// Every vertex keeps an incidence list of its outgoing edge ids, so
// IncidentEdges(v) is O(out-degree) and Edges() is in EdgeID order.
// Parallel edges and self-loops are allowed; weights are float64 and are not
// validated here (the solver rejects negative and non-finite weights).
//
// Concurrency: AddEdge is not synchronized. A graph is populated by one
// builder and then shared read-only; concurrent readers need no locking.
package graph
