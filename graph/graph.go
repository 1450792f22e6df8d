// SPDX-License-Identifier: MIT

package graph

import (
	"fmt"
	"slices"
)

// Graph is a directed weighted graph with a fixed vertex set.
type Graph struct {
	edges     []Edge
	incidence [][]EdgeID // incidence[v] = outgoing edge ids of v, ascending
}

// New allocates a graph with vertexCount vertices and no edges.
// Complexity: O(V).
func New(vertexCount int) (*Graph, error) {
	if vertexCount < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadVertexCount, vertexCount)
	}

	return &Graph{incidence: make([][]EdgeID, vertexCount)}, nil
}

// AddEdge appends e and returns its id.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(e Edge) (EdgeID, error) {
	if !g.hasVertex(e.From) {
		return 0, fmt.Errorf("%w: from=%d", ErrVertexOutOfRange, e.From)
	}
	if !g.hasVertex(e.To) {
		return 0, fmt.Errorf("%w: to=%d", ErrVertexOutOfRange, e.To)
	}

	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, e)
	g.incidence[e.From] = append(g.incidence[e.From], id)

	return id, nil
}

// Edge returns the edge with the given id.
func (g *Graph) Edge(id EdgeID) (Edge, error) {
	if id < 0 || int(id) >= len(g.edges) {
		return Edge{}, fmt.Errorf("%w: %d", ErrEdgeNotFound, id)
	}

	return g.edges[id], nil
}

// IncidentEdges returns the ids of edges leaving v, in insertion order.
func (g *Graph) IncidentEdges(v VertexID) ([]EdgeID, error) {
	if !g.hasVertex(v) {
		return nil, fmt.Errorf("%w: %d", ErrVertexOutOfRange, v)
	}

	return slices.Clone(g.incidence[v]), nil
}

// Edges returns a copy of all edges; index i holds EdgeID(i).
func (g *Graph) Edges() []Edge {
	return slices.Clone(g.edges)
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.incidence) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

func (g *Graph) hasVertex(v VertexID) bool {
	return v >= 0 && int(v) < len(g.incidence)
}
