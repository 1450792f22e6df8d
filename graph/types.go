// SPDX-License-Identifier: MIT

package graph

import "errors"

// Sentinel errors for graph operations.
var (
	// ErrBadVertexCount indicates a negative vertex count at construction.
	ErrBadVertexCount = errors.New("graph: vertex count must be non-negative")

	// ErrVertexOutOfRange indicates a VertexID outside [0, VertexCount()).
	ErrVertexOutOfRange = errors.New("graph: vertex id out of range")

	// ErrEdgeNotFound indicates an EdgeID outside [0, EdgeCount()).
	ErrEdgeNotFound = errors.New("graph: edge not found")
)

// VertexID identifies a vertex.
type VertexID int

// EdgeID identifies an edge; ids are dense and follow insertion order.
type EdgeID int

// Edge is a directed weighted connection From→To.
type Edge struct {
	From   VertexID
	To     VertexID
	Weight float64
}
