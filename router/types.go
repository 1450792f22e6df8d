// SPDX-License-Identifier: MIT

package router

import (
	"errors"

	"github.com/katalvlaran/transport-catalogue/graph"
)

// Sentinel errors returned by Build.
var (
	// ErrNilGraph indicates that a nil *graph.Graph was passed to Build.
	ErrNilGraph = errors.New("router: graph is nil")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = errors.New("router: negative edge weight encountered")

	// ErrInvalidWeight indicates an edge weight that is NaN or ±Inf.
	ErrInvalidWeight = errors.New("router: edge weight is NaN or Inf")

	// ErrUnknownStrategy indicates an unsupported Strategy value.
	ErrUnknownStrategy = errors.New("router: unknown strategy")
)

// Strategy selects the all-pairs algorithm used by Build.
type Strategy int

const (
	// StrategyFloydWarshall relaxes the dense table through every vertex.
	StrategyFloydWarshall Strategy = iota

	// StrategyDijkstra runs a heap-based single-source search per vertex.
	StrategyDijkstra
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case StrategyFloydWarshall:
		return "floyd-warshall"
	case StrategyDijkstra:
		return "dijkstra"
	default:
		return "unknown"
	}
}

// Options configures Build.
type Options struct {
	Strategy Strategy
}

// Option is a functional option for Build.
type Option func(*Options)

// WithStrategy selects the all-pairs algorithm.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// DefaultOptions returns the options used when Build gets none:
// StrategyFloydWarshall.
func DefaultOptions() Options {
	return Options{Strategy: StrategyFloydWarshall}
}

// PathResult is one optimal path.
type PathResult struct {
	// Weight is the total weight of Edges.
	Weight float64

	// Edges lists the path's edge ids in travel order. Empty for from == to.
	Edges []graph.EdgeID
}

// routeData is one cell of the route table.
type routeData struct {
	weight  float64
	last    graph.EdgeID // last edge of the best path; valid if hasLast
	hasLast bool
	known   bool // false: no path found (yet)
}
