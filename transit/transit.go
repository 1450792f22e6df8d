// SPDX-License-Identifier: MIT

package transit

import (
	"fmt"
	"time"

	"golang.org/x/exp/slog"

	"github.com/katalvlaran/transport-catalogue/catalogue"
	"github.com/katalvlaran/transport-catalogue/graph"
	"github.com/katalvlaran/transport-catalogue/router"
)

// Router answers itinerary queries for one network snapshot.
type Router struct {
	settings Settings
	g        *graph.Graph
	registry *Registry
	vertices map[string]StopVertices
	solver   *router.Router
}

// Build constructs the routing graph of n and solves it.
//
// Errors:
//   - ErrNilNetwork if n is nil, including a nil *catalogue.Catalogue.
//   - ErrInvalidSettings if settings has a negative or non-finite wait
//     time, or a velocity that is not positive and finite. Settings are
//     checked before any edge is built, so a network without buses is
//     rejected as well.
//   - ErrMissingDistance unless WithZeroMissingDistance is given.
//   - ErrUnknownStop for a dangling bus stop reference.
//   - router.ErrInvalidWeight when a ride time overflows to infinity,
//     e.g. with a vanishingly small velocity.
//
// Complexity: O(S + Σ k²) to build the graph, where S is the number of
// stops and k the effective length of each bus route, plus the cost of
// the chosen solver (O(V³) for Floyd–Warshall).
//
// No Router is returned on error.
func Build(n Network, settings Settings, opts ...Option) (*Router, error) {
	// 1) Reject nil networks, including a typed nil catalogue.
	if n == nil {
		return nil, ErrNilNetwork
	}
	if c, ok := n.(*catalogue.Catalogue); ok && c == nil {
		return nil, ErrNilNetwork
	}
	// 2) Settings are validated on their own; the solver only sees edges.
	if err := settings.validate(); err != nil {
		return nil, err
	}
	cfg := defaultBuildConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 3) Vertices, wait edges and travel edges.
	started := time.Now()
	b := newGraphBuilder(n, settings, cfg)
	if err := b.build(); err != nil {
		return nil, err
	}

	// 4) All-pairs solve over the finished graph.
	solver, err := router.Build(b.g, cfg.routerOptions...)
	if err != nil {
		return nil, fmt.Errorf("transit: solve: %w", err)
	}

	cfg.logger.Debug("routing graph built",
		slog.Int("stops", len(b.stops)),
		slog.Int("vertices", b.g.VertexCount()),
		slog.Int("wait_edges", b.waitEdges),
		slog.Int("travel_edges", b.travelEdges),
		slog.Duration("elapsed", time.Since(started)),
	)

	return &Router{
		settings: settings,
		g:        b.g,
		registry: b.registry,
		vertices: b.vertices,
		solver:   solver,
	}, nil
}

// Route returns the fastest itinerary from one stop to another.
// ok is false when a stop is unknown or no bus connects them.
// Route from a stop to itself is an empty itinerary of zero time.
func (r *Router) Route(from, to string) (Itinerary, bool) {
	src, ok := r.vertices[from]
	if !ok {
		return Itinerary{}, false
	}
	dst, ok := r.vertices[to]
	if !ok {
		return Itinerary{}, false
	}
	if src == dst {
		return Itinerary{}, true
	}

	res, ok := r.solver.Route(src.WaitStart, dst.WaitStart)
	if !ok {
		return Itinerary{}, false
	}

	legs := make([]Leg, 0, len(res.Edges))
	for _, id := range res.Edges {
		leg, found := r.registry.Leg(id)
		if !found {
			panic(fmt.Sprintf("transit: edge %d has no registered leg", id))
		}
		legs = append(legs, leg)
	}

	return Itinerary{TotalTime: res.Weight, Legs: legs}, true
}

// Vertices returns the vertex pair of a stop.
func (r *Router) Vertices(stop string) (StopVertices, bool) {
	sv, ok := r.vertices[stop]
	return sv, ok
}

// Graph returns the routing graph. Callers must not add edges to it.
func (r *Router) Graph() *graph.Graph { return r.g }

// Registry returns the edge → leg registry.
func (r *Router) Registry() *Registry { return r.registry }

// Settings returns the settings the graph was built with.
func (r *Router) Settings() Settings { return r.settings }
