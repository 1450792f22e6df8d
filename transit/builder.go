// SPDX-License-Identifier: MIT

package transit

import (
	"fmt"

	"golang.org/x/exp/slog"

	"github.com/katalvlaran/transport-catalogue/catalogue"
	"github.com/katalvlaran/transport-catalogue/graph"
)

// graphBuilder accumulates the routing graph, its registry and the stop
// vertex mapping for one Network.
type graphBuilder struct {
	network  Network
	settings Settings
	cfg      buildConfig

	stops    []catalogue.Stop
	index    map[catalogue.StopID]int // stop id → position in stops
	g        *graph.Graph
	registry *Registry
	vertices map[string]StopVertices

	waitEdges   int
	travelEdges int
}

func newGraphBuilder(n Network, s Settings, cfg buildConfig) *graphBuilder {
	return &graphBuilder{
		network:  n,
		settings: s,
		cfg:      cfg,
		registry: &Registry{},
	}
}

// build runs all construction steps in order.
//
// Steps:
//  1. Two vertices and one wait edge per stop.
//  2. Travel edges for every bus, in network order.
//
// Complexity: O(S + Σ k²) edges, where k is a bus's effective length.
func (b *graphBuilder) build() error {
	// 1) Stops.
	if err := b.addStops(); err != nil {
		return err
	}
	// 2) Buses.
	for _, bus := range b.network.Buses() {
		if err := b.addBus(bus); err != nil {
			return err
		}
	}

	return nil
}

// addStops allocates two vertices per stop and adds its wait edge.
// Stop at position i owns vertices 2i and 2i+1.
// Complexity: O(S).
func (b *graphBuilder) addStops() error {
	b.stops = b.network.Stops()
	b.index = make(map[catalogue.StopID]int, len(b.stops))
	b.vertices = make(map[string]StopVertices, len(b.stops))

	g, err := graph.New(2 * len(b.stops))
	if err != nil {
		return fmt.Errorf("transit: allocate graph: %w", err)
	}
	b.g = g

	for i, s := range b.stops {
		sv := b.stopVertices(i)
		b.index[s.ID] = i
		b.vertices[s.Name] = sv

		leg := WaitLeg{StopName: s.Name, Time: b.settings.BusWaitTime}
		if err = b.addEdge(graph.Edge{From: sv.WaitStart, To: sv.WaitEnd, Weight: leg.Time}, leg); err != nil {
			return err
		}
		b.waitEdges++
	}

	return nil
}

// addBus emits one travel edge per ordered pair (i, j), i < j, of the bus's
// effective stop sequence.
//
// Complexity: O(k²) for an effective sequence of length k; distances are
// accumulated along i so each edge costs O(1).
func (b *graphBuilder) addBus(bus catalogue.Bus) error {
	// 1) Resolve every stop of the effective sequence to its position.
	seq := catalogue.EffectiveStops(bus)
	pos := make([]int, len(seq))
	for k, id := range seq {
		p, ok := b.index[id]
		if !ok {
			return fmt.Errorf("%w: bus %q stop id %d", ErrUnknownStop, bus.Name, id)
		}
		pos[k] = p
	}

	// 2) segment[k] is the road distance from seq[k] to seq[k+1].
	segment := make([]int, len(seq))
	for k := 0; k+1 < len(seq); k++ {
		m, err := b.segmentMeters(bus, seq[k], seq[k+1])
		if err != nil {
			return err
		}
		segment[k] = m
	}

	// 3) One edge per (i, j); acc is the road distance seq[i] → seq[j].
	mpm := b.settings.metersPerMinute()
	for i := 0; i < len(seq); i++ {
		from := b.stopVertices(pos[i]).WaitEnd
		acc := 0
		for j := i + 1; j < len(seq); j++ {
			acc += segment[j-1]
			leg := RideLeg{
				BusName:   bus.Name,
				SpanCount: j - i,
				Time:      float64(acc) / mpm,
			}
			to := b.stopVertices(pos[j]).WaitStart
			if err := b.addEdge(graph.Edge{From: from, To: to, Weight: leg.Time}, leg); err != nil {
				return err
			}
			b.travelEdges++
		}
	}

	return nil
}

// segmentMeters resolves the road distance between two consecutive stops.
// A stop followed by itself without a declared distance is a 0 m hop.
func (b *graphBuilder) segmentMeters(bus catalogue.Bus, from, to catalogue.StopID) (int, error) {
	if m, ok := b.network.LookupDistance(from, to); ok {
		return m, nil
	}
	if from == to {
		return 0, nil
	}

	fromName, toName := b.stops[b.index[from]].Name, b.stops[b.index[to]].Name
	if !b.cfg.zeroMissing {
		return 0, fmt.Errorf("%w: bus %q between %q and %q", ErrMissingDistance, bus.Name, fromName, toName)
	}
	b.cfg.logger.Warn("road distance missing, using 0 m",
		slog.String("bus", bus.Name),
		slog.String("from", fromName),
		slog.String("to", toName),
	)

	return 0, nil
}

func (b *graphBuilder) addEdge(e graph.Edge, leg Leg) error {
	id, err := b.g.AddEdge(e)
	if err != nil {
		return fmt.Errorf("transit: add edge %d→%d: %w", e.From, e.To, err)
	}
	b.registry.register(id, leg)

	return nil
}

func (b *graphBuilder) stopVertices(pos int) StopVertices {
	return StopVertices{
		WaitStart: graph.VertexID(2 * pos),
		WaitEnd:   graph.VertexID(2*pos + 1),
	}
}
