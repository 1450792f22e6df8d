// SPDX-License-Identifier: MIT

package catalogue

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/transport-catalogue/geo"
)

// Catalogue is the in-memory store of stops, buses and road distances.
// The zero value is not usable; call New.
type Catalogue struct {
	stops []Stop
	buses []Bus

	stopIndex map[string]StopID
	busIndex  map[string]BusID

	distances map[stopPair]int
}

// New returns an empty Catalogue.
func New() *Catalogue {
	return &Catalogue{
		stopIndex: make(map[string]StopID),
		busIndex:  make(map[string]BusID),
		distances: make(map[stopPair]int),
	}
}

// AddStop registers a stop and returns its id.
// Complexity: O(1) amortized.
func (c *Catalogue) AddStop(name string, coords geo.Coordinates) (StopID, error) {
	if name == "" {
		return 0, ErrEmptyName
	}
	if _, ok := c.stopIndex[name]; ok {
		return 0, fmt.Errorf("%w: %q", ErrDuplicateStop, name)
	}

	id := StopID(len(c.stops))
	c.stops = append(c.stops, Stop{ID: id, Name: name, Coordinates: coords})
	c.stopIndex[name] = id

	return id, nil
}

// AddBus registers a bus over the named stops and links every stop back to it.
// All stops must already exist; on error the catalogue is left unchanged.
// Complexity: O(len(stopNames)).
func (c *Catalogue) AddBus(name string, stopNames []string, roundtrip bool) (BusID, error) {
	if name == "" {
		return 0, ErrEmptyName
	}
	if _, ok := c.busIndex[name]; ok {
		return 0, fmt.Errorf("%w: %q", ErrDuplicateBus, name)
	}
	if len(stopNames) == 0 {
		return 0, fmt.Errorf("%w: %q", ErrEmptyRoute, name)
	}

	// Resolve every name before mutating anything.
	route := make([]StopID, len(stopNames))
	for i, stopName := range stopNames {
		id, ok := c.stopIndex[stopName]
		if !ok {
			return 0, fmt.Errorf("%w: %q on bus %q", ErrStopNotFound, stopName, name)
		}
		route[i] = id
	}

	id := BusID(len(c.buses))
	c.buses = append(c.buses, Bus{ID: id, Name: name, Stops: route, Roundtrip: roundtrip})
	c.busIndex[name] = id

	for _, stopID := range route {
		s := &c.stops[stopID]
		if !slices.Contains(s.Buses, id) {
			s.Buses = append(s.Buses, id)
		}
	}

	return id, nil
}

// Stop returns the stop with the given id.
func (c *Catalogue) Stop(id StopID) (Stop, bool) {
	if id < 0 || int(id) >= len(c.stops) {
		return Stop{}, false
	}

	return c.stops[id], true
}

// Bus returns the bus with the given id.
func (c *Catalogue) Bus(id BusID) (Bus, bool) {
	if id < 0 || int(id) >= len(c.buses) {
		return Bus{}, false
	}

	return c.buses[id], true
}

// StopByName resolves a stop by its unique name.
func (c *Catalogue) StopByName(name string) (Stop, bool) {
	id, ok := c.stopIndex[name]
	if !ok {
		return Stop{}, false
	}

	return c.stops[id], true
}

// BusByName resolves a bus by its unique name.
func (c *Catalogue) BusByName(name string) (Bus, bool) {
	id, ok := c.busIndex[name]
	if !ok {
		return Bus{}, false
	}

	return c.buses[id], true
}

// Stops returns all stops in insertion order (index == StopID).
func (c *Catalogue) Stops() []Stop {
	return slices.Clone(c.stops)
}

// Buses returns all buses in insertion order (index == BusID).
func (c *Catalogue) Buses() []Bus {
	return slices.Clone(c.buses)
}

// StopCount returns the number of stops.
func (c *Catalogue) StopCount() int { return len(c.stops) }

// BusCount returns the number of buses.
func (c *Catalogue) BusCount() int { return len(c.buses) }

// EffectiveStops returns the stop sequence a bus actually drives.
// A roundtrip bus drives its declared sequence; any other bus drives it
// forward and then back, so [A B C] becomes [A B C B A].
func EffectiveStops(b Bus) []StopID {
	if b.Roundtrip || len(b.Stops) < 2 {
		return slices.Clone(b.Stops)
	}

	n := len(b.Stops)
	seq := make([]StopID, 0, 2*n-1)
	seq = append(seq, b.Stops...)
	for i := n - 2; i >= 0; i-- {
		seq = append(seq, b.Stops[i])
	}

	return seq
}
