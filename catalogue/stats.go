// SPDX-License-Identifier: MIT

package catalogue

import (
	"slices"

	"github.com/katalvlaran/transport-catalogue/geo"
)

// BusStat computes route statistics for the named bus.
// Complexity: O(L) where L is the effective route length.
func (c *Catalogue) BusStat(name string) (BusStat, bool) {
	bus, ok := c.BusByName(name)
	if !ok {
		return BusStat{}, false
	}

	seq := EffectiveStops(bus)
	unique := make(map[StopID]struct{}, len(bus.Stops))
	path := make([]geo.Coordinates, len(seq))
	road := 0
	for i, id := range seq {
		unique[id] = struct{}{}
		path[i] = c.stops[id].Coordinates
		if i > 0 {
			road += c.Distance(seq[i-1], id)
		}
	}

	stat := BusStat{
		Name:            bus.Name,
		StopCount:       len(seq),
		UniqueStopCount: len(unique),
		RouteLength:     road,
	}
	if geoLen := geo.PathLength(path); geoLen > 0 {
		stat.Curvature = float64(road) / geoLen
	}

	return stat, true
}

// StopStat lists the buses serving the named stop, sorted by name.
// A known stop without buses yields an empty list and true.
func (c *Catalogue) StopStat(name string) (StopStat, bool) {
	stop, ok := c.StopByName(name)
	if !ok {
		return StopStat{}, false
	}

	names := make([]string, 0, len(stop.Buses))
	for _, id := range stop.Buses {
		names = append(names, c.buses[id].Name)
	}
	slices.Sort(names)

	return StopStat{Name: stop.Name, Buses: slices.Compact(names)}, true
}
