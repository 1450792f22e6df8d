// SPDX-License-Identifier: MIT

// Package catalogue stores the static description of a transit network:
// stops, bus routes and the road distances between stops.
//
// Storage model:
//
//   - Stops and buses live in append-only slices; StopID and BusID are
//     indices into those slices. All cross-references (bus→stops,
//     stop→buses, distance keys) are indices, never pointers.
//   - Names are unique per kind and resolved through name→index maps.
//   - Road distances are directional entries keyed by (from, to). A lookup
//     of (a, b) falls back to (b, a) when only the opposite direction was
//     declared, so callers observe an order-insensitive table unless both
//     directions were set explicitly with different values.
//
// Load order (mirrors the input format): stops first, then distances, then
// buses. AddBus fails with ErrStopNotFound for unknown stop names, so a
// fully loaded catalogue never contains dangling references.
//
// Statistics:
//
//	BusStat(name)  – stops on route, unique stops, road length, curvature.
//	StopStat(name) – sorted names of the buses serving a stop.
//
// Concurrency: a Catalogue is not synchronized. Load it from one goroutine,
// then share it read-only (the routing engine takes a snapshot of it).
package catalogue
