// Package transport is a transit catalogue with a fastest-itinerary router.
//
// What is in the box?
//
//	• Catalogue: stops, buses, road distances and route statistics
//	• Routing graph: two vertices per stop, wait and travel edges
//	• All-pairs solver: Floyd–Warshall (default) or per-source Dijkstra
//	• Itineraries: wait-then-ride legs between any two stops
//	• Snapshots: protobuf-encoded catalogue + routing and render settings
//	• Map: SVG rendering of every bus line and the stops they serve
//	• Front ends: JSON request documents, HTTP API, two binaries
//
// Packages, leaves first:
//
//	geo/           — coordinates and great-circle distance
//	catalogue/     — stops, buses, distance table, Bus/Stop statistics
//	graph/         — fixed-vertex directed weighted graph
//	router/        — all-pairs shortest paths with path reconstruction
//	transit/       — graph builder, edge registry, itinerary resolver
//	render/        — SVG document writer, projection and map layers
//	serialization/ — binary snapshot Save/Load
//	config/        — YAML configuration
//	requests/      — JSON request document and answers
//	server/        — chi HTTP API
//	cmd/           — transport-catalogue (make_base, process_requests), transportd
//
// Quick picture of one stop S served by a bus:
//
//	  arrive ─► [S.start] ──wait──► [S.end] ──ride──► next stops
//
// A rider passing through S on the same bus never enters the wait edge.
package transport
