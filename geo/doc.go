// SPDX-License-Identifier: MIT

// Package geo holds the geographic primitives used by the transport catalogue:
// a latitude/longitude pair and the great-circle distance between two of them.
//
// Distances are computed with github.com/paulmach/orb/geo, so the earth model
// (mean radius, haversine formula) is the same one used by orb-based tooling.
// Geographic length is only used for statistics (route curvature); routing
// always works on road distances stored in the catalogue.
package geo
