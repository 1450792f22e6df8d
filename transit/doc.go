// SPDX-License-Identifier: MIT

// Package transit turns a transit network into a routing graph and answers
// fastest-itinerary queries over it.
//
// Graph model:
//
//	every stop s owns two vertices
//	  WaitStart(s) = 2i    rider has arrived at s
//	  WaitEnd(s)   = 2i+1  rider has waited and is ready to board
//
//	wait edge    WaitStart(s) → WaitEnd(s)          weight = Settings.BusWaitTime
//	travel edge  WaitEnd(seq[i]) → WaitStart(seq[j]) for every i < j along a
//	             bus's effective stop sequence;      weight = meters / (km/h · 1000/60)
//
// Riders passing through a stop on the same bus never enter its wait edge,
// so transfers pay the wait exactly once per boarding.
//
// Every edge is annotated in a Registry with the Leg it stands for. Route
// replays a shortest path through the Registry into an Itinerary of WaitLeg
// and RideLeg values.
//
// Build is synchronous and runs the all-pairs solver once. The returned
// *Router is immutable; Route may be called from many goroutines.
//
// Errors:
//
//	ErrNilNetwork       - Build got a nil Network or a nil *catalogue.Catalogue
//	ErrInvalidSettings  - negative or non-finite wait, non-positive or
//	                      non-finite velocity; checked before any edge
//	ErrMissingDistance  - two consecutive distinct stops have no road distance
//	ErrUnknownStop      - a bus references a stop the Network does not list
package transit
