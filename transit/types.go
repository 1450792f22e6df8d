// SPDX-License-Identifier: MIT

package transit

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/transport-catalogue/catalogue"
	"github.com/katalvlaran/transport-catalogue/graph"
)

// Sentinel errors returned by Build.
var (
	// ErrNilNetwork indicates that Build was called with a nil Network.
	ErrNilNetwork = errors.New("transit: network is nil")

	// ErrMissingDistance indicates a route segment without a road distance
	// in either orientation.
	ErrMissingDistance = errors.New("transit: road distance is missing")

	// ErrUnknownStop indicates a bus that references a stop id absent from
	// the network's stop list.
	ErrUnknownStop = errors.New("transit: bus references unknown stop")

	// ErrInvalidSettings indicates a negative or non-finite BusWaitTime, or
	// a BusVelocity that is not a positive finite number.
	ErrInvalidSettings = errors.New("transit: invalid routing settings")
)

// Network is the read-only view of a catalogue consumed by Build.
// *catalogue.Catalogue implements it.
type Network interface {
	// Stops returns all stops in a stable order.
	Stops() []catalogue.Stop

	// Buses returns all buses in a stable order.
	Buses() []catalogue.Bus

	// LookupDistance returns the road distance in meters, trying the reverse
	// orientation before reporting false.
	LookupDistance(from, to catalogue.StopID) (int, bool)
}

// Settings are the routing parameters.
type Settings struct {
	// BusWaitTime is the time spent waiting for any bus, in minutes.
	BusWaitTime float64

	// BusVelocity is the speed of every bus, in km/h.
	BusVelocity float64
}

// validate reports ErrInvalidSettings unless the wait time is finite and
// non-negative and the velocity is finite and positive.
func (s Settings) validate() error {
	if math.IsNaN(s.BusWaitTime) || math.IsInf(s.BusWaitTime, 0) || s.BusWaitTime < 0 {
		return fmt.Errorf("%w: bus wait time %v", ErrInvalidSettings, s.BusWaitTime)
	}
	if math.IsNaN(s.BusVelocity) || math.IsInf(s.BusVelocity, 0) || s.BusVelocity <= 0 {
		return fmt.Errorf("%w: bus velocity %v", ErrInvalidSettings, s.BusVelocity)
	}
	return nil
}

// metersPerMinute converts BusVelocity to the unit used by edge weights.
func (s Settings) metersPerMinute() float64 {
	return s.BusVelocity * 1000 / 60
}

// Leg is one step of an Itinerary: either a WaitLeg or a RideLeg.
// The set of implementations is closed.
type Leg interface {
	// Minutes returns the duration of the leg.
	Minutes() float64

	isLeg()
}

// WaitLeg is the wait for a bus at a stop.
type WaitLeg struct {
	StopName string
	Time     float64
}

// Minutes implements Leg.
func (l WaitLeg) Minutes() float64 { return l.Time }

func (WaitLeg) isLeg() {}

// RideLeg is one ride on a bus over SpanCount consecutive hops.
type RideLeg struct {
	BusName   string
	SpanCount int
	Time      float64
}

// Minutes implements Leg.
func (l RideLeg) Minutes() float64 { return l.Time }

func (RideLeg) isLeg() {}

// Itinerary is the fastest way between two stops.
type Itinerary struct {
	// TotalTime is the sum of all leg durations, in minutes.
	TotalTime float64

	// Legs alternate between waits and rides, starting with a wait.
	// Nil when origin and destination coincide.
	Legs []Leg
}

// StopVertices are the two graph vertices owned by one stop.
type StopVertices struct {
	WaitStart graph.VertexID
	WaitEnd   graph.VertexID
}
