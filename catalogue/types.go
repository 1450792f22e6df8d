// SPDX-License-Identifier: MIT

package catalogue

import (
	"errors"
	"math"

	"github.com/katalvlaran/transport-catalogue/geo"
)

// Sentinel errors for catalogue operations.
var (
	// ErrEmptyName indicates that a stop or bus name is empty.
	ErrEmptyName = errors.New("catalogue: name is empty")

	// ErrDuplicateStop indicates a second AddStop with an already known name.
	ErrDuplicateStop = errors.New("catalogue: stop already exists")

	// ErrDuplicateBus indicates a second AddBus with an already known name.
	ErrDuplicateBus = errors.New("catalogue: bus already exists")

	// ErrStopNotFound indicates a reference to an unknown stop.
	ErrStopNotFound = errors.New("catalogue: stop not found")

	// ErrBusNotFound indicates a reference to an unknown bus.
	ErrBusNotFound = errors.New("catalogue: bus not found")

	// ErrEmptyRoute indicates a bus declared without stops.
	ErrEmptyRoute = errors.New("catalogue: bus route has no stops")

	// ErrNegativeDistance indicates a road distance below zero meters.
	ErrNegativeDistance = errors.New("catalogue: road distance is negative")

	// ErrDistanceTooLarge indicates a road distance above MaxDistance.
	ErrDistanceTooLarge = errors.New("catalogue: road distance is too large")
)

// MaxDistance is the largest road distance in meters a catalogue accepts.
// Snapshots store distances as 32-bit integers.
const MaxDistance = math.MaxInt32

// StopID is the index of a stop inside its Catalogue.
type StopID int

// BusID is the index of a bus inside its Catalogue.
type BusID int

// Stop is a named place where riders board and alight.
type Stop struct {
	ID          StopID
	Name        string
	Coordinates geo.Coordinates

	// Buses lists every bus serving this stop, in bus insertion order,
	// each bus at most once.
	Buses []BusID
}

// Bus is a named route over an ordered list of stops.
type Bus struct {
	ID   BusID
	Name string

	// Stops is the sequence as declared. For a non-roundtrip bus the return
	// trip is implied; see EffectiveStops.
	Stops []StopID

	Roundtrip bool
}

// DistanceEntry is one declared road distance.
type DistanceEntry struct {
	From   StopID
	To     StopID
	Meters int
}

// BusStat aggregates route statistics for one bus.
type BusStat struct {
	Name string

	// StopCount is the number of stops on the effective route, the
	// return trip included.
	StopCount int

	UniqueStopCount int

	// RouteLength is the road length of the effective route in meters.
	RouteLength int

	// Curvature is RouteLength divided by the great-circle length of the
	// same stop sequence; 0 when the geographic length is 0.
	Curvature float64
}

// StopStat lists the buses serving one stop.
type StopStat struct {
	Name  string
	Buses []string // sorted, unique
}

// stopPair keys the distance table.
type stopPair struct {
	from, to StopID
}
