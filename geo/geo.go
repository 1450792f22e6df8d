// SPDX-License-Identifier: MIT

package geo

import (
	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// Coordinates is a WGS84 point in degrees.
type Coordinates struct {
	Lat float64
	Lng float64
}

// Point converts c to an orb.Point. Note orb orders components as (lon, lat).
func (c Coordinates) Point() orb.Point {
	return orb.Point{c.Lng, c.Lat}
}

// Distance returns the great-circle distance between from and to in meters.
// Equal coordinates yield exactly 0.
func Distance(from, to Coordinates) float64 {
	if from == to {
		return 0
	}

	return orbgeo.Distance(from.Point(), to.Point())
}

// PathLength sums Distance over consecutive points of path.
// Complexity: O(len(path)).
func PathLength(path []Coordinates) float64 {
	var total float64
	for i := 1; i < len(path); i++ {
		total += Distance(path[i-1], path[i])
	}

	return total
}
