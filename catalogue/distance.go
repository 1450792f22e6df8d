// SPDX-License-Identifier: MIT

package catalogue

import (
	"cmp"
	"fmt"
	"slices"
)

// SetDistance declares the road distance from one named stop to another.
// Declaring (a, b) also answers lookups of (b, a) until (b, a) is set itself.
func (c *Catalogue) SetDistance(from, to string, meters int) error {
	fromID, ok := c.stopIndex[from]
	if !ok {
		return fmt.Errorf("%w: %q", ErrStopNotFound, from)
	}
	toID, ok := c.stopIndex[to]
	if !ok {
		return fmt.Errorf("%w: %q", ErrStopNotFound, to)
	}

	return c.SetDistanceByID(fromID, toID, meters)
}

// SetDistanceByID is SetDistance for already resolved stop ids.
// meters must lie in [0, MaxDistance].
func (c *Catalogue) SetDistanceByID(from, to StopID, meters int) error {
	if _, ok := c.Stop(from); !ok {
		return fmt.Errorf("%w: id %d", ErrStopNotFound, from)
	}
	if _, ok := c.Stop(to); !ok {
		return fmt.Errorf("%w: id %d", ErrStopNotFound, to)
	}
	if meters < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeDistance, meters)
	}
	if meters > MaxDistance {
		return fmt.Errorf("%w: %d > %d", ErrDistanceTooLarge, meters, MaxDistance)
	}

	c.distances[stopPair{from: from, to: to}] = meters

	return nil
}

// LookupDistance returns the road distance from one stop to another,
// falling back to the opposite direction. ok is false when neither
// direction was declared.
// Complexity: O(1).
func (c *Catalogue) LookupDistance(from, to StopID) (int, bool) {
	if d, ok := c.distances[stopPair{from: from, to: to}]; ok {
		return d, true
	}
	if d, ok := c.distances[stopPair{from: to, to: from}]; ok {
		return d, true
	}

	return 0, false
}

// Distance is LookupDistance with unknown pairs reported as 0.
// A 0 for two distinct stops usually means missing data.
func (c *Catalogue) Distance(from, to StopID) int {
	d, _ := c.LookupDistance(from, to)

	return d
}

// Distances returns every declared entry ordered by (From, To).
func (c *Catalogue) Distances() []DistanceEntry {
	out := make([]DistanceEntry, 0, len(c.distances))
	for k, v := range c.distances {
		out = append(out, DistanceEntry{From: k.from, To: k.to, Meters: v})
	}
	slices.SortFunc(out, func(a, b DistanceEntry) int {
		if n := cmp.Compare(a.From, b.From); n != 0 {
			return n
		}

		return cmp.Compare(a.To, b.To)
	})

	return out
}
