// SPDX-License-Identifier: MIT

package catalogue_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transport-catalogue/catalogue"
	"github.com/katalvlaran/transport-catalogue/geo"
)

func TestDistance_OrderInsensitive(t *testing.T) {
	c := newABC(t)

	for _, pair := range [][2]catalogue.StopID{{0, 1}, {1, 2}} {
		a, b := pair[0], pair[1]
		require.Equal(t, c.Distance(a, b), c.Distance(b, a), "distance(%d,%d)", a, b)
		require.Equal(t, 1000, c.Distance(b, a))
	}
}

func TestDistance_ExplicitReverseWins(t *testing.T) {
	c := newABC(t)
	require.NoError(t, c.SetDistance("B", "A", 1200))

	require.Equal(t, 1000, c.Distance(0, 1))
	require.Equal(t, 1200, c.Distance(1, 0))
}

func TestLookupDistance_Missing(t *testing.T) {
	c := newABC(t)

	d, ok := c.LookupDistance(0, 2)
	require.False(t, ok)
	require.Zero(t, d)
	require.Zero(t, c.Distance(0, 2))
}

func TestSetDistance_Errors(t *testing.T) {
	c := newABC(t)

	require.ErrorIs(t, c.SetDistance("Z", "A", 1), catalogue.ErrStopNotFound)
	require.ErrorIs(t, c.SetDistance("A", "Z", 1), catalogue.ErrStopNotFound)
	require.ErrorIs(t, c.SetDistance("A", "C", -1), catalogue.ErrNegativeDistance)
	require.ErrorIs(t, c.SetDistanceByID(0, 9, 1), catalogue.ErrStopNotFound)
}

func TestSetDistance_UpperBound(t *testing.T) {
	c := newABC(t)

	require.NoError(t, c.SetDistance("A", "C", catalogue.MaxDistance))
	require.Equal(t, catalogue.MaxDistance, c.Distance(0, 2))

	err := c.SetDistance("C", "A", catalogue.MaxDistance+1)
	require.ErrorIs(t, err, catalogue.ErrDistanceTooLarge)
	require.Equal(t, catalogue.MaxDistance, c.Distance(2, 0), "rejected value must not be stored")
}

func TestDistances_Sorted(t *testing.T) {
	c := catalogue.New()
	for _, n := range []string{"A", "B", "C"} {
		_, err := c.AddStop(n, geo.Coordinates{})
		require.NoError(t, err)
	}
	require.NoError(t, c.SetDistance("C", "A", 3))
	require.NoError(t, c.SetDistance("A", "C", 1))
	require.NoError(t, c.SetDistance("A", "B", 2))

	require.Equal(t, []catalogue.DistanceEntry{
		{From: 0, To: 1, Meters: 2},
		{From: 0, To: 2, Meters: 1},
		{From: 2, To: 0, Meters: 3},
	}, c.Distances())
}
