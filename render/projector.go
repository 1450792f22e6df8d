// SPDX-License-Identifier: MIT

package render

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/transport-catalogue/geo"
)

// epsilon is the smallest coordinate span treated as non-zero.
const epsilon = 1e-6

// Projector maps geographic coordinates onto the canvas. The west-most
// point lands on the left padding and the north-most on the top padding.
type Projector struct {
	padding float64
	minLng  float64
	maxLat  float64
	zoom    float64
}

// NewProjector fits points into a width×height canvas with padding on
// every side. The zoom is the smaller of the horizontal and vertical fits;
// a span narrower than epsilon does not constrain it. With no points, or
// all points equal, every coordinate maps to (padding, padding).
//
// Complexity: O(n).
func NewProjector(points []geo.Coordinates, width, height, padding float64) Projector {
	p := Projector{padding: padding}
	if len(points) == 0 {
		return p
	}

	mp := make(orb.MultiPoint, len(points))
	for i, c := range points {
		mp[i] = c.Point()
	}
	bound := mp.Bound()
	p.minLng, p.maxLat = bound.Min.Lon(), bound.Max.Lat()

	var (
		widthZoom, heightZoom float64
		hasWidth, hasHeight   bool
	)
	if span := bound.Max.Lon() - bound.Min.Lon(); !isZero(span) {
		widthZoom, hasWidth = (width-2*padding)/span, true
	}
	if span := bound.Max.Lat() - bound.Min.Lat(); !isZero(span) {
		heightZoom, hasHeight = (height-2*padding)/span, true
	}

	switch {
	case hasWidth && hasHeight:
		p.zoom = math.Min(widthZoom, heightZoom)
	case hasWidth:
		p.zoom = widthZoom
	case hasHeight:
		p.zoom = heightZoom
	}

	return p
}

// Project returns the canvas position of c.
func (p Projector) Project(c geo.Coordinates) Point {
	return Point{
		X: (c.Lng-p.minLng)*p.zoom + p.padding,
		Y: (p.maxLat-c.Lat)*p.zoom + p.padding,
	}
}

func isZero(v float64) bool {
	return math.Abs(v) < epsilon
}
