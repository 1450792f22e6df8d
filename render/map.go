// SPDX-License-Identifier: MIT

package render

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/transport-catalogue/catalogue"
	"github.com/katalvlaran/transport-catalogue/geo"
)

// Fixed presentation values of the map.
const (
	fontFamily    = "Verdana"
	busFontWeight = "bold"
	stopFill      = Color("white")
	stopLabelFill = Color("black")
)

// Network is the read-only catalogue view the map is drawn from.
// *catalogue.Catalogue implements it.
type Network interface {
	Stops() []catalogue.Stop
	Buses() []catalogue.Bus
}

// Map draws n with settings s. Buses without stops are skipped and do not
// consume a palette color. Stops no bus serves are not drawn.
//
// Steps:
//  1. Sort buses and served stops by name; fit the projector to the stops.
//  2. Bus polylines over each effective stop sequence.
//  3. Bus labels.
//  4. Stop circles.
//  5. Stop labels.
//
// Complexity: O(S log S + B log B + Σ k) for S stops, B buses and k stops
// per effective route.
func Map(n Network, s Settings) *Document {
	// 1) Ordering and projection.
	byID := make(map[catalogue.StopID]catalogue.Stop)
	for _, st := range n.Stops() {
		byID[st.ID] = st
	}

	buses := slices.DeleteFunc(slices.Clone(n.Buses()), func(b catalogue.Bus) bool { return len(b.Stops) == 0 })
	slices.SortFunc(buses, func(a, b catalogue.Bus) int { return cmp.Compare(a.Name, b.Name) })

	served := make(map[catalogue.StopID]struct{})
	var stops []catalogue.Stop
	for _, bus := range buses {
		for _, id := range bus.Stops {
			st, ok := byID[id]
			if !ok {
				continue
			}
			if _, seen := served[id]; !seen {
				served[id] = struct{}{}
				stops = append(stops, st)
			}
		}
	}
	slices.SortFunc(stops, func(a, b catalogue.Stop) int { return cmp.Compare(a.Name, b.Name) })

	coords := make([]geo.Coordinates, len(stops))
	for i, st := range stops {
		coords[i] = st.Coordinates
	}
	proj := NewProjector(coords, s.Width, s.Height, s.Padding)
	at := func(id catalogue.StopID) Point { return proj.Project(byID[id].Coordinates) }

	doc := &Document{}

	// 2) Routes.
	for i, bus := range buses {
		seq := catalogue.EffectiveStops(bus)
		points := make([]Point, len(seq))
		for k, id := range seq {
			points[k] = at(id)
		}
		doc.Add(Polyline{
			Points: points,
			PathProps: PathProps{
				Fill:        NoColor,
				Stroke:      s.paletteColor(i),
				StrokeWidth: s.LineWidth,
				LineCap:     LineCapRound,
				LineJoin:    LineJoinRound,
			},
		})
	}

	// 3) Bus labels: first stop, plus the far end of a non-roundtrip bus.
	for i, bus := range buses {
		first, last := bus.Stops[0], bus.Stops[len(bus.Stops)-1]
		s.addLabel(doc, s.busLabel(at(first), bus.Name, s.paletteColor(i)))
		if !bus.Roundtrip && first != last {
			s.addLabel(doc, s.busLabel(at(last), bus.Name, s.paletteColor(i)))
		}
	}

	// 4) Stop circles.
	for _, st := range stops {
		doc.Add(Circle{
			Center:    proj.Project(st.Coordinates),
			Radius:    s.StopRadius,
			PathProps: PathProps{Fill: stopFill},
		})
	}

	// 5) Stop labels.
	for _, st := range stops {
		s.addLabel(doc, Text{
			Position:   proj.Project(st.Coordinates),
			Offset:     s.StopLabelOffset,
			FontSize:   s.StopLabelFontSize,
			FontFamily: fontFamily,
			Data:       st.Name,
			PathProps:  PathProps{Fill: stopLabelFill},
		})
	}

	return doc
}

// paletteColor cycles through the palette; an empty palette draws nothing.
func (s Settings) paletteColor(i int) Color {
	if len(s.ColorPalette) == 0 {
		return NoColor
	}

	return s.ColorPalette[i%len(s.ColorPalette)]
}

func (s Settings) busLabel(pos Point, name string, fill Color) Text {
	return Text{
		Position:   pos,
		Offset:     s.BusLabelOffset,
		FontSize:   s.BusLabelFontSize,
		FontFamily: fontFamily,
		FontWeight: busFontWeight,
		Data:       name,
		PathProps:  PathProps{Fill: fill},
	}
}

// addLabel adds the underlayer copy of label, then label itself.
func (s Settings) addLabel(doc *Document, label Text) {
	under := label
	under.PathProps = PathProps{
		Fill:        s.UnderlayerColor,
		Stroke:      s.UnderlayerColor,
		StrokeWidth: s.UnderlayerWidth,
		LineCap:     LineCapRound,
		LineJoin:    LineJoinRound,
	}
	doc.Add(under)
	doc.Add(label)
}
