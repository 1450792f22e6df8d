// SPDX-License-Identifier: MIT

package serialization

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"

	"github.com/katalvlaran/transport-catalogue/catalogue"
	"github.com/katalvlaran/transport-catalogue/geo"
	"github.com/katalvlaran/transport-catalogue/render"
	"github.com/katalvlaran/transport-catalogue/transit"
)

type stopRecord struct {
	name     string
	lat, lng float64
}

type busRecord struct {
	name      string
	stops     []uint64
	roundtrip bool
}

type distanceRecord struct {
	start, end, meters uint64
}

// decodeSnapshot unmarshals data and replays it into a fresh catalogue.
// Fields unknown to the schema are ignored.
func decodeSnapshot(data []byte) (Snapshot, error) {
	d := schema
	m := dynamicpb.NewMessage(d.snapshot)
	if err := proto.Unmarshal(data, m); err != nil {
		return Snapshot{}, malformed(err)
	}

	var s Snapshot

	stops := eachMessage(m, fieldOf(d.snapshot, "stops"), func(sm protoreflect.Message) stopRecord {
		return stopRecord{
			name: sm.Get(fieldOf(d.stop, "name")).String(),
			lat:  sm.Get(fieldOf(d.stop, "latitude")).Float(),
			lng:  sm.Get(fieldOf(d.stop, "longitude")).Float(),
		}
	})
	buses := eachMessage(m, fieldOf(d.snapshot, "buses"), func(bm protoreflect.Message) busRecord {
		ids := bm.Get(fieldOf(d.bus, "stops")).List()
		rec := busRecord{
			name:      bm.Get(fieldOf(d.bus, "name")).String(),
			stops:     make([]uint64, ids.Len()),
			roundtrip: bm.Get(fieldOf(d.bus, "is_roundtrip")).Bool(),
		}
		for i := range rec.stops {
			rec.stops[i] = ids.Get(i).Uint()
		}
		return rec
	})
	distances := eachMessage(m, fieldOf(d.snapshot, "distances"), func(dm protoreflect.Message) distanceRecord {
		return distanceRecord{
			start:  dm.Get(fieldOf(d.distance, "start")).Uint(),
			end:    dm.Get(fieldOf(d.distance, "end")).Uint(),
			meters: dm.Get(fieldOf(d.distance, "meters")).Uint(),
		}
	})

	rm := m.Get(fieldOf(d.snapshot, "routing_settings")).Message()
	s.Settings = transit.Settings{
		BusWaitTime: rm.Get(fieldOf(d.routing, "bus_wait_time")).Float(),
		BusVelocity: rm.Get(fieldOf(d.routing, "bus_velocity")).Float(),
	}

	if fd := fieldOf(d.snapshot, "render_settings"); m.Has(fd) {
		rs := decodeRender(m.Get(fd).Message())
		if err := rs.Validate(); err != nil {
			return Snapshot{}, malformed(err)
		}
		s.Render = &rs
	}

	var err error
	s.Catalogue, err = buildCatalogue(stops, buses, distances)
	if err != nil {
		return Snapshot{}, err
	}

	return s, nil
}

// eachMessage converts every element of the repeated message field fd.
func eachMessage[T any](m protoreflect.Message, fd protoreflect.FieldDescriptor, fn func(protoreflect.Message) T) []T {
	list := m.Get(fd).List()
	out := make([]T, list.Len())
	for i := range out {
		out[i] = fn(list.Get(i).Message())
	}

	return out
}

func decodeRender(m protoreflect.Message) render.Settings {
	md := schema.render
	double := func(name protoreflect.Name) float64 { return m.Get(fieldOf(md, name)).Float() }
	offset := func(name protoreflect.Name) render.Point {
		om := m.Get(fieldOf(md, name)).Message()
		return render.Point{
			X: om.Get(fieldOf(schema.offset, "dx")).Float(),
			Y: om.Get(fieldOf(schema.offset, "dy")).Float(),
		}
	}

	rs := render.Settings{
		Width:             double("width"),
		Height:            double("height"),
		Padding:           double("padding"),
		LineWidth:         double("line_width"),
		StopRadius:        double("stop_radius"),
		BusLabelFontSize:  int(m.Get(fieldOf(md, "bus_label_font_size")).Uint()),
		BusLabelOffset:    offset("bus_label_offset"),
		StopLabelFontSize: int(m.Get(fieldOf(md, "stop_label_font_size")).Uint()),
		StopLabelOffset:   offset("stop_label_offset"),
		UnderlayerColor:   render.Color(m.Get(fieldOf(md, "underlayer_color")).String()),
		UnderlayerWidth:   double("underlayer_width"),
	}
	palette := m.Get(fieldOf(md, "color_palette")).List()
	for i := 0; i < palette.Len(); i++ {
		rs.ColorPalette = append(rs.ColorPalette, render.Color(palette.Get(i).String()))
	}

	return rs
}

// buildCatalogue replays the records in load order: stops, distances, buses.
func buildCatalogue(stops []stopRecord, buses []busRecord, distances []distanceRecord) (*catalogue.Catalogue, error) {
	c := catalogue.New()
	for _, st := range stops {
		if _, err := c.AddStop(st.name, geo.Coordinates{Lat: st.lat, Lng: st.lng}); err != nil {
			return nil, malformed(err)
		}
	}

	inRange := func(idx uint64) bool { return idx < uint64(len(stops)) }

	for _, d := range distances {
		if !inRange(d.start) || !inRange(d.end) {
			return nil, fmt.Errorf("%w: distance references stop %d→%d of %d", ErrMalformed, d.start, d.end, len(stops))
		}
		if d.meters > catalogue.MaxDistance {
			return nil, fmt.Errorf("%w: distance %d m is out of range", ErrMalformed, d.meters)
		}
		if err := c.SetDistanceByID(catalogue.StopID(d.start), catalogue.StopID(d.end), int(d.meters)); err != nil {
			return nil, malformed(err)
		}
	}

	for _, bus := range buses {
		names := make([]string, len(bus.stops))
		for i, idx := range bus.stops {
			if !inRange(idx) {
				return nil, fmt.Errorf("%w: bus %q references stop %d of %d", ErrMalformed, bus.name, idx, len(stops))
			}
			names[i] = stops[idx].name
		}
		if _, err := c.AddBus(bus.name, names, bus.roundtrip); err != nil {
			return nil, malformed(err)
		}
	}

	return c, nil
}

func malformed(err error) error {
	return fmt.Errorf("%w: %w", ErrMalformed, err)
}
