// SPDX-License-Identifier: MIT

package serialization

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"

	"github.com/katalvlaran/transport-catalogue/render"
)

// encodeSnapshot builds the Snapshot message and marshals it
// deterministically, so equal snapshots produce equal bytes.
func encodeSnapshot(s Snapshot) ([]byte, error) {
	d := schema
	m := dynamicpb.NewMessage(d.snapshot)

	// 1) Stops, in id order.
	stops := m.Mutable(fieldOf(d.snapshot, "stops")).List()
	for _, st := range s.Catalogue.Stops() {
		sm := stops.NewElement().Message()
		sm.Set(fieldOf(d.stop, "id"), protoreflect.ValueOfUint32(uint32(st.ID)))
		sm.Set(fieldOf(d.stop, "name"), protoreflect.ValueOfString(st.Name))
		sm.Set(fieldOf(d.stop, "latitude"), protoreflect.ValueOfFloat64(st.Coordinates.Lat))
		sm.Set(fieldOf(d.stop, "longitude"), protoreflect.ValueOfFloat64(st.Coordinates.Lng))
		stops.Append(protoreflect.ValueOfMessage(sm))
	}

	// 2) Buses reference stops by position.
	buses := m.Mutable(fieldOf(d.snapshot, "buses")).List()
	for _, bus := range s.Catalogue.Buses() {
		bm := buses.NewElement().Message()
		bm.Set(fieldOf(d.bus, "name"), protoreflect.ValueOfString(bus.Name))
		ids := bm.Mutable(fieldOf(d.bus, "stops")).List()
		for _, id := range bus.Stops {
			ids.Append(protoreflect.ValueOfUint32(uint32(id)))
		}
		bm.Set(fieldOf(d.bus, "is_roundtrip"), protoreflect.ValueOfBool(bus.Roundtrip))
		buses.Append(protoreflect.ValueOfMessage(bm))
	}

	// 3) Declared distances only; reverse fallbacks are not materialized.
	distances := m.Mutable(fieldOf(d.snapshot, "distances")).List()
	for _, e := range s.Catalogue.Distances() {
		dm := distances.NewElement().Message()
		dm.Set(fieldOf(d.distance, "start"), protoreflect.ValueOfUint32(uint32(e.From)))
		dm.Set(fieldOf(d.distance, "end"), protoreflect.ValueOfUint32(uint32(e.To)))
		dm.Set(fieldOf(d.distance, "meters"), protoreflect.ValueOfUint32(uint32(e.Meters)))
		distances.Append(protoreflect.ValueOfMessage(dm))
	}

	// 4) Settings.
	rm := m.Mutable(fieldOf(d.snapshot, "routing_settings")).Message()
	rm.Set(fieldOf(d.routing, "bus_wait_time"), protoreflect.ValueOfFloat64(s.Settings.BusWaitTime))
	rm.Set(fieldOf(d.routing, "bus_velocity"), protoreflect.ValueOfFloat64(s.Settings.BusVelocity))

	if s.Render != nil {
		encodeRender(m.Mutable(fieldOf(d.snapshot, "render_settings")).Message(), *s.Render)
	}

	b, err := proto.MarshalOptions{Deterministic: true}.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("serialization: marshal: %w", err)
	}

	return b, nil
}

func encodeRender(m protoreflect.Message, rs render.Settings) {
	md := schema.render
	setDouble := func(name protoreflect.Name, v float64) {
		m.Set(fieldOf(md, name), protoreflect.ValueOfFloat64(v))
	}
	setOffset := func(name protoreflect.Name, p render.Point) {
		om := m.Mutable(fieldOf(md, name)).Message()
		om.Set(fieldOf(schema.offset, "dx"), protoreflect.ValueOfFloat64(p.X))
		om.Set(fieldOf(schema.offset, "dy"), protoreflect.ValueOfFloat64(p.Y))
	}

	setDouble("width", rs.Width)
	setDouble("height", rs.Height)
	setDouble("padding", rs.Padding)
	setDouble("line_width", rs.LineWidth)
	setDouble("stop_radius", rs.StopRadius)
	m.Set(fieldOf(md, "bus_label_font_size"), protoreflect.ValueOfUint32(uint32(rs.BusLabelFontSize)))
	setOffset("bus_label_offset", rs.BusLabelOffset)
	m.Set(fieldOf(md, "stop_label_font_size"), protoreflect.ValueOfUint32(uint32(rs.StopLabelFontSize)))
	setOffset("stop_label_offset", rs.StopLabelOffset)
	m.Set(fieldOf(md, "underlayer_color"), protoreflect.ValueOfString(string(rs.UnderlayerColor)))
	setDouble("underlayer_width", rs.UnderlayerWidth)

	palette := m.Mutable(fieldOf(md, "color_palette")).List()
	for _, c := range rs.ColorPalette {
		palette.Append(protoreflect.ValueOfString(string(c)))
	}
}
