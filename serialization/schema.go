// SPDX-License-Identifier: MIT

package serialization

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
)

const protoPackage = "transport_catalogue"

// Schema returns the descriptor of snapshot.proto.
func Schema() protoreflect.FileDescriptor { return schema.file }

// schema caches the message and field descriptors used by the codec.
var schema = mustBuildSchema()

type schemaDescriptors struct {
	file protoreflect.FileDescriptor

	snapshot, stop, bus, distance, routing, offset, render protoreflect.MessageDescriptor
}

// fieldOf looks up a field of md by name; a miss is a programming error.
func fieldOf(md protoreflect.MessageDescriptor, name protoreflect.Name) protoreflect.FieldDescriptor {
	fd := md.Fields().ByName(name)
	if fd == nil {
		panic(fmt.Sprintf("serialization: %s has no field %q", md.FullName(), name))
	}
	return fd
}

func mustBuildSchema() schemaDescriptors {
	fd, err := protodesc.NewFile(snapshotFileProto(), nil)
	if err != nil {
		panic(fmt.Sprintf("serialization: snapshot schema: %v", err))
	}
	msg := func(name protoreflect.Name) protoreflect.MessageDescriptor {
		md := fd.Messages().ByName(name)
		if md == nil {
			panic(fmt.Sprintf("serialization: snapshot schema has no message %q", name))
		}
		return md
	}

	return schemaDescriptors{
		file:     fd,
		snapshot: msg("Snapshot"),
		stop:     msg("Stop"),
		bus:      msg("Bus"),
		distance: msg("Distance"),
		routing:  msg("RoutingSettings"),
		offset:   msg("Offset"),
		render:   msg("RenderSettings"),
	}
}

// snapshotFileProto mirrors snapshot.proto.
func snapshotFileProto() *descriptorpb.FileDescriptorProto {
	return &descriptorpb.FileDescriptorProto{
		Name:    proto.String("snapshot.proto"),
		Package: proto.String(protoPackage),
		Syntax:  proto.String("proto3"),
		Options: &descriptorpb.FileOptions{
			GoPackage: proto.String("github.com/katalvlaran/transport-catalogue/serialization"),
		},
		MessageType: []*descriptorpb.DescriptorProto{
			message("Snapshot",
				repeatedMessage("stops", 1, "Stop"),
				repeatedMessage("buses", 2, "Bus"),
				repeatedMessage("distances", 3, "Distance"),
				singleMessage("routing_settings", 4, "RoutingSettings"),
				singleMessage("render_settings", 5, "RenderSettings"),
			),
			message("Stop",
				scalar("id", 1, descriptorpb.FieldDescriptorProto_TYPE_UINT32),
				scalar("name", 2, descriptorpb.FieldDescriptorProto_TYPE_STRING),
				scalar("latitude", 3, descriptorpb.FieldDescriptorProto_TYPE_DOUBLE),
				scalar("longitude", 4, descriptorpb.FieldDescriptorProto_TYPE_DOUBLE),
			),
			message("Bus",
				scalar("name", 1, descriptorpb.FieldDescriptorProto_TYPE_STRING),
				repeatedScalar("stops", 2, descriptorpb.FieldDescriptorProto_TYPE_UINT32),
				scalar("is_roundtrip", 3, descriptorpb.FieldDescriptorProto_TYPE_BOOL),
			),
			message("Distance",
				scalar("start", 1, descriptorpb.FieldDescriptorProto_TYPE_UINT32),
				scalar("end", 2, descriptorpb.FieldDescriptorProto_TYPE_UINT32),
				scalar("meters", 3, descriptorpb.FieldDescriptorProto_TYPE_UINT32),
			),
			message("RoutingSettings",
				scalar("bus_wait_time", 1, descriptorpb.FieldDescriptorProto_TYPE_DOUBLE),
				scalar("bus_velocity", 2, descriptorpb.FieldDescriptorProto_TYPE_DOUBLE),
			),
			message("Offset",
				scalar("dx", 1, descriptorpb.FieldDescriptorProto_TYPE_DOUBLE),
				scalar("dy", 2, descriptorpb.FieldDescriptorProto_TYPE_DOUBLE),
			),
			message("RenderSettings",
				scalar("width", 1, descriptorpb.FieldDescriptorProto_TYPE_DOUBLE),
				scalar("height", 2, descriptorpb.FieldDescriptorProto_TYPE_DOUBLE),
				scalar("padding", 3, descriptorpb.FieldDescriptorProto_TYPE_DOUBLE),
				scalar("line_width", 4, descriptorpb.FieldDescriptorProto_TYPE_DOUBLE),
				scalar("stop_radius", 5, descriptorpb.FieldDescriptorProto_TYPE_DOUBLE),
				scalar("bus_label_font_size", 6, descriptorpb.FieldDescriptorProto_TYPE_UINT32),
				singleMessage("bus_label_offset", 7, "Offset"),
				scalar("stop_label_font_size", 8, descriptorpb.FieldDescriptorProto_TYPE_UINT32),
				singleMessage("stop_label_offset", 9, "Offset"),
				scalar("underlayer_color", 10, descriptorpb.FieldDescriptorProto_TYPE_STRING),
				scalar("underlayer_width", 11, descriptorpb.FieldDescriptorProto_TYPE_DOUBLE),
				repeatedScalar("color_palette", 12, descriptorpb.FieldDescriptorProto_TYPE_STRING),
			),
		},
	}
}

func message(name string, fields ...*descriptorpb.FieldDescriptorProto) *descriptorpb.DescriptorProto {
	return &descriptorpb.DescriptorProto{Name: proto.String(name), Field: fields}
}

func scalar(name string, num int32, typ descriptorpb.FieldDescriptorProto_Type) *descriptorpb.FieldDescriptorProto {
	return &descriptorpb.FieldDescriptorProto{
		Name:   proto.String(name),
		Number: proto.Int32(num),
		Label:  descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		Type:   typ.Enum(),
	}
}

func repeatedScalar(name string, num int32, typ descriptorpb.FieldDescriptorProto_Type) *descriptorpb.FieldDescriptorProto {
	f := scalar(name, num, typ)
	f.Label = descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum()
	return f
}

func singleMessage(name string, num int32, typeName string) *descriptorpb.FieldDescriptorProto {
	f := scalar(name, num, descriptorpb.FieldDescriptorProto_TYPE_MESSAGE)
	f.TypeName = proto.String("." + protoPackage + "." + typeName)
	return f
}

func repeatedMessage(name string, num int32, typeName string) *descriptorpb.FieldDescriptorProto {
	f := singleMessage(name, num, typeName)
	f.Label = descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum()
	return f
}
