// SPDX-License-Identifier: MIT

// Package serialization stores a catalogue with its routing and render
// settings as a protobuf-encoded binary snapshot.
//
// The layout is snapshot.proto in this directory. The codec works on
// dynamicpb messages of the descriptor returned by Schema, so no generated
// code is checked in. Stops are referenced by their position in the stops
// list. Fields unknown to the schema are skipped on load, and every
// reference is checked before the catalogue is rebuilt. The routing graph
// is not stored; callers rebuild it with transit.Build after Load.
package serialization
