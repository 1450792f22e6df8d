// SPDX-License-Identifier: MIT

// Package render draws a catalogue's bus network as an SVG map.
//
// Stops served by at least one bus are projected onto a Width×Height canvas
// with a flat lat/lng projection that keeps the aspect ratio and leaves
// Padding on every side. The map is drawn in four layers, bottom to top:
//
//  1. one polyline per bus, in bus-name order, colored from ColorPalette;
//  2. bus name labels at the first stop, and at the last declared stop of a
//     non-roundtrip bus when it differs from the first;
//  3. a white circle per stop, in stop-name order;
//  4. stop name labels, in stop-name order.
//
// Every label is a text over an underlayer text of the same content.
package render
