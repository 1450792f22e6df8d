// SPDX-License-Identifier: MIT

// Package server exposes catalogue and routing queries over HTTP.
//
//	GET  /health                 liveness and catalogue size
//	GET  /buses/{name}           bus statistics
//	GET  /stops/{name}           buses serving a stop
//	GET  /route?from=..&to=..    fastest itinerary
//	POST /stat                   batch of stat requests, answered in order
//
// Bodies are the JSON shapes of package requests. Unknown buses, stops and
// unroutable pairs answer 404 with an error_message body.
package server
