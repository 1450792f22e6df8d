// SPDX-License-Identifier: MIT

// Package requests reads the JSON request document, fills a catalogue from
// its base requests and answers its stat requests.
//
// Document layout:
//
//	{
//	  "base_requests":          [{"type": "Stop", ...}, {"type": "Bus", ...}],
//	  "routing_settings":       {"bus_wait_time": 6, "bus_velocity": 40},
//	  "serialization_settings": {"file": "transport_catalogue.db"},
//	  "stat_requests":          [{"id": 1, "type": "Bus", "name": "750"}, ...]
//	}
//
// Stat request types are Bus, Stop and Route. Map requests are recognized
// and answered with MessageUnsupported.
package requests
