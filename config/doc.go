// SPDX-License-Identifier: MIT

// Package config loads the YAML configuration shared by the binaries.
//
// Missing keys keep the values of Default. The merged document is checked
// with struct tags (go-playground/validator); any violation is reported as
// ErrInvalid.
//
//	routing:
//	  bus_wait_time: 6      # minutes, 0..1000
//	  bus_velocity: 40      # km/h, (0..1000]
//	serialization:
//	  file: transport_catalogue.db
//	server:
//	  addr: ":8080"
//	  allowed_origins: ["*"]
//	log:
//	  level: info           # debug | info | warn | error
//	  format: text          # text | json
package config
