// SPDX-License-Identifier: MIT

package requests

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/transport-catalogue/catalogue"
	"github.com/katalvlaran/transport-catalogue/geo"
)

// Parse decodes and validates a document.
func Parse(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if err := doc.Validate(); err != nil {
		return Document{}, err
	}

	return doc, nil
}

// Validate checks every field constraint of d, including the render
// settings when present.
func (d Document) Validate() error {
	if err := validator.New().Struct(d); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if d.RenderSettings != nil {
		if err := d.RenderSettings.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
		}
	}

	return nil
}

// Fill loads base requests into c: all stops, then their road distances,
// then the buses, so forward references between requests resolve.
func Fill(c *catalogue.Catalogue, base []BaseRequest) error {
	for _, req := range base {
		if req.Type != TypeStop {
			continue
		}
		coords := geo.Coordinates{Lat: req.Latitude, Lng: req.Longitude}
		if _, err := c.AddStop(req.Name, coords); err != nil {
			return fmt.Errorf("requests: stop %q: %w", req.Name, err)
		}
	}

	for _, req := range base {
		if req.Type != TypeStop {
			continue
		}
		// map order is random; sort for reproducible errors
		to := make([]string, 0, len(req.RoadDistances))
		for name := range req.RoadDistances {
			to = append(to, name)
		}
		slices.Sort(to)
		for _, name := range to {
			if err := c.SetDistance(req.Name, name, req.RoadDistances[name]); err != nil {
				return fmt.Errorf("requests: distance %q→%q: %w", req.Name, name, err)
			}
		}
	}

	for _, req := range base {
		if req.Type != TypeBus {
			continue
		}
		if _, err := c.AddBus(req.Name, req.Stops, req.IsRoundtrip); err != nil {
			return fmt.Errorf("requests: bus %q: %w", req.Name, err)
		}
	}

	return nil
}

// Encode writes responses to w as an indented JSON array. Markup inside
// map answers is written verbatim.
func Encode(w io.Writer, responses []Response) error {
	if responses == nil {
		responses = []Response{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(responses); err != nil {
		return fmt.Errorf("requests: encode: %w", err)
	}

	return nil
}
