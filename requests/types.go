// SPDX-License-Identifier: MIT

package requests

import (
	"errors"

	"github.com/katalvlaran/transport-catalogue/render"
	"github.com/katalvlaran/transport-catalogue/transit"
)

// ErrInvalidDocument indicates a request document that failed decoding or
// validation.
var ErrInvalidDocument = errors.New("requests: invalid document")

// Request and item type names.
const (
	TypeStop  = "Stop"
	TypeBus   = "Bus"
	TypeRoute = "Route"
	TypeMap   = "Map"
	TypeWait  = "Wait"
)

// Error messages of ErrorResponse.
const (
	MessageNotFound    = "not found"
	MessageUnsupported = "unsupported request type"
)

// Document is the whole request document.
type Document struct {
	BaseRequests          []BaseRequest          `json:"base_requests" validate:"dive"`
	RoutingSettings       *RoutingSettings       `json:"routing_settings,omitempty"`
	SerializationSettings *SerializationSettings `json:"serialization_settings,omitempty"`
	StatRequests          []StatRequest          `json:"stat_requests" validate:"dive"`
	RenderSettings        *render.Settings       `json:"render_settings,omitempty"`
}

// BaseRequest declares one stop or one bus.
type BaseRequest struct {
	Type string `json:"type" validate:"oneof=Stop Bus"`
	Name string `json:"name" validate:"required"`

	// Stop fields.
	Latitude      float64        `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude     float64        `json:"longitude" validate:"gte=-180,lte=180"`
	RoadDistances map[string]int `json:"road_distances,omitempty" validate:"dive,keys,required,endkeys,gte=0"`

	// Bus fields.
	Stops       []string `json:"stops,omitempty" validate:"dive,required"`
	IsRoundtrip bool     `json:"is_roundtrip,omitempty"`
}

// RoutingSettings mirrors transit.Settings in the document.
type RoutingSettings struct {
	BusWaitTime float64 `json:"bus_wait_time" validate:"gte=0,lte=1000"`
	BusVelocity float64 `json:"bus_velocity" validate:"gt=0,lte=1000"`
}

// Settings converts s into transit settings.
func (s RoutingSettings) Settings() transit.Settings {
	return transit.Settings{BusWaitTime: s.BusWaitTime, BusVelocity: s.BusVelocity}
}

// SerializationSettings locates the catalogue snapshot.
type SerializationSettings struct {
	File string `json:"file" validate:"required"`
}

// StatRequest asks one question about the catalogue.
type StatRequest struct {
	ID   int    `json:"id"`
	Type string `json:"type" validate:"required"`
	Name string `json:"name,omitempty"`
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

// Response is the answer to one StatRequest.
type Response interface {
	RequestID() int
}

// BusResponse answers a Bus request.
type BusResponse struct {
	ID              int     `json:"request_id"`
	Curvature       float64 `json:"curvature"`
	RouteLength     int     `json:"route_length"`
	StopCount       int     `json:"stop_count"`
	UniqueStopCount int     `json:"unique_stop_count"`
}

// StopResponse answers a Stop request. Buses is sorted and never null.
type StopResponse struct {
	ID    int      `json:"request_id"`
	Buses []string `json:"buses"`
}

// RouteResponse answers a Route request.
type RouteResponse struct {
	ID        int         `json:"request_id"`
	TotalTime float64     `json:"total_time"`
	Items     []RouteItem `json:"items"`
}

// RouteItem is one leg of a RouteResponse: Type is TypeWait or TypeBus.
type RouteItem struct {
	Type      string  `json:"type"`
	StopName  string  `json:"stop_name,omitempty"`
	Bus       string  `json:"bus,omitempty"`
	SpanCount int     `json:"span_count,omitempty"`
	Time      float64 `json:"time"`
}

// MapResponse answers a Map request with the whole SVG document.
type MapResponse struct {
	ID  int    `json:"request_id"`
	Map string `json:"map"`
}

// ErrorResponse answers any request that cannot be satisfied.
type ErrorResponse struct {
	ID           int    `json:"request_id"`
	ErrorMessage string `json:"error_message"`
}

// RequestID implements Response.
func (r BusResponse) RequestID() int { return r.ID }

// RequestID implements Response.
func (r StopResponse) RequestID() int { return r.ID }

// RequestID implements Response.
func (r RouteResponse) RequestID() int { return r.ID }

// RequestID implements Response.
func (r MapResponse) RequestID() int { return r.ID }

// RequestID implements Response.
func (r ErrorResponse) RequestID() int { return r.ID }
