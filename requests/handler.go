// SPDX-License-Identifier: MIT

package requests

import (
	"sync"

	"github.com/katalvlaran/transport-catalogue/catalogue"
	"github.com/katalvlaran/transport-catalogue/render"
	"github.com/katalvlaran/transport-catalogue/transit"
)

// Handler answers stat requests against one catalogue snapshot.
// It is read-only and safe for concurrent use.
type Handler struct {
	catalogue *catalogue.Catalogue
	router    *transit.Router
	render    *render.Settings

	mapOnce sync.Once
	mapSVG  string
}

// HandlerOption customizes NewHandler.
type HandlerOption func(*Handler)

// WithRenderSettings enables Map answers. A nil s leaves them disabled.
func WithRenderSettings(s *render.Settings) HandlerOption {
	return func(h *Handler) {
		h.render = s
	}
}

// NewHandler returns a handler. router may be nil, in which case every
// Route request is answered with MessageNotFound. Without
// WithRenderSettings every Map request is answered with MessageNotFound.
func NewHandler(c *catalogue.Catalogue, router *transit.Router, opts ...HandlerOption) *Handler {
	h := &Handler{catalogue: c, router: router}
	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Process answers reqs in order.
func (h *Handler) Process(reqs []StatRequest) []Response {
	out := make([]Response, 0, len(reqs))
	for _, req := range reqs {
		out = append(out, h.Answer(req))
	}

	return out
}

// Answer answers a single request.
func (h *Handler) Answer(req StatRequest) Response {
	switch req.Type {
	case TypeBus:
		return h.Bus(req.ID, req.Name)
	case TypeStop:
		return h.Stop(req.ID, req.Name)
	case TypeRoute:
		return h.Route(req.ID, req.From, req.To)
	case TypeMap:
		return h.Map(req.ID)
	default:
		return ErrorResponse{ID: req.ID, ErrorMessage: MessageUnsupported}
	}
}

// Bus answers a Bus request for name.
func (h *Handler) Bus(id int, name string) Response {
	stat, ok := h.catalogue.BusStat(name)
	if !ok {
		return notFound(id)
	}

	return BusResponse{
		ID:              id,
		Curvature:       stat.Curvature,
		RouteLength:     stat.RouteLength,
		StopCount:       stat.StopCount,
		UniqueStopCount: stat.UniqueStopCount,
	}
}

// Stop answers a Stop request for name.
func (h *Handler) Stop(id int, name string) Response {
	stat, ok := h.catalogue.StopStat(name)
	if !ok {
		return notFound(id)
	}
	buses := stat.Buses
	if buses == nil {
		buses = []string{}
	}

	return StopResponse{ID: id, Buses: buses}
}

// Route answers a Route request between two stop names.
func (h *Handler) Route(id int, from, to string) Response {
	if h.router == nil {
		return notFound(id)
	}
	it, ok := h.router.Route(from, to)
	if !ok {
		return notFound(id)
	}

	items := make([]RouteItem, 0, len(it.Legs))
	for _, leg := range it.Legs {
		switch l := leg.(type) {
		case transit.WaitLeg:
			items = append(items, RouteItem{Type: TypeWait, StopName: l.StopName, Time: l.Time})
		case transit.RideLeg:
			items = append(items, RouteItem{Type: TypeBus, Bus: l.BusName, SpanCount: l.SpanCount, Time: l.Time})
		}
	}

	return RouteResponse{ID: id, TotalTime: it.TotalTime, Items: items}
}

// Map answers a Map request. The SVG is rendered once and reused.
func (h *Handler) Map(id int) Response {
	svg, ok := h.MapSVG()
	if !ok {
		return notFound(id)
	}

	return MapResponse{ID: id, Map: svg}
}

// MapSVG returns the rendered map; ok is false without render settings.
func (h *Handler) MapSVG() (string, bool) {
	if h.render == nil {
		return "", false
	}
	h.mapOnce.Do(func() {
		h.mapSVG = render.Map(h.catalogue, *h.render).String()
	})

	return h.mapSVG, true
}

func notFound(id int) Response {
	return ErrorResponse{ID: id, ErrorMessage: MessageNotFound}
}
