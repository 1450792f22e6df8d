// SPDX-License-Identifier: MIT

package server

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/transport-catalogue/requests"
)

// maxStatBody caps the POST /stat body.
const maxStatBody = 1 << 20

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Stops     int       `json:"stops"`
	Buses     int       `json:"buses"`
	Uptime    string    `json:"uptime"`
	Timestamp time.Time `json:"timestamp"`
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Stops:     s.catalogue.StopCount(),
		Buses:     s.catalogue.BusCount(),
		Uptime:    time.Since(s.started).Round(time.Second).String(),
		Timestamp: time.Now().UTC(),
	})
}

func (s *Server) bus(w http.ResponseWriter, r *http.Request) {
	s.writeResponse(w, s.handler.Bus(0, chi.URLParam(r, "name")))
}

func (s *Server) stop(w http.ResponseWriter, r *http.Request) {
	s.writeResponse(w, s.handler.Stop(0, chi.URLParam(r, "name")))
}

func (s *Server) route(w http.ResponseWriter, r *http.Request) {
	from, to := r.URL.Query().Get("from"), r.URL.Query().Get("to")
	if from == "" || to == "" {
		s.writeJSON(w, http.StatusBadRequest, requests.ErrorResponse{ErrorMessage: "from and to are required"})
		return
	}
	s.writeResponse(w, s.handler.Route(0, from, to))
}

// svgMap serves the rendered map as an SVG document.
func (s *Server) svgMap(w http.ResponseWriter, _ *http.Request) {
	svg, ok := s.handler.MapSVG()
	if !ok {
		s.writeJSON(w, http.StatusNotFound, requests.ErrorResponse{ErrorMessage: requests.MessageNotFound})
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, svg); err != nil {
		s.logger.Error("write map", slog.String("error", err.Error()))
	}
}

// stat answers a JSON array of stat requests.
func (s *Server) stat(w http.ResponseWriter, r *http.Request) {
	var batch []requests.StatRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxStatBody))
	if err := dec.Decode(&batch); err != nil {
		s.writeJSON(w, http.StatusBadRequest, requests.ErrorResponse{ErrorMessage: "malformed body: " + err.Error()})
		return
	}
	v := validator.New()
	for _, req := range batch {
		if err := v.Struct(req); err != nil {
			s.writeJSON(w, http.StatusBadRequest, requests.ErrorResponse{ID: req.ID, ErrorMessage: err.Error()})
			return
		}
	}

	s.writeJSON(w, http.StatusOK, s.handler.Process(batch))
}

// writeResponse maps an ErrorResponse to 404 and anything else to 200.
func (s *Server) writeResponse(w http.ResponseWriter, resp requests.Response) {
	status := http.StatusOK
	if _, failed := resp.(requests.ErrorResponse); failed {
		status = http.StatusNotFound
	}
	s.writeJSON(w, status, resp)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		s.logger.Error("encode response", slog.String("error", err.Error()))
	}
}
