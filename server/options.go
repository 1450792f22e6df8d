// SPDX-License-Identifier: MIT

package server

import (
	"time"

	"golang.org/x/exp/slog"

	"github.com/katalvlaran/transport-catalogue/render"
)

// Option customizes New.
type Option func(*Server)

// WithLogger sets the request and lifecycle logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("server: WithLogger(nil)")
	}
	return func(s *Server) {
		s.logger = l
	}
}

// WithAllowedOrigins sets the CORS origins; the default is "*".
func WithAllowedOrigins(origins ...string) Option {
	return func(s *Server) {
		s.origins = append([]string(nil), origins...)
	}
}

// WithShutdownTimeout bounds graceful shutdown in ListenAndServe.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) {
		s.shutdownTimeout = d
	}
}

// WithRenderSettings enables GET /map and Map stat requests.
func WithRenderSettings(rs *render.Settings) Option {
	return func(s *Server) {
		s.render = rs
	}
}
