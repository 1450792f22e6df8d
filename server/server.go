// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/transport-catalogue/catalogue"
	"github.com/katalvlaran/transport-catalogue/render"
	"github.com/katalvlaran/transport-catalogue/requests"
	"github.com/katalvlaran/transport-catalogue/transit"
)

// Server serves one immutable catalogue snapshot.
type Server struct {
	catalogue *catalogue.Catalogue
	handler   *requests.Handler
	render    *render.Settings

	logger          *slog.Logger
	origins         []string
	shutdownTimeout time.Duration
	started         time.Time
}

// New returns a server over c and its router. r may be nil, which disables
// routing answers.
func New(c *catalogue.Catalogue, r *transit.Router, opts ...Option) *Server {
	s := &Server{
		catalogue:       c,
		logger:          slog.Default(),
		origins:         []string{"*"},
		shutdownTimeout: 5 * time.Second,
		started:         time.Now(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.handler = requests.NewHandler(c, r, requests.WithRenderSettings(s.render))

	return s
}

// Routes builds the HTTP handler.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", s.health)
	r.Get("/buses/{name}", s.bus)
	r.Get("/stops/{name}", s.stop)
	r.Get("/route", s.route)
	r.Get("/map", s.svgMap)
	r.Post("/stat", s.stat)

	return r
}

// ListenAndServe serves on addr until ctx is done, then shuts down
// gracefully. A clean shutdown returns nil.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	shutdownErr := make(chan error, 1)
	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		shutdownErr <- srv.Shutdown(sctx)
	}()

	s.logger.Info("server listening", slog.String("addr", addr))
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: %w", err)
	}
	if err := <-shutdownErr; err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	s.logger.Info("server stopped")

	return nil
}

// logRequests writes one record per request after it completes.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		s.logger.Info("request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("elapsed", time.Since(start)),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}
