// SPDX-License-Identifier: MIT

// Command transportd serves a catalogue snapshot over HTTP.
//
// Environment (a .env file in the working directory is loaded first):
//
//	TRANSPORT_CONFIG  path of the YAML configuration (optional)
//	TRANSPORT_ADDR    listen address, overrides server.addr
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/transport-catalogue/config"
	"github.com/katalvlaran/transport-catalogue/serialization"
	"github.com/katalvlaran/transport-catalogue/server"
	"github.com/katalvlaran/transport-catalogue/transit"
)

func main() {
	// a missing .env is fine
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Getenv, os.Stderr); err != nil {
		slog.Error("transportd failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// loadConfig reads TRANSPORT_CONFIG (or defaults) and applies TRANSPORT_ADDR.
func loadConfig(getenv func(string) string) (config.Config, error) {
	cfg := config.Default()
	if path := getenv("TRANSPORT_CONFIG"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return config.Config{}, err
		}
	}
	if addr := getenv("TRANSPORT_ADDR"); addr != "" {
		cfg.Server.Addr = addr
	}

	return cfg, nil
}

// settingsFor prefers the settings stored in the snapshot; a snapshot
// without a usable velocity falls back to the configured routing.
func settingsFor(snap serialization.Snapshot, cfg config.Config) transit.Settings {
	if snap.Settings.BusVelocity > 0 {
		return snap.Settings
	}

	return cfg.Routing.Settings()
}

func run(ctx context.Context, getenv func(string) string, logOut io.Writer) error {
	cfg, err := loadConfig(getenv)
	if err != nil {
		return err
	}
	logger := cfg.Log.NewLogger(logOut)

	snap, err := serialization.LoadFile(cfg.Serialization.File)
	if err != nil {
		return err
	}

	r, err := transit.Build(snap.Catalogue, settingsFor(snap, cfg), transit.WithLogger(logger))
	if err != nil {
		return err
	}

	srv := server.New(snap.Catalogue, r,
		server.WithLogger(logger),
		server.WithAllowedOrigins(cfg.Server.AllowedOrigins...),
		server.WithRenderSettings(snap.Render),
	)

	return srv.ListenAndServe(ctx, cfg.Server.Addr)
}
