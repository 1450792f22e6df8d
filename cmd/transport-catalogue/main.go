// SPDX-License-Identifier: MIT

// Command transport-catalogue builds and queries catalogue snapshots.
//
//	transport-catalogue make_base        < base.json
//	transport-catalogue process_requests < requests.json > answers.json
//
// make_base reads base_requests, routing_settings, render_settings and
// serialization_settings and writes the snapshot file. process_requests
// reads the snapshot named by serialization_settings and answers
// stat_requests on stdout.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/exp/slog"

	"github.com/katalvlaran/transport-catalogue/catalogue"
	"github.com/katalvlaran/transport-catalogue/config"
	"github.com/katalvlaran/transport-catalogue/requests"
	"github.com/katalvlaran/transport-catalogue/serialization"
	"github.com/katalvlaran/transport-catalogue/transit"
)

var errUsage = errors.New("usage: transport-catalogue [make_base|process_requests]")

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	if err := run(os.Args[1:], os.Stdin, os.Stdout, logger); err != nil {
		logger.Error("transport-catalogue failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	if len(args) != 1 {
		return errUsage
	}

	doc, err := requests.Parse(stdin)
	if err != nil {
		return err
	}
	if doc.SerializationSettings == nil {
		return errors.New("serialization_settings.file is required")
	}
	file := doc.SerializationSettings.File

	switch args[0] {
	case "make_base":
		return makeBase(doc, file, logger)
	case "process_requests":
		return processRequests(doc, file, stdout, logger)
	default:
		return fmt.Errorf("%w: unknown mode %q", errUsage, args[0])
	}
}

func makeBase(doc requests.Document, file string, logger *slog.Logger) error {
	c := catalogue.New()
	if err := requests.Fill(c, doc.BaseRequests); err != nil {
		return err
	}

	settings := config.Default().Routing.Settings()
	if doc.RoutingSettings != nil {
		settings = doc.RoutingSettings.Settings()
	}

	snap := serialization.Snapshot{Catalogue: c, Settings: settings, Render: doc.RenderSettings}
	if err := serialization.SaveFile(file, snap); err != nil {
		return err
	}
	logger.Info("snapshot written",
		slog.String("file", file),
		slog.Int("stops", c.StopCount()),
		slog.Int("buses", c.BusCount()),
		slog.Bool("map", snap.Render != nil),
	)

	return nil
}

func processRequests(doc requests.Document, file string, stdout io.Writer, logger *slog.Logger) error {
	snap, err := serialization.LoadFile(file)
	if err != nil {
		return err
	}

	r, err := transit.Build(snap.Catalogue, snap.Settings, transit.WithLogger(logger))
	if err != nil {
		return err
	}

	h := requests.NewHandler(snap.Catalogue, r, requests.WithRenderSettings(snap.Render))

	return requests.Encode(stdout, h.Process(doc.StatRequests))
}
