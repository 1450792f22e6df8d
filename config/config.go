// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/transport-catalogue/transit"
)

// ErrInvalid indicates a configuration that failed validation.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the root configuration document.
type Config struct {
	Routing       Routing       `yaml:"routing"`
	Serialization Serialization `yaml:"serialization"`
	Server        Server        `yaml:"server"`
	Log           Log           `yaml:"log"`
}

// Routing holds the routing settings.
type Routing struct {
	BusWaitTime float64 `yaml:"bus_wait_time" validate:"gte=0,lte=1000"`
	BusVelocity float64 `yaml:"bus_velocity" validate:"gt=0,lte=1000"`
}

// Settings converts r into transit settings.
func (r Routing) Settings() transit.Settings {
	return transit.Settings{BusWaitTime: r.BusWaitTime, BusVelocity: r.BusVelocity}
}

// Serialization locates the catalogue snapshot.
type Serialization struct {
	File string `yaml:"file" validate:"required"`
}

// Server configures the HTTP surface.
type Server struct {
	Addr           string   `yaml:"addr" validate:"required"`
	AllowedOrigins []string `yaml:"allowed_origins" validate:"dive,required"`
}

// Log configures the process logger.
type Log struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Default returns the configuration used for absent keys.
func Default() Config {
	return Config{
		Routing:       Routing{BusWaitTime: 6, BusVelocity: 40},
		Serialization: Serialization{File: "transport_catalogue.db"},
		Server:        Server{Addr: ":8080", AllowedOrigins: []string{"*"}},
		Log:           Log{Level: "info", Format: "text"},
	}
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes data over Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field constraint.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// SlogLevel maps the configured level name to a slog level.
func (l Log) SlogLevel() slog.Level {
	switch l.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds a logger writing to w in the configured format.
func (l Log) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: l.SlogLevel()}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
