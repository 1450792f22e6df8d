// SPDX-License-Identifier: MIT

package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/transport-catalogue/config"
	"github.com/katalvlaran/transport-catalogue/transit"
)

func TestDefault_IsValid(t *testing.T) {
	require.NoError(t, config.Default().Validate())
}

func TestParse_OverridesDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte(`
routing:
  bus_wait_time: 2
  bus_velocity: 30
log:
  level: debug
  format: json
`))
	require.NoError(t, err)

	assert.Equal(t, transit.Settings{BusWaitTime: 2, BusVelocity: 30}, cfg.Routing.Settings())
	assert.Equal(t, "transport_catalogue.db", cfg.Serialization.File, "untouched keys keep defaults")
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
}

func TestParse_Empty(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"zero velocity":     "routing: {bus_velocity: 0}",
		"negative wait":     "routing: {bus_wait_time: -1}",
		"too slow a bus":    "routing: {bus_velocity: 1001}",
		"empty file":        "serialization: {file: ''}",
		"unknown log level": "log: {level: loud}",
		"unknown format":    "log: {format: xml}",
		"empty origin":      "server: {allowed_origins: ['']}",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(doc))
			require.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestParse_BadYAML(t *testing.T) {
	_, err := config.Parse([]byte("routing: [1, 2"))
	require.Error(t, err)
	require.NotErrorIs(t, err, config.ErrInvalid)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("server: {addr: ':9090'}\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Addr)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLog_NewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := config.Log{Level: "warn", Format: "json"}.NewLogger(&buf)

	logger.Info("dropped")
	logger.Warn("kept", slog.String("k", "v"))

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, `"msg":"kept"`)
	assert.Contains(t, out, `"k":"v"`)
}
