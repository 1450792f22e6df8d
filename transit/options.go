// SPDX-License-Identifier: MIT

package transit

import (
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/transport-catalogue/router"
)

// Option customizes Build.
type Option func(*buildConfig)

type buildConfig struct {
	logger        *slog.Logger
	zeroMissing   bool
	routerOptions []router.Option
}

func defaultBuildConfig() buildConfig {
	return buildConfig{logger: slog.Default()}
}

// WithLogger sets the logger used for build diagnostics.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("transit: WithLogger(nil)")
	}
	return func(c *buildConfig) {
		c.logger = l
	}
}

// WithZeroMissingDistance treats a segment without a road distance as 0 m
// instead of failing the build. Each such segment is logged as a warning.
func WithZeroMissingDistance() Option {
	return func(c *buildConfig) {
		c.zeroMissing = true
	}
}

// WithStrategy selects the all-pairs algorithm of the underlying solver.
func WithStrategy(s router.Strategy) Option {
	return func(c *buildConfig) {
		c.routerOptions = append(c.routerOptions, router.WithStrategy(s))
	}
}
