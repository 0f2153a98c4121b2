// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package logger configures the CLI's diagnostic logging.
package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logger configuration.
type Config struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output io.Writer
}

// New creates a zerolog logger from cfg. A nil cfg logs warnings and
// above to stderr in console format.
func New(cfg *Config) zerolog.Logger {
	if cfg == nil {
		cfg = &Config{}
	}
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	if cfg.Format == "json" {
		return zerolog.New(out).
			Level(ParseLevel(cfg.Level)).
			With().Timestamp().Logger()
	}

	// Human-readable console output
	console := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.Kitchen,
	}
	return zerolog.New(console).
		Level(ParseLevel(cfg.Level)).
		With().Timestamp().Logger()
}

// ParseLevel maps a level name to a zerolog level.
// Unknown names fall back to warn.
func ParseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}

// WithContext stores l in ctx.
func WithContext(ctx context.Context, l zerolog.Logger) context.Context {
	return l.WithContext(ctx)
}

// FromContext returns the logger stored in ctx, or a disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}
