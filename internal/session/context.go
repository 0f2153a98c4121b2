// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package session provides configuration and logger loading for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dacolabs/bqschema/internal/config"
	"github.com/dacolabs/bqschema/internal/logger"
	"github.com/rs/zerolog"
)

var (
	// ErrConfigNotFound indicates an explicitly requested config file does not exist.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrInvalidConfig indicates the config file exists but is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Options are the global command-line settings that shape a session.
// Empty values leave the config file (or the defaults) in charge.
type Options struct {
	ConfigPath string
	LogLevel   string
	LogFormat  string
	LogOutput  io.Writer
}

// Context holds the resolved configuration and the logger built from it.
type Context struct {
	// Config is the fully resolved configuration (defaults and flags applied).
	Config *config.Config

	// ConfigPath is the file the configuration was read from, if any.
	ConfigPath string

	Log zerolog.Logger
}

// Load resolves the configuration and returns a new context.Context with
// the session Context and its logger stored in it.
//
// Without an explicit path, bqschema.yaml in the current directory is used
// when present; otherwise defaults apply.
func Load(ctx context.Context, opts Options) (context.Context, error) {
	path := opts.ConfigPath
	explicit := path != ""
	if !explicit {
		path = config.FileName
	}

	var cfg *config.Config
	if _, statErr := os.Stat(path); statErr == nil {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		if err := loaded.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		cfg = loaded
	} else if explicit {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	} else {
		cfg = &config.Config{Version: config.CurrentConfigVersion}
		path = ""
	}

	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if opts.LogFormat != "" {
		cfg.Log.Format = opts.LogFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	cfg.Resolve()

	log := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: opts.LogOutput,
	})
	if path != "" {
		log.Debug().Str("config", path).Msg("loaded configuration")
	}

	s := &Context{Config: cfg, ConfigPath: path, Log: log}
	ctx = context.WithValue(ctx, contextKey{}, s)
	return logger.WithContext(ctx, log), nil
}

// From extracts the session Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if ctx == nil {
		return nil
	}
	s, _ := ctx.Value(contextKey{}).(*Context)
	return s
}
