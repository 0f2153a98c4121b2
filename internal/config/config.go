// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package config handles bqschema project configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// FileName is the default configuration file name.
const FileName = "bqschema.yaml"

// Defaults applied by Resolve when a value is not set.
const (
	DefaultFormat    = "json"
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "console"
)

// Config represents the bqschema.yaml configuration file.
type Config struct {
	Version int    `yaml:"version"`
	Format  string `yaml:"format,omitempty"`
	Output  string `yaml:"output,omitempty"`
	Log     Log    `yaml:"log,omitempty"`
}

// Log configures diagnostic logging.
type Log struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{Version: CurrentConfigVersion}
	cfg.Resolve()
	return cfg
}

// Load reads a Config from a file path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Resolve fills unset values with their defaults.
func (c *Config) Resolve() {
	if c.Format == "" {
		c.Format = DefaultFormat
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("invalid log format %q", c.Log.Format)
	}
	return nil
}
