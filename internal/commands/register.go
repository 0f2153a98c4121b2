// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/dacolabs/bqschema/internal/session"
	"github.com/dacolabs/bqschema/internal/translate"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd(translators translate.Register) *cobra.Command {
	opts := &session.Options{}

	rootCmd := &cobra.Command{
		Use:   "bqschema",
		Short: "Translate JSON Schema documents into BigQuery table schemas",
		Long: `Translate JSON Schema documents into BigQuery table schemas.

Settings are read from bqschema.yaml in the current directory when present.
Command-line flags take precedence over the config file.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: session.PreRunLoad(opts),
	}

	rootCmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "Config file (default: ./bqschema.yaml)")
	rootCmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&opts.LogFormat, "log-format", "", "Log format (console, json)")

	rootCmd.AddCommand(newTranslateCmd(translators))
	rootCmd.AddCommand(newShowCmd(translators))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
