// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package internal contains the main application logic for the CLI.
package internal

import (
	"context"

	"github.com/dacolabs/bqschema/internal/commands"
	"github.com/dacolabs/bqschema/internal/translate"
	"github.com/dacolabs/bqschema/internal/translate/bqjson"
	"github.com/dacolabs/bqschema/internal/translate/bqyaml"
	"github.com/dacolabs/bqschema/internal/translate/markdown"
	"github.com/dacolabs/bqschema/internal/translate/tree"
)

// Translators returns every output format the CLI supports.
func Translators() translate.Register {
	translators := make(translate.Register)
	translators["json"] = &bqjson.Translator{}
	translators["yaml"] = &bqyaml.Translator{}
	translators["markdown"] = &markdown.Translator{}
	translators["tree"] = &tree.Translator{}
	return translators
}

// Run is the main application logic, extracted for testability.
// It accepts OS dependencies as parameters (context, arguments).
func Run(ctx context.Context, args []string) error {
	rootCmd := commands.NewRootCmd(Translators())
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}
