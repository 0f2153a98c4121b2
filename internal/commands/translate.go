// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"cloud.google.com/go/bigquery"
	"github.com/dacolabs/bqschema/bqschema"
	"github.com/dacolabs/bqschema/internal/prompts"
	"github.com/dacolabs/bqschema/internal/session"
	"github.com/dacolabs/bqschema/internal/translate"
	"github.com/dacolabs/bqschema/jschema"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// stdinPath selects standard input as the schema source.
const stdinPath = "-"

// inputBigQuery reads the input as a BigQuery JSON schema instead of a
// JSON Schema document.
const inputBigQuery = "bigquery"

type translateOptions struct {
	format      string
	output      string
	table       string
	inputFormat string
}

func newTranslateCmd(translators translate.Register) *cobra.Command {
	opts := &translateOptions{}

	cmd := &cobra.Command{
		Use:   "translate [file]",
		Short: "Translate a JSON Schema document to a BigQuery table schema",
		Long: fmt.Sprintf(`Translate a JSON Schema document to a BigQuery table schema.

The document root must be an object schema. Its properties become the
table's columns in declaration order. Files ending in .yaml or .yml are
read as YAML, everything else as JSON. Use "-" to read from stdin.

Available formats: %s`, strings.Join(translators.Available(), ", ")),
		Example: `  # Interactive mode
  bqschema translate

  # Print the BigQuery JSON schema
  bqschema translate schemas/order.json

  # Write YAML to a file
  bqschema translate schemas/order.yaml --format yaml -o order.bq.yaml

  # Read from stdin
  cat order.json | bqschema translate -

  # Render an existing BigQuery schema as markdown
  bqschema translate table.json --input-format bigquery --format markdown`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input string
			if len(args) > 0 {
				input = args[0]
			}
			return runTranslate(cmd, translators, input, opts)
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", "", fmt.Sprintf("Output format (%s)", strings.Join(translators.Available(), ", ")))
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringVar(&opts.table, "table", "", "Table name used by formats that label their output (default: file name)")
	cmd.Flags().StringVar(&opts.inputFormat, "input-format", "", "Input format (json, yaml, bigquery); default: by file extension, json for stdin")

	return cmd
}

func newShowCmd(translators translate.Register) *cobra.Command {
	opts := &translateOptions{format: "tree"}

	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Show the BigQuery table schema of a JSON Schema document as a tree",
		Example: `  bqschema show schemas/order.json`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(cmd, translators, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.table, "table", "", "Tree root label (default: file name)")
	cmd.Flags().StringVar(&opts.inputFormat, "input-format", "", "Input format (json, yaml, bigquery); default: by file extension")

	return cmd
}

func runTranslate(cmd *cobra.Command, translators translate.Register, input string, opts *translateOptions) error {
	ctx, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}
	log := ctx.Log

	format := opts.format
	if format == "" && !cmd.Flags().Changed("format") {
		format = ctx.Config.Format
	}
	output := opts.output
	if output == "" && cmd.Flags().Lookup("output") != nil && !cmd.Flags().Changed("output") {
		output = ctx.Config.Output
	}

	if input == "" {
		if !isInteractive(cmd.InOrStdin()) {
			return fmt.Errorf("no schema file given")
		}
		if !cmd.Flags().Changed("format") {
			format = ""
		}
		if err := prompts.RunTranslateForm(&input, &format, translators.Available()); err != nil {
			return err
		}
	}

	translator, err := translators.Get(format)
	if err != nil {
		return fmt.Errorf("unsupported format %q. Available formats: %s",
			format, strings.Join(translators.Available(), ", "))
	}

	schema, err := loadSchema(cmd.InOrStdin(), input, opts.inputFormat, log)
	if err != nil {
		return err
	}
	if err := schema.Validate(); err != nil {
		return fmt.Errorf("invalid table schema: %w", err)
	}

	table := opts.table
	if table == "" {
		table = tableName(input)
	}

	data, err := translator.Translate(table, schema)
	if err != nil {
		return fmt.Errorf("failed to render %s output: %w", format, err)
	}

	if output == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(output, data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}
	log.Debug().Str("output", output).Msg("wrote schema")

	prompts.PrintResult(cmd.OutOrStdout(), []prompts.ResultField{
		{Label: "Input", Value: input},
		{Label: "Format", Value: format},
		{Label: "Columns", Value: strconv.Itoa(len(schema.Fields))},
		{Label: "Output", Value: output},
	}, "Schema translated successfully!")
	return nil
}

// loadSchema reads the input as a JSON Schema document and translates it,
// or, for the "bigquery" input format, reads an existing BigQuery JSON
// schema as is.
func loadSchema(stdin io.Reader, input, inputFormat string, log zerolog.Logger) (*bqschema.TableSchema, error) {
	if inputFormat == inputBigQuery {
		data, err := readInput(stdin, input)
		if err != nil {
			return nil, err
		}
		fields, err := bigquery.SchemaFromJSON(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse BigQuery schema: %w", err)
		}
		log.Debug().Str("input", input).Int("fields", len(fields)).Msg("loaded BigQuery schema")
		return bqschema.FromBigQuery(fields), nil
	}

	doc, err := loadDocument(stdin, input, inputFormat)
	if err != nil {
		return nil, err
	}
	log.Debug().
		Str("input", input).
		Int("refs", len(jschema.Refs(doc))).
		Msg("loaded schema document")

	schema, err := bqschema.Translate(doc)
	if err != nil {
		return nil, err
	}
	log.Debug().
		Int("fields", len(schema.Fields)).
		Msg("translated schema")
	return schema, nil
}

func loadDocument(stdin io.Reader, input, inputFormat string) (*jschema.Value, error) {
	var format jschema.Format
	switch inputFormat {
	case "":
		if input != stdinPath {
			doc, err := jschema.NewLoader(os.DirFS(filepath.Dir(input))).LoadFile(filepath.Base(input))
			if err != nil {
				return nil, fmt.Errorf("failed to load schema %s: %w", input, err)
			}
			return doc, nil
		}
		format = jschema.JSON
	case "json":
		format = jschema.JSON
	case "yaml", "yml":
		format = jschema.YAML
	default:
		return nil, fmt.Errorf("unsupported input format %q", inputFormat)
	}

	data, err := readInput(stdin, input)
	if err != nil {
		return nil, err
	}
	return jschema.Read(bytes.NewReader(data), format)
}

func readInput(stdin io.Reader, input string) ([]byte, error) {
	if input == stdinPath {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(input) //nolint:gosec // path is provided by the user
	if err != nil {
		return nil, fmt.Errorf("failed to load schema %s: %w", input, err)
	}
	return data, nil
}

// tableName derives a table name from the input file name.
func tableName(input string) string {
	if input == stdinPath {
		return "schema"
	}
	base := filepath.Base(input)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func isInteractive(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // fd fits in int
}
