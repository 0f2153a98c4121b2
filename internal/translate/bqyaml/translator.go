// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package bqyaml writes table schemas as YAML.
package bqyaml

import (
	"bytes"
	"fmt"

	"github.com/dacolabs/bqschema/bqschema"
	"gopkg.in/yaml.v3"
)

// Translator renders a table schema as a YAML document with a top-level "fields" list.
type Translator struct{}

// FileExtension returns the file extension for YAML files.
func (t *Translator) FileExtension() string {
	return ".yaml"
}

// Translate renders the schema as YAML.
func (t *Translator) Translate(_ string, schema *bqschema.TableSchema) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(schema); err != nil {
		return nil, fmt.Errorf("failed to encode schema: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
