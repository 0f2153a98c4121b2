// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package bqjson writes table schemas as BigQuery JSON schema files.
package bqjson

import (
	"github.com/dacolabs/bqschema/bqschema"
)

// Translator renders the field array accepted by "bq mk --schema".
type Translator struct{}

// FileExtension returns the file extension for JSON schema files.
func (t *Translator) FileExtension() string {
	return ".json"
}

// Translate renders the schema's fields as indented JSON.
func (t *Translator) Translate(_ string, schema *bqschema.TableSchema) ([]byte, error) {
	out, err := schema.FieldsJSON()
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}
