// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package bqschema

import (
	"fmt"

	"github.com/dacolabs/bqschema/jschema"
	"github.com/google/jsonschema-go/jsonschema"
)

// FromSchema translates a typed JSON Schema.
func FromSchema(s *jsonschema.Schema) (*TableSchema, error) {
	doc, err := jschema.FromSchema(s)
	if err != nil {
		return nil, err
	}
	return Translate(doc)
}

// ForType infers the JSON Schema of the Go type T and translates it.
// T must be a struct type; its exported fields become the table columns.
func ForType[T any]() (*TableSchema, error) {
	s, err := jsonschema.For[T](nil)
	if err != nil {
		return nil, fmt.Errorf("failed to infer JSON schema: %w", err)
	}
	return FromSchema(s)
}
