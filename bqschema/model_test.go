// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package bqschema

import (
	"testing"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromSchema(t *testing.T) {
	s := &jsonschema.Schema{
		Type:  "object",
		Title: "Event",
		Properties: map[string]*jsonschema.Schema{
			"at": {Type: "string", Format: "date-time"},
			"payload": {
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"kind": {Type: "string"},
				},
				Required: []string{"kind"},
			},
			"labels": {Type: "array", Items: &jsonschema.Schema{Type: "string"}},
			"score":  {AnyOf: []*jsonschema.Schema{{Type: "number"}, {Type: "null"}}},
		},
		Required: []string{"at", "payload"},
	}

	schema, err := FromSchema(s)
	require.NoError(t, err)
	require.NoError(t, schema.Validate())

	fields := byName(schema.Fields)
	assert.Equal(t, &FieldSchema{Name: "at", Type: Timestamp, Mode: Required}, fields["at"])
	assert.Equal(t, &FieldSchema{Name: "labels", Type: String, Mode: Repeated}, fields["labels"])
	assert.Equal(t, &FieldSchema{Name: "score", Type: Float, Mode: Nullable}, fields["score"])
	assert.Equal(t, &FieldSchema{Name: "payload", Type: Record, Mode: Required, Fields: []*FieldSchema{
		{Name: "kind", Type: String, Mode: Required},
	}}, fields["payload"])
}

func TestFromSchema_Conflict(t *testing.T) {
	s := &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"nick": {Types: []string{"null", "string"}},
		},
		Required: []string{"nick"},
	}

	_, err := FromSchema(s)
	require.Error(t, err)
	assert.Equal(t, NullableRequiredConflict, KindOf(err))
}

type customer struct {
	Name  string   `json:"name"`
	Age   int      `json:"age,omitempty"`
	Tags  []string `json:"tags"`
	Score float64  `json:"score,omitempty"`
}

func TestForType(t *testing.T) {
	schema, err := ForType[customer]()
	require.NoError(t, err)
	require.NoError(t, schema.Validate())

	fields := byName(schema.Fields)
	require.Len(t, fields, 4)

	assert.Equal(t, String, fields["name"].Type)
	assert.Equal(t, Required, fields["name"].Mode)

	assert.Equal(t, Integer, fields["age"].Type)
	assert.Equal(t, Nullable, fields["age"].Mode)

	assert.Equal(t, String, fields["tags"].Type)
	assert.Equal(t, Repeated, fields["tags"].Mode)

	assert.Equal(t, Float, fields["score"].Type)
	assert.Equal(t, Nullable, fields["score"].Mode)
}

func byName(fields []*FieldSchema) map[string]*FieldSchema {
	m := make(map[string]*FieldSchema, len(fields))
	for _, f := range fields {
		m[f.Name] = f
	}
	return m
}
