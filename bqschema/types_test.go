// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package bqschema

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestTableSchema_JSON(t *testing.T) {
	schema := &TableSchema{Fields: []*FieldSchema{
		{Name: "id", Type: Integer, Mode: Required, Description: "Primary key"},
		{Name: "address", Type: Record, Mode: Nullable, Fields: []*FieldSchema{
			{Name: "city", Type: String, Mode: Nullable},
		}},
	}}

	out, err := json.Marshal(schema)
	require.NoError(t, err)
	assert.JSONEq(t, `{"fields": [
		{"name": "id", "type": "INTEGER", "mode": "REQUIRED", "description": "Primary key"},
		{"name": "address", "type": "RECORD", "mode": "NULLABLE", "fields": [
			{"name": "city", "type": "STRING", "mode": "NULLABLE"}
		]}
	]}`, string(out))
}

func TestTableSchema_FieldsJSON(t *testing.T) {
	schema := &TableSchema{Fields: []*FieldSchema{
		{Name: "tags", Type: String, Mode: Repeated},
	}}

	out, err := schema.FieldsJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name": "tags", "type": "STRING", "mode": "REPEATED"}]`, string(out))

	empty, err := (&TableSchema{}).FieldsJSON()
	require.NoError(t, err)
	assert.Equal(t, "[]", string(empty))
}

func TestFieldSchema_EmptyRecordKeepsFields(t *testing.T) {
	schema := &TableSchema{Fields: []*FieldSchema{
		{Name: "meta", Type: Record, Mode: Nullable, Fields: []*FieldSchema{}},
		{Name: "blank", Type: Record, Mode: Nullable},
		{Name: "id", Type: Integer, Mode: Required},
	}}

	out, err := schema.FieldsJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"name": "meta", "type": "RECORD", "mode": "NULLABLE", "fields": []},
		{"name": "blank", "type": "RECORD", "mode": "NULLABLE", "fields": []},
		{"name": "id", "type": "INTEGER", "mode": "REQUIRED"}
	]`, string(out))

	y, err := yaml.Marshal(schema)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(y), "fields: []"))
}

func TestTableSchema_Validate(t *testing.T) {
	tests := []struct {
		name    string
		fields  []*FieldSchema
		wantErr string
	}{
		{
			name:   "valid",
			fields: []*FieldSchema{{Name: "a", Type: String, Mode: Nullable}},
		},
		{
			name:    "missing name",
			fields:  []*FieldSchema{{Type: String, Mode: Nullable}},
			wantErr: "field has no name",
		},
		{
			name:    "invalid mode",
			fields:  []*FieldSchema{{Name: "a", Type: String, Mode: "OPTIONAL"}},
			wantErr: `a: invalid mode "OPTIONAL"`,
		},
		{
			name:    "missing type",
			fields:  []*FieldSchema{{Name: "a", Mode: Required}},
			wantErr: "a: missing type",
		},
		{
			name:    "record without fields",
			fields:  []*FieldSchema{{Name: "r", Type: Record, Mode: Required}},
			wantErr: "r: record has no fields",
		},
		{
			name: "scalar with fields",
			fields: []*FieldSchema{{Name: "s", Type: String, Mode: Required, Fields: []*FieldSchema{
				{Name: "x", Type: String, Mode: Required},
			}}},
			wantErr: "s: STRING field cannot have nested fields",
		},
		{
			name: "duplicate names",
			fields: []*FieldSchema{
				{Name: "a", Type: String, Mode: Required},
				{Name: "a", Type: Integer, Mode: Required},
			},
			wantErr: "a: duplicate field name",
		},
		{
			name: "nested error path",
			fields: []*FieldSchema{{Name: "outer", Type: Struct, Mode: Required, Fields: []*FieldSchema{
				{Name: "inner", Type: String, Mode: "BAD"},
			}}},
			wantErr: `outer.inner: invalid mode "BAD"`,
		},
		{
			name:    "nil field",
			fields:  []*FieldSchema{nil},
			wantErr: "nil field",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&TableSchema{Fields: tt.fields}).Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestFieldType_IsRecord(t *testing.T) {
	assert.True(t, Record.IsRecord())
	assert.True(t, Struct.IsRecord())
	assert.False(t, JSON.IsRecord())
}
