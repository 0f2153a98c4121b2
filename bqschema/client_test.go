// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package bqschema

import (
	"testing"

	"cloud.google.com/go/bigquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSchema() *TableSchema {
	return &TableSchema{Fields: []*FieldSchema{
		{Name: "id", Type: Integer, Mode: Required},
		{Name: "note", Type: String, Mode: Nullable, Description: "Free text"},
		{Name: "tags", Type: String, Mode: Repeated},
		{Name: "address", Type: Record, Mode: Nullable, Fields: []*FieldSchema{
			{Name: "city", Type: String, Mode: Required},
			{Name: "since", Type: Date, Mode: Nullable},
		}},
	}}
}

func TestToBigQuery(t *testing.T) {
	got := sampleSchema().ToBigQuery()

	require.Len(t, got, 4)
	assert.Equal(t, &bigquery.FieldSchema{Name: "id", Type: bigquery.IntegerFieldType, Required: true}, got[0])
	assert.Equal(t, &bigquery.FieldSchema{Name: "note", Type: bigquery.StringFieldType, Description: "Free text"}, got[1])
	assert.Equal(t, &bigquery.FieldSchema{Name: "tags", Type: bigquery.StringFieldType, Repeated: true}, got[2])

	address := got[3]
	assert.Equal(t, bigquery.RecordFieldType, address.Type)
	assert.False(t, address.Required)
	require.Len(t, address.Schema, 2)
	assert.Equal(t, bigquery.DateFieldType, address.Schema[1].Type)
}

func TestFromBigQuery_RoundTrip(t *testing.T) {
	want := sampleSchema()
	assert.Equal(t, want, FromBigQuery(want.ToBigQuery()))
}

func TestFieldsJSON_ReadableByClient(t *testing.T) {
	want := sampleSchema()

	data, err := want.FieldsJSON()
	require.NoError(t, err)

	parsed, err := bigquery.SchemaFromJSON(data)
	require.NoError(t, err)

	assertSameSchema(t, want.ToBigQuery(), parsed, "")
}

func assertSameSchema(t *testing.T, want, got bigquery.Schema, path string) {
	t.Helper()
	require.Len(t, got, len(want), path)
	for i := range want {
		name := path + want[i].Name
		assert.Equal(t, want[i].Name, got[i].Name, name)
		assert.Equal(t, want[i].Type, got[i].Type, name)
		assert.Equal(t, want[i].Required, got[i].Required, name)
		assert.Equal(t, want[i].Repeated, got[i].Repeated, name)
		assert.Equal(t, want[i].Description, got[i].Description, name)
		assertSameSchema(t, want[i].Schema, got[i].Schema, name+".")
	}
}
