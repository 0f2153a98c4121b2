// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package bqschema

import "cloud.google.com/go/bigquery"

// ToBigQuery converts s into the schema type of the BigQuery client library,
// ready for bigquery.TableMetadata.
func (s *TableSchema) ToBigQuery() bigquery.Schema {
	return toBigQuery(s.Fields)
}

func toBigQuery(fields []*FieldSchema) bigquery.Schema {
	if fields == nil {
		return nil
	}
	out := make(bigquery.Schema, 0, len(fields))
	for _, f := range fields {
		out = append(out, &bigquery.FieldSchema{
			Name:        f.Name,
			Description: f.Description,
			Type:        bigquery.FieldType(f.Type),
			Repeated:    f.Mode == Repeated,
			Required:    f.Mode == Required,
			Schema:      toBigQuery(f.Fields),
		})
	}
	return out
}

// FromBigQuery converts a client library schema back into a TableSchema.
// Columns that are neither repeated nor required become NULLABLE.
func FromBigQuery(schema bigquery.Schema) *TableSchema {
	return &TableSchema{Fields: fromBigQuery(schema)}
}

func fromBigQuery(schema bigquery.Schema) []*FieldSchema {
	if schema == nil {
		return nil
	}
	out := make([]*FieldSchema, 0, len(schema))
	for _, f := range schema {
		mode := Nullable
		switch {
		case f.Repeated:
			mode = Repeated
		case f.Required:
			mode = Required
		}
		out = append(out, &FieldSchema{
			Name:        f.Name,
			Type:        FieldType(f.Type),
			Mode:        mode,
			Fields:      fromBigQuery(f.Schema),
			Description: f.Description,
		})
	}
	return out
}
