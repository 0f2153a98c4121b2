// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package bqschema

import (
	"encoding/json"
	"fmt"
)

// FieldType is a BigQuery column type name.
type FieldType string

// BigQuery column types. Legacy and standard SQL spellings are both listed.
const (
	String     FieldType = "STRING"
	Bytes      FieldType = "BYTES"
	Integer    FieldType = "INTEGER"
	Int64      FieldType = "INT64"
	Float      FieldType = "FLOAT"
	Float64    FieldType = "FLOAT64"
	Boolean    FieldType = "BOOLEAN"
	Bool       FieldType = "BOOL"
	Timestamp  FieldType = "TIMESTAMP"
	Date       FieldType = "DATE"
	Time       FieldType = "TIME"
	DateTime   FieldType = "DATETIME"
	Geography  FieldType = "GEOGRAPHY"
	Numeric    FieldType = "NUMERIC"
	BigNumeric FieldType = "BIGNUMERIC"
	JSON       FieldType = "JSON"
	Record     FieldType = "RECORD"
	Struct     FieldType = "STRUCT"
	Range      FieldType = "RANGE"
)

// IsRecord reports whether t holds nested fields.
func (t FieldType) IsRecord() bool {
	return t == Record || t == Struct
}

// Mode is a column's repetition and nullability.
type Mode string

// Column modes.
const (
	Nullable Mode = "NULLABLE"
	Required Mode = "REQUIRED"
	Repeated Mode = "REPEATED"
)

// FieldSchema describes one column, possibly nested.
// Fields is set only for RECORD columns.
type FieldSchema struct {
	Name        string         `json:"name" yaml:"name"`
	Type        FieldType      `json:"type" yaml:"type"`
	Mode        Mode           `json:"mode" yaml:"mode"`
	Fields      []*FieldSchema `json:"fields,omitempty" yaml:"fields,omitempty"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
}

// recordField is the encoding of a RECORD column. Its fields are always
// written, even when empty.
type recordField struct {
	Name        string         `json:"name" yaml:"name"`
	Type        FieldType      `json:"type" yaml:"type"`
	Mode        Mode           `json:"mode" yaml:"mode"`
	Fields      []*FieldSchema `json:"fields" yaml:"fields"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
}

// plainField drops the methods of FieldSchema so encoding it does not recurse.
type plainField FieldSchema

func (f *FieldSchema) encoded() any {
	if !f.Type.IsRecord() {
		return (*plainField)(f)
	}
	fields := f.Fields
	if fields == nil {
		fields = []*FieldSchema{}
	}
	return recordField{
		Name:        f.Name,
		Type:        f.Type,
		Mode:        f.Mode,
		Fields:      fields,
		Description: f.Description,
	}
}

// MarshalJSON writes "fields" for every RECORD column, including empty ones.
func (f *FieldSchema) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.encoded())
}

// MarshalYAML writes "fields" for every RECORD column, including empty ones.
func (f *FieldSchema) MarshalYAML() (any, error) {
	return f.encoded(), nil
}

// TableSchema is the ordered list of top-level columns of a table.
type TableSchema struct {
	Fields []*FieldSchema `json:"fields" yaml:"fields"`
}

// FieldsJSON returns the bare field array, the format accepted by
// "bq mk --schema" and "bq load --schema".
func (s *TableSchema) FieldsJSON() ([]byte, error) {
	fields := s.Fields
	if fields == nil {
		fields = []*FieldSchema{}
	}
	return json.MarshalIndent(fields, "", "  ")
}

// Validate checks that every field has a name, a known mode, and nested
// fields exactly when it is a record.
func (s *TableSchema) Validate() error {
	return validateFields(s.Fields, "")
}

func validateFields(fields []*FieldSchema, parent string) error {
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if f == nil {
			return fmt.Errorf("%snil field", prefix(parent))
		}
		path := joinPath(parent, f.Name)
		if f.Name == "" {
			return fmt.Errorf("%sfield has no name", prefix(parent))
		}
		if seen[f.Name] {
			return fmt.Errorf("%s: duplicate field name", path)
		}
		seen[f.Name] = true

		switch f.Mode {
		case Nullable, Required, Repeated:
		default:
			return fmt.Errorf("%s: invalid mode %q", path, f.Mode)
		}
		if f.Type == "" {
			return fmt.Errorf("%s: missing type", path)
		}
		if f.Type.IsRecord() != (f.Fields != nil) {
			if f.Type.IsRecord() {
				return fmt.Errorf("%s: record has no fields", path)
			}
			return fmt.Errorf("%s: %s field cannot have nested fields", path, f.Type)
		}
		if err := validateFields(f.Fields, path); err != nil {
			return err
		}
	}
	return nil
}

func prefix(parent string) string {
	if parent == "" {
		return ""
	}
	return parent + ": "
}

func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}
