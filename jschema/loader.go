// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"

	"github.com/google/jsonschema-go/jsonschema"
)

// Loader loads schema documents from a filesystem.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a Loader that reads from the given filesystem.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadFile loads and parses a schema document.
// The format is determined from the file extension.
func (l *Loader) LoadFile(filePath string) (*Value, error) {
	f, err := l.fsys.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	return Read(f, FormatFromPath(filePath))
}

// Read parses a whole schema document from r.
func Read(r io.Reader, format Format) (*Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	v, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s schema: %w", format, err)
	}
	return v, nil
}

// FromSchema converts a typed JSON Schema into a document.
// Property order follows the schema's JSON encoding.
func FromSchema(s *jsonschema.Schema) (*Value, error) {
	rawJSON, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize schema: %w", err)
	}
	return Parse(rawJSON, JSON)
}
