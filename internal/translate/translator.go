// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package translate provides the output formats a translated table schema can be written in.
package translate

import (
	"fmt"
	"sort"

	"github.com/dacolabs/bqschema/bqschema"
)

// Translator defines the interface all output formats must implement.
type Translator interface {
	// Translate renders a table schema.
	// tableName labels the output where the format has room for it.
	Translate(tableName string, schema *bqschema.TableSchema) ([]byte, error)

	// FileExtension returns the appropriate file extension (e.g., ".json", ".yaml")
	FileExtension() string
}

// Register maps format names to translators.
type Register map[string]Translator

// Get retrieves a translator by name.
func (r Register) Get(name string) (Translator, error) {
	t, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("unknown translator: %s", name)
	}
	return t, nil
}

// Available returns all registered translator names, sorted.
func (r Register) Available() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
