// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/dacolabs/bqschema/jschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want jschema.Format
	}{
		{"yaml extension", "schema.yaml", jschema.YAML},
		{"yml extension", "schema.yml", jschema.YAML},
		{"json extension", "schema.json", jschema.JSON},
		{"no extension", "schema", jschema.JSON},
		{"path with yaml", "/path/to/schema.yaml", jschema.YAML},
		{"path with json", "/path/to/schema.json", jschema.JSON},
		{"empty string", "", jschema.JSON},
		{"uppercase YAML", "schema.YAML", jschema.JSON}, // case sensitive
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := jschema.FormatFromPath(tt.path)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsFileRef(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		want bool
	}{
		{"relative file ref", "./other.yaml", true},
		{"parent file ref", "../other.yaml", true},
		{"simple file ref", "other.yaml", true},
		{"internal ref", "#/$defs/address", false},
		{"internal component ref", "#/components/schemas/User", false},
		{"empty string", "", false},
		{"hash only", "#/", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := jschema.IsFileRef(tt.ref)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_YAMLAliases(t *testing.T) {
	doc, err := jschema.Parse([]byte("base: &b {type: string}\nuse: [*b, *b]\n"), jschema.YAML)
	require.NoError(t, err)
	assert.Equal(t, `{"base":{"type":"string"},"use":[{"type":"string"},{"type":"string"}]}`, doc.String())
}

func TestParse_YAMLSelfReferencingAnchor(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"mapping", "a: &x\n  b: *x\n"},
		{"sequence", "a: &x [1, *x]\n"},
		{"indirect", "a: &x\n  b: &y\n    c: *x\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := jschema.Parse([]byte(tt.src), jschema.YAML)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "refers to itself")
		})
	}
}

func TestParse_YAMLAliasExpansionLimit(t *testing.T) {
	var b strings.Builder
	b.WriteString("l0: &l0 [x, x, x, x, x, x, x, x, x]\n")
	for i := 1; i <= 6; i++ {
		ref := fmt.Sprintf("*l%d", i-1)
		refs := strings.TrimSuffix(strings.Repeat(ref+", ", 9), ", ")
		fmt.Fprintf(&b, "l%d: &l%d [%s]\n", i, i, refs)
	}

	_, err := jschema.Parse([]byte(b.String()), jschema.YAML)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "aliases")
}
