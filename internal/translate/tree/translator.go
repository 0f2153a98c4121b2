// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package tree renders table schemas as a styled terminal tree.
package tree

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"github.com/dacolabs/bqschema/bqschema"
)

var (
	rootStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f9ca24"))
	nameStyle = lipgloss.NewStyle().Bold(true)
	typeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#27ca3f"))
	modeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#bababa"))
	descStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#7f8c8d"))
	enumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#636e72")).MarginRight(1)
)

// Translator renders a human-readable tree of the table's columns.
type Translator struct{}

// FileExtension returns the file extension for text output.
func (t *Translator) FileExtension() string {
	return ".txt"
}

// Translate renders the schema as a tree rooted at tableName.
func (t *Translator) Translate(tableName string, schema *bqschema.TableSchema) ([]byte, error) {
	if tableName == "" {
		tableName = "schema"
	}
	root := tree.Root(rootStyle.Render(tableName)).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(enumStyle)
	addFields(root, schema.Fields)
	return []byte(root.String() + "\n"), nil
}

func addFields(parent *tree.Tree, fields []*bqschema.FieldSchema) {
	for _, f := range fields {
		label := nameStyle.Render(f.Name) + " " + typeStyle.Render(string(f.Type)) + " " + modeStyle.Render(string(f.Mode))
		if f.Description != "" {
			label += " " + descStyle.Render(f.Description)
		}
		if f.Fields == nil {
			parent.Child(label)
			continue
		}
		sub := tree.Root(label).
			Enumerator(tree.RoundedEnumerator).
			EnumeratorStyle(enumStyle)
		addFields(sub, f.Fields)
		parent.Child(sub)
	}
}
