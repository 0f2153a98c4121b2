// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package markdown renders a table schema as markdown documentation.
package markdown

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"

	"github.com/dacolabs/bqschema/bqschema"
)

//go:embed markdown.md.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.New("markdown.md.tmpl").ParseFS(tmplFS, "markdown.md.tmpl"))

// Translator renders a table schema as a markdown column reference.
type Translator struct{}

type row struct {
	Path        string
	Type        bqschema.FieldType
	Mode        bqschema.Mode
	Description string
}

type document struct {
	Title string
	Rows  []row
}

// FileExtension returns the file extension for markdown files.
func (t *Translator) FileExtension() string {
	return ".md"
}

// Translate renders one row per column. Nested record fields are listed
// under their dotted path, right after the record itself.
func (t *Translator) Translate(tableName string, schema *bqschema.TableSchema) ([]byte, error) {
	doc := document{Title: title(tableName)}
	doc.Rows = appendRows(doc.Rows, "", schema.Fields)

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "markdown.md.tmpl", doc); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.Bytes(), nil
}

func appendRows(rows []row, prefix string, fields []*bqschema.FieldSchema) []row {
	for _, f := range fields {
		path := prefix + f.Name
		rows = append(rows, row{
			Path:        path,
			Type:        f.Type,
			Mode:        f.Mode,
			Description: escapeCell(f.Description),
		})
		rows = appendRows(rows, path+".", f.Fields)
	}
	return rows
}

// title turns "order_lines" into "Order Lines".
func title(name string) string {
	if name == "" {
		return "Schema"
	}
	words := strings.FieldsFunc(name, func(r rune) bool { return r == '_' || r == '-' || r == ' ' })
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
