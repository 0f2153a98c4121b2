// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package jschema provides JSON Schema document loading, parsing, and traversal utilities.
package jschema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is the serialization format of a schema document.
type Format int

// Supported document formats.
const (
	JSON Format = iota
	YAML
)

func (f Format) String() string {
	if f == YAML {
		return "yaml"
	}
	return "json"
}

// FormatFromPath returns the document format implied by a file extension.
// Anything other than ".yaml" or ".yml" is treated as JSON.
func FormatFromPath(path string) Format {
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return YAML
	}
	return JSON
}

// IsFileRef returns true if ref is an external file reference.
// File refs do not start with "#".
func IsFileRef(ref string) bool {
	return ref != "" && !strings.HasPrefix(ref, "#")
}

// Parse decodes a schema document, preserving mapping key order.
func Parse(data []byte, format Format) (*Value, error) {
	if format == YAML {
		return parseYAML(data)
	}
	return parseJSON(data)
}

func parseJSON(data []byte) (*Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeJSON(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after top-level value")
	}
	return v, nil
}

func decodeJSON(dec *json.Decoder) (*Value, error) {
	token, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := token.(type) {
	case json.Delim:
		if t == '{' {
			var members []Member
			for dec.More() {
				keyToken, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyToken.(string)
				if !ok {
					return nil, fmt.Errorf("invalid object key %v", keyToken)
				}
				value, err := decodeJSON(dec)
				if err != nil {
					return nil, err
				}
				members = append(members, Member{Key: key, Value: value})
			}
			// Consume the closing brace
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return NewMap(members...), nil
		}
		var items []*Value
		for dec.More() {
			item, err := decodeJSON(dec)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		// Consume the closing bracket
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return NewList(items...), nil
	case string:
		return NewString(t), nil
	case json.Number:
		return NewNumber(t.String()), nil
	case bool:
		return NewBool(t), nil
	default:
		return NewNull(), nil
	}
}

// maxAliasExpansions bounds how many times aliases are expanded while
// building one document.
const maxAliasExpansions = 10000

// yamlDecoder builds a Value from a yaml.Node tree. Aliases are expanded
// in place, so the decoder tracks the anchors it is inside of and the
// number of expansions so far.
type yamlDecoder struct {
	expanding  map[*yaml.Node]bool
	expansions int
}

func parseYAML(data []byte) (*Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 {
		return nil, errors.New("empty document")
	}
	d := &yamlDecoder{expanding: make(map[*yaml.Node]bool)}
	return d.decode(&doc)
}

func (d *yamlDecoder) decode(n *yaml.Node) (*Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return NewNull(), nil
		}
		return d.decode(n.Content[0])
	case yaml.AliasNode:
		return d.alias(n)
	case yaml.MappingNode:
		members := make([]Member, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			var key string
			if err := n.Content[i].Decode(&key); err != nil {
				return nil, fmt.Errorf("line %d: invalid mapping key: %w", n.Content[i].Line, err)
			}
			value, err := d.decode(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			members = append(members, Member{Key: key, Value: value})
		}
		return NewMap(members...), nil
	case yaml.SequenceNode:
		items := make([]*Value, 0, len(n.Content))
		for _, c := range n.Content {
			item, err := d.decode(c)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return NewList(items...), nil
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!null":
			return NewNull(), nil
		case "!!bool":
			var b bool
			if err := n.Decode(&b); err != nil {
				return nil, fmt.Errorf("line %d: %w", n.Line, err)
			}
			return NewBool(b), nil
		case "!!int", "!!float":
			return yamlNumber(n)
		default:
			return NewString(n.Value), nil
		}
	default:
		return nil, fmt.Errorf("line %d: unsupported YAML node", n.Line)
	}
}

func (d *yamlDecoder) alias(n *yaml.Node) (*Value, error) {
	target := n.Alias
	if target == nil {
		return nil, fmt.Errorf("line %d: unknown anchor %q", n.Line, n.Value)
	}
	if d.expanding[target] {
		return nil, fmt.Errorf("line %d: anchor %q refers to itself", n.Line, n.Value)
	}
	d.expansions++
	if d.expansions > maxAliasExpansions {
		return nil, fmt.Errorf("line %d: document expands more than %d aliases", n.Line, maxAliasExpansions)
	}

	d.expanding[target] = true
	defer delete(d.expanding, target)

	return d.decode(target)
}

// yamlNumber keeps the literal when it is already valid JSON and
// normalizes YAML-only spellings such as 0x1F or 1_000.
func yamlNumber(n *yaml.Node) (*Value, error) {
	if json.Valid([]byte(n.Value)) {
		return NewNumber(n.Value), nil
	}
	var f float64
	if err := n.Decode(&f); err != nil {
		return nil, fmt.Errorf("line %d: %w", n.Line, err)
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return NewString(n.Value), nil
	}
	return NewNumber(strconv.FormatFloat(f, 'g', -1, 64)), nil
}
