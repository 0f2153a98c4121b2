// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package bqschema translates JSON Schema documents into BigQuery table schemas.
package bqschema

import (
	"strings"

	"github.com/dacolabs/bqschema/jschema"
)

var typeMapping = map[string]FieldType{
	"boolean": Boolean,
	"integer": Integer,
	"number":  Float,
	"string":  String,
}

var formatMapping = map[string]FieldType{
	"date":      Date,
	"date-time": Timestamp,
	"time":      Time,
}

// translator holds the state of a single Translate call.
type translator struct {
	doc    *jschema.Value
	active map[string]bool // refs currently being resolved
	path   []string
}

// Translate converts a JSON Schema document into a BigQuery table schema.
// The document root must be a mapping with a "properties" mapping; its
// "type" is not checked. The properties become the table's columns in
// declaration order. "$ref" paths are resolved against
// the whole document.
//
// Translate returns either a complete schema or a single *Error.
func Translate(doc *jschema.Value) (*TableSchema, error) {
	t := &translator{
		doc:    doc,
		active: make(map[string]bool),
	}

	root, ok := jschema.AsObject(doc)
	if !ok {
		return nil, &Error{Kind: UnsupportedExpression, Node: doc}
	}

	fields, err := t.resolveProperties(root)
	if err != nil {
		return nil, err
	}
	return &TableSchema{Fields: fields}, nil
}

func (t *translator) resolve(name string, v *jschema.Value) (*FieldSchema, error) {
	node := jschema.Classify(v)

	var (
		field *FieldSchema
		err   error
	)
	switch n := node.(type) {
	case *jschema.RefNode:
		field, err = t.resolveRef(name, n)
	case *jschema.UnionNode:
		field, err = t.resolveUnion(name, n)
	case *jschema.ArrayNode:
		field, err = t.resolve(name, n.Items)
		if err == nil {
			field.Mode = Repeated
		}
	case *jschema.ObjectNode:
		var fields []*FieldSchema
		fields, err = t.resolveProperties(n)
		field = &FieldSchema{Name: name, Type: Record, Mode: Required, Fields: fields}
	case *jschema.FormatNode:
		typ, ok := formatMapping[n.Format]
		if !ok {
			return nil, t.fail(&Error{Kind: UnsupportedFormat, Format: n.Format})
		}
		field = &FieldSchema{Name: name, Type: typ, Mode: Required}
	case *jschema.ScalarNode:
		typ, ok := typeMapping[n.Type]
		if !ok {
			return nil, t.fail(&Error{Kind: UnsupportedType, Type: n.Type})
		}
		field = &FieldSchema{Name: name, Type: typ, Mode: Required}
	default:
		return nil, t.fail(&Error{Kind: UnsupportedExpression, Node: v})
	}
	if err != nil {
		return nil, err
	}

	if d := node.Description(); d != "" {
		field.Description = d
	}
	return field, nil
}

func (t *translator) resolveRef(name string, n *jschema.RefNode) (*FieldSchema, error) {
	target, missing, ok := t.doc.Lookup(n.Ref)
	if !ok {
		if jschema.IsFileRef(n.Ref) {
			return nil, t.fail(&Error{Kind: ExternalReference, Ref: n.Ref})
		}
		return nil, t.fail(&Error{Kind: UnresolvedReference, Ref: n.Ref, Segment: missing})
	}
	if t.active[n.Ref] {
		return nil, t.fail(&Error{Kind: CyclicReference, Ref: n.Ref})
	}

	t.active[n.Ref] = true
	defer delete(t.active, n.Ref)

	return t.resolve(name, target)
}

func (t *translator) resolveUnion(name string, n *jschema.UnionNode) (*FieldSchema, error) {
	var (
		nullable bool
		others   []*jschema.Value
	)
	for _, c := range n.Candidates {
		if s, ok := jschema.Classify(c).(*jschema.ScalarNode); ok && s.IsNull() {
			nullable = true
			continue
		}
		others = append(others, c)
	}

	if len(others) != 1 {
		return nil, t.fail(&Error{Kind: UnsupportedUnion, Node: n.Raw()})
	}

	field, err := t.resolve(name, others[0])
	if err != nil {
		return nil, err
	}
	// A repeated field cannot also carry element nullability; REPEATED wins.
	if nullable && field.Mode != Repeated {
		field.Mode = Nullable
	}
	return field, nil
}

func (t *translator) resolveProperties(obj *jschema.ObjectNode) ([]*FieldSchema, error) {
	fields := make([]*FieldSchema, 0, len(obj.Properties))
	for _, prop := range obj.Properties {
		field, err := t.resolveProperty(obj, prop)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}
	return fields, nil
}

// resolveProperty resolves one property and applies the owning object's
// "required" list to its mode.
func (t *translator) resolveProperty(obj *jschema.ObjectNode, prop jschema.Property) (*FieldSchema, error) {
	t.path = append(t.path, prop.Name)
	defer func() { t.path = t.path[:len(t.path)-1] }()

	field, err := t.resolve(prop.Name, prop.Schema)
	if err != nil {
		return nil, err
	}
	if field.Mode == Repeated {
		return field, nil
	}

	switch {
	case !obj.IsRequired(prop.Name):
		field.Mode = Nullable
	case field.Mode == Nullable:
		return nil, t.fail(&Error{
			Kind:     NullableRequiredConflict,
			Owner:    obj.Title,
			Property: prop.Name,
		})
	default:
		field.Mode = Required
	}
	return field, nil
}

func (t *translator) fail(e *Error) *Error {
	e.Path = strings.Join(t.path, ".")
	return e
}
