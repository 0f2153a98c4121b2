// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

// Node is the classified shape of a schema document node.
// It is one of *RefNode, *UnionNode, *ArrayNode, *ObjectNode,
// *FormatNode, *ScalarNode or *UnsupportedNode.
type Node interface {
	// Raw returns the document value the node was classified from.
	Raw() *Value

	// Description returns the node's "description", if any.
	Description() string

	node()
}

type base struct {
	raw *Value
}

func (b base) Raw() *Value { return b.raw }

func (b base) Description() string {
	d, _ := b.raw.GetString("description")
	return d
}

func (base) node() {}

// RefNode points at another node through a "$ref" path.
type RefNode struct {
	base
	Ref string
}

// UnionNode is an "anyOf" list of candidates, exactly one of which applies.
type UnionNode struct {
	base
	Candidates []*Value
}

// ArrayNode is a "type: array" node with a single items schema.
type ArrayNode struct {
	base
	Items *Value
}

// Property is a named entry of an object's "properties".
type Property struct {
	Name   string
	Schema *Value
}

// ObjectNode is a "type: object" node with declared properties.
type ObjectNode struct {
	base
	Title      string
	Properties []Property
	Required   []string
}

// IsRequired reports whether name is listed in the object's "required".
func (o *ObjectNode) IsRequired(name string) bool {
	for _, r := range o.Required {
		if r == name {
			return true
		}
	}
	return false
}

// FormatNode is a string scalar carrying a "format" tag.
type FormatNode struct {
	base
	Type   string
	Format string
}

// ScalarNode is a node with a single primitive "type" tag.
type ScalarNode struct {
	base
	Type string
}

// IsNull reports whether the node is the null marker {"type": "null"}.
func (s *ScalarNode) IsNull() bool {
	return s.Type == "null"
}

// UnsupportedNode matches none of the recognized shapes.
type UnsupportedNode struct {
	base
}

// Classify determines the shape of v. The checks run in a fixed order:
// reference, union, array, object, formatted string, scalar.
func Classify(v *Value) Node {
	b := base{raw: v}
	if v.Kind() != Map {
		return &UnsupportedNode{b}
	}

	if ref, ok := v.GetString("$ref"); ok {
		return &RefNode{base: b, Ref: ref}
	}

	if anyOf, ok := v.Get("anyOf"); ok && anyOf.Kind() == List {
		return &UnionNode{base: b, Candidates: anyOf.Items()}
	}

	typ, hasType := v.Get("type")
	if hasType && typ.Kind() == List {
		if candidates, ok := expandTypeList(v, typ); ok {
			return &UnionNode{base: b, Candidates: candidates}
		}
		return &UnsupportedNode{b}
	}

	typeName, _ := typ.Str()

	if items, ok := v.Get("items"); ok && typeName == "array" {
		return &ArrayNode{base: b, Items: items}
	}

	if typeName == "object" {
		if obj, ok := AsObject(v); ok {
			return obj
		}
	}

	if format, ok := v.GetString("format"); ok && typeName == "string" {
		return &FormatNode{base: b, Type: typeName, Format: format}
	}

	if typ.Kind() == String {
		return &ScalarNode{base: b, Type: typeName}
	}

	return &UnsupportedNode{b}
}

// expandTypeList turns {"type": ["string", "null"], ...} into one candidate
// per type tag, each a copy of v with a single "type".
func expandTypeList(v, types *Value) ([]*Value, bool) {
	tags := types.Items()
	if len(tags) == 0 {
		return nil, false
	}
	candidates := make([]*Value, 0, len(tags))
	for _, tag := range tags {
		if tag.Kind() != String {
			return nil, false
		}
		candidates = append(candidates, v.With("type", tag))
	}
	return candidates, true
}

// AsObject reads v as an object with declared properties, whatever its
// "type" says. It fails unless v is a mapping whose "properties" is a
// mapping. Document roots are read this way.
func AsObject(v *Value) (*ObjectNode, bool) {
	props, ok := v.Get("properties")
	if !ok || props.Kind() != Map {
		return nil, false
	}

	title, _ := v.GetString("title")
	obj := &ObjectNode{base: base{raw: v}, Title: title}
	for _, m := range props.Members() {
		obj.Properties = append(obj.Properties, Property{Name: m.Key, Schema: m.Value})
	}
	if required, ok := v.Get("required"); ok {
		for _, r := range required.Items() {
			if name, ok := r.Str(); ok {
				obj.Required = append(obj.Required, name)
			}
		}
	}
	return obj, true
}
