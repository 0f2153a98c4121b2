// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Kind identifies the shape of a Value.
type Kind int

// Value kinds. The zero Kind is Null.
const (
	Null Kind = iota
	Bool
	Number
	String
	List
	Map
)

func (k Kind) String() string {
	switch k {
	case Bool:
		return "bool"
	case Number:
		return "number"
	case String:
		return "string"
	case List:
		return "list"
	case Map:
		return "map"
	default:
		return "null"
	}
}

// Member is a single key/value pair of a mapping Value.
type Member struct {
	Key   string
	Value *Value
}

// Value is an immutable node of a schema document.
// Mappings keep their keys in declaration order.
type Value struct {
	kind    Kind
	boolean bool
	text    string // string contents, or the literal text of a number
	items   []*Value
	members []Member
}

// NewNull returns a null Value.
func NewNull() *Value { return &Value{kind: Null} }

// NewBool returns a boolean Value.
func NewBool(b bool) *Value { return &Value{kind: Bool, boolean: b} }

// NewString returns a string Value.
func NewString(s string) *Value { return &Value{kind: String, text: s} }

// NewNumber returns a number Value from its literal representation.
func NewNumber(literal string) *Value { return &Value{kind: Number, text: literal} }

// NewList returns a list Value holding items in order.
func NewList(items ...*Value) *Value {
	return &Value{kind: List, items: items}
}

// NewMap returns a mapping Value holding members in order.
// A repeated key keeps its first position and its last value.
func NewMap(members ...Member) *Value {
	v := &Value{kind: Map, members: make([]Member, 0, len(members))}
	for _, m := range members {
		v.members = setMember(v.members, m.Key, m.Value)
	}
	return v
}

func setMember(members []Member, key string, value *Value) []Member {
	for i := range members {
		if members[i].Key == key {
			members[i].Value = value
			return members
		}
	}
	return append(members, Member{Key: key, Value: value})
}

// Kind returns the kind of v. A nil Value is Null.
func (v *Value) Kind() Kind {
	if v == nil {
		return Null
	}
	return v.kind
}

// Str returns the string contents of v and whether v is a string.
func (v *Value) Str() (string, bool) {
	if v.Kind() != String {
		return "", false
	}
	return v.text, true
}

// Bool returns the boolean contents of v and whether v is a boolean.
func (v *Value) Bool() (bool, bool) {
	if v.Kind() != Bool {
		return false, false
	}
	return v.boolean, true
}

// Items returns the elements of a list Value, or nil.
func (v *Value) Items() []*Value {
	if v.Kind() != List {
		return nil
	}
	return v.items
}

// Members returns the ordered members of a mapping Value, or nil.
func (v *Value) Members() []Member {
	if v.Kind() != Map {
		return nil
	}
	return v.members
}

// Get returns the value stored under key in a mapping Value.
func (v *Value) Get(key string) (*Value, bool) {
	for _, m := range v.Members() {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// GetString returns the string stored under key, if any.
func (v *Value) GetString(key string) (string, bool) {
	child, ok := v.Get(key)
	if !ok {
		return "", false
	}
	return child.Str()
}

// With returns a copy of the mapping v with key set to value.
// The key keeps its position when it already exists.
func (v *Value) With(key string, value *Value) *Value {
	members := make([]Member, len(v.Members()), len(v.Members())+1)
	copy(members, v.Members())
	return &Value{kind: Map, members: setMember(members, key, value)}
}

// MarshalJSON encodes v with mapping keys in declaration order.
func (v *Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v *Value) encode(buf *bytes.Buffer) error {
	switch v.Kind() {
	case Null:
		buf.WriteString("null")
	case Bool:
		buf.WriteString(strconv.FormatBool(v.boolean))
	case Number:
		buf.WriteString(v.text)
	case String:
		b, err := json.Marshal(v.text)
		if err != nil {
			return err
		}
		buf.Write(b)
	case List:
		buf.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case Map:
		buf.WriteByte('{')
		for i, m := range v.members {
			if i > 0 {
				buf.WriteByte(',')
			}
			k, err := json.Marshal(m.Key)
			if err != nil {
				return err
			}
			buf.Write(k)
			buf.WriteByte(':')
			if err := m.Value.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}

// String renders v as compact JSON.
func (v *Value) String() string {
	b, err := v.MarshalJSON()
	if err != nil {
		return "<invalid>"
	}
	return string(b)
}
