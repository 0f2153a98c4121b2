// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package bqschema

import (
	"errors"
	"fmt"

	"github.com/dacolabs/bqschema/jschema"
)

// ErrUnsupported matches every translation failure through errors.Is.
var ErrUnsupported = errors.New("unsupported schema")

// ErrorKind classifies a translation failure.
type ErrorKind int

// Translation failure kinds.
const (
	UnresolvedReference ErrorKind = iota + 1
	UnsupportedUnion
	NullableRequiredConflict
	UnsupportedFormat
	UnsupportedType
	UnsupportedExpression
	CyclicReference
	ExternalReference
)

func (k ErrorKind) String() string {
	switch k {
	case UnresolvedReference:
		return "unresolved_reference"
	case UnsupportedUnion:
		return "unsupported_union"
	case NullableRequiredConflict:
		return "nullable_required_conflict"
	case UnsupportedFormat:
		return "unsupported_format"
	case UnsupportedType:
		return "unsupported_type"
	case UnsupportedExpression:
		return "unsupported_expression"
	case CyclicReference:
		return "cyclic_reference"
	case ExternalReference:
		return "external_reference"
	default:
		return "unknown"
	}
}

// Error is returned when a schema cannot be translated.
// Only the fields relevant to Kind are set.
type Error struct {
	Kind ErrorKind

	// Path is the dotted field path being resolved, e.g. "customer.address".
	Path string

	Ref      string         // UnresolvedReference, CyclicReference, ExternalReference
	Segment  string         // UnresolvedReference: first missing segment
	Format   string         // UnsupportedFormat
	Type     string         // UnsupportedType
	Owner    string         // NullableRequiredConflict: object title
	Property string         // NullableRequiredConflict
	Node     *jschema.Value // UnsupportedUnion, UnsupportedExpression
}

func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case UnresolvedReference:
		msg = fmt.Sprintf("JSON reference unresolvable: %s (segment %q not found)", e.Ref, e.Segment)
	case UnsupportedUnion:
		msg = fmt.Sprintf("JSON schema union too complex: %s", e.Node)
	case NullableRequiredConflict:
		msg = fmt.Sprintf("JSON schema nullable required behaviour not supported: %s -> %s", e.Owner, e.Property)
	case UnsupportedFormat:
		msg = fmt.Sprintf("JSON schema format unsupported: %s", e.Format)
	case UnsupportedType:
		msg = fmt.Sprintf("JSON schema type unsupported: %s", e.Type)
	case UnsupportedExpression:
		msg = fmt.Sprintf("JSON schema expression unsupported: %s", e.Node)
	case CyclicReference:
		msg = fmt.Sprintf("JSON reference cycle: %s", e.Ref)
	case ExternalReference:
		msg = fmt.Sprintf("JSON reference to another document unsupported: %s", e.Ref)
	default:
		msg = "JSON schema translation failed"
	}
	if e.Path != "" {
		return e.Path + ": " + msg
	}
	return msg
}

// Is makes every *Error match ErrUnsupported.
func (e *Error) Is(target error) bool {
	return target == ErrUnsupported
}

// KindOf returns the ErrorKind of err, or 0 when err is not a translation error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
