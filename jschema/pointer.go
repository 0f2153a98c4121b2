// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import (
	"strconv"
	"strings"
)

var pointerUnescaper = strings.NewReplacer("~1", "/", "~0", "~")

// RefSegments splits a $ref into its path segments.
// Empty segments and the "#" anchor are dropped and JSON pointer
// escapes are decoded.
func RefSegments(ref string) []string {
	parts := strings.Split(ref, "/")
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" || p == "#" {
			continue
		}
		segments = append(segments, pointerUnescaper.Replace(p))
	}
	return segments
}

// Lookup walks ref from v one segment at a time.
// Mapping segments are keys; list segments are zero-based indices.
// It returns the first segment that could not be found when the walk fails.
func (v *Value) Lookup(ref string) (*Value, string, bool) {
	current := v
	for _, segment := range RefSegments(ref) {
		next, ok := current.child(segment)
		if !ok {
			return nil, segment, false
		}
		current = next
	}
	return current, "", true
}

func (v *Value) child(segment string) (*Value, bool) {
	switch v.Kind() {
	case Map:
		return v.Get(segment)
	case List:
		i, err := strconv.Atoi(segment)
		if err != nil || i < 0 || i >= len(v.items) {
			return nil, false
		}
		return v.items[i], true
	default:
		return nil, false
	}
}
