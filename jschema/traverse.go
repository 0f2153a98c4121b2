// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import "iter"

// Traverse returns an iterator over v and every value nested inside it,
// in document order.
func Traverse(v *Value) iter.Seq[*Value] {
	return func(yield func(*Value) bool) {
		traverse(v, yield)
	}
}

func traverse(v *Value, yield func(*Value) bool) bool {
	if v == nil {
		return true
	}
	if !yield(v) {
		return false
	}
	for _, item := range v.Items() {
		if !traverse(item, yield) {
			return false
		}
	}
	for _, m := range v.Members() {
		if !traverse(m.Value, yield) {
			return false
		}
	}
	return true
}

// Refs returns every "$ref" string found in the document, in document order.
// Refs that are not strings are skipped.
func Refs(v *Value) []string {
	var refs []string
	for n := range Traverse(v) {
		if ref, ok := n.GetString("$ref"); ok {
			refs = append(refs, ref)
		}
	}
	return refs
}
