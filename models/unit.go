// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Unit is a single record read from the units store.
//
// The shape is owned by whoever writes the store (typically id, name, status
// and arbitrary extra attributes). The dispatcher never interprets it beyond
// counting and slicing, so it is kept as a generic attribute map and is
// forwarded to the processor verbatim.
type Unit map[string]any

// ID returns the "id" attribute of the unit and reports whether it is present.
func (u Unit) ID() (any, bool) {
	id, ok := u["id"]
	return id, ok
}
