// Package uuid generates and checks the string identifiers of ledger records.
package uuid

import (
	google_uuid "github.com/google/uuid"
)

// Nil is the empty identifier.
const Nil = ""

// NewString returns a fresh random (version 4) UUID in its canonical string form.
func NewString() string {
	return google_uuid.NewString()
}

// Unique returns id if it is non-empty and not yet taken, otherwise a fresh UUID.
//
// Identifiers imported from older exports are not necessarily UUIDs, they are
// kept as long as they do not collide.
func Unique(id string, taken func(string) bool) string {
	if id != Nil && !taken(id) {
		return id
	}

	for {
		id = NewString()
		if !taken(id) {
			return id
		}
	}
}

// Canonical parses s as a UUID and returns its canonical lower-case form.
// Strings that are not UUIDs are returned unchanged.
func Canonical(s string) string {
	parsed, err := google_uuid.Parse(s)
	if err != nil {
		return s
	}
	return parsed.String()
}
