package domain

import (
	"strings"
	"unique"
)

// InternedString wraps a unique.Handle[string]. Component names, package
// identifiers and dependency references repeat heavily across a scanned
// tree, so interning them keeps the component map and graph compact.
type InternedString struct {
	h unique.Handle[string]
}

// NewInternedString interns s and returns the handle wrapper.
func NewInternedString(s string) InternedString {
	return InternedString{h: unique.Make(s)}
}

// String returns the underlying string value.
func (is InternedString) String() string {
	var zero unique.Handle[string]
	if is.h == zero {
		return ""
	}
	return is.h.Value()
}

// Compare orders two interned strings lexicographically by value. Handles
// compare by identity, so sorted output must go through this instead.
func (is InternedString) Compare(other InternedString) int {
	return strings.Compare(is.String(), other.String())
}

// MarshalText implements encoding.TextMarshaler.
func (is InternedString) MarshalText() ([]byte, error) {
	return []byte(is.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (is *InternedString) UnmarshalText(text []byte) error {
	is.h = unique.Make(string(text))
	return nil
}
