// Package id assigns entry identifiers.
package id

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator returns a new unique id on each call.
type Generator func() string

// New returns a random UUID v4 string such as
// "9b2f6c1e-5d2a-4c1b-8f3e-2a7d0c9e4b11".
func New() string {
	return uuid.NewString()
}

// Sequence returns a Generator yielding prefix-001, prefix-002, ... for
// deterministic ids in fixtures and imports that must be reproducible.
func Sequence(prefix string) Generator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%03d", prefix, n)
	}
}

// Short returns the first eight characters of an id for display.
func Short(s string) string {
	if len(s) <= 8 {
		return s
	}
	return s[:8]
}
