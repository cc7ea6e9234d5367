// Package ids generates the opaque record identifiers used by every store
package ids

import (
	"strconv"

	"github.com/google/uuid"
)

// Generator produces a new unique identifier on each call.
// Stores accept one so tests can inject predictable ids.
type Generator func() string

// New returns a random (version 4) UUID string
func New() string {
	return uuid.NewString()
}

// Sequence returns a Generator yielding prefix-1, prefix-2, ... in order.
// Not safe for concurrent use; meant for tests and fixtures.
func Sequence(prefix string) Generator {
	n := 0
	return func() string {
		n++
		return prefix + "-" + strconv.Itoa(n)
	}
}
