package fields

import (
	"fmt"

	"github.com/google/uuid"
)

// IDGenerator produces field ids. Implementations must never repeat a value
// within a session.
type IDGenerator func() string

// NewID returns a random UUID string.
func NewID() string {
	return uuid.NewString()
}

// SequenceIDs returns a generator yielding prefix-1, prefix-2, ... which is
// handy for deterministic fixtures.
func SequenceIDs(prefix string) IDGenerator {
	next := 0
	return func() string {
		next++
		return fmt.Sprintf("%s-%d", prefix, next)
	}
}
