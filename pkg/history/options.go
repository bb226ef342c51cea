package history

import (
	"encoding/json"
	"fmt"
)

// DefaultCapacity bounds both the past and future stacks.
const DefaultCapacity = 50

// Fingerprint returns a canonical serialization used to detect identical
// snapshots.
type Fingerprint[S any] func(S) string

// Option configures a Manager.
type Option[S any] func(*Manager[S])

// WithCapacity overrides the maximum number of entries kept in past (and
// future). Values below 1 are ignored.
func WithCapacity[S any](n int) Option[S] {
	return func(m *Manager[S]) {
		if n > 0 {
			m.capacity = n
		}
	}
}

// WithFingerprint replaces the default JSON based fingerprint.
func WithFingerprint[S any](fn Fingerprint[S]) Option[S] {
	return func(m *Manager[S]) {
		if fn != nil {
			m.fingerprint = fn
		}
	}
}

// WithClone installs a deep copy applied to every snapshot entering the
// manager so later mutations by the caller cannot reach stored history.
func WithClone[S any](fn func(S) S) Option[S] {
	return func(m *Manager[S]) {
		if fn != nil {
			m.clone = fn
		}
	}
}

func jsonFingerprint[S any](s S) string {
	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Sprintf("%#v", s)
	}
	return string(payload)
}

func identity[S any](s S) S {
	return s
}
