package history

import "fmt"

// Manager tracks past, present and future snapshots. It is not safe for
// concurrent use; the editor drives it from a single event loop.
type Manager[S any] struct {
	past    []S
	present S
	future  []S

	presentKey  string
	capacity    int
	fingerprint Fingerprint[S]
	clone       func(S) S
}

// New seeds a manager with initial as the present snapshot.
func New[S any](initial S, options ...Option[S]) *Manager[S] {
	m := &Manager[S]{
		capacity:    DefaultCapacity,
		fingerprint: jsonFingerprint[S],
		clone:       identity[S],
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(m)
	}
	m.setPresent(initial)
	return m
}

// Commit installs snapshot as the new present. A snapshot identical to the
// current present is ignored and Commit returns false. Otherwise the previous
// present moves onto past (evicting the oldest entry beyond capacity) and
// future is cleared.
func (m *Manager[S]) Commit(snapshot S) bool {
	key := m.fingerprint(snapshot)
	if key == m.presentKey {
		return false
	}
	m.past = pushBounded(m.past, m.present, m.capacity)
	m.present = m.clone(snapshot)
	m.presentKey = key
	m.future = nil
	return true
}

// Undo steps back one entry and returns the restored present. With an empty
// past it returns the unchanged present and false.
func (m *Manager[S]) Undo() (S, bool) {
	if len(m.past) == 0 {
		return m.present, false
	}
	last := len(m.past) - 1
	previous := m.past[last]
	m.past = m.past[:last]
	m.future = pushBounded(m.future, m.present, m.capacity)
	m.setPresent(previous)
	return m.present, true
}

// Redo re-applies the most recently undone entry.
func (m *Manager[S]) Redo() (S, bool) {
	if len(m.future) == 0 {
		return m.present, false
	}
	last := len(m.future) - 1
	next := m.future[last]
	m.future = m.future[:last]
	m.past = pushBounded(m.past, m.present, m.capacity)
	m.setPresent(next)
	return m.present, true
}

// Present returns the current snapshot.
func (m *Manager[S]) Present() S {
	return m.present
}

// CanUndo reports whether past holds entries.
func (m *Manager[S]) CanUndo() bool {
	return len(m.past) > 0
}

// CanRedo reports whether future holds entries.
func (m *Manager[S]) CanRedo() bool {
	return len(m.future) > 0
}

// Len returns the number of entries in past.
func (m *Manager[S]) Len() int {
	return len(m.past)
}

// FutureLen returns the number of entries in future.
func (m *Manager[S]) FutureLen() int {
	return len(m.future)
}

// Capacity returns the configured bound.
func (m *Manager[S]) Capacity() int {
	return m.capacity
}

// Status summarises the manager for UI affordances.
func (m *Manager[S]) Status() Status {
	return Status{
		Position: len(m.past),
		Depth:    len(m.past) + len(m.future),
		CanUndo:  len(m.past) > 0,
		CanRedo:  len(m.future) > 0,
	}
}

func (m *Manager[S]) setPresent(snapshot S) {
	m.present = m.clone(snapshot)
	m.presentKey = m.fingerprint(m.present)
}

// pushBounded appends value, dropping entries from the front once the stack
// exceeds limit. The result never shares a backing array with stack.
func pushBounded[S any](stack []S, value S, limit int) []S {
	out := make([]S, 0, len(stack)+1)
	out = append(out, stack...)
	out = append(out, value)
	if over := len(out) - limit; over > 0 {
		out = out[over:]
	}
	return out
}

// Status is a read-only view of the history position. Position counts the
// steps that can be undone; Depth counts every reachable step.
type Status struct {
	Position int
	Depth    int
	CanUndo  bool
	CanRedo  bool
}

// String renders the status as "position / depth".
func (s Status) String() string {
	return fmt.Sprintf("%d / %d", s.Position, s.Depth)
}
