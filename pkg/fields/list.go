package fields

import (
	"encoding/json"
	"fmt"
)

// List is an ordered field sequence. Index order is display order. Lists are
// treated as values: operations allocate a new backing array instead of
// writing into the receiver.
type List []Field

// Clone returns a deep copy suitable for storing as a snapshot.
func (l List) Clone() List {
	if l == nil {
		return nil
	}
	out := make(List, len(l))
	for i, field := range l {
		out[i] = field.Clone()
	}
	return out
}

// Len returns the number of fields.
func (l List) Len() int {
	return len(l)
}

// Index returns the position of the field with the given id, or -1.
func (l List) Index(id string) int {
	for i, field := range l {
		if field.ID == id {
			return i
		}
	}
	return -1
}

// Get returns a copy of the field with the given id.
func (l List) Get(id string) (Field, bool) {
	idx := l.Index(id)
	if idx < 0 {
		return Field{}, false
	}
	return l[idx].Clone(), true
}

// IDs returns the field ids in display order.
func (l List) IDs() []string {
	ids := make([]string, len(l))
	for i, field := range l {
		ids[i] = field.ID
	}
	return ids
}

// Fingerprint returns the canonical serialization of the list. Two lists with
// the same fingerprint are structurally identical; nil and empty lists share
// one fingerprint.
func (l List) Fingerprint() string {
	if l == nil {
		l = List{}
	}
	payload, err := json.Marshal(l)
	if err != nil {
		// Field only holds strings, bools and string slices.
		return fmt.Sprintf("%#v", []Field(l))
	}
	return string(payload)
}

// Equal reports structural equality.
func (l List) Equal(other List) bool {
	if len(l) != len(other) {
		return false
	}
	return l.Fingerprint() == other.Fingerprint()
}

// Validate checks list-level invariants: every field has an id and ids are
// unique.
func (l List) Validate() error {
	seen := make(map[string]struct{}, len(l))
	for i, field := range l {
		if field.ID == "" {
			return fmt.Errorf("%w (position %d)", ErrEmptyFieldID, i)
		}
		if _, dup := seen[field.ID]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateFieldID, field.ID)
		}
		seen[field.ID] = struct{}{}
	}
	return nil
}

// Add appends field. Duplicate or empty ids are rejected and the receiver is
// returned unchanged alongside the error.
func (l List) Add(field Field) (List, error) {
	if field.ID == "" {
		return l, ErrEmptyFieldID
	}
	if l.Index(field.ID) >= 0 {
		return l, fmt.Errorf("%w: %q", ErrDuplicateFieldID, field.ID)
	}
	out := make(List, len(l), len(l)+1)
	copy(out, l)
	return append(out, field.Clone().Normalize()), nil
}

// Remove drops the field with the given id. The boolean is false when the id
// is absent, in which case the receiver is returned.
func (l List) Remove(id string) (List, bool) {
	idx := l.Index(id)
	if idx < 0 {
		return l, false
	}
	out := make(List, 0, len(l)-1)
	out = append(out, l[:idx]...)
	return append(out, l[idx+1:]...), true
}

// Update merges patch into the field with the given id. The boolean is false
// when the patch is empty, the id is absent or the merge leaves the field as
// it was.
func (l List) Update(id string, patch Patch) (List, bool) {
	if patch.Empty() {
		return l, false
	}
	idx := l.Index(id)
	if idx < 0 {
		return l, false
	}
	current := l[idx]
	next := patch.Apply(current)
	before, after := List{current}, List{next}
	if before.Fingerprint() == after.Fingerprint() {
		return l, false
	}
	out := make(List, len(l))
	copy(out, l)
	out[idx] = next
	return out, true
}

// MoveTo relocates the field with the given id to target, clamped into
// [0, len-1]. The boolean is false when the id is absent or the order would
// not change.
func (l List) MoveTo(id string, target int) (List, bool) {
	from := l.Index(id)
	if from < 0 {
		return l, false
	}
	to := ClampIndex(target, len(l))
	if to == from {
		return l, false
	}

	moved := l[from]
	out := make(List, 0, len(l))
	out = append(out, l[:from]...)
	out = append(out, l[from+1:]...)

	out = append(out, Field{})
	copy(out[to+1:], out[to:])
	out[to] = moved
	return out, true
}

// ClampIndex bounds idx to a valid position in a list of length n. For empty
// lists it returns 0.
func ClampIndex(idx, n int) int {
	if n <= 0 || idx < 0 {
		return 0
	}
	if idx > n-1 {
		return n - 1
	}
	return idx
}
