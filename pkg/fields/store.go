package fields

// Store owns the authoritative field list for one editing session. It applies
// the pure List operations and swaps in the result; the lists it hands out
// must be treated as read-only.
type Store struct {
	fields List
}

// NewStore seeds a store with a copy of initial.
func NewStore(initial List) *Store {
	return &Store{fields: initial.Clone()}
}

// Fields returns the current list.
func (s *Store) Fields() List {
	if s == nil {
		return nil
	}
	return s.fields
}

// Add appends field, rejecting duplicate ids without touching the list.
func (s *Store) Add(field Field) (List, error) {
	next, err := s.fields.Add(field)
	if err != nil {
		return s.fields, err
	}
	s.fields = next
	return next, nil
}

// Remove drops the field with id; absent ids are a no-op.
func (s *Store) Remove(id string) (List, bool) {
	return s.swap(s.fields.Remove(id))
}

// Update merges patch into the field with id; absent ids are a no-op.
func (s *Store) Update(id string, patch Patch) (List, bool) {
	return s.swap(s.fields.Update(id, patch))
}

// MoveTo relocates the field with id to the clamped target index.
func (s *Store) MoveTo(id string, target int) (List, bool) {
	return s.swap(s.fields.MoveTo(id, target))
}

// Reset replaces the whole list with a copy of list. The boolean reports
// whether the content differs from what was there before.
func (s *Store) Reset(list List) (List, bool) {
	changed := !s.fields.Equal(list)
	s.fields = list.Clone()
	return s.fields, changed
}

func (s *Store) swap(next List, changed bool) (List, bool) {
	if changed {
		s.fields = next
	}
	return s.fields, changed
}
