package fields

import "errors"

var (
	// ErrDuplicateFieldID is returned when adding a field whose id already
	// exists in the list. The list is left unchanged.
	ErrDuplicateFieldID = errors.New("fields: duplicate field id")
	// ErrEmptyFieldID is returned when a field without an id reaches the list.
	ErrEmptyFieldID = errors.New("fields: field id is required")
	// ErrUnknownFieldType signals a type outside the supported set.
	ErrUnknownFieldType = errors.New("fields: unknown field type")
)
