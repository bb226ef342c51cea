package fields

import (
	"fmt"
	"strings"
)

// FieldType enumerates the supported field kinds.
type FieldType string

const (
	FieldTypeText        FieldType = "text"
	FieldTypeTextArea    FieldType = "textarea"
	FieldTypeEmail       FieldType = "email"
	FieldTypeNumber      FieldType = "number"
	FieldTypePhone       FieldType = "phone"
	FieldTypeDate        FieldType = "date"
	FieldTypeCheckbox    FieldType = "checkbox"
	FieldTypeSelect      FieldType = "select"
	FieldTypeRadio       FieldType = "radio"
	FieldTypeMultiSelect FieldType = "multiselect"
)

var fieldTypes = []FieldType{
	FieldTypeText,
	FieldTypeTextArea,
	FieldTypeEmail,
	FieldTypeNumber,
	FieldTypePhone,
	FieldTypeDate,
	FieldTypeCheckbox,
	FieldTypeSelect,
	FieldTypeRadio,
	FieldTypeMultiSelect,
}

// FieldTypes returns the supported kinds in their canonical order.
func FieldTypes() []FieldType {
	return append([]FieldType(nil), fieldTypes...)
}

// ParseFieldType resolves a kind name, ignoring case and surrounding space.
func ParseFieldType(raw string) (FieldType, error) {
	candidate := FieldType(strings.ToLower(strings.TrimSpace(raw)))
	if candidate.Valid() {
		return candidate, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFieldType, raw)
}

// Valid reports whether the kind belongs to the supported set.
func (t FieldType) Valid() bool {
	for _, known := range fieldTypes {
		if t == known {
			return true
		}
	}
	return false
}

// IsChoice reports whether fields of this kind carry an options list.
func (t FieldType) IsChoice() bool {
	switch t {
	case FieldTypeSelect, FieldTypeRadio, FieldTypeMultiSelect:
		return true
	default:
		return false
	}
}

// Field is a single entry in the form builder. ID is assigned when the field
// is created and never changes or gets reused.
type Field struct {
	ID          string    `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Label       string    `json:"label" yaml:"label"`
	Type        FieldType `json:"type" yaml:"type"`
	Required    bool      `json:"required" yaml:"required"`
	Placeholder string    `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Options     []string  `json:"options,omitempty" yaml:"options,omitempty"`
}

// Clone returns a deep copy of the field.
func (f Field) Clone() Field {
	if f.Options != nil {
		f.Options = append([]string(nil), f.Options...)
	}
	return f
}

// Normalize drops options from non-choice kinds so the stored shape matches
// the kind.
func (f Field) Normalize() Field {
	if !f.Type.IsChoice() {
		f.Options = nil
	}
	return f
}
