package fields

// Patch describes a partial update. Nil members leave the corresponding
// attribute untouched. The id is not patchable.
type Patch struct {
	Name        *string
	Label       *string
	Type        *FieldType
	Required    *bool
	Placeholder *string
	Options     *[]string
}

// Empty reports whether the patch carries no changes.
func (p Patch) Empty() bool {
	return p.Name == nil &&
		p.Label == nil &&
		p.Type == nil &&
		p.Required == nil &&
		p.Placeholder == nil &&
		p.Options == nil
}

// Apply returns a copy of field with the patch merged in. Switching to a
// non-choice kind drops any options.
func (p Patch) Apply(field Field) Field {
	out := field.Clone()
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Label != nil {
		out.Label = *p.Label
	}
	if p.Type != nil {
		out.Type = *p.Type
	}
	if p.Required != nil {
		out.Required = *p.Required
	}
	if p.Placeholder != nil {
		out.Placeholder = *p.Placeholder
	}
	if p.Options != nil {
		out.Options = append([]string(nil), (*p.Options)...)
	}
	return out.Normalize()
}

// SetName returns a patch updating the name.
func SetName(v string) Patch { return Patch{Name: &v} }

// SetLabel returns a patch updating the label.
func SetLabel(v string) Patch { return Patch{Label: &v} }

// SetType returns a patch updating the kind.
func SetType(v FieldType) Patch { return Patch{Type: &v} }

// SetRequired returns a patch updating the required flag.
func SetRequired(v bool) Patch { return Patch{Required: &v} }

// SetPlaceholder returns a patch updating the placeholder.
func SetPlaceholder(v string) Patch { return Patch{Placeholder: &v} }

// SetOptions returns a patch replacing the options list.
func SetOptions(v []string) Patch {
	clone := append([]string(nil), v...)
	return Patch{Options: &clone}
}

// Merge combines patches; later members win.
func Merge(patches ...Patch) Patch {
	var out Patch
	for _, p := range patches {
		if p.Name != nil {
			out.Name = p.Name
		}
		if p.Label != nil {
			out.Label = p.Label
		}
		if p.Type != nil {
			out.Type = p.Type
		}
		if p.Required != nil {
			out.Required = p.Required
		}
		if p.Placeholder != nil {
			out.Placeholder = p.Placeholder
		}
		if p.Options != nil {
			out.Options = p.Options
		}
	}
	return out
}
