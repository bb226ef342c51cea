package fields

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sample() List {
	return List{
		{ID: "a", Name: "first_name", Label: "First name", Type: FieldTypeText, Required: true},
		{ID: "b", Name: "email", Label: "Email", Type: FieldTypeEmail, Placeholder: "you@example.com"},
		{ID: "c", Name: "ticket", Label: "Ticket", Type: FieldTypeSelect, Options: []string{"standard", "vip"}},
	}
}

func TestAdd_AppendsWithoutMutatingInput(t *testing.T) {
	base := sample()
	before := base.Fingerprint()

	next, err := base.Add(Field{ID: "d", Name: "phone", Type: FieldTypePhone})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if diff := cmp.Diff([]string{"a", "b", "c", "d"}, next.IDs()); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}
	if base.Fingerprint() != before {
		t.Fatalf("input list was mutated")
	}
}

func TestAdd_RejectsDuplicateID(t *testing.T) {
	base := sample()

	next, err := base.Add(Field{ID: "b", Name: "dup", Type: FieldTypeText})
	if !errors.Is(err, ErrDuplicateFieldID) {
		t.Fatalf("expected ErrDuplicateFieldID, got %v", err)
	}
	if !next.Equal(base) {
		t.Fatalf("expected list unchanged on rejected add")
	}
}

func TestAdd_RejectsEmptyID(t *testing.T) {
	if _, err := sample().Add(Field{Name: "x"}); !errors.Is(err, ErrEmptyFieldID) {
		t.Fatalf("expected ErrEmptyFieldID, got %v", err)
	}
}

func TestAdd_DropsOptionsOnNonChoiceKinds(t *testing.T) {
	next, err := List{}.Add(Field{ID: "x", Type: FieldTypeText, Options: []string{"stray"}})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if next[0].Options != nil {
		t.Fatalf("expected options to be dropped, got %v", next[0].Options)
	}
}

func TestRemove(t *testing.T) {
	base := sample()

	next, ok := base.Remove("b")
	if !ok {
		t.Fatalf("expected remove to report a change")
	}
	if diff := cmp.Diff([]string{"a", "c"}, next.IDs()); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}
	if base.Len() != 3 {
		t.Fatalf("input list was mutated")
	}

	same, ok := base.Remove("missing")
	if ok {
		t.Fatalf("expected absent id to be a no-op")
	}
	if !same.Equal(base) {
		t.Fatalf("expected unchanged list for absent id")
	}
}

func TestUpdate(t *testing.T) {
	base := sample()

	next, ok := base.Update("a", Merge(SetLabel("Given name"), SetRequired(false)))
	if !ok {
		t.Fatalf("expected update to report a change")
	}
	got, _ := next.Get("a")
	want := Field{ID: "a", Name: "first_name", Label: "Given name", Type: FieldTypeText}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("field mismatch (-want +got):\n%s", diff)
	}
	if base[0].Label != "First name" {
		t.Fatalf("input list was mutated")
	}
}

func TestUpdate_NoOps(t *testing.T) {
	base := sample()

	if _, ok := base.Update("missing", SetLabel("x")); ok {
		t.Fatalf("expected absent id to be a no-op")
	}
	if _, ok := base.Update("a", SetLabel("First name")); ok {
		t.Fatalf("expected identical patch to be a no-op")
	}
	if _, ok := base.Update("a", Patch{}); ok {
		t.Fatalf("expected empty patch to be a no-op")
	}
	if _, ok := base.Update("missing", Patch{}); ok {
		t.Fatalf("expected empty patch on absent id to be a no-op")
	}
}

func TestPatch_Empty(t *testing.T) {
	if !(Patch{}).Empty() || !Merge().Empty() {
		t.Fatalf("expected zero patch to be empty")
	}
	if SetRequired(false).Empty() || SetOptions(nil).Empty() {
		t.Fatalf("expected setter patches to be non-empty")
	}
}

func TestUpdate_SwitchingToTextDropsOptions(t *testing.T) {
	next, ok := sample().Update("c", SetType(FieldTypeText))
	if !ok {
		t.Fatalf("expected change")
	}
	got, _ := next.Get("c")
	if got.Options != nil {
		t.Fatalf("expected options dropped, got %v", got.Options)
	}
}

func TestUpdate_OptionsAreCopied(t *testing.T) {
	opts := []string{"one", "two"}
	next, _ := sample().Update("c", SetOptions(opts))
	opts[0] = "mutated"

	got, _ := next.Get("c")
	if diff := cmp.Diff([]string{"one", "two"}, got.Options); diff != "" {
		t.Fatalf("options aliasing (-want +got):\n%s", diff)
	}
}

func TestMoveTo(t *testing.T) {
	cases := []struct {
		name    string
		id      string
		target  int
		want    []string
		changed bool
	}{
		{name: "to front", id: "c", target: 0, want: []string{"c", "a", "b"}, changed: true},
		{name: "to back", id: "a", target: 2, want: []string{"b", "c", "a"}, changed: true},
		{name: "one step down", id: "a", target: 1, want: []string{"b", "a", "c"}, changed: true},
		{name: "clamped high", id: "a", target: 99, want: []string{"b", "c", "a"}, changed: true},
		{name: "clamped low", id: "b", target: -5, want: []string{"b", "a", "c"}, changed: true},
		{name: "same index", id: "b", target: 1, want: []string{"a", "b", "c"}, changed: false},
		{name: "absent id", id: "zz", target: 0, want: []string{"a", "b", "c"}, changed: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			base := sample()
			next, changed := base.MoveTo(tc.id, tc.target)
			if changed != tc.changed {
				t.Fatalf("changed = %v, want %v", changed, tc.changed)
			}
			if diff := cmp.Diff(tc.want, next.IDs()); diff != "" {
				t.Fatalf("order mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff([]string{"a", "b", "c"}, base.IDs()); diff != "" {
				t.Fatalf("input mutated (-want +got):\n%s", diff)
			}
		})
	}
}

func TestClone_IsDeep(t *testing.T) {
	base := sample()
	clone := base.Clone()
	clone[2].Options[0] = "changed"
	clone[0].Label = "changed"

	if base[2].Options[0] != "standard" || base[0].Label != "First name" {
		t.Fatalf("clone shares memory with source")
	}
}

func TestFingerprint_NilAndEmptyMatch(t *testing.T) {
	var nilList List
	if nilList.Fingerprint() != (List{}).Fingerprint() {
		t.Fatalf("expected nil and empty lists to share a fingerprint")
	}
	if !nilList.Equal(List{}) {
		t.Fatalf("expected nil and empty lists to be equal")
	}
}

func TestValidate(t *testing.T) {
	if err := sample().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dup := append(sample(), Field{ID: "a"})
	if err := dup.Validate(); !errors.Is(err, ErrDuplicateFieldID) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
	empty := List{{Name: "anon"}}
	if err := empty.Validate(); !errors.Is(err, ErrEmptyFieldID) {
		t.Fatalf("expected empty id error, got %v", err)
	}
}

func TestParseFieldType(t *testing.T) {
	got, err := ParseFieldType("  Select ")
	if err != nil || got != FieldTypeSelect {
		t.Fatalf("ParseFieldType = %q, %v", got, err)
	}
	if _, err := ParseFieldType("signature"); !errors.Is(err, ErrUnknownFieldType) {
		t.Fatalf("expected ErrUnknownFieldType, got %v", err)
	}
	if !FieldTypeRadio.IsChoice() || FieldTypeDate.IsChoice() {
		t.Fatalf("IsChoice misclassified kinds")
	}
}
