package importer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/fields"
	"github.com/goliatone/go-formbuilder/pkg/testsupport"
)

func readFixture(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "registration.yaml"))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	return data
}

func TestFromOpenAPI_MapsRequestBody(t *testing.T) {
	result, err := FromOpenAPI(context.Background(), readFixture(t), "registerAttendee",
		WithIDGenerator(fields.SequenceIDs("imp")))
	if err != nil {
		t.Fatalf("import: %v", err)
	}

	want := fields.List{
		{ID: "imp-1", Name: "firstName", Label: "First Name", Type: fields.FieldTypeText, Required: true, Placeholder: "Jane"},
		{ID: "imp-2", Name: "email", Label: "Work email", Type: fields.FieldTypeEmail, Required: true},
		{ID: "imp-3", Name: "ticket_type", Label: "Ticket Type", Type: fields.FieldTypeSelect, Options: []string{"standard", "vip"}},
		{ID: "imp-4", Name: "age", Label: "Age", Type: fields.FieldTypeNumber},
		{ID: "imp-5", Name: "dietary", Label: "Dietary", Type: fields.FieldTypeMultiSelect, Options: []string{"vegan", "halal", "kosher"}},
		{ID: "imp-6", Name: "newsletter", Label: "Newsletter", Type: fields.FieldTypeCheckbox},
		{ID: "imp-7", Name: "notes", Label: "Notes", Type: fields.FieldTypeTextArea, Placeholder: "Anything we should know?"},
	}
	if diff := cmp.Diff(want, result.Fields); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"address"}, result.Skipped); diff != "" {
		t.Fatalf("skipped mismatch (-want +got):\n%s", diff)
	}
}

func TestFromOpenAPI_Golden(t *testing.T) {
	result, err := FromOpenAPI(testsupport.Context(), readFixture(t), "registerAttendee",
		WithIDGenerator(fields.SequenceIDs("imp")))
	if err != nil {
		t.Fatalf("import: %v", err)
	}

	golden := filepath.Join("testdata", "registerAttendee.golden.json")
	testsupport.WriteGolden(t, golden, result.Fields)

	want := testsupport.MustLoadList(t, golden)
	if diff := testsupport.CompareGolden(want, result.Fields); diff != "" {
		t.Fatalf("golden mismatch (-want +got):\n%s", diff)
	}
}

func TestFromOpenAPI_Errors(t *testing.T) {
	ctx := context.Background()
	data := readFixture(t)

	if _, err := FromOpenAPI(ctx, data, "missing"); !errors.Is(err, ErrOperationNotFound) {
		t.Fatalf("expected ErrOperationNotFound, got %v", err)
	}
	if _, err := FromOpenAPI(ctx, data, "listEvents"); !errors.Is(err, ErrNoRequestBody) {
		t.Fatalf("expected ErrNoRequestBody, got %v", err)
	}
	if _, err := FromOpenAPI(ctx, []byte("  "), "registerAttendee"); err == nil {
		t.Fatalf("expected error for empty payload")
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := FromOpenAPI(cancelled, data, "registerAttendee"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
}

func TestOperations(t *testing.T) {
	ids, err := Operations(context.Background(), readFixture(t))
	if err != nil {
		t.Fatalf("operations: %v", err)
	}
	if diff := cmp.Diff([]string{"listEvents", "registerAttendee"}, ids); diff != "" {
		t.Fatalf("operations mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultLabeler(t *testing.T) {
	cases := map[string]string{
		"firstName":    "First Name",
		"ticket_type":  "Ticket Type",
		"badge-color":  "Badge Color",
		"address2":     "Address 2",
		"émail":        "Émail",
		"ünterSchrift": "Ünter Schrift",
		"straßeNr":     "Straße Nr",
	}
	for in, want := range cases {
		if got := DefaultLabeler(in); got != want {
			t.Fatalf("DefaultLabeler(%q) = %q, want %q", in, got, want)
		}
	}
}
