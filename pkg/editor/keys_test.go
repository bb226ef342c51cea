package editor

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseKey(t *testing.T) {
	cases := []struct {
		chord string
		want  Key
	}{
		{chord: "ctrl+z", want: Key{Name: "z", Ctrl: true}},
		{chord: "Cmd+Shift+Z", want: Key{Name: "z", Meta: true, Shift: true}},
		{chord: "control+y", want: Key{Name: "y", Ctrl: true}},
		{chord: "esc", want: Key{Name: "escape"}},
		{chord: "alt+z", want: Key{Name: "z", Alt: true}},
	}
	for _, tc := range cases {
		t.Run(tc.chord, func(t *testing.T) {
			got, err := ParseKey(tc.chord)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("key mismatch (-want +got):\n%s", diff)
			}
		})
	}

	for _, bad := range []string{"", "ctrl+", "hyper+z"} {
		if _, err := ParseKey(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestResolve(t *testing.T) {
	cases := map[string]Action{
		"ctrl+z":       ActionUndo,
		"cmd+z":        ActionUndo,
		"ctrl+y":       ActionRedo,
		"cmd+y":        ActionRedo,
		"ctrl+shift+z": ActionRedo,
		"cmd+shift+z":  ActionRedo,
		"escape":       ActionCancelDrag,
		"z":            ActionNone,
		"ctrl+alt+z":   ActionNone,
		"ctrl+shift+y": ActionNone,
		"shift+esc":    ActionNone,
	}
	for chord, want := range cases {
		if got := Resolve(MustParseKey(chord)); got != want {
			t.Fatalf("Resolve(%q) = %v, want %v", chord, got, want)
		}
	}
}

func TestKeyString(t *testing.T) {
	if got := MustParseKey("shift+cmd+z").String(); got != "cmd+shift+z" {
		t.Fatalf("String() = %q", got)
	}
}

func TestHandleKey_DrivesHistory(t *testing.T) {
	c, rec := newController(t, list("A"))
	c.ApplyAdd(field("B"))

	if action, ok := c.HandleKey(MustParseKey("ctrl+z")); action != ActionUndo || !ok {
		t.Fatalf("ctrl+z = %v, %v", action, ok)
	}
	assertIDs(t, []string{"A"}, c.Fields())

	if action, ok := c.HandleKey(MustParseKey("cmd+shift+z")); action != ActionRedo || !ok {
		t.Fatalf("cmd+shift+z = %v, %v", action, ok)
	}
	assertIDs(t, []string{"A", "B"}, c.Fields())

	if _, ok := c.HandleKey(MustParseKey("ctrl+y")); ok {
		t.Fatalf("expected redo with empty future to be a no-op")
	}
	if action, ok := c.HandleKey(MustParseKey("q")); action != ActionNone || ok {
		t.Fatalf("unbound key = %v, %v", action, ok)
	}
	if len(rec.calls) != 3 {
		t.Fatalf("onChange calls = %d, want 3", len(rec.calls))
	}
}
