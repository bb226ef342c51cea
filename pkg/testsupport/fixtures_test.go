package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadList(t *testing.T) {
	if _, err := LoadList(""); err == nil {
		t.Fatalf("expected error for empty path")
	}

	path := filepath.Join(t.TempDir(), "list.yaml")
	if err := os.WriteFile(path, []byte("- name: a\n  type: text\n- name: b\n  type: checkbox\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	list := MustLoadList(t, path)
	if diff := CompareGolden([]string{"fixture-1", "fixture-2"}, list.IDs()); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteMaybeGolden(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.json")

	t.Setenv(UpdateGoldensEnv, "")
	if WriteMaybeGolden(t, path, []byte("x")) {
		t.Fatalf("expected no write without %s", UpdateGoldensEnv)
	}

	t.Setenv(UpdateGoldensEnv, "1")
	if !WriteMaybeGolden(t, path, []byte("x")) {
		t.Fatalf("expected write with %s", UpdateGoldensEnv)
	}
	if got := string(MustReadGolden(t, path)); got != "x" {
		t.Fatalf("golden content = %q", got)
	}
}
