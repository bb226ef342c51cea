package testsupport

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/fields"
)

// UpdateGoldensEnv enables golden rewrites when set to any value.
const UpdateGoldensEnv = "UPDATE_GOLDENS"

// MustLoadList reads a field list fixture. Fields without an id get
// sequential "fixture-N" ids so results stay deterministic.
func MustLoadList(t *testing.T, path string) fields.List {
	t.Helper()

	list, err := LoadList(path)
	if err != nil {
		t.Fatalf("load list: %v", err)
	}
	return list
}

// LoadList returns a fixture list without requiring testing.T, allowing
// callers to wire fixtures in setup functions.
func LoadList(path string) (fields.List, error) {
	if path == "" {
		return nil, errors.New("testsupport: list path is required")
	}
	list, err := fields.LoadFile(path, fields.SequenceIDs("fixture"))
	if err != nil {
		return nil, fmt.Errorf("testsupport: %w", err)
	}
	return list, nil
}

// WriteGolden writes list to a golden file when UPDATE_GOLDENS is set. The
// format follows the file extension.
func WriteGolden(t *testing.T, path string, list fields.List) {
	t.Helper()

	if os.Getenv(UpdateGoldensEnv) == "" {
		return
	}
	payload, err := fields.Encode(list, fields.FormatFromPath(path))
	if err != nil {
		t.Fatalf("encode golden: %v", err)
	}
	WriteMaybeGolden(t, path, payload)
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv(UpdateGoldensEnv) == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
