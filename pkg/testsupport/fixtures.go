package testsupport

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-crudgen/pkg/resource"
)

// LoadDescriptors reads a descriptor fixture using a file source. Testing
// helpers fail the test on error to keep call sites concise.
func LoadDescriptors(t *testing.T, path string) []resource.Descriptor {
	t.Helper()

	descriptors, err := LoadDescriptorsFromPath(path)
	if err != nil {
		t.Fatalf("load descriptors: %v", err)
	}
	return descriptors
}

// LoadDescriptorsFromPath parses a descriptor fixture without requiring
// testing.T so callers can wire fixtures in setup functions.
func LoadDescriptorsFromPath(path string) ([]resource.Descriptor, error) {
	if path == "" {
		return nil, errors.New("testsupport: descriptor path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testsupport: read descriptor: %w", err)
	}
	doc, err := resource.NewDocument(resource.SourceFromFile(path), data)
	if err != nil {
		return nil, fmt.Errorf("testsupport: new document: %w", err)
	}
	return resource.Parse(doc)
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

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
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

// AssertGoldenFile compares got with the golden at path, rewriting the golden
// instead when UPDATE_GOLDENS is set.
func AssertGoldenFile(t *testing.T, path string, got []byte) {
	t.Helper()
	if WriteMaybeGolden(t, path, got) {
		return
	}
	want := MustReadGoldenString(t, path)
	if diff := CompareGolden(want, string(got)); diff != "" {
		t.Fatalf("golden mismatch for %s (-want +got):\n%s", path, diff)
	}
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
