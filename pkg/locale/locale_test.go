package locale_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/iancoleman/orderedmap"

	"github.com/goliatone/go-crudgen/pkg/locale"
	"github.com/goliatone/go-crudgen/pkg/resource"
)

func book() resource.Descriptor {
	return resource.Descriptor{ResourceName: "Book"}
}

func keysOf(t *testing.T, data []byte, section string) ([]string, []string) {
	t.Helper()
	doc := orderedmap.New()
	if err := json.Unmarshal(data, doc); err != nil {
		t.Fatalf("unmarshal merged output: %v\n%s", err, data)
	}
	var inner []string
	if section != "" {
		value, ok := doc.Get(section)
		if !ok {
			t.Fatalf("section %q missing", section)
		}
		messages, ok := value.(orderedmap.OrderedMap)
		if !ok {
			t.Fatalf("section %q has type %T", section, value)
		}
		inner = messages.Keys()
	}
	return doc.Keys(), inner
}

func TestMerge_FreshFile(t *testing.T) {
	path := locale.Path(t.TempDir(), "en")

	out, err := locale.NewMerger().Merge(context.Background(), path, book())
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if !strings.HasPrefix(string(out), "{") {
		t.Fatalf("output should start with an opening brace: %q", out)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	top, inner := keysOf(t, data, "books")
	if diff := cmp.Diff([]string{"books"}, top); diff != "" {
		t.Fatalf("top-level keys (-want +got):\n%s", diff)
	}
	want := []string{"bookCreated", "notFound", "bookFound", "bookUpdated", "bookDeleted"}
	if diff := cmp.Diff(want, inner); diff != "" {
		t.Fatalf("section keys (-want +got):\n%s", diff)
	}
}

func TestApply_ExactOutput(t *testing.T) {
	got, err := locale.Apply(nil, book())
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	want := `{
  "books": {
    "bookCreated": "Book created.",
    "notFound": "Book not found with the id of",
    "bookFound": "Book found.",
    "bookUpdated": "Book updated.",
    "bookDeleted": "Book deleted."
  }
}
`
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestApply_PreservesExistingOrder(t *testing.T) {
	existing := []byte(`{
  "zeta": {"a": "1"},
  "auth": {"loginFailed": "Invalid credentials"},
  "alpha": "plain"
}`)
	got, err := locale.Apply(existing, book())
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	top, _ := keysOf(t, got, "")
	if diff := cmp.Diff([]string{"zeta", "auth", "alpha", "books"}, top); diff != "" {
		t.Fatalf("key order (-want +got):\n%s", diff)
	}
	if !strings.Contains(string(got), `"loginFailed": "Invalid credentials"`) {
		t.Fatalf("existing content lost:\n%s", got)
	}
}

func TestApply_ReplacesSectionInPlace(t *testing.T) {
	existing := []byte(`{"books": {"stale": "x"}, "users": {"userCreated": "User created."}}`)
	got, err := locale.Apply(existing, book())
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	top, inner := keysOf(t, got, "books")
	if diff := cmp.Diff([]string{"books", "users"}, top); diff != "" {
		t.Fatalf("key order (-want +got):\n%s", diff)
	}
	if len(inner) != 5 || inner[0] != "bookCreated" {
		t.Fatalf("section not replaced: %v", inner)
	}
}

func TestApply_WhitespaceOnlyFile(t *testing.T) {
	got, err := locale.Apply([]byte("  \n"), book())
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	top, _ := keysOf(t, got, "")
	if diff := cmp.Diff([]string{"books"}, top); diff != "" {
		t.Fatalf("keys (-want +got):\n%s", diff)
	}
}

func TestMerge_MalformedFileUntouched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locales", "it.json")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	original := []byte(`{"users": {"userCreated": "Utente creato."}`)
	if err := os.WriteFile(path, original, 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	_, err := locale.NewMerger().Merge(context.Background(), path, book())
	if !errors.Is(err, locale.ErrLocaleMalformed) {
		t.Fatalf("expected ErrLocaleMalformed, got %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != string(original) {
		t.Fatalf("malformed file was modified: %q", data)
	}
}

func TestMerge_RejectsNonObject(t *testing.T) {
	if _, err := locale.Apply([]byte(`["en"]`), book()); !errors.Is(err, locale.ErrLocaleMalformed) {
		t.Fatalf("expected ErrLocaleMalformed, got %v", err)
	}
}

func TestMerge_DryRun(t *testing.T) {
	path := locale.Path(t.TempDir(), "en")
	out, err := locale.NewMerger(locale.WithDryRun(true)).Merge(context.Background(), path, book())
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if !strings.Contains(string(out), `"books"`) {
		t.Fatalf("dry run output missing section: %s", out)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("dry run must not create %s", path)
	}
}

func TestMerge_DryRunAccumulatesPerPath(t *testing.T) {
	path := locale.Path(t.TempDir(), "en")
	merger := locale.NewMerger(locale.WithDryRun(true))
	ctx := context.Background()

	if _, err := merger.Merge(ctx, path, book()); err != nil {
		t.Fatalf("merge book: %v", err)
	}
	out, err := merger.Merge(ctx, path, resource.Descriptor{ResourceName: "Task"})
	if err != nil {
		t.Fatalf("merge task: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("preview is not JSON: %v", err)
	}
	for _, section := range []string{"books", "tasks"} {
		if _, ok := doc[section]; !ok {
			t.Fatalf("preview missing %q section: %s", section, out)
		}
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("dry run must not create %s", path)
	}

	merger.Reset()
	out, err = merger.Merge(ctx, path, resource.Descriptor{ResourceName: "Task"})
	if err != nil {
		t.Fatalf("merge after reset: %v", err)
	}
	if strings.Contains(string(out), `"books"`) {
		t.Fatalf("reset should drop buffered previews: %s", out)
	}
}

func TestMerge_SameEntryForEveryLocale(t *testing.T) {
	root := t.TempDir()
	merger := locale.NewMerger()
	var outputs []string
	for _, code := range locale.DefaultCodes {
		out, err := merger.Merge(context.Background(), locale.Path(root, code), book())
		if err != nil {
			t.Fatalf("merge %s: %v", code, err)
		}
		outputs = append(outputs, string(out))
	}
	if outputs[0] != outputs[1] {
		t.Fatalf("locales diverged:\n%s\n---\n%s", outputs[0], outputs[1])
	}
}
