package crudgen

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-crudgen/pkg/orchestrator"
	"github.com/goliatone/go-crudgen/pkg/resource"
)

func TestGenerate_FromDescriptors(t *testing.T) {
	root := t.TempDir()
	descriptors := []Descriptor{{
		ResourceName: "Task",
		Fields: []Field{
			{Key: "title", Type: resource.FieldTypeString, Required: true},
		},
	}}

	result, err := Generate(context.Background(), descriptors,
		orchestrator.WithRoot(root),
		orchestrator.WithLocales("en"),
	)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if result.Failed() {
		t.Fatalf("unexpected failures: %v", result.Err())
	}
	if got := len(result.Steps); got != 6 {
		t.Fatalf("expected 6 steps, got %d", got)
	}
	if _, err := os.Stat(filepath.Join(root, "controllers", "TaskController.js")); err != nil {
		t.Fatalf("controller not written: %v", err)
	}
}

func TestLoadDescriptors_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crudgen.yaml")
	doc := "resources:\n  - resourceName: Book\n    fields:\n      - key: title\n        type: String\n        required: true\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	descriptors, err := LoadDescriptors(context.Background(), resource.SourceFromFile(path))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(descriptors) != 1 || descriptors[0].ResourceName != "Book" {
		t.Fatalf("unexpected descriptors %+v", descriptors)
	}

	result, err := GenerateFromSource(context.Background(), resource.SourceFromFile(path),
		orchestrator.WithRoot(t.TempDir()),
		orchestrator.WithDryRun(true),
		orchestrator.WithLocales(),
	)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(result.Steps) != 5 {
		t.Fatalf("expected 5 artifact steps, got %d", len(result.Steps))
	}
}

func TestEmbeddedBoilerplates(t *testing.T) {
	for _, name := range []string{"manifest.yaml", "model.js", "route.js", "validation.js", "controller.js", "transformer.js"} {
		if _, err := fs.Stat(EmbeddedBoilerplates(), name); err != nil {
			t.Fatalf("embedded boilerplate %s: %v", name, err)
		}
	}
}
