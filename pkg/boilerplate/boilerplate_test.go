package boilerplate_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-crudgen/pkg/boilerplate"
	"github.com/goliatone/go-crudgen/pkg/fragments"
	"github.com/goliatone/go-crudgen/pkg/resource"
)

func TestStore_EmbeddedSet(t *testing.T) {
	store, err := boilerplate.NewStore()
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	want := []string{"controller", "model", "route", "transformer", "validation"}
	if diff := cmp.Diff(want, store.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	if got := store.Manifest().Name; got != "express-mongoose" {
		t.Fatalf("manifest name = %q", got)
	}

	markers := map[string][]fragments.Slot{
		"model":       {fragments.SlotFields},
		"route":       nil,
		"validation":  {fragments.SlotCreateSchema, fragments.SlotUpdateSchema},
		"controller":  {fragments.SlotUpdateFields, fragments.SlotUpdateLogic},
		"transformer": {fragments.SlotListData, fragments.SlotSingleData},
	}
	for name, slots := range markers {
		tpl, err := store.Load(context.Background(), name)
		if err != nil {
			t.Fatalf("load %s: %v", name, err)
		}
		if err := tpl.Verify(slots...); err != nil {
			t.Fatalf("verify %s: %v", name, err)
		}
		if !strings.Contains(strings.ToLower(tpl.Text), boilerplate.SampleLower) {
			t.Fatalf("%s does not reference the sample identifier", name)
		}
	}
}

func TestStore_UnknownTemplate(t *testing.T) {
	store, err := boilerplate.NewStore()
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	_, err = store.Load(context.Background(), "seeder")
	if !errors.Is(err, boilerplate.ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}
}

func TestStore_OverrideLayerWins(t *testing.T) {
	override := fstest.MapFS{
		"model.js": {Data: []byte("// custom Sample\n/* Fields */\n")},
	}
	store, err := boilerplate.NewStore(boilerplate.WithFS(override))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	model, err := store.Load(context.Background(), "model")
	if err != nil {
		t.Fatalf("load model: %v", err)
	}
	if model.Text != "// custom Sample\n/* Fields */\n" {
		t.Fatalf("override not applied: %q", model.Text)
	}

	route, err := store.Load(context.Background(), "route")
	if err != nil {
		t.Fatalf("load route: %v", err)
	}
	if !strings.Contains(route.Text, "/api/v1/samples") {
		t.Fatalf("route should fall through to the bundled set")
	}
}

func TestStore_WithDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "route.js"), []byte("// Sample routes\n"), 0o644); err != nil {
		t.Fatalf("write override: %v", err)
	}
	store, err := boilerplate.NewStore(boilerplate.WithDir(dir))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	route, err := store.Load(context.Background(), "route")
	if err != nil {
		t.Fatalf("load route: %v", err)
	}
	if route.Text != "// Sample routes\n" {
		t.Fatalf("unexpected route text %q", route.Text)
	}
}

func TestStore_Variant(t *testing.T) {
	set := fstest.MapFS{
		"manifest.yaml": {Data: []byte(`name: custom
version: 2.0.0
templates:
  model: model.js
variants:
  typed:
    templates:
      model: typed/model.js
`)},
		"model.js":       {Data: []byte("plain /* Fields */")},
		"typed/model.js": {Data: []byte("typed /* Fields */")},
	}

	plain, err := boilerplate.NewStore(boilerplate.WithFS(set), boilerplate.WithoutEmbedded())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	tpl, err := plain.Load(context.Background(), "model")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if tpl.Text != "plain /* Fields */" {
		t.Fatalf("unexpected base template %q", tpl.Text)
	}

	typed, err := boilerplate.NewStore(
		boilerplate.WithFS(set),
		boilerplate.WithoutEmbedded(),
		boilerplate.WithVariant("typed"),
	)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	tpl, err = typed.Load(context.Background(), "model")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if tpl.Path != "typed/model.js" || tpl.Text != "typed /* Fields */" {
		t.Fatalf("variant not applied: %+v", tpl)
	}
	if diff := cmp.Diff([]string{"typed"}, boilerplate.VariantNames(typed.Manifest())); diff != "" {
		t.Fatalf("variant names mismatch (-want +got):\n%s", diff)
	}

	if _, err := boilerplate.NewStore(boilerplate.WithFS(set), boilerplate.WithVariant("missing")); err == nil {
		t.Fatalf("expected unknown variant to fail")
	}
}

func TestStore_ManifestlessSetUsesConvention(t *testing.T) {
	set := fstest.MapFS{
		"controller.js": {Data: []byte("/* Update Fields */ /* Update Logic */")},
	}
	store, err := boilerplate.NewStore(boilerplate.WithFS(set), boilerplate.WithoutEmbedded())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	tpl, err := store.Load(context.Background(), "controller")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if tpl.Path != "controller.js" {
		t.Fatalf("path = %q", tpl.Path)
	}
}

func TestStore_CancelledContext(t *testing.T) {
	store, err := boilerplate.NewStore()
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := store.Load(ctx, "model"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestTemplate_RenderMalformed(t *testing.T) {
	tpl := boilerplate.Template{Name: "validation", Text: "const x = { /* Create Schema */ };"}
	_, err := tpl.Render(resource.NamesFor("Task"), fragments.Set{},
		fragments.SlotCreateSchema, fragments.SlotUpdateSchema)

	if !errors.Is(err, boilerplate.ErrTemplateMalformed) {
		t.Fatalf("expected ErrTemplateMalformed, got %v", err)
	}
	var malformed *boilerplate.MalformedError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected *MalformedError, got %T", err)
	}
	if diff := cmp.Diff([]fragments.Slot{fragments.SlotUpdateSchema}, malformed.Missing); diff != "" {
		t.Fatalf("missing mismatch (-want +got):\n%s", diff)
	}
}

func TestTemplate_RenderRenamesBeforeSubstitution(t *testing.T) {
	tpl := boilerplate.Template{
		Name: "model",
		Text: "const SampleSchema = {\n    /* Fields */\n}; // sample /* Fields */",
	}
	values := fragments.Set{fragments.SlotFields: "sampleSize: { type: Number }"}

	got, err := tpl.Render(resource.NamesFor("Task"), values, fragments.SlotFields)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "const TaskSchema = {\n    sampleSize: { type: Number }\n}; // task /* Fields */"
	if got != want {
		t.Fatalf("render mismatch\nwant: %q\n got: %q", want, got)
	}
}

func TestRename_CaseSensitive(t *testing.T) {
	got := boilerplate.Rename("Sample sample SAMPLE samples", resource.NamesFor("Book"))
	if got != "Book book SAMPLE books" {
		t.Fatalf("unexpected rename %q", got)
	}

	got = boilerplate.Rename(`const SampleSchema = mongoose.model("Sample"); sample.save()`, resource.NamesFor("Upsample"))
	want := `const UpsampleSchema = mongoose.model("Upsample"); upsample.save()`
	if got != want {
		t.Fatalf("rename must not touch replaced text: got %q, want %q", got, want)
	}
}
