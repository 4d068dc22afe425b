package gotemplate_test

import (
	"testing"

	"github.com/goliatone/go-crudgen/pkg/render/template/gotemplate"
	"github.com/goliatone/go-crudgen/pkg/resource"
)

func TestEngine_RenderStringWithNames(t *testing.T) {
	engine := gotemplate.New()

	cases := map[string]string{
		"models/{{ name }}.js":                "models/Task.js",
		"routes/{{ plural }}.js":              "routes/tasks.js",
		"controllers/{{ name }}Controller.js": "controllers/TaskController.js",
		"openapi/{{ name|plural }}.json":      "openapi/tasks.json",
		"{{ lower }}/index.js":                "task/index.js",
	}
	for pattern, want := range cases {
		got, err := engine.RenderString(pattern, resource.NamesFor("Task"))
		if err != nil {
			t.Fatalf("render %q: %v", pattern, err)
		}
		if got != want {
			t.Fatalf("render %q: got %q, want %q", pattern, got, want)
		}
	}
}

func TestEngine_RenderStringCachesPatterns(t *testing.T) {
	engine := gotemplate.New()

	for _, name := range []string{"Task", "Book"} {
		got, err := engine.RenderString("routes/{{ plural }}.js", resource.NamesFor(name))
		if err != nil {
			t.Fatalf("render: %v", err)
		}
		if want := "routes/" + resource.NamesFor(name).Plural + ".js"; got != want {
			t.Fatalf("got %q, want %q", got, want)
		}
	}
}

func TestEngine_RenderStringWithMap(t *testing.T) {
	got, err := gotemplate.New().RenderString("models/{{ name }}.js", map[string]any{" name ": "Note"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "models/Note.js" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestEngine_RejectsIncludes(t *testing.T) {
	if _, err := gotemplate.New().RenderString(`{% include "header.tpl" %}`, nil); err == nil {
		t.Fatalf("expected include to fail without a template source")
	}
}

func TestEngine_RejectsUnsupportedData(t *testing.T) {
	if _, err := gotemplate.New().RenderString("{{ name }}", 42); err == nil {
		t.Fatalf("expected error for unsupported data")
	}
}
