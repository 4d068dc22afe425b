package gotemplate

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-crudgen/pkg/render/template"
	"github.com/goliatone/go-crudgen/pkg/resource"
)

// Engine is a pongo2-backed template.TemplateRenderer for inline patterns.
type Engine struct {
	mu sync.RWMutex

	templateSet *pongo2.TemplateSet
	patterns    map[string]*pongo2.Template
}

var _ template.TemplateRenderer = (*Engine)(nil)

// New constructs an Engine. Patterns are self-contained: include, extends and
// import tags fail because the set has no template source.
func New() *Engine {
	registerDefaultFilters()
	return &Engine{
		templateSet: pongo2.NewSet("crudgen", noSource{}),
		patterns:    make(map[string]*pongo2.Template),
	}
}

// RenderString executes an inline template. Parsed patterns are cached since
// the same path pattern is rendered once per resource.
func (e *Engine) RenderString(templateContent string, data any) (string, error) {
	if e == nil || e.templateSet == nil {
		return "", errors.New("gotemplate: engine is nil")
	}

	tmpl, err := e.parse(templateContent)
	if err != nil {
		return "", fmt.Errorf("gotemplate: parse template string: %w", err)
	}

	viewContext, err := toContext(data)
	if err != nil {
		return "", fmt.Errorf("gotemplate: convert data: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteWriter(viewContext, &buf); err != nil {
		return "", fmt.Errorf("gotemplate: execute template string: %w", err)
	}
	return buf.String(), nil
}

func (e *Engine) parse(content string) (*pongo2.Template, error) {
	e.mu.RLock()
	tmpl, ok := e.patterns[content]
	e.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if tmpl, ok := e.patterns[content]; ok {
		return tmpl, nil
	}
	tmpl, err := e.templateSet.FromString(content)
	if err != nil {
		return nil, err
	}
	e.patterns[content] = tmpl
	return tmpl, nil
}

func toContext(data any) (pongo2.Context, error) {
	switch v := data.(type) {
	case nil:
		return pongo2.Context{}, nil
	case map[string]any:
		out := make(pongo2.Context, len(v))
		for key, value := range v {
			if key = strings.TrimSpace(key); key != "" {
				out[key] = value
			}
		}
		return out, nil
	case resource.Names:
		return pongo2.Context(v.Context()), nil
	default:
		return nil, fmt.Errorf("unsupported template data %T", data)
	}
}

// noSource is the loader of a set that has no named templates.
type noSource struct{}

func (noSource) Abs(_, name string) string { return name }

func (noSource) Get(path string) (io.Reader, error) {
	return nil, fmt.Errorf("gotemplate: %q: path patterns cannot load other templates", path)
}

func registerDefaultFilters() {
	if !pongo2.FilterExists("plural") {
		_ = pongo2.RegisterFilter("plural", filterPlural)
	}
}

// filterPlural lowercases and pluralises a resource name the same way the
// generator derives route names.
func filterPlural(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.Len() <= 0 {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsValue(resource.NamesFor(in.String()).Plural), nil
}
