package render

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-crudgen/pkg/render/template"
	"github.com/goliatone/go-crudgen/pkg/render/template/gotemplate"
	"github.com/goliatone/go-crudgen/pkg/resource"
)

const (
	// DefaultRoot is the generation root used when none is configured.
	DefaultRoot = "server"

	fileMode = 0o644
	dirMode  = 0o755
)

// Output describes one write.
type Output struct {
	Artifact string
	Resource string
	Path     string
	Content  []byte
	DryRun   bool
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithRoot sets the generation root.
func WithRoot(root string) WriterOption {
	return func(w *Writer) {
		if trimmed := strings.TrimSpace(root); trimmed != "" {
			w.root = trimmed
		}
	}
}

// WithDryRun renders artifacts without touching the filesystem.
func WithDryRun(enabled bool) WriterOption {
	return func(w *Writer) {
		w.dryRun = enabled
	}
}

// WithPathRenderer overrides the engine used for destination path patterns.
func WithPathRenderer(renderer template.TemplateRenderer) WriterOption {
	return func(w *Writer) {
		if renderer != nil {
			w.paths = renderer
		}
	}
}

// Writer renders artifacts and writes them below a generation root.
type Writer struct {
	source TemplateSource
	paths  template.TemplateRenderer
	root   string
	dryRun bool
}

// NewWriter constructs a Writer reading templates from source.
func NewWriter(source TemplateSource, options ...WriterOption) (*Writer, error) {
	if source == nil {
		return nil, errors.New("render: template source is required")
	}
	w := &Writer{source: source, root: DefaultRoot}
	for _, opt := range options {
		if opt != nil {
			opt(w)
		}
	}
	if w.paths == nil {
		w.paths = gotemplate.New()
	}
	return w, nil
}

// Root returns the generation root.
func (w *Writer) Root() string {
	return w.root
}

// DryRun reports whether writes are suppressed.
func (w *Writer) DryRun() bool {
	return w.dryRun
}

// Destination resolves the artifact's path pattern for d below the root.
func (w *Writer) Destination(a Artifact, d resource.Descriptor) (string, error) {
	rel, err := w.paths.RenderString(a.PathPattern(), d.Names())
	if err != nil {
		return "", fmt.Errorf("render: destination for %s: %w", a.Name(), err)
	}
	rel = filepath.Clean(filepath.FromSlash(strings.TrimSpace(rel)))
	if rel == "." || filepath.IsAbs(rel) || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", ErrUnsafePath, rel)
	}
	return filepath.Join(w.root, rel), nil
}

// Write renders a for d and writes the result, creating missing directories
// and overwriting any existing file. Failures come back as *ArtifactError.
func (w *Writer) Write(ctx context.Context, a Artifact, d resource.Descriptor) (Output, error) {
	out := Output{Artifact: a.Name(), Resource: d.ResourceName, DryRun: w.dryRun}
	fail := func(err error) (Output, error) {
		return out, &ArtifactError{Artifact: out.Artifact, Resource: out.Resource, Path: out.Path, Err: err}
	}

	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	dest, err := w.Destination(a, d)
	if err != nil {
		return fail(err)
	}
	out.Path = dest

	content, err := a.Render(ctx, w.source, d)
	if err != nil {
		return fail(err)
	}
	out.Content = content

	if w.dryRun {
		return out, nil
	}
	if err := os.MkdirAll(filepath.Dir(dest), dirMode); err != nil {
		return fail(fmt.Errorf("create directory: %w", err))
	}
	if err := os.WriteFile(dest, content, fileMode); err != nil {
		return fail(fmt.Errorf("write file: %w", err))
	}
	return out, nil
}
