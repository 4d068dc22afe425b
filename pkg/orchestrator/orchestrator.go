package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	internalLoader "github.com/goliatone/go-crudgen/internal/resource/loader"
	"github.com/goliatone/go-crudgen/internal/logger"
	"github.com/goliatone/go-crudgen/pkg/boilerplate"
	"github.com/goliatone/go-crudgen/pkg/locale"
	"github.com/goliatone/go-crudgen/pkg/openapi"
	"github.com/goliatone/go-crudgen/pkg/render"
	"github.com/goliatone/go-crudgen/pkg/resource"
)

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a descriptor document loader.
func WithLoader(loader resource.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithStore injects the template source used when the orchestrator builds
// its own writer.
func WithStore(store render.TemplateSource) Option {
	return func(o *Orchestrator) {
		o.store = store
	}
}

// WithBoilerplateOptions configures the default boilerplate store.
func WithBoilerplateOptions(options ...boilerplate.Option) Option {
	return func(o *Orchestrator) {
		o.boilerplateOptions = append(o.boilerplateOptions, options...)
	}
}

// WithWriter injects a preconfigured writer. Its root and dry-run settings
// take precedence over WithRoot and WithDryRun.
func WithWriter(writer *render.Writer) Option {
	return func(o *Orchestrator) {
		o.writer = writer
	}
}

// WithMerger injects the locale merger.
func WithMerger(merger *locale.Merger) Option {
	return func(o *Orchestrator) {
		o.merger = merger
	}
}

// WithRegistry injects the artifact registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithLogger sets the logger; records carry run_id, resource and step names.
func WithLogger(log *logger.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = log
	}
}

// WithTransformer registers a descriptor transformer.
func WithTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		o.transformer = t
	}
}

// WithRoot sets the generation root.
func WithRoot(root string) Option {
	return func(o *Orchestrator) {
		o.root = strings.TrimSpace(root)
	}
}

// WithLocales sets the locale codes merged for every resource. An empty list
// disables locale merging.
func WithLocales(codes ...string) Option {
	return func(o *Orchestrator) {
		o.locales = append([]string(nil), codes...)
		o.localesSet = true
	}
}

// WithDryRun renders everything without writing.
func WithDryRun(enabled bool) Option {
	return func(o *Orchestrator) {
		o.dryRun = enabled
	}
}

// WithOpenAPI adds the route document artifact to the default registry.
func WithOpenAPI(enabled bool) Option {
	return func(o *Orchestrator) {
		o.openapi = enabled
	}
}

// WithRunIDGenerator overrides how run identifiers are produced.
func WithRunIDGenerator(fn func() string) Option {
	return func(o *Orchestrator) {
		o.newRunID = fn
	}
}

// Orchestrator coordinates descriptor loading and generation. Missing
// collaborators are built from defaults so New() alone is usable.
type Orchestrator struct {
	loader             resource.Loader
	store              render.TemplateSource
	boilerplateOptions []boilerplate.Option
	writer             *render.Writer
	merger             *locale.Merger
	registry           *render.Registry
	logger             *logger.Logger
	transformer        Transformer
	root               string
	locales            []string
	localesSet         bool
	dryRun             bool
	openapi            bool
	newRunID           func() string
	initialiseErr      error
	defaultsApplied    bool
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one generation run. Descriptors take precedence; when
// empty, the descriptor document is taken from Document or loaded from
// Source.
type Request struct {
	Descriptors []resource.Descriptor
	Document    *resource.Document
	Source      resource.Source

	// Artifacts restricts generation to the named artifacts. Empty means all
	// registered artifacts.
	Artifacts []string

	// SkipLocales disables the locale merge for this run.
	SkipLocales bool
}

// Generate validates every descriptor before touching the filesystem, then
// runs each artifact and locale merge. The returned error covers request
// problems only (invalid descriptors, cancellation); step failures are in
// Result.Steps.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (*Result, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}

	descriptors, err := o.resolveDescriptors(ctx, req)
	if err != nil {
		return nil, err
	}
	artifacts, err := o.selectArtifacts(req.Artifacts)
	if err != nil {
		return nil, err
	}

	o.merger.Reset()
	result := &Result{
		RunID:  o.newRunID(),
		Root:   o.writer.Root(),
		DryRun: o.writer.DryRun(),
	}
	log := o.logger.With("run_id", result.RunID)
	log.InfoContext(ctx, "generation started",
		"resources", len(descriptors),
		"root", result.Root,
		"dry_run", result.DryRun,
	)

	for _, d := range descriptors {
		for _, artifact := range artifacts {
			if err := ctx.Err(); err != nil {
				return result, err
			}
			result.Steps = append(result.Steps, o.runArtifact(ctx, log, artifact, d))
		}
		if req.SkipLocales {
			continue
		}
		for _, code := range o.locales {
			if err := ctx.Err(); err != nil {
				return result, err
			}
			result.Steps = append(result.Steps, o.runLocale(ctx, log, result.Root, code, d))
		}
	}

	log.InfoContext(ctx, "generation finished",
		"steps", len(result.Steps),
		"failed", result.Failed(),
	)
	return result, nil
}

// Artifacts lists the registered artifact names in generation order.
func (o *Orchestrator) Artifacts() []string {
	if o.registry == nil {
		return nil
	}
	return o.registry.List()
}

// Locales returns the locale codes merged for every resource.
func (o *Orchestrator) Locales() []string {
	return append([]string(nil), o.locales...)
}

func (o *Orchestrator) runArtifact(ctx context.Context, log *logger.Logger, artifact render.Artifact, d resource.Descriptor) Step {
	out, err := o.writer.Write(ctx, artifact, d)
	step := Step{
		Kind:     StepArtifact,
		Name:     artifact.Name(),
		Resource: d.ResourceName,
		Path:     out.Path,
		Content:  out.Content,
		Err:      err,
	}
	if err != nil {
		log.ErrorContext(ctx, "artifact failed",
			"artifact", step.Name,
			"resource", step.Resource,
			"error", err,
		)
		return step
	}
	log.InfoContext(ctx, "artifact written",
		"artifact", step.Name,
		"resource", step.Resource,
		"path", step.Path,
	)
	return step
}

func (o *Orchestrator) runLocale(ctx context.Context, log *logger.Logger, root, code string, d resource.Descriptor) Step {
	path := locale.Path(root, code)
	content, err := o.merger.Merge(ctx, path, d)
	step := Step{
		Kind:     StepLocale,
		Name:     code,
		Resource: d.ResourceName,
		Path:     path,
		Content:  content,
		Err:      err,
	}
	if err != nil {
		log.ErrorContext(ctx, "locale merge failed",
			"locale", code,
			"resource", step.Resource,
			"path", path,
			"error", err,
		)
		return step
	}
	log.InfoContext(ctx, "locale merged",
		"locale", code,
		"resource", step.Resource,
		"path", path,
	)
	return step
}

func (o *Orchestrator) resolveDescriptors(ctx context.Context, req Request) ([]resource.Descriptor, error) {
	var descriptors []resource.Descriptor
	if len(req.Descriptors) > 0 {
		descriptors = make([]resource.Descriptor, len(req.Descriptors))
		copy(descriptors, req.Descriptors)
	} else {
		doc, err := o.resolveDocument(ctx, req)
		if err != nil {
			return nil, err
		}
		parsed, err := resource.Parse(doc)
		if err != nil {
			return nil, err
		}
		descriptors = parsed
	}

	if o.transformer != nil {
		for i := range descriptors {
			if err := o.transformer.Transform(ctx, &descriptors[i]); err != nil {
				return nil, fmt.Errorf("orchestrator: transform %s: %w", descriptors[i].ResourceName, err)
			}
		}
	}
	if err := resource.ValidateAll(descriptors); err != nil {
		return nil, err
	}
	return descriptors, nil
}

func (o *Orchestrator) resolveDocument(ctx context.Context, req Request) (resource.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if req.Source == nil {
		return resource.Document{}, fmt.Errorf("%w: no descriptors, document or source supplied", resource.ErrInvalidDescriptor)
	}
	doc, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return resource.Document{}, fmt.Errorf("orchestrator: load descriptors: %w", err)
	}
	return doc, nil
}

func (o *Orchestrator) selectArtifacts(names []string) ([]render.Artifact, error) {
	if len(names) == 0 {
		return o.registry.Artifacts(), nil
	}
	out := make([]render.Artifact, 0, len(names))
	for _, name := range names {
		artifact, err := o.registry.Get(strings.TrimSpace(name))
		if err != nil {
			return nil, fmt.Errorf("orchestrator: %w", err)
		}
		out = append(out, artifact)
	}
	return out, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}
	o.defaultsApplied = true

	if o.loader == nil {
		o.loader = internalLoader.New(resource.NewLoaderOptions())
	}
	if o.logger == nil {
		o.logger = logger.Discard()
	}
	if o.newRunID == nil {
		o.newRunID = uuid.NewString
	}
	if !o.localesSet {
		o.locales = append([]string(nil), locale.DefaultCodes...)
	}
	if o.registry == nil {
		o.registry = render.NewDefaultRegistry()
		if o.openapi {
			o.registry.MustRegister(openapi.Artifact{})
		}
	}
	if o.writer == nil {
		if o.store == nil {
			store, err := boilerplate.NewStore(o.boilerplateOptions...)
			if err != nil {
				o.initialiseErr = fmt.Errorf("orchestrator: boilerplate store: %w", err)
				return
			}
			o.store = store
		}
		writer, err := render.NewWriter(o.store, render.WithRoot(o.root), render.WithDryRun(o.dryRun))
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: writer: %w", err)
			return
		}
		o.writer = writer
	}
	if o.merger == nil {
		o.merger = locale.NewMerger(locale.WithDryRun(o.writer.DryRun()))
	}
}
