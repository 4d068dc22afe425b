package crudgen

import (
	"context"

	"github.com/goliatone/go-crudgen/pkg/orchestrator"
	"github.com/goliatone/go-crudgen/pkg/resource"
)

// Descriptor aliases resource.Descriptor so callers can build descriptors
// from the top-level package.
type Descriptor = resource.Descriptor

// Field aliases resource.Field.
type Field = resource.Field

// Result aliases orchestrator.Result.
type Result = orchestrator.Result

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Generate renders every artifact and locale entry for the given
// descriptors. Step failures are reported in the Result; the error covers
// invalid descriptors and cancellation.
func Generate(ctx context.Context, descriptors []Descriptor, options ...orchestrator.Option) (*Result, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{Descriptors: descriptors})
}

// GenerateFromSource loads the descriptor document from source before
// generating.
func GenerateFromSource(ctx context.Context, source resource.Source, options ...orchestrator.Option) (*Result, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{Source: source})
}

// GenerateFromDocument generates from a pre-loaded document, bypassing the
// loader stage.
func GenerateFromDocument(ctx context.Context, doc resource.Document, options ...orchestrator.Option) (*Result, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{Document: &doc})
}
