package crudgen

import (
	"context"

	internalLoader "github.com/goliatone/go-crudgen/internal/resource/loader"
	"github.com/goliatone/go-crudgen/pkg/resource"
)

// NewLoader constructs a loader using the internal implementation while keeping
// the concrete type hidden from consumers.
func NewLoader(options ...resource.LoaderOption) resource.Loader {
	cfg := resource.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// LoadDescriptors loads and validates the descriptors held in source.
func LoadDescriptors(ctx context.Context, source resource.Source, options ...resource.LoaderOption) ([]Descriptor, error) {
	doc, err := NewLoader(options...).Load(ctx, source)
	if err != nil {
		return nil, err
	}
	return resource.Parse(doc)
}
