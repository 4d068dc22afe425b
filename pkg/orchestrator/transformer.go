package orchestrator

import (
	"context"

	"github.com/goliatone/go-crudgen/pkg/resource"
)

// Transformer mutates a descriptor after loading and before validation.
// Implementations can inject shared fields or normalise keys.
type Transformer interface {
	Transform(ctx context.Context, d *resource.Descriptor) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, d *resource.Descriptor) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, d *resource.Descriptor) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, d)
}

// AppendFields returns a Transformer adding fields to every descriptor that
// does not already declare a field with the same key.
func AppendFields(fields ...resource.Field) Transformer {
	return TransformerFunc(func(_ context.Context, d *resource.Descriptor) error {
		existing := make(map[string]struct{}, len(d.Fields))
		for _, f := range d.Fields {
			existing[f.Key] = struct{}{}
		}
		for _, f := range fields {
			if _, ok := existing[f.Key]; ok {
				continue
			}
			d.Fields = append(d.Fields, f)
		}
		return nil
	})
}
