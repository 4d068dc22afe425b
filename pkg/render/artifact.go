package render

import (
	"context"

	"github.com/goliatone/go-crudgen/pkg/boilerplate"
	"github.com/goliatone/go-crudgen/pkg/fragments"
	"github.com/goliatone/go-crudgen/pkg/resource"
)

// Artifact names.
const (
	ArtifactModel       = "model"
	ArtifactRoute       = "route"
	ArtifactValidation  = "validation"
	ArtifactController  = "controller"
	ArtifactTransformer = "transformer"
)

// TemplateSource resolves artifact names to boilerplate templates.
// *boilerplate.Store satisfies it.
type TemplateSource interface {
	Load(ctx context.Context, name string) (boilerplate.Template, error)
}

// Artifact produces the contents of one generated file for a resource.
type Artifact interface {
	Name() string
	// PathPattern is a pongo2 template relative to the generation root, with
	// name, lower and plural in scope.
	PathPattern() string
	Render(ctx context.Context, src TemplateSource, d resource.Descriptor) ([]byte, error)
}

// BoilerplateArtifact renders a boilerplate template, filling the listed slots.
type BoilerplateArtifact struct {
	name    string
	pattern string
	slots   []fragments.Slot
}

// NewBoilerplateArtifact builds an artifact backed by the template named name.
func NewBoilerplateArtifact(name, pattern string, slots ...fragments.Slot) *BoilerplateArtifact {
	return &BoilerplateArtifact{
		name:    name,
		pattern: pattern,
		slots:   append([]fragments.Slot(nil), slots...),
	}
}

func (a *BoilerplateArtifact) Name() string        { return a.name }
func (a *BoilerplateArtifact) PathPattern() string { return a.pattern }

// Slots returns the markers the artifact requires.
func (a *BoilerplateArtifact) Slots() []fragments.Slot {
	return append([]fragments.Slot(nil), a.slots...)
}

// Render loads the template, verifies the required slots and substitutes the
// descriptor's fragments.
func (a *BoilerplateArtifact) Render(ctx context.Context, src TemplateSource, d resource.Descriptor) ([]byte, error) {
	tpl, err := src.Load(ctx, a.name)
	if err != nil {
		return nil, err
	}
	values := fragments.Build(d).Pick(a.slots...)
	text, err := tpl.Render(d.Names(), values, a.slots...)
	if err != nil {
		return nil, err
	}
	return []byte(text), nil
}

// DefaultArtifacts returns the five artifacts generated for every resource, in
// generation order.
func DefaultArtifacts() []Artifact {
	return []Artifact{
		NewBoilerplateArtifact(ArtifactModel, "models/{{ name }}.js",
			fragments.SlotFields),
		NewBoilerplateArtifact(ArtifactRoute, "routes/{{ plural }}.js"),
		NewBoilerplateArtifact(ArtifactValidation, "middleware/validations/{{ plural }}.js",
			fragments.SlotCreateSchema, fragments.SlotUpdateSchema),
		NewBoilerplateArtifact(ArtifactController, "controllers/{{ name }}Controller.js",
			fragments.SlotUpdateFields, fragments.SlotUpdateLogic),
		NewBoilerplateArtifact(ArtifactTransformer, "transformers/{{ plural }}.js",
			fragments.SlotListData, fragments.SlotSingleData),
	}
}
