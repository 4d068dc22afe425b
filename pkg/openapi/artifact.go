package openapi

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-crudgen/pkg/render"
	"github.com/goliatone/go-crudgen/pkg/resource"
)

// ArtifactName identifies the route document in the artifact registry.
const ArtifactName = "openapi"

// Artifact writes the route document as openapi/<plural>.json.
type Artifact struct{}

var _ render.Artifact = Artifact{}

func (Artifact) Name() string        { return ArtifactName }
func (Artifact) PathPattern() string { return "openapi/{{ plural }}.json" }

// Render ignores the template source; the document is built from the
// descriptor alone.
func (Artifact) Render(ctx context.Context, _ render.TemplateSource, d resource.Descriptor) ([]byte, error) {
	doc, err := Build(ctx, d)
	if err != nil {
		return nil, err
	}
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("openapi: encode: %w", err)
	}
	return append(payload, '\n'), nil
}
