package render

import (
	"errors"
	"fmt"
)

// ErrUnsafePath reports a destination that resolves outside the generation
// root.
var ErrUnsafePath = errors.New("render: destination escapes generation root")

// ArtifactError ties a failure to the artifact and resource being generated.
type ArtifactError struct {
	Artifact string
	Resource string
	Path     string
	Err      error
}

func (e *ArtifactError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("render: %s for %s (%s): %v", e.Artifact, e.Resource, e.Path, e.Err)
	}
	return fmt.Sprintf("render: %s for %s: %v", e.Artifact, e.Resource, e.Err)
}

func (e *ArtifactError) Unwrap() error {
	return e.Err
}
