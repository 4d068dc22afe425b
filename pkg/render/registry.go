package render

import (
	"fmt"
	"sync"
)

// Registry stores artifacts by name and remembers registration order, which is
// the order the orchestrator generates them in.
type Registry struct {
	mu        sync.RWMutex
	order     []string
	artifacts map[string]Artifact
}

// NewRegistry creates a registry seeded with the given artifacts.
func NewRegistry(artifacts ...Artifact) (*Registry, error) {
	r := &Registry{artifacts: make(map[string]Artifact)}
	for _, artifact := range artifacts {
		if err := r.Register(artifact); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// NewDefaultRegistry returns a registry holding DefaultArtifacts.
func NewDefaultRegistry() *Registry {
	r, err := NewRegistry(DefaultArtifacts()...)
	if err != nil {
		panic(err)
	}
	return r
}

// Register adds an artifact by its Name(). Duplicate names return an error.
func (r *Registry) Register(artifact Artifact) error {
	if artifact == nil {
		return fmt.Errorf("render: artifact is required")
	}
	name := artifact.Name()
	if name == "" {
		return fmt.Errorf("render: artifact name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.artifacts[name]; exists {
		return fmt.Errorf("render: artifact %q already registered", name)
	}
	r.artifacts[name] = artifact
	r.order = append(r.order, name)
	return nil
}

// MustRegister panics on registration failure.
func (r *Registry) MustRegister(artifact Artifact) {
	if err := r.Register(artifact); err != nil {
		panic(err)
	}
}

// Get retrieves an artifact by name.
func (r *Registry) Get(name string) (Artifact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	artifact, ok := r.artifacts[name]
	if !ok {
		return nil, fmt.Errorf("render: artifact %q not found", name)
	}
	return artifact, nil
}

// Has reports whether an artifact is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.artifacts[name]
	return ok
}

// List returns artifact names in registration order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.order...)
}

// Artifacts returns the registered artifacts in registration order.
func (r *Registry) Artifacts() []Artifact {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Artifact, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.artifacts[name])
	}
	return out
}
