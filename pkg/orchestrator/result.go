package orchestrator

import "errors"

// StepKind distinguishes artifact writes from locale merges.
type StepKind string

const (
	StepArtifact StepKind = "artifact"
	StepLocale   StepKind = "locale"
)

// Step records the outcome of one generation step.
type Step struct {
	Kind     StepKind
	Name     string
	Resource string
	Path     string
	// Content holds the rendered bytes; in dry-run mode it is the only output.
	Content []byte
	Err     error
}

// OK reports whether the step succeeded.
func (s Step) OK() bool {
	return s.Err == nil
}

// Result collects the steps of a run.
type Result struct {
	RunID  string
	Root   string
	DryRun bool
	Steps  []Step
}

// Failed reports whether any step failed.
func (r *Result) Failed() bool {
	for _, step := range r.Steps {
		if step.Err != nil {
			return true
		}
	}
	return false
}

// Err joins the step failures, or returns nil.
func (r *Result) Err() error {
	var errs []error
	for _, step := range r.Steps {
		if step.Err != nil {
			errs = append(errs, step.Err)
		}
	}
	return errors.Join(errs...)
}

// Paths lists the destinations of successful steps in run order.
func (r *Result) Paths() []string {
	var out []string
	for _, step := range r.Steps {
		if step.Err == nil && step.Path != "" {
			out = append(out, step.Path)
		}
	}
	return out
}
