package resource

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// ErrInvalidDescriptor marks configuration errors. Callers treat it as fatal:
// nothing should be generated from a descriptor that fails validation.
var ErrInvalidDescriptor = errors.New("resource: invalid descriptor")

var (
	resourceNamePattern = regexp.MustCompile(`^[A-Z][A-Za-z0-9]*$`)
	fieldKeyPattern     = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
)

// ValidationError lists every problem found in a descriptor.
type ValidationError struct {
	Resource string
	Problems []string
}

func (e *ValidationError) Error() string {
	name := e.Resource
	if name == "" {
		name = "<unnamed>"
	}
	return fmt.Sprintf("resource: descriptor %s: %s", name, strings.Join(e.Problems, "; "))
}

// Unwrap lets errors.Is match ErrInvalidDescriptor.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidDescriptor
}

// Validate checks the descriptor invariants: a capitalised resource name,
// unique non-empty identifier keys, a type on every field, and a default on
// every optional field.
func (d Descriptor) Validate() error {
	var problems []string

	name := strings.TrimSpace(d.ResourceName)
	switch {
	case name == "":
		problems = append(problems, "resourceName is required")
	case !resourceNamePattern.MatchString(name):
		problems = append(problems, fmt.Sprintf("resourceName %q must be a capitalised identifier", name))
	}

	seen := make(map[string]struct{}, len(d.Fields))
	for i, field := range d.Fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			problems = append(problems, fmt.Sprintf("fields[%d]: key is required", i))
			continue
		}
		if !fieldKeyPattern.MatchString(key) {
			problems = append(problems, fmt.Sprintf("fields[%d]: key %q is not a valid identifier", i, key))
		}
		if _, dup := seen[key]; dup {
			problems = append(problems, fmt.Sprintf("fields[%d]: duplicate key %q", i, key))
		}
		seen[key] = struct{}{}

		if strings.TrimSpace(string(field.Type)) == "" {
			problems = append(problems, fmt.Sprintf("fields[%d] (%s): type is required", i, key))
		}
		if !field.Required && !field.HasDefault() {
			problems = append(problems, fmt.Sprintf("fields[%d] (%s): defaultValue is required when the field is optional", i, key))
		}
	}

	var unknown []string
	for key := range d.Messages {
		if !knownMessageKey(key) {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	for _, key := range unknown {
		problems = append(problems, fmt.Sprintf("messages: unknown key %q (want one of %s)", key, strings.Join(messageKeys, ", ")))
	}

	if len(problems) == 0 {
		return nil
	}
	return &ValidationError{Resource: name, Problems: problems}
}

func knownMessageKey(key string) bool {
	for _, known := range messageKeys {
		if key == known {
			return true
		}
	}
	return false
}

// ValidateAll validates each descriptor and rejects duplicate resource names.
func ValidateAll(descriptors []Descriptor) error {
	if len(descriptors) == 0 {
		return fmt.Errorf("%w: no resources declared", ErrInvalidDescriptor)
	}
	var errs []error
	names := make(map[string]struct{}, len(descriptors))
	for _, d := range descriptors {
		if err := d.Validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		lower := d.Names().Lower
		if _, dup := names[lower]; dup {
			errs = append(errs, fmt.Errorf("%w: resource %q declared more than once", ErrInvalidDescriptor, d.ResourceName))
		}
		names[lower] = struct{}{}
	}
	return errors.Join(errs...)
}
