package boilerplate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-crudgen/pkg/fragments"
)

var (
	// ErrTemplateMalformed reports a template lacking a required marker.
	ErrTemplateMalformed = errors.New("boilerplate: template malformed")
	// ErrTemplateNotFound reports an artifact with no template in the set.
	ErrTemplateNotFound = errors.New("boilerplate: template not found")
)

// MalformedError names the template and the markers it is missing.
type MalformedError struct {
	Template string
	Missing  []fragments.Slot
}

func (e *MalformedError) Error() string {
	markers := make([]string, len(e.Missing))
	for i, slot := range e.Missing {
		markers[i] = slot.Marker()
	}
	return fmt.Sprintf("boilerplate: template %q is missing placeholder(s) %s", e.Template, strings.Join(markers, ", "))
}

// Unwrap lets errors.Is match ErrTemplateMalformed.
func (e *MalformedError) Unwrap() error {
	return ErrTemplateMalformed
}
