package boilerplate

import (
	"strings"

	"github.com/goliatone/go-crudgen/pkg/fragments"
	"github.com/goliatone/go-crudgen/pkg/resource"
)

const (
	// SampleName is the capitalised placeholder identifier used throughout
	// the boilerplates.
	SampleName = "Sample"
	// SampleLower is its lowercase form.
	SampleLower = "sample"
)

// Template is the text of one boilerplate file.
type Template struct {
	// Name is the artifact key, e.g. "controller".
	Name string
	// Path is the file the text was read from, relative to its set.
	Path string
	Text string
}

// Missing returns the markers from slots that do not occur in the text.
func (t Template) Missing(slots ...fragments.Slot) []fragments.Slot {
	var missing []fragments.Slot
	for _, slot := range slots {
		if !strings.Contains(t.Text, slot.Marker()) {
			missing = append(missing, slot)
		}
	}
	return missing
}

// Verify fails with a *MalformedError when any required marker is absent.
func (t Template) Verify(required ...fragments.Slot) error {
	if missing := t.Missing(required...); len(missing) > 0 {
		return &MalformedError{Template: t.Name, Missing: missing}
	}
	return nil
}

// Render renames the sample identifier to the resource name, then replaces
// the first occurrence of each required marker with its fragment. Renaming
// happens first so field keys inside fragments are never rewritten.
func (t Template) Render(names resource.Names, values fragments.Set, required ...fragments.Slot) (string, error) {
	if err := t.Verify(required...); err != nil {
		return "", err
	}

	text := Rename(t.Text, names)
	for _, slot := range required {
		text = strings.Replace(text, slot.Marker(), values[slot], 1)
	}
	return text, nil
}

// Rename performs the literal, case-sensitive sample identifier rename.
func Rename(text string, names resource.Names) string {
	return strings.NewReplacer(SampleName, names.Name, SampleLower, names.Lower).Replace(text)
}
