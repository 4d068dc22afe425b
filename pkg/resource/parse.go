package resource

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parse decodes the descriptors held in doc and validates them. JSON is tried
// first; YAML is the fallback for anything that does not decode as JSON.
func Parse(doc Document) ([]Descriptor, error) {
	raw := doc.Raw()
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, fmt.Errorf("%w: document %s is empty", ErrInvalidDescriptor, doc.Location())
	}

	parsed, err := decodeDocument(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrInvalidDescriptor, doc.Location(), err)
	}

	descriptors := parsed.descriptors()
	for i := range descriptors {
		descriptors[i] = normalise(descriptors[i])
	}
	if err := ValidateAll(descriptors); err != nil {
		return nil, err
	}
	return descriptors, nil
}

func decodeDocument(raw []byte) (document, error) {
	var doc document
	jsonErr := json.Unmarshal(raw, &doc)
	if jsonErr == nil {
		return doc, nil
	}

	doc = document{}
	if yamlErr := yaml.Unmarshal(raw, &doc); yamlErr != nil {
		return document{}, fmt.Errorf("invalid JSON (%v) or YAML (%v)", jsonErr, yamlErr)
	}
	return doc, nil
}

func normalise(d Descriptor) Descriptor {
	out := Descriptor{
		ResourceName: strings.TrimSpace(d.ResourceName),
		Fields:       make([]Field, len(d.Fields)),
	}
	if len(d.Messages) > 0 {
		out.Messages = make(map[string]string, len(d.Messages))
		for key, value := range d.Messages {
			out.Messages[strings.TrimSpace(key)] = value
		}
	}
	for i, field := range d.Fields {
		field.Key = strings.TrimSpace(field.Key)
		field.Type = ParseFieldType(string(field.Type))
		out.Fields[i] = field
	}
	return out
}
