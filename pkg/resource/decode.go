package resource

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

type fieldAlias Field

// UnmarshalJSON decodes a field while recording whether defaultValue was
// present in the payload.
func (f *Field) UnmarshalJSON(data []byte) error {
	var raw struct {
		fieldAlias
		DefaultValue json.RawMessage `json:"defaultValue"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*f = Field(raw.fieldAlias)
	f.DefaultValue = nil
	f.hasDefault = false
	if len(raw.DefaultValue) == 0 {
		return nil
	}

	var value any
	if err := json.Unmarshal(raw.DefaultValue, &value); err != nil {
		return err
	}
	f.DefaultValue = value
	f.hasDefault = true
	return nil
}

// UnmarshalYAML mirrors UnmarshalJSON for YAML documents.
func (f *Field) UnmarshalYAML(node *yaml.Node) error {
	var raw fieldAlias
	if err := node.Decode(&raw); err != nil {
		return err
	}
	*f = Field(raw)
	f.hasDefault = false

	if node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == "defaultValue" {
			f.hasDefault = true
			break
		}
	}
	return nil
}

// document is the on-disk shape: either a single descriptor or a list.
type document struct {
	Descriptor `yaml:",inline"`
	Resources  []Descriptor `json:"resources" yaml:"resources"`
}

func (d document) descriptors() []Descriptor {
	if len(d.Resources) > 0 {
		return d.Resources
	}
	if d.ResourceName == "" && len(d.Fields) == 0 {
		return nil
	}
	return []Descriptor{d.Descriptor}
}
