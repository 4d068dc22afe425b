package resource

import (
	"encoding/json"
	"strings"
)

// FieldType enumerates the primitive type tags a field may declare. The value
// doubles as the storage model type annotation (e.g. `String`).
type FieldType string

const (
	FieldTypeString  FieldType = "String"
	FieldTypeNumber  FieldType = "Number"
	FieldTypeBoolean FieldType = "Boolean"
	FieldTypeDate    FieldType = "Date"
)

var knownFieldTypes = []FieldType{
	FieldTypeString,
	FieldTypeNumber,
	FieldTypeBoolean,
	FieldTypeDate,
}

// KnownFieldTypes returns the supported type tags in declaration order.
func KnownFieldTypes() []FieldType {
	return append([]FieldType(nil), knownFieldTypes...)
}

// ParseFieldType normalises a raw tag. Known tags match case-insensitively and
// come back in their canonical form; anything else is returned trimmed but
// otherwise verbatim.
func ParseFieldType(raw string) FieldType {
	trimmed := strings.TrimSpace(raw)
	for _, known := range knownFieldTypes {
		if strings.EqualFold(trimmed, string(known)) {
			return known
		}
	}
	return FieldType(trimmed)
}

// Known reports whether the type belongs to the closed set.
func (t FieldType) Known() bool {
	for _, known := range knownFieldTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Lower returns the lowercase tag used to select validation rules.
func (t FieldType) Lower() string {
	return strings.ToLower(string(t))
}

// UnmarshalJSON normalises the tag on decode.
func (t *FieldType) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*t = ParseFieldType(raw)
	return nil
}

// UnmarshalText normalises the tag for YAML and flag decoding.
func (t *FieldType) UnmarshalText(text []byte) error {
	*t = ParseFieldType(string(text))
	return nil
}

// Field describes one attribute of the generated resource.
type Field struct {
	Key          string    `json:"key" yaml:"key"`
	Type         FieldType `json:"type" yaml:"type"`
	Required     bool      `json:"required" yaml:"required"`
	DefaultValue any       `json:"defaultValue,omitempty" yaml:"defaultValue,omitempty"`

	// hasDefault records whether the source document declared defaultValue,
	// which lets `defaultValue: null` be told apart from an omitted key.
	hasDefault bool
}

// HasDefault reports whether the field declares a default value.
func (f Field) HasDefault() bool {
	return f.hasDefault || f.DefaultValue != nil
}

// WithDefault returns a copy of the field carrying the supplied default.
func (f Field) WithDefault(value any) Field {
	f.DefaultValue = value
	f.hasDefault = true
	return f
}

// Locale message keys a descriptor may override.
const (
	MessageCreated  = "created"
	MessageNotFound = "notFound"
	MessageFound    = "found"
	MessageUpdated  = "updated"
	MessageDeleted  = "deleted"
)

var messageKeys = []string{MessageCreated, MessageNotFound, MessageFound, MessageUpdated, MessageDeleted}

// MessageKeys returns the overridable message keys in locale order.
func MessageKeys() []string {
	return append([]string(nil), messageKeys...)
}

// Descriptor is the full input for one resource.
type Descriptor struct {
	ResourceName string  `json:"resourceName" yaml:"resourceName"`
	Fields       []Field `json:"fields" yaml:"fields"`

	// Messages replaces the default locale text for the given keys. Values
	// are free text; markup is stripped before it reaches a locale file.
	Messages map[string]string `json:"messages,omitempty" yaml:"messages,omitempty"`
}

// Names returns the derived identifiers for the descriptor.
func (d Descriptor) Names() Names {
	return NamesFor(d.ResourceName)
}

// Names groups the case variants derived from a resource name.
type Names struct {
	// Name is the resource name as declared, e.g. "Task".
	Name string
	// Lower is the lowercase form, e.g. "task".
	Lower string
	// Plural is the lowercase plural used for routes and file names, e.g. "tasks".
	Plural string
}

// NamesFor derives Names from a resource name.
func NamesFor(name string) Names {
	name = strings.TrimSpace(name)
	lower := strings.ToLower(name)
	return Names{
		Name:   name,
		Lower:  lower,
		Plural: lower + "s",
	}
}

// Context exposes the names as template data.
func (n Names) Context() map[string]any {
	return map[string]any{
		"name":   n.Name,
		"lower":  n.Lower,
		"plural": n.Plural,
	}
}
