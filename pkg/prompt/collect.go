package prompt

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goliatone/go-crudgen/pkg/resource"
)

var fieldKeyPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// CollectDescriptor asks for a resource name and then for fields until the
// user declines to add another. The result is validated before it is
// returned.
func CollectDescriptor(ctx context.Context, driver PromptDriver) (resource.Descriptor, error) {
	if driver == nil {
		return resource.Descriptor{}, errors.New("prompt: driver is required")
	}

	name, err := driver.Input(ctx, InputConfig{
		Message:   "Resource name",
		Help:      "Capitalised singular name, e.g. Task",
		Validator: validateResourceName,
	})
	if err != nil {
		return resource.Descriptor{}, err
	}
	d := resource.Descriptor{ResourceName: strings.TrimSpace(name)}

	seen := make(map[string]struct{})
	for {
		more, err := driver.Confirm(ctx, ConfirmConfig{
			Message: fmt.Sprintf("Add a field to %s?", d.ResourceName),
			Default: len(d.Fields) == 0,
		})
		if err != nil {
			return resource.Descriptor{}, err
		}
		if !more {
			break
		}
		field, err := collectField(ctx, driver, seen)
		if err != nil {
			return resource.Descriptor{}, err
		}
		seen[field.Key] = struct{}{}
		d.Fields = append(d.Fields, field)
	}

	if err := d.Validate(); err != nil {
		return resource.Descriptor{}, err
	}
	return d, nil
}

func collectField(ctx context.Context, driver PromptDriver, seen map[string]struct{}) (resource.Field, error) {
	key, err := driver.Input(ctx, InputConfig{
		Message: "Field key",
		Validator: func(v string) error {
			v = strings.TrimSpace(v)
			if !fieldKeyPattern.MatchString(v) {
				return fmt.Errorf("%q is not a valid identifier", v)
			}
			if _, dup := seen[v]; dup {
				return fmt.Errorf("field %q already declared", v)
			}
			return nil
		},
	})
	if err != nil {
		return resource.Field{}, err
	}

	types := resource.KnownFieldTypes()
	options := make([]string, len(types))
	for i, t := range types {
		options[i] = string(t)
	}
	idx, err := driver.Select(ctx, SelectConfig{Message: "Field type", Options: options})
	if err != nil {
		return resource.Field{}, err
	}
	if idx < 0 || idx >= len(types) {
		return resource.Field{}, fmt.Errorf("prompt: invalid type selection %d", idx)
	}

	field := resource.Field{Key: strings.TrimSpace(key), Type: types[idx]}
	field.Required, err = driver.Confirm(ctx, ConfirmConfig{Message: "Required?", Default: true})
	if err != nil {
		return resource.Field{}, err
	}
	if field.Required {
		return field, nil
	}

	raw, err := driver.Input(ctx, InputConfig{
		Message: "Default value",
		Default: suggestedDefault(field.Type),
		Validator: func(v string) error {
			_, err := ParseDefault(field.Type, v)
			return err
		},
	})
	if err != nil {
		return resource.Field{}, err
	}
	value, err := ParseDefault(field.Type, raw)
	if err != nil {
		return resource.Field{}, err
	}
	return field.WithDefault(value), nil
}

// ParseDefault converts typed-in text to a default value for the field type.
func ParseDefault(t resource.FieldType, raw string) (any, error) {
	switch t {
	case resource.FieldTypeNumber:
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", raw)
		}
		return v, nil
	case resource.FieldTypeBoolean:
		v, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("%q is not a boolean", raw)
		}
		return v, nil
	case resource.FieldTypeDate:
		return strings.TrimSpace(raw), nil
	default:
		return raw, nil
	}
}

func suggestedDefault(t resource.FieldType) string {
	switch t {
	case resource.FieldTypeNumber:
		return "0"
	case resource.FieldTypeBoolean:
		return "false"
	case resource.FieldTypeDate:
		return "Date.now"
	default:
		return ""
	}
}

func validateResourceName(v string) error {
	return resource.Descriptor{ResourceName: v}.Validate()
}
