package openapi

import (
	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-crudgen/pkg/resource"
)

// FieldSchema maps a field type onto a JSON schema. Unknown types are
// described as strings, matching the generator's default rule.
func FieldSchema(f resource.Field) *openapi3.Schema {
	var schema *openapi3.Schema
	switch f.Type {
	case resource.FieldTypeNumber:
		schema = openapi3.NewFloat64Schema()
	case resource.FieldTypeBoolean:
		schema = openapi3.NewBoolSchema()
	case resource.FieldTypeDate:
		schema = openapi3.NewDateTimeSchema()
	default:
		schema = openapi3.NewStringSchema()
	}
	if !f.Required && f.HasDefault() && f.Type != resource.FieldTypeDate {
		schema.Default = f.DefaultValue
	}
	return schema
}

// inputSchema describes a request body. Create bodies list required fields;
// update bodies accept any subset, and optional strings may be empty.
func inputSchema(d resource.Descriptor, create bool) *openapi3.Schema {
	schema := openapi3.NewObjectSchema()
	var required []string
	for _, field := range d.Fields {
		schema.WithProperty(field.Key, FieldSchema(field))
		if create && field.Required {
			required = append(required, field.Key)
		}
	}
	schema.Required = required
	return schema
}

func recordSchema(d resource.Descriptor) *openapi3.Schema {
	schema := openapi3.NewObjectSchema().WithProperty("_id", openapi3.NewStringSchema())
	for _, field := range d.Fields {
		schema.WithProperty(field.Key, FieldSchema(field))
	}
	return schema.
		WithProperty("createdAt", openapi3.NewDateTimeSchema()).
		WithProperty("updatedAt", openapi3.NewDateTimeSchema())
}

func envelopeSchema(data *openapi3.Schema) *openapi3.Schema {
	return openapi3.NewObjectSchema().
		WithProperty("success", openapi3.NewBoolSchema()).
		WithProperty("message", openapi3.NewStringSchema()).
		WithProperty("data", data)
}

func listSchema(record *openapi3.Schema) *openapi3.Schema {
	return openapi3.NewObjectSchema().
		WithProperty("success", openapi3.NewBoolSchema()).
		WithProperty("count", openapi3.NewIntegerSchema()).
		WithProperty("pagination", openapi3.NewObjectSchema()).
		WithProperty("data", openapi3.NewArraySchema().WithItems(record))
}

func errorSchema() *openapi3.Schema {
	return openapi3.NewObjectSchema().
		WithProperty("success", openapi3.NewBoolSchema()).
		WithProperty("error", openapi3.NewStringSchema())
}
