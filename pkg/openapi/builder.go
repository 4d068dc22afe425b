package openapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-crudgen/pkg/resource"
)

// Version is the OpenAPI version emitted.
const Version = "3.0.3"

// BasePath prefixes every generated route.
const BasePath = "/api/v1"

// CollectionPath returns the collection route for a resource.
func CollectionPath(names resource.Names) string {
	return BasePath + "/" + names.Plural
}

// ItemPath returns the per-id route in OpenAPI template form.
func ItemPath(names resource.Names) string {
	return CollectionPath(names) + "/{id}"
}

// Build returns a validated document covering the five generated routes.
func Build(ctx context.Context, d resource.Descriptor) (*openapi3.T, error) {
	names := d.Names()

	doc := &openapi3.T{
		OpenAPI: Version,
		Info: &openapi3.Info{
			Title:   names.Name + " API",
			Version: "1.0.0",
		},
		Paths: openapi3.NewPaths(),
	}

	record := recordSchema(d)
	envelope := envelopeSchema(record)
	idParam := &openapi3.ParameterRef{
		Value: openapi3.NewPathParameter("id").
			WithDescription("Identifier of the " + names.Lower).
			WithSchema(openapi3.NewStringSchema()),
	}
	notFound := &openapi3.ResponseRef{
		Value: openapi3.NewResponse().
			WithDescription(names.Name + " not found").
			WithJSONSchema(errorSchema()),
	}
	tags := []string{names.Plural}

	collection := &openapi3.PathItem{}
	collection.SetOperation(http.MethodPost, &openapi3.Operation{
		OperationID: "create" + names.Name,
		Summary:     "Create " + names.Lower,
		Tags:        tags,
		RequestBody: &openapi3.RequestBodyRef{
			Value: openapi3.NewRequestBody().WithRequired(true).WithJSONSchema(inputSchema(d, true)),
		},
		Responses: openapi3.NewResponses(
			openapi3.WithStatus(http.StatusOK, jsonResponse(names.Name+" created", envelopeSchema(openapi3.NewObjectSchema()))),
		),
	})
	collection.SetOperation(http.MethodGet, &openapi3.Operation{
		OperationID: "get" + names.Name + "s",
		Summary:     "List " + names.Plural,
		Tags:        tags,
		Responses: openapi3.NewResponses(
			openapi3.WithStatus(http.StatusOK, jsonResponse("Paginated "+names.Plural, listSchema(record))),
		),
	})
	doc.Paths.Set(CollectionPath(names), collection)

	item := &openapi3.PathItem{Parameters: openapi3.Parameters{idParam}}
	item.SetOperation(http.MethodGet, &openapi3.Operation{
		OperationID: "get" + names.Name,
		Summary:     "Get single " + names.Lower,
		Tags:        tags,
		Responses: openapi3.NewResponses(
			openapi3.WithStatus(http.StatusOK, jsonResponse(names.Name+" found", envelope)),
			openapi3.WithStatus(http.StatusNotFound, notFound),
		),
	})
	item.SetOperation(http.MethodPut, &openapi3.Operation{
		OperationID: "update" + names.Name,
		Summary:     "Update " + names.Lower,
		Tags:        tags,
		RequestBody: &openapi3.RequestBodyRef{
			Value: openapi3.NewRequestBody().WithRequired(true).WithJSONSchema(inputSchema(d, false)),
		},
		Responses: openapi3.NewResponses(
			openapi3.WithStatus(http.StatusOK, jsonResponse(names.Name+" updated", envelope)),
			openapi3.WithStatus(http.StatusNotFound, notFound),
		),
	})
	item.SetOperation(http.MethodDelete, &openapi3.Operation{
		OperationID: "delete" + names.Name,
		Summary:     "Delete " + names.Lower,
		Tags:        tags,
		Responses: openapi3.NewResponses(
			openapi3.WithStatus(http.StatusOK, jsonResponse(names.Name+" deleted", envelopeSchema(openapi3.NewObjectSchema()))),
			openapi3.WithStatus(http.StatusNotFound, notFound),
		),
	})
	doc.Paths.Set(ItemPath(names), item)

	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("openapi: validate %s document: %w", names.Name, err)
	}
	return doc, nil
}

func jsonResponse(description string, schema *openapi3.Schema) *openapi3.ResponseRef {
	return &openapi3.ResponseRef{
		Value: openapi3.NewResponse().WithDescription(description).WithJSONSchema(schema),
	}
}
