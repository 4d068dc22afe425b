package resource_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-crudgen/pkg/resource"
)

func mustDocument(t *testing.T, raw string) resource.Document {
	t.Helper()
	doc, err := resource.NewDocument(resource.SourceFromFile("crudgen.json"), []byte(raw))
	if err != nil {
		t.Fatalf("new document: %v", err)
	}
	return doc
}

func TestParse_SingleJSONDescriptor(t *testing.T) {
	doc := mustDocument(t, `{
		"resourceName": "Task",
		"fields": [
			{"key": "title", "type": "String", "required": true},
			{"key": "done", "type": "boolean", "required": false, "defaultValue": false}
		]
	}`)

	descriptors, err := resource.Parse(doc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(descriptors) != 1 {
		t.Fatalf("expected one descriptor, got %d", len(descriptors))
	}

	got := descriptors[0]
	if got.ResourceName != "Task" {
		t.Fatalf("resource name: got %q", got.ResourceName)
	}
	wantTypes := []resource.FieldType{resource.FieldTypeString, resource.FieldTypeBoolean}
	var gotTypes []resource.FieldType
	for _, f := range got.Fields {
		gotTypes = append(gotTypes, f.Type)
	}
	if diff := cmp.Diff(wantTypes, gotTypes); diff != "" {
		t.Fatalf("field types mismatch (-want +got):\n%s", diff)
	}
	if !got.Fields[1].HasDefault() || got.Fields[1].DefaultValue != false {
		t.Fatalf("expected explicit false default, got %#v", got.Fields[1].DefaultValue)
	}
}

func TestParse_YAMLResourceList(t *testing.T) {
	doc := mustDocument(t, `
resources:
  - resourceName: Book
    fields:
      - key: title
        type: string
        required: true
      - key: pages
        type: Number
        required: false
        defaultValue: 0
  - resourceName: Author
    fields: []
`)

	descriptors, err := resource.Parse(doc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	var names []string
	for _, d := range descriptors {
		names = append(names, d.ResourceName)
	}
	if diff := cmp.Diff([]string{"Book", "Author"}, names); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	pages := descriptors[0].Fields[1]
	if pages.Type != resource.FieldTypeNumber {
		t.Fatalf("pages type: got %q", pages.Type)
	}
	if !pages.HasDefault() {
		t.Fatalf("expected zero default to count as present")
	}
}

func TestParse_NullDefaultCountsAsPresent(t *testing.T) {
	doc := mustDocument(t, `{"resourceName":"Note","fields":[{"key":"body","type":"String","required":false,"defaultValue":null}]}`)
	descriptors, err := resource.Parse(doc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !descriptors[0].Fields[0].HasDefault() {
		t.Fatalf("expected explicit null default to be recorded")
	}
}

func TestParse_MessageOverrides(t *testing.T) {
	doc := mustDocument(t, "resourceName: Task\nfields: []\nmessages:\n  created: Task saved.\n")
	descriptors, err := resource.Parse(doc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := map[string]string{resource.MessageCreated: "Task saved."}
	if diff := cmp.Diff(want, descriptors[0].Messages); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_RejectsInvalidDescriptors(t *testing.T) {
	cases := map[string]string{
		"missing name":       `{"fields":[{"key":"title","type":"String","required":true}]}`,
		"lowercase name":     `{"resourceName":"task","fields":[]}`,
		"duplicate key":      `{"resourceName":"Task","fields":[{"key":"a","type":"String","required":true},{"key":"a","type":"String","required":true}]}`,
		"empty key":          `{"resourceName":"Task","fields":[{"key":"","type":"String","required":true}]}`,
		"missing default":    `{"resourceName":"Task","fields":[{"key":"done","type":"Boolean","required":false}]}`,
		"missing type":       `{"resourceName":"Task","fields":[{"key":"done","required":true}]}`,
		"empty resources":    `{"resources":[]}`,
		"duplicate resource": `{"resources":[{"resourceName":"Task","fields":[]},{"resourceName":"Task","fields":[]}]}`,
		"garbage":            "resourceName: [unterminated",
		"unknown message":    `{"resourceName":"Task","fields":[],"messages":{"archived":"Task archived."}}`,
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := resource.Parse(mustDocument(t, raw))
			if err == nil {
				t.Fatalf("expected error")
			}
			if !errors.Is(err, resource.ErrInvalidDescriptor) {
				t.Fatalf("expected ErrInvalidDescriptor, got %v", err)
			}
		})
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	d := resource.Descriptor{
		ResourceName: "Task",
		Fields: []resource.Field{
			{Key: "", Type: resource.FieldTypeString, Required: true},
			{Key: "done", Type: resource.FieldTypeBoolean},
		},
	}
	err := d.Validate()
	var verr *resource.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Problems) != 2 {
		t.Fatalf("expected two problems, got %v", verr.Problems)
	}
	if !strings.Contains(err.Error(), "Task") {
		t.Fatalf("expected resource name in message: %v", err)
	}
}

func TestValidate_EmptyFieldsAllowed(t *testing.T) {
	if err := (resource.Descriptor{ResourceName: "Tag"}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseFieldType(t *testing.T) {
	cases := map[string]resource.FieldType{
		"String":   resource.FieldTypeString,
		"string":   resource.FieldTypeString,
		" NUMBER ": resource.FieldTypeNumber,
		"boolean":  resource.FieldTypeBoolean,
		"date":     resource.FieldTypeDate,
		"ObjectId": resource.FieldType("ObjectId"),
	}
	for raw, want := range cases {
		if got := resource.ParseFieldType(raw); got != want {
			t.Fatalf("ParseFieldType(%q) = %q, want %q", raw, got, want)
		}
	}
	if resource.FieldType("ObjectId").Known() {
		t.Fatalf("ObjectId should not be a known type")
	}
}

func TestNamesFor(t *testing.T) {
	want := resource.Names{Name: "BlogPost", Lower: "blogpost", Plural: "blogposts"}
	if diff := cmp.Diff(want, resource.NamesFor("BlogPost")); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestSourceFromURL(t *testing.T) {
	if _, err := resource.SourceFromURL("ftp://example.com/a.json"); err == nil {
		t.Fatalf("expected unsupported scheme error")
	}
	if _, err := resource.SourceFromURL(""); err == nil {
		t.Fatalf("expected empty URL error")
	}
	src, err := resource.SourceFromURL("https://example.com/a.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if src.Kind() != resource.SourceKindURL {
		t.Fatalf("unexpected kind %q", src.Kind())
	}
}
