package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/goliatone/go-crudgen/pkg/resource"
)

type stubDriver struct {
	inputs     []string
	selectIdx  []int
	confirm    []bool
	inputPos   int
	selectPos  int
	confirmPos int
	validated  []error
	inputErr   error
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	if s.inputErr != nil {
		return "", s.inputErr
	}
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	if cfg.Validator != nil {
		s.validated = append(s.validated, cfg.Validator(val))
	}
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, _ SelectConfig) (int, error) {
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) Info(context.Context, string) error { return nil }

func TestCollectDescriptor_TaskScenario(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"Task", "title", "done", "false"},
		selectIdx: []int{0, 2},
		// add field, required; add field, optional; stop
		confirm: []bool{true, true, true, false, false},
	}

	got, err := CollectDescriptor(context.Background(), driver)
	if err != nil {
		t.Fatalf("collect: %v", err)
	}

	want := resource.Descriptor{
		ResourceName: "Task",
		Fields: []resource.Field{
			{Key: "title", Type: resource.FieldTypeString, Required: true},
			resource.Field{Key: "done", Type: resource.FieldTypeBoolean}.WithDefault(false),
		},
	}
	if diff := cmp.Diff(want, got, cmpopts.IgnoreUnexported(resource.Field{})); diff != "" {
		t.Fatalf("descriptor mismatch (-want +got):\n%s", diff)
	}
	if !got.Fields[1].HasDefault() {
		t.Fatalf("optional field should carry its default")
	}
	for i, err := range driver.validated {
		if err != nil {
			t.Fatalf("scripted input %d failed validation: %v", i, err)
		}
	}
}

func TestCollectDescriptor_NoFields(t *testing.T) {
	driver := &stubDriver{inputs: []string{"Note"}, confirm: []bool{false}}
	got, err := CollectDescriptor(context.Background(), driver)
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if got.ResourceName != "Note" || len(got.Fields) != 0 {
		t.Fatalf("unexpected descriptor %+v", got)
	}
}

func TestCollectDescriptor_Aborted(t *testing.T) {
	driver := &stubDriver{inputErr: ErrAborted}
	if _, err := CollectDescriptor(context.Background(), driver); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestCollectDescriptor_Validators(t *testing.T) {
	if err := validateResourceName("task"); err == nil {
		t.Fatalf("lower-case resource names must be rejected")
	}
	if err := validateResourceName("Task"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	driver := &stubDriver{
		inputs:    []string{"Task", "title", "title"},
		selectIdx: []int{0, 0},
		confirm:   []bool{true, true, true, true},
	}
	_, _ = CollectDescriptor(context.Background(), driver)
	if len(driver.validated) < 3 || driver.validated[2] == nil {
		t.Fatalf("duplicate key should fail validation, got %v", driver.validated)
	}
}

func TestParseDefault(t *testing.T) {
	cases := []struct {
		typ     resource.FieldType
		raw     string
		want    any
		wantErr bool
	}{
		{resource.FieldTypeNumber, "42", 42.0, false},
		{resource.FieldTypeNumber, "many", nil, true},
		{resource.FieldTypeBoolean, "true", true, false},
		{resource.FieldTypeBoolean, "nope", nil, true},
		{resource.FieldTypeDate, " Date.now ", "Date.now", false},
		{resource.FieldTypeString, " keep ", " keep ", false},
	}
	for _, tc := range cases {
		got, err := ParseDefault(tc.typ, tc.raw)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseDefault(%s, %q) expected error", tc.typ, tc.raw)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseDefault(%s, %q): %v", tc.typ, tc.raw, err)
		}
		if got != tc.want {
			t.Fatalf("ParseDefault(%s, %q) = %#v, want %#v", tc.typ, tc.raw, got, tc.want)
		}
	}
}
