package config

import (
	"strings"
	"testing"
)

func TestValidateConfig_ValidConfig(t *testing.T) {
	parseResult := ParseYAMLFile("testdata/valid-config.yaml")
	if !parseResult.IsValid() {
		t.Fatalf("failed to parse valid config: %v", parseResult.Errors)
	}

	result := ValidateConfig(parseResult.Data)

	if !result.Valid {
		t.Errorf("expected valid config, got errors: %v", result.Errors)
	}
}

func TestValidateConfig_MissingFields(t *testing.T) {
	parseResult := ParseYAMLFile("testdata/missing-fields.yaml")
	if !parseResult.IsValid() {
		t.Fatalf("failed to parse config: %v", parseResult.Errors)
	}

	result := ValidateConfig(parseResult.Data)

	if result.Valid {
		t.Error("expected validation to fail for config missing 'fields'")
	}
	if len(result.Errors) == 0 {
		t.Fatal("expected at least one validation error")
	}

	found := false
	for _, err := range result.Errors {
		if err.Type == "required" || strings.Contains(strings.ToLower(err.Message), "fields") {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("expected error about missing 'fields', got: %v", result.Errors)
	}
}

func TestValidateConfig_EmptyFieldsList(t *testing.T) {
	// Presence is the only check: an empty fields list passes validation
	// and fails later at use time, if at all.
	parseResult := ParseYAMLFile("testdata/empty-fields.yaml")
	if !parseResult.IsValid() {
		t.Fatalf("failed to parse config: %v", parseResult.Errors)
	}

	result := ValidateConfig(parseResult.Data)

	if !result.Valid {
		t.Errorf("empty 'fields' list should pass validation, got errors: %v", result.Errors)
	}
}

func TestValidateConfig_FieldsWrongType(t *testing.T) {
	// The value of 'fields' is not inspected by validation.
	result := ValidateConfig(map[string]interface{}{"fields": "not-a-list"})

	if !result.Valid {
		t.Errorf("wrong-typed 'fields' should pass validation, got errors: %v", result.Errors)
	}
}

func TestValidateConfig_NilData(t *testing.T) {
	result := ValidateConfig(nil)

	if result.Valid {
		t.Error("expected validation to fail for nil data")
	}
}

func TestValidateConfig_EmptyData(t *testing.T) {
	result := ValidateConfig(map[string]interface{}{})

	if result.Valid {
		t.Error("expected validation to fail for empty data (no 'fields' key)")
	}
}

func TestGetEmbeddedSchema(t *testing.T) {
	schema := GetEmbeddedSchema()
	if len(schema) == 0 {
		t.Fatal("embedded schema should not be empty")
	}
	if !strings.Contains(string(schema), `"fields"`) {
		t.Error("embedded schema should require 'fields'")
	}
}
