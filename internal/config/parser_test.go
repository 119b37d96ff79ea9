package config

import (
	"strings"
	"testing"
)

func TestParseYAMLString_Valid(t *testing.T) {
	content := `
input_data_path: data.csv
fields:
  - first_name: str
  - age: int64
`
	result := ParseYAMLString(content)

	if !result.IsValid() {
		t.Fatalf("expected valid parse, got errors: %v", result.Errors)
	}
	if result.Data["input_data_path"] != "data.csv" {
		t.Errorf("input_data_path = %v, want data.csv", result.Data["input_data_path"])
	}
	fields, ok := result.Data["fields"].([]interface{})
	if !ok || len(fields) != 2 {
		t.Errorf("fields = %v, want 2-entry sequence", result.Data["fields"])
	}
}

func TestParseYAMLString_Empty(t *testing.T) {
	result := ParseYAMLString("   \n  ")

	if result.IsValid() {
		t.Fatal("expected error for empty content")
	}
	if result.Errors[0].Type != ErrorTypeSyntax {
		t.Errorf("error type = %q, want %q", result.Errors[0].Type, ErrorTypeSyntax)
	}
}

func TestParseYAMLString_InvalidSyntax(t *testing.T) {
	result := ParseYAMLString("fields:\n  - a: b\n   bad: [unclosed")

	if result.IsValid() {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestParseYAMLString_NotAMapping(t *testing.T) {
	result := ParseYAMLString("- just\n- a\n- list")

	if result.IsValid() {
		t.Fatal("expected error for non-mapping document")
	}
	if result.Errors[0].Type != ErrorTypeFormat {
		t.Errorf("error type = %q, want %q", result.Errors[0].Type, ErrorTypeFormat)
	}
}

func TestParseYAMLFile_Missing(t *testing.T) {
	result := ParseYAMLFile("testdata/no-such-file.yaml")

	if result.IsValid() {
		t.Fatal("expected error for missing file")
	}
	if result.Errors[0].Type != ErrorTypeIO {
		t.Errorf("error type = %q, want %q", result.Errors[0].Type, ErrorTypeIO)
	}
}

func TestParseJSONString_Valid(t *testing.T) {
	result := ParseJSONString(`{"fields": [{"a": "str"}]}`)

	if !result.IsValid() {
		t.Fatalf("expected valid parse, got errors: %v", result.Errors)
	}
}

func TestParseJSONString_SyntaxError(t *testing.T) {
	result := ParseJSONString(`{"fields": [}`)

	if result.IsValid() {
		t.Fatal("expected error for invalid JSON")
	}
	if !strings.Contains(result.Errors[0].Message, "syntax error") {
		t.Errorf("message = %q, want syntax error with offset", result.Errors[0].Message)
	}
}

func TestParseConfig_FormatDetection(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		wantFormat string
	}{
		{"yaml extension", "testdata/valid-config.yaml", "yaml"},
		{"json extension", "testdata/valid-config.json", "json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseConfig(tt.path)
			if !result.IsValid() {
				t.Fatalf("expected valid result, got: %v", result.AllErrors())
			}
			if result.Format != tt.wantFormat {
				t.Errorf("Format = %q, want %q", result.Format, tt.wantFormat)
			}
		})
	}
}

func TestParseConfig_ValidationRuns(t *testing.T) {
	result := ParseConfig("testdata/missing-fields.yaml")

	if len(result.ParseErrors) > 0 {
		t.Fatalf("unexpected parse errors: %v", result.ParseErrors)
	}
	if len(result.ValidationErrors) == 0 {
		t.Fatal("expected validation errors for config without 'fields'")
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"config.yaml", "yaml"},
		{"config.yml", "yaml"},
		{"config.json", "json"},
		{"config.txt", ""},
		{"config", ""},
	}

	for _, tt := range tests {
		if got := DetectFormat(tt.path); got != tt.want {
			t.Errorf("DetectFormat(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestParseErrorMessage(t *testing.T) {
	err := ParseError{Path: "config.yaml", Line: 3, Column: 7, Message: "boom"}
	want := "config.yaml: line 3, column 7: boom"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
