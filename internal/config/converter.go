package config

import (
	"fmt"

	"github.com/giangnmt98/ExtractFeature/internal/table"
)

// ConvertToConfig converts parsed configuration data to a Config struct.
// The input data should have been validated against the schema before
// calling this function.
//
// The configuration is expected to have this structure:
//
//	input_data_path: data.csv
//	output_data_path: output.csv
//	fields:
//	  - first_name: str
//	  - age: int64
//	feature:
//	  - HasPhone: true
//	  - IsInNY: true
//	debug: false
//
// Both fields and feature are ordered sequences of single-key mappings.
// For feature entries only the keys are used; the values are ignored.
// Keys other than the ones above are ignored (permissive contract).
func ConvertToConfig(data map[string]interface{}) (*Config, error) {
	if data == nil {
		return nil, fmt.Errorf("configuration data is nil")
	}

	cfg := &Config{
		OutputDataPath: DefaultOutputPath,
	}

	if inputPath, ok := data["input_data_path"].(string); ok {
		cfg.InputDataPath = inputPath
	}
	if outputPath, ok := data["output_data_path"].(string); ok {
		cfg.OutputDataPath = outputPath
	}
	if debug, ok := data["debug"].(bool); ok {
		cfg.Debug = debug
	}

	fields, err := convertFields(data["fields"])
	if err != nil {
		return nil, err
	}
	cfg.Fields = fields

	features, err := convertFeatures(data["feature"])
	if err != nil {
		return nil, err
	}
	cfg.Features = features

	return cfg, nil
}

// convertFields converts the raw fields sequence into ordered field specs.
// Each entry must be a single-key mapping of column name to type tag.
func convertFields(raw interface{}) ([]table.FieldSpec, error) {
	if raw == nil {
		return nil, nil
	}

	entries, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("'fields' must be a sequence of single-key mappings, got %T", raw)
	}

	fields := make([]table.FieldSpec, 0, len(entries))
	for i, entry := range entries {
		name, value, err := singleKey(entry, i, "fields")
		if err != nil {
			return nil, err
		}
		tag, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("field %q at index %d: type tag must be a string, got %T", name, i, value)
		}
		kind, err := table.ParseKind(tag)
		if err != nil {
			return nil, fmt.Errorf("field %q at index %d: %w", name, i, err)
		}
		fields = append(fields, table.FieldSpec{Name: name, Kind: kind})
	}
	return fields, nil
}

// convertFeatures extracts the ordered feature names from the raw feature
// sequence. Only the keys matter; values are configuration noise.
func convertFeatures(raw interface{}) ([]string, error) {
	if raw == nil {
		return nil, nil
	}

	entries, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("'feature' must be a sequence of single-key mappings, got %T", raw)
	}

	features := make([]string, 0, len(entries))
	for i, entry := range entries {
		name, _, err := singleKey(entry, i, "feature")
		if err != nil {
			return nil, err
		}
		features = append(features, name)
	}
	return features, nil
}

// singleKey extracts the key and value of a single-key mapping entry.
func singleKey(entry interface{}, index int, section string) (string, interface{}, error) {
	mapping, ok := entry.(map[string]interface{})
	if !ok {
		return "", nil, fmt.Errorf("'%s' entry at index %d must be a mapping, got %T", section, index, entry)
	}
	if len(mapping) != 1 {
		return "", nil, fmt.Errorf("'%s' entry at index %d must have exactly one key, got %d", section, index, len(mapping))
	}
	for name, value := range mapping {
		return name, value, nil
	}
	return "", nil, fmt.Errorf("'%s' entry at index %d is empty", section, index)
}
