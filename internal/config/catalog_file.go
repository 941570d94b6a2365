package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CatalogEntry is one model definition in an operator supplied catalog file.
// When a file is configured it replaces the built-in static catalog wholesale.
type CatalogEntry struct {
	ID              string `yaml:"id"`
	DisplayName     string `yaml:"display_name"`
	MaxInputTokens  int    `yaml:"max_input_tokens"`
	MaxOutputTokens int    `yaml:"max_output_tokens"`
	Default         bool   `yaml:"default"`
}

type catalogFile struct {
	Models []CatalogEntry `yaml:"models"`
}

// LoadCatalogFile reads and validates a YAML catalog override.
// The file must declare at least one model and exactly one default.
func LoadCatalogFile(path string) ([]CatalogEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if len(file.Models) == 0 {
		return nil, fmt.Errorf("%s declares no models", path)
	}

	defaults := 0
	for i, entry := range file.Models {
		if entry.ID == "" {
			return nil, fmt.Errorf("%s: model %d is missing an id", path, i)
		}
		if entry.Default {
			defaults++
		}
	}
	if defaults != 1 {
		return nil, fmt.Errorf("%s must declare exactly one default model, found %d", path, defaults)
	}

	return file.Models, nil
}
