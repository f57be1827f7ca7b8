// Package config provides structured-configuration loading and saving
// with environment variable expansion. JSON is the default codec; files
// ending in .yaml or .yml use YAML instead.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Validator is an interface for configuration validation.
type Validator interface {
	Validate() error
}

// Load loads configuration from a file with environment variable
// expansion, decoding by file extension.
func Load[T any](filename string, target *T) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", filename, err)
	}

	expandedData := os.ExpandEnv(string(data))

	if err := decode(filename, []byte(expandedData), target); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", filename, err)
	}

	if validator, ok := any(target).(Validator); ok {
		if err := validator.Validate(); err != nil {
			return fmt.Errorf("config validation failed: %w", err)
		}
	}

	return nil
}

// Save writes target to a file, encoding by file extension and creating
// parent directories as needed. JSON output is pretty-printed.
func Save[T any](filename string, target *T) error {
	data, err := encode(filename, target)
	if err != nil {
		return fmt.Errorf("failed to encode config for %s: %w", filename, err)
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir for %s: %w", filename, err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", filename, err)
	}
	return nil
}

func decode(filename string, data []byte, target any) error {
	if isYAML(filename) {
		return yaml.Unmarshal(data, target)
	}
	return json.Unmarshal(data, target)
}

func encode(filename string, target any) ([]byte, error) {
	if isYAML(filename) {
		return yaml.Marshal(target)
	}
	return json.MarshalIndent(target, "", "    ")
}

func isYAML(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
