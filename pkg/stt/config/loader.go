package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// FromFile loads and validates a settings file, picking the format by extension.
// Supported extensions: .yaml, .yml, .json
func FromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		cfg, err = FromYAML(data)
	case ".json":
		cfg, err = FromJSON(data)
	default:
		return Config{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// FromYAML parses and validates YAML settings.
func FromYAML(data []byte) (Config, error) {
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Config{}, fmt.Errorf("parse yaml: %w", err)
	}
	return load(m)
}

// FromJSON parses and validates JSON settings.
func FromJSON(data []byte) (Config, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return Config{}, fmt.Errorf("parse json: %w", err)
	}
	return load(m)
}

func load(m map[string]any) (Config, error) {
	cfg := New(m)
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks a settings document before it is used:
//   - every top-level key is one of delimiter, missing, unterminated, lookups
//   - the template settings hold allowed values (see TemplateOptions)
//   - lookups, when present, is a list of maps
//
// Lookup entries themselves are checked by the factory that builds them.
func Validate(cfg Config) error {
	var unknown []string
	for key := range cfg.Raw() {
		if !isKnownKey(key) {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(unknown, ", "))
	}

	if _, err := TemplateOptions(cfg); err != nil {
		return err
	}
	_, err := cfg.Sections(KeyLookups)
	return err
}

func isKnownKey(key string) bool {
	switch key {
	case KeyDelimiter, KeyMissing, KeyUnterminated, KeyLookups:
		return true
	default:
		return false
	}
}
