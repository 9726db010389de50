package lookup

import (
	"fmt"
	"os"
	"strconv"

	"github.com/randalmurphal/stt/pkg/stt"
	"gopkg.in/yaml.v3"
)

// YAML decodes a YAML mapping and flattens it into an stt.MapLookup.
//
// Nested keys are joined with '.', list items use their index
// ("servers.0.host"), and scalars are formatted with %v. Null values
// become empty strings. An empty document yields an empty lookup.
func YAML(data []byte) (stt.MapLookup, error) {
	var root map[string]any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse yaml lookup: %w", err)
	}
	out := make(stt.MapLookup)
	flatten(out, "", root)
	return out, nil
}

// YAMLFile reads path and flattens it with YAML.
func YAMLFile(path string) (stt.MapLookup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read yaml lookup: %w", err)
	}
	return YAML(data)
}

func flatten(out stt.MapLookup, prefix string, v any) {
	switch val := v.(type) {
	case map[string]any:
		for k, child := range val {
			flatten(out, join(prefix, k), child)
		}
	case map[any]any:
		for k, child := range val {
			flatten(out, join(prefix, fmt.Sprintf("%v", k)), child)
		}
	case []any:
		for i, child := range val {
			flatten(out, join(prefix, strconv.Itoa(i)), child)
		}
	case nil:
		if prefix != "" {
			out[prefix] = ""
		}
	default:
		out[prefix] = fmt.Sprintf("%v", val)
	}
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
