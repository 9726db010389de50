package config

import "fmt"

// Config wraps a map[string]any for type-safe value extraction.
// All accessor methods return default values if the key is missing
// or the value cannot be converted to the requested type.
type Config struct {
	data map[string]any
}

// New creates a Config from the given map.
// If data is nil, an empty Config is returned.
func New(data map[string]any) Config {
	if data == nil {
		data = make(map[string]any)
	}
	return Config{data: data}
}

// String returns the string value for key, or defaultVal if missing or not a string.
func (c Config) String(key, defaultVal string) string {
	if s, ok := c.data[key].(string); ok {
		return s
	}
	return defaultVal
}

// Bool returns the boolean value for key, or defaultVal if missing or not a bool.
func (c Config) Bool(key string, defaultVal bool) bool {
	if b, ok := c.data[key].(bool); ok {
		return b
	}
	return defaultVal
}

// StringMap returns the map for key with every value formatted as a string.
//
// Accepts map[string]any (as produced by YAML and JSON decoders) and
// map[string]string. Non-string scalars are formatted with %v; nested
// maps or slices make the whole value invalid and defaultVal is returned.
func (c Config) StringMap(key string, defaultVal map[string]string) map[string]string {
	switch val := c.data[key].(type) {
	case map[string]string:
		return val
	case map[string]any:
		out := make(map[string]string, len(val))
		for k, v := range val {
			switch v.(type) {
			case map[string]any, []any:
				return defaultVal
			case nil:
				out[k] = ""
			default:
				out[k] = fmt.Sprintf("%v", v)
			}
		}
		return out
	}
	return defaultVal
}

// Section returns the nested map under key as a Config.
// A missing or non-map value yields an empty Config.
func (c Config) Section(key string) Config {
	if m, ok := c.data[key].(map[string]any); ok {
		return New(m)
	}
	return New(nil)
}

// Sections returns the list of maps under key as Configs.
// Returns an error if the value is present but is not a list of maps.
func (c Config) Sections(key string) ([]Config, error) {
	v, ok := c.data[key]
	if !ok || v == nil {
		return nil, nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be a list", ErrInvalidValue, key)
	}
	out := make([]Config, 0, len(list))
	for i, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s[%d] must be a map", ErrInvalidValue, key, i)
		}
		out = append(out, New(m))
	}
	return out, nil
}

// Has returns true if the key exists in the config.
func (c Config) Has(key string) bool {
	_, ok := c.data[key]
	return ok
}

// Raw returns the underlying map.
// The returned map should not be modified.
func (c Config) Raw() map[string]any {
	return c.data
}
