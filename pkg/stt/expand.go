package stt

// RenderAll executes every source with the same lookup and options.
//
// Returns a new slice with rendered strings. On the first error it
// returns nil and that error.
//
// Example:
//
//	out, _ := stt.RenderAll([]string{"$a$", "$b$"}, stt.Vars{"a": 1, "b": 2})
//	// out: []string{"1", "2"}
func RenderAll(sources []string, l Lookup, opts ...Option) ([]string, error) {
	if sources == nil {
		return nil, nil
	}

	results := make([]string, len(sources))
	for i, s := range sources {
		out, err := New(s, opts...).Execute(l)
		if err != nil {
			return nil, err
		}
		results[i] = out
	}
	return results, nil
}

// RenderMap executes every string value of m recursively.
//
// Returns a new map. Nested map[string]any and []any values are walked;
// any other value is copied as-is. On the first error it returns nil and
// that error.
//
// Example:
//
//	out, _ := stt.RenderMap(map[string]any{
//	    "url":  "https://$host$/api",
//	    "port": 8080,
//	}, stt.MapLookup{"host": "example.com"})
func RenderMap(m map[string]any, l Lookup, opts ...Option) (map[string]any, error) {
	if m == nil {
		return nil, nil
	}

	result := make(map[string]any, len(m))
	for k, v := range m {
		rendered, err := renderValue(v, l, opts)
		if err != nil {
			return nil, err
		}
		result[k] = rendered
	}
	return result, nil
}

func renderValue(v any, l Lookup, opts []Option) (any, error) {
	switch val := v.(type) {
	case string:
		return New(val, opts...).Execute(l)
	case map[string]any:
		return RenderMap(val, l, opts...)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			rendered, err := renderValue(item, l, opts)
			if err != nil {
				return nil, err
			}
			out[i] = rendered
		}
		return out, nil
	default:
		return v, nil
	}
}
