package lookup

import (
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// ErrInvalidJSON indicates a document passed to NewJSON is not valid JSON.
var ErrInvalidJSON = errors.New("invalid json document")

// JSON resolves keys as gjson paths into a JSON document.
//
// "user.name", "items.0" and "items.#" all work. Objects and arrays resolve
// to their raw JSON text; null and absent paths do not resolve.
type JSON struct {
	doc []byte
}

// NewJSON validates doc and returns a JSON lookup over a private copy.
func NewJSON(doc []byte) (*JSON, error) {
	if !gjson.ValidBytes(doc) {
		return nil, ErrInvalidJSON
	}
	owned := make([]byte, len(doc))
	copy(owned, doc)
	return &JSON{doc: owned}, nil
}

// JSONFile reads and validates a JSON document from path.
func JSONFile(path string) (*JSON, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read json lookup: %w", err)
	}
	j, err := NewJSON(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return j, nil
}

// Lookup implements stt.Lookup.
func (j *JSON) Lookup(key string) (string, bool) {
	result := gjson.GetBytes(j.doc, key)
	if !result.Exists() || result.Type == gjson.Null {
		return "", false
	}
	return result.String(), true
}
