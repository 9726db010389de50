package lookup

import (
	"errors"
	"fmt"
	"time"

	"github.com/randalmurphal/stt/pkg/stt"
)

// Store persists lookup values grouped by namespace.
// Implementations must be safe for concurrent use.
type Store interface {
	// Set stores value under (namespace, key), overwriting any previous value.
	Set(namespace, key, value string) error

	// Get retrieves a value.
	// Returns ErrNotFound if the key doesn't exist.
	Get(namespace, key string) (string, error)

	// List returns every entry of a namespace, ordered by key.
	// Returns empty slice (not error) if the namespace is empty.
	List(namespace string) ([]Entry, error)

	// Delete removes a single key.
	// Returns nil if the key doesn't exist.
	Delete(namespace, key string) error

	// DeleteNamespace removes every key of a namespace.
	// Returns nil if the namespace is empty.
	DeleteNamespace(namespace string) error

	// Close releases any resources (connections, files).
	Close() error
}

// Entry is one stored value with its metadata.
type Entry struct {
	Namespace string
	Key       string
	Value     string
	UpdatedAt time.Time
}

// Sentinel errors for store operations.
var (
	// ErrNotFound indicates a key doesn't exist.
	ErrNotFound = errors.New("lookup value not found")

	// ErrStoreClosed indicates the store has been closed.
	ErrStoreClosed = errors.New("lookup store closed")
)

// Snapshot copies one namespace of store into an stt.MapLookup.
func Snapshot(store Store, namespace string) (stt.MapLookup, error) {
	entries, err := store.List(namespace)
	if err != nil {
		return nil, fmt.Errorf("snapshot %q: %w", namespace, err)
	}
	out := make(stt.MapLookup, len(entries))
	for _, e := range entries {
		out[e.Key] = e.Value
	}
	return out, nil
}

// SetAll stores every pair of values under namespace.
func SetAll(store Store, namespace string, values map[string]string) error {
	for k, v := range values {
		if err := store.Set(namespace, k, v); err != nil {
			return fmt.Errorf("set %s/%s: %w", namespace, k, err)
		}
	}
	return nil
}
