package stt

import "fmt"

// Lookup resolves a placeholder key to its replacement text.
// The boolean result reports whether the key is known.
//
// Implementations used from several goroutines must be safe for
// concurrent use; Template itself adds no locking.
type Lookup interface {
	Lookup(key string) (string, bool)
}

// LookupFunc adapts an ordinary function to the Lookup interface.
type LookupFunc func(key string) (string, bool)

// Lookup implements Lookup.
func (f LookupFunc) Lookup(key string) (string, bool) {
	return f(key)
}

// EmptyLookup resolves nothing.
type EmptyLookup struct{}

// Lookup implements Lookup.
func (EmptyLookup) Lookup(string) (string, bool) {
	return "", false
}

// ConstantLookup resolves every key to the same value.
type ConstantLookup string

// Lookup implements Lookup.
func (c ConstantLookup) Lookup(string) (string, bool) {
	return string(c), true
}

// SingleLookup resolves exactly one key.
type SingleLookup struct {
	Key   string
	Value string
}

// Single returns a SingleLookup for key and value.
func Single(key, value string) SingleLookup {
	return SingleLookup{Key: key, Value: value}
}

// Lookup implements Lookup.
func (s SingleLookup) Lookup(key string) (string, bool) {
	if key == s.Key {
		return s.Value, true
	}
	return "", false
}

// MapLookup resolves keys from a string map.
type MapLookup map[string]string

// Lookup implements Lookup. A nil map resolves nothing.
func (m MapLookup) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Vars resolves keys from a map of arbitrary values, formatted with %v.
// A nil value resolves to the empty string.
type Vars map[string]any

// Lookup implements Lookup.
func (v Vars) Lookup(key string) (string, bool) {
	val, ok := v[key]
	if !ok {
		return "", false
	}
	switch s := val.(type) {
	case nil:
		return "", true
	case string:
		return s, true
	case fmt.Stringer:
		return s.String(), true
	default:
		return fmt.Sprintf("%v", val), true
	}
}

// Chain tries each lookup in order and returns the first resolution.
type Chain []Lookup

// NewChain returns a chain of the given lookups. Nil entries are skipped.
func NewChain(lookups ...Lookup) *Chain {
	c := make(Chain, 0, len(lookups))
	for _, l := range lookups {
		c.Add(l)
	}
	return &c
}

// Add appends a lookup to the end of the chain and returns the chain.
func (c *Chain) Add(l Lookup) *Chain {
	if l != nil {
		*c = append(*c, l)
	}
	return c
}

// Lookup implements Lookup.
func (c Chain) Lookup(key string) (string, bool) {
	for _, l := range c {
		if v, ok := l.Lookup(key); ok {
			return v, true
		}
	}
	return "", false
}
