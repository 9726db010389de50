package lookup

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/randalmurphal/stt/pkg/stt"
	"github.com/randalmurphal/stt/pkg/stt/config"
)

// ErrUnknownType indicates a lookups entry names a type with no registered factory.
var ErrUnknownType = errors.New("unknown lookup type")

// Factory builds a lookup from one entry of the "lookups" config list.
type Factory func(cfg config.Config) (stt.Lookup, error)

// Registry maps lookup type names to factories.
// All methods are safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry returns a registry with no factories.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// DefaultRegistry holds the built-in types: vars, env, json, yaml, sqlite.
var DefaultRegistry = newDefaultRegistry()

func newDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("vars", varsFactory)
	r.Register("env", envFactory)
	r.Register("json", jsonFactory)
	r.Register("yaml", yamlFactory)
	r.Register("sqlite", sqliteFactory)
	return r
}

// Register adds or replaces the factory for name.
func (r *Registry) Register(name string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = f
}

// Get returns the factory for name and whether it exists.
func (r *Registry) Get(name string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[name]
	return f, ok
}

// Names returns the registered type names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build creates an stt.Chain from the "lookups" list of cfg, in order.
// Each entry needs a "type" naming a registered factory.
func (r *Registry) Build(cfg config.Config) (*stt.Chain, error) {
	sections, err := cfg.Sections(config.KeyLookups)
	if err != nil {
		return nil, err
	}

	chain := stt.NewChain()
	for i, section := range sections {
		typ := section.String("type", "")
		f, ok := r.Get(typ)
		if !ok {
			return nil, fmt.Errorf("lookups[%d]: %w: %q", i, ErrUnknownType, typ)
		}
		l, err := f(section)
		if err != nil {
			return nil, fmt.Errorf("lookups[%d] (%s): %w", i, typ, err)
		}
		chain.Add(l)
	}
	return chain, nil
}

// Build creates a chain using DefaultRegistry.
func Build(cfg config.Config) (*stt.Chain, error) {
	return DefaultRegistry.Build(cfg)
}

func varsFactory(cfg config.Config) (stt.Lookup, error) {
	return stt.MapLookup(cfg.StringMap("values", map[string]string{})), nil
}

func envFactory(cfg config.Config) (stt.Lookup, error) {
	return Env{
		Prefix: cfg.String("prefix", ""),
		Upper:  cfg.Bool("upper", false),
	}, nil
}

func jsonFactory(cfg config.Config) (stt.Lookup, error) {
	if file := cfg.String("file", ""); file != "" {
		return JSONFile(file)
	}
	if doc := cfg.String("document", ""); doc != "" {
		return NewJSON([]byte(doc))
	}
	return nil, fmt.Errorf("%w: json lookup needs file or document", config.ErrInvalidValue)
}

func yamlFactory(cfg config.Config) (stt.Lookup, error) {
	file := cfg.String("file", "")
	if file == "" {
		return nil, fmt.Errorf("%w: yaml lookup needs file", config.ErrInvalidValue)
	}
	return YAMLFile(file)
}

// sqliteFactory snapshots one namespace through a read-only connection and
// closes the database again.
func sqliteFactory(cfg config.Config) (stt.Lookup, error) {
	path := cfg.String("path", "")
	if path == "" {
		return nil, fmt.Errorf("%w: sqlite lookup needs path", config.ErrInvalidValue)
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("sqlite lookup: %w", err)
	}
	store, err := OpenSQLiteStoreReadOnly(path)
	if err != nil {
		return nil, fmt.Errorf("sqlite lookup: %w", err)
	}
	defer store.Close()
	return Snapshot(store, cfg.String("namespace", "default"))
}
