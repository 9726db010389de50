package benchmarks

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/randalmurphal/stt/pkg/stt/lookup"
)

// BenchmarkMemoryStore_Set measures in-memory writes.
func BenchmarkMemoryStore_Set(b *testing.B) {
	store := lookup.NewMemoryStore()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = store.Set("ns", "key", "value")
	}
}

// BenchmarkSQLiteStore_Set measures SQLite writes.
func BenchmarkSQLiteStore_Set(b *testing.B) {
	store, err := lookup.NewSQLiteStore(filepath.Join(b.TempDir(), "vars.db"))
	if err != nil {
		b.Fatal(err)
	}
	defer store.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = store.Set("ns", "key", "value")
	}
}

// BenchmarkSnapshot_SQLite measures snapshotting a 100-key namespace.
func BenchmarkSnapshot_SQLite(b *testing.B) {
	store, err := lookup.NewSQLiteStore(filepath.Join(b.TempDir(), "vars.db"))
	if err != nil {
		b.Fatal(err)
	}
	defer store.Close()
	for i := 0; i < 100; i++ {
		_ = store.Set("ns", fmt.Sprintf("key%d", i), "value")
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = lookup.Snapshot(store, "ns")
	}
}
