package lookup_test

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/randalmurphal/stt/pkg/stt"
	"github.com/randalmurphal/stt/pkg/stt/config"
	"github.com/randalmurphal/stt/pkg/stt/lookup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnv(t *testing.T) {
	t.Setenv("STT_TEST_WHO", "world")
	t.Setenv("STT_TEST_DB_HOST", "db.local")
	t.Setenv("STT_TEST_EMPTY", "")

	plain := lookup.Env{Prefix: "STT_TEST_"}
	v, ok := plain.Lookup("WHO")
	assert.True(t, ok)
	assert.Equal(t, "world", v)

	_, ok = plain.Lookup("who")
	assert.False(t, ok)

	v, ok = plain.Lookup("EMPTY")
	assert.True(t, ok)
	assert.Equal(t, "", v)

	upper := lookup.Env{Prefix: "STT_TEST_", Upper: true}
	assert.Equal(t, "STT_TEST_DB_HOST", upper.Name("db.host"))
	assert.Equal(t, "STT_TEST_DB_HOST", upper.Name("db-host"))
	assert.Equal(t, "Hello world at db.local", stt.New("Hello $who$ at $db.host$").Render(upper))
}

func TestJSON(t *testing.T) {
	j, err := lookup.NewJSON([]byte(`{
		"user": {"name": "Ada", "langs": ["go", "rust"]},
		"count": 3,
		"none": null
	}`))
	require.NoError(t, err)

	tests := []struct {
		key  string
		want string
		ok   bool
	}{
		{"user.name", "Ada", true},
		{"user.langs.1", "rust", true},
		{"user.langs.#", "2", true},
		{"count", "3", true},
		{"user.langs", `["go", "rust"]`, true},
		{"none", "", false},
		{"user.missing", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			v, ok := j.Lookup(tt.key)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, v)
		})
	}

	assert.Equal(t, "Ada knows go", stt.New("$user.name$ knows $user.langs.0$").Render(j))
}

func TestJSON_Invalid(t *testing.T) {
	_, err := lookup.NewJSON([]byte(`{"broken":`))
	assert.ErrorIs(t, err, lookup.ErrInvalidJSON)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("nope"), 0o600))
	_, err = lookup.JSONFile(path)
	assert.ErrorIs(t, err, lookup.ErrInvalidJSON)

	_, err = lookup.JSONFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestYAML(t *testing.T) {
	vars, err := lookup.YAML([]byte(`
who: world
port: 8080
enabled: true
empty:
db:
  host: db.local
servers:
  - host: a
  - host: b
`))
	require.NoError(t, err)

	assert.Equal(t, stt.MapLookup{
		"who":            "world",
		"port":           "8080",
		"enabled":        "true",
		"empty":          "",
		"db.host":        "db.local",
		"servers.0.host": "a",
		"servers.1.host": "b",
	}, vars)
}

func TestYAML_EmptyAndInvalid(t *testing.T) {
	vars, err := lookup.YAML(nil)
	require.NoError(t, err)
	assert.Empty(t, vars)

	_, err = lookup.YAML([]byte("a: [unclosed"))
	assert.Error(t, err)

	_, err = lookup.YAMLFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRegistry_Build(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "data.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"site": {"name": "docs"}}`), 0o600))

	yamlPath := filepath.Join(dir, "vars.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("owner:\n  name: ops\n"), 0o600))

	dbPath := filepath.Join(dir, "vars.db")
	store, err := lookup.NewSQLiteStore(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Set("mail", "sender", "noreply"))
	require.NoError(t, store.Close())

	t.Setenv("STT_BUILD_REGION", "eu")

	cfg, err := config.FromYAML([]byte(`
lookups:
  - type: vars
    values:
      who: world
  - type: env
    prefix: STT_BUILD_
    upper: true
  - type: json
    file: ` + jsonPath + `
  - type: yaml
    file: ` + yamlPath + `
  - type: sqlite
    path: ` + dbPath + `
    namespace: mail
`))
	require.NoError(t, err)

	chain, err := lookup.Build(cfg)
	require.NoError(t, err)
	assert.Len(t, *chain, 5)

	out := stt.New("$who$ $region$ $site.name$ $owner.name$ $sender$").Render(chain)
	assert.Equal(t, "world eu docs ops noreply", out)
}

func TestRegistry_BuildErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		err  error
	}{
		{"unknown type", "lookups:\n  - type: redis\n", lookup.ErrUnknownType},
		{"json without source", "lookups:\n  - type: json\n", config.ErrInvalidValue},
		{"yaml without file", "lookups:\n  - type: yaml\n", config.ErrInvalidValue},
		{"sqlite without path", "lookups:\n  - type: sqlite\n", config.ErrInvalidValue},
		{"sqlite missing file", "lookups:\n  - type: sqlite\n    path: /nonexistent/vars.db\n", os.ErrNotExist},
		{"invalid inline json", "lookups:\n  - type: json\n    document: \"{\"\n", lookup.ErrInvalidJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.FromYAML([]byte(tt.yaml))
			require.NoError(t, err)

			_, err = lookup.Build(cfg)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

// createPlainDB writes a rollback-journal database with the given statements.
func createPlainDB(t *testing.T, path string, stmts ...string) {
	t.Helper()
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()
	for _, stmt := range stmts {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}
}

func TestSQLiteLookup_LeavesDatabaseUntouched(t *testing.T) {
	dir := t.TempDir()

	t.Run("existing schema", func(t *testing.T) {
		path := filepath.Join(dir, "vars.db")
		createPlainDB(t, path,
			`CREATE TABLE lookup_values (namespace TEXT NOT NULL, key TEXT NOT NULL, value TEXT NOT NULL, updated_at TEXT NOT NULL, PRIMARY KEY (namespace, key))`,
			`INSERT INTO lookup_values VALUES ('default', 'who', 'world', '2026-01-01T00:00:00Z')`,
		)

		chain, err := lookup.Build(config.New(map[string]any{
			"lookups": []any{map[string]any{"type": "sqlite", "path": path}},
		}))
		require.NoError(t, err)
		assert.Equal(t, "world", stt.New("$who$").Render(chain))

		_, err = os.Stat(path + "-wal")
		assert.ErrorIs(t, err, os.ErrNotExist)

		db, err := sql.Open("sqlite", path)
		require.NoError(t, err)
		defer db.Close()
		var mode string
		require.NoError(t, db.QueryRow("PRAGMA journal_mode").Scan(&mode))
		assert.Equal(t, "delete", mode)
	})

	t.Run("foreign database", func(t *testing.T) {
		path := filepath.Join(dir, "other.db")
		createPlainDB(t, path, `CREATE TABLE other (id INTEGER)`)

		_, err := lookup.Build(config.New(map[string]any{
			"lookups": []any{map[string]any{"type": "sqlite", "path": path}},
		}))
		assert.Error(t, err)

		db, err := sql.Open("sqlite", path)
		require.NoError(t, err)
		defer db.Close()
		var tables int
		require.NoError(t, db.QueryRow(`SELECT count(*) FROM sqlite_master WHERE type = 'table'`).Scan(&tables))
		assert.Equal(t, 1, tables)
	})
}

func TestRegistry_BuildRejectsMalformedList(t *testing.T) {
	_, err := lookup.Build(config.New(map[string]any{"lookups": "vars"}))
	assert.ErrorIs(t, err, config.ErrInvalidValue)
}

func TestRegistry_Custom(t *testing.T) {
	r := lookup.NewRegistry()
	r.Register("static", func(cfg config.Config) (stt.Lookup, error) {
		return stt.ConstantLookup(cfg.String("value", "")), nil
	})

	_, ok := r.Get("static")
	assert.True(t, ok)
	assert.Equal(t, []string{"static"}, r.Names())

	chain, err := r.Build(config.New(map[string]any{
		"lookups": []any{map[string]any{"type": "static", "value": "x"}},
	}))
	require.NoError(t, err)
	assert.Equal(t, "x-x", stt.New("$a$-$b$").Render(chain))

	// Built-ins are not part of a fresh registry.
	_, err = r.Build(config.New(map[string]any{
		"lookups": []any{map[string]any{"type": "env"}},
	}))
	assert.ErrorIs(t, err, lookup.ErrUnknownType)
}

func TestDefaultRegistry_Names(t *testing.T) {
	assert.Equal(t, []string{"env", "json", "sqlite", "vars", "yaml"}, lookup.DefaultRegistry.Names())
}

func TestBuild_NoLookups(t *testing.T) {
	chain, err := lookup.Build(config.New(nil))
	require.NoError(t, err)
	assert.Empty(t, *chain)
	assert.Equal(t, "", stt.New("$a$").Render(chain))
}
