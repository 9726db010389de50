package lookup

import (
	"os"
	"strings"
)

// Env resolves keys from environment variables.
//
// The variable name is Prefix followed by the key. With Upper set, the key
// is upper-cased and any '.' or '-' becomes '_', so "db.host" reads
// PREFIX_DB_HOST. An empty but set variable still resolves.
type Env struct {
	Prefix string
	Upper  bool
}

// Lookup implements stt.Lookup.
func (e Env) Lookup(key string) (string, bool) {
	return os.LookupEnv(e.Name(key))
}

// Name returns the environment variable consulted for key.
func (e Env) Name(key string) string {
	if e.Upper {
		key = envReplacer.Replace(strings.ToUpper(key))
	}
	return e.Prefix + key
}

var envReplacer = strings.NewReplacer(".", "_", "-", "_")
