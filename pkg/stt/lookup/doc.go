/*
Package lookup provides host-side stt.Lookup implementations backed by
environment variables, JSON and YAML documents, and key/value stores.

# Sources

	env := lookup.Env{Prefix: "APP_", Upper: true}  // $name$ -> APP_NAME
	doc, _ := lookup.NewJSON(body)                    // $user.name$ -> gjson path
	vars, _ := lookup.YAML(data)                       // nested keys joined with "."

# Stores

Store persists values grouped by namespace. MemoryStore is meant for
tests; SQLiteStore is suitable for single-process production use.
Snapshot copies one namespace into an stt.MapLookup so a render never
touches the database:

	store, _ := lookup.NewSQLiteStore("./vars.db")
	defer store.Close()
	_ = store.Set("mail", "who", "world")
	vars, _ := lookup.Snapshot(store, "mail")
	out := stt.New("Hello $who$!").Render(vars)

# Configuration

Build assembles an stt.Chain from the "lookups" list of a config file,
using the factories in a Registry. Register adds custom source types:

	lookup.DefaultRegistry.Register("static", func(cfg config.Config) (stt.Lookup, error) {
	    return stt.ConstantLookup(cfg.String("value", "")), nil
	})
*/
package lookup
