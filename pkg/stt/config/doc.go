/*
Package config provides typed access to template settings loaded from
YAML or JSON.

# Overview

Config wraps a map[string]any and returns defaults for missing keys or
mismatched types, so callers can read YAML/JSON documents without type
assertions:

	cfg, err := config.FromFile("stt.yaml")
	if err != nil {
	    log.Fatal(err)
	}
	opts, err := config.TemplateOptions(cfg)
	tmpl := stt.New(source, opts...)

# Template Settings

TemplateOptions reads three keys:

	delimiter: "$"        # a single character
	missing: empty        # empty | keep | error
	unterminated: literal # literal | drop | error

Unknown values are rejected with ErrInvalidValue rather than silently
defaulted. FromFile, FromYAML and FromJSON run Validate on load, so a
misspelled top-level key (ErrUnknownKey) or a bad policy name is reported
when the file is read rather than on first render.

# Sections

Nested maps are exposed as Config values through Section and Sections,
which the lookup package uses to build lookup chains:

	lookups:
	  - type: vars
	    values: {who: world}
	  - type: env
	    prefix: STT_

# Thread Safety

Config is safe for concurrent read access. The underlying map is not
modified after creation.
*/
package config
