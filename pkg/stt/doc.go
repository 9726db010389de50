/*
Package stt provides a simple text template engine.

# Overview

A template is plain text with placeholders bounded by a delimiter on both
sides. The default delimiter is '$':

	tmpl := stt.New("Hello $who$!")
	out := tmpl.Render(stt.Single("who", "world"))
	// out: "Hello world!"

Rendering is a single left-to-right scan. Every placeholder is resolved
through a Lookup, called once per placeholder in order of appearance.

# Lookups

Lookup is a one-method interface. Any function can be adapted with
LookupFunc, and the package ships a few ready-made implementations:

	stt.EmptyLookup{}                  // resolves nothing
	stt.ConstantLookup("x")            // resolves every key to "x"
	stt.Single("who", "world")         // resolves one key
	stt.MapLookup{"who": "world"}      // resolves from a map
	stt.Vars{"port": 8080}             // formats values with %v
	stt.NewChain(first, second)        // first lookup that resolves wins

# Irregular Input

New never fails. Irregularities are resolved while rendering:

  - Unknown key: emits nothing by default. WithMissingAction(MissingKeep)
    emits the placeholder text unchanged; MissingError makes Execute return
    an *UndefinedKeyError.
  - Unterminated placeholder ("$name" at end of input): emitted verbatim by
    default. WithUnterminatedAction(UnterminatedDrop) drops it;
    UnterminatedFail makes Execute return an *UnterminatedError.
  - Empty key ("$$"): emits a single literal delimiter. The lookup is not
    called.

Render never returns an error. Policies set to "error" fall back to the
default behaviour under Render; use Execute to observe them:

	tmpl := stt.New("$missing$", stt.WithMissingAction(stt.MissingError))
	_, err := tmpl.Execute(stt.EmptyLookup{})
	// errors.Is(err, stt.ErrUndefinedKey) == true

# Partial Rendering

Partial substitutes the keys a lookup knows and keeps the rest, returning
a new template:

	greeting := stt.New("$greeting$, $who$!").Set("greeting", "Hello")
	// greeting.Source(): "Hello, $who$!"

# Batch Rendering

RenderAll and RenderMap render many strings with the same lookup. RenderMap
walks nested maps and slices and copies non-string values unchanged.

# Thread Safety

A Template is immutable after New. Render, Execute and Partial are safe for
concurrent use provided the supplied Lookup is.
*/
package stt
