package stt

import (
	"errors"
	"strings"
)

// Template is an immutable piece of text with delimiter-bounded placeholders.
//
// Create with New() and configure with Option functions.
// Template is safe for concurrent use after construction.
type Template struct {
	source       string
	delim        rune
	missing      MissingAction
	unterminated UnterminatedAction
}

// New creates a Template from source. It never fails: malformed
// placeholders are handled when rendering.
//
// Default configuration:
//   - Delimiter: '$'
//   - MissingAction: MissingEmpty
//   - UnterminatedAction: UnterminatedLiteral
func New(source string, opts ...Option) *Template {
	t := &Template{
		source: source,
		delim:  DefaultDelimiter,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Source returns the template text exactly as given to New.
func (t *Template) Source() string {
	return t.source
}

// String implements fmt.Stringer.
func (t *Template) String() string {
	return t.source
}

// Delimiter returns the rune bounding placeholders.
func (t *Template) Delimiter() rune {
	return t.delim
}

// Render substitutes every placeholder and returns the result.
//
// Render never fails. MissingError and UnterminatedFail fall back to
// MissingEmpty and UnterminatedLiteral; use Execute to observe them.
// A nil lookup behaves like EmptyLookup.
func (t *Template) Render(l Lookup) string {
	out, _ := t.expand(l, false)
	return out
}

// Execute substitutes every placeholder like Render, but reports the
// irregularities whose policy is set to error.
//
// The rendered string is returned even when err is non-nil. When both an
// undefined key and an unterminated placeholder are found, err joins the two.
//
// Example:
//
//	tmpl := stt.New("$a$ $b$", stt.WithMissingAction(stt.MissingError))
//	_, err := tmpl.Execute(stt.Single("a", "1"))
//	// err: "undefined key: b"
func (t *Template) Execute(l Lookup) (string, error) {
	return t.expand(l, true)
}

func (t *Template) expand(l Lookup, strict bool) (string, error) {
	if l == nil {
		l = EmptyLookup{}
	}

	var (
		b            strings.Builder
		missing      []string
		unterminated *UnterminatedError
	)
	b.Grow(len(t.source))

	scan(t.source, t.delim, func(seg segment) {
		switch seg.kind {
		case segmentLiteral:
			b.WriteString(seg.text)
		case segmentDelimiter:
			b.WriteRune(t.delim)
		case segmentKey:
			if v, ok := l.Lookup(seg.text); ok {
				b.WriteString(v)
				return
			}
			switch t.missing {
			case MissingKeep:
				t.writePlaceholder(&b, seg.text)
			case MissingError:
				missing = append(missing, seg.text)
			}
		case segmentUnterminated:
			switch t.unterminated {
			case UnterminatedDrop:
			case UnterminatedFail:
				unterminated = &UnterminatedError{Offset: seg.offset, Fragment: seg.text}
				b.WriteString(seg.text)
			default:
				b.WriteString(seg.text)
			}
		}
	})

	if !strict {
		return b.String(), nil
	}

	var errs []error
	if len(missing) > 0 {
		errs = append(errs, &UndefinedKeyError{Keys: missing})
	}
	if unterminated != nil {
		errs = append(errs, unterminated)
	}
	return b.String(), errors.Join(errs...)
}

// Partial substitutes the keys l resolves and keeps every other
// placeholder, returning a new Template with the same options.
//
// Literal delimiters in the output (from "$$" or from substituted values)
// are written back as "$$", so rendering the result later produces the
// same text. An unterminated placeholder is carried over unchanged.
func (t *Template) Partial(l Lookup) *Template {
	if l == nil {
		l = EmptyLookup{}
	}

	var b strings.Builder
	b.Grow(len(t.source))
	delim := string(t.delim)
	escaped := delim + delim

	scan(t.source, t.delim, func(seg segment) {
		switch seg.kind {
		case segmentLiteral, segmentUnterminated:
			b.WriteString(seg.text)
		case segmentDelimiter:
			b.WriteString(escaped)
		case segmentKey:
			if v, ok := l.Lookup(seg.text); ok {
				b.WriteString(strings.ReplaceAll(v, delim, escaped))
				return
			}
			t.writePlaceholder(&b, seg.text)
		}
	})

	next := *t
	next.source = b.String()
	return &next
}

// Set is Partial with a single key/value pair.
//
// Example:
//
//	tmpl := stt.New("$greeting$, $who$!").Set("greeting", "Hello")
//	// tmpl.Source(): "Hello, $who$!"
func (t *Template) Set(key, value string) *Template {
	return t.Partial(Single(key, value))
}

// Keys returns the distinct placeholder keys in order of first appearance.
// Empty keys ("$$") and unterminated fragments are not keys.
func (t *Template) Keys() []string {
	var keys []string
	seen := make(map[string]struct{})
	scan(t.source, t.delim, func(seg segment) {
		if seg.kind != segmentKey {
			return
		}
		if _, ok := seen[seg.text]; ok {
			return
		}
		seen[seg.text] = struct{}{}
		keys = append(keys, seg.text)
	})
	return keys
}

// Validate reports an unterminated placeholder regardless of the
// configured UnterminatedAction. It returns nil for well-formed templates.
func (t *Template) Validate() error {
	var err error
	scan(t.source, t.delim, func(seg segment) {
		if seg.kind == segmentUnterminated {
			err = &UnterminatedError{Offset: seg.offset, Fragment: seg.text}
		}
	})
	return err
}

func (t *Template) writePlaceholder(b *strings.Builder, key string) {
	b.WriteRune(t.delim)
	b.WriteString(key)
	b.WriteRune(t.delim)
}

// Render renders source with default options.
//
// Example:
//
//	out := stt.Render("Hello $who$!", stt.MapLookup{"who": "world"})
//	// out: "Hello world!"
func Render(source string, l Lookup) string {
	return New(source).Render(l)
}
