package stt

import "unicode/utf8"

// DefaultDelimiter bounds placeholders unless WithDelimiter says otherwise.
const DefaultDelimiter = '$'

// MissingAction specifies how to handle keys the lookup cannot resolve.
type MissingAction int

const (
	// MissingEmpty emits nothing for an unresolved placeholder.
	// This is the default behavior.
	MissingEmpty MissingAction = iota

	// MissingKeep emits the placeholder text, delimiters included.
	MissingKeep

	// MissingError makes Execute return an *UndefinedKeyError.
	// Render treats it as MissingEmpty.
	MissingError
)

// String returns the action name used in configuration files.
func (a MissingAction) String() string {
	switch a {
	case MissingEmpty:
		return "empty"
	case MissingKeep:
		return "keep"
	case MissingError:
		return "error"
	default:
		return "unknown"
	}
}

// UnterminatedAction specifies how to handle a placeholder that is still
// open when the input ends.
type UnterminatedAction int

const (
	// UnterminatedLiteral emits the dangling fragment, opening delimiter
	// included, as literal text. This is the default behavior.
	UnterminatedLiteral UnterminatedAction = iota

	// UnterminatedDrop discards the dangling fragment.
	UnterminatedDrop

	// UnterminatedFail makes Execute return an *UnterminatedError.
	// Render treats it as UnterminatedLiteral.
	UnterminatedFail
)

// String returns the action name used in configuration files.
func (a UnterminatedAction) String() string {
	switch a {
	case UnterminatedLiteral:
		return "literal"
	case UnterminatedDrop:
		return "drop"
	case UnterminatedFail:
		return "error"
	default:
		return "unknown"
	}
}

// Option configures a Template.
type Option func(*Template)

// WithDelimiter sets the placeholder delimiter.
//
// Default: '$'
//
// Invalid runes (utf8.RuneError or anything utf8.ValidRune rejects) are
// ignored and the current delimiter is kept.
//
// Example:
//
//	tmpl := stt.New("Hello %who%!", stt.WithDelimiter('%'))
func WithDelimiter(r rune) Option {
	return func(t *Template) {
		if r != utf8.RuneError && utf8.ValidRune(r) {
			t.delim = r
		}
	}
}

// WithMissingAction sets how unresolved keys are handled.
//
// Default: MissingEmpty
func WithMissingAction(action MissingAction) Option {
	return func(t *Template) {
		t.missing = action
	}
}

// WithUnterminatedAction sets how an unterminated placeholder is handled.
//
// Default: UnterminatedLiteral
func WithUnterminatedAction(action UnterminatedAction) Option {
	return func(t *Template) {
		t.unterminated = action
	}
}
