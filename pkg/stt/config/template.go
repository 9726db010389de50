package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/randalmurphal/stt/pkg/stt"
)

// Sentinel errors for configuration loading.
var (
	// ErrUnsupportedFormat indicates a config file extension FromFile cannot parse.
	ErrUnsupportedFormat = errors.New("unsupported config file extension")

	// ErrInvalidValue indicates a key holds a value outside its allowed set.
	ErrInvalidValue = errors.New("invalid config value")

	// ErrUnknownKey indicates a settings file has a top-level key stt does not read.
	ErrUnknownKey = errors.New("unknown config key")
)

// Top-level settings keys. The first three are read by TemplateOptions;
// KeyLookups is read by lookup.Build.
const (
	KeyDelimiter    = "delimiter"
	KeyMissing      = "missing"
	KeyUnterminated = "unterminated"
	KeyLookups      = "lookups"
)

// TemplateOptions converts the template settings in cfg into stt options.
// Missing keys leave the stt defaults in place.
func TemplateOptions(cfg Config) ([]stt.Option, error) {
	var opts []stt.Option

	if cfg.Has(KeyDelimiter) {
		d, err := parseDelimiter(cfg.String(KeyDelimiter, ""))
		if err != nil {
			return nil, err
		}
		opts = append(opts, stt.WithDelimiter(d))
	}

	if cfg.Has(KeyMissing) {
		action, err := ParseMissingAction(cfg.String(KeyMissing, ""))
		if err != nil {
			return nil, err
		}
		opts = append(opts, stt.WithMissingAction(action))
	}

	if cfg.Has(KeyUnterminated) {
		action, err := ParseUnterminatedAction(cfg.String(KeyUnterminated, ""))
		if err != nil {
			return nil, err
		}
		opts = append(opts, stt.WithUnterminatedAction(action))
	}

	return opts, nil
}

// ParseMissingAction maps "empty", "keep" or "error" to a MissingAction.
func ParseMissingAction(s string) (stt.MissingAction, error) {
	for _, a := range []stt.MissingAction{stt.MissingEmpty, stt.MissingKeep, stt.MissingError} {
		if strings.EqualFold(s, a.String()) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %s %q (want empty, keep or error)", ErrInvalidValue, KeyMissing, s)
}

// ParseUnterminatedAction maps "literal", "drop" or "error" to an UnterminatedAction.
func ParseUnterminatedAction(s string) (stt.UnterminatedAction, error) {
	for _, a := range []stt.UnterminatedAction{stt.UnterminatedLiteral, stt.UnterminatedDrop, stt.UnterminatedFail} {
		if strings.EqualFold(s, a.String()) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %s %q (want literal, drop or error)", ErrInvalidValue, KeyUnterminated, s)
}

func parseDelimiter(s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, fmt.Errorf("%w: %s must be a single character, got %q", ErrInvalidValue, KeyDelimiter, s)
	}
	return r, nil
}
