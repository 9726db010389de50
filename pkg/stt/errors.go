package stt

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned (wrapped) by Execute and Validate.
var (
	// ErrUndefinedKey indicates the lookup could not resolve a placeholder.
	ErrUndefinedKey = errors.New("undefined key")

	// ErrUnterminated indicates the input ended inside a placeholder.
	ErrUnterminated = errors.New("unterminated placeholder")
)

// UndefinedKeyError is returned when MissingError is set and one or more
// keys are not resolved. Keys are listed in order of appearance.
type UndefinedKeyError struct {
	Keys []string
}

// Error implements the error interface.
func (e *UndefinedKeyError) Error() string {
	if len(e.Keys) == 1 {
		return fmt.Sprintf("undefined key: %s", e.Keys[0])
	}
	return fmt.Sprintf("undefined keys: %s", strings.Join(e.Keys, ", "))
}

// Is reports whether target is ErrUndefinedKey.
func (e *UndefinedKeyError) Is(target error) bool {
	return target == ErrUndefinedKey
}

// UnterminatedError reports a placeholder left open at end of input.
type UnterminatedError struct {
	// Offset is the byte offset of the opening delimiter.
	Offset int
	// Fragment is the dangling text, opening delimiter included.
	Fragment string
}

// Error implements the error interface.
func (e *UnterminatedError) Error() string {
	return fmt.Sprintf("unterminated placeholder at offset %d: %q", e.Offset, e.Fragment)
}

// Is reports whether target is ErrUnterminated.
func (e *UnterminatedError) Is(target error) bool {
	return target == ErrUnterminated
}
