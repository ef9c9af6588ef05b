// Package syntax compiles minigrep patterns into flat token sequences.
//
// The grammar is intentionally small: literal characters, the `\d` and `\w`
// escapes, bracketed positive and negative character groups, the `^` and `$`
// anchors, and a one-or-more quantifier that applies to a single literal
// character. Patterns are compiled in one left-to-right pass with no
// backtracking; the resulting []Token is consumed by package engine.
package syntax

import (
	"errors"
	"fmt"
)

// ErrMalformedPattern is the sentinel wrapped by every compilation error.
var ErrMalformedPattern = errors.New("malformed pattern")

// ErrorCode identifies the kind of malformed pattern.
type ErrorCode string

const (
	// ErrDanglingEscape indicates a trailing `\` with nothing after it.
	ErrDanglingEscape ErrorCode = "trailing backslash at end of expression"

	// ErrUnterminatedGroup indicates a `[` with no closing `]`.
	ErrUnterminatedGroup ErrorCode = "missing closing ]"
)

// Error describes a pattern that cannot be compiled.
type Error struct {
	Code    ErrorCode
	Pattern string
	// Pos is the rune offset of the offending character.
	Pos int
}

// Error implements the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("error parsing pattern: %s at offset %d: `%s`", e.Code, e.Pos, e.Pattern)
}

// Unwrap returns ErrMalformedPattern so callers can use errors.Is.
func (e *Error) Unwrap() error {
	return ErrMalformedPattern
}
