// Package minigrep provides a minimal line-oriented pattern matcher.
//
// The pattern grammar is deliberately small:
//   - literal characters
//   - `\d` (ASCII digit) and `\w` (letter or number); any other escape is `\w`
//   - `[abc]` and `[^abc]` character groups
//   - `^` and `$` anchors
//   - `c+`, one or more of a single literal character
//
// Matching is a single forward pass that restarts from the first token on
// any mismatch; see package engine for the exact semantics, including the
// cases where it differs from a backtracking regex engine.
//
// Basic usage:
//
//	re, err := minigrep.Compile(`^\d\d apples$`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if re.MatchString("42 apples\n") {
//	    fmt.Println("matched!")
//	}
//
// Limitations:
//   - No alternation, captures, backreferences or nested groups
//   - No `*`, `?` or `{m,n}`; `+` applies to a single literal only
//   - One line at a time, case-sensitive
package minigrep

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/coregx/minigrep/engine"
	"github.com/coregx/minigrep/syntax"
)

// Regex represents a compiled pattern.
//
// A Regex is safe to use concurrently from multiple goroutines.
//
// Example:
//
//	re := minigrep.MustCompile(`a+b`)
//	if re.MatchString("aaab") {
//	    println("matched!")
//	}
type Regex struct {
	matcher *engine.Matcher
	pattern string
}

// Compile compiles a pattern with the default configuration.
//
// Returns an error wrapping syntax.ErrMalformedPattern if the pattern ends in
// a lone backslash or opens a group that is never closed.
//
// Example:
//
//	re, err := minigrep.Compile(`[^abc]`)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile compiles a pattern and panics if it fails.
//
// Example:
//
//	var digits = minigrep.MustCompile(`\d`)
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("minigrep: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// CompileWithConfig compiles a pattern with custom engine configuration.
//
// Example:
//
//	config := minigrep.DefaultConfig()
//	config.Logger = zerolog.New(os.Stderr).Level(zerolog.TraceLevel)
//	re, err := minigrep.CompileWithConfig("ca+t", config)
func CompileWithConfig(pattern string, config engine.Config) (*Regex, error) {
	tokens, err := syntax.Compile(pattern)
	if err != nil {
		return nil, err
	}

	return &Regex{
		matcher: engine.New(tokens, config),
		pattern: pattern,
	}, nil
}

// DefaultConfig returns the default configuration for compilation.
func DefaultConfig() engine.Config {
	return engine.DefaultConfig()
}

// MatchString reports whether the line s matches pattern.
// More complicated queries need to use Compile and the Regex interface.
func MatchString(pattern, s string) (bool, error) {
	re, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(s), nil
}

// Match reports whether the line b matches the pattern.
// A trailing line terminator in b is ignored.
func (r *Regex) Match(b []byte) bool {
	return r.matcher.Match(b)
}

// MatchString reports whether the line s matches the pattern.
// A trailing line terminator in s is ignored.
func (r *Regex) MatchString(s string) bool {
	return r.matcher.MatchString(s)
}

// MatchReader reads one line from rd and reports whether it matches.
//
// The line ends at the first '\n' or at EOF. Reading an empty stream yields
// an empty line, which is matched like any other.
func (r *Regex) MatchReader(rd io.Reader) (bool, error) {
	line, err := bufio.NewReader(rd).ReadBytes('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read line: %w", err)
	}
	return r.Match(line), nil
}

// String returns the source text used to compile the pattern.
func (r *Regex) String() string {
	return r.pattern
}

// Tokens returns a copy of the compiled token sequence.
func (r *Regex) Tokens() []syntax.Token {
	return append([]syntax.Token(nil), r.matcher.Tokens()...)
}
