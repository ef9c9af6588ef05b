// Package engine matches a single input line against a compiled token
// sequence.
//
// The engine makes one forward pass over the input. It is not a backtracking
// matcher: when a rune fails the current token, the attempt is abandoned,
// the token cursor is reset to the first token and scanning continues with
// the next rune. The rune that caused the failure is not retried against the
// first token. This approximates an unanchored substring search and is exact
// for the common cases; patterns whose prefix repeats inside a partial match
// (e.g. "ab" against "aab") are known not to match.
//
// The scan is bounded by O(len(input) * len(tokens)) comparisons and never
// recurses.
package engine

import (
	"bytes"
	"unicode"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/coregx/minigrep/prefilter"
	"github.com/coregx/minigrep/syntax"
)

// Matcher runs the scan for one compiled token sequence.
//
// A Matcher is immutable after New and safe to use concurrently from
// multiple goroutines.
type Matcher struct {
	tokens []syntax.Token

	// anchored is true when tokens[0] is StartAnchor. The anchor is treated
	// as already consumed when the scan begins.
	anchored bool

	// prefilter locates candidates for tokens[0]; nil when unavailable,
	// disabled, or the pattern is anchored.
	prefilter prefilter.Prefilter

	log zerolog.Logger
}

// New creates a Matcher for tokens.
//
// An empty token sequence matches every input.
func New(tokens []syntax.Token, config Config) *Matcher {
	m := &Matcher{
		tokens:   tokens,
		anchored: len(tokens) > 0 && tokens[0].Kind == syntax.StartAnchor,
		log:      config.Logger,
	}
	if config.Prefilter && len(tokens) > 0 && !m.anchored {
		m.prefilter = prefilter.New(tokens[0])
	}

	if e := m.log.Debug(); e.Enabled() {
		e.Str("tokens", syntax.Format(tokens)).
			Bool("anchored", m.anchored).
			Bool("prefilter", m.prefilter != nil).
			Msg("compiled pattern")
	}
	return m
}

// Match reports whether the token sequence matches input.
//
// This is a convenience wrapper around New(tokens, DefaultConfig()).
func Match(input string, tokens []syntax.Token) bool {
	return New(tokens, DefaultConfig()).MatchString(input)
}

// MatchString reports whether the pattern matches the line s.
func (m *Matcher) MatchString(s string) bool {
	return m.Match([]byte(s))
}

// Tokens returns the sequence the Matcher was built from.
// The returned slice must not be modified.
func (m *Matcher) Tokens() []syntax.Token {
	return m.tokens
}

// scanState holds the cursors of one forward pass.
type scanState struct {
	// pos is the byte offset of the current rune in the line.
	pos int
	// token indexes the token the current rune is tested against.
	token int
	// run counts consecutive repeats accepted by the active OneOrMore token.
	run int
}

// restart abandons the current attempt.
func (s *scanState) restart() {
	s.token = 0
	s.run = 0
}

// Match reports whether the pattern matches line.
//
// Trailing '\n' and '\r' bytes are stripped before scanning. Invalid UTF-8 is
// scanned as one utf8.RuneError per bad byte.
func (m *Matcher) Match(line []byte) bool {
	line = bytes.TrimRight(line, "\r\n")
	tokens := m.tokens

	s := scanState{}
	if m.anchored {
		s.token = 1
	}

	for s.pos < len(line) {
		// Every token consumed while input remains: the pattern matched a
		// substring and the rest of the line is irrelevant.
		if s.token >= len(tokens) {
			m.logResult(s, true, "tokens exhausted")
			return true
		}

		if s.token == 0 && s.run == 0 && m.prefilter != nil {
			next := m.prefilter.Find(line, s.pos)
			if next < 0 {
				s.pos = len(line)
				break
			}
			s.pos = next
		}

		r, size := utf8.DecodeRune(line[s.pos:])
		tok := tokens[s.token]
		m.logStep(s, r, tok)

		switch tok.Kind {
		case syntax.StartAnchor:
			// The only satisfiable StartAnchor is the leading one, which
			// was consumed before the loop.
			m.logResult(s, false, "start anchor mid-pattern")
			return false

		case syntax.OneOrMore:
			if r == tok.Char {
				s.run++
				s.pos += size
				continue
			}
			if s.run > 0 {
				// Quantifier satisfied: test the same rune against the
				// next token.
				s.token++
				s.run = 0
				continue
			}
			s.restart()

		default:
			if matchRune(tok, r) {
				s.token++
			} else {
				s.restart()
			}
		}
		s.pos += size
	}

	matched := m.accept(&s)
	m.logResult(s, matched, "input exhausted")
	return matched
}

// accept decides the outcome once the input is exhausted.
func (m *Matcher) accept(s *scanState) bool {
	n := len(m.tokens)

	// A quantifier still consuming at end of input has seen at least one
	// repeat and is satisfied.
	if s.token < n && m.tokens[s.token].Kind == syntax.OneOrMore && s.run > 0 {
		s.token++
		s.run = 0
	}

	if s.token == n {
		return true
	}
	// The end anchor is satisfied when it is the only token left.
	return n-s.token == 1 && m.tokens[n-1].Kind == syntax.EndAnchor
}

// matchRune evaluates a single-rune token against r. EndAnchor never matches
// a rune; its satisfaction is decided by accept.
func matchRune(tok syntax.Token, r rune) bool {
	switch tok.Kind {
	case syntax.Digit:
		return r >= '0' && r <= '9'
	case syntax.Alphanumeric:
		return isAlphanumeric(r)
	case syntax.PositiveGroup:
		return tok.Set.Contains(r)
	case syntax.NegativeGroup:
		return !tok.Set.Contains(r)
	case syntax.Literal:
		return r == tok.Char
	case syntax.EndAnchor:
		return false
	default:
		return false
	}
}

// isAlphanumeric reports whether r is alphabetic or numeric in the Unicode
// sense. Other_Alphabetic covers combining vowel signs such as U+0903.
func isAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.Is(unicode.Other_Alphabetic, r)
}

func (m *Matcher) logStep(s scanState, r rune, tok syntax.Token) {
	if e := m.log.Trace(); e.Enabled() {
		e.Int("pos", s.pos).
			Str("char", string(r)).
			Int("token_index", s.token).
			Stringer("token", tok).
			Int("run", s.run).
			Msg("step")
	}
}

func (m *Matcher) logResult(s scanState, matched bool, reason string) {
	if e := m.log.Debug(); e.Enabled() {
		e.Bool("matched", matched).
			Str("reason", reason).
			Int("pos", s.pos).
			Int("token_index", s.token).
			Msg("scan finished")
	}
}
