package syntax

import (
	"fmt"
	"strings"
)

// Kind discriminates the variants of Token.
type Kind uint8

const (
	// Digit matches one ASCII decimal digit.
	Digit Kind = iota
	// Alphanumeric matches one alphabetic or numeric character.
	Alphanumeric
	// PositiveGroup matches one character that is a member of Token.Set.
	PositiveGroup
	// NegativeGroup matches one character that is not a member of Token.Set.
	NegativeGroup
	// OneOrMore matches one or more consecutive Token.Char.
	OneOrMore
	// Literal matches exactly Token.Char.
	Literal
	// StartAnchor asserts the match begins at input position 0.
	StartAnchor
	// EndAnchor asserts the match ends at the end of the input.
	EndAnchor
)

var kindNames = [...]string{
	Digit:         "Digit",
	Alphanumeric:  "Alphanumeric",
	PositiveGroup: "PositiveGroup",
	NegativeGroup: "NegativeGroup",
	OneOrMore:     "OneOrMore",
	Literal:       "Literal",
	StartAnchor:   "StartAnchor",
	EndAnchor:     "EndAnchor",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Token is one compiled pattern unit.
//
// Only the payload field that belongs to Kind is meaningful: Char for Literal
// and OneOrMore, Set for PositiveGroup and NegativeGroup.
type Token struct {
	Kind Kind
	Char rune
	Set  CharSet
}

// NewLiteral returns a Literal token for c.
func NewLiteral(c rune) Token {
	return Token{Kind: Literal, Char: c}
}

// NewOneOrMore returns a OneOrMore token repeating c.
func NewOneOrMore(c rune) Token {
	return Token{Kind: OneOrMore, Char: c}
}

// NewPositiveGroup returns a PositiveGroup over the characters of body.
func NewPositiveGroup(body string) Token {
	return Token{Kind: PositiveGroup, Set: NewCharSet([]rune(body))}
}

// NewNegativeGroup returns a NegativeGroup over the characters of body.
func NewNegativeGroup(body string) Token {
	return Token{Kind: NegativeGroup, Set: NewCharSet([]rune(body))}
}

// Equal reports whether t and other are structurally identical.
func (t Token) Equal(other Token) bool {
	if t.Kind != other.Kind {
		return false
	}
	switch t.Kind {
	case Literal, OneOrMore:
		return t.Char == other.Char
	case PositiveGroup, NegativeGroup:
		return t.Set.Equal(other.Set)
	default:
		return true
	}
}

// String renders t in pattern syntax.
func (t Token) String() string {
	switch t.Kind {
	case Digit:
		return `\d`
	case Alphanumeric:
		return `\w`
	case PositiveGroup:
		return "[" + t.Set.String() + "]"
	case NegativeGroup:
		return "[^" + t.Set.String() + "]"
	case OneOrMore:
		return string(t.Char) + "+"
	case Literal:
		return string(t.Char)
	case StartAnchor:
		return "^"
	case EndAnchor:
		return "$"
	default:
		return t.Kind.String()
	}
}

// Equal reports whether two token sequences are structurally identical.
func Equal(a, b []Token) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// Format renders a token sequence as a bracketed, comma separated list of
// kinds, e.g. "[StartAnchor, Literal(a), EndAnchor]". Used for diagnostics.
func Format(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		switch t.Kind {
		case Literal, OneOrMore:
			parts[i] = fmt.Sprintf("%s(%q)", t.Kind, t.Char)
		case PositiveGroup, NegativeGroup:
			parts[i] = fmt.Sprintf("%s(%q)", t.Kind, t.Set.String())
		default:
			parts[i] = t.Kind.String()
		}
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
