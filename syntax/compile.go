package syntax

import "slices"

// Compile turns pattern into its token sequence.
//
// The pattern is scanned rune by rune from left to right:
//   - `\x` yields Digit when x is 'd' and Alphanumeric otherwise
//   - `[...]` yields PositiveGroup, or NegativeGroup when the body starts with '^'
//   - `^` and `$` yield StartAnchor and EndAnchor wherever they appear
//   - `c+` yields OneOrMore(c), any other rune yields Literal
//
// A `+` only quantifies the single literal rune right before it, so `\d+`
// compiles to Digit followed by Literal('+').
//
// Compile returns an *Error wrapping ErrMalformedPattern for a trailing
// backslash or a group with no closing bracket.
func Compile(pattern string) ([]Token, error) {
	runes := []rune(pattern)
	tokens := make([]Token, 0, len(runes))

	pos := 0
	for pos < len(runes) {
		switch c := runes[pos]; c {
		case '\\':
			if pos+1 >= len(runes) {
				return nil, &Error{Code: ErrDanglingEscape, Pattern: pattern, Pos: pos}
			}
			if runes[pos+1] == 'd' {
				tokens = append(tokens, Token{Kind: Digit})
			} else {
				tokens = append(tokens, Token{Kind: Alphanumeric})
			}
			pos += 2

		case '[':
			end := closingBracket(runes, pos+1)
			if end < 0 {
				return nil, &Error{Code: ErrUnterminatedGroup, Pattern: pattern, Pos: pos}
			}
			tokens = append(tokens, group(runes[pos+1:end]))
			pos = end + 1

		case '^':
			tokens = append(tokens, Token{Kind: StartAnchor})
			pos++

		case '$':
			tokens = append(tokens, Token{Kind: EndAnchor})
			pos++

		default:
			if pos+1 < len(runes) && runes[pos+1] == '+' {
				tokens = append(tokens, NewOneOrMore(c))
				pos += 2
			} else {
				tokens = append(tokens, NewLiteral(c))
				pos++
			}
		}
	}

	return tokens, nil
}

// MustCompile is like Compile but panics if the pattern is malformed.
func MustCompile(pattern string) []Token {
	tokens, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return tokens
}

// closingBracket returns the index of the first ']' at or after from, or -1.
// Groups never nest, so depth is not tracked.
func closingBracket(runes []rune, from int) int {
	idx := slices.Index(runes[from:], ']')
	if idx < 0 {
		return -1
	}
	return from + idx
}

func group(body []rune) Token {
	if len(body) > 0 && body[0] == '^' {
		return Token{Kind: NegativeGroup, Set: NewCharSet(body[1:])}
	}
	return Token{Kind: PositiveGroup, Set: NewCharSet(body)}
}
