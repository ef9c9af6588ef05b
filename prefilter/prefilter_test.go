package prefilter

import (
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/coregx/minigrep/syntax"
)

func TestNewSelection(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    string // "" means nil
	}{
		{"digit", `\d`, "*prefilter.DigitPrefilter"},
		{"ascii literal", "a", "*prefilter.memchrPrefilter"},
		{"ascii one or more", "a+", "*prefilter.memchrPrefilter"},
		{"non-ascii literal", "é", "*prefilter.memmemPrefilter"},
		{"small group", "[abc]", "*prefilter.memchrPrefilter"},
		{"large group", "[abcdef]", "*prefilter.TablePrefilter"},
		{"unicode group", "[aé]", "*prefilter.AhoCorasickPrefilter"},
		{"negative group", "[^abc]", "*prefilter.TablePrefilter"},
		{"alphanumeric", `\w`, "*prefilter.TablePrefilter"},
		{"start anchor", "^a", ""},
		{"end anchor", "$", ""},
		{"empty group", "[]", ""},
		{"replacement char literal", "�", ""},
		{"replacement char group", "[a�]", ""},
		{"replacement char unicode group", "[é�]", ""},
		{"invalid byte in unicode group", "[0\x830日]", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pf := New(syntax.MustCompile(tt.pattern)[0])
			got := typeName(pf)
			if got != tt.want {
				t.Errorf("New(%q) = %s, want %s", tt.pattern, got, tt.want)
			}
		})
	}
}

func typeName(pf Prefilter) string {
	switch pf.(type) {
	case nil:
		return ""
	case *DigitPrefilter:
		return "*prefilter.DigitPrefilter"
	case *memchrPrefilter:
		return "*prefilter.memchrPrefilter"
	case *memmemPrefilter:
		return "*prefilter.memmemPrefilter"
	case *TablePrefilter:
		return "*prefilter.TablePrefilter"
	case *AhoCorasickPrefilter:
		return "*prefilter.AhoCorasickPrefilter"
	default:
		return "unknown"
	}
}

func TestFind(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		haystack string
		start    int
		want     int
	}{
		{"digit", `\d`, "abc1", 0, 3},
		{"digit from start", `\d`, "1a2", 1, 2},
		{"digit none", `\d`, "abc", 0, -1},
		{"literal", "x", "abcx", 0, 3},
		{"literal past end", "x", "abcx", 4, -1},
		{"literal negative start", "x", "x", -1, -1},
		{"multibyte literal", "é", "cafe café", 0, 8},
		{"group of two", "[yz]", "aaaz", 0, 3},
		{"group of three", "[xyz]", "abc z", 0, 4},
		{"table group", "[0123456789]", "abc5", 0, 3},
		{"unicode group", "[αβ]", "abc β", 0, 4},
		{"unicode group ascii member", "[aβ]", "xxβxa", 0, 2},
		{"unicode group none", "[αβ]", "abc", 0, -1},
		{"negative group", "[^ab]", "abab c", 0, 4},
		{"negative group all members", "[^ab]", "abab", 0, -1},
		{"negative group non-ascii", "[^a]", "aaé", 0, 2},
		{"alphanumeric ascii", `\w`, "  ! z", 0, 4},
		{"alphanumeric unicode", `\w`, "-- ü", 0, 3},
		{"alphanumeric underscore", `\w`, "__", 0, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pf := New(syntax.MustCompile(tt.pattern)[0])
			if pf == nil {
				t.Fatalf("New(%q) = nil", tt.pattern)
			}
			got := pf.Find([]byte(tt.haystack), tt.start)
			if got != tt.want {
				t.Errorf("Find(%q, %d) = %d, want %d", tt.haystack, tt.start, got, tt.want)
			}
		})
	}
}

// TestFindNeverSkipsMatch checks that every rune the lead token would accept
// is reported as a candidate, on a rune boundary.
func TestFindNeverSkipsMatch(t *testing.T) {
	patterns := []string{`\d`, `\w`, "a", "é", "[abc]", "[a-z!]", "[aé日]", "[^abc]", "[^é]", "x+"}
	haystack := []byte("The 3 quick ñandúes, 日本 and _x_ ran é! \xff\xfe z9")

	for _, pattern := range patterns {
		lead := syntax.MustCompile(pattern)[0]
		pf := New(lead)
		if pf == nil {
			t.Fatalf("New(%q) = nil", pattern)
		}

		for pos := 0; pos < len(haystack); {
			r, size := utf8.DecodeRune(haystack[pos:])
			if accepts(lead, r) {
				if got := pf.Find(haystack, pos); got != pos {
					t.Errorf("%q: Find(_, %d) = %d, want %d (rune %q)", pattern, pos, got, pos, r)
				}
			}
			pos += size
		}

		boundaries := map[int]bool{}
		for pos := range string(haystack) {
			boundaries[pos] = true
		}
		for pos := 0; pos < len(haystack); {
			got := pf.Find(haystack, pos)
			if got == -1 {
				break
			}
			if !boundaries[got] {
				t.Errorf("%q: candidate %d is not a rune boundary", pattern, got)
			}
			_, size := utf8.DecodeRune(haystack[got:])
			pos = got + size
		}
	}
}

func accepts(tok syntax.Token, r rune) bool {
	switch tok.Kind {
	case syntax.Digit:
		return r >= '0' && r <= '9'
	case syntax.Alphanumeric:
		return unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.Is(unicode.Other_Alphabetic, r)
	case syntax.PositiveGroup:
		return tok.Set.Contains(r)
	case syntax.NegativeGroup:
		return !tok.Set.Contains(r)
	case syntax.Literal, syntax.OneOrMore:
		return r == tok.Char
	}
	return false
}

func TestHeapBytes(t *testing.T) {
	if got := NewDigitPrefilter().HeapBytes(); got != 0 {
		t.Errorf("DigitPrefilter.HeapBytes() = %d, want 0", got)
	}
	if got := New(syntax.NewLiteral('é')).HeapBytes(); got != 2 {
		t.Errorf("memmem HeapBytes() = %d, want 2", got)
	}
	if got := New(syntax.NewPositiveGroup("aé")).HeapBytes(); got != 3 {
		t.Errorf("Aho-Corasick HeapBytes() = %d, want 3", got)
	}
	if got := New(syntax.NewNegativeGroup("a")).HeapBytes(); got != 256 {
		t.Errorf("table HeapBytes() = %d, want 256", got)
	}
}
