package engine

import (
	"bytes"
	"strings"
	"testing"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/coregx/minigrep/syntax"
)

type matchCase struct {
	pattern string
	input   string
	want    bool
}

var matchCases = []matchCase{
	// Single literals
	{"a", "apple", true},
	{"a", "dog", false},
	{"a", "", false},
	{"d", "dog\n", true},

	// Literal runs
	{"abc", "abc", true},
	{"abc", "xxabcxx", true},
	{"abc", "abx", false},
	{"ab", "aab", false}, // restart does not retry the failing rune

	// Digit class
	{`\d`, "apple123", true},
	{`\d`, "apple", false},
	{`\d`, "٣", false}, // Arabic-Indic digit is not ASCII
	{`\d apple`, "1 apple", true},
	{`\d apple`, "1 orange", false},
	{`\d\d\d apples`, "sally has 124 apples", true},
	{`\d\\d\\d apples`, "sally has 12 apples", false},

	// Alphanumeric class
	{`\w`, "word", true},
	{`\w`, "123", true},
	{`\w`, "$!?", false},
	{`\w`, "_", false},
	{`\w`, "ü", true},
	{`\w`, "\u0903", true},
	{`\w`, "\u0300", false},
	{`\w\w`, "-ab-", true},

	// Positive groups
	{"[abc]", "apple", true},
	{"[abc]", "dog", false},
	{"[]", "anything", false},
	{"[αβ]", "xβx", true},

	// Negative groups
	{"[^abc]", "apple", true},
	{"[^abc]", "cab", false},
	{"[^]", "x", true},
	{"[^xyz]", "xyzé", true},

	// Anchors
	{"^abc$", "abc", true},
	{"^abc$", "xabc", false},
	{"^abc$", "abcx", false},
	{"^log", "log", true},
	{"^log", "slog", false},
	{"^log", "logs", true},
	{"dog$", "hotdog", true},
	{"dog$", "dogs", false},
	{"^", "", true},
	{"^", "abc", true},
	{"$", "", true},
	{"$", "abc", true},
	{"^$", "", true},
	{"^$", "a", false},
	{"a^b", "ab", false},
	{"a$b", "ab", false},

	// One or more
	{"a+b", "aaab", true},
	{"a+b", "b", false},
	{"a+", "aaa", true},
	{"a+", "bbb", false},
	{"a+$", "aaa", true},
	{"^a+$", "aaa", true},
	{"^a+$", "aab", false},
	{"ca+ts", "caats", true},
	{"ca+ts", "cts", false},
	{"a+b+", "aabb", true},
	{"xa+b", "xaXb", false},
	{`\d+`, "12", false},  // `+` after a class is a literal
	{`\d+`, "1+", true},

	// Terminators
	{"abc$", "abc\n", true},
	{"abc$", "abc\r\n", true},
	{"^abc$", "abc \n", false},

	// Empty pattern
	{"", "", true},
	{"", "abc", true},
}

func TestMatch(t *testing.T) {
	for _, tt := range matchCases {
		t.Run(tt.pattern+"/"+tt.input, func(t *testing.T) {
			tokens := syntax.MustCompile(tt.pattern)
			if got := Match(tt.input, tokens); got != tt.want {
				t.Errorf("Match(%q, %q) = %v, want %v", tt.input, tt.pattern, got, tt.want)
			}
		})
	}
}

func TestMatchWithoutPrefilter(t *testing.T) {
	config := DefaultConfig()
	config.Prefilter = false

	for _, tt := range matchCases {
		m := New(syntax.MustCompile(tt.pattern), config)
		if got := m.MatchString(tt.input); got != tt.want {
			t.Errorf("Match(%q, %q) without prefilter = %v, want %v", tt.input, tt.pattern, got, tt.want)
		}
	}
}

func TestSingleTokenProperties(t *testing.T) {
	inputs := []string{"", "a", "xyz", "hello world", "42", "a1", "!@#", "ñ", "abc\n", "  c  "}

	tests := []struct {
		pattern string
		holds   func(rune) bool
	}{
		{"q", func(r rune) bool { return r == 'q' }},
		{"c", func(r rune) bool { return r == 'c' }},
		{`\d`, func(r rune) bool { return r >= '0' && r <= '9' }},
		{`\w`, func(r rune) bool {
			return unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.Is(unicode.Other_Alphabetic, r)
		}},
		{"[abc]", func(r rune) bool { return strings.ContainsRune("abc", r) }},
		{"[^abc]", func(r rune) bool { return !strings.ContainsRune("abc", r) }},
	}

	for _, tt := range tests {
		tokens := syntax.MustCompile(tt.pattern)
		for _, input := range inputs {
			want := strings.IndexFunc(strings.TrimRight(input, "\r\n"), tt.holds) >= 0
			if got := Match(input, tokens); got != want {
				t.Errorf("Match(%q, %q) = %v, want %v", input, tt.pattern, got, want)
			}
		}
	}
}

func TestMatcherTokens(t *testing.T) {
	tokens := syntax.MustCompile("^ab")
	m := New(tokens, DefaultConfig())
	if !syntax.Equal(m.Tokens(), tokens) {
		t.Errorf("Tokens() = %s, want %s", syntax.Format(m.Tokens()), syntax.Format(tokens))
	}
	if !m.anchored {
		t.Error("matcher for ^ab should be anchored")
	}
	if m.prefilter != nil {
		t.Error("anchored matcher must not use a prefilter")
	}
}

func TestMatcherLogging(t *testing.T) {
	prev := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	var buf bytes.Buffer
	config := DefaultConfig()
	config.Logger = zerolog.New(&buf).Level(zerolog.TraceLevel)

	m := New(syntax.MustCompile("a+b"), config)
	if !m.MatchString("aab") {
		t.Fatal("expected match")
	}

	out := buf.String()
	for _, want := range []string{
		`"message":"compiled pattern"`,
		`"tokens":"[OneOrMore('a'), Literal('b')]"`,
		`"message":"step"`,
		`"token":"a+"`,
		`"message":"scan finished"`,
		`"matched":true`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %s\n%s", want, out)
		}
	}
}

func TestMatcherLoggingDisabled(t *testing.T) {
	var buf bytes.Buffer
	config := DefaultConfig()
	config.Logger = zerolog.New(&buf).Level(zerolog.WarnLevel)

	New(syntax.MustCompile("abc"), config).MatchString("xabc")
	if buf.Len() != 0 {
		t.Errorf("expected no output at warn level, got %s", buf.String())
	}
}

// FuzzPrefilterEquivalence checks that prefiltering never changes a result.
func FuzzPrefilterEquivalence(f *testing.F) {
	for _, tt := range matchCases {
		f.Add(tt.pattern, tt.input)
	}
	f.Add(`[aé日]x`, "日x")
	f.Add(`\w+`, "\xff\xfeé")
	f.Add("[é�]", "x\xffy")
	f.Add("[0\x830日]", "\xe6")
	f.Add(`\w`, "\u0903")

	withPF := DefaultConfig()
	withoutPF := DefaultConfig()
	withoutPF.Prefilter = false

	f.Fuzz(func(t *testing.T, pattern, input string) {
		tokens, err := syntax.Compile(pattern)
		if err != nil {
			return
		}
		a := New(tokens, withPF).MatchString(input)
		b := New(tokens, withoutPF).MatchString(input)
		if a != b {
			t.Errorf("pattern %q input %q: prefilter=%v, scan=%v", pattern, input, a, b)
		}
	})
}

func BenchmarkMatchLiteral(b *testing.B) {
	m := New(syntax.MustCompile("needle"), DefaultConfig())
	line := []byte(strings.Repeat("hay ", 1024) + "needle\n")
	b.SetBytes(int64(len(line)))
	for i := 0; i < b.N; i++ {
		m.Match(line)
	}
}

func BenchmarkMatchLiteralNoPrefilter(b *testing.B) {
	config := DefaultConfig()
	config.Prefilter = false
	m := New(syntax.MustCompile("needle"), config)
	line := []byte(strings.Repeat("hay ", 1024) + "needle\n")
	b.SetBytes(int64(len(line)))
	for i := 0; i < b.N; i++ {
		m.Match(line)
	}
}
