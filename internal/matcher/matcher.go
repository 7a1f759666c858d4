// Package matcher filters archive entry names with a user pattern.
//
// Four dialects mirror grep's pattern modes: extended (-E), basic (-G),
// fixed strings (-F) and Perl-compatible (-P). Extended and basic patterns run
// on Go's RE2 engine after translation of the constructs RE2 reads differently,
// such as the GNU word anchors \< and \>. Perl
// patterns run on github.com/dlclark/regexp2, which supports look-around and
// other backtracking constructs RE2 rejects.
package matcher

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
	"github.com/harrison/find-in-jars/internal/config"
)

// Matcher tests entry names against a compiled pattern
type Matcher interface {
	// Match reports whether the pattern matches anywhere in name
	Match(name string) bool

	// FindAllIndex returns the byte offsets [start, end) of every non-empty match
	// in name, in order. It returns nil when nothing matches.
	FindAllIndex(name string) [][]int
}

// New compiles pattern in the given dialect.
// An invalid pattern is reported as an error naming the dialect.
func New(pattern string, mode config.RegexMode, ignoreCase bool) (Matcher, error) {
	switch mode {
	case config.ModeExtended:
		return compileRE2(translateExtended(pattern), ignoreCase, mode)
	case config.ModeBasic:
		translated, err := TranslateBasic(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid basic regular expression %q: %w", pattern, err)
		}
		return compileRE2(translated, ignoreCase, mode)
	case config.ModeFixed:
		return compileRE2(regexp.QuoteMeta(pattern), ignoreCase, mode)
	case config.ModePerl:
		return compilePerl(pattern, ignoreCase)
	default:
		return nil, fmt.Errorf("unknown regex mode %q", mode)
	}
}

// re2Matcher matches with Go's regexp package
type re2Matcher struct {
	re *regexp.Regexp
}

func compileRE2(expr string, ignoreCase bool, mode config.RegexMode) (*re2Matcher, error) {
	if ignoreCase {
		expr = "(?i)" + expr
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid %s regular expression: %w", mode, err)
	}
	// POSIX dialects report the leftmost-longest match
	re.Longest()

	return &re2Matcher{re: re}, nil
}

func (m *re2Matcher) Match(name string) bool {
	return m.re.MatchString(name)
}

func (m *re2Matcher) FindAllIndex(name string) [][]int {
	var spans [][]int
	for _, loc := range m.re.FindAllStringIndex(name, -1) {
		if loc[1] > loc[0] {
			spans = append(spans, loc)
		}
	}
	return spans
}

// perlMatcher matches with the regexp2 backtracking engine
type perlMatcher struct {
	re *regexp2.Regexp
}

func compilePerl(pattern string, ignoreCase bool) (*perlMatcher, error) {
	opts := regexp2.None
	if ignoreCase {
		opts |= regexp2.IgnoreCase
	}

	re, err := regexp2.Compile(pattern, opts)
	if err != nil {
		return nil, fmt.Errorf("invalid perl regular expression: %w", err)
	}

	return &perlMatcher{re: re}, nil
}

func (m *perlMatcher) Match(name string) bool {
	ok, err := m.re.MatchString(name)
	return err == nil && ok
}

// FindAllIndex converts regexp2's rune offsets to byte offsets
func (m *perlMatcher) FindAllIndex(name string) [][]int {
	match, err := m.re.FindStringMatch(name)
	if err != nil || match == nil {
		return nil
	}

	offsets := runeOffsets(name)
	var spans [][]int
	for match != nil {
		if match.Length > 0 {
			spans = append(spans, []int{offsets[match.Index], offsets[match.Index+match.Length]})
		}

		match, err = m.re.FindNextMatch(match)
		if err != nil {
			break
		}
	}
	return spans
}

// runeOffsets maps each rune index of s, as regexp2 counts runes, to its byte
// offset. An invalid byte counts as one rune. The last element is len(s).
func runeOffsets(s string) []int {
	offsets := make([]int, 0, len(s)+1)
	for i := 0; i < len(s); {
		offsets = append(offsets, i)
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return append(offsets, len(s))
}
