package matcher

import (
	"testing"

	"github.com/harrison/find-in-jars/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Modes(t *testing.T) {
	tests := []struct {
		name       string
		pattern    string
		mode       config.RegexMode
		ignoreCase bool
		matches    []string
		misses     []string
	}{
		{
			name:    "extended anchors and escapes",
			pattern: `^log4j\.properties$`,
			mode:    config.ModeExtended,
			matches: []string{"log4j.properties"},
			misses:  []string{"conf/log4j.properties", "log4jXproperties", "Log4j.properties"},
		},
		{
			name:    "extended alternation and plus",
			pattern: `(Service|Client)s?\.class$`,
			mode:    config.ModeExtended,
			matches: []string{"a/b/Service.class", "Clients.class"},
			misses:  []string{"Service.java", "Servicex.class"},
		},
		{
			name:    "extended posix class",
			pattern: `^[[:upper:]][[:alnum:]]+\.class$`,
			mode:    config.ModeExtended,
			matches: []string{"Main.class"},
			misses:  []string{"main.class", "pkg/Main.class"},
		},
		{
			name:       "extended ignore case",
			pattern:    `^log4j\.properties$`,
			mode:       config.ModeExtended,
			ignoreCase: true,
			matches:    []string{"LOG4J.Properties"},
			misses:     []string{"log4j.xml"},
		},
		{
			name:    "extended word anchors",
			pattern: `\<Foo\>`,
			mode:    config.ModeExtended,
			matches: []string{"com/Foo.class", "Foo"},
			misses:  []string{"com/FooBar.class", "com/BarFoo.class"},
		},
		{
			name:    "extended escaped brackets stay literal",
			pattern: `\[<\]`,
			mode:    config.ModeExtended,
			matches: []string{"a[<]b"},
			misses:  []string{"a<b"},
		},
		{
			name:    "extended leading star is literal",
			pattern: `*.class`,
			mode:    config.ModeExtended,
			matches: []string{"a*.class"},
			misses:  []string{"a.class"},
		},
		{
			name:    "extended star after group or alternation is literal",
			pattern: `(*x)|*y`,
			mode:    config.ModeExtended,
			matches: []string{"a*x", "b*y"},
			misses:  []string{"ax", "by"},
		},
		{
			name:    "basic parentheses are literal",
			pattern: `f(x)`,
			mode:    config.ModeBasic,
			matches: []string{"f(x)"},
			misses:  []string{"fx"},
		},
		{
			name:    "basic escaped group and interval",
			pattern: `\(ab\)\{2\}`,
			mode:    config.ModeBasic,
			matches: []string{"xababy"},
			misses:  []string{"ab"},
		},
		{
			name:    "basic plus is literal",
			pattern: `a+b`,
			mode:    config.ModeBasic,
			matches: []string{"a+b"},
			misses:  []string{"aab"},
		},
		{
			name:       "basic ignore case",
			pattern:    `^meta-inf/manifest\.mf$`,
			mode:       config.ModeBasic,
			ignoreCase: true,
			matches:    []string{"META-INF/MANIFEST.MF"},
			misses:     []string{"META-INF/MANIFEST.MFX"},
		},
		{
			name:    "fixed string metacharacters",
			pattern: `a.b*`,
			mode:    config.ModeFixed,
			matches: []string{"xa.b*y"},
			misses:  []string{"axbb", "a.bb"},
		},
		{
			name:       "fixed string ignore case",
			pattern:    `Manifest`,
			mode:       config.ModeFixed,
			ignoreCase: true,
			matches:    []string{"META-INF/MANIFEST.MF"},
			misses:     []string{"META-INF/INDEX.LIST"},
		},
		{
			name:    "perl lookahead",
			pattern: `^(?!META-INF/).*\.class$`,
			mode:    config.ModePerl,
			matches: []string{"com/acme/App.class"},
			misses:  []string{"META-INF/versions/9/module-info.class"},
		},
		{
			name:    "perl digit class",
			pattern: `v\d+/`,
			mode:    config.ModePerl,
			matches: []string{"api/v12/Thing.class"},
			misses:  []string{"api/vx/Thing.class"},
		},
		{
			name:       "perl ignore case",
			pattern:    `service$`,
			mode:       config.ModePerl,
			ignoreCase: true,
			matches:    []string{"META-INF/SERVICE"},
			misses:     []string{"META-INF/services/x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.pattern, tt.mode, tt.ignoreCase)
			require.NoError(t, err)

			for _, name := range tt.matches {
				assert.True(t, m.Match(name), "expected %q to match %q", tt.pattern, name)
			}
			for _, name := range tt.misses {
				assert.False(t, m.Match(name), "expected %q not to match %q", tt.pattern, name)
			}
		})
	}
}

func TestNew_InvalidPatterns(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		mode    config.RegexMode
	}{
		{name: "extended unbalanced group", pattern: `(abc`, mode: config.ModeExtended},
		{name: "basic trailing backslash", pattern: `abc\`, mode: config.ModeBasic},
		{name: "basic back-reference", pattern: `\(a\)\1`, mode: config.ModeBasic},
		{name: "basic unterminated bracket", pattern: `[abc`, mode: config.ModeBasic},
		{name: "perl unbalanced group", pattern: `(?<=a`, mode: config.ModePerl},
		{name: "unknown mode", pattern: `a`, mode: config.RegexMode("glob")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.pattern, tt.mode, false)
			assert.Error(t, err)
		})
	}
}

func TestFindAllIndex(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		mode    config.RegexMode
		input   string
		want    [][]int
	}{
		{
			name:    "extended multiple matches",
			pattern: `ab`,
			mode:    config.ModeExtended,
			input:   "xabyab",
			want:    [][]int{{1, 3}, {4, 6}},
		},
		{
			name:    "extended leftmost longest",
			pattern: `a|ab`,
			mode:    config.ModeExtended,
			input:   "ab",
			want:    [][]int{{0, 2}},
		},
		{
			name:    "empty matches are dropped",
			pattern: `x*`,
			mode:    config.ModeExtended,
			input:   "abc",
			want:    nil,
		},
		{
			name:    "fixed string",
			pattern: `.class`,
			mode:    config.ModeFixed,
			input:   "A.class",
			want:    [][]int{{1, 7}},
		},
		{
			name:    "perl offsets are bytes",
			pattern: `é+`,
			mode:    config.ModePerl,
			input:   "caféé/x",
			want:    [][]int{{3, 7}},
		},
		{
			name:    "perl offsets skip invalid utf-8",
			pattern: `log4j`,
			mode:    config.ModePerl,
			input:   "a\xff\xfe/log4j",
			want:    [][]int{{4, 9}},
		},
		{
			name:    "perl multiple matches",
			pattern: `\d`,
			mode:    config.ModePerl,
			input:   "a1b2",
			want:    [][]int{{1, 2}, {3, 4}},
		},
		{
			name:    "no match",
			pattern: `zzz`,
			mode:    config.ModePerl,
			input:   "abc",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.pattern, tt.mode, false)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.FindAllIndex(tt.input))
		})
	}
}

func TestTranslateExtended(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: `\<Foo\>`, want: `\bFoo\b`},
		{in: `\\<`, want: `\\<`},
		{in: `*a`, want: `\*a`},
		{in: `^*a`, want: `^\*a`},
		{in: `a*`, want: `a*`},
		{in: `(*a|*b)`, want: `(\*a|\*b)`},
		{in: `[*<]*`, want: `[*<]*`},
		{in: `[]\<]`, want: `[]\<]`},
		{in: `[[:alpha:]]\<`, want: `[[:alpha:]]\b`},
		{in: `[abc`, want: `[abc`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, translateExtended(tt.in))
		})
	}
}
