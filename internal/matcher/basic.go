package matcher

import (
	"errors"
	"regexp"
	"strings"
)

// TranslateBasic rewrites a POSIX basic regular expression, including the GNU
// extensions \+ \? \| \< \> \w \s \b, into RE2 syntax.
//
// In a BRE the grouping, interval and alternation operators are the escaped
// forms and their bare forms are literals. A '*' is literal at the start of the
// expression or of a group, '^' anchors only at those positions and '$' only at
// the end of the expression or of a group.
func TranslateBasic(bre string) (string, error) {
	runes := []rune(bre)
	var b strings.Builder

	// atStart is true where '*' is literal and '^' is an anchor
	atStart := true

	for i := 0; i < len(runes); i++ {
		c := runes[i]

		switch c {
		case '\\':
			if i+1 >= len(runes) {
				return "", errors.New("trailing backslash")
			}
			i++
			next := runes[i]
			switch next {
			case '(', '|':
				b.WriteRune(next)
				atStart = true
				continue
			case ')', '{', '}', '+', '?':
				b.WriteRune(next)
			case '<', '>':
				b.WriteString(`\b`)
			case 'w', 'W', 's', 'S', 'b', 'B':
				b.WriteRune('\\')
				b.WriteRune(next)
			case '1', '2', '3', '4', '5', '6', '7', '8', '9':
				return "", errors.New("back-references are not supported")
			default:
				b.WriteString(regexp.QuoteMeta(string(next)))
			}

		case '[':
			end, class, err := translateBracket(runes, i)
			if err != nil {
				return "", err
			}
			b.WriteString(class)
			i = end

		case '*':
			if atStart {
				b.WriteString(`\*`)
			} else {
				b.WriteRune('*')
			}

		case '^':
			if atStart {
				b.WriteRune('^')
				continue
			}
			b.WriteString(`\^`)

		case '$':
			if anchorsEnd(runes, i) {
				b.WriteRune('$')
			} else {
				b.WriteString(`\$`)
			}

		case '.':
			b.WriteRune('.')

		default:
			b.WriteString(regexp.QuoteMeta(string(c)))
		}

		atStart = false
	}

	return b.String(), nil
}

// anchorsEnd reports whether the '$' at i ends the expression or a group
func anchorsEnd(runes []rune, i int) bool {
	if i == len(runes)-1 {
		return true
	}
	return i+2 < len(runes) && runes[i+1] == '\\' && (runes[i+2] == ')' || runes[i+2] == '|')
}

// translateBracket converts the bracket expression starting at runes[start] and
// returns the index of its closing ']' along with the RE2 character class.
func translateBracket(runes []rune, start int) (int, string, error) {
	var b strings.Builder
	b.WriteRune('[')

	i := start + 1
	if i < len(runes) && runes[i] == '^' {
		b.WriteRune('^')
		i++
	}
	// A ']' right after '[' or '[^' is a literal member
	if i < len(runes) && runes[i] == ']' {
		b.WriteString(`\]`)
		i++
	}

	for ; i < len(runes); i++ {
		c := runes[i]
		switch c {
		case ']':
			b.WriteRune(']')
			return i, b.String(), nil
		case '[':
			if i+1 < len(runes) && runes[i+1] == ':' {
				end := -1
				for j := i + 2; j+1 < len(runes); j++ {
					if runes[j] == ':' && runes[j+1] == ']' {
						end = j + 1
						break
					}
				}
				if end < 0 {
					return 0, "", errors.New("unterminated character class")
				}
				b.WriteString(string(runes[i : end+1]))
				i = end
				continue
			}
			if i+1 < len(runes) && (runes[i+1] == '.' || runes[i+1] == '=') {
				return 0, "", errors.New("collating elements and equivalence classes are not supported")
			}
			b.WriteString(`\[`)
		case '\\':
			// Backslash is an ordinary member inside POSIX brackets
			b.WriteString(`\\`)
		default:
			b.WriteRune(c)
		}
	}

	return 0, "", errors.New("unterminated bracket expression")
}
