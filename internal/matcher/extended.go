package matcher

import "strings"

// translateExtended adapts a POSIX extended regular expression for RE2.
// The GNU word anchors \< and \> become \b, and a '*' with nothing to repeat (at
// the start of the expression, a group or an alternative) is a literal, as in
// grep -E. Bracket expressions are copied unchanged.
func translateExtended(ere string) string {
	var b strings.Builder
	b.Grow(len(ere))

	// atStart is true where a '*' has nothing to repeat
	atStart := true

	for i := 0; i < len(ere); i++ {
		c := ere[i]

		switch c {
		case '\\':
			if i+1 >= len(ere) {
				// RE2 reports the trailing backslash
				b.WriteByte(c)
				break
			}
			i++
			switch ere[i] {
			case '<', '>':
				b.WriteString(`\b`)
			default:
				b.WriteByte('\\')
				b.WriteByte(ere[i])
			}

		case '[':
			end := bracketEnd(ere, i)
			if end < 0 {
				b.WriteString(ere[i:])
				return b.String()
			}
			b.WriteString(ere[i : end+1])
			i = end

		case '*':
			if atStart {
				b.WriteString(`\*`)
			} else {
				b.WriteByte('*')
			}

		case '(', '|':
			b.WriteByte(c)
			atStart = true
			continue

		case '^':
			b.WriteByte(c)
			if atStart {
				continue
			}

		default:
			b.WriteByte(c)
		}

		atStart = false
	}

	return b.String()
}

// bracketEnd returns the index of the ']' closing the bracket expression that
// opens at start, parsed the way RE2 parses it, or -1 when it is unterminated
func bracketEnd(s string, start int) int {
	i := start + 1
	if i < len(s) && s[i] == '^' {
		i++
	}
	// A ']' right after '[' or '[^' is a member
	if i < len(s) && s[i] == ']' {
		i++
	}

	for ; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '[':
			if i+1 < len(s) && s[i+1] == ':' {
				if end := strings.Index(s[i+2:], ":]"); end >= 0 {
					i += end + 3
				}
			}
		case ']':
			return i
		}
	}
	return -1
}
