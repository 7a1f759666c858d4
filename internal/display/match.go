package display

import (
	"io"
	"strings"

	"github.com/fatih/color"
)

// MatchPrinter writes one "<archive><separator><entry>" line per match
type MatchPrinter struct {
	writer    io.Writer
	separator string
	colored   bool

	archiveColor   *color.Color
	separatorColor *color.Color
	matchColor     *color.Color
}

// NewMatchPrinter creates a MatchPrinter. When colored is true the archive path
// is magenta, the separator cyan and every matched part of the entry bold red,
// the palette grep uses for file names, separators and matches.
func NewMatchPrinter(w io.Writer, separator string, colored bool) *MatchPrinter {
	p := &MatchPrinter{
		writer:         w,
		separator:      separator,
		colored:        colored,
		archiveColor:   color.New(color.FgMagenta),
		separatorColor: color.New(color.FgCyan),
		matchColor:     color.New(color.Bold, color.FgRed),
	}
	if colored {
		// The terminal decision was made for this writer by the caller
		p.archiveColor.EnableColor()
		p.separatorColor.EnableColor()
		p.matchColor.EnableColor()
	}
	return p
}

// Highlights reports whether Print uses match spans
func (p *MatchPrinter) Highlights() bool {
	return p.colored
}

// Print writes a match line. spans holds the byte offsets of the matched parts
// of entry and is ignored for plain output.
func (p *MatchPrinter) Print(archive, entry string, spans [][]int) error {
	var b strings.Builder

	if p.colored {
		b.WriteString(p.archiveColor.Sprint(archive))
		b.WriteString(p.separatorColor.Sprint(p.separator))
		b.WriteString(p.highlight(entry, spans))
	} else {
		b.WriteString(archive)
		b.WriteString(p.separator)
		b.WriteString(entry)
	}
	b.WriteString("\n")

	_, err := io.WriteString(p.writer, b.String())
	return err
}

// highlight colors the spans of entry, skipping malformed or overlapping spans
func (p *MatchPrinter) highlight(entry string, spans [][]int) string {
	var b strings.Builder
	pos := 0
	for _, span := range spans {
		if len(span) != 2 {
			continue
		}
		start, end := span[0], span[1]
		if start < pos || end <= start || end > len(entry) {
			continue
		}
		b.WriteString(entry[pos:start])
		b.WriteString(p.matchColor.Sprint(entry[start:end]))
		pos = end
	}
	b.WriteString(entry[pos:])
	return b.String()
}
