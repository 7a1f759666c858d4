package display

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// IsTerminal reports whether w is a terminal device
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ColorEnabled reports whether colored output should be written to w.
// Colors need a terminal and are disabled by NO_COLOR or TERM=dumb.
func ColorEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	return IsTerminal(w)
}

// TerminalWidth returns a function reporting the column count of w's terminal,
// falling back to DefaultWidth. The width is re-read on every call so resizing
// the window takes effect on the next progress line.
func TerminalWidth(w io.Writer) func() int {
	return func() int {
		f, ok := w.(*os.File)
		if !ok || f == nil {
			return DefaultWidth
		}
		width, _, err := term.GetSize(int(f.Fd()))
		if err != nil || width <= 0 {
			return DefaultWidth
		}
		return width
	}
}

// NewStatusReporter picks the status implementation for a run: a responsive
// line on statusOut when both stdout and statusOut are terminals, otherwise
// nothing.
func NewStatusReporter(stdout, statusOut io.Writer) StatusReporter {
	if !IsTerminal(stdout) || !IsTerminal(statusOut) {
		return QuietStatus{}
	}
	return NewResponsiveStatus(statusOut, TerminalWidth(statusOut))
}
