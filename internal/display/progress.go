package display

import (
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"
)

// DefaultWidth is used when the terminal width cannot be determined
const DefaultWidth = 80

// clearLine returns the cursor to column 0 and erases the line
const clearLine = "\r\x1b[K"

// StatusReporter shows which archive is being searched
type StatusReporter interface {
	// Progress announces archive number current of total
	Progress(current, total int, archive string)
	// Clear erases whatever Progress displayed
	Clear()
}

// ResponsiveStatus keeps a single, self-erasing progress line on a terminal.
// Each message is truncated to the terminal width so it never wraps.
type ResponsiveStatus struct {
	writer io.Writer
	width  func() int
	shown  bool
}

// NewResponsiveStatus creates a ResponsiveStatus writing to w.
// width reports the current terminal width; nil means DefaultWidth.
func NewResponsiveStatus(w io.Writer, width func() int) *ResponsiveStatus {
	if width == nil {
		width = func() int { return DefaultWidth }
	}
	return &ResponsiveStatus{
		writer: w,
		width:  width,
	}
}

// Progress replaces the status line with: finding in archive (N/Total): path
func (s *ResponsiveStatus) Progress(current, total int, archive string) {
	msg := fmt.Sprintf("finding in archive (%d/%d): %s", current, total, archive)
	fmt.Fprint(s.writer, clearLine+s.truncate(msg))
	s.shown = true
}

// Clear erases the status line if one is displayed
func (s *ResponsiveStatus) Clear() {
	if !s.shown {
		return
	}
	fmt.Fprint(s.writer, clearLine)
	s.shown = false
}

// truncate shortens msg to one column less than the terminal width, leaving
// room for the cursor
func (s *ResponsiveStatus) truncate(msg string) string {
	width := s.width()
	if width <= 1 {
		width = DefaultWidth
	}
	return runewidth.Truncate(msg, width-1, "")
}

// QuietStatus discards progress; used when output is not a terminal
type QuietStatus struct{}

// Progress is a no-op implementation.
func (QuietStatus) Progress(current, total int, archive string) {}

// Clear is a no-op implementation.
func (QuietStatus) Clear() {}
