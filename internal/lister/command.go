package lister

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// CommandLister lists entries by running an external tool and reading one entry
// name per output line
type CommandLister struct {
	name string
	path string
	args []string
	// warningStatus is the exit status the tool uses for "listed, with warnings";
	// zero when the tool has none
	warningStatus int
}

// ListWarning is returned together with a complete entry list when the tool
// listed the archive but reported a problem, such as a launch script prepended
// to an executable jar.
type ListWarning struct {
	Tool    string
	Message string
}

func (w *ListWarning) Error() string {
	return fmt.Sprintf("%s warning: %s", w.Tool, w.Message)
}

// NewZipinfoLister lists entries with `zipinfo -1`
func NewZipinfoLister(path string) *CommandLister {
	return &CommandLister{name: "zipinfo", path: path, args: []string{"-1"}, warningStatus: 1}
}

// NewUnzipLister lists entries with `unzip -Z1`
func NewUnzipLister(path string) *CommandLister {
	return &CommandLister{name: "unzip", path: path, args: []string{"-Z1"}, warningStatus: 1}
}

// NewJarLister lists entries with `jar tf`
func NewJarLister(path string) *CommandLister {
	return &CommandLister{name: "jar", path: path, args: []string{"tf"}}
}

// Name returns the capability name
func (c *CommandLister) Name() string {
	return c.name
}

// Path returns the resolved executable path
func (c *CommandLister) Path() string {
	return c.path
}

// ListEntries runs the tool on the archive and parses its output.
// When the tool exits with its warning status after listing entries, the entries
// are returned along with a *ListWarning.
func (c *CommandLister) ListEntries(ctx context.Context, path string) ([]string, error) {
	args := append(append([]string(nil), c.args...), path)
	cmd := exec.CommandContext(ctx, c.path, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			msg := firstLine(strings.TrimSpace(stderr.String()))
			if c.warningStatus != 0 && exitErr.ExitCode() == c.warningStatus {
				if entries := splitLines(out); len(entries) > 0 {
					if msg == "" {
						msg = exitErr.Error()
					}
					return entries, &ListWarning{Tool: c.name, Message: msg}
				}
			}
			if msg != "" {
				return nil, fmt.Errorf("%s failed: %s", c.name, msg)
			}
		}
		return nil, fmt.Errorf("%s failed: %w", c.name, err)
	}

	return splitLines(out), nil
}

// splitLines returns the non-empty lines of out without line terminators
func splitLines(out []byte) []string {
	lines := strings.Split(string(out), "\n")
	entries := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		entries = append(entries, line)
	}
	return entries
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}
