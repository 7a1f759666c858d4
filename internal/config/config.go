package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// RegexMode selects the pattern dialect used to match entry names
type RegexMode string

const (
	// ModeExtended is POSIX extended regular expression syntax (grep -E)
	ModeExtended RegexMode = "extended"
	// ModeBasic is POSIX basic regular expression syntax (grep -G)
	ModeBasic RegexMode = "basic"
	// ModeFixed matches the pattern as a literal string (grep -F)
	ModeFixed RegexMode = "fixed"
	// ModePerl is Perl-compatible regular expression syntax (grep -P)
	ModePerl RegexMode = "perl"
)

// Lister names accepted by Config.Lister
const (
	ListerAuto    = "auto"
	ListerZipinfo = "zipinfo"
	ListerUnzip   = "unzip"
	ListerJar     = "jar"
	ListerBuiltin = "builtin"
)

// Config represents find-in-jars options for one run.
// A Config is built once from the command line and treated as read-only afterwards;
// ValidateDirectories returns a modified copy instead of changing the receiver.
type Config struct {
	// Dirs are the directories searched for archives
	Dirs []string

	// Extensions are archive file extensions without the leading dot
	Extensions []string

	// Mode is the regex dialect of Pattern
	Mode RegexMode

	// IgnoreCase enables case-insensitive matching of entry names
	IgnoreCase bool

	// Separator is printed between the archive path and the entry name
	Separator string

	// AbsolutePath prints archive paths in canonical absolute form
	AbsolutePath bool

	// Pattern is the user pattern matched against entry names
	Pattern string

	// Lister selects the entry listing capability (auto, zipinfo, unzip, jar, builtin)
	Lister string

	// LogLevel sets the diagnostic log verbosity (trace, debug, info, warn, error)
	LogLevel string
}

// DefaultConfig returns a Config with the command line defaults
func DefaultConfig() *Config {
	return &Config{
		Dirs:         []string{"."},
		Extensions:   []string{"jar"},
		Mode:         ModeExtended,
		IgnoreCase:   false,
		Separator:    "!",
		AbsolutePath: false,
		Lister:       ListerAuto,
		LogLevel:     "warn",
	}
}

// Clone returns a deep copy of the configuration
func (c *Config) Clone() *Config {
	clone := *c
	clone.Dirs = append([]string(nil), c.Dirs...)
	clone.Extensions = append([]string(nil), c.Extensions...)
	return &clone
}

// NormalizeExtension strips surrounding whitespace and a leading dot from ext
func NormalizeExtension(ext string) string {
	return strings.TrimPrefix(strings.TrimSpace(ext), ".")
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	if len(c.Dirs) == 0 {
		return fmt.Errorf("at least one directory is required")
	}
	for _, dir := range c.Dirs {
		if dir == "" {
			return fmt.Errorf("directory must not be empty")
		}
	}

	if len(c.Extensions) == 0 {
		return fmt.Errorf("at least one extension is required")
	}
	for _, ext := range c.Extensions {
		if NormalizeExtension(ext) == "" {
			return fmt.Errorf("extension must not be empty")
		}
	}

	switch c.Mode {
	case ModeExtended, ModeBasic, ModeFixed, ModePerl:
	default:
		return fmt.Errorf("invalid regex mode %q, must be one of: extended, basic, fixed, perl", c.Mode)
	}

	switch c.Lister {
	case ListerAuto, ListerZipinfo, ListerUnzip, ListerJar, ListerBuiltin:
	default:
		return fmt.Errorf("invalid lister %q, must be one of: auto, zipinfo, unzip, jar, builtin", c.Lister)
	}

	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	return nil
}

// ValidateDirectories checks that every configured directory exists, is a directory
// and is readable. When AbsolutePath is set, the returned Config holds the canonical
// absolute form of each directory. The receiver is never modified.
func (c *Config) ValidateDirectories() (*Config, error) {
	resolved := c.Clone()

	for i, dir := range c.Dirs {
		if err := checkDirectory(dir); err != nil {
			return nil, err
		}

		if !c.AbsolutePath {
			continue
		}

		abs, err := canonicalPath(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve absolute path of %s: %w", dir, err)
		}
		resolved.Dirs[i] = abs
	}

	return resolved, nil
}

// checkDirectory reports why dir cannot be searched, or nil
func checkDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("directory %s does not exist", dir)
		}
		return fmt.Errorf("failed to access directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s exists but is not a directory", dir)
	}

	f, err := os.Open(dir)
	if err != nil {
		return fmt.Errorf("directory %s is not readable: %w", dir, err)
	}
	defer f.Close()

	if _, err := f.Readdirnames(1); err != nil && err != io.EOF {
		return fmt.Errorf("directory %s is not readable: %w", dir, err)
	}

	return nil
}

// canonicalPath returns the absolute, symlink-free form of path
func canonicalPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
