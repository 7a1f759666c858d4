package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoArchives is returned when no file with a configured extension is found
var ErrNoArchives = errors.New("no archive found")

// NoArchivesError names the extensions and directories of an empty scan.
// It matches ErrNoArchives with errors.Is.
type NoArchivesError struct {
	Extensions []string
	Dirs       []string
}

func (e *NoArchivesError) Error() string {
	return fmt.Sprintf("no %s file found under: %s", strings.Join(e.Extensions, "/"), strings.Join(e.Dirs, ", "))
}

func (e *NoArchivesError) Is(target error) bool {
	return target == ErrNoArchives
}

// ScanOptions configures the archive scan
type ScanOptions struct {
	// Extensions is a list of archive extensions to include (e.g., "jar", ".zip").
	// Matching is a case-insensitive suffix match on the file name.
	Extensions []string
}

// ScanResult contains the results of an archive scan
type ScanResult struct {
	// Files contains the archive paths in walk order, each prefixed by the
	// directory it was found under
	Files []string
	// Errors contains any errors encountered during scanning
	Errors []error
}

// FindArchives walks each directory in order and collects regular files whose name
// ends with one of the configured extensions.
// Returns ErrNoArchives (wrapped) when nothing was found.
func FindArchives(dirs []string, opts ScanOptions) (*ScanResult, error) {
	suffixes := extensionSuffixes(opts.Extensions)
	if len(suffixes) == 0 {
		return nil, fmt.Errorf("no extensions configured")
	}

	result := &ScanResult{
		Files:  make([]string, 0),
		Errors: make([]error, 0),
	}

	for _, dir := range dirs {
		if err := scanDirectory(dir, suffixes, result); err != nil {
			return nil, err
		}
	}

	if len(result.Files) == 0 {
		return result, &NoArchivesError{Extensions: opts.Extensions, Dirs: dirs}
	}

	return result, nil
}

// scanDirectory appends the archives found under dir to result.
// A symlinked dir is followed, like find -H, and paths keep dir as given.
func scanDirectory(dir string, suffixes []string, result *ScanResult) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("failed to access directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", dir)
	}

	root, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return fmt.Errorf("failed to resolve directory %s: %w", dir, err)
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("error accessing %s: %w", underDir(dir, root, path), err))
			return nil // Continue walking
		}

		// Symlinks, devices and directories are never archives
		if !d.Type().IsRegular() {
			return nil
		}

		if !hasArchiveSuffix(d.Name(), suffixes) {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("failed to resolve path %s: %w", path, err))
			return nil
		}

		result.Files = append(result.Files, joinUnder(dir, rel))
		return nil
	})

	if err != nil {
		return fmt.Errorf("failed to walk directory: %w", err)
	}
	return nil
}

// extensionSuffixes turns extensions into lower-case ".ext" suffixes
func extensionSuffixes(extensions []string) []string {
	suffixes := make([]string, 0, len(extensions))
	seen := make(map[string]bool)
	for _, ext := range extensions {
		ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
		if ext == "" {
			continue
		}
		suffix := "." + strings.ToLower(ext)
		if seen[suffix] {
			continue
		}
		seen[suffix] = true
		suffixes = append(suffixes, suffix)
	}
	return suffixes
}

// hasArchiveSuffix reports whether name ends with one of suffixes, ignoring case
func hasArchiveSuffix(name string, suffixes []string) bool {
	lower := strings.ToLower(name)
	for _, suffix := range suffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}

// joinUnder prefixes rel with dir exactly as given, the way find(1) prints paths:
// "." and "a.jar" give "./a.jar", "lib/" and "a.jar" give "lib/a.jar".
func joinUnder(dir, rel string) string {
	if strings.HasSuffix(dir, string(filepath.Separator)) || strings.HasSuffix(dir, "/") {
		return dir + rel
	}
	return dir + string(filepath.Separator) + rel
}

// underDir rewrites path, found below the resolved root, as a path below dir
func underDir(dir, root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	if rel == "." {
		return dir
	}
	return joinUnder(dir, rel)
}
