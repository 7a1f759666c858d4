package lister

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mholt/archives"
)

// BuiltinLister reads archive entries in-process without external tools
type BuiltinLister struct{}

// NewBuiltinLister creates a BuiltinLister
func NewBuiltinLister() *BuiltinLister {
	return &BuiltinLister{}
}

// Name returns the capability name
func (b *BuiltinLister) Name() string {
	return "builtin"
}

// ListEntries identifies the archive format and walks its entries.
// Files that cannot be identified are read as zip, since jar, war and ear
// archives are zip files under another name.
func (b *BuiltinLister) ListEntries(ctx context.Context, path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}
	defer file.Close()

	var extractor archives.Extractor = archives.Zip{}
	if format, _, err := archives.Identify(ctx, path, file); err == nil {
		if ex, ok := format.(archives.Extractor); ok {
			extractor = ex
		}
	}

	// Identify consumed the header; extract from the start of the file
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to rewind archive: %w", err)
	}

	var entries []string
	handler := func(ctx context.Context, f archives.FileInfo) error {
		entries = append(entries, f.NameInArchive)
		return nil
	}

	if err := extractor.Extract(ctx, file, handler); err != nil {
		return nil, fmt.Errorf("failed to read archive entries: %w", err)
	}

	return entries, nil
}
