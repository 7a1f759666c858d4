// Package finder runs the per-archive search loop: list the entries of each
// archive, keep the ones the pattern matches and print them.
//
// Archives are processed one at a time in the order given. An archive whose
// entries cannot be listed is skipped with a warning; the run goes on. A listing
// that comes with a tool warning is logged and searched as usual.
package finder

import (
	"context"
	"errors"
	"fmt"

	"github.com/harrison/find-in-jars/internal/lister"
)

// EntryLister lists the entry names of an archive
type EntryLister interface {
	Name() string
	ListEntries(ctx context.Context, path string) ([]string, error)
}

// EntryMatcher decides which entry names are printed
type EntryMatcher interface {
	Match(name string) bool
	FindAllIndex(name string) [][]int
}

// StatusReporter shows the archive being searched
type StatusReporter interface {
	Progress(current, total int, archive string)
	Clear()
}

// MatchPrinter writes match lines
type MatchPrinter interface {
	Print(archive, entry string, spans [][]int) error
	Highlights() bool
}

// Logger receives diagnostics
type Logger interface {
	LogTrace(message string)
	LogDebug(message string)
	LogWarn(message string)
}

// Stats summarizes a run
type Stats struct {
	// Searched counts archives whose entries were listed
	Searched int
	// Skipped counts archives that could not be listed
	Skipped int
	// Matches counts printed match lines
	Matches int
}

// Finder searches archives for matching entry names
type Finder struct {
	lister  EntryLister
	matcher EntryMatcher
	status  StatusReporter
	printer MatchPrinter
	logger  Logger
}

// New creates a Finder from its collaborators
func New(lister EntryLister, matcher EntryMatcher, status StatusReporter, printer MatchPrinter, logger Logger) *Finder {
	return &Finder{
		lister:  lister,
		matcher: matcher,
		status:  status,
		printer: printer,
		logger:  logger,
	}
}

// Run searches every archive in order.
// It stops early only when ctx is cancelled or a match line cannot be written.
func (f *Finder) Run(ctx context.Context, archives []string) (Stats, error) {
	var stats Stats
	total := len(archives)

	for i, archive := range archives {
		if err := ctx.Err(); err != nil {
			f.status.Clear()
			return stats, err
		}

		f.status.Progress(i+1, total, archive)

		entries, err := f.lister.ListEntries(ctx, archive)
		var warning *lister.ListWarning
		if errors.As(err, &warning) {
			f.status.Clear()
			f.logger.LogWarn(fmt.Sprintf("%s: %v", archive, err))
			err = nil
		}
		if err != nil {
			f.status.Clear()
			if ctxErr := ctx.Err(); ctxErr != nil {
				return stats, ctxErr
			}
			stats.Skipped++
			f.logger.LogWarn(fmt.Sprintf("skipping %s: %v", archive, err))
			continue
		}
		stats.Searched++
		f.logger.LogTrace(fmt.Sprintf("%s: %d entries listed by %s", archive, len(entries), f.lister.Name()))

		for _, entry := range entries {
			if !f.matcher.Match(entry) {
				continue
			}

			var spans [][]int
			if f.printer.Highlights() {
				spans = f.matcher.FindAllIndex(entry)
			}

			f.status.Clear()
			if err := f.printer.Print(archive, entry, spans); err != nil {
				return stats, fmt.Errorf("failed to write match: %w", err)
			}
			stats.Matches++
		}

		f.status.Clear()
	}

	f.logger.LogDebug(fmt.Sprintf("searched %d archives, skipped %d, found %d matching entries",
		stats.Searched, stats.Skipped, stats.Matches))

	return stats, nil
}
