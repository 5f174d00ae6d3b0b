package scanner

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/classver/classver/internal/config"
	"github.com/classver/classver/internal/parser"
	"github.com/classver/classver/internal/reflection"
)

// ProgressReporter receives scan lifecycle callbacks.
type ProgressReporter interface {
	OnDiscoveryStart()
	OnDiscoveryComplete(totalFiles int)
	OnFileProcessed(fileName string)
	OnComplete(stats *ScanStats)
}

// NoopProgressReporter discards all progress callbacks.
type NoopProgressReporter struct{}

func (NoopProgressReporter) OnDiscoveryStart()       {}
func (NoopProgressReporter) OnDiscoveryComplete(int) {}
func (NoopProgressReporter) OnFileProcessed(string)  {}
func (NoopProgressReporter) OnComplete(*ScanStats)   {}

// ScanStats summarizes one scan run.
type ScanStats struct {
	TotalFiles            int
	SkippedFiles          int
	TotalClasses          int
	TotalFields           int
	ProcessingTimeSeconds float64
}

// Scanner runs the extraction pipeline: discover source files, feed each
// file's declaration-visit events through the collector, and accumulate one
// database for the whole run.
type Scanner struct {
	rootDir  string
	cfg      *config.Config
	progress ProgressReporter
	verbose  bool
}

// New creates a scanner rooted at rootDir.
func New(rootDir string, cfg *config.Config, progress ProgressReporter) *Scanner {
	if progress == nil {
		progress = NoopProgressReporter{}
	}
	return &Scanner{
		rootDir:  rootDir,
		cfg:      cfg,
		progress: progress,
	}
}

// SetVerbose enables per-file log output for skipped files.
func (s *Scanner) SetVerbose(verbose bool) {
	s.verbose = verbose
}

// Scan runs one full pass and returns the accumulated database. Files are
// parsed strictly sequentially; the collector is the database's only writer
// and the caller reads it only after Scan returns. A file the front end
// cannot parse is skipped, the scan then covers whatever was accumulated.
func (s *Scanner) Scan(ctx context.Context) (*reflection.Database, *ScanStats, error) {
	startTime := time.Now()

	s.progress.OnDiscoveryStart()

	discovery, err := NewFileDiscovery(s.rootDir, s.cfg.Paths.Code, s.cfg.Paths.Ignore)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to compile discovery patterns: %w", err)
	}

	files, err := discovery.DiscoverFiles()
	if err != nil {
		return nil, nil, fmt.Errorf("file discovery failed: %w", err)
	}

	s.progress.OnDiscoveryComplete(len(files))

	db := reflection.NewDatabase()
	filter := reflection.NewFilter(s.cfg.Filter.Patterns)
	collector := reflection.NewCollector(db, filter)

	stats := &ScanStats{}

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		src := parser.SourceForFile(file)
		if src == nil {
			continue
		}

		if err := collector.CollectFrom(ctx, src); err != nil {
			// Unparseable units are the front end's concern: skip the file
			// and keep whatever was accumulated so far.
			stats.SkippedFiles++
			if s.verbose {
				log.Printf("Skipping %s: %v", file, err)
			}
			continue
		}

		stats.TotalFiles++
		s.progress.OnFileProcessed(file)
	}

	stats.TotalClasses = db.Len()
	for _, rec := range db.Classes {
		stats.TotalFields += len(rec.Fields)
	}
	stats.ProcessingTimeSeconds = time.Since(startTime).Seconds()

	s.progress.OnComplete(stats)

	return db, stats, nil
}
