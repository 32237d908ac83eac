// Package importer bulk-ingests a directory of saved plan files, one
// file per training day. Files are named YYYY-MM-DD.txt (raw pasted
// text) or YYYY-MM-DD.b64 (base64, as captured from a share URL).
package importer

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/claude/planlog/internal/ingest/sheet"
	"github.com/claude/planlog/internal/storage"
)

// Stats tracks import progress.
type Stats struct {
	FilesProcessed int
	FilesSkipped   int
	FilesErrored   int

	LogsInserted int
	SetsInserted int64
}

// Importer reads plan files from a directory and inserts rendered logs
// into the database.
type Importer struct {
	db     *storage.DB
	sheet  *sheet.Provider
	log    *slog.Logger
	dryRun bool
	stats  Stats
}

// New creates a new Importer.
func New(db *storage.DB, log *slog.Logger, dryRun bool) *Importer {
	return &Importer{db: db, sheet: sheet.NewProvider(db, log), log: log, dryRun: dryRun}
}

// Import processes all plan files under the given directory, oldest
// date first. Files with unrecognized names are skipped; a file that
// fails to ingest is counted and logged but does not stop the run.
func (imp *Importer) Import(ctx context.Context, dir string, userID int) (*Stats, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return &imp.stats, fmt.Errorf("reading %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		date, encoded, err := ParsePlanFilename(name)
		if err != nil {
			imp.stats.FilesSkipped++
			imp.log.Warn("skipping file", "name", name, "reason", err)
			continue
		}

		payload, err := readPlanFile(filepath.Join(dir, name), encoded)
		if err != nil {
			imp.stats.FilesErrored++
			imp.log.Error("reading plan file failed", "name", name, "error", err)
			continue
		}

		if imp.dryRun {
			imp.stats.FilesProcessed++
			continue
		}

		result, err := imp.sheet.Ingest(ctx, payload, date, userID)
		if err != nil {
			imp.stats.FilesErrored++
			imp.log.Error("ingest failed", "name", name, "error", err)
			continue
		}

		imp.stats.FilesProcessed++
		imp.stats.LogsInserted++
		imp.stats.SetsInserted += result.SetsInserted
	}

	return &imp.stats, nil
}

// ParsePlanFilename extracts the log date from a plan filename and
// reports whether the file content is base64-encoded.
// "2026-03-14.txt" -> date, false; "2026-03-14.b64" -> date, true.
func ParsePlanFilename(name string) (time.Time, bool, error) {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)

	var encoded bool
	switch ext {
	case ".txt":
		encoded = false
	case ".b64":
		encoded = true
	default:
		return time.Time{}, false, fmt.Errorf("unrecognized extension %q", ext)
	}

	date, err := time.Parse("2006-01-02", base)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("filename %q is not YYYY-MM-DD: %w", name, err)
	}
	return date, encoded, nil
}

// readPlanFile returns the file content as the base64 payload the sheet
// provider expects, encoding raw text files on the way in.
func readPlanFile(path string, encoded bool) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if encoded {
		return strings.TrimSpace(string(data)), nil
	}
	return base64.StdEncoding.EncodeToString(data), nil
}
