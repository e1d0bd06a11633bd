package tasks

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mikestefanello/backlite"

	"github.com/rstne/scriptura/internal/database/crossrefs"
	"github.com/rstne/scriptura/internal/entities"
)

// CrossRefLoader persists parsed cross-reference rows.
type CrossRefLoader interface {
	BulkInsert(refs []entities.CrossReference) (int64, error)
}

// ImportCrossReferencesTask bulk-loads a tab-separated cross-reference
// data file (from verse, to verse, votes per line, coordinates in
// "Book.Chapter.Verse" form).
type ImportCrossReferencesTask struct {
	Path string `json:"path"`
}

// Config returns the queue configuration for import tasks.
func (t ImportCrossReferencesTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "import_cross_references",
		MaxAttempts: 1,
		Backoff:     time.Minute,
		Timeout:     10 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   72 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// ImportCrossReferencesProcessor creates a processor function for
// ImportCrossReferencesTask.
func ImportCrossReferencesProcessor(loader CrossRefLoader) backlite.QueueProcessor[ImportCrossReferencesTask] {
	return func(ctx context.Context, task ImportCrossReferencesTask) error {
		if loader == nil {
			return fmt.Errorf("cross-reference loader not configured")
		}

		refs, skipped, err := ParseCrossReferenceFile(task.Path)
		if err != nil {
			return fmt.Errorf("parse cross-reference file: %w", err)
		}

		inserted, err := loader.BulkInsert(refs)
		if err != nil {
			return fmt.Errorf("insert cross-references: %w", err)
		}

		log.Printf("[TASK] Imported %d cross-references from %s (%d lines skipped)", inserted, task.Path, skipped)
		return nil
	}
}

// NewImportCrossReferencesQueue creates a backlite queue for
// cross-reference import tasks.
func NewImportCrossReferencesQueue(loader CrossRefLoader) backlite.Queue {
	return backlite.NewQueue(ImportCrossReferencesProcessor(loader))
}

// ParseCrossReferenceFile reads a tab-separated cross-reference file
// and returns the parsed rows plus the count of skipped lines. Header
// lines, blank lines, and malformed rows are skipped, never fatal.
func ParseCrossReferenceFile(path string) ([]entities.CrossReference, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	var refs []entities.CrossReference
	skipped := 0

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			skipped++
			continue
		}

		from, err := crossrefs.ParseCoordinate(fields[0])
		if err != nil {
			skipped++
			continue
		}
		to, err := crossrefs.ParseCoordinate(fields[1])
		if err != nil {
			skipped++
			continue
		}

		votes := 0
		if len(fields) >= 3 {
			votes, err = strconv.Atoi(strings.TrimSpace(fields[2]))
			if err != nil {
				skipped++
				continue
			}
		}

		refs = append(refs, entities.CrossReference{
			FromBook:    from.Book,
			FromChapter: from.Chapter,
			FromVerse:   from.Verse,
			ToBook:      to.Book,
			ToChapter:   to.Chapter,
			ToVerse:     to.Verse,
			Votes:       votes,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, skipped, err
	}

	return refs, skipped, nil
}
