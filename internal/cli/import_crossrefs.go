// Package cli implements the command-line commands that run outside
// the HTTP server.
package cli

import (
	"flag"
	"fmt"

	"github.com/rstne/scriptura/internal/config"
	"github.com/rstne/scriptura/internal/database"
	"github.com/rstne/scriptura/internal/database/crossrefs"
	"github.com/rstne/scriptura/internal/tasks"
)

// ImportCrossRefsCommand bulk-loads a cross-reference data file
// directly, without going through the task queue.
type ImportCrossRefsCommand struct {
	flags  *flag.FlagSet
	dbPath string
	file   string
}

func NewImportCrossRefsCommand() *ImportCrossRefsCommand {
	cmd := &ImportCrossRefsCommand{
		flags: flag.NewFlagSet("crossrefs-import", flag.ContinueOnError),
	}
	cmd.flags.StringVar(&cmd.dbPath, "db", config.DefaultDatabasePath, "path to the database file")
	cmd.flags.StringVar(&cmd.file, "file", "", "path to the tab-separated cross-reference file (required)")
	return cmd
}

func (c *ImportCrossRefsCommand) ParseFlags(args []string) error {
	if err := c.flags.Parse(args); err != nil {
		return err
	}
	if c.file == "" {
		return fmt.Errorf("-file is required")
	}
	return nil
}

func (c *ImportCrossRefsCommand) Run() error {
	db, err := database.NewDatabase(c.dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	refs, skipped, err := tasks.ParseCrossReferenceFile(c.file)
	if err != nil {
		return fmt.Errorf("parse %s: %w", c.file, err)
	}

	inserted, err := crossrefs.NewRepository(db.DB).BulkInsert(refs)
	if err != nil {
		return fmt.Errorf("insert cross-references: %w", err)
	}

	fmt.Printf("Imported %d cross-references from %s (%d lines skipped)\n", inserted, c.file, skipped)
	return nil
}
