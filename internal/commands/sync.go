package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"refsync/internal/config"
	"refsync/internal/exitcode"
	"refsync/internal/source"
	"refsync/internal/weeklabel"
	"refsync/internal/workspace"
)

// FallbackJournalPageID is the known-good Journal page used when search
// cannot find the page. Search indexing lags behind page creation, so a
// missing search result does not mean the page is gone.
const FallbackJournalPageID = "22a44c06-f763-809c-8fa7-cf92cb21f61e"

func init() {
	Register(&SyncCmd{})
}

// SyncCmd implements the sync command: fetch the open tasks of the source
// project and write them as a new child page under the journal page,
// titled for the current week. Each run creates a fresh page; runs are
// deliberately not deduplicated.
type SyncCmd struct {
	project  string
	journal  string
	fallback string

	now func() time.Time
}

// SetNow overrides the clock (for testing).
func (c *SyncCmd) SetNow(now func() time.Time) {
	c.now = now
}

func (c *SyncCmd) Name() string      { return "sync" }
func (c *SyncCmd) Aliases() []string { return nil }
func (c *SyncCmd) Synopsis() string  { return "Sync reflection tasks to the journal" }
func (c *SyncCmd) Usage() string {
	return "refsync sync [common flags] [--project <name>] [--journal <name>] [--fallback <page-id>]"
}
func (c *SyncCmd) NeedsAuth() bool { return true }

func (c *SyncCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.project, "project", "Reflections", "")
	fs.StringVar(&c.journal, "journal", "Journal", "")
	fs.StringVar(&c.fallback, "fallback", FallbackJournalPageID, "")
}

func (c *SyncCmd) Run(ctx context.Context, cfg *config.Config, src source.Service, ws workspace.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintln(errOut, "error: sync takes no arguments")
		return exitcode.UserError
	}

	// Resolve the source project. Not found is fatal; there is nothing
	// sensible to sync.
	project, err := src.ResolveProject(ctx, c.project)
	if err != nil {
		if errors.Is(err, source.ErrNotFound) {
			fmt.Fprintf(errOut, "error: project not found: %s\n", c.project)
			return exitcode.UserError
		}
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}
	if !cfg.Quiet {
		fmt.Fprintf(out, "Found %s project with ID: %s\n", project.Name, project.ID)
	}

	tasks, err := src.ListOpenTasks(ctx, project.ID)
	if err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}
	if !cfg.Quiet {
		fmt.Fprintf(out, "Found %d tasks in %s project\n", len(tasks), project.Name)
	}

	// Locating the journal is best effort: any search failure falls back
	// to the known-good page ID instead of aborting the run.
	journalID, err := ws.FindPageByTitle(ctx, c.journal)
	switch {
	case err == nil:
		if !cfg.Quiet {
			fmt.Fprintf(out, "Found %s page\n", c.journal)
		}
	case errors.Is(err, workspace.ErrNotFound):
		if !cfg.Quiet {
			fmt.Fprintf(out, "%s page not found, using fallback page\n", c.journal)
		}
		journalID = c.fallback
	default:
		if !cfg.Quiet {
			fmt.Fprintf(out, "Error finding %s page: %v, using fallback page\n", c.journal, err)
		}
		journalID = c.fallback
	}

	if cfg.Debug {
		fmt.Fprintf(errOut, "debug: journal page id: %s\n", journalID)
	}

	// The retrieve is authoritative: if the page cannot be fetched the
	// create below would fail anyway, so abort here with a clear message.
	if err := ws.VerifyAccess(ctx, journalID); err != nil {
		fmt.Fprintf(errOut, "error: cannot access %s page: %v\n", c.journal, err)
		return exitcode.BackendError
	}

	now := time.Now()
	if c.now != nil {
		now = c.now()
	}
	title := fmt.Sprintf("%s %s", c.project, weeklabel.Title(now))
	if !cfg.Quiet {
		fmt.Fprintf(out, "Creating page with title: %s\n", title)
	}

	contents := make([]string, 0, len(tasks))
	for _, t := range tasks {
		contents = append(contents, t.Content)
	}
	blocks := workspace.ComposeTaskBlocks(contents)

	// Page creation is best effort too: a failure is reported but the run
	// still exits zero. Nothing was written, so there is nothing to undo.
	pageID, err := ws.CreateChildPage(ctx, journalID, title, blocks)
	if err != nil {
		fmt.Fprintf(errOut, "error creating page: %v\n", err)
		return exitcode.Success
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "Successfully created page with ID: %s\n", pageID)
		fmt.Fprintf(out, "Page contains %d reflection tasks\n", len(tasks))
	}
	return exitcode.Success
}
