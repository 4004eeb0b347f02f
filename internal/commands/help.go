package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"refsync/internal/config"
	"refsync/internal/exitcode"
	"refsync/internal/source"
	"refsync/internal/workspace"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "refsync help" }
func (c *HelpCmd) NeedsAuth() bool   { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, src source.Service, ws workspace.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  refsync                                        Sync reflection tasks to the journal
  refsync sync [common flags] [--project <name>] [--journal <name>] [--fallback <page-id>]
  refsync projects [common flags]
  refsync tasks [common flags] [project-name]
  refsync help
  refsync version

Common flags:
  --env <file>     Load environment variables from a file
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr

Environment:
  TODOIST_TOKEN    Todoist API token (required)
  NOTION_TOKEN     Notion integration token (required)
`
