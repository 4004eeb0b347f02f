package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"refsync/internal/config"
	"refsync/internal/exitcode"
	"refsync/internal/output"
	"refsync/internal/source"
	"refsync/internal/workspace"
)

func init() {
	Register(&ProjectsCmd{})
}

// ProjectsCmd implements the projects command.
type ProjectsCmd struct{}

func (c *ProjectsCmd) Name() string      { return "projects" }
func (c *ProjectsCmd) Aliases() []string { return nil }
func (c *ProjectsCmd) Synopsis() string  { return "Print all source projects" }
func (c *ProjectsCmd) Usage() string     { return "refsync projects [common flags]" }
func (c *ProjectsCmd) NeedsAuth() bool   { return true }

func (c *ProjectsCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ProjectsCmd) Run(ctx context.Context, cfg *config.Config, src source.Service, ws workspace.Service, args []string, out, errOut io.Writer) int {
	projects, err := src.ListProjects(ctx)
	if err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	for _, p := range projects {
		output.FormatProject(out, p)
	}

	if len(projects) == 0 && !cfg.Quiet {
		fmt.Fprintln(out, "no projects found")
	}

	return exitcode.Success
}
