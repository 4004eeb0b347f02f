package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"refsync/internal/config"
	"refsync/internal/exitcode"
	"refsync/internal/output"
	"refsync/internal/source"
	"refsync/internal/workspace"
)

func init() {
	Register(&TasksCmd{})
}

// TasksCmd implements the tasks command. With no arguments it lists the
// open tasks of the Reflections project.
type TasksCmd struct{}

func (c *TasksCmd) Name() string      { return "tasks" }
func (c *TasksCmd) Aliases() []string { return nil }
func (c *TasksCmd) Synopsis() string  { return "Print open tasks of a project" }
func (c *TasksCmd) Usage() string     { return "refsync tasks [common flags] [project-name]" }
func (c *TasksCmd) NeedsAuth() bool   { return true }

func (c *TasksCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *TasksCmd) Run(ctx context.Context, cfg *config.Config, src source.Service, ws workspace.Service, args []string, out, errOut io.Writer) int {
	name := "Reflections"
	if len(args) > 0 {
		name = strings.Join(args, " ")
	}

	project, err := src.ResolveProject(ctx, name)
	if err != nil {
		if errors.Is(err, source.ErrNotFound) {
			fmt.Fprintf(errOut, "error: project not found: %s\n", name)
			return exitcode.UserError
		}
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	tasks, err := src.ListOpenTasks(ctx, project.ID)
	if err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	for i, t := range tasks {
		output.FormatTask(out, i+1, t)
	}

	if len(tasks) == 0 && !cfg.Quiet {
		fmt.Fprintln(out, "no open tasks")
	}

	return exitcode.Success
}
