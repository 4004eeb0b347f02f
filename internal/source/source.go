// Package source defines the backend-agnostic interface for the task source.
package source

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a project lookup has no match.
var ErrNotFound = errors.New("project not found")

// Service defines the interface for task-source operations.
// All Todoist API calls go through this interface.
// Commands never import the HTTP client directly.
type Service interface {
	// ListProjects returns all projects in API order.
	ListProjects(ctx context.Context) ([]Project, error)

	// ResolveProject finds a project by name (exact, case-sensitive).
	// Returns ErrNotFound if no project matches.
	ResolveProject(ctx context.Context, name string) (Project, error)

	// ListOpenTasks returns the open tasks of a project in API order,
	// fetched in a single call (no pagination, no client-side sorting).
	ListOpenTasks(ctx context.Context, projectID string) ([]Task, error)
}
