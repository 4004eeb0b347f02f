// Package source defines the backend-agnostic interface for the task source.
package source

// Project is a named container for tasks in the tracking service.
type Project struct {
	ID   string
	Name string
}

// Task is a single open task.
type Task struct {
	ID      string
	Content string
}
