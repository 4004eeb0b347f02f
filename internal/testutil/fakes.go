// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"fmt"
	"sync"

	"refsync/internal/source"
	"refsync/internal/workspace"
)

// FakeSource is an in-memory implementation of source.Service for testing.
type FakeSource struct {
	mu       sync.RWMutex
	projects []source.Project
	tasks    map[string][]source.Task

	// Error injection for testing
	ListProjectsErr  error
	ListOpenTasksErr map[string]error // projectID -> error

	// Calls counts every service call, for asserting no network activity.
	Calls int
}

// NewFakeSource creates an empty FakeSource.
func NewFakeSource() *FakeSource {
	return &FakeSource{
		tasks:            make(map[string][]source.Task),
		ListOpenTasksErr: make(map[string]error),
	}
}

// AddProject adds a project to the fake source.
func (f *FakeSource) AddProject(id, name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.projects = append(f.projects, source.Project{ID: id, Name: name})
	if f.tasks[id] == nil {
		f.tasks[id] = nil
	}
}

// AddTask adds an open task to a project.
func (f *FakeSource) AddTask(projectID, taskID, content string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks[projectID] = append(f.tasks[projectID], source.Task{ID: taskID, Content: content})
}

// ListProjects implements source.Service.
func (f *FakeSource) ListProjects(ctx context.Context) ([]source.Project, error) {
	f.mu.Lock()
	f.Calls++
	f.mu.Unlock()

	if f.ListProjectsErr != nil {
		return nil, f.ListProjectsErr
	}

	f.mu.RLock()
	defer f.mu.RUnlock()
	result := make([]source.Project, len(f.projects))
	copy(result, f.projects)
	return result, nil
}

// ResolveProject implements source.Service. Matching is exact and
// case-sensitive, like the real backend.
func (f *FakeSource) ResolveProject(ctx context.Context, name string) (source.Project, error) {
	projects, err := f.ListProjects(ctx)
	if err != nil {
		return source.Project{}, err
	}

	for _, p := range projects {
		if p.Name == name {
			return p, nil
		}
	}
	return source.Project{}, source.ErrNotFound
}

// ListOpenTasks implements source.Service.
func (f *FakeSource) ListOpenTasks(ctx context.Context, projectID string) ([]source.Task, error) {
	f.mu.Lock()
	f.Calls++
	f.mu.Unlock()

	if err := f.ListOpenTasksErr[projectID]; err != nil {
		return nil, err
	}

	f.mu.RLock()
	defer f.mu.RUnlock()
	tasks := f.tasks[projectID]
	result := make([]source.Task, len(tasks))
	copy(result, tasks)
	return result, nil
}

// CreatedPage records one CreateChildPage call.
type CreatedPage struct {
	ID       string
	ParentID string
	Title    string
	Blocks   []workspace.Block
}

// FakeWorkspace is an in-memory implementation of workspace.Service for testing.
type FakeWorkspace struct {
	mu    sync.RWMutex
	pages map[string]string // title -> page ID

	// Error injection for testing
	FindPageErr error
	VerifyErr   map[string]error // pageID -> error
	CreateErr   error

	// Created records every created page in order.
	Created []CreatedPage

	// Calls counts every service call, for asserting no network activity.
	Calls int
}

// NewFakeWorkspace creates an empty FakeWorkspace.
func NewFakeWorkspace() *FakeWorkspace {
	return &FakeWorkspace{
		pages:     make(map[string]string),
		VerifyErr: make(map[string]error),
	}
}

// AddPage registers a page discoverable by exact title.
func (f *FakeWorkspace) AddPage(title, id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pages[title] = id
}

// FindPageByTitle implements workspace.Service.
func (f *FakeWorkspace) FindPageByTitle(ctx context.Context, title string) (string, error) {
	f.mu.Lock()
	f.Calls++
	f.mu.Unlock()

	if f.FindPageErr != nil {
		return "", f.FindPageErr
	}

	f.mu.RLock()
	defer f.mu.RUnlock()
	if id, ok := f.pages[title]; ok {
		return id, nil
	}
	return "", workspace.ErrNotFound
}

// VerifyAccess implements workspace.Service.
func (f *FakeWorkspace) VerifyAccess(ctx context.Context, pageID string) error {
	f.mu.Lock()
	f.Calls++
	f.mu.Unlock()

	return f.VerifyErr[pageID]
}

// CreateChildPage implements workspace.Service. Created pages get
// sequential IDs: created-1, created-2, ...
func (f *FakeWorkspace) CreateChildPage(ctx context.Context, parentID, title string, blocks []workspace.Block) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls++

	if f.CreateErr != nil {
		return "", f.CreateErr
	}

	id := fmt.Sprintf("created-%d", len(f.Created)+1)
	copied := make([]workspace.Block, len(blocks))
	copy(copied, blocks)
	f.Created = append(f.Created, CreatedPage{
		ID:       id,
		ParentID: parentID,
		Title:    title,
		Blocks:   copied,
	})
	return id, nil
}
