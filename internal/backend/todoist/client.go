// Package todoist implements the source.Service interface over the
// Todoist REST v2 API.
package todoist

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"refsync/internal/config"
	"refsync/internal/source"
)

const (
	// BaseURL is the Todoist REST v2 endpoint.
	BaseURL = "https://api.todoist.com/rest/v2"

	// APITimeout is the timeout for API calls.
	APITimeout = 10 * time.Second
)

// Client implements source.Service using the Todoist REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// New creates a new Todoist client authenticated with the configured token.
func New(ctx context.Context, cfg *config.Config) (*Client, error) {
	if cfg.TodoistToken == "" {
		return nil, fmt.Errorf("todoist token not configured")
	}

	tokenSource := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.TodoistToken})
	return &Client{
		httpClient: oauth2.NewClient(ctx, tokenSource),
		baseURL:    BaseURL,
	}, nil
}

// NewWithBaseURL creates a client against a custom endpoint (for testing).
func NewWithBaseURL(httpClient *http.Client, baseURL string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
	}
}

// project mirrors the GET /projects response shape.
type project struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// task mirrors the GET /tasks response shape.
type task struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

// ListProjects returns all projects in API order.
func (c *Client) ListProjects(ctx context.Context) ([]source.Project, error) {
	var projects []project
	if err := c.get(ctx, "/projects", nil, &projects); err != nil {
		return nil, err
	}

	result := make([]source.Project, 0, len(projects))
	for _, p := range projects {
		result = append(result, source.Project{ID: p.ID, Name: p.Name})
	}
	return result, nil
}

// ResolveProject finds a project by name (exact, case-sensitive).
func (c *Client) ResolveProject(ctx context.Context, name string) (source.Project, error) {
	projects, err := c.ListProjects(ctx)
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

// ListOpenTasks returns the open tasks of a project in API order.
func (c *Client) ListOpenTasks(ctx context.Context, projectID string) ([]source.Task, error) {
	params := url.Values{"project_id": {projectID}}

	var tasks []task
	if err := c.get(ctx, "/tasks", params, &tasks); err != nil {
		return nil, err
	}

	result := make([]source.Task, 0, len(tasks))
	for _, t := range tasks {
		result = append(result, source.Task{ID: t.ID, Content: t.Content})
	}
	return result, nil
}

// get issues a GET request and decodes the JSON response into v.
// Any non-200 response is an error; there are no retries.
func (c *Client) get(ctx context.Context, path string, params url.Values, v any) error {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return wrapError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return wrapError(fmt.Errorf("GET %s: %d %s", path, resp.StatusCode, strings.TrimSpace(string(body))))
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}

// wrapError wraps API errors with user-friendly messages.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	errStr := err.Error()

	// Check for timeout
	if strings.Contains(errStr, "context deadline exceeded") {
		return fmt.Errorf("request timed out")
	}

	// Check for auth errors
	if strings.Contains(errStr, "401") || strings.Contains(errStr, "403") {
		return fmt.Errorf("todoist token rejected (check %s)", config.TodoistTokenVar)
	}

	return err
}
