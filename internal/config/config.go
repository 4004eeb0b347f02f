// Package config holds credentials and run settings for refsync.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// TodoistTokenVar is the environment variable holding the Todoist API token.
	TodoistTokenVar = "TODOIST_TOKEN"

	// NotionTokenVar is the environment variable holding the Notion integration token.
	NotionTokenVar = "NOTION_TOKEN"
)

// Config holds credentials and settings. Tokens are injected explicitly
// into the backend clients; the clients never read the environment.
type Config struct {
	// TodoistToken authenticates against the task source.
	TodoistToken string

	// NotionToken authenticates against the document workspace.
	NotionToken string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// FromEnv builds a Config from the process environment. If envFile is
// non-empty it is loaded first (a missing file is an error); otherwise a
// .env file in the working directory is loaded when present. Variables
// already exported take precedence over file contents.
func FromEnv(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	} else {
		// Best effort; the tokens may already be exported.
		_ = godotenv.Load()
	}

	return &Config{
		TodoistToken: os.Getenv(TodoistTokenVar),
		NotionToken:  os.Getenv(NotionTokenVar),
	}, nil
}

// Validate reports the missing required variables, if any.
func (c *Config) Validate() error {
	var missing []string
	if c.TodoistToken == "" {
		missing = append(missing, TodoistTokenVar)
	}
	if c.NotionToken == "" {
		missing = append(missing, NotionTokenVar)
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}
