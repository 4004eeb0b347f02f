// Package workspace defines the backend-agnostic interface for the
// destination document workspace.
package workspace

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no page title matches a lookup exactly.
var ErrNotFound = errors.New("page not found")

// BlockType tags the structural kind of a content block.
type BlockType string

const (
	BlockHeading   BlockType = "heading"
	BlockBullet    BlockType = "bulleted_item"
	BlockParagraph BlockType = "paragraph"
)

// Block is one structural unit of page content carrying a single text run.
type Block struct {
	Type BlockType
	Text string
}

// Page is a document node in the workspace.
type Page struct {
	ID       string
	Title    string
	ParentID string
}

// Service defines the interface for workspace operations.
// All Notion API calls go through this interface.
type Service interface {
	// FindPageByTitle searches the workspace and returns the ID of the
	// first page whose title equals title exactly (case-sensitive).
	// Search relevance is not trusted; only the exact match counts.
	// Returns ErrNotFound if no result matches.
	FindPageByTitle(ctx context.Context, title string) (string, error)

	// VerifyAccess retrieves a page by ID to confirm it is reachable.
	VerifyAccess(ctx context.Context, pageID string) error

	// CreateChildPage creates a new page under parentID with the given
	// title and content blocks, returning the new page's ID.
	CreateChildPage(ctx context.Context, parentID, title string, blocks []Block) (string, error)
}
